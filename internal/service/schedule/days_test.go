package schedule_service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"student-control/internal/models"
)

func TestParseCourseDays(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []models.Weekday
	}{
		{"slash separated", "Seg/Qua", []models.Weekday{models.Monday, models.Wednesday}},
		{"upper case", "TER - QUI", []models.Weekday{models.Tuesday, models.Thursday}},
		{"accents and feira", "Terça-feira e Sábado", []models.Weekday{models.Tuesday, models.Saturday}},
		{"full names", "segunda, quarta, sexta", []models.Weekday{models.Monday, models.Wednesday, models.Friday}},
		{"duplicates", "seg seg segunda", []models.Weekday{models.Monday}},
		{"sorted", "dom/seg", []models.Weekday{models.Monday, models.Sunday}},
		{"quinta is not quarta", "quinta", []models.Weekday{models.Thursday}},
		{"no substring matches", "sexagenario quartzo", nil},
		{"unknown text", "a combinar", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCourseDays(tt.text))
		})
	}
}

func TestMatchesWeekday(t *testing.T) {
	assert.True(t, MatchesWeekday("Seg/Qua", models.Wednesday))
	assert.False(t, MatchesWeekday("Seg/Qua", models.Thursday))
	assert.False(t, MatchesWeekday("Quinta", models.Wednesday))
	assert.False(t, MatchesWeekday("", models.Monday))
}

func TestWeekdayOf(t *testing.T) {
	monday := time.Date(2024, time.March, 4, 10, 0, 0, 0, time.UTC)
	for i, want := range models.Weekdays {
		assert.Equal(t, want, models.WeekdayOf(monday.AddDate(0, 0, i)))
	}
}
