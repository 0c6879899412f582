package schedule_service

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"student-control/internal/models"
)

// dayTokens lists the accent-free words recognised for each weekday.
var dayTokens = map[string]models.Weekday{
	"seg":     models.Monday,
	"segunda": models.Monday,
	"ter":     models.Tuesday,
	"terca":   models.Tuesday,
	"qua":     models.Wednesday,
	"quarta":  models.Wednesday,
	"qui":     models.Thursday,
	"quinta":  models.Thursday,
	"sex":     models.Friday,
	"sexta":   models.Friday,
	"sab":     models.Saturday,
	"sabado":  models.Saturday,
	"dom":     models.Sunday,
	"domingo": models.Sunday,
}

// ParseCourseDays extracts the weekdays named in a free-text schedule such as
// "Seg/Qua" or "terça e quinta-feira". Only whole words count, so "qua" never
// matches inside "quinta". The result is sorted and unique; nil means unscheduled.
func ParseCourseDays(text string) []models.Weekday {
	seen := make(map[models.Weekday]bool)
	var days []models.Weekday
	for _, word := range strings.FieldsFunc(fold(text), func(r rune) bool { return !unicode.IsLetter(r) }) {
		day, ok := dayTokens[word]
		if !ok || seen[day] {
			continue
		}
		seen[day] = true
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	return days
}

func MatchesWeekday(text string, day models.Weekday) bool {
	for _, d := range ParseCourseDays(text) {
		if d == day {
			return true
		}
	}
	return false
}

// fold lowercases s and strips combining marks ("Terça" -> "terca").
func fold(s string) string {
	var b strings.Builder
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
