package attendance_service

import (
	"fmt"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"student-control/internal/models"
	"student-control/internal/repository/attendance"
	"student-control/internal/repository/student"
	"student-control/internal/service"
	"student-control/internal/testutil"
)

func setup(t *testing.T) (*sqlx.DB, service.AttendanceService) {
	t.Helper()
	db := testutil.NewDB(t)
	return db, NewAttendanceService(attendance.NewAttendanceRepository(db), zap.NewNop())
}

func enroll(t *testing.T, db *sqlx.DB, name string) int64 {
	t.Helper()
	s := &models.Student{Name: name, Course: "Unity 3D", CourseDays: "Seg"}
	require.NoError(t, student.NewStudentRepository(db).Create(s))
	return s.ID
}

func TestMarkAttendanceOverwrites(t *testing.T) {
	db, s := setup(t)
	id := enroll(t, db, "Ana")

	assert.True(t, s.MarkAttendance(id, "2024-03-01", true, ""))
	assert.True(t, s.MarkAttendance(id, "2024-03-01", false, "sick"))

	summary, err := s.GetSummary(id)
	require.NoError(t, err)
	assert.Equal(t, models.AttendanceSummary{Present: 0, Absent: 1, Total: 1, Percentage: 0}, summary)

	note, err := s.GetNote(id, "2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, "sick", note)

	note, err = s.GetNote(id, "2024-03-02")
	require.NoError(t, err)
	assert.Empty(t, note)
}

func TestMarkAttendanceFailuresReturnFalse(t *testing.T) {
	db, s := setup(t)
	id := enroll(t, db, "Ana")

	assert.False(t, s.MarkAttendance(999, "2024-03-01", true, ""), "unknown student")
	assert.False(t, s.MarkAttendance(id, "01/03/2024", true, ""), "bad date")

	records, err := s.GetAttendance(id, "2024-01-01", "2024-12-31")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSummaryPercentage(t *testing.T) {
	db, s := setup(t)
	id := enroll(t, db, "Ana")

	summary, err := s.GetSummary(id)
	require.NoError(t, err)
	assert.Zero(t, summary.Percentage)

	for i, present := range []bool{true, true, true, false} {
		require.True(t, s.MarkAttendance(id, fmt.Sprintf("2024-03-0%d", i+1), present, ""))
	}
	summary, err = s.GetSummary(id)
	require.NoError(t, err)
	assert.Equal(t, 4, summary.Total)
	assert.InDelta(t, 75.0, summary.Percentage, 0.001)
}

func TestGetHistory(t *testing.T) {
	db, s := setup(t)
	id := enroll(t, db, "Ana")

	require.True(t, s.MarkAttendance(id, "2024-02-28", true, ""))
	require.True(t, s.MarkAttendance(id, "2024-03-01", false, "chuva"))

	days, err := s.GetHistory(id, "2024-02-28", "2024-03-01")
	require.NoError(t, err)
	require.Len(t, days, 3, "leap day included")
	assert.Equal(t, models.AttendanceDay{Date: "2024-02-28", Status: models.StatusPresent}, days[0])
	assert.Equal(t, models.AttendanceDay{Date: "2024-02-29", Status: models.StatusPending}, days[1])
	assert.Equal(t, models.AttendanceDay{Date: "2024-03-01", Status: models.StatusAbsent, Note: "chuva"}, days[2])

	_, err = s.GetHistory(id, "2024-03-05", "2024-03-01")
	assert.True(t, models.IsValidation(err))
}

func TestMonthlyStats(t *testing.T) {
	db, s := setup(t)

	ids := map[string]int64{}
	for _, name := range []string{"Ana", "Bruno", "Carla", "Davi", "Elis", "Fabio"} {
		ids[name] = enroll(t, db, name)
	}
	absences := map[string]int{"Ana": 1, "Bruno": 4, "Carla": 2, "Davi": 2, "Elis": 3, "Fabio": 1}
	for name, n := range absences {
		for d := 1; d <= n; d++ {
			require.True(t, s.MarkAttendance(ids[name], fmt.Sprintf("2024-03-%02d", d), false, ""))
		}
	}
	require.True(t, s.MarkAttendance(ids["Ana"], "2024-03-20", true, ""))
	require.True(t, s.MarkAttendance(ids["Ana"], "2024-04-01", false, ""))

	stats, err := s.GetMonthlyStats(2024, time.March)
	require.NoError(t, err)
	assert.Equal(t, "2024-03", stats.Month)
	assert.Equal(t, 1, stats.Summary.Present)
	assert.Equal(t, 13, stats.Summary.Absent)

	require.Len(t, stats.TopAbsences, TopAbsences)
	var names []string
	for _, r := range stats.TopAbsences {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"Bruno", "Elis", "Carla", "Davi", "Ana"}, names)

	empty, err := s.GetMonthlyStats(2023, time.January)
	require.NoError(t, err)
	assert.Zero(t, empty.Summary.Total)
	assert.Empty(t, empty.TopAbsences)

	perStudent, err := s.GetMonthlyByStudent(2024, time.March)
	require.NoError(t, err)
	assert.Len(t, perStudent, 6)
}

func TestDeleteAttendance(t *testing.T) {
	db, s := setup(t)
	id := enroll(t, db, "Ana")
	require.True(t, s.MarkAttendance(id, "2024-03-01", true, ""))

	records, err := s.GetByDate("2024-03-01")
	require.NoError(t, err)
	require.Len(t, records, 1)

	require.NoError(t, s.DeleteAttendance(records[0].ID))
	assert.True(t, models.IsNotFound(s.DeleteAttendance(records[0].ID)))
}
