package attendance

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student-control/internal/models"
	"student-control/internal/repository/student"
	"student-control/internal/testutil"
)

func newStudent(t *testing.T, db *sqlx.DB, name string) int64 {
	t.Helper()
	s := &models.Student{Name: name, Course: "Python", CourseDays: "Seg"}
	require.NoError(t, student.NewStudentRepository(db).Create(s))
	return s.ID
}

func TestMarkIsUpsert(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewAttendanceRepository(db)
	id := newStudent(t, db, "Ana")

	require.NoError(t, repo.Mark(&models.Attendance{StudentID: id, Date: "2024-03-01", Present: true}))
	require.NoError(t, repo.Mark(&models.Attendance{StudentID: id, Date: "2024-03-01", Present: false, Note: "sick"}))

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	present, absent, err := repo.Summary(id)
	require.NoError(t, err)
	assert.Equal(t, 0, present)
	assert.Equal(t, 1, absent)

	got, err := repo.GetByStudentAndDate(id, "2024-03-01")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.Present)
	assert.Equal(t, "sick", got.Note)
}

func TestMarkUnknownStudent(t *testing.T) {
	repo := NewAttendanceRepository(testutil.NewDB(t))

	err := repo.Mark(&models.Attendance{StudentID: 404, Date: "2024-03-01", Present: true})
	assert.True(t, models.IsConstraintViolation(err), "got %v", err)
}

func TestRangeAndLookups(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewAttendanceRepository(db)
	id := newStudent(t, db, "Ana")

	for _, d := range []string{"2024-03-05", "2024-03-01", "2024-03-03", "2024-04-01"} {
		require.NoError(t, repo.Mark(&models.Attendance{StudentID: id, Date: d, Present: true}))
	}

	got, err := repo.GetRange(id, "2024-03-01", "2024-03-05")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "2024-03-01", got[0].Date)
	assert.Equal(t, "2024-03-03", got[1].Date)
	assert.Equal(t, "2024-03-05", got[2].Date)

	none, err := repo.GetByStudentAndDate(id, "2024-03-02")
	require.NoError(t, err)
	assert.Nil(t, none)

	day, err := repo.GetByDate("2024-04-01")
	require.NoError(t, err)
	require.Len(t, day, 1)

	require.NoError(t, repo.Delete(day[0].ID))
	assert.True(t, models.IsNotFound(repo.Delete(day[0].ID)))

	present, absent, err := repo.Summary(newStudent(t, db, "Sem registros"))
	require.NoError(t, err)
	assert.Zero(t, present)
	assert.Zero(t, absent)
}

func TestMonthlyAggregates(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewAttendanceRepository(db)

	names := []string{"Carla", "Bruno", "Ana", "Daniel", "Eduarda", "Felipe", "Gabriela"}
	ids := map[string]int64{}
	for _, n := range names {
		ids[n] = newStudent(t, db, n)
	}

	absences := map[string]int{"Carla": 3, "Bruno": 2, "Ana": 2, "Daniel": 1, "Eduarda": 1, "Felipe": 1}
	for name, n := range absences {
		for day := 1; day <= n; day++ {
			date := "2024-03-0" + string(rune('0'+day))
			require.NoError(t, repo.Mark(&models.Attendance{StudentID: ids[name], Date: date, Present: false}))
		}
	}
	require.NoError(t, repo.Mark(&models.Attendance{StudentID: ids["Gabriela"], Date: "2024-03-10", Present: true}))
	// outside the month
	require.NoError(t, repo.Mark(&models.Attendance{StudentID: ids["Gabriela"], Date: "2024-04-01", Present: false}))
	require.NoError(t, repo.Mark(&models.Attendance{StudentID: ids["Gabriela"], Date: "2024-02-29", Present: false}))

	present, absent, err := repo.MonthlyTotals("2024-03")
	require.NoError(t, err)
	assert.Equal(t, 1, present)
	assert.Equal(t, 10, absent)

	ranking, err := repo.AbsenceRanking("2024-03", 5)
	require.NoError(t, err)
	require.Len(t, ranking, 5)
	var order []string
	for _, r := range ranking {
		order = append(order, r.Name)
	}
	assert.Equal(t, []string{"Carla", "Ana", "Bruno", "Daniel", "Eduarda"}, order)
	assert.Equal(t, 3, ranking[0].Absences)

	perStudent, err := repo.MonthlyByStudent("2024-03")
	require.NoError(t, err)
	require.Len(t, perStudent, len(names))
	assert.Equal(t, "Ana", perStudent[0].Name)
	assert.Equal(t, 2, perStudent[0].Absent)
	for _, row := range perStudent {
		if row.Name == "Gabriela" {
			assert.Equal(t, 1, row.Present)
			assert.Equal(t, 0, row.Absent)
		}
	}
}
