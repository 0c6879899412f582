package free_attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student-control/internal/models"
	"student-control/internal/repository/free_student"
	"student-control/internal/testutil"
)

func TestFreeLessons(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewFreeAttendanceRepository(db)

	trial := &models.FreeStudent{Name: "Lia", StartLesson: "Aula 01"}
	require.NoError(t, free_student.NewFreeStudentRepository(db).Create(trial))

	require.NoError(t, repo.Mark(&models.FreeAttendance{FreeStudentID: trial.ID, Date: "2024-03-08", Present: true, Lesson: "Aula 02"}))
	require.NoError(t, repo.Mark(&models.FreeAttendance{FreeStudentID: trial.ID, Date: "2024-03-01", Present: true, Lesson: "Aula 01"}))
	require.NoError(t, repo.Mark(&models.FreeAttendance{FreeStudentID: trial.ID, Date: "2024-03-08", Present: false, Lesson: "Aula 02", Note: "chuva"}))

	lessons, err := repo.GetByFreeStudent(trial.ID)
	require.NoError(t, err)
	require.Len(t, lessons, 2)
	assert.Equal(t, "2024-03-01", lessons[0].Date)
	assert.Equal(t, "Aula 01", lessons[0].Lesson)
	assert.False(t, lessons[1].Present)
	assert.Equal(t, "chuva", lessons[1].Note)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, repo.Delete(lessons[0].ID))
	assert.True(t, models.IsNotFound(repo.Delete(lessons[0].ID)))

	err = repo.Mark(&models.FreeAttendance{FreeStudentID: 999, Date: "2024-03-01", Present: true})
	assert.True(t, models.IsConstraintViolation(err), "got %v", err)
}
