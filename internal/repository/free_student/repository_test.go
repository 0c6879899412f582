package free_student

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student-control/internal/models"
	"student-control/internal/testutil"
)

func TestFreeStudentRepository(t *testing.T) {
	repo := NewFreeStudentRepository(testutil.NewDB(t))

	pedro := &models.FreeStudent{Name: "Pedro H.", Phone: "1199999-9999", ClassTime: "14:00", StartLesson: "Aula 01 - Construct"}
	require.NoError(t, repo.Create(pedro))
	luana := &models.FreeStudent{Name: "Luana K.", ClassTime: "09:00"}
	require.NoError(t, repo.Create(luana))

	got, err := repo.GetByID(pedro.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Aula 01 - Construct", got.StartLesson)
	assert.True(t, got.IsActive())

	got.Phone = "1188888-8888"
	require.NoError(t, repo.Update(got))

	require.NoError(t, repo.Archive(luana.ID))

	active, err := repo.GetAll(true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "1188888-8888", active[0].Phone)

	all, err := repo.GetAll(false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	count, err := repo.CountActive()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	missing, err := repo.GetByID(99)
	require.NoError(t, err)
	assert.Nil(t, missing)
	assert.True(t, models.IsNotFound(repo.Archive(99)))
}
