package promotion_service

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"student-control/internal/models"
	"student-control/internal/repository"
	"student-control/internal/repository/free_student"
	"student-control/internal/repository/student"
	"student-control/internal/testutil"
)

// failingArchive lets the archive step fail after the student was created.
type failingArchive struct {
	repository.FreeStudentRepository
}

func (f failingArchive) Archive(int64) error {
	return models.NewStoreError("archive free student", errors.New("disk full"))
}

func TestPromote(t *testing.T) {
	db := testutil.NewDB(t)
	students := student.NewStudentRepository(db)
	trials := free_student.NewFreeStudentRepository(db)
	s := NewPromotionService(students, trials, zap.NewNop())

	lia := &models.FreeStudent{Name: "Lia", ClassTime: "16:00"}
	require.NoError(t, trials.Create(lia))

	promoted, err := s.Promote(lia.ID, "Unity 3D", "Ter/Qui")
	require.NoError(t, err)
	assert.Equal(t, "Lia", promoted.Name)
	assert.Equal(t, "16:00", promoted.ClassTime)
	assert.Equal(t, "Unity 3D", promoted.Course)
	assert.True(t, promoted.IsActive())

	trial, err := trials.GetByID(lia.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StateArchived, trial.State)

	_, err = s.Promote(lia.ID, "Unity 3D", "Ter/Qui")
	assert.True(t, models.IsConstraintViolation(err), "second promotion: %v", err)

	all, err := students.GetAll(false)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestPromoteFailures(t *testing.T) {
	db := testutil.NewDB(t)
	students := student.NewStudentRepository(db)
	trials := free_student.NewFreeStudentRepository(db)
	s := NewPromotionService(students, trials, zap.NewNop())

	_, err := s.Promote(999, "Unity 3D", "Seg")
	assert.True(t, models.IsNotFound(err))

	lia := &models.FreeStudent{Name: "Lia"}
	require.NoError(t, trials.Create(lia))

	_, err = s.Promote(lia.ID, "Unity 3D", " ")
	assert.True(t, models.IsValidation(err))

	all, err := students.GetAll(false)
	require.NoError(t, err)
	assert.Empty(t, all, "nothing created on failure")
}

func TestPromotePartial(t *testing.T) {
	db := testutil.NewDB(t)
	students := student.NewStudentRepository(db)
	trials := free_student.NewFreeStudentRepository(db)
	s := NewPromotionService(students, failingArchive{trials}, zap.NewNop())

	lia := &models.FreeStudent{Name: "Lia"}
	require.NoError(t, trials.Create(lia))

	promoted, err := s.Promote(lia.ID, "Unity 3D", "Seg")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrPartialPromotion)
	assert.ErrorIs(t, err, models.ErrStoreIO)

	var perr *models.PromotionError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, promoted.ID, perr.Student.ID)

	trial, err := trials.GetByID(lia.ID)
	require.NoError(t, err)
	assert.True(t, trial.IsActive())
}
