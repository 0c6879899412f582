package promotion_service

import (
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"student-control/internal/models"
	"student-control/internal/repository"
	"student-control/internal/service"
	"student-control/internal/validation"
)

type promotionService struct {
	studentRepo     repository.StudentRepository
	freeStudentRepo repository.FreeStudentRepository
	log             *zap.Logger
}

func NewPromotionService(
	studentRepo repository.StudentRepository,
	freeStudentRepo repository.FreeStudentRepository,
	log *zap.Logger,
) service.PromotionService {
	return &promotionService{
		studentRepo:     studentRepo,
		freeStudentRepo: freeStudentRepo,
		log:             log,
	}
}

// Promote turns a trial student into a paid one. The new student is never
// created without an attempt to archive the trial record.
func (s *promotionService) Promote(freeStudentID int64, course, courseDays string) (*models.Student, error) {
	input := models.PromotionInput{
		Course:     strings.TrimSpace(course),
		CourseDays: strings.TrimSpace(courseDays),
	}
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	trial, err := s.freeStudentRepo.GetByID(freeStudentID)
	if err != nil {
		return nil, err
	}
	if trial == nil {
		return nil, errors.Wrapf(models.ErrNotFound, "free student %d", freeStudentID)
	}
	if !trial.IsActive() {
		return nil, errors.Wrapf(models.ErrConstraintViolation, "free student %d is already archived", freeStudentID)
	}

	student := &models.Student{
		Name:       trial.Name,
		Course:     input.Course,
		CourseDays: input.CourseDays,
		ClassTime:  trial.ClassTime,
	}
	if err := s.studentRepo.Create(student); err != nil {
		return nil, err
	}

	if err := s.freeStudentRepo.Archive(trial.ID); err != nil {
		s.log.Error("trial record not archived after promotion",
			zap.Int64("free_student_id", trial.ID),
			zap.Int64("student_id", student.ID),
			zap.Error(err),
		)
		return student, &models.PromotionError{Student: student, Err: err}
	}

	s.log.Info("🎓 trial student promoted",
		zap.Int64("free_student_id", trial.ID),
		zap.Int64("student_id", student.ID),
	)
	return student, nil
}
