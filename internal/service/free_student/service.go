package free_student_service

import (
	"strings"

	"student-control/internal/models"
	"student-control/internal/repository"
	"student-control/internal/service"
	"student-control/internal/validation"
)

type freeStudentService struct {
	freeStudentRepo    repository.FreeStudentRepository
	freeAttendanceRepo repository.FreeAttendanceRepository
}

func NewFreeStudentService(
	freeStudentRepo repository.FreeStudentRepository,
	freeAttendanceRepo repository.FreeAttendanceRepository,
) service.FreeStudentService {
	return &freeStudentService{
		freeStudentRepo:    freeStudentRepo,
		freeAttendanceRepo: freeAttendanceRepo,
	}
}

func (s *freeStudentService) Register(input models.FreeStudentInput) (*models.FreeStudent, error) {
	input = trimInput(input)
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	student := &models.FreeStudent{
		Name:        input.Name,
		Phone:       input.Phone,
		ClassTime:   input.ClassTime,
		StartLesson: input.StartLesson,
	}
	if err := s.freeStudentRepo.Create(student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *freeStudentService) Update(id int64, input models.FreeStudentInput) (*models.FreeStudent, error) {
	input = trimInput(input)
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	student := &models.FreeStudent{
		ID:          id,
		Name:        input.Name,
		Phone:       input.Phone,
		ClassTime:   input.ClassTime,
		StartLesson: input.StartLesson,
	}
	if err := s.freeStudentRepo.Update(student); err != nil {
		return nil, err
	}
	return s.freeStudentRepo.GetByID(id)
}

// Withdraw ends the trial without promotion.
func (s *freeStudentService) Withdraw(id int64) error {
	return s.freeStudentRepo.Archive(id)
}

func (s *freeStudentService) GetAll(activeOnly bool) ([]models.FreeStudent, error) {
	return s.freeStudentRepo.GetAll(activeOnly)
}

func (s *freeStudentService) GetByID(id int64) (*models.FreeStudent, error) {
	return s.freeStudentRepo.GetByID(id)
}

func (s *freeStudentService) MarkLesson(freeStudentID int64, date string, present bool, lesson, note string) error {
	if err := validation.Validate.Var(date, "isodate"); err != nil {
		return validation.Field("date", "date deve estar no formato AAAA-MM-DD")
	}

	return s.freeAttendanceRepo.Mark(&models.FreeAttendance{
		FreeStudentID: freeStudentID,
		Date:          date,
		Present:       present,
		Lesson:        strings.TrimSpace(lesson),
		Note:          strings.TrimSpace(note),
	})
}

func (s *freeStudentService) GetLessons(freeStudentID int64) ([]models.FreeAttendance, error) {
	return s.freeAttendanceRepo.GetByFreeStudent(freeStudentID)
}

func trimInput(input models.FreeStudentInput) models.FreeStudentInput {
	input.Name = strings.TrimSpace(input.Name)
	input.Phone = strings.TrimSpace(input.Phone)
	input.ClassTime = strings.TrimSpace(input.ClassTime)
	input.StartLesson = strings.TrimSpace(input.StartLesson)
	return input
}
