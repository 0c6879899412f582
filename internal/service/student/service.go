package student_service

import (
	"strings"

	"student-control/internal/models"
	"student-control/internal/repository"
	"student-control/internal/service"
	"student-control/internal/validation"
)

type studentService struct {
	studentRepo repository.StudentRepository
}

func NewStudentService(studentRepo repository.StudentRepository) service.StudentService {
	return &studentService{studentRepo: studentRepo}
}

func (s *studentService) Enroll(input models.StudentInput) (*models.Student, error) {
	input = trimInput(input)
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	student := &models.Student{
		Name:       input.Name,
		Course:     input.Course,
		CourseDays: input.CourseDays,
		ClassTime:  input.ClassTime,
	}
	if err := s.studentRepo.Create(student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *studentService) Update(id int64, input models.StudentInput) (*models.Student, error) {
	input = trimInput(input)
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	student := &models.Student{
		ID:         id,
		Name:       input.Name,
		Course:     input.Course,
		CourseDays: input.CourseDays,
		ClassTime:  input.ClassTime,
	}
	if err := s.studentRepo.Update(student); err != nil {
		return nil, err
	}
	return s.studentRepo.GetByID(id)
}

func (s *studentService) Archive(id int64) error {
	return s.studentRepo.Archive(id)
}

func (s *studentService) GetAll(activeOnly bool) ([]models.Student, error) {
	return s.studentRepo.GetAll(activeOnly)
}

func (s *studentService) GetByID(id int64) (*models.Student, error) {
	return s.studentRepo.GetByID(id)
}

// Search filters active students whose name or course contains query, ignoring case.
func (s *studentService) Search(query string) ([]models.Student, error) {
	students, err := s.studentRepo.GetAll(true)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return students, nil
	}

	found := []models.Student{}
	for _, st := range students {
		if strings.Contains(strings.ToLower(st.Name), query) ||
			strings.Contains(strings.ToLower(st.Course), query) {
			found = append(found, st)
		}
	}
	return found, nil
}

func trimInput(input models.StudentInput) models.StudentInput {
	input.Name = strings.TrimSpace(input.Name)
	input.Course = strings.TrimSpace(input.Course)
	input.CourseDays = strings.TrimSpace(input.CourseDays)
	input.ClassTime = strings.TrimSpace(input.ClassTime)
	return input
}
