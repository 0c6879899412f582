package teacher_note_service

import (
	"student-control/internal/models"
	"student-control/internal/repository"
	"student-control/internal/service"
)

type teacherNoteService struct {
	noteRepo repository.TeacherNoteRepository
}

func NewTeacherNoteService(noteRepo repository.TeacherNoteRepository) service.TeacherNoteService {
	return &teacherNoteService{noteRepo: noteRepo}
}

func (s *teacherNoteService) GetNote() (*models.TeacherNote, error) {
	return s.noteRepo.Get()
}

func (s *teacherNoteService) SaveNote(content string) error {
	return s.noteRepo.Save(content)
}
