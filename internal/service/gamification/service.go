package gamification_service

import (
	"student-control/internal/models"
	"student-control/internal/repository"
	"student-control/internal/service"
)

const (
	XPPerStudent   = 50
	XPPerClass     = 10
	XPPerFreeClass = 20
	XPPerLevel     = 500
)

// Calculate derives the teacher's progress from cumulative counts.
func Calculate(activeStudents, classesGiven, freeClasses int) models.Progress {
	xp := activeStudents*XPPerStudent + classesGiven*XPPerClass + freeClasses*XPPerFreeClass
	level := LevelFor(xp)
	rem := xp % XPPerLevel
	return models.Progress{
		XP:        xp,
		Level:     level,
		Fraction:  float64(rem) / XPPerLevel,
		XPToNext:  XPPerLevel - rem,
		RankTitle: RankTitle(level),
	}
}

func LevelFor(xp int) int {
	return xp/XPPerLevel + 1
}

var ranks = []struct {
	maxLevel int
	title    string
}{
	{5, "Instrutor Iniciante"},
	{10, "Professor Dedicado"},
	{20, "Mentor Experiente"},
	{30, "Mestre do Ensino"},
	{50, "Lenda da Educação"},
}

func RankTitle(level int) string {
	for _, r := range ranks {
		if level <= r.maxLevel {
			return r.title
		}
	}
	return "Grão-Mestre Supremo"
}

func Achievements(activeStudents, classesGiven int) []models.Achievement {
	return []models.Achievement{
		{Title: "Primeiros Passos", Unlocked: classesGiven >= 1},
		{Title: "Turma Cheia", Unlocked: activeStudents >= 10},
		{Title: "Veterano", Unlocked: classesGiven >= 50},
		{Title: "Lendário", Unlocked: classesGiven >= 100},
		{Title: "Influenciador", Unlocked: activeStudents >= 50},
	}
}

type gamificationService struct {
	studentRepo        repository.StudentRepository
	freeStudentRepo    repository.FreeStudentRepository
	attendanceRepo     repository.AttendanceRepository
	freeAttendanceRepo repository.FreeAttendanceRepository
}

func NewGamificationService(
	studentRepo repository.StudentRepository,
	freeStudentRepo repository.FreeStudentRepository,
	attendanceRepo repository.AttendanceRepository,
	freeAttendanceRepo repository.FreeAttendanceRepository,
) service.GamificationService {
	return &gamificationService{
		studentRepo:        studentRepo,
		freeStudentRepo:    freeStudentRepo,
		attendanceRepo:     attendanceRepo,
		freeAttendanceRepo: freeAttendanceRepo,
	}
}

// GetTeacherStats counts every attendance record written, present or not.
func (s *gamificationService) GetTeacherStats() (*models.TeacherStats, error) {
	active, err := s.studentRepo.CountActive()
	if err != nil {
		return nil, err
	}
	classes, err := s.attendanceRepo.Count()
	if err != nil {
		return nil, err
	}
	free, err := s.freeAttendanceRepo.Count()
	if err != nil {
		return nil, err
	}
	trials, err := s.freeStudentRepo.CountActive()
	if err != nil {
		return nil, err
	}

	return &models.TeacherStats{
		ActiveStudents: active,
		ClassesGiven:   classes,
		FreeClasses:    free,
		ActiveTrials:   trials,
		Progress:       Calculate(active, classes, free),
		Achievements:   Achievements(active, classes),
	}, nil
}
