package repository

import (
	"student-control/internal/models"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	Exists() (bool, error)
	UpdatePassword(username, passwordHash string) error
}

type StudentRepository interface {
	Create(student *models.Student) error
	GetByID(id int64) (*models.Student, error)
	GetAll(activeOnly bool) ([]models.Student, error)
	Update(student *models.Student) error
	Archive(id int64) error
	CountActive() (int, error)
}

type FreeStudentRepository interface {
	Create(student *models.FreeStudent) error
	GetByID(id int64) (*models.FreeStudent, error)
	GetAll(activeOnly bool) ([]models.FreeStudent, error)
	Update(student *models.FreeStudent) error
	Archive(id int64) error
	CountActive() (int, error)
}

type AttendanceRepository interface {
	// Mark inserts or overwrites the record of (student_id, date).
	Mark(attendance *models.Attendance) error
	GetByStudentAndDate(studentID int64, date string) (*models.Attendance, error)
	GetByDate(date string) ([]models.Attendance, error)
	GetRange(studentID int64, start, end string) ([]models.Attendance, error)
	Delete(id int64) error

	// aggregates
	Summary(studentID int64) (present, absent int, err error)
	Count() (int, error)
	MonthlyTotals(month string) (present, absent int, err error)
	MonthlyByStudent(month string) ([]models.StudentMonth, error)
	AbsenceRanking(month string, limit int) ([]models.AbsenceRank, error)
}

type FreeAttendanceRepository interface {
	Mark(attendance *models.FreeAttendance) error
	GetByFreeStudent(freeStudentID int64) ([]models.FreeAttendance, error)
	Delete(id int64) error
	Count() (int, error)
}

type EventRepository interface {
	Create(event *models.Event) error
	GetByID(id int64) (*models.Event, error)
	Update(event *models.Event) error
	Delete(id int64) error
	GetRange(from, to string) ([]models.Event, error)
	GetRecent(limit int) ([]models.Event, error)
}

type TeacherNoteRepository interface {
	Get() (*models.TeacherNote, error)
	Save(content string) error
}
