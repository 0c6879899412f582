package service

import (
	"time"

	"student-control/internal/models"
)

type UserService interface {
	// Register reports false when the username is already taken.
	Register(username, password string) (bool, error)
	Login(username, password string) (*models.User, error)
	HasUsers() (bool, error)
	ResetPassword(username, password string) error
}

type StudentService interface {
	Enroll(input models.StudentInput) (*models.Student, error)
	Update(id int64, input models.StudentInput) (*models.Student, error)
	Archive(id int64) error
	GetAll(activeOnly bool) ([]models.Student, error)
	GetByID(id int64) (*models.Student, error)
	Search(query string) ([]models.Student, error)
}

type FreeStudentService interface {
	Register(input models.FreeStudentInput) (*models.FreeStudent, error)
	Update(id int64, input models.FreeStudentInput) (*models.FreeStudent, error)
	Withdraw(id int64) error
	GetAll(activeOnly bool) ([]models.FreeStudent, error)
	GetByID(id int64) (*models.FreeStudent, error)

	MarkLesson(freeStudentID int64, date string, present bool, lesson, note string) error
	GetLessons(freeStudentID int64) ([]models.FreeAttendance, error)
}

type PromotionService interface {
	Promote(freeStudentID int64, course, courseDays string) (*models.Student, error)
}

type AttendanceService interface {
	// MarkAttendance logs failures and reports them as false.
	MarkAttendance(studentID int64, date string, present bool, note string) bool
	GetAttendance(studentID int64, start, end string) ([]models.Attendance, error)
	GetSummary(studentID int64) (models.AttendanceSummary, error)
	GetByDate(date string) ([]models.Attendance, error)
	GetNote(studentID int64, date string) (string, error)
	DeleteAttendance(id int64) error
	GetHistory(studentID int64, start, end string) ([]models.AttendanceDay, error)

	GetMonthlyStats(year int, month time.Month) (*models.MonthlyStats, error)
	GetMonthlyByStudent(year int, month time.Month) ([]models.StudentMonth, error)
}

type ScheduleService interface {
	GetDailySchedule(date time.Time) ([]models.DailyScheduleEntry, error)
	GetDailySummary(date time.Time) (*models.DailySummary, error)
	OrganizeByDayAndTime() ([]models.DaySchedule, error)
	GetWeekPreview() (string, error)
}

type GamificationService interface {
	GetTeacherStats() (*models.TeacherStats, error)
}

type EventService interface {
	Create(input models.EventInput) (*models.Event, error)
	Update(id int64, input models.EventInput) (*models.Event, error)
	Delete(id int64) error
	GetByID(id int64) (*models.Event, error)
	// GetEvents returns the most recent events when both bounds are empty.
	GetEvents(from, to string) ([]models.Event, error)
	GetUpcoming(days int) ([]models.Event, error)
}

type TeacherNoteService interface {
	GetNote() (*models.TeacherNote, error)
	SaveNote(content string) error
}

type ReportService interface {
	BuildDaily(date time.Time) (*models.DailyReport, error)
	BuildMonthly(year int, month time.Month) (*models.MonthlyReport, error)
	BuildFinancial(year int, month time.Month) (*models.FinancialReport, error)
	// Generate renders a report to a file under the reports directory and returns its path.
	Generate(kind models.ReportKind, format models.ReportFormat, date time.Time) (string, error)
}

type BackupService interface {
	Create() (*models.Backup, error)
	List() ([]models.Backup, error)
	Restore(name string) error
	Delete(name string) error
}
