package attendance_service

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"student-control/internal/models"
	"student-control/internal/repository"
	"student-control/internal/service"
	"student-control/internal/validation"
)

// TopAbsences is how many students the monthly absence ranking lists.
const TopAbsences = 5

type attendanceService struct {
	attendanceRepo repository.AttendanceRepository
	log            *zap.Logger
}

func NewAttendanceService(attendanceRepo repository.AttendanceRepository, log *zap.Logger) service.AttendanceService {
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		log:            log,
	}
}

func (s *attendanceService) MarkAttendance(studentID int64, date string, present bool, note string) bool {
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		s.log.Warn("attendance not marked: bad date",
			zap.Int64("student_id", studentID),
			zap.String("date", date),
		)
		return false
	}

	err := s.attendanceRepo.Mark(&models.Attendance{
		StudentID: studentID,
		Date:      date,
		Present:   present,
		Note:      strings.TrimSpace(note),
	})
	if err != nil {
		s.log.Error("attendance not marked",
			zap.Int64("student_id", studentID),
			zap.String("date", date),
			zap.Error(err),
		)
		return false
	}

	s.log.Debug("attendance marked",
		zap.Int64("student_id", studentID),
		zap.String("date", date),
		zap.Bool("present", present),
	)
	return true
}

func (s *attendanceService) GetAttendance(studentID int64, start, end string) ([]models.Attendance, error) {
	if _, _, err := parseRange(start, end); err != nil {
		return nil, err
	}
	return s.attendanceRepo.GetRange(studentID, start, end)
}

// GetSummary is recomputed from the records on every call.
func (s *attendanceService) GetSummary(studentID int64) (models.AttendanceSummary, error) {
	present, absent, err := s.attendanceRepo.Summary(studentID)
	if err != nil {
		return models.AttendanceSummary{}, err
	}
	return models.NewAttendanceSummary(present, absent), nil
}

func (s *attendanceService) GetByDate(date string) ([]models.Attendance, error) {
	return s.attendanceRepo.GetByDate(date)
}

func (s *attendanceService) GetNote(studentID int64, date string) (string, error) {
	record, err := s.attendanceRepo.GetByStudentAndDate(studentID, date)
	if err != nil || record == nil {
		return "", err
	}
	return record.Note, nil
}

func (s *attendanceService) DeleteAttendance(id int64) error {
	return s.attendanceRepo.Delete(id)
}

// GetHistory returns one row per calendar day of [start, end]; unmarked days are pending.
func (s *attendanceService) GetHistory(studentID int64, start, end string) ([]models.AttendanceDay, error) {
	from, to, err := parseRange(start, end)
	if err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.GetRange(studentID, start, end)
	if err != nil {
		return nil, err
	}
	byDate := make(map[string]*models.Attendance, len(records))
	for i := range records {
		byDate[records[i].Date] = &records[i]
	}

	var days []models.AttendanceDay
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		key := d.Format(models.DateLayout)
		day := models.AttendanceDay{Date: key, Status: models.StatusOf(byDate[key])}
		if rec := byDate[key]; rec != nil {
			day.Note = rec.Note
		}
		days = append(days, day)
	}
	return days, nil
}

func (s *attendanceService) GetMonthlyStats(year int, month time.Month) (*models.MonthlyStats, error) {
	prefix := models.MonthPrefix(year, month)

	present, absent, err := s.attendanceRepo.MonthlyTotals(prefix)
	if err != nil {
		return nil, err
	}

	ranking, err := s.attendanceRepo.AbsenceRanking(prefix, TopAbsences)
	if err != nil {
		return nil, err
	}

	return &models.MonthlyStats{
		Month:       prefix,
		Summary:     models.NewAttendanceSummary(present, absent),
		TopAbsences: ranking,
	}, nil
}

func (s *attendanceService) GetMonthlyByStudent(year int, month time.Month) ([]models.StudentMonth, error) {
	return s.attendanceRepo.MonthlyByStudent(models.MonthPrefix(year, month))
}

func parseRange(start, end string) (time.Time, time.Time, error) {
	from, err := time.Parse(models.DateLayout, start)
	if err != nil {
		return time.Time{}, time.Time{}, validation.Field("start", "start deve estar no formato AAAA-MM-DD")
	}
	to, err := time.Parse(models.DateLayout, end)
	if err != nil {
		return time.Time{}, time.Time{}, validation.Field("end", "end deve estar no formato AAAA-MM-DD")
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, validation.Field("end", "end deve ser igual ou posterior a start")
	}
	return from, to, nil
}
