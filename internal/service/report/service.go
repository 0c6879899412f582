package report_service

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"student-control/internal/models"
	"student-control/internal/service"
	"student-control/internal/validation"
)

const fileTimeLayout = "2006-01-02_15-04-05"

type reportService struct {
	scheduleService   service.ScheduleService
	attendanceService service.AttendanceService
	studentService    service.StudentService
	dir               string
	log               *zap.Logger
	now               func() time.Time
}

func NewReportService(
	scheduleService service.ScheduleService,
	attendanceService service.AttendanceService,
	studentService service.StudentService,
	dir string,
	log *zap.Logger,
) service.ReportService {
	return &reportService{
		scheduleService:   scheduleService,
		attendanceService: attendanceService,
		studentService:    studentService,
		dir:               dir,
		log:               log,
		now:               time.Now,
	}
}

func (s *reportService) BuildDaily(date time.Time) (*models.DailyReport, error) {
	summary, err := s.scheduleService.GetDailySummary(date)
	if err != nil {
		return nil, err
	}
	return &models.DailyReport{Summary: *summary}, nil
}

func (s *reportService) BuildMonthly(year int, month time.Month) (*models.MonthlyReport, error) {
	students, err := s.attendanceService.GetMonthlyByStudent(year, month)
	if err != nil {
		return nil, err
	}
	stats, err := s.attendanceService.GetMonthlyStats(year, month)
	if err != nil {
		return nil, err
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return &models.MonthlyReport{
		Month:    stats.Month,
		Period:   fmt.Sprintf("%s a %s", first.Format(models.DateLayout), last.Format(models.DateLayout)),
		Students: students,
		Stats:    *stats,
	}, nil
}

// BuildFinancial estimates revenue from the courses of the active students.
func (s *reportService) BuildFinancial(year int, month time.Month) (*models.FinancialReport, error) {
	students, err := s.studentService.GetAll(true)
	if err != nil {
		return nil, err
	}
	return buildFinancial(models.MonthPrefix(year, month), students), nil
}

func (s *reportService) Generate(kind models.ReportKind, format models.ReportFormat, date time.Time) (string, error) {
	switch format {
	case models.FormatText, models.FormatPDF, models.FormatXLSX:
	default:
		return "", validation.Field("format", "format deve ser txt, pdf ou xlsx")
	}

	var (
		report interface{}
		err    error
	)
	switch kind {
	case models.ReportDaily:
		report, err = s.BuildDaily(date)
	case models.ReportMonthly:
		report, err = s.BuildMonthly(date.Year(), date.Month())
	case models.ReportFinancial:
		report, err = s.BuildFinancial(date.Year(), date.Month())
	default:
		return "", validation.Field("type", "type deve ser diario, mensal ou financeiro")
	}
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", errors.Wrap(err, "create reports dir")
	}
	path := filepath.Join(s.dir, fmt.Sprintf("%s_%s.%s", kind, s.now().Format(fileTimeLayout), format))

	switch format {
	case models.FormatText:
		err = writeText(path, report)
	case models.FormatPDF:
		err = writePDF(path, toDocument(report))
	case models.FormatXLSX:
		err = writeXLSX(path, toDocument(report))
	}
	if err != nil {
		return "", errors.Wrapf(err, "write %s report", format)
	}

	s.log.Info("📄 report generated",
		zap.String("kind", string(kind)),
		zap.String("format", string(format)),
		zap.String("path", path),
	)
	return path, nil
}
