package schedule_service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"student-control/internal/models"
	"student-control/internal/repository"
	"student-control/internal/service"
)

type scheduleService struct {
	studentRepo    repository.StudentRepository
	attendanceRepo repository.AttendanceRepository
}

func NewScheduleService(studentRepo repository.StudentRepository, attendanceRepo repository.AttendanceRepository) service.ScheduleService {
	return &scheduleService{
		studentRepo:    studentRepo,
		attendanceRepo: attendanceRepo,
	}
}

// GetDailySchedule lists the active students due on date with their status for that day.
func (s *scheduleService) GetDailySchedule(date time.Time) ([]models.DailyScheduleEntry, error) {
	students, err := s.studentRepo.GetAll(true)
	if err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.GetByDate(date.Format(models.DateLayout))
	if err != nil {
		return nil, err
	}
	byStudent := make(map[int64]*models.Attendance, len(records))
	for i := range records {
		byStudent[records[i].StudentID] = &records[i]
	}

	day := models.WeekdayOf(date)
	entries := []models.DailyScheduleEntry{}
	for _, st := range students {
		if !MatchesWeekday(st.CourseDays, day) {
			continue
		}
		rec := byStudent[st.ID]
		entry := models.DailyScheduleEntry{
			StudentID: st.ID,
			Name:      st.Name,
			Course:    st.Course,
			ClassTime: st.ClassTime,
			Status:    models.StatusOf(rec),
		}
		if rec != nil {
			entry.Note = rec.Note
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.ClassTime != b.ClassTime {
			return classTimeLess(a.ClassTime, b.ClassTime)
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.StudentID < b.StudentID
	})
	return entries, nil
}

func (s *scheduleService) GetDailySummary(date time.Time) (*models.DailySummary, error) {
	entries, err := s.GetDailySchedule(date)
	if err != nil {
		return nil, err
	}

	summary := &models.DailySummary{
		Date:    date.Format(models.DateLayout),
		Day:     models.WeekdayOf(date),
		Entries: entries,
	}
	for _, e := range entries {
		switch e.Status {
		case models.StatusPresent:
			summary.Present++
		case models.StatusAbsent:
			summary.Absent++
		default:
			summary.Pending++
		}
	}
	return summary, nil
}

// OrganizeByDayAndTime buckets active students per weekday and class time.
// A student appears once under every day their course_days names; students
// with no recognised day land in the Unscheduled bucket.
func (s *scheduleService) OrganizeByDayAndTime() ([]models.DaySchedule, error) {
	students, err := s.studentRepo.GetAll(true)
	if err != nil {
		return nil, err
	}

	buckets := make(map[models.Weekday]map[string][]models.Student)
	add := func(day models.Weekday, st models.Student) {
		if buckets[day] == nil {
			buckets[day] = make(map[string][]models.Student)
		}
		buckets[day][st.ClassTime] = append(buckets[day][st.ClassTime], st)
	}

	for _, st := range students {
		days := ParseCourseDays(st.CourseDays)
		if len(days) == 0 {
			add(models.Unscheduled, st)
			continue
		}
		for _, day := range days {
			add(day, st)
		}
	}

	order := append(append([]models.Weekday{}, models.Weekdays...), models.Unscheduled)
	var schedule []models.DaySchedule
	for _, day := range order {
		slots, ok := buckets[day]
		if !ok {
			continue
		}

		times := make([]string, 0, len(slots))
		for t := range slots {
			times = append(times, t)
		}
		sort.Slice(times, func(i, j int) bool { return classTimeLess(times[i], times[j]) })

		ds := models.DaySchedule{Day: day}
		for _, t := range times {
			ds.Slots = append(ds.Slots, models.TimeSlot{ClassTime: t, Students: slots[t]})
		}
		schedule = append(schedule, ds)
	}
	return schedule, nil
}

// GetWeekPreview renders the organised week as plain text.
func (s *scheduleService) GetWeekPreview() (string, error) {
	schedule, err := s.OrganizeByDayAndTime()
	if err != nil {
		return "", err
	}

	if len(schedule) == 0 {
		return "📋 Nenhum aluno ativo", nil
	}

	var b strings.Builder
	b.WriteString("📋 Alunos por dia e horário:\n\n")
	for _, day := range schedule {
		fmt.Fprintf(&b, "📅 %s:\n", day.Day.Label())
		for _, slot := range day.Slots {
			names := make([]string, 0, len(slot.Students))
			for _, st := range slot.Students {
				names = append(names, st.Name)
			}
			fmt.Fprintf(&b, "  • %s - %s\n", ClassTimeLabel(slot.ClassTime), strings.Join(names, ", "))
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}

// ClassTimeLabel is how an empty class time is shown.
func ClassTimeLabel(classTime string) string {
	if classTime == "" {
		return "Sem horário"
	}
	return classTime
}

// classTimeLess orders class times ascending with the empty time last.
func classTimeLess(a, b string) bool {
	if a == "" {
		return false
	}
	if b == "" {
		return true
	}
	return a < b
}
