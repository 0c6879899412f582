package models

import "time"

// Weekday follows the 1=Monday .. 7=Sunday convention. Unscheduled collects
// students whose course_days carry no recognised day token.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
	Unscheduled
)

var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var weekdayLabels = map[Weekday]string{
	Monday:      "Segunda-feira",
	Tuesday:     "Terça-feira",
	Wednesday:   "Quarta-feira",
	Thursday:    "Quinta-feira",
	Friday:      "Sexta-feira",
	Saturday:    "Sábado",
	Sunday:      "Domingo",
	Unscheduled: "Outros",
}

var weekdayTokens = map[Weekday]string{
	Monday:    "seg",
	Tuesday:   "ter",
	Wednesday: "qua",
	Thursday:  "qui",
	Friday:    "sex",
	Saturday:  "sab",
	Sunday:    "dom",
}

func (d Weekday) Label() string {
	if l, ok := weekdayLabels[d]; ok {
		return l
	}
	return weekdayLabels[Unscheduled]
}

// Token is the canonical three-letter abbreviation, empty for Unscheduled.
func (d Weekday) Token() string {
	return weekdayTokens[d]
}

// WeekdayOf maps a date onto the Monday-first numbering.
func WeekdayOf(t time.Time) Weekday {
	if t.Weekday() == time.Sunday {
		return Sunday
	}
	return Weekday(t.Weekday())
}

type DailyScheduleEntry struct {
	StudentID int64            `json:"student_id"`
	Name      string           `json:"name"`
	Course    string           `json:"course"`
	ClassTime string           `json:"class_time"`
	Status    AttendanceStatus `json:"status"`
	Note      string           `json:"note"`
}

type DailySummary struct {
	Date    string               `json:"date"`
	Day     Weekday              `json:"day"`
	Entries []DailyScheduleEntry `json:"entries"`
	Present int                  `json:"present"`
	Absent  int                  `json:"absent"`
	Pending int                  `json:"pending"`
}

func (s *DailySummary) Total() int {
	return len(s.Entries)
}

type TimeSlot struct {
	ClassTime string    `json:"class_time"`
	Students  []Student `json:"students"`
}

type DaySchedule struct {
	Day   Weekday    `json:"day"`
	Slots []TimeSlot `json:"slots"`
}
