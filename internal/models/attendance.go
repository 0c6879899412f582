package models

import "time"

// DateLayout is how calendar days are stored and exchanged.
const DateLayout = "2006-01-02"

type Attendance struct {
	ID        int64  `db:"id" json:"id"`
	StudentID int64  `db:"student_id" json:"student_id"`
	Date      string `db:"date" json:"date"`
	Present   bool   `db:"present" json:"present"`
	Note      string `db:"note" json:"note"`
}

type FreeAttendance struct {
	ID            int64  `db:"id" json:"id"`
	FreeStudentID int64  `db:"free_student_id" json:"free_student_id"`
	Date          string `db:"date" json:"date"`
	Present       bool   `db:"present" json:"present"`
	Lesson        string `db:"lesson" json:"lesson"`
	Note          string `db:"note" json:"note"`
}

type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusAbsent  AttendanceStatus = "absent"
	StatusPending AttendanceStatus = "pending"
)

// StatusOf classifies a possibly missing record.
func StatusOf(a *Attendance) AttendanceStatus {
	switch {
	case a == nil:
		return StatusPending
	case a.Present:
		return StatusPresent
	default:
		return StatusAbsent
	}
}

func (s AttendanceStatus) Label() string {
	switch s {
	case StatusPresent:
		return "Presente"
	case StatusAbsent:
		return "Falta"
	default:
		return "Pendente"
	}
}

type AttendanceSummary struct {
	Present    int     `json:"present"`
	Absent     int     `json:"absent"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

func NewAttendanceSummary(present, absent int) AttendanceSummary {
	s := AttendanceSummary{Present: present, Absent: absent, Total: present + absent}
	if s.Total > 0 {
		s.Percentage = float64(present) / float64(s.Total) * 100
	}
	return s
}

// AttendanceDay is one calendar day of a student's history, pending when nothing was marked.
type AttendanceDay struct {
	Date   string           `json:"date"`
	Status AttendanceStatus `json:"status"`
	Note   string           `json:"note"`
}

type AbsenceRank struct {
	StudentID int64  `db:"student_id" json:"student_id"`
	Name      string `db:"name" json:"name"`
	Absences  int    `db:"absences" json:"absences"`
}

// StudentMonth is one student's tally inside a month.
type StudentMonth struct {
	StudentID int64  `db:"student_id" json:"student_id"`
	Name      string `db:"name" json:"name"`
	Course    string `db:"course" json:"course"`
	Present   int    `db:"present" json:"present"`
	Absent    int    `db:"absent" json:"absent"`
}

func (m StudentMonth) Summary() AttendanceSummary {
	return NewAttendanceSummary(m.Present, m.Absent)
}

type MonthlyStats struct {
	Month       string            `json:"month"` // "2024-03"
	Summary     AttendanceSummary `json:"summary"`
	TopAbsences []AbsenceRank     `json:"top_absences"`
}

// MonthPrefix returns the "YYYY-MM" key used to match stored dates of a month.
func MonthPrefix(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}
