package models

import "time"

// LifecycleState is stored in the `active` column: 1 active, 0 archived.
type LifecycleState int

const (
	StateArchived LifecycleState = 0
	StateActive   LifecycleState = 1
)

func (s LifecycleState) String() string {
	if s == StateActive {
		return "active"
	}
	return "archived"
}

type Student struct {
	ID         int64          `db:"id" json:"id"`
	Name       string         `db:"name" json:"name"`
	Course     string         `db:"course" json:"course"`
	CourseDays string         `db:"course_days" json:"course_days"` // "Seg/Qua"
	ClassTime  string         `db:"class_time" json:"class_time"`   // "14:00", may be empty
	State      LifecycleState `db:"active" json:"state"`
	CreatedAt  time.Time      `db:"created_at" json:"created_at"`
}

func (s *Student) IsActive() bool {
	return s.State == StateActive
}

type StudentInput struct {
	Name       string `json:"name" validate:"notblank,max=120"`
	Course     string `json:"course" validate:"notblank,max=120"`
	CourseDays string `json:"course_days" validate:"notblank,max=120"`
	ClassTime  string `json:"class_time" validate:"max=40"`
}

type FreeStudent struct {
	ID          int64          `db:"id" json:"id"`
	Name        string         `db:"name" json:"name"`
	Phone       string         `db:"phone" json:"phone"`
	ClassTime   string         `db:"class_time" json:"class_time"`
	StartLesson string         `db:"start_lesson" json:"start_lesson"` // "Aula 01 - Construct"
	State       LifecycleState `db:"active" json:"state"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
}

func (s *FreeStudent) IsActive() bool {
	return s.State == StateActive
}

type FreeStudentInput struct {
	Name        string `json:"name" validate:"notblank,max=120"`
	Phone       string `json:"phone" validate:"max=40"`
	ClassTime   string `json:"class_time" validate:"max=40"`
	StartLesson string `json:"start_lesson" validate:"max=120"`
}

// PromotionInput carries what a trial student lacks to become a paid one.
type PromotionInput struct {
	Course     string `json:"course" validate:"notblank,max=120"`
	CourseDays string `json:"course_days" validate:"notblank,max=120"`
}
