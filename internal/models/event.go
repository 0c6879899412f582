package models

import "time"

type EventType string

const (
	EventNotice      EventType = "aviso"
	EventAppointment EventType = "compromisso"
	EventHoliday     EventType = "feriado"
)

var EventTypes = []EventType{EventNotice, EventAppointment, EventHoliday}

type Event struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	EventDate   string    `db:"event_date" json:"event_date"`
	EventType   EventType `db:"event_type" json:"event_type"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type EventInput struct {
	Title       string `json:"title" validate:"notblank,max=200"`
	Description string `json:"description" validate:"max=2000"`
	EventDate   string `json:"event_date" validate:"required,isodate"`
	EventType   string `json:"event_type" validate:"omitempty,eventtype"`
}

// TeacherNote is the single scratchpad row.
type TeacherNote struct {
	ID        int64     `db:"id" json:"id"`
	Content   string    `db:"content" json:"content"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
