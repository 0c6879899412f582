package event

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"student-control/internal/models"
	"student-control/internal/repository"
)

const eventColumns = `id, title, description, event_date, event_type, created_at`

type eventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(event *models.Event) error {
	query := r.db.Rebind(`
		INSERT INTO events (title, description, event_date, event_type)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`)
	err := r.db.QueryRow(
		query,
		event.Title,
		event.Description,
		event.EventDate,
		string(event.EventType),
	).Scan(&event.ID)
	return repository.Translate("create event", err)
}

func (r *eventRepository) GetByID(id int64) (*models.Event, error) {
	var event models.Event
	query := r.db.Rebind(`SELECT ` + eventColumns + ` FROM events WHERE id = ?`)
	err := r.db.Get(&event, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, repository.Translate("get event", err)
	}
	return &event, nil
}

func (r *eventRepository) Update(event *models.Event) error {
	query := r.db.Rebind(`
		UPDATE events
		SET title = ?, description = ?, event_date = ?, event_type = ?
		WHERE id = ?
	`)
	res, err := r.db.Exec(
		query,
		event.Title,
		event.Description,
		event.EventDate,
		string(event.EventType),
		event.ID,
	)
	if err != nil {
		return repository.Translate("update event", err)
	}
	return repository.CheckAffected("update event", res)
}

func (r *eventRepository) Delete(id int64) error {
	query := r.db.Rebind(`DELETE FROM events WHERE id = ?`)
	res, err := r.db.Exec(query, id)
	if err != nil {
		return repository.Translate("delete event", err)
	}
	return repository.CheckAffected("delete event", res)
}

// GetRange returns events dated within [from, to], soonest first.
func (r *eventRepository) GetRange(from, to string) ([]models.Event, error) {
	events := []models.Event{}
	query := r.db.Rebind(`
		SELECT ` + eventColumns + `
		FROM events
		WHERE event_date BETWEEN ? AND ?
		ORDER BY event_date ASC, id ASC
	`)
	if err := r.db.Select(&events, query, from, to); err != nil {
		return nil, repository.Translate("events range", err)
	}
	return events, nil
}

// GetRecent returns the latest dated events first.
func (r *eventRepository) GetRecent(limit int) ([]models.Event, error) {
	events := []models.Event{}
	query := r.db.Rebind(`
		SELECT ` + eventColumns + `
		FROM events
		ORDER BY event_date DESC, id DESC
		LIMIT ?
	`)
	if err := r.db.Select(&events, query, limit); err != nil {
		return nil, repository.Translate("recent events", err)
	}
	return events, nil
}
