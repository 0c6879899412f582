package event_service

import (
	"strings"
	"time"

	"student-control/internal/models"
	"student-control/internal/repository"
	"student-control/internal/service"
	"student-control/internal/validation"
)

// RecentLimit caps the unfiltered event listing.
const RecentLimit = 50

type eventService struct {
	eventRepo repository.EventRepository
	now       func() time.Time
}

func NewEventService(eventRepo repository.EventRepository) service.EventService {
	return &eventService{
		eventRepo: eventRepo,
		now:       time.Now,
	}
}

func (s *eventService) Create(input models.EventInput) (*models.Event, error) {
	event, err := toEvent(input)
	if err != nil {
		return nil, err
	}
	if err := s.eventRepo.Create(event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) Update(id int64, input models.EventInput) (*models.Event, error) {
	event, err := toEvent(input)
	if err != nil {
		return nil, err
	}
	event.ID = id
	if err := s.eventRepo.Update(event); err != nil {
		return nil, err
	}
	return s.eventRepo.GetByID(id)
}

func (s *eventService) Delete(id int64) error {
	return s.eventRepo.Delete(id)
}

func (s *eventService) GetByID(id int64) (*models.Event, error) {
	return s.eventRepo.GetByID(id)
}

func (s *eventService) GetEvents(from, to string) ([]models.Event, error) {
	if from == "" && to == "" {
		return s.eventRepo.GetRecent(RecentLimit)
	}
	if from == "" {
		from = "0000-01-01"
	}
	if to == "" {
		to = "9999-12-31"
	}
	return s.eventRepo.GetRange(from, to)
}

// GetUpcoming returns events from today through the next days days.
func (s *eventService) GetUpcoming(days int) ([]models.Event, error) {
	if days < 0 {
		return nil, validation.Field("days", "days não pode ser negativo")
	}
	today := s.now()
	return s.eventRepo.GetRange(
		today.Format(models.DateLayout),
		today.AddDate(0, 0, days).Format(models.DateLayout),
	)
}

func toEvent(input models.EventInput) (*models.Event, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	input.EventDate = strings.TrimSpace(input.EventDate)
	input.EventType = strings.ToLower(strings.TrimSpace(input.EventType))
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	eventType := models.EventType(input.EventType)
	if eventType == "" {
		eventType = models.EventNotice
	}
	return &models.Event{
		Title:       input.Title,
		Description: input.Description,
		EventDate:   input.EventDate,
		EventType:   eventType,
	}, nil
}
