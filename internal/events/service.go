package events

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"eventboard/internal/models"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Letters and spaces only: "New York" passes, "New York123" does not.
// Applied at creation time only; updates have never re-validated.
var locationPattern = regexp.MustCompile(`^[A-Za-z\s]+$`)

var (
	ErrMissingFields   = errors.New("All fields are required")
	ErrInvalidLocation = errors.New("Location must contain only alphabetic characters and spaces")
)

type EventDBLayer interface {
	ListEvents(ctx context.Context, limit, offset int) ([]models.Event, error)
	CountEvents(ctx context.Context) (int, error)
	CreateEvent(ctx context.Context, event *models.Event) error
	GetEventByID(ctx context.Context, id int64) (*models.Event, error)
	UpdateEvent(ctx context.Context, event models.Event) error
	DeleteEvent(ctx context.Context, id int64) (int64, error)
}

type EventService struct {
	DB EventDBLayer
}

func NewEventService(db EventDBLayer) *EventService {
	return &EventService{DB: db}
}

// ListEvents returns the requested page. Zero and negative page/limit values
// are passed through unclamped, exactly like the system this replaces; only
// unparseable input falls back to the defaults, and the caller does that.
func (s *EventService) ListEvents(ctx context.Context, page, limit int) (*models.EventPage, error) {
	offset := (page - 1) * limit

	events, err := s.DB.ListEvents(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	total, err := s.DB.CountEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}

	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return &models.EventPage{
		Events:     events,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

func (s *EventService) AddEvent(ctx context.Context, name, date, location string) error {
	if name == "" || date == "" || location == "" {
		return ErrMissingFields
	}
	if !locationPattern.MatchString(location) {
		return ErrInvalidLocation
	}

	event := models.Event{Name: name, Date: date, Location: location}
	if err := s.DB.CreateEvent(ctx, &event); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (s *EventService) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	event, err := s.DB.GetEventByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("event %d: %w", id, err)
	}
	return event, nil
}

// UpdateEvent overwrites name/date/location unconditionally. No field is
// re-validated, matching the original edit flow.
func (s *EventService) UpdateEvent(ctx context.Context, id int64, name, date, location string) error {
	event := models.Event{ID: id, Name: name, Date: date, Location: location}
	if err := s.DB.UpdateEvent(ctx, event); err != nil {
		return fmt.Errorf("update event %d: %w", id, err)
	}
	return nil
}

// DeleteEvent reports whether a row was actually removed.
func (s *EventService) DeleteEvent(ctx context.Context, id int64) (bool, error) {
	affected, err := s.DB.DeleteEvent(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete event %d: %w", id, err)
	}
	return affected > 0, nil
}
