package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"teamhub/internal/adapters/persistence/models"
	"teamhub/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// Event service errors
var (
	ErrEventNotFound      = errors.New("event not found")
	ErrInvalidEventType   = errors.New("event type must be TRAINING or FRIENDLY")
	ErrOpponentRequired   = errors.New("opponent is required for friendly matches")
	ErrInvalidEventDate   = errors.New("event date must be YYYY-MM-DD")
	ErrEventTitleRequired = errors.New("event title is required")
)

// EventService handles training sessions and friendly matches
type EventService struct {
	eventRepo *repositories.EventRepository
}

// NewEventService creates a new event service
func NewEventService(eventRepo *repositories.EventRepository) *EventService {
	return &EventService{eventRepo: eventRepo}
}

// CreateEventInput represents create event input
type CreateEventInput struct {
	Title     string  `json:"title" validate:"required,min=2,max=150"`
	EventType string  `json:"event_type" validate:"required"`
	EventDate string  `json:"event_date" validate:"required"`
	StartTime *string `json:"start_time"`
	Location  string  `json:"location"`
	Opponent  *string `json:"opponent"`
	Notes     string  `json:"notes"`
}

// UpdateEventInput represents update event input
type UpdateEventInput struct {
	Title     *string `json:"title"`
	EventDate *string `json:"event_date"`
	StartTime *string `json:"start_time"`
	Location  *string `json:"location"`
	Opponent  *string `json:"opponent"`
	Notes     *string `json:"notes"`
}

// ListEventsInput represents list events input
type ListEventsInput struct {
	Page      int
	Limit     int
	EventType string
}

// ListEventsOutput represents list events output
type ListEventsOutput struct {
	Events     []*models.Event `json:"events"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
}

// CreateEvent creates a new event. Friendly matches must name an opponent;
// training sessions never carry one.
func (s *EventService) CreateEvent(ctx context.Context, createdBy uint, input *CreateEventInput) (*models.Event, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrEventTitleRequired
	}

	eventType := strings.ToUpper(strings.TrimSpace(input.EventType))
	if eventType != models.EventTypeTraining && eventType != models.EventTypeFriendly {
		return nil, ErrInvalidEventType
	}

	eventDate, err := time.Parse("2006-01-02", input.EventDate)
	if err != nil {
		return nil, ErrInvalidEventDate
	}

	var opponent *string
	if eventType == models.EventTypeFriendly {
		if input.Opponent == nil || strings.TrimSpace(*input.Opponent) == "" {
			return nil, ErrOpponentRequired
		}
		trimmed := strings.TrimSpace(*input.Opponent)
		opponent = &trimmed
	}

	event := &models.Event{
		Title:     title,
		EventType: eventType,
		EventDate: eventDate,
		StartTime: input.StartTime,
		Location:  strings.TrimSpace(input.Location),
		Opponent:  opponent,
		Notes:     input.Notes,
		CreatedBy: createdBy,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	log.Printf("✅ Event created: %s on %s (ID: %d)", event.Title, event.EventDate.Format("2006-01-02"), event.ID)
	return event, nil
}

// GetEventByID gets an event by ID
func (s *EventService) GetEventByID(ctx context.Context, id uint) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

// UpdateEvent updates an event. The event type is fixed at creation.
func (s *EventService) UpdateEvent(ctx context.Context, id uint, input *UpdateEventInput) (*models.Event, error) {
	event, err := s.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, ErrEventTitleRequired
		}
		event.Title = title
	}
	if input.EventDate != nil {
		eventDate, err := time.Parse("2006-01-02", *input.EventDate)
		if err != nil {
			return nil, ErrInvalidEventDate
		}
		event.EventDate = eventDate
	}
	if input.StartTime != nil {
		event.StartTime = input.StartTime
	}
	if input.Location != nil {
		event.Location = strings.TrimSpace(*input.Location)
	}
	if input.Opponent != nil {
		if event.EventType == models.EventTypeFriendly {
			trimmed := strings.TrimSpace(*input.Opponent)
			if trimmed == "" {
				return nil, ErrOpponentRequired
			}
			event.Opponent = &trimmed
		}
	}
	if input.Notes != nil {
		event.Notes = *input.Notes
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

// DeleteEvent soft deletes an event
func (s *EventService) DeleteEvent(ctx context.Context, id uint) error {
	if _, err := s.GetEventByID(ctx, id); err != nil {
		return err
	}
	return s.eventRepo.Delete(ctx, id)
}

// ListEvents lists events with pagination
func (s *EventService) ListEvents(ctx context.Context, input *ListEventsInput) (*ListEventsOutput, error) {
	if input.Page < 1 {
		input.Page = 1
	}
	if input.Limit < 1 {
		input.Limit = 20
	}
	if input.Limit > 100 {
		input.Limit = 100
	}

	eventType := strings.ToUpper(strings.TrimSpace(input.EventType))
	if eventType != "" && eventType != models.EventTypeTraining && eventType != models.EventTypeFriendly {
		return nil, ErrInvalidEventType
	}

	offset := (input.Page - 1) * input.Limit

	events, total, err := s.eventRepo.List(ctx, offset, input.Limit, eventType)
	if err != nil {
		return nil, err
	}

	totalPages := int(total) / input.Limit
	if int(total)%input.Limit > 0 {
		totalPages++
	}

	return &ListEventsOutput{
		Events:     events,
		Total:      total,
		Page:       input.Page,
		Limit:      input.Limit,
		TotalPages: totalPages,
	}, nil
}

// ListUpcomingEvents lists events from today onward
func (s *EventService) ListUpcomingEvents(ctx context.Context, limit int) ([]*models.Event, error) {
	if limit < 1 || limit > 50 {
		limit = 10
	}
	today := time.Now().Truncate(24 * time.Hour)
	return s.eventRepo.ListUpcoming(ctx, today, limit)
}
