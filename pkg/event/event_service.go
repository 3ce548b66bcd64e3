package event

import (
	"context"
	"fmt"
	"time"

	"github.com/dallyeok/dallyeok/internal/event_bus"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var ErrEventNotFound = fmt.Errorf("event not found")

type EventService interface {
	ListEvents(ctx context.Context) ([]Event, error)
	GetEvent(ctx context.Context, eventId string) (Event, error)
	CreateEvent(ctx context.Context, event Event) (Event, error)
	UpdateEvent(ctx context.Context, event Event) (Event, error)
	DeleteEvent(ctx context.Context, eventId string) error
	FilteredEvents(ctx context.Context, term string, reference time.Time, view View) ([]Event, error)
	OverlappingEvents(ctx context.Context, candidate Event) ([]Event, error)
}

type EventServiceImpl struct {
	repo EventRepository
	bus  *event_bus.EventBus
}

func NewEventService(repo EventRepository, bus *event_bus.EventBus) *EventServiceImpl {
	return &EventServiceImpl{repo: repo, bus: bus}
}

func (s *EventServiceImpl) ListEvents(ctx context.Context) ([]Event, error) {
	return s.repo.GetAllEvents(ctx)
}

func (s *EventServiceImpl) GetEvent(ctx context.Context, eventId string) (Event, error) {
	event, err := s.repo.GetEvent(ctx, eventId)
	if err != nil {
		return Event{}, fmt.Errorf("failed to get event: %w", err)
	}
	if event == nil {
		return Event{}, ErrEventNotFound
	}
	return *event, nil
}

func (s *EventServiceImpl) CreateEvent(ctx context.Context, event Event) (Event, error) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if err := s.repo.StoreEvent(ctx, event); err != nil {
		return Event{}, fmt.Errorf("failed to store event: %w", err)
	}
	s.publish(ctx, event_bus.CalendarEventCreatedType, event_bus.CalendarEventCreated{
		UID:       event.ID,
		Title:     event.Title,
		Date:      event.Date,
		StartTime: event.StartTime,
		EndTime:   event.EndTime,
	})
	return event, nil
}

func (s *EventServiceImpl) UpdateEvent(ctx context.Context, event Event) (Event, error) {
	updated, err := s.repo.UpdateEvent(ctx, event)
	if err != nil {
		return Event{}, fmt.Errorf("failed to update event: %w", err)
	}
	if !updated {
		return Event{}, ErrEventNotFound
	}
	s.publish(ctx, event_bus.CalendarEventUpdatedType, event_bus.CalendarEventUpdated{
		UID:       event.ID,
		Title:     event.Title,
		Date:      event.Date,
		StartTime: event.StartTime,
		EndTime:   event.EndTime,
	})
	return event, nil
}

func (s *EventServiceImpl) DeleteEvent(ctx context.Context, eventId string) error {
	deleted, err := s.repo.DeleteEvent(ctx, eventId)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if !deleted {
		return ErrEventNotFound
	}
	s.publish(ctx, event_bus.CalendarEventDeletedType, event_bus.CalendarEventDeleted{UID: eventId})
	return nil
}

// FilteredEvents returns the stored events restricted to the given view
// window around the reference date and matching the search term.
func (s *EventServiceImpl) FilteredEvents(ctx context.Context, term string, reference time.Time, view View) ([]Event, error) {
	events, err := s.repo.GetAllEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	return FilterEvents(events, term, reference, view), nil
}

// OverlappingEvents returns every stored event colliding with the candidate's
// time range, so a client can warn before saving.
func (s *EventServiceImpl) OverlappingEvents(ctx context.Context, candidate Event) ([]Event, error) {
	events, err := s.repo.GetAllEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	return FindOverlapping(candidate, events), nil
}

func (s *EventServiceImpl) publish(ctx context.Context, eventType event_bus.EventType, data any) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(event_bus.NewEvent(ctx, eventType, data)); err != nil {
		log.Errorf("failed to publish %s: %v", eventType, err)
	}
}
