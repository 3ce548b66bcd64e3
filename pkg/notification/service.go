package notification

import (
	"context"
	"fmt"
	"sync"

	"github.com/dallyeok/dallyeok/internal/event_bus"
	"github.com/dallyeok/dallyeok/internal/utils"
	"github.com/dallyeok/dallyeok/pkg/event"
	log "github.com/sirupsen/logrus"
)

// Notification is a single rendered notification for a due event.
type Notification struct {
	EventID string `json:"eventId"`
	Message string `json:"message"`
}

// EventReader is the slice of the event service the notifier needs.
type EventReader interface {
	ListEvents(ctx context.Context) ([]event.Event, error)
}

// Service tracks which events have already been notified and, on each poll,
// returns only the newly due ones. The due/not-due decision itself lives in
// UpcomingEvents; this type only owns the dispatched-id set.
type Service struct {
	events EventReader
	clock  utils.Clock

	mu         sync.Mutex
	dispatched map[string]bool
}

func NewService(events EventReader, clock utils.Clock, bus *event_bus.EventBus) *Service {
	s := &Service{
		events:     events,
		clock:      clock,
		dispatched: make(map[string]bool),
	}
	if bus != nil {
		// A deleted event must be able to notify again if it is later
		// recreated with the same id.
		event_bus.SubscribeTyped(bus, event_bus.CalendarEventDeletedType,
			func(e event_bus.EventT[event_bus.CalendarEventDeleted]) error {
				s.mu.Lock()
				delete(s.dispatched, e.Data.UID)
				s.mu.Unlock()
				log.Debugf("cleared dispatched notification for deleted event %s", e.Data.UID)
				return nil
			})
	}
	return s
}

// Poll returns the notifications that became due since the previous poll and
// marks their events as dispatched.
func (s *Service) Poll(ctx context.Context) ([]Notification, error) {
	events, err := s.events.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	due := UpcomingEvents(events, s.clock.Now(), s.dispatched)
	notifications := make([]Notification, 0, len(due))
	for _, e := range due {
		s.dispatched[e.ID] = true
		notifications = append(notifications, Notification{
			EventID: e.ID,
			Message: Message(e),
		})
	}
	return notifications, nil
}
