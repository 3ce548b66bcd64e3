package event

import (
	"context"
)

type StubEventRepository struct {
	Events []Event
}

func (s *StubEventRepository) StoreEvent(ctx context.Context, event Event) error {
	s.Events = append(s.Events, event)
	return nil
}

func (s *StubEventRepository) GetEvent(ctx context.Context, eventId string) (*Event, error) {
	for i := range s.Events {
		if s.Events[i].ID == eventId {
			found := s.Events[i]
			return &found, nil
		}
	}
	return nil, nil
}

func (s *StubEventRepository) GetAllEvents(ctx context.Context) ([]Event, error) {
	events := make([]Event, len(s.Events))
	copy(events, s.Events)
	return events, nil
}

func (s *StubEventRepository) UpdateEvent(ctx context.Context, event Event) (bool, error) {
	for i := range s.Events {
		if s.Events[i].ID == event.ID {
			s.Events[i] = event
			return true, nil
		}
	}
	return false, nil
}

func (s *StubEventRepository) DeleteEvent(ctx context.Context, eventId string) (bool, error) {
	for i := range s.Events {
		if s.Events[i].ID == eventId {
			s.Events = append(s.Events[:i], s.Events[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *StubEventRepository) Cleanup() {
	s.Events = []Event{}
}
