package notification

import (
	"context"
	"testing"
	"time"

	"github.com/dallyeok/dallyeok/internal/event_bus"
	"github.com/dallyeok/dallyeok/internal/utils"
	"github.com/dallyeok/dallyeok/pkg/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEventReader struct {
	events []event.Event
}

func (s *stubEventReader) ListEvents(ctx context.Context) ([]event.Event, error) {
	return s.events, nil
}

func TestPoll(t *testing.T) {
	ctx := context.Background()

	t.Run("returns a rendered notification for a due event", func(t *testing.T) {
		reader := &stubEventReader{events: []event.Event{teamMeeting()}}
		clock := &utils.MockClock{FixedNow: time.Date(2024, time.October, 1, 9, 59, 0, 0, time.Local)}
		service := NewService(reader, clock, event_bus.NewEventBus())

		notifications, err := service.Poll(ctx)

		require.NoError(t, err)
		assert.Equal(t, []Notification{{
			EventID: "0",
			Message: "1분 후 팀 회의 일정이 시작됩니다.",
		}}, notifications)
	})

	t.Run("repeated polling does not re-notify", func(t *testing.T) {
		reader := &stubEventReader{events: []event.Event{teamMeeting()}}
		clock := &utils.MockClock{FixedNow: time.Date(2024, time.October, 1, 9, 59, 0, 0, time.Local)}
		service := NewService(reader, clock, event_bus.NewEventBus())

		first, err := service.Poll(ctx)
		require.NoError(t, err)
		require.Len(t, first, 1)

		clock.SetNow(time.Date(2024, time.October, 1, 9, 59, 30, 0, time.Local))
		second, err := service.Poll(ctx)
		require.NoError(t, err)
		assert.Empty(t, second)
	})

	t.Run("returns nothing while no event is due", func(t *testing.T) {
		reader := &stubEventReader{events: []event.Event{teamMeeting()}}
		clock := &utils.MockClock{FixedNow: time.Date(2024, time.October, 1, 9, 0, 0, 0, time.Local)}
		service := NewService(reader, clock, event_bus.NewEventBus())

		notifications, err := service.Poll(ctx)

		require.NoError(t, err)
		assert.Empty(t, notifications)
	})

	t.Run("a deleted event may notify again after recreation", func(t *testing.T) {
		reader := &stubEventReader{events: []event.Event{teamMeeting()}}
		clock := &utils.MockClock{FixedNow: time.Date(2024, time.October, 1, 9, 59, 0, 0, time.Local)}
		bus := event_bus.NewEventBus()
		service := NewService(reader, clock, bus)

		first, err := service.Poll(ctx)
		require.NoError(t, err)
		require.Len(t, first, 1)

		err = bus.Publish(event_bus.NewEvent(ctx, event_bus.CalendarEventDeletedType,
			event_bus.CalendarEventDeleted{UID: "0"}))
		require.NoError(t, err)

		again, err := service.Poll(ctx)
		require.NoError(t, err)
		assert.Len(t, again, 1)
	})
}
