package event

import (
	"context"
	"testing"
	"time"

	"github.com/dallyeok/dallyeok/internal/event_bus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns an id and stores the event", func(t *testing.T) {
		repo := &StubEventRepository{}
		service := NewEventService(repo, event_bus.NewEventBus())

		created, err := service.CreateEvent(ctx, meetingAt("", "2024-10-01", "10:00", "11:00"))

		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Len(t, repo.Events, 1)
		assert.Equal(t, created, repo.Events[0])
	})

	t.Run("keeps a caller-provided id", func(t *testing.T) {
		repo := &StubEventRepository{}
		service := NewEventService(repo, event_bus.NewEventBus())

		created, err := service.CreateEvent(ctx, meetingAt("external-1", "2024-10-01", "10:00", "11:00"))

		require.NoError(t, err)
		assert.Equal(t, "external-1", created.ID)
	})

	t.Run("publishes a created event on the bus", func(t *testing.T) {
		repo := &StubEventRepository{}
		bus := event_bus.NewEventBus()
		service := NewEventService(repo, bus)

		var published []event_bus.CalendarEventCreated
		event_bus.SubscribeTyped(bus, event_bus.CalendarEventCreatedType,
			func(e event_bus.EventT[event_bus.CalendarEventCreated]) error {
				published = append(published, e.Data)
				return nil
			})

		created, err := service.CreateEvent(ctx, meetingAt("", "2024-10-01", "10:00", "11:00"))

		require.NoError(t, err)
		require.Len(t, published, 1)
		assert.Equal(t, created.ID, published[0].UID)
		assert.Equal(t, "2024-10-01", published[0].Date)
	})
}

func TestUpdateEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("updates a stored event", func(t *testing.T) {
		original := meetingAt("1", "2024-10-01", "10:00", "11:00")
		repo := &StubEventRepository{Events: []Event{original}}
		service := NewEventService(repo, event_bus.NewEventBus())

		changed := original
		changed.Title = "옮겨진 회의"
		changed.Date = "2024-10-02"

		updated, err := service.UpdateEvent(ctx, changed)

		require.NoError(t, err)
		assert.Equal(t, changed, updated)
		assert.Equal(t, changed, repo.Events[0])
	})

	t.Run("returns ErrEventNotFound for an unknown id", func(t *testing.T) {
		repo := &StubEventRepository{}
		service := NewEventService(repo, event_bus.NewEventBus())

		_, err := service.UpdateEvent(ctx, meetingAt("missing", "2024-10-01", "10:00", "11:00"))

		assert.ErrorIs(t, err, ErrEventNotFound)
	})
}

func TestDeleteEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes a stored event and publishes a deletion", func(t *testing.T) {
		repo := &StubEventRepository{Events: []Event{meetingAt("1", "2024-10-01", "10:00", "11:00")}}
		bus := event_bus.NewEventBus()
		service := NewEventService(repo, bus)

		var deletedIds []string
		event_bus.SubscribeTyped(bus, event_bus.CalendarEventDeletedType,
			func(e event_bus.EventT[event_bus.CalendarEventDeleted]) error {
				deletedIds = append(deletedIds, e.Data.UID)
				return nil
			})

		err := service.DeleteEvent(ctx, "1")

		require.NoError(t, err)
		assert.Empty(t, repo.Events)
		assert.Equal(t, []string{"1"}, deletedIds)
	})

	t.Run("returns ErrEventNotFound for an unknown id", func(t *testing.T) {
		service := NewEventService(&StubEventRepository{}, event_bus.NewEventBus())

		assert.ErrorIs(t, service.DeleteEvent(ctx, "missing"), ErrEventNotFound)
	})
}

func TestFilteredEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("applies window and search over the stored events", func(t *testing.T) {
		julyEvent := meetingAt("1", "2024-07-01", "10:00", "11:00")
		octoberEvent := meetingAt("2", "2024-10-01", "10:00", "11:00")
		repo := &StubEventRepository{Events: []Event{julyEvent, octoberEvent}}
		service := NewEventService(repo, event_bus.NewEventBus())

		july := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.Local)
		filtered, err := service.FilteredEvents(ctx, "", july, ViewMonth)

		require.NoError(t, err)
		assert.Equal(t, []Event{julyEvent}, filtered)
	})
}

func TestOverlappingEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("finds stored events colliding with the candidate", func(t *testing.T) {
		stored := meetingAt("1", "2024-10-01", "10:00", "11:00")
		apart := meetingAt("2", "2024-10-15", "10:00", "11:00")
		repo := &StubEventRepository{Events: []Event{stored, apart}}
		service := NewEventService(repo, event_bus.NewEventBus())

		overlapping, err := service.OverlappingEvents(ctx, meetingAt("3", "2024-10-01", "10:30", "11:30"))

		require.NoError(t, err)
		assert.Equal(t, []Event{stored}, overlapping)
	})
}
