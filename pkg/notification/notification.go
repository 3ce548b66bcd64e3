// Package notification decides when calendar events become due for a
// notification and renders the notification text.
package notification

import (
	"fmt"
	"time"

	"github.com/dallyeok/dallyeok/pkg/event"
)

// UpcomingEvents returns the events whose notification window contains now:
// the half-open interval from notificationTime minutes before the event's
// start up to, but excluding, the start itself. Events whose id is already in
// dispatched are skipped, which makes repeated polling idempotent as long as
// the caller accumulates the dispatched set. Neither input is modified and
// the input order is preserved. Events with an unparseable date or start time
// are never due.
func UpcomingEvents(events []event.Event, now time.Time, dispatched map[string]bool) []event.Event {
	upcoming := make([]event.Event, 0)
	for _, e := range events {
		if dispatched[e.ID] {
			continue
		}
		start := event.ParseDateTime(e.Date, e.StartTime)
		if start.IsZero() {
			continue
		}
		notifyAt := start.Add(-time.Duration(e.NotificationTime) * time.Minute)
		if !now.Before(notifyAt) && now.Before(start) {
			upcoming = append(upcoming, e)
		}
	}
	return upcoming
}

// Message renders the notification text for an event.
func Message(e event.Event) string {
	return fmt.Sprintf("%d분 후 %s 일정이 시작됩니다.", e.NotificationTime, e.Title)
}
