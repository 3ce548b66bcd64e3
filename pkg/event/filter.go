package event

import (
	"strings"
	"time"
)

// View selects the calendar window used when filtering events against a
// reference date.
type View string

const (
	ViewWeek  View = "week"
	ViewMonth View = "month"
)

const dateLayout = "2006-01-02"

// matchesSearch reports whether the term occurs, case-insensitively, in the
// event's title, description, or location. An empty term matches everything.
func matchesSearch(e Event, term string) bool {
	if term == "" {
		return true
	}
	folded := strings.ToLower(term)
	return strings.Contains(strings.ToLower(e.Title), folded) ||
		strings.Contains(strings.ToLower(e.Description), folded) ||
		strings.Contains(strings.ToLower(e.Location), folded)
}

// startOfWeek returns midnight of the Sunday on or before t. Weeks start on
// Sunday, matching the calendar view.
func startOfWeek(t time.Time) time.Time {
	year, month, day := t.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}

// isInWindow reports whether the event's calendar date falls inside the week
// or month containing the reference date. Time of day plays no part; an
// unparseable event date is never inside any window.
func isInWindow(e Event, reference time.Time, view View) bool {
	date, err := time.ParseInLocation(dateLayout, e.Date, time.Local)
	if err != nil {
		return false
	}
	switch view {
	case ViewWeek:
		weekStart := startOfWeek(reference)
		weekEnd := weekStart.AddDate(0, 0, 7)
		return !date.Before(weekStart) && date.Before(weekEnd)
	case ViewMonth:
		return date.Year() == reference.Year() && date.Month() == reference.Month()
	}
	return false
}

// FilterEvents restricts events to those inside the view window around the
// reference date that also match the search term. The relative order of the
// input is preserved and the input slice is never modified.
func FilterEvents(events []Event, term string, reference time.Time, view View) []Event {
	filtered := make([]Event, 0, len(events))
	for _, e := range events {
		if isInWindow(e, reference, view) && matchesSearch(e, term) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
