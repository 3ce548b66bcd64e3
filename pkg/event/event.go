package event

import "time"

// RepeatType enumerates the recurrence kinds an event can carry. The repeat
// descriptor is stored and served as-is; occurrences are never expanded here.
type RepeatType string

const (
	RepeatNone    RepeatType = "none"
	RepeatDaily   RepeatType = "daily"
	RepeatWeekly  RepeatType = "weekly"
	RepeatMonthly RepeatType = "monthly"
	RepeatYearly  RepeatType = "yearly"
)

type RepeatInfo struct {
	Type     RepeatType
	Interval int
}

// Event is a single calendar entry. Date is a YYYY-MM-DD string and
// StartTime/EndTime are HH:MM wall-clock strings; both are interpreted as
// naive local time. NotificationTime is the number of minutes before
// StartTime at which a notification becomes due.
type Event struct {
	ID               string
	Title            string
	Description      string
	Location         string
	Category         string
	Date             string
	StartTime        string
	EndTime          string
	Repeat           RepeatInfo
	NotificationTime int
}

// TimeRange is the half-open interval [Start, End) derived from an event's
// date and start/end times. It is recomputed per call and never persisted.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// IsValid reports whether both endpoints of the range were parsed
// successfully.
func (r TimeRange) IsValid() bool {
	return !r.Start.IsZero() && !r.End.IsZero()
}
