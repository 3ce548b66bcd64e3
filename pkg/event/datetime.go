package event

import "time"

// dateTimeLayout is the canonical combined form an event's date and time
// strings are parsed through.
const dateTimeLayout = "2006-01-02T15:04"

// ParseDateTime combines a YYYY-MM-DD date string and an HH:MM time string
// into a single local point in time. If either input is empty or malformed,
// or the combination is not a real date-time, the zero time.Time is returned;
// callers detect it with IsZero. Parsing never returns an error because a
// malformed event must degrade to "matches nothing", not fail the whole
// operation it is part of.
func ParseDateTime(dateStr, timeStr string) time.Time {
	if dateStr == "" || timeStr == "" {
		return time.Time{}
	}
	t, err := time.ParseInLocation(dateTimeLayout, dateStr+"T"+timeStr, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// EventToRange derives the event's [start, end) time range from its date and
// start/end time strings. An unparseable component yields a zero endpoint;
// start < end is not enforced here.
func EventToRange(e Event) TimeRange {
	return TimeRange{
		Start: ParseDateTime(e.Date, e.StartTime),
		End:   ParseDateTime(e.Date, e.EndTime),
	}
}
