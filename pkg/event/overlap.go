package event

// IsOverlapping reports whether the time ranges of two events intersect.
// Ranges are half-open, so events that only touch at an endpoint (one's end
// equals the other's start) do not overlap. If either event has an
// unparseable date or time the result is false.
func IsOverlapping(a, b Event) bool {
	rangeA := EventToRange(a)
	rangeB := EventToRange(b)
	if !rangeA.IsValid() || !rangeB.IsValid() {
		return false
	}
	return rangeA.Start.Before(rangeB.End) && rangeB.Start.Before(rangeA.End)
}

// FindOverlapping returns every event in events whose time range intersects
// the candidate's, preserving input order. Events sharing the candidate's id
// are skipped so an event being edited does not collide with its own stored
// copy. The input slice is never modified.
func FindOverlapping(candidate Event, events []Event) []Event {
	overlapping := make([]Event, 0)
	for _, e := range events {
		if e.ID == candidate.ID {
			continue
		}
		if IsOverlapping(candidate, e) {
			overlapping = append(overlapping, e)
		}
	}
	return overlapping
}
