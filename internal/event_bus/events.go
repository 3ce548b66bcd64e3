package event_bus

const (
	CalendarEventCreatedType EventType = "calendar.event.created"
	CalendarEventUpdatedType EventType = "calendar.event.updated"
	CalendarEventDeletedType EventType = "calendar.event.deleted"
)

type CalendarEventCreated struct {
	UID       string
	Title     string
	Date      string
	StartTime string
	EndTime   string
}

type CalendarEventUpdated struct {
	UID       string
	Title     string
	Date      string
	StartTime string
	EndTime   string
}

type CalendarEventDeleted struct {
	UID string
}
