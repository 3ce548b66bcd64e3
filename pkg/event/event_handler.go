package event

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/dallyeok/dallyeok/internal/rest"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type RepeatDTO struct {
	Type     string `json:"type"`
	Interval int    `json:"interval"`
}

type EventDTO struct {
	ID               string    `json:"id,omitempty"`
	Title            string    `json:"title"`
	Description      string    `json:"description,omitempty"`
	Location         string    `json:"location,omitempty"`
	Category         string    `json:"category,omitempty"`
	Date             string    `json:"date"`
	StartTime        string    `json:"startTime"`
	EndTime          string    `json:"endTime"`
	Repeat           RepeatDTO `json:"repeat"`
	NotificationTime int       `json:"notificationTime"`
}

type EventHandler struct {
	eventService EventService
}

func NewEventHandler(eventService EventService) *EventHandler {
	return &EventHandler{eventService}
}

// GetEvents returns all events, or the filtered subset when the search, date
// and view query parameters are present.
func (h *EventHandler) GetEvents(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	dateParam := r.URL.Query().Get("date")
	viewParam := r.URL.Query().Get("view")
	searchParam := r.URL.Query().Get("search")

	var events []Event
	var err error
	if dateParam != "" && viewParam != "" {
		view := View(viewParam)
		if view != ViewWeek && view != ViewMonth {
			writeError(w, http.StatusBadRequest, "Invalid view", "View must be one of: week, month")
			return
		}
		reference, parseErr := time.ParseInLocation("2006-01-02", dateParam, time.Local)
		if parseErr != nil {
			writeError(w, http.StatusBadRequest, "Invalid date format", "Date must be in YYYY-MM-DD format")
			return
		}
		events, err = h.eventService.FilteredEvents(r.Context(), searchParam, reference, view)
	} else {
		events, err = h.eventService.ListEvents(r.Context())
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]EventDTO, 0, len(events))
	for _, e := range events {
		dtos = append(dtos, eventToDTO(e))
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	eventId := mux.Vars(r)["eventId"]

	event, err := h.eventService.GetEvent(r.Context(), eventId)
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			http.Error(w, "Event not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := json.NewEncoder(w).Encode(eventToDTO(event)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Trace("Creating new event")

	var dto EventDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}
	log.Debug("New event request: ", dto)

	event := dtoToEvent(dto)
	if details, ok := validateEvent(event); !ok {
		writeError(w, http.StatusBadRequest, "Invalid event", details)
		return
	}

	storedEvent, err := h.eventService.CreateEvent(r.Context(), event)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(eventToDTO(storedEvent)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *EventHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	eventId := mux.Vars(r)["eventId"]

	var dto EventDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}

	event := dtoToEvent(dto)
	event.ID = eventId
	if details, ok := validateEvent(event); !ok {
		writeError(w, http.StatusBadRequest, "Invalid event", details)
		return
	}

	updatedEvent, err := h.eventService.UpdateEvent(r.Context(), event)
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			http.Error(w, "Event not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := json.NewEncoder(w).Encode(eventToDTO(updatedEvent)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventId := mux.Vars(r)["eventId"]

	if err := h.eventService.DeleteEvent(r.Context(), eventId); err != nil {
		if errors.Is(err, ErrEventNotFound) {
			http.Error(w, "Event not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// FindOverlapping takes a candidate event in the request body and returns all
// stored events colliding with its time range, so the client can warn the
// user before saving.
func (h *EventHandler) FindOverlapping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto EventDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}

	overlapping, err := h.eventService.OverlappingEvents(r.Context(), dtoToEvent(dto))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]EventDTO, 0, len(overlapping))
	for _, e := range overlapping {
		dtos = append(dtos, eventToDTO(e))
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// validateEvent checks the shape of an incoming event at the API boundary.
// Inside the service the fields are treated as opaque strings.
func validateEvent(e Event) (string, bool) {
	if e.Title == "" {
		return "Title must not be empty", false
	}
	if ParseDateTime(e.Date, e.StartTime).IsZero() {
		return "Date must be YYYY-MM-DD and startTime must be HH:MM", false
	}
	if ParseDateTime(e.Date, e.EndTime).IsZero() {
		return "Date must be YYYY-MM-DD and endTime must be HH:MM", false
	}
	switch e.Repeat.Type {
	case RepeatNone, RepeatDaily, RepeatWeekly, RepeatMonthly, RepeatYearly:
	default:
		return "Repeat type must be one of: none, daily, weekly, monthly, yearly", false
	}
	if e.Repeat.Interval < 0 {
		return "Repeat interval must not be negative", false
	}
	if e.NotificationTime < 0 {
		return "Notification time must not be negative", false
	}
	return "", true
}

func writeError(w http.ResponseWriter, status int, message, details string) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(rest.ErrorResponse{Error: message, Details: details}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func eventToDTO(e Event) EventDTO {
	return EventDTO{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Location:    e.Location,
		Category:    e.Category,
		Date:        e.Date,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		Repeat: RepeatDTO{
			Type:     string(e.Repeat.Type),
			Interval: e.Repeat.Interval,
		},
		NotificationTime: e.NotificationTime,
	}
}

func dtoToEvent(dto EventDTO) Event {
	repeatType := RepeatType(dto.Repeat.Type)
	if dto.Repeat.Type == "" {
		repeatType = RepeatNone
	}
	return Event{
		ID:          dto.ID,
		Title:       dto.Title,
		Description: dto.Description,
		Location:    dto.Location,
		Category:    dto.Category,
		Date:        dto.Date,
		StartTime:   dto.StartTime,
		EndTime:     dto.EndTime,
		Repeat: RepeatInfo{
			Type:     repeatType,
			Interval: dto.Repeat.Interval,
		},
		NotificationTime: dto.NotificationTime,
	}
}
