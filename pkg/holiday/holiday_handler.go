package holiday

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dallyeok/dallyeok/internal/rest"
)

type Handler struct {
	resolver *Resolver
}

func NewHandler(resolver *Resolver) *Handler {
	return &Handler{resolver}
}

// GetHolidays returns the holidays of the month containing the date given in
// the "date" query parameter.
func (h *Handler) GetHolidays(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	dateParam := r.URL.Query().Get("date")
	reference, err := time.ParseInLocation("2006-01-02", dateParam, time.Local)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid date format",
			Details: "Date must be in YYYY-MM-DD format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	if err := json.NewEncoder(w).Encode(h.resolver.ForMonth(reference)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
