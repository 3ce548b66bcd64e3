package notification

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service}
}

// GetUpcoming returns the notifications that became due since the last call.
func (h *Handler) GetUpcoming(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Trace("Polling for due notifications")

	notifications, err := h.service.Poll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := json.NewEncoder(w).Encode(notifications); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
