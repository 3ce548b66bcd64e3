package stats

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/dallyeok/dallyeok/internal/rest"
)

type CategoryStatsDTO struct {
	Category   string `json:"category"`
	EventCount int    `json:"eventCount"`
	Scheduled  int    `json:"scheduled"`
}

type MonthlySummaryDTO struct {
	Year           int                `json:"year"`
	Month          int                `json:"month"`
	Categories     []CategoryStatsDTO `json:"categories"`
	TotalEvents    int                `json:"totalEvents"`
	TotalScheduled int                `json:"totalScheduled"`
}

type StatsHandler struct {
	statsService     StatsService
	csvStatsRenderer StatsRenderer
}

func NewStatsHandler(statsService StatsService, csvStatsRenderer StatsRenderer) *StatsHandler {
	return &StatsHandler{statsService, csvStatsRenderer}
}

// GetMonthlyStats returns per-category aggregates for the month containing
// the "date" query parameter, as JSON or, with Accept: text/csv, as CSV.
func (handler *StatsHandler) GetMonthlyStats(w http.ResponseWriter, r *http.Request) {
	dateString := r.URL.Query().Get("date")
	reference, err := time.ParseInLocation("2006-01-02", dateString, time.Local)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
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

	summary, err := handler.statsService.GetMonthlyStats(r.Context(), reference)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if strings.Contains(r.Header.Get("Accept"), "text/csv") {
		csvData, err := handler.csvStatsRenderer.RenderStats(summary)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		if _, err := w.Write([]byte(csvData)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(summaryToDTO(summary)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func summaryToDTO(summary MonthlySummary) MonthlySummaryDTO {
	categories := make([]CategoryStatsDTO, 0, len(summary.Categories))
	for _, cs := range summary.Categories {
		categories = append(categories, CategoryStatsDTO{
			Category:   cs.Category,
			EventCount: cs.EventCount,
			Scheduled:  int(cs.Scheduled.Seconds()),
		})
	}
	return MonthlySummaryDTO{
		Year:           summary.Year,
		Month:          int(summary.Month),
		Categories:     categories,
		TotalEvents:    summary.TotalEvents,
		TotalScheduled: int(summary.TotalScheduled.Seconds()),
	}
}
