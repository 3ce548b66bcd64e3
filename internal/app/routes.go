package app

import (
	"github.com/dallyeok/dallyeok/internal/config"
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Events
	r.HandleFunc("/api/event", deps.EventHandler.GetEvents).Methods("GET")
	r.HandleFunc("/api/event", deps.EventHandler.CreateEvent).Methods("POST")
	r.HandleFunc("/api/event/overlapping", deps.EventHandler.FindOverlapping).Methods("POST")
	r.HandleFunc("/api/event/{eventId}", deps.EventHandler.GetEvent).Methods("GET")
	r.HandleFunc("/api/event/{eventId}", deps.EventHandler.UpdateEvent).Methods("PUT")
	r.HandleFunc("/api/event/{eventId}", deps.EventHandler.DeleteEvent).Methods("DELETE")

	// Holidays
	r.HandleFunc("/api/holidays", deps.HolidayHandler.GetHolidays).Queries("date", "{date}").Methods("GET")

	// Notifications
	r.HandleFunc("/api/notification/upcoming", deps.NotificationHandler.GetUpcoming).Methods("GET")

	// Stats
	r.HandleFunc("/api/stats/monthly", deps.StatsHandler.GetMonthlyStats).Queries("date", "{date}").Methods("GET")
}
