package app

import (
	"database/sql"

	"github.com/dallyeok/dallyeok/internal/config"
	"github.com/dallyeok/dallyeok/internal/event_bus"
	"github.com/dallyeok/dallyeok/internal/utils"
	"github.com/dallyeok/dallyeok/pkg/event"
	"github.com/dallyeok/dallyeok/pkg/holiday"
	"github.com/dallyeok/dallyeok/pkg/notification"
	"github.com/dallyeok/dallyeok/pkg/stats"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Bus *event_bus.EventBus

	EventRepo    event.EventRepository
	EventService event.EventService
	EventHandler *event.EventHandler

	HolidayResolver *holiday.Resolver
	HolidayHandler  *holiday.Handler

	NotificationService *notification.Service
	NotificationHandler *notification.Handler

	StatsService     *stats.StatsServiceImpl
	CsvStatsRenderer *stats.CsvStatsRendererImpl
	StatsHandler     *stats.StatsHandler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.Bus = event_bus.NewEventBus()
	deps.Clock = &utils.SystemClock{}

	deps.EventRepo = event.NewEventRepo(db)
	deps.EventService = event.NewEventService(deps.EventRepo, deps.Bus)
	deps.EventHandler = event.NewEventHandler(deps.EventService)

	deps.HolidayResolver = holiday.NewResolver(holiday.DefaultTable)
	deps.HolidayHandler = holiday.NewHandler(deps.HolidayResolver)

	deps.NotificationService = notification.NewService(deps.EventService, deps.Clock, deps.Bus)
	deps.NotificationHandler = notification.NewHandler(deps.NotificationService)

	deps.StatsService = stats.NewStatsServiceImpl(deps.EventService)
	deps.CsvStatsRenderer = stats.NewCsvStatsRenderer()
	deps.StatsHandler = stats.NewStatsHandler(deps.StatsService, deps.CsvStatsRenderer)

	return deps
}
