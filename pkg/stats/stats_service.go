package stats

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/dallyeok/dallyeok/pkg/event"
	log "github.com/sirupsen/logrus"
)

type StatsService interface {
	GetMonthlyStats(ctx context.Context, reference time.Time) (MonthlySummary, error)
}

type StatsServiceImpl struct {
	eventService event.EventService
}

func NewStatsServiceImpl(eventService event.EventService) *StatsServiceImpl {
	return &StatsServiceImpl{eventService: eventService}
}

// GetMonthlyStats aggregates the events of the month containing the reference
// date into per-category counts and scheduled time. Events whose date or
// times fail to parse, or whose end is not after their start, contribute to
// the count but not to the scheduled time.
func (s *StatsServiceImpl) GetMonthlyStats(ctx context.Context, reference time.Time) (MonthlySummary, error) {
	events, err := s.eventService.FilteredEvents(ctx, "", reference, event.ViewMonth)
	if err != nil {
		return MonthlySummary{}, fmt.Errorf("failed to get events: %w", err)
	}
	log.Tracef("Aggregating %d events for %s", len(events), reference.Format("2006-01"))

	byCategory := make(map[string]*CategoryStats)
	summary := MonthlySummary{
		Year:  reference.Year(),
		Month: reference.Month(),
	}
	for _, e := range events {
		cs := byCategory[e.Category]
		if cs == nil {
			cs = &CategoryStats{Category: e.Category}
			byCategory[e.Category] = cs
		}
		cs.EventCount++
		summary.TotalEvents++

		timeRange := event.EventToRange(e)
		if !timeRange.IsValid() || !timeRange.End.After(timeRange.Start) {
			log.Debugf("Skipping scheduled time of event %s: unusable time range", e.ID)
			continue
		}
		duration := timeRange.End.Sub(timeRange.Start)
		cs.Scheduled += duration
		summary.TotalScheduled += duration
	}

	summary.Categories = make([]CategoryStats, 0, len(byCategory))
	for _, cs := range byCategory {
		summary.Categories = append(summary.Categories, *cs)
	}
	sort.Slice(summary.Categories, func(i, j int) bool {
		return summary.Categories[i].Category < summary.Categories[j].Category
	})

	return summary, nil
}
