package stats

import "time"

type CategoryStats struct {
	Category   string
	EventCount int
	Scheduled  time.Duration
}

type MonthlySummary struct {
	Year           int
	Month          time.Month
	Categories     []CategoryStats
	TotalEvents    int
	TotalScheduled time.Duration
}
