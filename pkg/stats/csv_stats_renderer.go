package stats

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"
)

type StatsRenderer interface {
	RenderStats(summary MonthlySummary) (string, error)
}

type CsvStatsRendererImpl struct {
}

func NewCsvStatsRenderer() *CsvStatsRendererImpl {
	return &CsvStatsRendererImpl{}
}

func (t *CsvStatsRendererImpl) RenderStats(summary MonthlySummary) (string, error) {
	data := make([][]string, 0, len(summary.Categories)+2)
	data = append(data, []string{"Category", "Events", "Scheduled"})
	for _, cs := range summary.Categories {
		data = append(data, []string{cs.Category, fmt.Sprintf("%d", cs.EventCount), durationToString(cs.Scheduled)})
	}
	data = append(data, []string{"SUM", fmt.Sprintf("%d", summary.TotalEvents), durationToString(summary.TotalScheduled)})

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.WriteAll(data); err != nil {
		return "", fmt.Errorf("could not render stats to CSV: %w", err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("could not render stats to CSV: %w", err)
	}
	return buf.String(), nil
}

func durationToString(d time.Duration) string {
	hours := int(d / time.Hour)
	minutes := int(d % time.Hour / time.Minute)
	return fmt.Sprintf("%d:%02d", hours, minutes)
}
