package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFilterEvents(t *testing.T) {
	octoberMeeting := meetingAt("1", "2024-10-01", "10:00", "11:00")
	octoberMeeting.Title = "이벤트 2"
	julyLunch := meetingAt("2", "2024-07-01", "10:00", "11:00")
	julyLunch.Title = "test event"
	julyLunch.Description = "주간 팀 점심"
	julyLunch.Location = "식당"
	octoberOffsite := meetingAt("3", "2024-10-05", "10:00", "11:00")
	octoberOffsite.Title = "팀 미팅"
	octoberOffsite.Location = "사무실"
	julyReview := meetingAt("4", "2024-07-05", "10:00", "11:00")
	julyReview.Title = "Test event"

	events := []Event{octoberMeeting, julyLunch, octoberOffsite, julyReview}

	october := time.Date(2024, time.October, 1, 0, 0, 0, 0, time.Local)
	july := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.Local)

	t.Run("restricts to events matching the search term", func(t *testing.T) {
		filtered := FilterEvents(events, "이벤트 2", october, ViewWeek)

		assert.Equal(t, []Event{octoberMeeting}, filtered)
	})

	t.Run("week view keeps only the Sunday-starting week of the reference date", func(t *testing.T) {
		filtered := FilterEvents(events, "", july, ViewWeek)

		assert.Equal(t, []Event{julyLunch, julyReview}, filtered)
	})

	t.Run("month view keeps all events of the reference month", func(t *testing.T) {
		filtered := FilterEvents(events, "", july, ViewMonth)

		assert.Equal(t, []Event{julyLunch, julyReview}, filtered)
	})

	t.Run("search and week window apply together", func(t *testing.T) {
		filtered := FilterEvents(events, "이벤트", october, ViewWeek)

		assert.Equal(t, []Event{octoberMeeting}, filtered)
	})

	t.Run("empty term matches every event in the window", func(t *testing.T) {
		filtered := FilterEvents(events, "", october, ViewWeek)

		assert.Equal(t, []Event{octoberMeeting, octoberOffsite}, filtered)
	})

	t.Run("search is case-insensitive", func(t *testing.T) {
		filtered := FilterEvents(events, "test", july, ViewWeek)

		assert.Equal(t, []Event{julyLunch, julyReview}, filtered)
	})

	t.Run("search also covers description and location", func(t *testing.T) {
		assert.Equal(t, []Event{julyLunch}, FilterEvents(events, "점심", july, ViewMonth))
		assert.Equal(t, []Event{octoberOffsite}, FilterEvents(events, "사무실", october, ViewMonth))
	})

	t.Run("month boundary dates stay in their own month", func(t *testing.T) {
		endOfJune := meetingAt("5", "2024-06-30", "10:00", "11:00")
		withBoundary := append([]Event{endOfJune}, events...)

		filtered := FilterEvents(withBoundary, "", july, ViewMonth)

		assert.Equal(t, []Event{julyLunch, julyReview}, filtered)
	})

	t.Run("returns an empty slice for an empty input", func(t *testing.T) {
		assert.Empty(t, FilterEvents([]Event{}, "", july, ViewMonth))
	})

	t.Run("an unparseable event date never falls in a window", func(t *testing.T) {
		broken := meetingAt("6", "2024/07/01", "10:00", "11:00")

		assert.Empty(t, FilterEvents([]Event{broken}, "", july, ViewMonth))
	})
}

func TestStartOfWeek(t *testing.T) {
	t.Run("a Monday belongs to the week starting the previous Sunday", func(t *testing.T) {
		monday := time.Date(2024, time.July, 1, 15, 30, 0, 0, time.Local)

		assert.Equal(t, time.Date(2024, time.June, 30, 0, 0, 0, 0, time.Local), startOfWeek(monday))
	})

	t.Run("a Sunday starts its own week", func(t *testing.T) {
		sunday := time.Date(2024, time.June, 30, 23, 59, 0, 0, time.Local)

		assert.Equal(t, time.Date(2024, time.June, 30, 0, 0, 0, 0, time.Local), startOfWeek(sunday))
	})
}
