package calendarview

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/schoolops-api/internal/models"
)

func eventAt(id string, start time.Time) models.CalendarEvent {
	return models.CalendarEvent{
		ID:        id,
		Title:     "Event " + id,
		EventType: models.EventTypeClass,
		StartAt:   start,
		EndAt:     start.Add(time.Hour),
		Status:    models.EventStatusScheduled,
	}
}

func TestProjectDaysGroupsByStartDate(t *testing.T) {
	start, end := ResolveRange(date(2024, time.January, 15), ViewMonth)
	events := []models.CalendarEvent{
		eventAt("a", time.Date(2024, time.January, 10, 9, 0, 0, 0, time.UTC)),
		eventAt("b", time.Date(2024, time.January, 10, 14, 0, 0, 0, time.UTC)),
		eventAt("c", time.Date(2024, time.January, 11, 8, 0, 0, 0, time.UTC)),
		eventAt("outside", time.Date(2024, time.February, 2, 8, 0, 0, 0, time.UTC)),
	}

	projection := ProjectDays(events, start, end)
	assert.Equal(t, 3, projection.Total())

	day := projection.Day(date(2024, time.January, 10))
	require.Len(t, day.Events, 2)
	assert.Equal(t, "a", day.Events[0].ID)
	assert.Equal(t, "b", day.Events[1].ID)

	assert.Empty(t, projection.Day(date(2024, time.January, 12)).Events)
}

func TestProjectDaysMultiDayEventOnlyOnFirstDay(t *testing.T) {
	start, end := ResolveRange(date(2024, time.January, 15), ViewMonth)
	spanning := eventAt("span", time.Date(2024, time.January, 8, 8, 0, 0, 0, time.UTC))
	spanning.EndAt = time.Date(2024, time.January, 12, 16, 0, 0, 0, time.UTC)

	projection := ProjectDays([]models.CalendarEvent{spanning}, start, end)
	assert.Len(t, projection.Day(date(2024, time.January, 8)).Events, 1)
	assert.Empty(t, projection.Day(date(2024, time.January, 9)).Events)
	assert.Empty(t, projection.Day(date(2024, time.January, 12)).Events)
}

func TestDayBucketOverflow(t *testing.T) {
	day := time.Date(2024, time.January, 10, 8, 0, 0, 0, time.UTC)
	var events []models.CalendarEvent
	for i := 0; i < 4; i++ {
		events = append(events, eventAt(fmt.Sprintf("e%d", i), day.Add(time.Duration(i)*time.Hour)))
	}

	start, end := ResolveRange(day, ViewMonth)
	bucket := ProjectDays(events, start, end).Day(day)

	visible := bucket.Visible(DefaultMaxVisible)
	require.Len(t, visible, 3)
	assert.Equal(t, "e0", visible[0].ID)
	assert.Equal(t, "e2", visible[2].ID)
	assert.Equal(t, 1, bucket.OverflowCount(DefaultMaxVisible))

	// Three or fewer events never overflow.
	small := ProjectDays(events[:3], start, end).Day(day)
	assert.Len(t, small.Visible(DefaultMaxVisible), 3)
	assert.Zero(t, small.OverflowCount(DefaultMaxVisible))
}

func TestDayBucketPreservesInputOrderAndSortsOnRequest(t *testing.T) {
	day := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	events := []models.CalendarEvent{
		eventAt("late", day.Add(15*time.Hour)),
		eventAt("early", day.Add(8*time.Hour)),
		eventAt("midday", day.Add(12*time.Hour)),
	}

	start, end := ResolveRange(day, ViewMonth)
	bucket := ProjectDays(events, start, end).Day(day)

	assert.Equal(t, "late", bucket.Events[0].ID)

	sorted := bucket.EventsSorted()
	assert.Equal(t, "early", sorted[0].ID)
	assert.Equal(t, "midday", sorted[1].ID)
	assert.Equal(t, "late", sorted[2].ID)
	// The raw bucket is untouched.
	assert.Equal(t, "late", bucket.Events[0].ID)
}

func TestProjectHours(t *testing.T) {
	start, end := ResolveRange(date(2024, time.January, 17), ViewWeek)
	events := []models.CalendarEvent{
		eventAt("morning", time.Date(2024, time.January, 15, 8, 30, 0, 0, time.UTC)),
		eventAt("alsoMorning", time.Date(2024, time.January, 16, 8, 5, 0, 0, time.UTC)),
		eventAt("noon", time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)),
		eventAt("tooEarly", time.Date(2024, time.January, 15, 6, 0, 0, 0, time.UTC)),
		eventAt("tooLate", time.Date(2024, time.January, 15, 21, 0, 0, 0, time.UTC)),
		eventAt("outsideWindow", time.Date(2024, time.January, 22, 9, 0, 0, 0, time.UTC)),
	}

	buckets := ProjectHours(events, start, end, 8, 20)
	require.Len(t, buckets, 12)
	assert.Equal(t, 8, buckets[0].Hour)
	assert.Equal(t, 19, buckets[11].Hour)

	require.Len(t, buckets[0].Events, 2)
	assert.Equal(t, "morning", buckets[0].Events[0].ID)
	assert.Equal(t, "alsoMorning", buckets[0].Events[1].ID)
	assert.Len(t, buckets[4].Events, 1)
	assert.Empty(t, buckets[1].Events)
}

func TestSortEventsLeavesInputUntouched(t *testing.T) {
	events := []models.CalendarEvent{
		eventAt("b", time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)),
		eventAt("a", time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)),
	}
	sorted := SortEvents(events)
	assert.Equal(t, "a", sorted[0].ID)
	assert.Equal(t, "b", events[0].ID)
}
