package calendarview

import (
	"sort"
	"time"

	"github.com/campushq/schoolops-api/internal/models"
)

// DefaultMaxVisible caps how many events a day cell renders directly;
// the remainder collapses into a "+N more" indicator.
const DefaultMaxVisible = 3

// DayBucket holds the events placed on one calendar day, in input order.
type DayBucket struct {
	Events []models.CalendarEvent
}

// Visible returns at most max events, by original input order.
func (b DayBucket) Visible(max int) []models.CalendarEvent {
	if max <= 0 {
		max = DefaultMaxVisible
	}
	if len(b.Events) <= max {
		return b.Events
	}
	return b.Events[:max]
}

// OverflowCount is the number of events hidden behind the "+N more"
// indicator. The hidden events stay queryable through Events.
func (b DayBucket) OverflowCount(max int) int {
	if max <= 0 {
		max = DefaultMaxVisible
	}
	if len(b.Events) <= max {
		return 0
	}
	return len(b.Events) - max
}

// EventsSorted returns a chronological copy of the bucket. Input order
// and chronological order are both observed behaviors on the schedule
// screens, so both stay available and callers choose explicitly.
func (b DayBucket) EventsSorted() []models.CalendarEvent {
	sorted := make([]models.CalendarEvent, len(b.Events))
	copy(sorted, b.Events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartAt.Before(sorted[j].StartAt)
	})
	return sorted
}

// Projection groups a flat event list by the calendar day each event
// starts on. Placement looks at the start date only: a multi-day event
// appears on its first day and nowhere else.
type Projection struct {
	days map[string]*DayBucket
}

// ProjectDays filters events whose start date falls inside [start, end]
// and buckets them by start day, preserving input order inside a bucket.
func ProjectDays(events []models.CalendarEvent, start, end time.Time) Projection {
	first := DayOf(start)
	last := DayOf(end)
	days := make(map[string]*DayBucket)
	for _, event := range events {
		day := DayOf(event.StartAt)
		if day.Before(first) || day.After(last) {
			continue
		}
		key := DateKey(day)
		bucket, ok := days[key]
		if !ok {
			bucket = &DayBucket{}
			days[key] = bucket
		}
		bucket.Events = append(bucket.Events, event)
	}
	return Projection{days: days}
}

// Day returns the bucket for a calendar day. Days without events yield
// an empty bucket.
func (p Projection) Day(date time.Time) DayBucket {
	if bucket, ok := p.days[DateKey(date)]; ok {
		return *bucket
	}
	return DayBucket{}
}

// Total counts the projected events across all days.
func (p Projection) Total() int {
	total := 0
	for _, bucket := range p.days {
		total += len(bucket.Events)
	}
	return total
}

// HourBucket holds the events starting within one hour of the week grid.
type HourBucket struct {
	Hour   int
	Events []models.CalendarEvent
}

// ProjectHours buckets in-window events by the truncated hour of their
// start instant, covering [hourStart, hourEnd) in one-hour steps. Every
// hour in the range gets a bucket, empty or not, so the week grid can
// render its full axis.
func ProjectHours(events []models.CalendarEvent, start, end time.Time, hourStart, hourEnd int) []HourBucket {
	if hourEnd <= hourStart {
		return nil
	}
	buckets := make([]HourBucket, hourEnd-hourStart)
	for i := range buckets {
		buckets[i].Hour = hourStart + i
	}
	first := DayOf(start)
	last := DayOf(end)
	for _, event := range events {
		day := DayOf(event.StartAt)
		if day.Before(first) || day.After(last) {
			continue
		}
		hour := event.StartAt.Hour()
		if hour < hourStart || hour >= hourEnd {
			continue
		}
		idx := hour - hourStart
		buckets[idx].Events = append(buckets[idx].Events, event)
	}
	return buckets
}

// SortEvents returns a chronological copy of the slice, leaving the
// input untouched.
func SortEvents(events []models.CalendarEvent) []models.CalendarEvent {
	sorted := make([]models.CalendarEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartAt.Before(sorted[j].StartAt)
	})
	return sorted
}
