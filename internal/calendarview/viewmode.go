// Package calendarview computes the date windows, padded day grids and
// event projections backing the schedule screen. All functions are pure;
// fetching the events that get projected is the caller's concern.
package calendarview

import "fmt"

// ViewMode is the granularity of the calendar display.
type ViewMode int

const (
	ViewMonth ViewMode = iota
	ViewWeek
	ViewDay
)

// ParseViewMode maps the wire representation onto a ViewMode.
func ParseViewMode(raw string) (ViewMode, error) {
	switch raw {
	case "month":
		return ViewMonth, nil
	case "week":
		return ViewWeek, nil
	case "day":
		return ViewDay, nil
	}
	return 0, fmt.Errorf("unknown view mode %q", raw)
}

// String returns the wire representation.
func (m ViewMode) String() string {
	switch m {
	case ViewMonth:
		return "month"
	case ViewWeek:
		return "week"
	case ViewDay:
		return "day"
	}
	return fmt.Sprintf("ViewMode(%d)", int(m))
}
