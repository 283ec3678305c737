package calendarview

import "time"

// Cell is one day of the rendered calendar grid. Cells are ephemeral:
// they are recomputed on every window or selection change.
type Cell struct {
	Date            time.Time `json:"-"`
	InCurrentPeriod bool      `json:"in_current_period"`
	IsToday         bool      `json:"is_today"`
	IsSelected      bool      `json:"is_selected"`
}

// BuildGrid expands the window into a sequence of day cells padded to
// complete weeks: it opens on the Sunday on or before start and closes on
// the first Saturday on or after end, so len(cells) is always a multiple
// of seven. InCurrentPeriod marks days inside [start, end]; padding days
// carry false.
func BuildGrid(start, end, today, selected time.Time) []Cell {
	first := DayOf(start)
	for first.Weekday() != time.Sunday {
		first = first.AddDate(0, 0, -1)
	}
	last := DayOf(end)

	cells := make([]Cell, 0, 42)
	for day := first; ; day = day.AddDate(0, 0, 1) {
		cells = append(cells, Cell{
			Date:            day,
			InCurrentPeriod: !day.Before(DayOf(start)) && !day.After(last),
			IsToday:         SameDay(day, today),
			IsSelected:      SameDay(day, selected),
		})
		if day.Weekday() == time.Saturday && !day.Before(last) {
			break
		}
	}
	return cells
}
