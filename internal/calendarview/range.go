package calendarview

import "time"

// ResolveRange maps a reference date and view mode onto the inclusive
// day-aligned window the view covers. Weeks are Sunday-aligned.
func ResolveRange(ref time.Time, mode ViewMode) (time.Time, time.Time) {
	switch mode {
	case ViewMonth:
		start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
		end := start.AddDate(0, 1, -1)
		return start, end
	case ViewWeek:
		day := DayOf(ref)
		start := day.AddDate(0, 0, -int(day.Weekday()))
		return start, start.AddDate(0, 0, 6)
	case ViewDay:
		day := DayOf(ref)
		return day, day
	}
	panic("calendarview: invalid view mode")
}
