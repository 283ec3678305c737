package calendarview

import "time"

// Advance shifts the reference date by one grid unit in the given
// direction (+1 forward, -1 backward). Month steps clamp the day of
// month so that stepping forward and back always lands in the original
// month (31 Jan -> 29 Feb -> 29 Jan, never 2 Mar).
func Advance(ref time.Time, mode ViewMode, direction int) time.Time {
	switch mode {
	case ViewMonth:
		return addMonths(ref, direction)
	case ViewWeek:
		return ref.AddDate(0, 0, 7*direction)
	case ViewDay:
		return ref.AddDate(0, 0, direction)
	}
	panic("calendarview: invalid view mode")
}

func addMonths(t time.Time, n int) time.Time {
	firstOfTarget := time.Date(t.Year(), t.Month()+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	day := t.Day()
	if lastDay := firstOfTarget.AddDate(0, 1, -1).Day(); day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
