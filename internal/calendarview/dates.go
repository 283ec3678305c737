package calendarview

import "time"

// dateLayout is the wire format for calendar days.
const dateLayout = "2006-01-02"

// DayOf strips the time component, keeping the instant's location.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two instants fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DateKey renders an instant's calendar day as a bucket key.
func DateKey(t time.Time) string {
	return t.Format(dateLayout)
}

// ParseDate reads a calendar day in wire format.
func ParseDate(raw string) (time.Time, error) {
	return time.Parse(dateLayout, raw)
}
