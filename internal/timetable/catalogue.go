// Package timetable holds the fixed weekday × time-slot matrix backing
// the timetable screen, together with the slot catalogues it is
// addressed by.
package timetable

// Weekdays is the fixed ordered set of teaching days.
var Weekdays = []string{
	"MONDAY",
	"TUESDAY",
	"WEDNESDAY",
	"THURSDAY",
	"FRIDAY",
	"SATURDAY",
}

// Slot is one row of the fixed time-slot catalogue. Break slots never
// hold an entry; the UI renders a fixed label for them instead of an
// add/edit affordance.
type Slot struct {
	Label string `json:"label"`
	Break bool   `json:"break"`
}

// Slots is the fixed ordered time-slot catalogue.
var Slots = []Slot{
	{Label: "07:00-08:00"},
	{Label: "08:00-09:00"},
	{Label: "09:00-10:00"},
	{Label: "10:00-10:30", Break: true},
	{Label: "10:30-11:30"},
	{Label: "11:30-12:30"},
	{Label: "12:30-13:00", Break: true},
	{Label: "13:00-14:00"},
	{Label: "14:00-15:00"},
}

// ValidWeekday reports whether the label is part of the weekday catalogue.
func ValidWeekday(label string) bool {
	for _, day := range Weekdays {
		if day == label {
			return true
		}
	}
	return false
}

// ValidSlot reports whether the label is part of the time-slot catalogue.
func ValidSlot(label string) bool {
	for _, slot := range Slots {
		if slot.Label == label {
			return true
		}
	}
	return false
}

// IsBreakSlot reports whether the label names one of the break slots.
func IsBreakSlot(label string) bool {
	for _, slot := range Slots {
		if slot.Label == label {
			return slot.Break
		}
	}
	return false
}
