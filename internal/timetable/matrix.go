package timetable

import (
	"errors"
	"fmt"

	"github.com/campushq/schoolops-api/internal/models"
)

// Placement errors besides the conflict case.
var (
	ErrUnknownDay  = errors.New("day is not in the weekday catalogue")
	ErrUnknownSlot = errors.New("time slot is not in the catalogue")
	ErrBreakSlot   = errors.New("break slots cannot hold entries")
)

type cellKey struct {
	day  string
	slot string
}

// Matrix is the day × slot addressable table of one class's timetable.
// It caches the entries fetched for the selected class; ownership of
// the entries stays with the timetable service.
type Matrix struct {
	classID string
	cells   map[cellKey]models.TimetableEntry
}

// NewMatrix returns an empty matrix for the class.
func NewMatrix(classID string) *Matrix {
	return &Matrix{classID: classID, cells: make(map[cellKey]models.TimetableEntry)}
}

// FromDayMap builds a matrix from a day-keyed mapping as returned by the
// timetable endpoint. Entries under unrecognized day labels are dropped
// rather than crashing the grid; they are returned so the caller can log
// them.
func FromDayMap(classID string, byDay map[string][]models.TimetableEntry) (*Matrix, []models.TimetableEntry) {
	m := NewMatrix(classID)
	var dropped []models.TimetableEntry
	for day, entries := range byDay {
		if !ValidWeekday(day) {
			dropped = append(dropped, entries...)
			continue
		}
		for _, entry := range entries {
			entry.DayOfWeek = day
			if err := m.Place(entry); err != nil {
				dropped = append(dropped, entry)
			}
		}
	}
	return m, dropped
}

// ClassID returns the selection key the matrix was built for.
func (m *Matrix) ClassID() string {
	return m.classID
}

// Lookup returns the entry occupying the cell, if any.
func (m *Matrix) Lookup(day, slot string) (models.TimetableEntry, bool) {
	entry, ok := m.cells[cellKey{day: day, slot: slot}]
	return entry, ok
}

// Place inserts or updates an entry. It fails with a
// *models.TimetableConflictError when a different entry of the same
// class already occupies the cell, and rejects break slots and labels
// outside the catalogues.
func (m *Matrix) Place(entry models.TimetableEntry) error {
	if !ValidWeekday(entry.DayOfWeek) {
		return fmt.Errorf("%w: %q", ErrUnknownDay, entry.DayOfWeek)
	}
	if !ValidSlot(entry.TimeSlot) {
		return fmt.Errorf("%w: %q", ErrUnknownSlot, entry.TimeSlot)
	}
	if IsBreakSlot(entry.TimeSlot) {
		return fmt.Errorf("%w: %q", ErrBreakSlot, entry.TimeSlot)
	}

	key := cellKey{day: entry.DayOfWeek, slot: entry.TimeSlot}
	if existing, ok := m.cells[key]; ok && existing.ID != entry.ID {
		return &models.TimetableConflictError{
			Message: fmt.Sprintf("%s %s already occupied for class %s", entry.DayOfWeek, entry.TimeSlot, m.classID),
			Conflict: models.TimetableConflict{
				EntryID:     existing.ID,
				ClassID:     existing.ClassID,
				DayOfWeek:   existing.DayOfWeek,
				TimeSlot:    existing.TimeSlot,
				SubjectName: existing.SubjectName,
				TeacherName: existing.TeacherName,
			},
		}
	}

	m.cells[key] = entry
	return nil
}

// Remove deletes the entry with the given id. Removing an absent entry
// is a no-op.
func (m *Matrix) Remove(entryID string) {
	for key, entry := range m.cells {
		if entry.ID == entryID {
			delete(m.cells, key)
			return
		}
	}
}

// Entries walks the full day × slot product in catalogue order and
// returns the occupied cells. The product is bounded (6 × 9), so the
// walk per refresh stays cheap.
func (m *Matrix) Entries() []models.TimetableEntry {
	entries := make([]models.TimetableEntry, 0, len(m.cells))
	for _, day := range Weekdays {
		for _, slot := range Slots {
			if entry, ok := m.cells[cellKey{day: day, slot: slot.Label}]; ok {
				entries = append(entries, entry)
			}
		}
	}
	return entries
}

// DayMap groups the occupied cells by weekday, slots in catalogue order.
func (m *Matrix) DayMap() map[string][]models.TimetableEntry {
	byDay := make(map[string][]models.TimetableEntry, len(Weekdays))
	for _, day := range Weekdays {
		byDay[day] = []models.TimetableEntry{}
		for _, slot := range Slots {
			if entry, ok := m.cells[cellKey{day: day, slot: slot.Label}]; ok {
				byDay[day] = append(byDay[day], entry)
			}
		}
	}
	return byDay
}
