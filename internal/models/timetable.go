package models

import "time"

// EntryType classifies a timetable entry.
type EntryType string

const (
	EntryTypeLecture   EntryType = "LECTURE"
	EntryTypePractical EntryType = "PRACTICAL"
	EntryTypeTutorial  EntryType = "TUTORIAL"
	EntryTypeExam      EntryType = "EXAM"
)

// Valid reports whether the entry type is part of the catalogue.
func (t EntryType) Valid() bool {
	switch t {
	case EntryTypeLecture, EntryTypePractical, EntryTypeTutorial, EntryTypeExam:
		return true
	}
	return false
}

// TimetableEntry occupies one (day, slot) cell of a class timetable.
type TimetableEntry struct {
	ID          string    `db:"id" json:"id"`
	ClassID     string    `db:"class_id" json:"class_id"`
	ClassName   *string   `db:"class_name" json:"class_name,omitempty"`
	DayOfWeek   string    `db:"day_of_week" json:"day_of_week"`
	TimeSlot    string    `db:"time_slot" json:"time_slot"`
	SubjectID   *string   `db:"subject_id" json:"subject_id,omitempty"`
	SubjectName *string   `db:"subject_name" json:"subject_name,omitempty"`
	TeacherID   *string   `db:"teacher_id" json:"teacher_id,omitempty"`
	TeacherName *string   `db:"teacher_name" json:"teacher_name,omitempty"`
	Room        *string   `db:"room" json:"room,omitempty"`
	EntryType   EntryType `db:"entry_type" json:"entry_type"`
	Description *string   `db:"description" json:"description,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// TimetableConflict describes the entry already occupying a contested cell.
type TimetableConflict struct {
	EntryID     string  `json:"entry_id"`
	ClassID     string  `json:"class_id"`
	DayOfWeek   string  `json:"day_of_week"`
	TimeSlot    string  `json:"time_slot"`
	SubjectName *string `json:"subject_name,omitempty"`
	TeacherName *string `json:"teacher_name,omitempty"`
}

// TimetableConflictError is returned when a placement collides with an
// existing entry for the same class.
type TimetableConflictError struct {
	Message  string            `json:"message"`
	Conflict TimetableConflict `json:"conflict"`
}

// Error implements the error interface for conflict errors.
func (e *TimetableConflictError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}
