package models

import "time"

// EventType classifies a calendar event.
type EventType string

const (
	EventTypeClass   EventType = "CLASS"
	EventTypeExam    EventType = "EXAM"
	EventTypeLab     EventType = "LAB"
	EventTypeMeeting EventType = "MEETING"
	EventTypeEvent   EventType = "EVENT"
)

// Valid reports whether the type is part of the catalogue.
func (t EventType) Valid() bool {
	switch t {
	case EventTypeClass, EventTypeExam, EventTypeLab, EventTypeMeeting, EventTypeEvent:
		return true
	}
	return false
}

// EventStatus tracks an event through its lifecycle.
type EventStatus string

const (
	EventStatusScheduled  EventStatus = "SCHEDULED"
	EventStatusInProgress EventStatus = "IN_PROGRESS"
	EventStatusCompleted  EventStatus = "COMPLETED"
	EventStatusCancelled  EventStatus = "CANCELLED"
)

// Valid reports whether the status is part of the catalogue.
func (s EventStatus) Valid() bool {
	switch s {
	case EventStatusScheduled, EventStatusInProgress, EventStatusCompleted, EventStatusCancelled:
		return true
	}
	return false
}

// CalendarEvent represents a scheduled occurrence on the school calendar.
// Subject/class/instructor are weak references (id + display name only).
type CalendarEvent struct {
	ID             string      `db:"id" json:"id"`
	Title          string      `db:"title" json:"title"`
	EventType      EventType   `db:"event_type" json:"event_type"`
	StartAt        time.Time   `db:"start_at" json:"start_at"`
	EndAt          time.Time   `db:"end_at" json:"end_at"`
	Status         EventStatus `db:"status" json:"status"`
	Location       *string     `db:"location" json:"location,omitempty"`
	AttendeeCount  *int        `db:"attendee_count" json:"attendee_count,omitempty"`
	SubjectID      *string     `db:"subject_id" json:"subject_id,omitempty"`
	SubjectName    *string     `db:"subject_name" json:"subject_name,omitempty"`
	ClassID        *string     `db:"class_id" json:"class_id,omitempty"`
	ClassName      *string     `db:"class_name" json:"class_name,omitempty"`
	InstructorID   *string     `db:"instructor_id" json:"instructor_id,omitempty"`
	InstructorName *string     `db:"instructor_name" json:"instructor_name,omitempty"`
	CreatedBy      string      `db:"created_by" json:"created_by"`
	CreatedAt      time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time   `db:"updated_at" json:"updated_at"`
}

// EventFilter narrows down events for a resolved window.
type EventFilter struct {
	WindowStart time.Time
	WindowEnd   time.Time
	Types       []EventType
	Statuses    []EventStatus
	ViewerID    string
	ViewerRole  UserRole
}
