package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/campushq/schoolops-api/internal/models"
)

// EventRepository persists calendar events.
type EventRepository struct {
	db *sqlx.DB
}

// NewEventRepository constructs an event repository.
func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

const eventColumns = "id, title, event_type, start_at, end_at, status, location, attendee_count, subject_id, subject_name, class_id, class_name, instructor_id, instructor_name, created_by, created_at, updated_at"

// ListWindow returns events whose start instant falls inside the
// inclusive day window of the filter.
func (r *EventRepository) ListWindow(ctx context.Context, filter models.EventFilter) ([]models.CalendarEvent, error) {
	where := []string{"start_at >= $1", "start_at < $2"}
	args := []interface{}{filter.WindowStart, filter.WindowEnd.AddDate(0, 0, 1)}

	if len(filter.Types) > 0 {
		types := make([]string, len(filter.Types))
		for i, t := range filter.Types {
			types[i] = string(t)
		}
		where = append(where, fmt.Sprintf("event_type = ANY($%d)", len(args)+1))
		args = append(args, pq.Array(types))
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		where = append(where, fmt.Sprintf("status = ANY($%d)", len(args)+1))
		args = append(args, pq.Array(statuses))
	}

	query := fmt.Sprintf("SELECT %s FROM calendar_events WHERE %s ORDER BY created_at ASC",
		eventColumns, strings.Join(where, " AND "))
	var events []models.CalendarEvent
	if err := r.db.SelectContext(ctx, &events, query, args...); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// GetByID fetches a single event.
func (r *EventRepository) GetByID(ctx context.Context, id string) (*models.CalendarEvent, error) {
	query := fmt.Sprintf("SELECT %s FROM calendar_events WHERE id = $1", eventColumns)
	var event models.CalendarEvent
	if err := r.db.GetContext(ctx, &event, query, id); err != nil {
		return nil, err
	}
	return &event, nil
}

// Create inserts a calendar event, assigning id and timestamps.
func (r *EventRepository) Create(ctx context.Context, event *models.CalendarEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	event.CreatedAt = now
	event.UpdatedAt = now

	const query = `INSERT INTO calendar_events (id, title, event_type, start_at, end_at, status, location, attendee_count, subject_id, subject_name, class_id, class_name, instructor_id, instructor_name, created_by, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	if _, err := r.db.ExecContext(ctx, query,
		event.ID, event.Title, event.EventType, event.StartAt, event.EndAt, event.Status,
		event.Location, event.AttendeeCount,
		event.SubjectID, event.SubjectName, event.ClassID, event.ClassName,
		event.InstructorID, event.InstructorName,
		event.CreatedBy, event.CreatedAt, event.UpdatedAt,
	); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}
