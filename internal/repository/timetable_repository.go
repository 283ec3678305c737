package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/campushq/schoolops-api/internal/models"
)

// TimetableRepository persists timetable entries.
type TimetableRepository struct {
	db *sqlx.DB
}

// NewTimetableRepository constructs a timetable repository.
func NewTimetableRepository(db *sqlx.DB) *TimetableRepository {
	return &TimetableRepository{db: db}
}

const entryColumns = "id, class_id, class_name, day_of_week, time_slot, subject_id, subject_name, teacher_id, teacher_name, room, entry_type, description, created_at, updated_at"

// ListByClass returns the entries of a class, optionally narrowed to one
// teacher, ordered for the day × slot walk.
func (r *TimetableRepository) ListByClass(ctx context.Context, classID, teacherID string) ([]models.TimetableEntry, error) {
	query := fmt.Sprintf("SELECT %s FROM timetable_entries WHERE class_id = $1", entryColumns)
	args := []interface{}{classID}
	if teacherID != "" {
		query += " AND teacher_id = $2"
		args = append(args, teacherID)
	}
	query += " ORDER BY day_of_week ASC, time_slot ASC"

	var entries []models.TimetableEntry
	if err := r.db.SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, fmt.Errorf("list timetable entries: %w", err)
	}
	return entries, nil
}

// FindByID loads an entry by id.
func (r *TimetableRepository) FindByID(ctx context.Context, id string) (*models.TimetableEntry, error) {
	query := fmt.Sprintf("SELECT %s FROM timetable_entries WHERE id = $1", entryColumns)
	var entry models.TimetableEntry
	if err := r.db.GetContext(ctx, &entry, query, id); err != nil {
		return nil, err
	}
	return &entry, nil
}

// Create inserts a timetable entry, assigning id and timestamps.
func (r *TimetableRepository) Create(ctx context.Context, entry *models.TimetableEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	const query = `INSERT INTO timetable_entries (id, class_id, class_name, day_of_week, time_slot, subject_id, subject_name, teacher_id, teacher_name, room, entry_type, description, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	if _, err := r.db.ExecContext(ctx, query,
		entry.ID, entry.ClassID, entry.ClassName, entry.DayOfWeek, entry.TimeSlot,
		entry.SubjectID, entry.SubjectName, entry.TeacherID, entry.TeacherName,
		entry.Room, entry.EntryType, entry.Description,
		entry.CreatedAt, entry.UpdatedAt,
	); err != nil {
		return fmt.Errorf("create timetable entry: %w", err)
	}
	return nil
}

// Update rewrites an entry's mutable fields.
func (r *TimetableRepository) Update(ctx context.Context, entry *models.TimetableEntry) error {
	entry.UpdatedAt = time.Now().UTC()

	const query = `UPDATE timetable_entries SET class_id = $2, class_name = $3, day_of_week = $4, time_slot = $5, subject_id = $6, subject_name = $7, teacher_id = $8, teacher_name = $9, room = $10, entry_type = $11, description = $12, updated_at = $13 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query,
		entry.ID, entry.ClassID, entry.ClassName, entry.DayOfWeek, entry.TimeSlot,
		entry.SubjectID, entry.SubjectName, entry.TeacherID, entry.TeacherName,
		entry.Room, entry.EntryType, entry.Description, entry.UpdatedAt,
	); err != nil {
		return fmt.Errorf("update timetable entry: %w", err)
	}
	return nil
}

// Delete removes an entry. Deleting an absent id is not an error.
func (r *TimetableRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM timetable_entries WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete timetable entry: %w", err)
	}
	return nil
}
