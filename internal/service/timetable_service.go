package service

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campushq/schoolops-api/internal/dto"
	"github.com/campushq/schoolops-api/internal/models"
	"github.com/campushq/schoolops-api/internal/timetable"
	appErrors "github.com/campushq/schoolops-api/pkg/errors"
)

type timetableRepository interface {
	ListByClass(ctx context.Context, classID, teacherID string) ([]models.TimetableEntry, error)
	FindByID(ctx context.Context, id string) (*models.TimetableEntry, error)
	Create(ctx context.Context, entry *models.TimetableEntry) error
	Update(ctx context.Context, entry *models.TimetableEntry) error
	Delete(ctx context.Context, id string) error
}

// TimetableService serves the per-class slot matrix and guards writes
// with conflict detection.
//
// Reads go through a per-class cache that is always replaced whole.
// Each class carries a generation counter: fetches record the
// generation they started under and may only install their result while
// it is still current, so a slow earlier response can never overwrite a
// newer one.
type TimetableService struct {
	repo      timetableRepository
	cache     *CacheService
	cacheTTL  time.Duration
	validator *validator.Validate
	logger    *zap.Logger

	generations sync.Map // classID -> *atomic.Uint64
}

// NewTimetableService constructs the service.
func NewTimetableService(repo timetableRepository, cache *CacheService, cacheTTL time.Duration, validate *validator.Validate, logger *zap.Logger) *TimetableService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TimetableService{repo: repo, cache: cache, cacheTTL: cacheTTL, validator: validate, logger: logger}
}

// CreateEntryRequest describes the payload for placing an entry.
type CreateEntryRequest struct {
	ClassID     string  `json:"class_id" validate:"required"`
	ClassName   *string `json:"class_name"`
	DayOfWeek   string  `json:"day_of_week" validate:"required"`
	TimeSlot    string  `json:"time_slot" validate:"required"`
	SubjectID   *string `json:"subject_id"`
	SubjectName *string `json:"subject_name"`
	TeacherID   *string `json:"teacher_id"`
	TeacherName *string `json:"teacher_name"`
	Room        *string `json:"room"`
	EntryType   string  `json:"entry_type" validate:"required"`
	Description *string `json:"description"`
}

// UpdateEntryRequest mirrors the create payload for updates.
type UpdateEntryRequest = CreateEntryRequest

// GetByClass returns the day-keyed timetable of a class. Results for a
// plain class lookup are cached; teacher-narrowed lookups bypass the
// cache.
func (s *TimetableService) GetByClass(ctx context.Context, classID, teacherID string) (*dto.TimetableResponse, error) {
	key := cacheKeyForClass(classID)
	useCache := teacherID == ""

	if useCache {
		var cached dto.TimetableResponse
		if hit, _ := s.cache.Get(ctx, key, &cached); hit {
			return &cached, nil
		}
	}

	gen := s.generation(classID)
	token := gen.Load()

	entries, err := s.repo.ListByClass(ctx, classID, teacherID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrFetchFailed.Code, appErrors.ErrFetchFailed.Status, "failed to fetch timetable")
	}

	matrix := s.buildMatrix(classID, entries)
	resp := &dto.TimetableResponse{ClassID: classID, Days: matrix.DayMap()}

	if useCache && gen.Load() == token {
		_ = s.cache.Set(ctx, key, resp, s.cacheTTL)
	}

	return resp, nil
}

// Catalogue exposes the fixed day/slot catalogues.
func (s *TimetableService) Catalogue() dto.CatalogueResponse {
	return dto.CatalogueResponse{Weekdays: timetable.Weekdays, TimeSlots: timetable.Slots}
}

// CreateEntry places a new entry after conflict detection.
func (s *TimetableService) CreateEntry(ctx context.Context, req CreateEntryRequest) (*models.TimetableEntry, error) {
	entry, err := s.entryFromRequest("", req)
	if err != nil {
		return nil, err
	}

	if err := s.ensureNoConflict(ctx, *entry); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create timetable entry")
	}
	s.invalidate(ctx, entry.ClassID)
	return entry, nil
}

// UpdateEntry moves or edits an existing entry, ignoring the entry
// itself during conflict detection.
func (s *TimetableService) UpdateEntry(ctx context.Context, id string, req UpdateEntryRequest) (*models.TimetableEntry, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "timetable entry not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrFetchFailed.Code, appErrors.ErrFetchFailed.Status, "failed to load timetable entry")
	}

	entry, err := s.entryFromRequest(existing.ID, req)
	if err != nil {
		return nil, err
	}
	entry.CreatedAt = existing.CreatedAt

	if err := s.ensureNoConflict(ctx, *entry); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update timetable entry")
	}
	s.invalidate(ctx, entry.ClassID)
	if existing.ClassID != entry.ClassID {
		s.invalidate(ctx, existing.ClassID)
	}
	return entry, nil
}

// DeleteEntry removes an entry. Deleting an already-absent entry
// succeeds.
func (s *TimetableService) DeleteEntry(ctx context.Context, id string) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return appErrors.Wrap(err, appErrors.ErrFetchFailed.Code, appErrors.ErrFetchFailed.Status, "failed to load timetable entry")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete timetable entry")
	}
	if existing != nil {
		s.invalidate(ctx, existing.ClassID)
	}
	return nil
}

func (s *TimetableService) entryFromRequest(id string, req CreateEntryRequest) (*models.TimetableEntry, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid timetable payload")
	}
	if !timetable.ValidWeekday(req.DayOfWeek) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown day_of_week "+req.DayOfWeek)
	}
	if !timetable.ValidSlot(req.TimeSlot) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown time_slot "+req.TimeSlot)
	}
	if timetable.IsBreakSlot(req.TimeSlot) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "break slots cannot hold entries")
	}
	entryType := models.EntryType(req.EntryType)
	if !entryType.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown entry_type "+req.EntryType)
	}

	return &models.TimetableEntry{
		ID:          id,
		ClassID:     req.ClassID,
		ClassName:   req.ClassName,
		DayOfWeek:   req.DayOfWeek,
		TimeSlot:    req.TimeSlot,
		SubjectID:   req.SubjectID,
		SubjectName: req.SubjectName,
		TeacherID:   req.TeacherID,
		TeacherName: req.TeacherName,
		Room:        req.Room,
		EntryType:   entryType,
		Description: req.Description,
	}, nil
}

func (s *TimetableService) ensureNoConflict(ctx context.Context, entry models.TimetableEntry) error {
	entries, err := s.repo.ListByClass(ctx, entry.ClassID, "")
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrFetchFailed.Code, appErrors.ErrFetchFailed.Status, "failed to check timetable conflicts")
	}

	matrix := s.buildMatrix(entry.ClassID, entries)
	if err := matrix.Place(entry); err != nil {
		var conflict *models.TimetableConflictError
		if errors.As(err, &conflict) {
			return appErrors.Wrap(conflict, appErrors.ErrConflict.Code, appErrors.ErrConflict.Status, conflict.Message)
		}
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, err.Error())
	}
	return nil
}

// buildMatrix funnels fetched entries through the day-keyed contract of
// the timetable endpoint; entries under unrecognized labels are dropped
// with a warning instead of crashing the grid.
func (s *TimetableService) buildMatrix(classID string, entries []models.TimetableEntry) *timetable.Matrix {
	byDay := make(map[string][]models.TimetableEntry)
	for _, entry := range entries {
		byDay[entry.DayOfWeek] = append(byDay[entry.DayOfWeek], entry)
	}
	matrix, dropped := timetable.FromDayMap(classID, byDay)
	for _, entry := range dropped {
		s.logger.Warn("dropped timetable entry",
			zap.String("entry_id", entry.ID),
			zap.String("day_of_week", entry.DayOfWeek),
			zap.String("time_slot", entry.TimeSlot),
		)
	}
	return matrix
}

func (s *TimetableService) generation(classID string) *atomic.Uint64 {
	value, _ := s.generations.LoadOrStore(classID, &atomic.Uint64{})
	return value.(*atomic.Uint64)
}

func (s *TimetableService) invalidate(ctx context.Context, classID string) {
	s.generation(classID).Add(1)
	_ = s.cache.Invalidate(ctx, cacheKeyForClass(classID))
}

func cacheKeyForClass(classID string) string {
	return "timetable:class:" + classID
}
