package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campushq/schoolops-api/internal/calendarview"
	"github.com/campushq/schoolops-api/internal/dto"
	"github.com/campushq/schoolops-api/internal/models"
	"github.com/campushq/schoolops-api/pkg/config"
	appErrors "github.com/campushq/schoolops-api/pkg/errors"
)

type eventRepository interface {
	ListWindow(ctx context.Context, filter models.EventFilter) ([]models.CalendarEvent, error)
	Create(ctx context.Context, event *models.CalendarEvent) error
}

// CalendarService resolves view windows, fetches the events they cover
// and projects them onto the calendar grid.
type CalendarService struct {
	repo      eventRepository
	validator *validator.Validate
	logger    *zap.Logger
	cfg       config.CalendarConfig
}

// NewCalendarService constructs the service.
func NewCalendarService(repo eventRepository, validate *validator.Validate, logger *zap.Logger, cfg config.CalendarConfig) *CalendarService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MaxVisibleEvents <= 0 {
		cfg.MaxVisibleEvents = calendarview.DefaultMaxVisible
	}
	if cfg.WeekHourEnd <= cfg.WeekHourStart {
		cfg.WeekHourStart = 8
		cfg.WeekHourEnd = 20
	}
	svc := &CalendarService{repo: repo, validator: validate, logger: logger, cfg: cfg}
	svc.validator.RegisterValidation("eventtype", func(fl validator.FieldLevel) bool {
		return models.EventType(fl.Field().String()).Valid()
	})
	return svc
}

// EventListRequest describes filters for listing events in a window.
type EventListRequest struct {
	WindowStart time.Time
	WindowEnd   time.Time
	Types       []string
	Statuses    []string
	Sorted      bool
}

// CalendarViewRequest describes the parameters of a computed view.
type CalendarViewRequest struct {
	ReferenceDate time.Time
	Mode          calendarview.ViewMode
	SelectedDate  time.Time
	Navigate      int
}

// CreateEventRequest describes the create payload.
type CreateEventRequest struct {
	Title          string    `json:"title" validate:"required"`
	EventType      string    `json:"event_type" validate:"required,eventtype"`
	StartAt        time.Time `json:"start_at" validate:"required"`
	EndAt          time.Time `json:"end_at" validate:"required"`
	Location       *string   `json:"location"`
	AttendeeCount  *int      `json:"attendee_count" validate:"omitempty,gte=0"`
	SubjectID      *string   `json:"subject_id"`
	SubjectName    *string   `json:"subject_name"`
	ClassID        *string   `json:"class_id"`
	ClassName      *string   `json:"class_name"`
	InstructorID   *string   `json:"instructor_id"`
	InstructorName *string   `json:"instructor_name"`
}

// ListEvents returns the events of a window, in storage order or
// chronologically when requested.
func (s *CalendarService) ListEvents(ctx context.Context, req EventListRequest, claims *models.JWTClaims) ([]models.CalendarEvent, error) {
	filter, err := s.buildFilter(req, claims)
	if err != nil {
		return nil, err
	}
	events, err := s.repo.ListWindow(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrFetchFailed.Code, appErrors.ErrFetchFailed.Status, "failed to fetch events")
	}
	if req.Sorted {
		return calendarview.SortEvents(events), nil
	}
	return events, nil
}

// View computes the full view model for a reference date and view mode:
// the resolved window, the padded grid with projected events, and the
// hour rows for week mode. Navigate shifts the reference date by whole
// grid units before resolving.
func (s *CalendarService) View(ctx context.Context, req CalendarViewRequest, claims *models.JWTClaims) (*dto.CalendarViewResponse, error) {
	ref := req.ReferenceDate
	if req.Navigate != 0 {
		ref = calendarview.Advance(ref, req.Mode, req.Navigate)
	}
	start, end := calendarview.ResolveRange(ref, req.Mode)

	selected := req.SelectedDate
	if selected.IsZero() {
		selected = ref
	}

	filter, err := s.buildFilter(EventListRequest{WindowStart: start, WindowEnd: end}, claims)
	if err != nil {
		return nil, err
	}
	events, err := s.repo.ListWindow(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrFetchFailed.Code, appErrors.ErrFetchFailed.Status, "failed to fetch events")
	}

	grid := calendarview.BuildGrid(start, end, time.Now(), selected)
	projection := calendarview.ProjectDays(events, start, end)

	cells := make([]dto.CellView, len(grid))
	for i, cell := range grid {
		bucket := projection.Day(cell.Date)
		cells[i] = dto.CellView{
			Date:            calendarview.DateKey(cell.Date),
			InCurrentPeriod: cell.InCurrentPeriod,
			IsToday:         cell.IsToday,
			IsSelected:      cell.IsSelected,
			Events:          bucket.Visible(s.cfg.MaxVisibleEvents),
			OverflowCount:   bucket.OverflowCount(s.cfg.MaxVisibleEvents),
		}
	}

	resp := &dto.CalendarViewResponse{
		Mode:        req.Mode.String(),
		WindowStart: calendarview.DateKey(start),
		WindowEnd:   calendarview.DateKey(end),
		Cells:       cells,
		Events:      events,
	}

	if req.Mode == calendarview.ViewWeek {
		buckets := calendarview.ProjectHours(calendarview.SortEvents(events), start, end, s.cfg.WeekHourStart, s.cfg.WeekHourEnd)
		resp.HourBuckets = make([]dto.HourBucketView, len(buckets))
		for i, bucket := range buckets {
			events := bucket.Events
			if events == nil {
				events = []models.CalendarEvent{}
			}
			resp.HourBuckets[i] = dto.HourBucketView{Hour: bucket.Hour, Events: events}
		}
	}

	return resp, nil
}

// CreateEvent schedules a new event on behalf of the session user.
func (s *CalendarService) CreateEvent(ctx context.Context, req CreateEventRequest, claims *models.JWTClaims) (*models.CalendarEvent, error) {
	if claims == nil {
		return nil, appErrors.ErrUnauthorized
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid event payload")
	}
	if !req.StartAt.Before(req.EndAt) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "start_at must be before end_at")
	}

	event := &models.CalendarEvent{
		Title:          req.Title,
		EventType:      models.EventType(req.EventType),
		StartAt:        req.StartAt,
		EndAt:          req.EndAt,
		Status:         models.EventStatusScheduled,
		Location:       req.Location,
		AttendeeCount:  req.AttendeeCount,
		SubjectID:      req.SubjectID,
		SubjectName:    req.SubjectName,
		ClassID:        req.ClassID,
		ClassName:      req.ClassName,
		InstructorID:   req.InstructorID,
		InstructorName: req.InstructorName,
		CreatedBy:      claims.UserID,
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create event")
	}
	return event, nil
}

func (s *CalendarService) buildFilter(req EventListRequest, claims *models.JWTClaims) (models.EventFilter, error) {
	filter := models.EventFilter{
		WindowStart: calendarview.DayOf(req.WindowStart),
		WindowEnd:   calendarview.DayOf(req.WindowEnd),
	}
	if claims != nil {
		filter.ViewerID = claims.UserID
		filter.ViewerRole = claims.Role
	}
	for _, raw := range req.Types {
		t := models.EventType(raw)
		if !t.Valid() {
			return models.EventFilter{}, appErrors.Clone(appErrors.ErrValidation, "unknown event type "+raw)
		}
		filter.Types = append(filter.Types, t)
	}
	for _, raw := range req.Statuses {
		status := models.EventStatus(raw)
		if !status.Valid() {
			return models.EventFilter{}, appErrors.Clone(appErrors.ErrValidation, "unknown event status "+raw)
		}
		filter.Statuses = append(filter.Statuses, status)
	}
	return filter, nil
}
