package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campushq/schoolops-api/internal/calendarview"
	"github.com/campushq/schoolops-api/internal/service"
	appErrors "github.com/campushq/schoolops-api/pkg/errors"
	"github.com/campushq/schoolops-api/pkg/response"
)

// CalendarHandler serves the schedule screen endpoints.
type CalendarHandler struct {
	service *service.CalendarService
}

// NewCalendarHandler constructs the handler.
func NewCalendarHandler(svc *service.CalendarService) *CalendarHandler {
	return &CalendarHandler{service: svc}
}

// ListEvents godoc
// @Summary List calendar events in a window
// @Tags Calendar
// @Produce json
// @Param start query string true "Window start (YYYY-MM-DD)"
// @Param end query string true "Window end (YYYY-MM-DD)"
// @Param types query string false "Comma-separated event types"
// @Param statuses query string false "Comma-separated statuses"
// @Param sorted query bool false "Sort chronologically"
// @Success 200 {object} response.Envelope
// @Router /calendar/events [get]
func (h *CalendarHandler) ListEvents(c *gin.Context) {
	start, err := calendarview.ParseDate(c.Query("start"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid start date"))
		return
	}
	end, err := calendarview.ParseDate(c.Query("end"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid end date"))
		return
	}
	if end.Before(start) {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "end must not precede start"))
		return
	}

	req := service.EventListRequest{
		WindowStart: start,
		WindowEnd:   end,
		Types:       splitParam(c.Query("types")),
		Statuses:    splitParam(c.Query("statuses")),
		Sorted:      c.Query("sorted") == "true",
	}

	events, err := h.service.ListEvents(c.Request.Context(), req, claimsFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, events, nil)
}

// View godoc
// @Summary Computed calendar view for a reference date and mode
// @Tags Calendar
// @Produce json
// @Param date query string false "Reference date (YYYY-MM-DD, default today)"
// @Param mode query string true "View mode: month, week or day"
// @Param selected query string false "Selected date (YYYY-MM-DD)"
// @Param navigate query int false "Shift the reference date by grid units (+1/-1)"
// @Success 200 {object} response.Envelope
// @Router /calendar/view [get]
func (h *CalendarHandler) View(c *gin.Context) {
	mode, err := calendarview.ParseViewMode(c.DefaultQuery("mode", "month"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, err.Error()))
		return
	}

	ref := time.Now()
	if raw := c.Query("date"); raw != "" {
		if ref, err = calendarview.ParseDate(raw); err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid date"))
			return
		}
	}

	var selected time.Time
	if raw := c.Query("selected"); raw != "" {
		if selected, err = calendarview.ParseDate(raw); err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid selected date"))
			return
		}
	}

	navigate := 0
	if raw := c.Query("navigate"); raw != "" {
		if navigate, err = strconv.Atoi(raw); err != nil || navigate < -1 || navigate > 1 {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "navigate must be -1, 0 or 1"))
			return
		}
	}

	view, err := h.service.View(c.Request.Context(), service.CalendarViewRequest{
		ReferenceDate: ref,
		Mode:          mode,
		SelectedDate:  selected,
		Navigate:      navigate,
	}, claimsFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view, nil)
}

// CreateEvent godoc
// @Summary Schedule a calendar event
// @Tags Calendar
// @Accept json
// @Produce json
// @Param payload body service.CreateEventRequest true "Event payload"
// @Success 201 {object} response.Envelope
// @Router /calendar/events [post]
func (h *CalendarHandler) CreateEvent(c *gin.Context) {
	var req service.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	event, err := h.service.CreateEvent(c.Request.Context(), req, claimsFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, event)
}

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
