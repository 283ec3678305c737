package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/schoolops-api/internal/service"
	appErrors "github.com/campushq/schoolops-api/pkg/errors"
	"github.com/campushq/schoolops-api/pkg/response"
)

// TimetableHandler serves the timetable screen endpoints.
type TimetableHandler struct {
	service *service.TimetableService
}

// NewTimetableHandler constructs the handler.
func NewTimetableHandler(svc *service.TimetableService) *TimetableHandler {
	return &TimetableHandler{service: svc}
}

// GetByClass godoc
// @Summary Day-keyed timetable of a class
// @Tags Timetable
// @Produce json
// @Param id path string true "Class ID"
// @Param teacherId query string false "Narrow to one teacher"
// @Success 200 {object} response.Envelope
// @Router /classes/{id}/timetable [get]
func (h *TimetableHandler) GetByClass(c *gin.Context) {
	timetable, err := h.service.GetByClass(c.Request.Context(), c.Param("id"), c.Query("teacherId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, timetable, nil)
}

// Catalogue godoc
// @Summary Fixed weekday and time-slot catalogues
// @Tags Timetable
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /timetable/catalogue [get]
func (h *TimetableHandler) Catalogue(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Catalogue(), nil)
}

// CreateEntry godoc
// @Summary Place a timetable entry
// @Tags Timetable
// @Accept json
// @Produce json
// @Param payload body service.CreateEntryRequest true "Entry payload"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /timetable/entries [post]
func (h *TimetableHandler) CreateEntry(c *gin.Context) {
	var req service.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	entry, err := h.service.CreateEntry(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, entry)
}

// UpdateEntry godoc
// @Summary Update a timetable entry
// @Tags Timetable
// @Accept json
// @Produce json
// @Param id path string true "Entry ID"
// @Param payload body service.UpdateEntryRequest true "Entry payload"
// @Success 200 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /timetable/entries/{id} [put]
func (h *TimetableHandler) UpdateEntry(c *gin.Context) {
	var req service.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	entry, err := h.service.UpdateEntry(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entry, nil)
}

// DeleteEntry godoc
// @Summary Delete a timetable entry
// @Tags Timetable
// @Produce json
// @Param id path string true "Entry ID"
// @Success 204
// @Router /timetable/entries/{id} [delete]
func (h *TimetableHandler) DeleteEntry(c *gin.Context) {
	if err := h.service.DeleteEntry(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
