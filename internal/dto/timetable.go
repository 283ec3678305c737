package dto

import (
	"github.com/campushq/schoolops-api/internal/models"
	"github.com/campushq/schoolops-api/internal/timetable"
)

// TimetableResponse maps each weekday label onto the entries occupying
// its slots, in catalogue order.
type TimetableResponse struct {
	ClassID string                              `json:"class_id"`
	Days    map[string][]models.TimetableEntry `json:"days"`
}

// CatalogueResponse exposes the fixed day/slot catalogues so the client
// renders its axes from the server's source of truth.
type CatalogueResponse struct {
	Weekdays  []string         `json:"weekdays"`
	TimeSlots []timetable.Slot `json:"time_slots"`
}
