package dto

import (
	"github.com/campushq/schoolops-api/internal/models"
)

// CellView is one grid cell with its projected events overlaid.
type CellView struct {
	Date            string                 `json:"date"`
	InCurrentPeriod bool                   `json:"in_current_period"`
	IsToday         bool                   `json:"is_today"`
	IsSelected      bool                   `json:"is_selected"`
	Events          []models.CalendarEvent `json:"events"`
	OverflowCount   int                    `json:"overflow_count"`
}

// HourBucketView is one hour row of the week grid.
type HourBucketView struct {
	Hour   int                    `json:"hour"`
	Events []models.CalendarEvent `json:"events"`
}

// CalendarViewResponse is the computed view model for the schedule
// screen: the resolved window, the padded cell grid, the hour rows for
// week mode, and the full in-window event list backing the day-detail
// view.
type CalendarViewResponse struct {
	Mode        string                 `json:"mode"`
	WindowStart string                 `json:"window_start"`
	WindowEnd   string                 `json:"window_end"`
	Cells       []CellView             `json:"cells"`
	HourBuckets []HourBucketView       `json:"hour_buckets,omitempty"`
	Events      []models.CalendarEvent `json:"events"`
}
