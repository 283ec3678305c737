package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/campushq/schoolops-api/internal/models"
	"github.com/campushq/schoolops-api/internal/service"
	"github.com/campushq/schoolops-api/pkg/response"
)

type timetableRepoMock struct {
	entries []models.TimetableEntry
	deleted []string
}

func (m *timetableRepoMock) ListByClass(ctx context.Context, classID, teacherID string) ([]models.TimetableEntry, error) {
	var out []models.TimetableEntry
	for _, entry := range m.entries {
		if entry.ClassID == classID {
			out = append(out, entry)
		}
	}
	return out, nil
}

func (m *timetableRepoMock) FindByID(ctx context.Context, id string) (*models.TimetableEntry, error) {
	for _, entry := range m.entries {
		if entry.ID == id {
			found := entry
			return &found, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *timetableRepoMock) Create(ctx context.Context, entry *models.TimetableEntry) error {
	entry.ID = "entry-1"
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *timetableRepoMock) Update(ctx context.Context, entry *models.TimetableEntry) error {
	return nil
}

func (m *timetableRepoMock) Delete(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func newTimetableHandler(repo *timetableRepoMock) *TimetableHandler {
	svc := service.NewTimetableService(repo, nil, time.Minute, nil, nil)
	return NewTimetableHandler(svc)
}

func TestTimetableHandlerGetByClass(t *testing.T) {
	repo := &timetableRepoMock{entries: []models.TimetableEntry{{
		ID:        "e1",
		ClassID:   "class-1",
		DayOfWeek: "MONDAY",
		TimeSlot:  "09:00-10:00",
		EntryType: models.EntryTypeLecture,
	}}}
	handler := newTimetableHandler(repo)

	c, w := adminContext(t, http.MethodGet, "/classes/class-1/timetable", "")
	c.Params = gin.Params{{Key: "id", Value: "class-1"}}
	handler.GetByClass(c)

	require.Equal(t, http.StatusOK, w.Code)
	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	data, err := json.Marshal(envelope.Data)
	require.NoError(t, err)

	var timetable struct {
		ClassID string                              `json:"class_id"`
		Days    map[string][]models.TimetableEntry `json:"days"`
	}
	require.NoError(t, json.Unmarshal(data, &timetable))
	require.Equal(t, "class-1", timetable.ClassID)
	require.Len(t, timetable.Days, 6)
	require.Len(t, timetable.Days["MONDAY"], 1)
}

func TestTimetableHandlerCatalogue(t *testing.T) {
	handler := newTimetableHandler(&timetableRepoMock{})

	c, w := adminContext(t, http.MethodGet, "/timetable/catalogue", "")
	handler.Catalogue(c)

	require.Equal(t, http.StatusOK, w.Code)
	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	data, err := json.Marshal(envelope.Data)
	require.NoError(t, err)

	var catalogue struct {
		Weekdays  []string `json:"weekdays"`
		TimeSlots []struct {
			Label string `json:"label"`
			Break bool   `json:"break"`
		} `json:"time_slots"`
	}
	require.NoError(t, json.Unmarshal(data, &catalogue))
	require.Len(t, catalogue.Weekdays, 6)
	require.Len(t, catalogue.TimeSlots, 9)
}

func TestTimetableHandlerCreateEntryConflict(t *testing.T) {
	repo := &timetableRepoMock{entries: []models.TimetableEntry{{
		ID:        "e1",
		ClassID:   "class-1",
		DayOfWeek: "MONDAY",
		TimeSlot:  "09:00-10:00",
		EntryType: models.EntryTypeLecture,
	}}}
	handler := newTimetableHandler(repo)

	body := `{"class_id":"class-1","day_of_week":"MONDAY","time_slot":"09:00-10:00","entry_type":"LECTURE"}`
	c, w := adminContext(t, http.MethodPost, "/timetable/entries", body)
	handler.CreateEntry(c)

	require.Equal(t, http.StatusConflict, w.Code)
	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	require.Equal(t, "CONFLICT", envelope.Error.Code)
}

func TestTimetableHandlerCreateEntry(t *testing.T) {
	repo := &timetableRepoMock{}
	handler := newTimetableHandler(repo)

	body := `{"class_id":"class-1","day_of_week":"TUESDAY","time_slot":"08:00-09:00","entry_type":"PRACTICAL"}`
	c, w := adminContext(t, http.MethodPost, "/timetable/entries", body)
	handler.CreateEntry(c)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, repo.entries, 1)
}

func TestTimetableHandlerCreateEntryRejectsBreakSlot(t *testing.T) {
	handler := newTimetableHandler(&timetableRepoMock{})

	body := `{"class_id":"class-1","day_of_week":"MONDAY","time_slot":"10:00-10:30","entry_type":"LECTURE"}`
	c, w := adminContext(t, http.MethodPost, "/timetable/entries", body)
	handler.CreateEntry(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTimetableHandlerDeleteEntry(t *testing.T) {
	repo := &timetableRepoMock{entries: []models.TimetableEntry{{
		ID:        "e1",
		ClassID:   "class-1",
		DayOfWeek: "MONDAY",
		TimeSlot:  "09:00-10:00",
		EntryType: models.EntryTypeLecture,
	}}}
	handler := newTimetableHandler(repo)

	c, w := adminContext(t, http.MethodDelete, "/timetable/entries/e1", "")
	c.Params = gin.Params{{Key: "id", Value: "e1"}}
	handler.DeleteEntry(c)
	c.Writer.WriteHeaderNow()

	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, []string{"e1"}, repo.deleted)

	// Deleting again still succeeds.
	c, w = adminContext(t, http.MethodDelete, "/timetable/entries/e1", "")
	c.Params = gin.Params{{Key: "id", Value: "e1"}}
	handler.DeleteEntry(c)
	c.Writer.WriteHeaderNow()
	require.Equal(t, http.StatusNoContent, w.Code)
}
