package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"campuscalendar/internal/delivery/http/helpers"
	"campuscalendar/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeCalendarService implements domain.CalendarService for handler tests.
type fakeCalendarService struct {
	err error

	calendar  domain.Calendar
	catalogue domain.Catalogue
	matches   []domain.Category
	canCreate bool
	addResult domain.AddEventsResult
	events    []domain.CampusEvent
	stats     domain.DayStats

	lastSaved      *domain.Calendar
	lastTerm       string
	lastAdd        domain.AddEventsRequest
	lastCampusID   domain.CampusID
	lastEventID    string
	lastDate       string
	lastYear       int
	lastMonth      int
	removeEventErr error
}

func (f *fakeCalendarService) Get(ctx context.Context) (domain.Calendar, error) {
	return f.calendar, f.err
}

func (f *fakeCalendarService) Save(ctx context.Context, cal domain.Calendar) error {
	f.lastSaved = &cal
	if f.err == nil {
		f.calendar = cal
	}
	return f.err
}

func (f *fakeCalendarService) Categories(ctx context.Context, term string) ([]domain.Category, bool, error) {
	f.lastTerm = term
	return f.matches, f.canCreate, f.err
}

func (f *fakeCalendarService) AddEvents(ctx context.Context, req domain.AddEventsRequest) (domain.AddEventsResult, error) {
	f.lastAdd = req
	return f.addResult, f.err
}

func (f *fakeCalendarService) RemoveEvent(ctx context.Context, campusID domain.CampusID, eventID string) error {
	f.lastCampusID = campusID
	f.lastEventID = eventID
	return f.removeEventErr
}

func (f *fakeCalendarService) CampusEvents(ctx context.Context, campusID domain.CampusID) ([]domain.CampusEvent, error) {
	f.lastCampusID = campusID
	return f.events, f.err
}

func (f *fakeCalendarService) Day(ctx context.Context, date string) (domain.DayStats, error) {
	f.lastDate = date
	return f.stats, f.err
}

func (f *fakeCalendarService) Month(ctx context.Context, year, month int) (domain.MonthGrid, error) {
	f.lastYear, f.lastMonth = year, month
	if f.err != nil {
		return domain.MonthGrid{}, f.err
	}
	return domain.MonthGrid{Year: year, Month: time.Month(month)}, nil
}

func (f *fakeCalendarService) Year(ctx context.Context, year int) ([]domain.MonthGrid, error) {
	f.lastYear = year
	if f.err != nil {
		return nil, f.err
	}
	return make([]domain.MonthGrid, 12), nil
}

func (f *fakeCalendarService) Catalogue(ctx context.Context) (domain.Catalogue, error) {
	return f.catalogue, f.err
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder, data any) helpers.APIResponse {
	t.Helper()
	var raw struct {
		Data  json.RawMessage   `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&raw))
	if data != nil && raw.Error == nil {
		require.NoError(t, json.Unmarshal(raw.Data, data))
	}
	return helpers.APIResponse{Data: data, Error: raw.Error}
}

func TestCalendarController_GetCalendar(t *testing.T) {
	fake := &fakeCalendarService{calendar: domain.NewCalendar()}
	ctrl := NewCalendarController(testLogger, fake)

	rr := httptest.NewRecorder()
	ctrl.GetCalendar(rr, httptest.NewRequest(http.MethodGet, "http://test/calendar", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var got domain.Calendar
	env := decodeEnvelope(t, rr, &got)
	assert.Nil(t, env.Error)
	assert.Equal(t, domain.CalendarVersion, got.Version)
	assert.Len(t, got.Categories, 2)
}

func TestCalendarController_SaveCalendar(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
	}{
		{
			name:       "success",
			body:       `{"version":2,"categories":[{"id":"c1","name":"Exams","color":"red"}],"events":{"10":[{"id":"e1","categoryId":"c1","startDate":"2025-03-01","endDate":"2025-03-02"}]}}`,
			wantStatus: http.StatusOK,
		},
		{
			name:           "unknown field",
			body:           `{"version":2,"legacy":true}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "unknown field",
		},
		{
			name:           "invalid event range",
			body:           `{"version":2,"events":{}}`,
			fakeErr:        domain.NewValidationError("end_date", "must not be before start_date"),
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "end_date",
		},
		{
			name:           "storage failure",
			body:           `{"version":2}`,
			fakeErr:        errors.New("connection reset"),
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: "internal server error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeCalendarService{err: tt.fakeErr}
			ctrl := NewCalendarController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPut, "http://test/calendar", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()
			ctrl.SaveCalendar(rr, req)
			require.Equal(t, tt.wantStatus, rr.Code)

			env := decodeEnvelope(t, rr, nil)
			if tt.wantBodySubstr != "" {
				require.NotNil(t, env.Error)
				assert.Contains(t, env.Error.Message, tt.wantBodySubstr)
				return
			}
			require.NotNil(t, fake.lastSaved)
			assert.Len(t, fake.lastSaved.Events["10"], 1)
		})
	}
}

func TestCalendarController_SearchCategories(t *testing.T) {
	fake := &fakeCalendarService{
		matches:   []domain.Category{{ID: "cat_recess", Name: "Recess"}},
		canCreate: true,
	}
	ctrl := NewCalendarController(testLogger, fake)

	rr := httptest.NewRecorder()
	ctrl.SearchCategories(rr, httptest.NewRequest(http.MethodGet, "http://test/calendar/categories?q=rec", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "rec", fake.lastTerm)

	var got CategorySearchResponse
	decodeEnvelope(t, rr, &got)
	assert.True(t, got.CanCreate)
	require.Len(t, got.Categories, 1)
	assert.Equal(t, "Recess", got.Categories[0].Name)
}

func TestCalendarController_AddEvents(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
		checkCall      func(t *testing.T, fake *fakeCalendarService)
	}{
		{
			name:       "institution scope by name",
			body:       `{"scope":{"kind":"institution","institution":"IFSP"},"category_name":"Exams","category_color":"red","start_date":"2025-06-01","end_date":"2025-06-05"}`,
			wantStatus: http.StatusCreated,
			checkCall: func(t *testing.T, fake *fakeCalendarService) {
				assert.Equal(t, domain.InstitutionScope("IFSP"), fake.lastAdd.Scope)
				assert.Equal(t, "Exams", fake.lastAdd.CategoryName)
				assert.Equal(t, "red", fake.lastAdd.CategoryColor)
				assert.Equal(t, "2025-06-01", fake.lastAdd.StartDate)
				assert.Equal(t, "2025-06-05", fake.lastAdd.EndDate)
			},
		},
		{
			name:       "campus scope with numeric id",
			body:       `{"scope":{"kind":"campus","campus_id":42},"category_id":"cat_recess","start_date":"2025-07-01","end_date":"2025-07-10"}`,
			wantStatus: http.StatusCreated,
			checkCall: func(t *testing.T, fake *fakeCalendarService) {
				assert.Equal(t, domain.CampusScope("42"), fake.lastAdd.Scope)
				assert.Equal(t, "cat_recess", fake.lastAdd.CategoryID)
			},
		},
		{
			name:           "missing scope",
			body:           `{"category_id":"cat_recess","start_date":"2025-07-01","end_date":"2025-07-10"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "scope",
		},
		{
			name:           "unknown scope kind",
			body:           `{"scope":{"kind":"planet"},"category_id":"cat_recess","start_date":"2025-07-01","end_date":"2025-07-10"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "planet",
		},
		{
			name:           "missing category",
			body:           `{"scope":{"kind":"global"},"start_date":"2025-07-01","end_date":"2025-07-10"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "category_id or category_name is required",
		},
		{
			name:           "missing dates",
			body:           `{"scope":{"kind":"global"},"category_id":"cat_recess"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "start_date is required",
		},
		{
			name:           "service rejects range",
			body:           `{"scope":{"kind":"global"},"category_id":"cat_recess","start_date":"2025-07-10","end_date":"2025-07-01"}`,
			fakeErr:        domain.NewValidationError("end_date", "must not be before start_date"),
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "end_date",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeCalendarService{err: tt.fakeErr, addResult: domain.AddEventsResult{Added: 2, CategoryID: "c1"}}
			ctrl := NewCalendarController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "http://test/calendar/events", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()
			ctrl.AddEvents(rr, req)
			require.Equal(t, tt.wantStatus, rr.Code)

			var got domain.AddEventsResult
			env := decodeEnvelope(t, rr, &got)
			if tt.wantBodySubstr != "" {
				require.NotNil(t, env.Error)
				assert.Contains(t, env.Error.Message, tt.wantBodySubstr)
				return
			}
			assert.Equal(t, 2, got.Added)
			assert.Equal(t, "c1", got.CategoryID)
			if tt.checkCall != nil {
				tt.checkCall(t, fake)
			}
		})
	}
}

func TestCalendarController_RemoveEvent(t *testing.T) {
	tests := []struct {
		name       string
		campusID   string
		eventID    string
		fakeErr    error
		wantStatus int
	}{
		{name: "success", campusID: "10", eventID: "e1", wantStatus: http.StatusNoContent},
		{name: "missing eventID", campusID: "10", eventID: "", wantStatus: http.StatusBadRequest},
		{name: "storage failure", campusID: "10", eventID: "e1", fakeErr: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeCalendarService{removeEventErr: tt.fakeErr}
			ctrl := NewCalendarController(testLogger, fake)
			req := httptest.NewRequest(http.MethodDelete, "http://test/calendar/campuses/x/events/y", nil)
			req.SetPathValue("campusID", tt.campusID)
			req.SetPathValue("eventID", tt.eventID)
			rr := httptest.NewRecorder()
			ctrl.RemoveEvent(rr, req)
			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusNoContent {
				assert.Equal(t, domain.CampusID("10"), fake.lastCampusID)
				assert.Equal(t, "e1", fake.lastEventID)
			}
		})
	}
}

func TestCalendarController_CampusEvents(t *testing.T) {
	fake := &fakeCalendarService{events: []domain.CampusEvent{{
		Event:    domain.Event{ID: "e1", CategoryID: "cat_recess", StartDate: "2025-07-01", EndDate: "2025-07-10"},
		Category: domain.Category{ID: "cat_recess", Name: "Recess"},
	}}}
	ctrl := NewCalendarController(testLogger, fake)
	req := httptest.NewRequest(http.MethodGet, "http://test/calendar/campuses/10/events", nil)
	req.SetPathValue("campusID", "10")
	rr := httptest.NewRecorder()
	ctrl.CampusEvents(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, domain.CampusID("10"), fake.lastCampusID)

	var got []domain.CampusEvent
	decodeEnvelope(t, rr, &got)
	require.Len(t, got, 1)
	assert.Equal(t, "Recess", got[0].Category.Name)
	assert.Equal(t, "2025-07-01", got[0].StartDate)
}

func TestCalendarController_Day(t *testing.T) {
	fake := &fakeCalendarService{stats: domain.DayStats{Date: "2025-07-05", Total: 3, Active: 1, Ratio: 1.0 / 3.0}}
	ctrl := NewCalendarController(testLogger, fake)
	req := httptest.NewRequest(http.MethodGet, "http://test/calendar/days/2025-07-05", nil)
	req.SetPathValue("date", "2025-07-05")
	rr := httptest.NewRecorder()
	ctrl.Day(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "2025-07-05", fake.lastDate)

	var got domain.DayStats
	decodeEnvelope(t, rr, &got)
	assert.Equal(t, 3, got.Total)
	assert.Equal(t, 1, got.Active)
}

func TestCalendarController_MonthAndYear(t *testing.T) {
	tests := []struct {
		name       string
		year       string
		month      string
		fakeErr    error
		wantStatus int
	}{
		{name: "month ok", year: "2025", month: "7", wantStatus: http.StatusOK},
		{name: "month not a number", year: "2025", month: "jul", wantStatus: http.StatusBadRequest},
		{name: "year not a number", year: "twenty", month: "7", wantStatus: http.StatusBadRequest},
		{name: "month out of range", year: "2025", month: "13", fakeErr: domain.NewValidationError("month", "must be between 1 and 12"), wantStatus: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeCalendarService{err: tt.fakeErr}
			ctrl := NewCalendarController(testLogger, fake)
			req := httptest.NewRequest(http.MethodGet, "http://test/calendar/months/y/m", nil)
			req.SetPathValue("year", tt.year)
			req.SetPathValue("month", tt.month)
			rr := httptest.NewRecorder()
			ctrl.Month(rr, req)
			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, 2025, fake.lastYear)
				assert.Equal(t, 7, fake.lastMonth)
			}
		})
	}

	t.Run("year grid", func(t *testing.T) {
		fake := &fakeCalendarService{}
		ctrl := NewCalendarController(testLogger, fake)
		req := httptest.NewRequest(http.MethodGet, "http://test/calendar/years/2025", nil)
		req.SetPathValue("year", "2025")
		rr := httptest.NewRecorder()
		ctrl.Year(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)

		var got []domain.MonthGrid
		decodeEnvelope(t, rr, &got)
		assert.Len(t, got, 12)
	})
}
