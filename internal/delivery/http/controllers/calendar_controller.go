package controllers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"campuscalendar/internal/delivery/http/helpers"
	"campuscalendar/internal/domain"
)

// AddEventsRequest is the request body for POST /calendar/events.
// Either category_id or category_name must be set; a new category_name is
// created with category_color.
type AddEventsRequest struct {
	Scope         domain.Scope `json:"scope"`
	CategoryID    string       `json:"category_id"`
	CategoryName  string       `json:"category_name"`
	CategoryColor string       `json:"category_color"`
	StartDate     string       `json:"start_date"`
	EndDate       string       `json:"end_date"`
}

// Validate implements Validator.
func (a AddEventsRequest) Validate() []string {
	var errs []string
	if err := a.Scope.Validate(); err != nil {
		errs = append(errs, err.Error())
	}
	if strings.TrimSpace(a.CategoryID) == "" && strings.TrimSpace(a.CategoryName) == "" {
		errs = append(errs, "category_id or category_name is required")
	}
	if a.StartDate == "" {
		errs = append(errs, "start_date is required")
	}
	if a.EndDate == "" {
		errs = append(errs, "end_date is required")
	}
	return errs
}

// AddEventsSuccessResponse is the success response envelope for POST /calendar/events (201).
type AddEventsSuccessResponse struct {
	Data  domain.AddEventsResult `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

// CategorySearchResponse is the response body for GET /calendar/categories.
type CategorySearchResponse struct {
	Categories []domain.Category `json:"categories"`
	CanCreate  bool              `json:"can_create"`
}

type CalendarController struct {
	Logger  *slog.Logger
	Service domain.CalendarService
}

func NewCalendarController(logger *slog.Logger, svc domain.CalendarService) *CalendarController {
	return &CalendarController{
		Logger:  logger,
		Service: svc,
	}
}

func (c *CalendarController) fail(w http.ResponseWriter, r *http.Request, err error) {
	if helpers.WriteServiceError(w, err) {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	}
}

// GetCalendar godoc
// @Summary Get the calendar
// @Description Returns the calendar normalized to the current schema. A legacy stored document is migrated on read.
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the calendar"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /calendar [get]
func (c *CalendarController) GetCalendar(w http.ResponseWriter, r *http.Request) {
	cal, err := c.Service.Get(r.Context())
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, cal)
}

// SaveCalendar godoc
// @Summary Replace the calendar
// @Description Stores a full calendar snapshot as the current schema version.
// @Tags calendar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param calendar body domain.Calendar true "Calendar snapshot"
// @Success 200 {object} helpers.APIResponse "data contains the stored calendar"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /calendar [put]
func (c *CalendarController) SaveCalendar(w http.ResponseWriter, r *http.Request) {
	var cal domain.Calendar
	if !helpers.DecodeAndValidate(w, r, &cal) {
		return
	}
	if err := c.Service.Save(r.Context(), cal); err != nil {
		c.fail(w, r, err)
		return
	}
	saved, err := c.Service.Get(r.Context())
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, saved)
}

// SearchCategories godoc
// @Summary Search categories
// @Description Case-insensitive substring search over category names. can_create is true when q names no existing category.
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search term"
// @Success 200 {object} helpers.APIResponse "data contains categories and can_create"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /calendar/categories [get]
func (c *CalendarController) SearchCategories(w http.ResponseWriter, r *http.Request) {
	matches, canCreate, err := c.Service.Categories(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, CategorySearchResponse{Categories: matches, CanCreate: canCreate})
}

// AddEvents godoc
// @Summary Add events in bulk
// @Description Adds one event per campus selected by the scope (campus, institution or global). The category is referenced by id or resolved/created by name.
// @Tags calendar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body AddEventsRequest true "Scope, category and date range"
// @Success 201 {object} controllers.AddEventsSuccessResponse "data contains the number of events added and the category id"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /calendar/events [post]
func (c *CalendarController) AddEvents(w http.ResponseWriter, r *http.Request) {
	var req AddEventsRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	res, err := c.Service.AddEvents(r.Context(), domain.AddEventsRequest{
		Scope:         req.Scope,
		CategoryID:    strings.TrimSpace(req.CategoryID),
		CategoryName:  req.CategoryName,
		CategoryColor: req.CategoryColor,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
	})
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, res)
}

// RemoveEvent godoc
// @Summary Remove an event
// @Description Removes one event from a campus. Removing an unknown event is a no-op.
// @Tags calendar
// @Security BearerAuth
// @Param campusID path string true "Campus ID"
// @Param eventID path string true "Event ID"
// @Success 204 "No Content"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /calendar/campuses/{campusID}/events/{eventID} [delete]
func (c *CalendarController) RemoveEvent(w http.ResponseWriter, r *http.Request) {
	campusID := r.PathValue("campusID")
	eventID := r.PathValue("eventID")
	if campusID == "" || eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing campusID or eventID")
		return
	}
	if err := c.Service.RemoveEvent(r.Context(), domain.CampusID(campusID), eventID); err != nil {
		c.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CampusEvents godoc
// @Summary List events of a campus
// @Description Returns the campus events in stored order, each resolved against its category. Events with an unknown category are omitted.
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Param campusID path string true "Campus ID"
// @Success 200 {object} helpers.APIResponse "data contains the events"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /calendar/campuses/{campusID}/events [get]
func (c *CalendarController) CampusEvents(w http.ResponseWriter, r *http.Request) {
	campusID := r.PathValue("campusID")
	if campusID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing campusID")
		return
	}
	events, err := c.Service.CampusEvents(r.Context(), domain.CampusID(campusID))
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// Day godoc
// @Summary Day statistics
// @Description Returns how many campi are in an active event on the date, bucketed by category.
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Param date path string true "ISO date (YYYY-MM-DD)"
// @Success 200 {object} helpers.APIResponse "data contains the day statistics"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /calendar/days/{date} [get]
func (c *CalendarController) Day(w http.ResponseWriter, r *http.Request) {
	stats, err := c.Service.Day(r.Context(), r.PathValue("date"))
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, stats)
}

// Month godoc
// @Summary Month heat map
// @Description Returns the Sunday-first grid of a month with statistics for every day.
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {object} helpers.APIResponse "data contains the month grid"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /calendar/months/{year}/{month} [get]
func (c *CalendarController) Month(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.PathValue("year"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid year")
		return
	}
	month, err := strconv.Atoi(r.PathValue("month"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid month")
		return
	}
	grid, err := c.Service.Month(r.Context(), year, month)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, grid)
}

// Year godoc
// @Summary Year heat map
// @Description Returns the twelve month grids of a year.
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Param year path int true "Year"
// @Success 200 {object} helpers.APIResponse "data contains twelve month grids"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /calendar/years/{year} [get]
func (c *CalendarController) Year(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.PathValue("year"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid year")
		return
	}
	grids, err := c.Service.Year(r.Context(), year)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, grids)
}
