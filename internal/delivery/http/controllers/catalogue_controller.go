package controllers

import (
	"log/slog"
	"net/http"

	"campuscalendar/internal/delivery/http/helpers"
	"campuscalendar/internal/domain"
)

// CatalogueResponse is the response body for GET /catalogue.
type CatalogueResponse struct {
	Entries      []CatalogueEntryResponse `json:"entries"`
	Institutions []string                 `json:"institutions"`
	Pagination   helpers.PaginationMeta   `json:"pagination"`
}

// CatalogueEntryResponse is one campus of the catalogue with its display label.
type CatalogueEntryResponse struct {
	domain.CatalogueEntry
	Label string `json:"label"`
}

type CatalogueController struct {
	Logger        *slog.Logger
	Calendar      domain.CalendarService
	Participation domain.ParticipationService
}

func NewCatalogueController(logger *slog.Logger, cal domain.CalendarService, participation domain.ParticipationService) *CatalogueController {
	return &CatalogueController{
		Logger:        logger,
		Calendar:      cal,
		Participation: participation,
	}
}

// GetCatalogue godoc
// @Summary List the campus catalogue
// @Description Returns the campi derived from the registration submissions, sorted by institution. Filter by institution or a search term over campus names.
// @Tags catalogue
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search term"
// @Param institution query string false "Institution name"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains entries, institutions and pagination"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /catalogue [get]
func (c *CatalogueController) GetCatalogue(w http.ResponseWriter, r *http.Request) {
	cat, err := c.Calendar.Catalogue(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
		return
	}
	institutions := cat.Institutions()

	q := r.URL.Query()
	if inst := q.Get("institution"); inst != "" {
		cat = cat.ByInstitution(inst)
	}
	if term := q.Get("q"); term != "" {
		cat = cat.Filter(term)
	}

	params := helpers.ParsePagination(r)
	start, end := params.Window(len(cat))
	entries := make([]CatalogueEntryResponse, 0, end-start)
	for _, e := range cat[start:end] {
		entries = append(entries, CatalogueEntryResponse{CatalogueEntry: e, Label: e.Label()})
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, CatalogueResponse{
		Entries:      entries,
		Institutions: institutions,
		Pagination:   helpers.NewPaginationMeta(params.Page, params.PageSize, len(cat)),
	})
}

// Overview godoc
// @Summary Participation overview
// @Description Aggregates the registration submissions by institution: campus counts, campus names and respondents.
// @Tags catalogue
// @Produce json
// @Security BearerAuth
// @Param form_config_id query string false "Restrict to one form configuration"
// @Success 200 {object} helpers.APIResponse "data contains the overview"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /overview [get]
func (c *CatalogueController) Overview(w http.ResponseWriter, r *http.Request) {
	var formConfigID *string
	if v := r.URL.Query().Get("form_config_id"); v != "" {
		formConfigID = &v
	}
	overview, err := c.Participation.Overview(r.Context(), formConfigID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, overview)
}
