package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"campuscalendar/internal/delivery/http/helpers"
	"campuscalendar/internal/domain"
)

// CreateFormRequest is the request body for POST /forms.
type CreateFormRequest struct {
	Title     string `json:"title"`
	EdictName string `json:"edict_name"`
}

// Validate implements Validator.
func (f CreateFormRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(f.Title) == "" {
		errs = append(errs, "title is required")
	}
	if strings.TrimSpace(f.EdictName) == "" {
		errs = append(errs, "edict_name is required")
	}
	return errs
}

// UpdateFormRequest is the request body for PATCH /forms/{formID}.
type UpdateFormRequest struct {
	IsActive *bool `json:"is_active"`
}

// Validate implements Validator.
func (f UpdateFormRequest) Validate() []string {
	if f.IsActive == nil {
		return []string{"is_active is required"}
	}
	return nil
}

// InitializeFormsResponse is the response body for POST /forms/initialize.
type InitializeFormsResponse struct {
	Form             *domain.FormConfig `json:"form"`
	AdoptedResponses int64              `json:"adopted_responses"`
}

type FormController struct {
	Logger  *slog.Logger
	Service domain.FormService
}

func NewFormController(logger *slog.Logger, svc domain.FormService) *FormController {
	return &FormController{
		Logger:  logger,
		Service: svc,
	}
}

func (c *FormController) fail(w http.ResponseWriter, r *http.Request, err error) {
	if helpers.WriteServiceError(w, err) {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	}
}

// List godoc
// @Summary List registration forms
// @Tags forms
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the forms, newest first"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /forms [get]
func (c *FormController) List(w http.ResponseWriter, r *http.Request) {
	forms, err := c.Service.List(r.Context())
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, forms)
}

// Active godoc
// @Summary Get the form to show
// @Description Public. Returns the form with the given id, or the newest active form.
// @Tags forms
// @Produce json
// @Param id query string false "Form configuration ID"
// @Success 200 {object} helpers.APIResponse "data contains the form"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /forms/active [get]
func (c *FormController) Active(w http.ResponseWriter, r *http.Request) {
	var id *string
	if v := r.URL.Query().Get("id"); v != "" {
		id = &v
	}
	form, err := c.Service.Active(r.Context(), id)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, form)
}

// Create godoc
// @Summary Create a registration form
// @Tags forms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateFormRequest true "Title and edict name"
// @Success 201 {object} helpers.APIResponse "data contains the created form"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /forms [post]
func (c *FormController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateFormRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	form, err := c.Service.Create(r.Context(), req.Title, req.EdictName)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, form)
}

// Update godoc
// @Summary Open or close a registration form
// @Tags forms
// @Accept json
// @Security BearerAuth
// @Param formID path string true "Form configuration ID"
// @Param body body UpdateFormRequest true "New status"
// @Success 204 "No Content"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /forms/{formID} [patch]
func (c *FormController) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateFormRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.SetActive(r.Context(), r.PathValue("formID"), *req.IsActive); err != nil {
		c.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete godoc
// @Summary Delete a registration form
// @Description Deletes the form and every submission linked to it. Irreversible.
// @Tags forms
// @Security BearerAuth
// @Param formID path string true "Form configuration ID"
// @Success 204 "No Content"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /forms/{formID} [delete]
func (c *FormController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Delete(r.Context(), r.PathValue("formID")); err != nil {
		c.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Initialize godoc
// @Summary Initialize forms from legacy data
// @Description Creates the default registration form and links every submission without a form to it.
// @Tags forms
// @Produce json
// @Security BearerAuth
// @Success 201 {object} helpers.APIResponse "data contains the form and the number of adopted submissions"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /forms/initialize [post]
func (c *FormController) Initialize(w http.ResponseWriter, r *http.Request) {
	form, n, err := c.Service.InitializeLegacy(r.Context())
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, InitializeFormsResponse{Form: form, AdoptedResponses: n})
}
