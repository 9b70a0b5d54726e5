package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"campuscalendar/internal/delivery/http/helpers"
	"campuscalendar/internal/domain"
)

// SubmitRequest is the request body for POST /submissions.
type SubmitRequest struct {
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	ICT          string          `json:"ict"`
	Campi        []domain.Campus `json:"campi"`
	FormConfigID *string         `json:"form_config_id,omitempty"`
}

// Validate implements Validator.
func (s SubmitRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(s.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(s.Email) == "" {
		errs = append(errs, "email is required")
	}
	if strings.TrimSpace(s.ICT) == "" {
		errs = append(errs, "ict is required")
	}
	if len(s.Campi) == 0 {
		errs = append(errs, "select at least one campus")
	}
	return errs
}

// SubmissionListResponse is the response body for GET /submissions.
type SubmissionListResponse struct {
	Submissions []*domain.Submission   `json:"submissions"`
	Pagination  helpers.PaginationMeta `json:"pagination"`
}

type RegistrationController struct {
	Logger  *slog.Logger
	Service domain.RegistrationService
}

func NewRegistrationController(logger *slog.Logger, svc domain.RegistrationService) *RegistrationController {
	return &RegistrationController{
		Logger:  logger,
		Service: svc,
	}
}

func (c *RegistrationController) fail(w http.ResponseWriter, r *http.Request, err error) {
	if helpers.WriteServiceError(w, err) {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	}
}

// Submit godoc
// @Summary Submit a registration
// @Description Public endpoint of the registration form. Stores the institution and the campi it enrolls and emails a receipt to the respondent.
// @Tags submissions
// @Accept json
// @Produce json
// @Param body body SubmitRequest true "Respondent, institution and campi"
// @Success 201 {object} helpers.APIResponse "data contains the stored submission"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /submissions [post]
func (c *RegistrationController) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	sub, err := c.Service.Submit(r.Context(), domain.SubmissionRequest{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		ICT:          req.ICT,
		Campi:        req.Campi,
		FormConfigID: req.FormConfigID,
	})
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, sub)
}

// List godoc
// @Summary List registrations
// @Description Lists submissions newest first, optionally restricted to one form.
// @Tags submissions
// @Produce json
// @Security BearerAuth
// @Param form_config_id query string false "Form configuration ID"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains submissions and pagination"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /submissions [get]
func (c *RegistrationController) List(w http.ResponseWriter, r *http.Request) {
	var formID *string
	if id := r.URL.Query().Get("form_config_id"); id != "" {
		formID = &id
	}
	subs, err := c.Service.List(r.Context(), formID)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	params := helpers.ParsePagination(r)
	start, end := params.Window(len(subs))
	helpers.WriteJSONSuccess(w, http.StatusOK, SubmissionListResponse{
		Submissions: subs[start:end],
		Pagination:  helpers.NewPaginationMeta(params.Page, params.PageSize, len(subs)),
	})
}
