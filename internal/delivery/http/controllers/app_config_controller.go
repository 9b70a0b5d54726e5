package controllers

import (
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"campuscalendar/internal/delivery/http/helpers"
	"campuscalendar/internal/domain"
	"campuscalendar/internal/institutions"
)

// maxImportBytes caps the size of an uploaded institution base.
const maxImportBytes = 5 << 20

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReplaceConfigRequest is the request body for PUT /config.
type ReplaceConfigRequest struct {
	ICTs  []string        `json:"icts"`
	Campi []domain.Campus `json:"campi"`
}

type AppConfigController struct {
	Logger  *slog.Logger
	Service domain.AppConfigService
}

func NewAppConfigController(logger *slog.Logger, svc domain.AppConfigService) *AppConfigController {
	return &AppConfigController{
		Logger:  logger,
		Service: svc,
	}
}

func (c *AppConfigController) fail(w http.ResponseWriter, r *http.Request, err error) {
	if helpers.WriteServiceError(w, err) {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	}
}

// Get godoc
// @Summary Get known institutions and campi
// @Description Public. Returns the institution base offered by the registration form.
// @Tags config
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains icts and campi"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /config [get]
func (c *AppConfigController) Get(w http.ResponseWriter, r *http.Request) {
	cfg, err := c.Service.Get(r.Context())
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, cfg)
}

// Replace godoc
// @Summary Replace the institution base
// @Tags config
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ReplaceConfigRequest true "Institutions and campi"
// @Success 200 {object} helpers.APIResponse "data contains the stored configuration"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /config [put]
func (c *AppConfigController) Replace(w http.ResponseWriter, r *http.Request) {
	var req ReplaceConfigRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	cfg, err := c.Service.Replace(r.Context(), &domain.AppConfig{ICTs: req.ICTs, Campi: req.Campi})
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, cfg)
}

// Import godoc
// @Summary Import the institution base from a spreadsheet
// @Description Rows of ACRONYM, INSTITUTION NAME, CAMPUS NAME. Send pasted cells as text/plain (tab separated), an .xlsx workbook as the raw body, or either as the multipart field "file".
// @Tags config
// @Accept plain
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the stored configuration"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /config/import [post]
func (c *AppConfigController) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportBytes)

	rows, err := readImportRows(r)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	cfg, err := c.Service.Import(r.Context(), rows)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, cfg)
}

// RestoreDefault godoc
// @Summary Restore the default institution base
// @Tags config
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the default configuration"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /config/restore-default [post]
func (c *AppConfigController) RestoreDefault(w http.ResponseWriter, r *http.Request) {
	cfg, err := c.Service.RestoreDefault(r.Context())
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, cfg)
}

func readImportRows(r *http.Request) ([][]string, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "multipart/form-data":
		file, header, err := r.FormFile("file")
		if err != nil {
			return nil, errors.New("multipart field \"file\" is required")
		}
		defer file.Close()
		if strings.HasSuffix(strings.ToLower(header.Filename), ".xlsx") {
			return institutions.ReadWorkbook(file)
		}
		return institutions.ReadTSV(file)
	case xlsxContentType:
		return institutions.ReadWorkbook(r.Body)
	default:
		return institutions.ReadTSV(r.Body)
	}
}
