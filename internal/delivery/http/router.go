package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"campuscalendar/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes.
// requireAuth guards every route except login, the public registration
// form endpoints and the API docs.
func NewRouter(
	calendarController *controllers.CalendarController,
	catalogueController *controllers.CatalogueController,
	registrationController *controllers.RegistrationController,
	formController *controllers.FormController,
	appConfigController *controllers.AppConfigController,
	authController *controllers.AuthController,
	requireAuth func(http.HandlerFunc) http.HandlerFunc,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Auth
	mux.HandleFunc("POST /auth/login", authController.Login)

	// Calendar
	mux.HandleFunc("GET /calendar", requireAuth(calendarController.GetCalendar))
	mux.HandleFunc("PUT /calendar", requireAuth(calendarController.SaveCalendar))
	mux.HandleFunc("GET /calendar/categories", requireAuth(calendarController.SearchCategories))
	mux.HandleFunc("POST /calendar/events", requireAuth(calendarController.AddEvents))
	mux.HandleFunc("GET /calendar/campuses/{campusID}/events", requireAuth(calendarController.CampusEvents))
	mux.HandleFunc("DELETE /calendar/campuses/{campusID}/events/{eventID}", requireAuth(calendarController.RemoveEvent))
	mux.HandleFunc("GET /calendar/days/{date}", requireAuth(calendarController.Day))
	mux.HandleFunc("GET /calendar/months/{year}/{month}", requireAuth(calendarController.Month))
	mux.HandleFunc("GET /calendar/years/{year}", requireAuth(calendarController.Year))

	// Catalogue
	mux.HandleFunc("GET /catalogue", requireAuth(catalogueController.GetCatalogue))
	mux.HandleFunc("GET /overview", requireAuth(catalogueController.Overview))

	// Registration form (public) and its administration
	mux.HandleFunc("GET /config", appConfigController.Get)
	mux.HandleFunc("PUT /config", requireAuth(appConfigController.Replace))
	mux.HandleFunc("POST /config/import", requireAuth(appConfigController.Import))
	mux.HandleFunc("POST /config/restore-default", requireAuth(appConfigController.RestoreDefault))
	mux.HandleFunc("GET /forms/active", formController.Active)
	mux.HandleFunc("GET /forms", requireAuth(formController.List))
	mux.HandleFunc("POST /forms", requireAuth(formController.Create))
	mux.HandleFunc("POST /forms/initialize", requireAuth(formController.Initialize))
	mux.HandleFunc("PATCH /forms/{formID}", requireAuth(formController.Update))
	mux.HandleFunc("DELETE /forms/{formID}", requireAuth(formController.Delete))
	mux.HandleFunc("POST /submissions", registrationController.Submit)
	mux.HandleFunc("GET /submissions", requireAuth(registrationController.List))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
