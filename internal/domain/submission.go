package domain

import (
	"context"
	"time"
)

// Submission is a public registration response listing the campi an
// institution enrolls.
// swagger:model Submission
type Submission struct {
	ID           int64     `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	ICT          string    `json:"ict"`
	Campi        []Campus  `json:"campi"`
	FormConfigID *string   `json:"form_config_id,omitempty"`
}

// AppConfig is the singleton list of known institutions and campi.
// swagger:model AppConfig
type AppConfig struct {
	ICTs      []string   `json:"icts"`
	Campi     []Campus   `json:"campi"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// SubmissionRepository reads and stores registration responses.
type SubmissionRepository interface {
	// List returns submissions newest first, optionally restricted to one form configuration.
	List(ctx context.Context, formConfigID *string) ([]*Submission, error)
	// Create inserts s and fills its ID and CreatedAt.
	Create(ctx context.Context, s *Submission) error
}

// AppConfigRepository reads and replaces the singleton application configuration.
type AppConfigRepository interface {
	Get(ctx context.Context) (*AppConfig, error)
	Save(ctx context.Context, cfg *AppConfig) error
}

// SubmissionRequest is a registration sent through the public form.
type SubmissionRequest struct {
	Name         string
	Email        string
	Phone        string
	ICT          string
	Campi        []Campus
	FormConfigID *string
}

// RegistrationService accepts public registrations and lists them for admins.
type RegistrationService interface {
	// Submit stores the registration and emails a receipt to the respondent.
	// A failed receipt does not fail the submission.
	Submit(ctx context.Context, req SubmissionRequest) (*Submission, error)
	List(ctx context.Context, formConfigID *string) ([]*Submission, error)
}

// AppConfigService reads and replaces the known institutions and campi.
type AppConfigService interface {
	// Get returns the stored configuration, or DefaultAppConfig when none is stored.
	Get(ctx context.Context) (*AppConfig, error)
	Replace(ctx context.Context, cfg *AppConfig) (*AppConfig, error)
	// Import replaces the configuration with one built from spreadsheet
	// rows of (acronym, institution name, campus name).
	Import(ctx context.Context, rows [][]string) (*AppConfig, error)
	RestoreDefault(ctx context.Context) (*AppConfig, error)
}

// DefaultAppConfig is the configuration used before any base is imported.
func DefaultAppConfig() *AppConfig {
	const ict = "IFSP - Instituto Federal de São Paulo"
	return &AppConfig{
		ICTs:  []string{ict},
		Campi: []Campus{{ID: "1", Name: "Campus São Paulo", ICTName: ict}},
	}
}

// InstitutionSummary is the participation of one institution.
// swagger:model InstitutionSummary
type InstitutionSummary struct {
	Institution string   `json:"institution"`
	CampusCount int      `json:"campus_count"`
	Label       string   `json:"label"`
	Campuses    []string `json:"campuses"`
	Respondents []string `json:"respondents"`
}

// ParticipationOverview aggregates all submissions by institution.
// swagger:model ParticipationOverview
type ParticipationOverview struct {
	TotalCampuses     int                  `json:"total_campuses"`
	TotalInstitutions int                  `json:"total_institutions"`
	TotalSubmissions  int                  `json:"total_submissions"`
	Institutions      []InstitutionSummary `json:"institutions"`
}

// ParticipationService computes participation statistics.
type ParticipationService interface {
	Overview(ctx context.Context, formConfigID *string) (ParticipationOverview, error)
}
