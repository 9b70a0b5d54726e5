package domain

import (
	"context"
	"time"
)

// Default registration form created when the system is initialized with
// responses that predate form configurations.
const (
	DefaultFormTitle     = "Registro de ICTs"
	DefaultFormEdictName = "Trilha de Pré-Incubação Brasil Inovador 2025-2026"
)

// FormConfig is one registration form, tied to a call for proposals (edict).
// Responses reference the form they were submitted through.
// swagger:model FormConfig
type FormConfig struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Title     string    `json:"title"`
	EdictName string    `json:"edict_name"`
	IsActive  bool      `json:"is_active"`
}

// FormConfigRepository persists registration forms.
type FormConfigRepository interface {
	// List returns every form, newest first.
	List(ctx context.Context) ([]*FormConfig, error)
	GetByID(ctx context.Context, id string) (*FormConfig, error)
	// GetLatestActive returns the newest active form or ErrNotFound.
	GetLatestActive(ctx context.Context) (*FormConfig, error)
	// Create inserts f and fills its ID and CreatedAt.
	Create(ctx context.Context, f *FormConfig) error
	SetActive(ctx context.Context, id string, active bool) error
	// Delete removes the form together with every response linked to it.
	Delete(ctx context.Context, id string) error
	// CreateAndAdoptOrphans inserts f and links every response without a
	// form to it, atomically. It returns the number of adopted responses.
	CreateAndAdoptOrphans(ctx context.Context, f *FormConfig) (int64, error)
}

// FormService manages registration forms.
type FormService interface {
	List(ctx context.Context) ([]*FormConfig, error)
	// Active returns the form with the given id, or the newest active form
	// when id is nil.
	Active(ctx context.Context, id *string) (*FormConfig, error)
	Create(ctx context.Context, title, edictName string) (*FormConfig, error)
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
	// InitializeLegacy creates the default form and assigns every response
	// without a form to it.
	InitializeLegacy(ctx context.Context) (*FormConfig, int64, error)
}
