package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"campuscalendar/internal/domain"
)

const appConfigID = 1

type appConfigRepository struct {
	DB  *sql.DB
	now func() time.Time
}

// NewAppConfigRepository returns a domain.AppConfigRepository backed by the app_config table.
func NewAppConfigRepository(db *sql.DB) domain.AppConfigRepository {
	return &appConfigRepository{DB: db, now: time.Now}
}

// Get returns the stored configuration, or an empty one when no row exists.
func (r *appConfigRepository) Get(ctx context.Context) (*domain.AppConfig, error) {
	var (
		icts      pq.StringArray
		campi     []byte
		updatedAt sql.NullTime
	)
	err := r.DB.QueryRowContext(ctx,
		`SELECT icts, campi, updated_at FROM app_config WHERE id = $1`, appConfigID,
	).Scan(&icts, &campi, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &domain.AppConfig{ICTs: []string{}, Campi: []domain.Campus{}}, nil
		}
		return nil, err
	}

	cfg := &domain.AppConfig{ICTs: []string(icts), Campi: []domain.Campus{}}
	if cfg.ICTs == nil {
		cfg.ICTs = []string{}
	}
	if len(campi) > 0 {
		if err := json.Unmarshal(campi, &cfg.Campi); err != nil {
			return nil, fmt.Errorf("decode app_config campi: %w", err)
		}
	}
	if updatedAt.Valid {
		cfg.UpdatedAt = &updatedAt.Time
	}
	return cfg, nil
}

// Save upserts the singleton row and stamps cfg.UpdatedAt.
func (r *appConfigRepository) Save(ctx context.Context, cfg *domain.AppConfig) error {
	campi, err := json.Marshal(cfg.Campi)
	if err != nil {
		return fmt.Errorf("encode app_config campi: %w", err)
	}
	now := r.now().UTC()
	query := `
		INSERT INTO app_config (id, icts, campi, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET icts = EXCLUDED.icts, campi = EXCLUDED.campi, updated_at = EXCLUDED.updated_at
	`
	if _, err := r.DB.ExecContext(ctx, query, appConfigID, pq.Array(cfg.ICTs), campi, now); err != nil {
		return err
	}
	cfg.UpdatedAt = &now
	return nil
}
