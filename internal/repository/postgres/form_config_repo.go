package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"campuscalendar/internal/domain"
)

type formConfigRepository struct {
	DB *sql.DB
}

// NewFormConfigRepository returns a domain.FormConfigRepository backed by the form_configs table.
func NewFormConfigRepository(db *sql.DB) domain.FormConfigRepository {
	return &formConfigRepository{DB: db}
}

const formConfigColumns = `id, created_at, title, edict_name, is_active`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFormConfig(row rowScanner) (*domain.FormConfig, error) {
	f := &domain.FormConfig{}
	if err := row.Scan(&f.ID, &f.CreatedAt, &f.Title, &f.EdictName, &f.IsActive); err != nil {
		return nil, err
	}
	return f, nil
}

func (r *formConfigRepository) List(ctx context.Context) ([]*domain.FormConfig, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+formConfigColumns+` FROM form_configs ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	forms := make([]*domain.FormConfig, 0)
	for rows.Next() {
		f, err := scanFormConfig(rows)
		if err != nil {
			return nil, err
		}
		forms = append(forms, f)
	}
	return forms, rows.Err()
}

func (r *formConfigRepository) GetByID(ctx context.Context, id string) (*domain.FormConfig, error) {
	f, err := scanFormConfig(r.DB.QueryRowContext(ctx,
		`SELECT `+formConfigColumns+` FROM form_configs WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

func (r *formConfigRepository) GetLatestActive(ctx context.Context) (*domain.FormConfig, error) {
	f, err := scanFormConfig(r.DB.QueryRowContext(ctx,
		`SELECT `+formConfigColumns+` FROM form_configs WHERE is_active = true ORDER BY created_at DESC LIMIT 1`))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

func (r *formConfigRepository) Create(ctx context.Context, f *domain.FormConfig) error {
	query := `
		INSERT INTO form_configs (title, edict_name, is_active)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	return r.DB.QueryRowContext(ctx, query, f.Title, f.EdictName, f.IsActive).Scan(&f.ID, &f.CreatedAt)
}

func (r *formConfigRepository) SetActive(ctx context.Context, id string, active bool) error {
	result, err := r.DB.ExecContext(ctx, `UPDATE form_configs SET is_active = $1 WHERE id = $2`, active, id)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *formConfigRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM responses WHERE form_config_id = $1`, id); err != nil {
		return fmt.Errorf("delete responses: %w", err)
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM form_configs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return domain.ErrNotFound
	}
	return tx.Commit()
}

func (r *formConfigRepository) CreateAndAdoptOrphans(ctx context.Context, f *domain.FormConfig) (int64, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx,
		`INSERT INTO form_configs (title, edict_name, is_active) VALUES ($1, $2, $3) RETURNING id, created_at`,
		f.Title, f.EdictName, f.IsActive,
	).Scan(&f.ID, &f.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("insert form: %w", err)
	}
	result, err := tx.ExecContext(ctx, `UPDATE responses SET form_config_id = $1 WHERE form_config_id IS NULL`, f.ID)
	if err != nil {
		return 0, fmt.Errorf("adopt responses: %w", err)
	}
	n, _ := result.RowsAffected()
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return n, nil
}
