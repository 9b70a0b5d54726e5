package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"campuscalendar/internal/domain"
)

type submissionRepository struct {
	DB *sql.DB
}

// NewSubmissionRepository returns a domain.SubmissionRepository backed by the responses table.
func NewSubmissionRepository(db *sql.DB) domain.SubmissionRepository {
	return &submissionRepository{DB: db}
}

func (r *submissionRepository) Create(ctx context.Context, s *domain.Submission) error {
	campi, err := json.Marshal(s.Campi)
	if err != nil {
		return fmt.Errorf("encode campi: %w", err)
	}
	var phone sql.NullString
	if s.Phone != "" {
		phone = sql.NullString{String: s.Phone, Valid: true}
	}
	query := `
		INSERT INTO responses (name, email, phone, ict, campi, form_config_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	return r.DB.QueryRowContext(ctx, query, s.Name, s.Email, phone, s.ICT, campi, s.FormConfigID).
		Scan(&s.ID, &s.CreatedAt)
}

func (r *submissionRepository) List(ctx context.Context, formConfigID *string) ([]*domain.Submission, error) {
	query := `
		SELECT id, created_at, name, email, COALESCE(phone, ''), ict, campi, form_config_id
		FROM responses
	`
	var args []any
	if formConfigID != nil {
		query += ` WHERE form_config_id = $1`
		args = append(args, *formConfigID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*domain.Submission
	for rows.Next() {
		var (
			s      domain.Submission
			campi  []byte
			formID sql.NullString
		)
		if err := rows.Scan(&s.ID, &s.CreatedAt, &s.Name, &s.Email, &s.Phone, &s.ICT, &campi, &formID); err != nil {
			return nil, err
		}
		if len(campi) > 0 {
			if err := json.Unmarshal(campi, &s.Campi); err != nil {
				return nil, fmt.Errorf("decode campi of response %d: %w", s.ID, err)
			}
		}
		if formID.Valid {
			id := formID.String
			s.FormConfigID = &id
		}
		subs = append(subs, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return subs, nil
}
