package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"campuscalendar/internal/domain"
)

// calendarConfigID is the primary key of the singleton calendar document.
const calendarConfigID = 1

type calendarConfigRepository struct {
	DB  *sql.DB
	now func() time.Time
}

// NewCalendarConfigRepository returns a domain.CalendarRepository backed by
// the calendar_config table.
func NewCalendarConfigRepository(db *sql.DB) domain.CalendarRepository {
	return &calendarConfigRepository{DB: db, now: time.Now}
}

func (r *calendarConfigRepository) Load(ctx context.Context) (json.RawMessage, error) {
	var data []byte
	err := r.DB.QueryRowContext(ctx, `SELECT data FROM calendar_config WHERE id = $1`, calendarConfigID).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return json.RawMessage(data), nil
}

func (r *calendarConfigRepository) Save(ctx context.Context, doc json.RawMessage) error {
	query := `
		INSERT INTO calendar_config (id, data, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at
	`
	_, err := r.DB.ExecContext(ctx, query, calendarConfigID, []byte(doc), r.now())
	return err
}
