// Package institutions builds the application configuration (known
// institutions and their campi) from spreadsheet rows.
//
// Each row carries three columns: the institution acronym, the institution
// name and the campus name. The institution is stored as "ACRONYM - Name"
// and every campus gets a sequential numeric id in row order.
package institutions

import (
	"errors"
	"slices"
	"strconv"
	"strings"

	"campuscalendar/internal/domain"
)

// ErrNoRows is returned when no row carries the three required columns.
var ErrNoRows = errors.New("no institution rows found")

// Build turns rows of (acronym, institution name, campus name) into an
// AppConfig. Rows with fewer than three non-blank columns are skipped, as is
// a leading header row whose first cell reads "sigla" or "acronym". A campus
// repeated for the same institution is kept once.
func Build(rows [][]string) (*domain.AppConfig, error) {
	cfg := &domain.AppConfig{ICTs: []string{}, Campi: []domain.Campus{}}
	icts := make(map[string]struct{})
	seen := make(map[string]struct{})
	next := 1

	for i, row := range rows {
		if len(row) < 3 {
			continue
		}
		acronym := strings.TrimSpace(row[0])
		name := strings.TrimSpace(row[1])
		campus := strings.TrimSpace(row[2])
		if acronym == "" || name == "" || campus == "" {
			continue
		}
		if i == 0 && isHeader(acronym) {
			continue
		}

		ict := acronym + " - " + name
		icts[ict] = struct{}{}
		key := ict + "\x00" + campus
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		cfg.Campi = append(cfg.Campi, domain.Campus{
			ID:      domain.CampusID(strconv.Itoa(next)),
			Name:    campus,
			ICTName: ict,
		})
		next++
	}

	if len(icts) == 0 {
		return nil, ErrNoRows
	}
	for ict := range icts {
		cfg.ICTs = append(cfg.ICTs, ict)
	}
	slices.Sort(cfg.ICTs)
	return cfg, nil
}

func isHeader(cell string) bool {
	switch strings.ToLower(cell) {
	case "sigla", "acronym":
		return true
	}
	return false
}
