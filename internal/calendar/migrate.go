package calendar

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"campuscalendar/internal/domain"
)

// Field names of the legacy per-campus record.
const (
	legacyRecessStart = "recessStart"
	legacyRecessEnd   = "recessEnd"
	legacyVacStart    = "vacStart"
	legacyVacEnd      = "vacEnd"
)

// Migrate normalizes a stored calendar document into the current schema.
//
// A document with "version": 2 is passed through, defaulting categories to
// the built-ins and events to an empty map when either field is absent.
// Any other object is read as the legacy schema: a map from campus id to a
// record with a recess pair and a vacation pair of dates. Each complete pair
// becomes one event of the matching built-in category; records that are not
// objects are skipped and campi without a complete pair are omitted.
//
// migrated reports whether the legacy conversion ran. Empty or null input
// yields an empty calendar. Only input that is not a JSON object is an error.
func (e *Engine) Migrate(raw []byte) (cal domain.Calendar, migrated bool, err error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return domain.NewCalendar(), false, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return domain.Calendar{}, false, fmt.Errorf("decode calendar document: %w", err)
	}

	if isCurrentVersion(fields["version"]) {
		cal, err := decodeCurrent(fields)
		if err != nil {
			return domain.Calendar{}, false, err
		}
		return cal, false, nil
	}
	return e.migrateLegacy(fields), true, nil
}

func isCurrentVersion(v json.RawMessage) bool {
	var n float64
	if err := json.Unmarshal(v, &n); err != nil {
		return false
	}
	return n == domain.CalendarVersion
}

func decodeCurrent(fields map[string]json.RawMessage) (domain.Calendar, error) {
	cal := domain.Calendar{Version: domain.CalendarVersion}

	if present(fields["categories"]) {
		if err := json.Unmarshal(fields["categories"], &cal.Categories); err != nil {
			return domain.Calendar{}, fmt.Errorf("decode categories: %w", err)
		}
	} else {
		cal.Categories = domain.DefaultCategories()
	}
	if cal.Categories == nil {
		cal.Categories = []domain.Category{}
	}

	if present(fields["events"]) {
		if err := json.Unmarshal(fields["events"], &cal.Events); err != nil {
			return domain.Calendar{}, fmt.Errorf("decode events: %w", err)
		}
	}
	if cal.Events == nil {
		cal.Events = make(map[domain.CampusID][]domain.Event)
	}
	return cal, nil
}

func present(v json.RawMessage) bool {
	v = bytes.TrimSpace(v)
	return len(v) > 0 && !bytes.Equal(v, []byte("null"))
}

func (e *Engine) migrateLegacy(fields map[string]json.RawMessage) domain.Calendar {
	cal := domain.NewCalendar()

	// Sorted so generated ids follow a stable order for a given input.
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, campusID := range keys {
		var record map[string]any
		if err := json.Unmarshal(fields[campusID], &record); err != nil || record == nil {
			continue
		}
		var evs []domain.Event
		if start, end, ok := legacyPair(record, legacyRecessStart, legacyRecessEnd); ok {
			evs = append(evs, domain.Event{ID: e.newID(), CategoryID: domain.RecessCategoryID, StartDate: start, EndDate: end})
		}
		if start, end, ok := legacyPair(record, legacyVacStart, legacyVacEnd); ok {
			evs = append(evs, domain.Event{ID: e.newID(), CategoryID: domain.VacationCategoryID, StartDate: start, EndDate: end})
		}
		if len(evs) > 0 {
			cal.Events[domain.CampusID(campusID)] = evs
		}
	}
	return cal
}

// legacyPair returns the two dates when both are non-empty strings.
func legacyPair(record map[string]any, startKey, endKey string) (string, string, bool) {
	start, _ := record[startKey].(string)
	end, _ := record[endKey].(string)
	if start == "" || end == "" {
		return "", "", false
	}
	return start, end, true
}
