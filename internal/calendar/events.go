package calendar

import (
	"slices"

	"campuscalendar/internal/domain"
)

// AddEvents appends one new event with the given category and inclusive
// date range to every campus resolved from scope. It returns the updated
// calendar and the number of events added, which equals the number of
// resolved campi (zero for a scope with no matching campi).
//
// A malformed or inverted date range, an invalid scope or an unknown
// category is rejected with a *domain.ValidationError and cal is returned
// unchanged.
func (e *Engine) AddEvents(cal domain.Calendar, catalogue domain.Catalogue, scope domain.Scope, categoryID, start, end string) (domain.Calendar, int, error) {
	if err := ValidateRange(start, end); err != nil {
		return cal, 0, err
	}
	if _, ok := cal.Category(categoryID); !ok {
		return cal, 0, domain.NewValidationError("category_id", "unknown category")
	}
	targets, err := ResolveScope(scope, catalogue)
	if err != nil {
		return cal, 0, err
	}
	if len(targets) == 0 {
		return cal, 0, nil
	}

	out := cal.Clone()
	for _, id := range targets {
		out.Events[id] = append(out.Events[id], domain.Event{
			ID:         e.newID(),
			CategoryID: categoryID,
			StartDate:  start,
			EndDate:    end,
		})
	}
	return out, len(targets), nil
}

// RemoveEvent removes the event eventID from one campus. Removing an
// unknown event is a no-op.
func RemoveEvent(cal domain.Calendar, campusID domain.CampusID, eventID string) domain.Calendar {
	evs, ok := cal.Events[campusID]
	if !ok {
		return cal
	}
	i := slices.IndexFunc(evs, func(ev domain.Event) bool { return ev.ID == eventID })
	if i < 0 {
		return cal
	}
	out := cal.Clone()
	out.Events[campusID] = slices.Delete(out.Events[campusID], i, i+1)
	return out
}

// ActiveEventOn returns the first event of the campus, in insertion order,
// whose range contains date. Events whose category no longer resolves are
// ignored. Overlapping events of different categories have no precedence
// beyond insertion order.
func ActiveEventOn(cal domain.Calendar, campusID domain.CampusID, date string) (domain.Event, bool) {
	return newCategoryIndex(cal).activeEvent(cal.Events[campusID], date)
}

// EventsForCampus lists the campus events with their categories resolved,
// in insertion order. Unresolvable events are skipped.
func EventsForCampus(cal domain.Calendar, campusID domain.CampusID) []domain.CampusEvent {
	idx := newCategoryIndex(cal)
	out := []domain.CampusEvent{}
	for _, ev := range cal.Events[campusID] {
		cat, ok := idx[ev.CategoryID]
		if !ok {
			continue
		}
		out = append(out, domain.CampusEvent{Event: ev, Category: cat})
	}
	return out
}

// categoryIndex resolves category ids for a single read pass.
type categoryIndex map[string]domain.Category

func newCategoryIndex(cal domain.Calendar) categoryIndex {
	idx := make(categoryIndex, len(cal.Categories))
	for _, cat := range cal.Categories {
		if _, dup := idx[cat.ID]; !dup {
			idx[cat.ID] = cat
		}
	}
	return idx
}

func (idx categoryIndex) activeEvent(evs []domain.Event, date string) (domain.Event, bool) {
	for _, ev := range evs {
		if _, ok := idx[ev.CategoryID]; !ok {
			continue
		}
		if ev.Contains(date) {
			return ev, true
		}
	}
	return domain.Event{}, false
}
