package domain

import (
	"context"
	"encoding/json"
	"strings"
)

// CalendarVersion is the current schema version of the stored calendar document.
const CalendarVersion = 2

// Identifiers of the built-in categories produced by legacy migration.
const (
	RecessCategoryID   = "cat_recess"
	VacationCategoryID = "cat_vacation"
)

// Category is a named, colored classification for events.
// Color is an opaque token handed through to the presentation layer.
// swagger:model Category
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// DefaultCategories returns a fresh copy of the built-in categories.
func DefaultCategories() []Category {
	return []Category{
		{ID: RecessCategoryID, Name: "Recess", Color: "bg-orange-100 text-orange-700 border-orange-200"},
		{ID: VacationCategoryID, Name: "Vacation", Color: "bg-blue-100 text-blue-700 border-blue-200"},
	}
}

// Event is a categorized, inclusive date range attached to one campus.
// Dates are ISO calendar dates (YYYY-MM-DD).
// swagger:model CampusEvent
type Event struct {
	ID         string `json:"id"`
	CategoryID string `json:"categoryId"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
}

// Contains reports whether date falls within the event's inclusive range.
// ISO dates sort lexicographically in calendar order.
func (e Event) Contains(date string) bool {
	return date >= e.StartDate && date <= e.EndDate
}

// Calendar is the aggregate root: the categories, the per-campus events and
// the schema version. It is also the exact shape persisted on save.
// swagger:model Calendar
type Calendar struct {
	Version    int                  `json:"version"`
	Categories []Category           `json:"categories"`
	Events     map[CampusID][]Event `json:"events"`
}

// NewCalendar returns an empty current-version calendar with the built-in categories.
func NewCalendar() Calendar {
	return Calendar{
		Version:    CalendarVersion,
		Categories: DefaultCategories(),
		Events:     make(map[CampusID][]Event),
	}
}

// Clone returns a deep copy so callers can mutate the result freely.
func (c Calendar) Clone() Calendar {
	out := Calendar{
		Version:    c.Version,
		Categories: append([]Category(nil), c.Categories...),
		Events:     make(map[CampusID][]Event, len(c.Events)),
	}
	for id, evs := range c.Events {
		out.Events[id] = append([]Event(nil), evs...)
	}
	return out
}

// Category returns the category with the given id.
func (c Calendar) Category(id string) (Category, bool) {
	for _, cat := range c.Categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}

// CategoryByName returns the category whose name matches case-insensitively.
func (c Calendar) CategoryByName(name string) (Category, bool) {
	name = strings.TrimSpace(name)
	for _, cat := range c.Categories {
		if strings.EqualFold(cat.Name, name) {
			return cat, true
		}
	}
	return Category{}, false
}

// EventCount returns the total number of stored events.
func (c Calendar) EventCount() int {
	n := 0
	for _, evs := range c.Events {
		n += len(evs)
	}
	return n
}

// CampusEvent is an event resolved against its category for detail views.
// swagger:model ResolvedEvent
type CampusEvent struct {
	Event
	Category Category `json:"category"`
}

// CalendarRepository stores the calendar as a single document keyed by the
// singleton configuration id.
type CalendarRepository interface {
	// Load returns the raw stored document or ErrNotFound when nothing was saved yet.
	Load(ctx context.Context) (json.RawMessage, error)
	Save(ctx context.Context, doc json.RawMessage) error
}

// AddEventsRequest is a bulk event creation request. Exactly one of
// CategoryID or CategoryName should be set; a name is resolved or created
// in the registry using CategoryColor for new categories.
type AddEventsRequest struct {
	Scope         Scope
	CategoryID    string
	CategoryName  string
	CategoryColor string
	StartDate     string
	EndDate       string
}

// AddEventsResult reports the outcome of a bulk creation.
type AddEventsResult struct {
	Added      int    `json:"added"`
	CategoryID string `json:"category_id"`
}

// CalendarService defines the calendar administration use cases.
type CalendarService interface {
	Get(ctx context.Context) (Calendar, error)
	Save(ctx context.Context, cal Calendar) error
	Categories(ctx context.Context, term string) (matches []Category, canCreate bool, err error)
	AddEvents(ctx context.Context, req AddEventsRequest) (AddEventsResult, error)
	RemoveEvent(ctx context.Context, campusID CampusID, eventID string) error
	CampusEvents(ctx context.Context, campusID CampusID) ([]CampusEvent, error)
	Day(ctx context.Context, date string) (DayStats, error)
	Month(ctx context.Context, year, month int) (MonthGrid, error)
	Year(ctx context.Context, year int) ([]MonthGrid, error)
	Catalogue(ctx context.Context) (Catalogue, error)
}
