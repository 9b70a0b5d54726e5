package calendar

import (
	"strings"

	"campuscalendar/internal/domain"
)

// ResolveOrCreate returns the id of the category named name, matching
// existing names case-insensitively. When none matches, a category with the
// given name and color is appended and its new id returned. Categories are
// never removed.
func (e *Engine) ResolveOrCreate(cal domain.Calendar, name, color string) (domain.Calendar, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return cal, "", domain.NewValidationError("category_name", "category is required")
	}
	if cat, ok := cal.CategoryByName(name); ok {
		return cal, cat.ID, nil
	}
	out := cal.Clone()
	cat := domain.Category{ID: e.newID(), Name: name, Color: color}
	out.Categories = append(out.Categories, cat)
	return out, cat.ID, nil
}

// SearchCategories returns categories whose name contains term,
// case-insensitively, in registry order. An empty term matches everything.
func SearchCategories(cal domain.Calendar, term string) []domain.Category {
	term = strings.ToLower(strings.TrimSpace(term))
	out := []domain.Category{}
	for _, cat := range cal.Categories {
		if strings.Contains(strings.ToLower(cat.Name), term) {
			out = append(out, cat)
		}
	}
	return out
}

// CanCreateCategory reports whether term would create a new category,
// i.e. it is non-empty and matches no existing name exactly.
func CanCreateCategory(cal domain.Calendar, term string) bool {
	if strings.TrimSpace(term) == "" {
		return false
	}
	_, ok := cal.CategoryByName(term)
	return !ok
}
