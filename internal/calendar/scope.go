package calendar

import "campuscalendar/internal/domain"

// ResolveScope expands scope into concrete campus ids against the catalogue,
// in catalogue order and without duplicates. An empty result is valid.
func ResolveScope(scope domain.Scope, catalogue domain.Catalogue) ([]domain.CampusID, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	if scope.Kind == domain.ScopeCampus {
		return []domain.CampusID{scope.CampusID}, nil
	}

	seen := make(map[domain.CampusID]struct{}, len(catalogue))
	ids := []domain.CampusID{}
	for _, entry := range catalogue {
		if scope.Kind == domain.ScopeInstitution && entry.Institution != scope.Institution {
			continue
		}
		if _, ok := seen[entry.ID]; ok {
			continue
		}
		seen[entry.ID] = struct{}{}
		ids = append(ids, entry.ID)
	}
	return ids, nil
}
