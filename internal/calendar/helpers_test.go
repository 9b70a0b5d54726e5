package calendar

import (
	"fmt"

	"campuscalendar/internal/domain"
)

// seqIDs returns a deterministic generator producing prefix-1, prefix-2, ...
func seqIDs(prefix string) IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

// testCatalogue is CampusA and CampusB of InstX plus CampusC of InstY.
func testCatalogue() domain.Catalogue {
	return domain.Catalogue{
		{ID: "a", Institution: "InstX", Name: "CampusA"},
		{ID: "b", Institution: "InstX", Name: "CampusB"},
		{ID: "c", Institution: "InstY", Name: "CampusC"},
	}
}
