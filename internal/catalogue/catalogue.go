// Package catalogue derives the campus catalogue and the participation
// overview from registration submissions.
package catalogue

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"campuscalendar/internal/domain"
)

// Builder builds catalogues and overviews ordered for one locale.
type Builder struct {
	tag language.Tag
}

// NewBuilder returns a Builder for a BCP 47 locale such as "pt-BR".
// An unparseable locale falls back to the root collation order.
func NewBuilder(locale string) *Builder {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}
	return &Builder{tag: tag}
}

// Build flattens the campi referenced by submissions into a catalogue.
//
// Campus names are grouped per institution in first-seen order and
// deduplicated by (institution, campus name). An entry takes the canonical
// id of the matching known campus, otherwise the synthesized id
// "<institution>-<campus>". The result is stable-sorted by institution.
// Submissions without an institution are ignored.
func (b *Builder) Build(submissions []*domain.Submission, known []domain.Campus) domain.Catalogue {
	canonical := make(map[string]domain.CampusID, len(known))
	for _, c := range known {
		canonical[key(c.ICTName, c.Name)] = c.ID
	}

	var institutions []string
	names := make(map[string][]string)
	seen := make(map[string]struct{})
	for _, sub := range submissions {
		if sub == nil || sub.ICT == "" || sub.Campi == nil {
			continue
		}
		if _, ok := names[sub.ICT]; !ok {
			institutions = append(institutions, sub.ICT)
			names[sub.ICT] = []string{}
		}
		for _, c := range sub.Campi {
			k := key(sub.ICT, c.Name)
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			names[sub.ICT] = append(names[sub.ICT], c.Name)
		}
	}

	out := domain.Catalogue{}
	for _, ict := range institutions {
		for _, name := range names[ict] {
			id, ok := canonical[key(ict, name)]
			if !ok || id == "" {
				id = domain.CampusID(ict + "-" + name)
			}
			out = append(out, domain.CatalogueEntry{ID: id, Institution: ict, Name: name})
		}
	}

	col := collate.New(b.tag)
	slices.SortStableFunc(out, func(x, y domain.CatalogueEntry) int {
		return col.CompareString(x.Institution, y.Institution)
	})
	return out
}

func key(institution, campus string) string {
	return institution + "::" + campus
}
