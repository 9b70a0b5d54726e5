package catalogue

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/message"

	"campuscalendar/internal/domain"
)

// Summarize aggregates submissions per institution: distinct campus ids,
// campus names and respondent e-mails. Institutions are ordered by campus
// count, highest first; equal counts keep first-seen order.
func (b *Builder) Summarize(submissions []*domain.Submission) domain.ParticipationOverview {
	type acc struct {
		ids         map[domain.CampusID]struct{}
		names       map[string]struct{}
		respondents []string
		emails      map[string]struct{}
	}
	var order []string
	byICT := make(map[string]*acc)

	for _, sub := range submissions {
		if sub == nil || sub.ICT == "" || sub.Campi == nil {
			continue
		}
		a, ok := byICT[sub.ICT]
		if !ok {
			a = &acc{
				ids:    make(map[domain.CampusID]struct{}),
				names:  make(map[string]struct{}),
				emails: make(map[string]struct{}),
			}
			byICT[sub.ICT] = a
			order = append(order, sub.ICT)
		}
		if sub.Email != "" {
			if _, dup := a.emails[sub.Email]; !dup {
				a.emails[sub.Email] = struct{}{}
				a.respondents = append(a.respondents, sub.Email)
			}
		}
		for _, c := range sub.Campi {
			a.ids[c.ID] = struct{}{}
			a.names[c.Name] = struct{}{}
		}
	}

	col := collate.New(b.tag)
	p := message.NewPrinter(b.tag)
	overview := domain.ParticipationOverview{
		TotalSubmissions: len(submissions),
		Institutions:     make([]domain.InstitutionSummary, 0, len(order)),
	}
	for _, ict := range order {
		a := byICT[ict]
		names := make([]string, 0, len(a.names))
		for n := range a.names {
			names = append(names, n)
		}
		col.SortStrings(names)
		respondents := a.respondents
		if respondents == nil {
			respondents = []string{}
		}
		overview.Institutions = append(overview.Institutions, domain.InstitutionSummary{
			Institution: ict,
			CampusCount: len(a.ids),
			Label:       p.Sprintf("%d campi", len(a.ids)),
			Campuses:    names,
			Respondents: respondents,
		})
		overview.TotalCampuses += len(a.ids)
	}
	overview.TotalInstitutions = len(overview.Institutions)

	slices.SortStableFunc(overview.Institutions, func(x, y domain.InstitutionSummary) int {
		return y.CampusCount - x.CampusCount
	})
	return overview
}
