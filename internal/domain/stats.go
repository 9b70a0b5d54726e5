package domain

import "time"

// CategoryCount is the number of campi with an active event of one category
// on a given day.
// swagger:model CategoryCount
type CategoryCount struct {
	Category Category `json:"category"`
	Count    int      `json:"count"`
	Campuses []string `json:"campuses"`
}

// DayStats aggregates active events across the catalogue for one date.
// swagger:model DayStats
type DayStats struct {
	Date        string          `json:"date"`
	Ratio       float64         `json:"ratio"`
	Active      int             `json:"active"`
	Total       int             `json:"total"`
	PerCategory []CategoryCount `json:"per_category"`
	// Dominant is the category used for heat-map color; nil when nothing is active.
	Dominant *Category `json:"dominant"`
}

// DayCell is one cell of a month grid. Empty cells pad the first week.
// swagger:model DayCell
type DayCell struct {
	Day   int      `json:"day"`
	Date  string   `json:"date"`
	Empty bool     `json:"empty"`
	Stats DayStats `json:"stats"`
}

// MonthGrid lays a month out in Sunday-first weeks.
// swagger:model MonthGrid
type MonthGrid struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Cells []DayCell  `json:"cells"`
}

// Weeks splits the cells into rows of seven, padding the last row.
func (g MonthGrid) Weeks() [][]DayCell {
	var weeks [][]DayCell
	for i := 0; i < len(g.Cells); i += 7 {
		end := min(i+7, len(g.Cells))
		row := make([]DayCell, 7)
		copy(row, g.Cells[i:end])
		for j := end - i; j < 7; j++ {
			row[j] = DayCell{Empty: true}
		}
		weeks = append(weeks, row)
	}
	return weeks
}
