package calendar

import (
	"time"

	"campuscalendar/internal/domain"
)

// DayStats counts, for every campus of the catalogue, whether it has an
// active event on date and buckets the active campi by category.
//
// Buckets are ordered by first encounter while walking the catalogue. The
// dominant category is the bucket with the highest count; ties go to the
// bucket encountered first. Ratio is active/total and 0 for an empty
// catalogue.
func DayStats(cal domain.Calendar, catalogue domain.Catalogue, date string) domain.DayStats {
	return newCategoryIndex(cal).dayStats(cal, catalogue, date)
}

func (idx categoryIndex) dayStats(cal domain.Calendar, catalogue domain.Catalogue, date string) domain.DayStats {
	stats := domain.DayStats{
		Date:        date,
		Total:       len(catalogue),
		PerCategory: []domain.CategoryCount{},
	}
	bucket := make(map[string]int)
	for _, campus := range catalogue {
		ev, ok := idx.activeEvent(cal.Events[campus.ID], date)
		if !ok {
			continue
		}
		i, seen := bucket[ev.CategoryID]
		if !seen {
			i = len(stats.PerCategory)
			bucket[ev.CategoryID] = i
			stats.PerCategory = append(stats.PerCategory, domain.CategoryCount{Category: idx[ev.CategoryID]})
		}
		stats.PerCategory[i].Count++
		stats.PerCategory[i].Campuses = append(stats.PerCategory[i].Campuses, campus.Label())
		stats.Active++
	}
	if stats.Total > 0 {
		stats.Ratio = float64(stats.Active) / float64(stats.Total)
	}

	best := -1
	for i, cc := range stats.PerCategory {
		if best < 0 || cc.Count > stats.PerCategory[best].Count {
			best = i
		}
	}
	if best >= 0 {
		dominant := stats.PerCategory[best].Category
		stats.Dominant = &dominant
	}
	return stats
}

// MonthGrid lays out the month in Sunday-first weeks: one empty cell per
// weekday before the 1st, then one cell per day with its DayStats.
func MonthGrid(cal domain.Calendar, catalogue domain.Catalogue, year int, month time.Month) domain.MonthGrid {
	return newCategoryIndex(cal).monthGrid(cal, catalogue, year, month)
}

func (idx categoryIndex) monthGrid(cal domain.Calendar, catalogue domain.Catalogue, year int, month time.Month) domain.MonthGrid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := int(first.Weekday())
	days := first.AddDate(0, 1, -1).Day()

	grid := domain.MonthGrid{
		Year:  year,
		Month: month,
		Cells: make([]domain.DayCell, 0, offset+days),
	}
	for range offset {
		grid.Cells = append(grid.Cells, domain.DayCell{Empty: true, Stats: domain.DayStats{PerCategory: []domain.CategoryCount{}}})
	}
	for d := 1; d <= days; d++ {
		date := FormatDate(year, month, d)
		grid.Cells = append(grid.Cells, domain.DayCell{
			Day:   d,
			Date:  date,
			Stats: idx.dayStats(cal, catalogue, date),
		})
	}
	return grid
}

// YearGrid returns the twelve month grids of year, January first.
func YearGrid(cal domain.Calendar, catalogue domain.Catalogue, year int) []domain.MonthGrid {
	idx := newCategoryIndex(cal)
	months := make([]domain.MonthGrid, 0, 12)
	for m := time.January; m <= time.December; m++ {
		months = append(months, idx.monthGrid(cal, catalogue, year, m))
	}
	return months
}
