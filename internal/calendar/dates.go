package calendar

import (
	"fmt"
	"time"

	"campuscalendar/internal/domain"
)

// DateLayout is the ISO calendar date format used for every stored date.
const DateLayout = "2006-01-02"

// ValidateDate checks that s is a real calendar date in YYYY-MM-DD form.
func ValidateDate(field, s string) error {
	if s == "" {
		return domain.NewValidationError(field, "date is required")
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil || t.Format(DateLayout) != s {
		return domain.NewValidationError(field, fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", s))
	}
	return nil
}

// ValidateRange checks both dates and that end is not before start.
func ValidateRange(start, end string) error {
	if err := ValidateDate("start_date", start); err != nil {
		return err
	}
	if err := ValidateDate("end_date", end); err != nil {
		return err
	}
	if end < start {
		return domain.NewValidationError("end_date", "end date must not be before start date")
	}
	return nil
}

// FormatDate formats a year, month and day as an ISO calendar date.
func FormatDate(year int, month time.Month, day int) string {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(DateLayout)
}
