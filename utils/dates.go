// utils/dates.go
package utils

import (
	"fmt"
	"time"
)

// FormatDate renders a calendar day as YYYY-MM-DD.
func FormatDate(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// MonthRange returns the first and last day of the given month, both in
// YYYY-MM-DD format.
func MonthRange(year int, month time.Month) (string, string) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return FormatDate(first.Year(), first.Month(), first.Day()),
		FormatDate(last.Year(), last.Month(), last.Day())
}
