// utils/validation.go
package utils

import (
	"regexp"
)

var (
	dateRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])-(0[1-9]|[12]\d|3[01])$`)
	timeRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// ValidateDate checks a calendar date in YYYY-MM-DD format
func ValidateDate(date string) bool {
	return dateRegex.MatchString(date)
}

// ValidateTime checks a wall-clock time in HH:MM format
func ValidateTime(t string) bool {
	return timeRegex.MatchString(t)
}
