package services

import (
	"fmt"
	"time"
)

// ParseDate parses a date string in typical formats (YYYY-MM-DD)
// It enforces strict checks but centralizes the logic for future format additions
func ParseDate(dateStr string) (time.Time, error) {
	// Primary format: ISO 8601 (standard for HTML5 date inputs)
	layout := "2006-01-02"

	parsedTime, err := time.Parse(layout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: expected YYYY-MM-DD")
	}

	return parsedTime, nil
}

// AgeAt returns full years between birthdate and ref, decremented by one when
// the birthday has not yet occurred in ref's year.
func AgeAt(birthdate, ref time.Time) int {
	years := ref.Year() - birthdate.Year()
	if ref.Month() < birthdate.Month() ||
		(ref.Month() == birthdate.Month() && ref.Day() < birthdate.Day()) {
		years--
	}
	return years
}

// Age returns the person's age in full years as of today
func Age(birthdate time.Time) int {
	return AgeAt(birthdate, time.Now())
}
