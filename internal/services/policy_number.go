package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/insurewise/policy-portal/internal/constants"
	"github.com/insurewise/policy-portal/internal/models"
)

// NextID returns one past the highest id in records, or 1 for an empty slice.
func NextID(records []models.PolicyRecord) int {
	maxID := 0
	for _, r := range records {
		if r.ID > maxID {
			maxID = r.ID
		}
	}
	return maxID + 1
}

// BirthYearSuffix returns the last two digits of the year in date.
// ok is false when date is empty or not a recognised date.
func BirthYearSuffix(date string) (suffix string, ok bool) {
	t, ok := parseDate(date)
	if !ok || t.Year() < 0 {
		return "", false
	}
	return fmt.Sprintf("%02d", t.Year()%100), true
}

// CountBirthYearSuffix counts records whose holder was born in a year ending
// in suffix. Records with a missing or unreadable date of birth never match.
func CountBirthYearSuffix(records []models.PolicyRecord, suffix string) int {
	n := 0
	for _, r := range records {
		if s, ok := BirthYearSuffix(r.DateOfBirth); ok && s == suffix {
			n++
		}
	}
	return n
}

// FormatPolicyNumber renders HF<suffix><seq>, seq zero-padded to three digits.
func FormatPolicyNumber(suffix string, seq int) string {
	return fmt.Sprintf("%s%s%0*d", constants.PolicyNumberPrefix, suffix, constants.PolicySeqWidth, seq)
}

// parseDate accepts the form layout first, then full RFC 3339 timestamps as
// written by other clients of the collection.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(constants.DateLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
