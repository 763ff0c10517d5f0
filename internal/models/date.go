// ABOUTME: Date key normalization for fitness records.
// ABOUTME: Resolves "today", "yesterday" and validates YYYY-MM-DD calendar dates.
package models

import (
	"strings"
	"time"

	"github.com/harperreed/dolphin/internal/apperr"
)

// DateLayout is the canonical date key format.
const DateLayout = "2006-01-02"

// NormalizeDate turns user input into a canonical date key relative to now.
// Keywords are case-insensitive; explicit dates must be valid calendar days.
func NormalizeDate(input string, now time.Time) (string, error) {
	switch strings.ToLower(input) {
	case "today":
		return now.Format(DateLayout), nil
	case "yesterday":
		return now.AddDate(0, 0, -1).Format(DateLayout), nil
	}

	t, err := time.Parse(DateLayout, input)
	if err != nil {
		return "", apperr.InvalidDate(input)
	}
	return t.Format(DateLayout), nil
}

// IsDateKey reports whether s is already a canonical date key.
func IsDateKey(s string) bool {
	t, err := time.Parse(DateLayout, s)
	return err == nil && t.Format(DateLayout) == s
}
