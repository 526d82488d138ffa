// Package input normalizes raw user-supplied entry fields.
//
// Each normalizer is total: it either returns a well-formed value or a
// sentinel error from core, and the interactive loop re-prompts on error.
// Nothing here touches storage.
package input

import (
	"strconv"
	"strings"
	"time"

	"expenselog/internal/core"
)

const dateLayout = "2006-01-02"

// Date normalizes a date string. Empty input resolves to now's calendar
// date. Non-empty input must be strict YYYY-MM-DD; anything else yields
// core.ErrInvalidDate.
func Date(raw string, now time.Time) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return now.Format(dateLayout), nil
	}
	d, err := time.Parse(dateLayout, raw)
	if err != nil {
		return "", core.ErrInvalidDate
	}
	// time.Parse tolerates unpadded month/day; require the exact form.
	if d.Format(dateLayout) != raw {
		return "", core.ErrInvalidDate
	}
	return raw, nil
}

// Amount normalizes an amount string into Money.
// Returns core.ErrInvalidAmount for text that is not a number and
// core.ErrNonPositiveAmount for numbers <= 0.
func Amount(raw string) (core.Money, error) {
	cents, err := core.ParseDecimalToCents(raw)
	if err != nil {
		return core.Money{}, err
	}
	return core.Money{Cents: cents}, nil
}

// Category resolves a category selection against the suggested list.
// Numeric input 1..N picks the Nth suggestion. "0" is the custom sentinel:
// the caller should collect free text and pass it through CustomCategory,
// signalled by wantCustom. Any other input is used verbatim, with empty
// input falling back to core.FallbackCategory. It never rejects.
func Category(raw string, suggested []string) (category string, wantCustom bool) {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
		if n == 0 {
			return "", true
		}
		if n <= len(suggested) {
			return suggested[n-1], false
		}
	}
	if raw == "" {
		return core.FallbackCategory, false
	}
	return raw, false
}

// CustomCategory normalizes free-text category input collected after the
// custom sentinel, defaulting empty text to core.FallbackCategory.
func CustomCategory(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return core.FallbackCategory
	}
	return raw
}
