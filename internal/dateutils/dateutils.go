// Package dateutils normalizes the date and time literals that occur in
// statement text. Only the three shapes seen in real statements are
// accepted; anything else is an error the line parsers turn into a
// dropped line.
package dateutils

import (
	"fmt"
	"regexp"

	"alebedev/statement-parser/internal/parsererror"
)

// DateLayoutISO is the canonical output layout, YYYY-MM-DD.
const DateLayoutISO = "2006-01-02"

var (
	dottedDate = regexp.MustCompile(`(\d{2})\.(\d{2})\.(\d{4})`)
	slashDate  = regexp.MustCompile(`(\d{2})/(\d{2})/(\d{4})`)
	isoDate    = regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})`)
	clockTime  = regexp.MustCompile(`(\d{2}):(\d{2})`)
)

// NormalizeDate converts a date literal into canonical YYYY-MM-DD form.
// Accepted shapes: DD.MM.YYYY, DD/MM/YYYY and YYYY-MM-DD. The function is
// idempotent on already-canonical input.
func NormalizeDate(s string) (string, error) {
	if m := isoDate.FindStringSubmatch(s); m != nil {
		return fmt.Sprintf("%s-%s-%s", m[1], m[2], m[3]), nil
	}
	if m := dottedDate.FindStringSubmatch(s); m != nil {
		return fmt.Sprintf("%s-%s-%s", m[3], m[2], m[1]), nil
	}
	if m := slashDate.FindStringSubmatch(s); m != nil {
		return fmt.Sprintf("%s-%s-%s", m[3], m[2], m[1]), nil
	}
	return "", &parsererror.UnparseableDateError{Value: s}
}

// NormalizeTime extracts HH:MM from a time literal, discarding seconds.
// Time is optional in every grammar, so no match returns the empty string
// rather than an error.
func NormalizeTime(s string) string {
	if m := clockTime.FindStringSubmatch(s); m != nil {
		return fmt.Sprintf("%s:%s", m[1], m[2])
	}
	return ""
}
