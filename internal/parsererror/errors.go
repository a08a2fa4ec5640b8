// Package parsererror defines the typed errors raised by the normalizers
// and parsers. Line parsers catch the normalizer errors and drop the
// offending line; only structural failures propagate to the caller.
package parsererror

import "fmt"

// MalformedAmountError is returned when a monetary substring cannot be
// parsed as a decimal after normalization.
type MalformedAmountError struct {
	Value string
	Err   error
}

func (e *MalformedAmountError) Error() string {
	return fmt.Sprintf("malformed amount %q: %v", e.Value, e.Err)
}

func (e *MalformedAmountError) Unwrap() error {
	return e.Err
}

// UnparseableDateError is returned when a date literal matches none of the
// known statement date shapes.
type UnparseableDateError struct {
	Value string
}

func (e *UnparseableDateError) Error() string {
	return fmt.Sprintf("unparseable date %q", e.Value)
}

// AIParseError is returned when the AI-assisted parser fails: the backend
// call errored, the reply was not valid JSON, or nothing survived
// validation. The orchestrator treats any AIParseError as a signal to fall
// back to the deterministic parser.
type AIParseError struct {
	Bank   string
	Reason string
	Err    error
}

func (e *AIParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ai parse failed for %s: %s: %v", e.Bank, e.Reason, e.Err)
	}
	return fmt.Sprintf("ai parse failed for %s: %s", e.Bank, e.Reason)
}

func (e *AIParseError) Unwrap() error {
	return e.Err
}
