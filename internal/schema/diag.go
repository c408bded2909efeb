package schema

import (
	"errors"
	"strings"
)

// Diagnostic is one validation finding, tied to the field it concerns.
type Diagnostic struct {
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Key identifies which field this relates to (if any).
	Key string
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	msg := "[" + d.Code + "] " + d.Message
	if d.Key != "" {
		msg = d.Key + ": " + msg
	}

	return msg
}

// Diagnostics collects validation findings.
type Diagnostics struct {
	Errors []Diagnostic
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, key string) {
	d.Errors = append(d.Errors, Diagnostic{Code: code, Message: message, Key: key})
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}
