package validation

import (
	"sort"
	"strings"
)

// Errors maps a field name to its validation message. It is returned as the
// data payload of a 400 response so clients can attach messages to form
// fields.
type Errors map[string]string

// Error implements the error interface.
func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e[field])
	}
	return strings.Join(parts, "; ")
}

// Add records a message for a field, keeping the first message when the
// field already has one.
func (e Errors) Add(field, message string) {
	if _, exists := e[field]; !exists {
		e[field] = message
	}
}

// HasErrors reports whether any field failed validation.
func (e Errors) HasErrors() bool {
	return len(e) > 0
}

// AsErrors extracts an Errors map from err, if it is one.
func AsErrors(err error) (Errors, bool) {
	verrs, ok := err.(Errors)
	return verrs, ok
}
