package models

import (
	"sort"
	"strings"
)

// FieldErrors is a validation failure scoped to named payload fields.
// It serializes directly as the API's 400 response body:
//
//	{"end_date": ["End date must be after or equal to start date."]}
//
// It implements error so it can travel through service and handler layers
// like any other failure and be recognized with errors.As at the boundary.
type FieldErrors map[string][]string

// NewFieldError builds a FieldErrors carrying a single message for a single
// field.
func NewFieldError(field, message string) FieldErrors {
	return FieldErrors{field: {message}}
}

// Add appends a message to the named field.
func (e FieldErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Empty reports whether no field has any message.
func (e FieldErrors) Empty() bool {
	return len(e) == 0
}

// Error renders a deterministic single-line summary, primarily for logs.
func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+strings.Join(e[field], "; "))
	}
	return "validation failed: " + strings.Join(parts, " | ")
}
