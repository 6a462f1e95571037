package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors
var (
	ErrNotFound       = errors.New("not found")
	ErrEditInProgress = errors.New("an edit is already in progress")
	ErrNotEditing     = errors.New("no edit in progress")
)

// FieldError describes a single missing or invalid input field
type FieldError struct {
	Field  string
	Reason string
}

// ValidationError is returned when a submitted task has missing or invalid fields
type ValidationError struct {
	Fields []FieldError
}

// Add records a problem with one field
func (e *ValidationError) Add(field, reason string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Reason: reason})
}

// HasErrors reports whether any field problem was recorded
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// Has reports whether the named field failed validation
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Reason)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NoSelectionError is returned when a row operation is requested with nothing selected
type NoSelectionError struct {
	Op string // Operation: "delete", "edit"
}

func (e *NoSelectionError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: no task selected", e.Op)
	}
	return "no task selected"
}

// InvalidIndexError is returned when a selection refers to a row that no longer exists
type InvalidIndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *InvalidIndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of range [0,%d)", e.Op, e.Index, e.Len)
}

// UserMessage returns the text shown to the user for a store error
func UserMessage(err error) string {
	var verr *ValidationError
	var nerr *NoSelectionError
	var ierr *InvalidIndexError

	switch {
	case errors.As(err, &verr):
		return "Please enter all the fields."
	case errors.As(err, &nerr):
		if nerr.Op != "" {
			return fmt.Sprintf("Please select a task to %s.", nerr.Op)
		}
		return "Please select a task."
	case errors.As(err, &ierr), errors.Is(err, ErrNotFound):
		return "The selected task no longer exists."
	case errors.Is(err, ErrEditInProgress):
		return "Finish editing the current task first."
	case errors.Is(err, ErrNotEditing):
		return "No task is being edited."
	case err != nil:
		return err.Error()
	default:
		return ""
	}
}
