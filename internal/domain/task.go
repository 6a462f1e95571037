// Package domain contains core business types for the Taskify application.
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the text form of a due date
const DateLayout = "2006-01-02"

// Task represents a single to-do entry
type Task struct {
	ID       uuid.UUID
	Name     string
	Priority Priority
	Due      time.Time
}

// DueString returns the due date in YYYY-MM-DD form
func (t Task) DueString() string {
	return t.Due.Format(DateLayout)
}

// NewTask parses and validates raw field values and builds a Task with a fresh ID.
// Every field problem is reported in a single *ValidationError.
func NewTask(name, priority, due string) (Task, error) {
	verr := &ValidationError{}

	name = strings.TrimSpace(name)
	if name == "" {
		verr.Add("name", "is required")
	}

	var pri Priority
	if strings.TrimSpace(priority) == "" {
		verr.Add("priority", "is required")
	} else if p, err := ParsePriority(priority); err != nil {
		verr.Add("priority", err.Error())
	} else {
		pri = p
	}

	var date time.Time
	if strings.TrimSpace(due) == "" {
		verr.Add("due", "is required")
	} else if d, err := ParseDate(due); err != nil {
		verr.Add("due", "must be a date in YYYY-MM-DD form")
	} else {
		date = d
	}

	if verr.HasErrors() {
		return Task{}, verr
	}

	return Task{
		ID:       uuid.New(),
		Name:     name,
		Priority: pri,
		Due:      date,
	}, nil
}

// ParseDate parses a YYYY-MM-DD string into a UTC midnight time
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

// Today returns the current local calendar date as UTC midnight
func Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
