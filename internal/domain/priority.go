package domain

import (
	"fmt"
	"strings"
)

// Priority represents task priority. Lower ordinal sorts first.
type Priority int

const (
	PriorityHigh   Priority = iota + 1 // 1
	PriorityMedium                     // 2
	PriorityLow                        // 3
)

// Priorities lists every priority in sort order
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// String returns the display string
func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	case PriorityLow:
		return "Low"
	default:
		return "Unknown"
	}
}

// Short returns single character representation
func (p Priority) Short() string {
	switch p {
	case PriorityHigh:
		return "H"
	case PriorityMedium:
		return "M"
	case PriorityLow:
		return "L"
	default:
		return "?"
	}
}

// Valid reports whether p is one of the known priorities
func (p Priority) Valid() bool {
	return p >= PriorityHigh && p <= PriorityLow
}

// ParsePriority accepts the display name or short form, case-insensitively
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high", "h":
		return PriorityHigh, nil
	case "medium", "m":
		return PriorityMedium, nil
	case "low", "l":
		return PriorityLow, nil
	default:
		return 0, fmt.Errorf("unknown priority %q", s)
	}
}
