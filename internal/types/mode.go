// Package types contains shared types used across the application.
package types

// Mode represents what the main screen is currently doing
type Mode int

const (
	ModeNormal Mode = iota
	ModeAdd
	ModeEdit
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeAdd:
		return "ADD"
	case ModeEdit:
		return "EDIT"
	default:
		return "UNKNOWN"
	}
}
