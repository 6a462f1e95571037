// Package overlay holds the modal components drawn over the task table:
// the task form, alerts, confirmations and help.
package overlay

import tea "github.com/charmbracelet/bubbletea"

// Overlay represents a modal overlay component
type Overlay interface {
	tea.Model
	Title() string
	Size() (width, height int)
}

// CloseOverlayMsg signals that the top overlay should be closed
type CloseOverlayMsg struct{}

func closeCmd() tea.Msg { return CloseOverlayMsg{} }
