package overlay

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/taskify/internal/ui/styles"
)

// Styles holds all overlay-specific styles
type Styles struct {
	// Label is a form field label
	Label lipgloss.Style
	// LabelFocused is the label of the focused field
	LabelFocused lipgloss.Style
	// MenuItem is the default item style
	MenuItem lipgloss.Style
	// MenuItemActive is the highlighted/selected item style
	MenuItemActive lipgloss.Style
	// MenuKey is the style for keybinding hints
	MenuKey lipgloss.Style
	// Separator is the style for divider lines
	Separator lipgloss.Style
	// Footer is the style for overlay footer text
	Footer lipgloss.Style
	// Header is the style for section headers
	Header lipgloss.Style
	// Error is the style for alert messages
	Error lipgloss.Style
}

// New creates a new Styles instance using the Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Label: lipgloss.NewStyle().
			Foreground(styles.Teal).
			Width(10).
			Align(lipgloss.Right),

		LabelFocused: lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true).
			Width(10).
			Align(lipgloss.Right),

		MenuItem: lipgloss.NewStyle().
			Foreground(styles.Text),

		MenuItemActive: lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true),

		MenuKey: lipgloss.NewStyle().
			Foreground(styles.Yellow).
			Bold(true),

		Separator: lipgloss.NewStyle().
			Foreground(styles.Surface1),

		Footer: lipgloss.NewStyle().
			Foreground(styles.Subtext0).
			MarginTop(1),

		Header: lipgloss.NewStyle().
			Foreground(styles.Sapphire).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(styles.Red).
			Bold(true),
	}
}
