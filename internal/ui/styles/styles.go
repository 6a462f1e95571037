package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/taskify/internal/domain"
)

// Styles holds all the UI styles
type Styles struct {
	// Header
	AppTitle lipgloss.Style

	// Task table
	HeaderCell lipgloss.Style
	Separator  lipgloss.Style
	Row        lipgloss.Style
	RowActive  lipgloss.Style
	Cursor     lipgloss.Style
	Empty      lipgloss.Style

	// Badges
	PriorityBadge func(priority domain.Priority) lipgloss.Style

	// Status bar
	StatusBar     lipgloss.Style
	StatusMode    lipgloss.Style
	StatusEditing lipgloss.Style
	StatusHint    lipgloss.Style
	StatusInfo    lipgloss.Style

	// Overlays
	Overlay      lipgloss.Style
	OverlayTitle lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style
}

// New creates a new Styles instance with Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		AppTitle: lipgloss.NewStyle().
			Foreground(Mauve).
			Bold(true).
			Padding(0, 1).
			MarginBottom(1),

		HeaderCell: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true),

		Separator: lipgloss.NewStyle().
			Foreground(Surface1),

		Row: lipgloss.NewStyle().
			Foreground(Text),

		RowActive: lipgloss.NewStyle().
			Foreground(Text).
			Background(Surface0),

		Cursor: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true),

		Empty: lipgloss.NewStyle().
			Foreground(Overlay1).
			Italic(true),

		PriorityBadge: func(priority domain.Priority) lipgloss.Style {
			color, ok := PriorityColors[priority]
			if !ok {
				color = Overlay0
			}
			return lipgloss.NewStyle().
				Foreground(color).
				Bold(priority == domain.PriorityHigh)
		},

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext0).
			Padding(0, 1),

		StatusMode: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusEditing: lipgloss.NewStyle().
			Background(Peach).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		StatusInfo: lipgloss.NewStyle().
			Foreground(Subtext0),

		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface2).
			Background(Base).
			Padding(1, 2),

		OverlayTitle: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true).
			MarginBottom(1),

		ToastInfo: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Blue).
			Foreground(Blue).
			Padding(0, 1),

		ToastSuccess: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Green).
			Foreground(Green).
			Padding(0, 1),

		ToastWarning: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Yellow).
			Foreground(Yellow).
			Padding(0, 1),

		ToastError: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Red).
			Foreground(Red).
			Padding(0, 1),
	}
}
