// Package statusbar renders the one-line footer of the task table.
package statusbar

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/taskify/internal/types"
	"github.com/riordanpawley/taskify/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	mode   types.Mode
	count  int
	width  int
	styles *styles.Styles
}

// New creates a new StatusBar for mode showing count tasks
func New(mode types.Mode, count, width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		mode:   mode,
		count:  count,
		width:  width,
		styles: styles,
	}
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	badgeStyle := sb.styles.StatusMode
	if sb.mode == types.ModeEdit {
		badgeStyle = sb.styles.StatusEditing
	}
	modeBadge := badgeStyle.Render(sb.mode.String())

	parts := []string{modeBadge}
	if hints := GetHints(sb.mode); hints != "" {
		parts = append(parts, sb.styles.StatusHint.Render(" │ "), sb.styles.StatusHint.Render(hints))
	}
	left := lipgloss.JoinHorizontal(lipgloss.Left, parts...)

	right := sb.styles.StatusInfo.Render(countLabel(sb.count))

	// Push the count to the right edge; the bar style adds one cell of padding each side
	gap := sb.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	content := left
	if gap > 0 {
		content = lipgloss.JoinHorizontal(lipgloss.Left, left, lipgloss.NewStyle().Width(gap).Render(""), right)
	}

	return sb.styles.StatusBar.Width(sb.width).Render(content)
}

func countLabel(n int) string {
	if n == 1 {
		return "1 task"
	}
	return fmt.Sprintf("%d tasks", n)
}
