package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AlertDialog is a blocking message box. It must be dismissed before
// the overlay beneath it receives input again.
type AlertDialog struct {
	title   string
	message string
	styles  *Styles
}

// NewAlertDialog creates an alert with the given title and message
func NewAlertDialog(title, message string) *AlertDialog {
	return &AlertDialog{
		title:   title,
		message: message,
		styles:  New(),
	}
}

// Init initializes the dialog
func (a *AlertDialog) Init() tea.Cmd {
	return nil
}

// Message returns the alert text
func (a *AlertDialog) Message() string {
	return a.message
}

// Update closes the alert on enter, esc or space. All other input is swallowed.
func (a *AlertDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter", "esc", " ":
			return a, closeCmd
		}
	}
	return a, nil
}

// View renders the alert
func (a *AlertDialog) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Error.Render(a.message))
	b.WriteString("\n\n")
	b.WriteString(a.styles.MenuItemActive.Render("[ OK ]"))
	b.WriteString("\n")
	b.WriteString(a.styles.Footer.Render("Enter/Esc: Dismiss"))

	return b.String()
}

// Title returns the dialog title
func (a *AlertDialog) Title() string {
	return a.title
}

// Size returns the dialog dimensions
func (a *AlertDialog) Size() (width, height int) {
	width = max(40, lipgloss.Width(a.message)+6)
	return min(width, 70), strings.Count(a.message, "\n") + 7
}
