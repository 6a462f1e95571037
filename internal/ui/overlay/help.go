package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyBinding represents a single keybinding entry
type KeyBinding struct {
	Key         string
	Description string
}

// KeyCategory represents a category of keybindings
type KeyCategory struct {
	Name     string
	Bindings []KeyBinding
}

// DefaultKeyCategories lists the bindings of the task table
var DefaultKeyCategories = []KeyCategory{
	{
		Name: "Navigation",
		Bindings: []KeyBinding{
			{Key: "j/↓", Description: "Move down"},
			{Key: "k/↑", Description: "Move up"},
			{Key: "g", Description: "Jump to first task"},
			{Key: "G", Description: "Jump to last task"},
		},
	},
	{
		Name: "Tasks",
		Bindings: []KeyBinding{
			{Key: "a", Description: "Add a task"},
			{Key: "e/Enter", Description: "Edit selected task"},
			{Key: "d/x", Description: "Delete selected task"},
		},
	},
	{
		Name: "Form",
		Bindings: []KeyBinding{
			{Key: "Tab", Description: "Next field"},
			{Key: "H/M/L", Description: "Set priority"},
			{Key: "Ctrl+S", Description: "Submit"},
			{Key: "Esc", Description: "Cancel"},
		},
	},
	{
		Name: "Other",
		Bindings: []KeyBinding{
			{Key: "?", Description: "Help (this screen)"},
			{Key: "q", Description: "Quit"},
		},
	},
}

// HelpOverlay displays keybinding reference
type HelpOverlay struct {
	categories []KeyCategory
	styles     *Styles
	scroll     int
	maxScroll  int
	viewHeight int
}

// NewHelpOverlay creates a help overlay listing the default bindings
func NewHelpOverlay() *HelpOverlay {
	return &HelpOverlay{
		categories: DefaultKeyCategories,
		styles:     New(),
		viewHeight: 14,
	}
}

// Init initializes the overlay
func (h *HelpOverlay) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (h *HelpOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	switch keyMsg.String() {
	case "esc", "q", "?":
		return h, closeCmd
	case "j", "down":
		if h.scroll < h.maxScroll {
			h.scroll++
		}
	case "k", "up":
		if h.scroll > 0 {
			h.scroll--
		}
	case "g":
		h.scroll = 0
	case "G":
		h.scroll = h.maxScroll
	}

	return h, nil
}

// View renders the help overlay
func (h *HelpOverlay) View() string {
	var content strings.Builder
	for i, cat := range h.categories {
		if i > 0 {
			content.WriteString("\n")
		}
		content.WriteString(h.styles.Header.Render(cat.Name + ":"))
		content.WriteString("\n")

		for _, binding := range cat.Bindings {
			content.WriteString("  " + h.styles.MenuKey.Width(9).Render(binding.Key) + " " + h.styles.MenuItem.Render(binding.Description))
			content.WriteString("\n")
		}
	}

	lines := strings.Split(strings.TrimRight(content.String(), "\n"), "\n")
	h.maxScroll = max(0, len(lines)-h.viewHeight)
	h.scroll = min(h.scroll, h.maxScroll)

	end := min(h.scroll+h.viewHeight, len(lines))
	result := strings.Join(lines[h.scroll:end], "\n")

	if h.maxScroll > 0 {
		result += "\n\n" + h.styles.Footer.Render("[j/k to scroll, g/G to jump]")
	}

	return result
}

// Title returns the overlay title
func (h *HelpOverlay) Title() string {
	return "Help"
}

// Size returns the overlay dimensions
func (h *HelpOverlay) Size() (width, height int) {
	return 50, h.viewHeight + 4
}
