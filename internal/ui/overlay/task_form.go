package overlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/taskify/internal/domain"
	"github.com/riordanpawley/taskify/internal/ui/styles"
)

// TaskSubmittedMsg carries the raw form fields. Parsing and validation
// happen in the store, so the values are passed through as text.
type TaskSubmittedMsg struct {
	Name     string
	Priority string
	Due      string
}

// EditCanceledMsg is emitted when an edit form is dismissed without saving
type EditCanceledMsg struct{}

const (
	focusName = iota
	focusPriority
	focusDue
	focusSubmit
	focusCount
)

// TaskForm is the add/edit form for a single task
type TaskForm struct {
	name            textinput.Model
	due             textinput.Model
	priority        domain.Priority
	defaultPriority domain.Priority
	editing         bool
	focusIndex      int
	styles          *Styles
}

// NewTaskForm creates an empty add form
func NewTaskForm(defaultPriority domain.Priority) *TaskForm {
	if !defaultPriority.Valid() {
		defaultPriority = domain.PriorityMedium
	}

	name := textinput.New()
	name.Placeholder = "What needs doing?"
	name.CharLimit = 200
	name.Width = 40

	due := textinput.New()
	due.Placeholder = domain.DateLayout
	due.CharLimit = len(domain.DateLayout)
	due.Width = 12

	f := &TaskForm{
		name:            name,
		due:             due,
		defaultPriority: defaultPriority,
		styles:          New(),
	}
	f.Reset()
	return f
}

// NewEditTaskForm creates a form pre-populated from task
func NewEditTaskForm(task domain.Task, defaultPriority domain.Priority) *TaskForm {
	f := NewTaskForm(defaultPriority)
	f.editing = true
	f.name.SetValue(task.Name)
	f.name.CursorEnd()
	if task.Priority.Valid() {
		f.priority = task.Priority
	}
	f.due.SetValue(task.DueString())
	return f
}

// Reset clears the form back to an empty name, the default priority and today's date
func (f *TaskForm) Reset() {
	f.name.SetValue("")
	f.priority = f.defaultPriority
	f.due.SetValue(domain.Today().Format(domain.DateLayout))
	f.setFocus(focusName)
}

// Editing reports whether the form edits an existing task
func (f *TaskForm) Editing() bool {
	return f.editing
}

// Values returns the current field contents
func (f *TaskForm) Values() TaskSubmittedMsg {
	return TaskSubmittedMsg{
		Name:     f.name.Value(),
		Priority: f.priority.String(),
		Due:      f.due.Value(),
	}
}

// Init initializes the overlay
func (f *TaskForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (f *TaskForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, f.updateInputs(msg)
	}

	switch keyMsg.String() {
	case "esc":
		if f.editing {
			return f, func() tea.Msg { return EditCanceledMsg{} }
		}
		return f, closeCmd

	case "ctrl+s":
		return f, f.submit()

	case "tab", "down":
		f.setFocus((f.focusIndex + 1) % focusCount)
		return f, nil

	case "shift+tab", "up":
		f.setFocus((f.focusIndex - 1 + focusCount) % focusCount)
		return f, nil

	case "enter":
		if f.focusIndex == focusSubmit {
			return f, f.submit()
		}
		f.setFocus(f.focusIndex + 1)
		return f, nil
	}

	if f.focusIndex == focusPriority {
		f.handlePriorityKey(keyMsg.String())
		return f, nil
	}

	return f, f.updateInputs(msg)
}

func (f *TaskForm) handlePriorityKey(key string) {
	switch key {
	case "h", "H":
		f.priority = domain.PriorityHigh
	case "m", "M":
		f.priority = domain.PriorityMedium
	case "l", "L":
		f.priority = domain.PriorityLow
	case "left":
		if f.priority > domain.PriorityHigh {
			f.priority--
		}
	case "right":
		if f.priority < domain.PriorityLow {
			f.priority++
		}
	}
}

func (f *TaskForm) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focusIndex {
	case focusName:
		f.name, cmd = f.name.Update(msg)
	case focusDue:
		f.due, cmd = f.due.Update(msg)
	}
	return cmd
}

func (f *TaskForm) setFocus(index int) {
	f.focusIndex = index
	f.name.Blur()
	f.due.Blur()
	switch index {
	case focusName:
		f.name.Focus()
	case focusDue:
		f.due.Focus()
	}
}

func (f *TaskForm) submit() tea.Cmd {
	values := f.Values()
	return func() tea.Msg { return values }
}

// View renders the form
func (f *TaskForm) View() string {
	var b strings.Builder

	b.WriteString(f.label("Name:", focusName))
	b.WriteString("  ")
	b.WriteString(f.name.View())
	b.WriteString("\n\n")

	b.WriteString(f.label("Priority:", focusPriority))
	b.WriteString("  ")
	b.WriteString(f.renderPrioritySelector())
	b.WriteString("\n\n")

	b.WriteString(f.label("Due:", focusDue))
	b.WriteString("  ")
	b.WriteString(f.due.View())
	b.WriteString("\n\n")

	b.WriteString(f.styles.Separator.Render(strings.Repeat("─", 56)))
	b.WriteString("\n\n")

	submitStyle := f.styles.MenuItem
	if f.focusIndex == focusSubmit {
		submitStyle = f.styles.MenuItemActive
	}
	b.WriteString(submitStyle.Render("[ " + f.buttonText() + " ]"))
	b.WriteString("\n")

	hints := []string{
		f.styles.MenuKey.Render("Tab") + " " + f.styles.Footer.UnsetMarginTop().Render("Next field"),
		f.styles.MenuKey.Render("H/M/L") + " " + f.styles.Footer.UnsetMarginTop().Render("Priority"),
		f.styles.MenuKey.Render("Ctrl+S") + " " + f.styles.Footer.UnsetMarginTop().Render("Submit"),
		f.styles.MenuKey.Render("Esc") + " " + f.styles.Footer.UnsetMarginTop().Render("Cancel"),
	}
	b.WriteString(f.styles.Footer.Render(strings.Join(hints, " • ")))

	return b.String()
}

func (f *TaskForm) label(text string, index int) string {
	if f.focusIndex == index {
		return f.styles.LabelFocused.Render(text)
	}
	return f.styles.Label.Render(text)
}

func (f *TaskForm) renderPrioritySelector() string {
	parts := make([]string, 0, len(domain.Priorities))
	for _, p := range domain.Priorities {
		text := "[" + p.Short() + "] " + p.String()
		if p == f.priority {
			parts = append(parts, lipgloss.NewStyle().Foreground(styles.PriorityColors[p]).Bold(true).Underline(true).Render(text))
		} else {
			parts = append(parts, f.styles.MenuItem.Render(text))
		}
	}
	return strings.Join(parts, "  ")
}

func (f *TaskForm) buttonText() string {
	if f.editing {
		return "Save Task"
	}
	return "Add Task"
}

// Title returns the form title
func (f *TaskForm) Title() string {
	if f.editing {
		return "Edit Task"
	}
	return "Add Task"
}

// Size returns the form dimensions
func (f *TaskForm) Size() (width, height int) {
	return 64, 16
}
