// Package app contains the main application model and TEA implementation.
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/riordanpawley/taskify/internal/config"
	"github.com/riordanpawley/taskify/internal/domain"
	"github.com/riordanpawley/taskify/internal/store"
	"github.com/riordanpawley/taskify/internal/types"
	"github.com/riordanpawley/taskify/internal/ui/overlay"
	"github.com/riordanpawley/taskify/internal/ui/statusbar"
	"github.com/riordanpawley/taskify/internal/ui/styles"
	"github.com/riordanpawley/taskify/internal/ui/tasklist"
	"github.com/riordanpawley/taskify/internal/ui/toast"
)

// AppTitle is shown at the top of the screen
const AppTitle = "Taskify"

const (
	actionDelete = "delete"

	tickInterval = time.Second

	// title line plus its bottom margin
	titleHeight     = 2
	statusBarHeight = 1
)

// Model is the main application state
type Model struct {
	store    *store.Store
	listView *tasklist.ListView

	// addForm is reused between adds so a canceled draft survives
	addForm       *overlay.TaskForm
	overlayStack  *overlay.Stack
	pendingDelete uuid.UUID

	toasts []types.Toast

	// Terminal size
	width  int
	height int

	styles *styles.Styles
	config *config.Config
	logger *slog.Logger

	now func() time.Time
}

// New creates the application model around st. The list view is
// subscribed to st and seeded with its current contents.
func New(cfg *config.Config, st *store.Store, logger *slog.Logger) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := styles.New()
	lv := tasklist.NewListView(s, cfg.UI.DateFormat)
	st.Subscribe(lv)
	lv.ListChanged(st.Tasks())

	return Model{
		store:        st,
		listView:     lv,
		addForm:      overlay.NewTaskForm(cfg.DefaultPriority()),
		overlayStack: overlay.NewStack(),
		styles:       s,
		config:       cfg,
		logger:       logger,
		now:          time.Now,
	}
}

// Init starts the toast expiry ticker
func (m Model) Init() tea.Cmd {
	return tickEvery(tickInterval)
}

type tickMsg time.Time

func tickEvery(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.listView.SetDimensions(m.width, m.listHeight(0))
		return m, nil

	case tickMsg:
		m.toasts = types.PruneToasts(m.toasts, time.Time(msg))
		return m, tickEvery(tickInterval)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if !m.overlayStack.IsEmpty() {
			return m, m.overlayStack.Update(msg)
		}
		return m.handleKey(msg)

	case overlay.CloseOverlayMsg:
		m.overlayStack.Pop()
		return m, nil

	case overlay.TaskSubmittedMsg:
		return m.handleSubmit(msg)

	case overlay.EditCanceledMsg:
		return m.handleEditCanceled()

	case overlay.ConfirmedMsg:
		m.overlayStack.Pop()
		if msg.Action == actionDelete && msg.Confirmed {
			return m.deletePending()
		}
		m.pendingDelete = uuid.Nil
		return m, nil
	}

	// Anything else (cursor blink, etc.) goes to the top overlay
	return m, m.overlayStack.Update(msg)
}

// handleKey processes keyboard input on the task table
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "j", "down":
		m.listView.MoveDown(1)
	case "k", "up":
		m.listView.MoveUp(1)
	case "g", "home":
		m.listView.GotoTop()
	case "G", "end":
		m.listView.GotoBottom()

	case "a":
		return m, m.overlayStack.Push(m.addForm)
	case "e", "enter":
		return m.beginEdit()
	case "d", "x":
		return m.confirmDelete()

	case "?":
		return m, m.overlayStack.Push(overlay.NewHelpOverlay())
	}

	return m, nil
}

// beginEdit takes the selected task out of the store and opens it in the form
func (m Model) beginEdit() (tea.Model, tea.Cmd) {
	task, err := m.store.BeginEdit(m.listView.Selected())
	if err != nil {
		return m, m.alert(err)
	}
	return m, m.overlayStack.Push(overlay.NewEditTaskForm(task, m.config.DefaultPriority()))
}

// handleSubmit hands the form fields to the store. Only the form on top of
// the stack may submit, and its mode decides between add and commit. On
// failure the form stays open under an alert so the user can correct the input.
func (m Model) handleSubmit(msg overlay.TaskSubmittedMsg) (tea.Model, tea.Cmd) {
	form, ok := m.overlayStack.Current().(*overlay.TaskForm)
	if !ok {
		m.logger.Debug("submit ignored", "name", msg.Name)
		return m, nil
	}

	if form.Editing() {
		staged, _ := m.store.Staged()
		if err := m.store.CommitEdit(msg.Name, msg.Priority, msg.Due); err != nil {
			return m, m.alert(err)
		}
		m.overlayStack.Pop()
		m.listView.Select(staged.ID)
		m.addToast(types.ToastSuccess, fmt.Sprintf("Updated %q", msg.Name))
		return m, nil
	}

	before := m.store.Tasks()
	if err := m.store.Add(msg.Name, msg.Priority, msg.Due); err != nil {
		return m, m.alert(err)
	}
	m.overlayStack.Pop()
	m.addForm.Reset()
	if id, ok := addedID(before, m.store.Tasks()); ok {
		m.listView.Select(id)
	}
	m.addToast(types.ToastSuccess, fmt.Sprintf("Added %q", msg.Name))
	return m, nil
}

// handleEditCanceled puts the task back where it was and closes the form
func (m Model) handleEditCanceled() (tea.Model, tea.Cmd) {
	staged, _ := m.store.Staged()
	if _, ok := m.overlayStack.Current().(*overlay.TaskForm); ok {
		m.overlayStack.Pop()
	}
	if err := m.store.CancelEdit(); err != nil {
		m.logger.Warn("cancel edit failed", "error", err)
		m.addToast(types.ToastError, domain.UserMessage(err))
		return m, nil
	}
	m.listView.Select(staged.ID)
	m.addToast(types.ToastWarning, fmt.Sprintf("Edit of %q canceled", staged.Name))
	return m, nil
}

// confirmDelete asks before deleting the selected task, or deletes it
// straight away when confirmation is turned off
func (m Model) confirmDelete() (tea.Model, tea.Cmd) {
	selected := m.listView.Selected()

	if !m.config.UI.ConfirmDelete {
		if err := m.store.DeleteAt(selected); err != nil {
			return m, m.alert(err)
		}
		m.addToast(types.ToastInfo, "Task deleted")
		return m, nil
	}

	id, err := m.store.IDAt(selected)
	if err != nil {
		var nerr *domain.NoSelectionError
		if errors.As(err, &nerr) {
			nerr.Op = actionDelete
		}
		return m, m.alert(err)
	}
	m.pendingDelete = id

	name := m.store.Tasks()[selected].Name
	dialog := overlay.NewConfirmDialog("Delete Task", fmt.Sprintf("Delete %q?", name), actionDelete)
	return m, m.overlayStack.Push(dialog)
}

// deletePending removes the task the confirm dialog was opened for
func (m Model) deletePending() (tea.Model, tea.Cmd) {
	id := m.pendingDelete
	m.pendingDelete = uuid.Nil

	if err := m.store.Delete(id); err != nil {
		return m, m.alert(err)
	}
	m.addToast(types.ToastInfo, "Task deleted")
	return m, nil
}

// alert pushes a blocking error dialog with a user-facing message
func (m Model) alert(err error) tea.Cmd {
	m.logger.Debug("operation rejected", "error", err)
	return m.overlayStack.Push(overlay.NewAlertDialog("Taskify", domain.UserMessage(err)))
}

// addToast adds a toast notification to the list
func (m *Model) addToast(level types.ToastLevel, message string) {
	ttl := m.config.ToastDuration()
	if ttl <= 0 {
		return
	}
	m.toasts = append(m.toasts, types.NewToast(level, message, m.now(), ttl))
}

// mode derives the status bar mode from the store and the open overlays
func (m Model) mode() types.Mode {
	if m.store.Editing() {
		return types.ModeEdit
	}
	if _, ok := overlay.Find[*overlay.TaskForm](m.overlayStack); ok {
		return types.ModeAdd
	}
	return types.ModeNormal
}

// listHeight is the number of lines left for the table
func (m Model) listHeight(toastHeight int) int {
	// one line is reserved for the "more tasks" indicator
	return max(1, m.height-titleHeight-statusBarHeight-toastHeight-1)
}

// addedID finds the ID present in after but not in before
func addedID(before, after []domain.Task) (uuid.UUID, bool) {
	seen := make(map[uuid.UUID]struct{}, len(before))
	for _, t := range before {
		seen[t.ID] = struct{}{}
	}
	for _, t := range after {
		if _, ok := seen[t.ID]; !ok {
			return t.ID, true
		}
	}
	return uuid.Nil, false
}

// View renders the title, the table (or the top overlay), toasts and the status bar
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	toastView := ""
	if len(m.toasts) > 0 {
		toastView = toast.New(m.styles).Render(m.toasts, m.width)
	}
	toastHeight := 0
	if toastView != "" {
		toastHeight = lipgloss.Height(toastView)
	}

	bodyHeight := max(1, m.height-statusBarHeight-toastHeight)

	var body string
	if current := m.overlayStack.Current(); current != nil {
		body = lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, m.renderOverlay(current))
	} else {
		m.listView.SetDimensions(m.width, m.listHeight(toastHeight))
		content := lipgloss.JoinVertical(lipgloss.Left,
			m.styles.AppTitle.Render(AppTitle),
			m.listView.Render(),
		)
		body = lipgloss.Place(m.width, bodyHeight, lipgloss.Left, lipgloss.Top, content)
	}

	parts := []string{body}
	if toastView != "" {
		parts = append(parts, lipgloss.PlaceHorizontal(m.width, lipgloss.Right, toastView))
	}
	parts = append(parts, statusbar.New(m.mode(), m.store.Len(), m.width, m.styles).Render())

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderOverlay(o overlay.Overlay) string {
	view := o.View()
	if title := o.Title(); title != "" {
		view = lipgloss.JoinVertical(lipgloss.Left, m.styles.OverlayTitle.Render(title), view)
	}

	width, height := o.Size()
	return m.styles.Overlay.
		Width(min(width, m.width-2)).
		Height(min(height, m.height-statusBarHeight-2)).
		Render(view)
}
