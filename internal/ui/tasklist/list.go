// Package tasklist renders the task table and tracks which row is selected.
package tasklist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/riordanpawley/taskify/internal/domain"
	"github.com/riordanpawley/taskify/internal/store"
	"github.com/riordanpawley/taskify/internal/ui/styles"
)

var _ store.Listener = (*ListView)(nil)

// Fixed column widths
const (
	cursorWidth   = 3
	priorityWidth = 10
	dueWidth      = 14
	minNameWidth  = 12
)

// ListView is a table of tasks with a cursor. It holds only the last
// snapshot published by the store.
type ListView struct {
	tasks        []domain.Task
	cursor       int
	scrollOffset int
	dateFormat   string
	styles       *styles.Styles
	width        int
	height       int
}

// NewListView creates an empty ListView
func NewListView(s *styles.Styles, dateFormat string) *ListView {
	if dateFormat == "" {
		dateFormat = domain.DateLayout
	}
	return &ListView{
		tasks:      []domain.Task{},
		dateFormat: dateFormat,
		styles:     s,
		width:      80,
		height:     20,
	}
}

// ListChanged replaces the rows with a fresh snapshot. The cursor follows
// the previously selected task when it is still present.
func (lv *ListView) ListChanged(tasks []domain.Task) {
	prevID, hadSelection := lv.SelectedID()

	lv.tasks = tasks

	if hadSelection && lv.Select(prevID) {
		return
	}
	lv.SetCursor(lv.cursor)
}

// SetDimensions updates the available area
func (lv *ListView) SetDimensions(width, height int) {
	lv.width = width
	lv.height = height
	lv.ensureCursorVisible()
}

// Len returns the number of rows
func (lv *ListView) Len() int {
	return len(lv.tasks)
}

// SetCursor moves the cursor, clamping to the rows
func (lv *ListView) SetCursor(index int) {
	if index < 0 {
		lv.cursor = 0
	} else if index >= len(lv.tasks) {
		lv.cursor = max(0, len(lv.tasks)-1)
	} else {
		lv.cursor = index
	}
	lv.ensureCursorVisible()
}

// MoveUp moves the cursor up n rows
func (lv *ListView) MoveUp(n int) {
	lv.SetCursor(lv.cursor - n)
}

// MoveDown moves the cursor down n rows
func (lv *ListView) MoveDown(n int) {
	lv.SetCursor(lv.cursor + n)
}

// GotoTop jumps to the first row
func (lv *ListView) GotoTop() {
	lv.SetCursor(0)
}

// GotoBottom jumps to the last row
func (lv *ListView) GotoBottom() {
	lv.SetCursor(len(lv.tasks) - 1)
}

// Selected returns the selected row index, or store.NoSelection when the table is empty
func (lv *ListView) Selected() int {
	if len(lv.tasks) == 0 {
		return store.NoSelection
	}
	return lv.cursor
}

// SelectedID returns the ID of the selected task
func (lv *ListView) SelectedID() (uuid.UUID, bool) {
	idx := lv.Selected()
	if idx == store.NoSelection {
		return uuid.Nil, false
	}
	return lv.tasks[idx].ID, true
}

// Select moves the cursor to the task with the given ID
func (lv *ListView) Select(id uuid.UUID) bool {
	for i, t := range lv.tasks {
		if t.ID == id {
			lv.SetCursor(i)
			return true
		}
	}
	return false
}

// Render renders the full table
func (lv *ListView) Render() string {
	if len(lv.tasks) == 0 {
		return lv.styles.Empty.
			Width(lv.width).
			Align(lipgloss.Center).
			Render("No tasks yet\n\nPress 'a' to add a task")
	}

	var b strings.Builder

	b.WriteString(lv.renderHeader())
	b.WriteString("\n")
	b.WriteString(lv.renderSeparator())
	b.WriteString("\n")

	visibleRows := lv.calculateVisibleRows()
	startIdx := lv.scrollOffset
	endIdx := min(startIdx+visibleRows, len(lv.tasks))

	for i := startIdx; i < endIdx; i++ {
		b.WriteString(lv.renderRow(i, lv.tasks[i]))
		if i < endIdx-1 {
			b.WriteString("\n")
		}
	}

	if endIdx < len(lv.tasks) {
		b.WriteString("\n")
		b.WriteString(lv.styles.Separator.Render(
			fmt.Sprintf(" ↓ %d more tasks ↓ ", len(lv.tasks)-endIdx),
		))
	}

	return b.String()
}

func (lv *ListView) nameWidth() int {
	return max(minNameWidth, lv.width-cursorWidth-priorityWidth-dueWidth)
}

func (lv *ListView) renderHeader() string {
	cells := []string{
		lv.styles.HeaderCell.Width(cursorWidth).Render(""),
		lv.styles.HeaderCell.Width(lv.nameWidth()).Render("Task Name"),
		lv.styles.HeaderCell.Width(priorityWidth).Render("Priority"),
		lv.styles.HeaderCell.Width(dueWidth).Render("Due Date"),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (lv *ListView) renderSeparator() string {
	return lv.styles.Separator.Render(strings.Repeat("─", lv.width))
}

func (lv *ListView) renderRow(index int, task domain.Task) string {
	isActive := index == lv.cursor

	rowStyle := lv.styles.Row
	indicator := "  "
	if isActive {
		rowStyle = lv.styles.RowActive
		indicator = lv.styles.Cursor.Render("▶ ")
	}

	cells := []string{
		rowStyle.Width(cursorWidth).Render(indicator),
		rowStyle.Width(lv.nameWidth()).Render(truncateString(task.Name, lv.nameWidth()-1)),
		lv.styles.PriorityBadge(task.Priority).Width(priorityWidth).Render(task.Priority.String()),
		rowStyle.Width(dueWidth).Render(task.Due.Format(lv.dateFormat)),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// calculateVisibleRows accounts for the header and separator lines
func (lv *ListView) calculateVisibleRows() int {
	return max(1, lv.height-2)
}

func (lv *ListView) ensureCursorVisible() {
	visibleRows := lv.calculateVisibleRows()

	if lv.cursor < lv.scrollOffset {
		lv.scrollOffset = lv.cursor
	}
	if lv.cursor >= lv.scrollOffset+visibleRows {
		lv.scrollOffset = lv.cursor - visibleRows + 1
	}

	maxOffset := max(0, len(lv.tasks)-visibleRows)
	lv.scrollOffset = min(max(lv.scrollOffset, 0), maxOffset)
}

// truncateString truncates a string to fit within the given width
func truncateString(s string, width int) string {
	if width <= 3 {
		return strings.Repeat(".", max(width, 0))
	}

	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}
