package overlay

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// keyCounter is a value overlay; each key press returns a new copy, so the
// stack has to store what Update hands back.
type keyCounter struct {
	keys int
}

func (k keyCounter) Init() tea.Cmd { return nil }

func (k keyCounter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		k.keys++
	}
	return k, nil
}

func (k keyCounter) View() string { return "" }

func (k keyCounter) Title() string { return "Counter" }

func (k keyCounter) Size() (width, height int) { return 10, 1 }

func TestStack_PushPopOrder(t *testing.T) {
	s := NewStack()
	require.True(t, s.IsEmpty())
	assert.Nil(t, s.Current())
	assert.Nil(t, s.Pop(), "popping an empty stack is a no-op")

	form := NewTaskForm(0)
	alert := NewAlertDialog("Taskify", "Please enter all the fields.")

	assert.NotNil(t, s.Push(form), "the form starts its cursor blinking")
	assert.Nil(t, s.Push(alert))
	assert.Equal(t, 2, s.Len())
	assert.Same(t, alert, s.Current())

	assert.Same(t, alert, s.Pop())
	assert.Same(t, form, s.Current())
	assert.Same(t, form, s.Pop())
	assert.True(t, s.IsEmpty())
}

func TestStack_UpdateOnEmpty(t *testing.T) {
	s := NewStack()
	assert.Nil(t, s.Update(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Nil(t, s.Update(CloseOverlayMsg{}))
}

func TestStack_UpdateRoutesToTop(t *testing.T) {
	s := NewStack()
	s.Push(keyCounter{})
	s.Push(NewConfirmDialog("Delete Task", "Delete \"x\"?", "delete"))

	cmd := s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	require.NotNil(t, cmd)
	assert.Equal(t, ConfirmedMsg{Action: "delete", Confirmed: true}, cmd())

	s.Pop()
	s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	assert.Equal(t, keyCounter{keys: 2}, s.Current(), "the returned copy replaces the old one")
}

func TestStack_CloseMsgPopsTopOnly(t *testing.T) {
	s := NewStack()
	s.Push(NewHelpOverlay())
	alert := NewAlertDialog("Taskify", "boom")
	s.Push(alert)

	// The alert answers enter with a close command
	cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, CloseOverlayMsg{}, msg)
	assert.Same(t, alert, s.Current(), "nothing closes until the message comes back")

	assert.Nil(t, s.Update(msg))
	assert.Equal(t, 1, s.Len())
	assert.IsType(t, &HelpOverlay{}, s.Current())
}

func TestFind(t *testing.T) {
	s := NewStack()
	_, ok := Find[*TaskForm](s)
	assert.False(t, ok)

	form := NewTaskForm(0)
	s.Push(form)
	s.Push(NewAlertDialog("Taskify", "Please enter all the fields."))

	found, ok := Find[*TaskForm](s)
	require.True(t, ok, "the form is found beneath the alert")
	assert.Same(t, form, found)

	_, ok = Find[*ConfirmDialog](s)
	assert.False(t, ok)
}
