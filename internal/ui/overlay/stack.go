package overlay

import tea "github.com/charmbracelet/bubbletea"

// Stack holds the open modals. The last one pushed is drawn and owns the
// keyboard; the ones beneath it wait until it closes.
type Stack struct {
	overlays []Overlay
}

// NewStack returns an empty stack
func NewStack() *Stack {
	return &Stack{}
}

// Push opens o on top and returns its Init command
func (s *Stack) Push(o Overlay) tea.Cmd {
	s.overlays = append(s.overlays, o)
	return o.Init()
}

// Pop closes the top overlay and returns it, or nil when nothing is open
func (s *Stack) Pop() Overlay {
	top := s.Current()
	if top != nil {
		s.overlays = s.overlays[:len(s.overlays)-1]
	}
	return top
}

// Current is the overlay that receives input, or nil
func (s *Stack) Current() Overlay {
	if n := len(s.overlays); n > 0 {
		return s.overlays[n-1]
	}
	return nil
}

func (s *Stack) Len() int { return len(s.overlays) }

func (s *Stack) IsEmpty() bool { return len(s.overlays) == 0 }

// Find returns the overlay of type T nearest the top. The task form is
// still found while an alert about its input is showing.
func Find[T Overlay](s *Stack) (T, bool) {
	for i := len(s.overlays) - 1; i >= 0; i-- {
		if o, ok := s.overlays[i].(T); ok {
			return o, true
		}
	}
	var zero T
	return zero, false
}

// Update routes msg to the top overlay. A CloseOverlayMsg closes it instead.
func (s *Stack) Update(msg tea.Msg) tea.Cmd {
	top := s.Current()
	if top == nil {
		return nil
	}
	if _, ok := msg.(CloseOverlayMsg); ok {
		s.Pop()
		return nil
	}

	model, cmd := top.Update(msg)
	if o, ok := model.(Overlay); ok {
		s.overlays[len(s.overlays)-1] = o
	}
	return cmd
}
