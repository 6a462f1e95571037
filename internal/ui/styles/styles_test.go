package styles

import (
	"testing"

	"github.com/riordanpawley/taskify/internal/domain"
)

func TestNew(t *testing.T) {
	s := New()
	if s == nil {
		t.Fatal("New() returned nil")
	}
}

func TestPriorityBadge(t *testing.T) {
	s := New()

	tests := []struct {
		priority domain.Priority
		name     string
	}{
		{domain.PriorityHigh, "High"},
		{domain.PriorityMedium, "Medium"},
		{domain.PriorityLow, "Low"},
		{domain.Priority(9), "Out of range (should use fallback color)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := s.PriorityBadge(tt.priority)
			rendered := style.Render(tt.priority.String())
			if len(rendered) == 0 {
				t.Error("PriorityBadge rendered empty string")
			}
		})
	}
}

func TestPriorityColors(t *testing.T) {
	for _, p := range domain.Priorities {
		if _, ok := PriorityColors[p]; !ok {
			t.Errorf("no color for priority %s", p)
		}
	}
}

func TestThemeColors(t *testing.T) {
	// Verify colors are defined
	colors := []struct {
		name  string
		color string
	}{
		{"Base", string(Base)},
		{"Blue", string(Blue)},
		{"Red", string(Red)},
		{"Green", string(Green)},
		{"Yellow", string(Yellow)},
		{"Peach", string(Peach)},
	}

	for _, c := range colors {
		t.Run(c.name, func(t *testing.T) {
			if c.color == "" {
				t.Errorf("%s color is empty", c.name)
			}
			// Catppuccin colors start with #
			if c.color[0] != '#' {
				t.Errorf("%s color doesn't start with #: %s", c.name, c.color)
			}
		})
	}
}
