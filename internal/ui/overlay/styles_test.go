package overlay

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestNewStyles(t *testing.T) {
	styles := New()
	if styles == nil {
		t.Fatal("New() returned nil")
	}

	tests := []struct {
		name  string
		style lipgloss.Style
	}{
		{"Label", styles.Label},
		{"LabelFocused", styles.LabelFocused},
		{"MenuItem", styles.MenuItem},
		{"MenuItemActive", styles.MenuItemActive},
		{"MenuKey", styles.MenuKey},
		{"Separator", styles.Separator},
		{"Footer", styles.Footer},
		{"Header", styles.Header},
		{"Error", styles.Error},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rendered := tt.style.Render("test"); rendered == "" {
				t.Errorf("%s style rendered empty string", tt.name)
			}
		})
	}
}

func TestLabelStylesAlign(t *testing.T) {
	styles := New()

	if styles.Label.GetWidth() != styles.LabelFocused.GetWidth() {
		t.Error("focused and unfocused labels should share a width so fields line up")
	}
}
