package statusbar

import "github.com/riordanpawley/taskify/internal/types"

// GetHints returns the keybinding hints for the given mode
func GetHints(mode types.Mode) string {
	switch mode {
	case types.ModeNormal:
		return "a: add  e: edit  d: delete  j/k: move  ?: help  q: quit"
	case types.ModeAdd, types.ModeEdit:
		return "Tab: next field  Ctrl+S: submit  Esc: cancel"
	default:
		return ""
	}
}
