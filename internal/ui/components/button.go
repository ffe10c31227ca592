package components

import (
	"github.com/abhisek/quizshell/internal/ui/theme"
)

// Button renders a call-to-action button. A disabled button ignores input
// and is drawn dimmed.
type Button struct {
	Label    string
	Disabled bool
	Focused  bool
}

// NewButton creates a new button.
func NewButton(label string, disabled, focused bool) Button {
	return Button{
		Label:    label,
		Disabled: disabled,
		Focused:  focused,
	}
}

// View renders the button.
func (b Button) View() string {
	switch {
	case b.Disabled:
		return theme.ButtonDisabled.Render("  " + b.Label + " ")
	case b.Focused:
		return theme.ButtonFocused.Render("▸ " + b.Label + " ")
	default:
		return theme.ButtonActive.Render("  " + b.Label + " ")
	}
}
