package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizshell/internal/ui/layout"
)

// Screen is one page of the quiz shell: the welcome page, the assessment
// itself, or an overlay such as help.
type Screen interface {
	// Init returns an initial command when the screen becomes active.
	Init() tea.Cmd

	// Update handles messages and returns the updated screen and command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is implemented by screens with their own footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// InputCapturer is implemented by screens that sometimes route printable
// keys to a text field. While CapturingInput reports true, single-letter
// shortcuts must not fire.
type InputCapturer interface {
	CapturingInput() bool
}
