package response

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizshell/internal/assessment"
	"github.com/abhisek/quizshell/internal/question"
)

// Widget is a response widget that can be shown in the terminal.
type Widget interface {
	question.Response

	// Focus gives the widget keyboard input.
	Focus() tea.Cmd

	// Blur removes keyboard input.
	Blur()

	// Update handles a message while focused.
	Update(msg tea.Msg) tea.Cmd

	// View renders the widget.
	View() string
}

// New builds the widget for a response definition.
func New(def assessment.Response) (Widget, error) {
	switch def.Kind {
	case assessment.KindMultipleChoice:
		return NewMultiChoice(def.Prompt, def.Choices, def.Correct), nil
	case assessment.KindText:
		return NewTextAnswer(def.Prompt, def.Answer, def.AnswerType, def.Placeholder), nil
	default:
		return nil, fmt.Errorf("unknown response kind %q", def.Kind)
	}
}

// notifier holds state-change listeners.
type notifier struct {
	listeners []func()
}

// OnChange registers fn to be called when the widget's state changes.
func (n *notifier) OnChange(fn func()) {
	n.listeners = append(n.listeners, fn)
}

func (n *notifier) notify() {
	for _, fn := range n.listeners {
		fn()
	}
}
