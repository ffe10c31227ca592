package response

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizshell/internal/question"
	"github.com/abhisek/quizshell/internal/ui/theme"
)

// MultiChoice is a single-answer multiple-choice widget.
type MultiChoice struct {
	notifier

	Prompt       string
	Options      []string
	CorrectIndex int

	cursor   int
	chosen   int
	revealed bool
	focused  bool
}

var _ Widget = (*MultiChoice)(nil)

// NewMultiChoice creates a multiple-choice widget with nothing chosen.
func NewMultiChoice(prompt string, options []string, correctIndex int) *MultiChoice {
	return &MultiChoice{
		Prompt:       prompt,
		Options:      options,
		CorrectIndex: correctIndex,
		chosen:       -1,
	}
}

// State reports unanswered until an option is chosen.
func (m *MultiChoice) State() question.ResponseState {
	switch {
	case m.chosen < 0:
		return question.ResponseUnanswered
	case m.chosen == m.CorrectIndex:
		return question.ResponseAnsweredCorrectly
	default:
		return question.ResponseAnsweredIncorrectly
	}
}

// Chosen returns the chosen option index, or -1.
func (m *MultiChoice) Chosen() int { return m.chosen }

// Revealed reports whether the graded result is shown.
func (m *MultiChoice) Revealed() bool { return m.revealed }

// Choose picks option i. Out-of-range indexes are ignored.
func (m *MultiChoice) Choose(i int) {
	if m.locked() || i < 0 || i >= len(m.Options) || i == m.chosen {
		return
	}
	m.chosen = i
	m.cursor = i
	m.revealed = false
	m.notify()
}

// SubmitResponse reveals the graded result of the chosen option.
func (m *MultiChoice) SubmitResponse() {
	if m.chosen >= 0 {
		m.revealed = true
	}
}

// Reset clears the choice and the reveal.
func (m *MultiChoice) Reset() {
	before := m.State()
	m.chosen = -1
	m.cursor = 0
	m.revealed = false
	if m.State() != before {
		m.notify()
	}
}

func (m *MultiChoice) Focus() tea.Cmd {
	m.focused = true
	return nil
}

func (m *MultiChoice) Blur() {
	m.focused = false
}

// locked is true once a correct answer has been revealed.
func (m *MultiChoice) locked() bool {
	return m.revealed && m.State() == question.ResponseAnsweredCorrectly
}

// Update handles keyboard navigation and selection.
func (m *MultiChoice) Update(msg tea.Msg) tea.Cmd {
	if !m.focused || m.locked() {
		return nil
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.Options)-1 {
			m.cursor++
		}
	case "space", " ", "x", "enter":
		m.Choose(m.cursor)
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			m.Choose(int(key[0] - '1'))
		}
	}
	return nil
}

// View renders the prompt and options.
func (m *MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Prompt))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		prefix := "  "
		if m.focused && i == m.cursor && !m.locked() {
			prefix = "▸ "
		}
		mark := "( )"
		if i == m.chosen {
			mark = "(•)"
		}
		line := fmt.Sprintf("%s%s %c)  %s", prefix, mark, 'A'+rune(i), opt)

		switch {
		case m.revealed && i == m.chosen && i == m.CorrectIndex:
			line = theme.Correct.Render(line + "  ✓")
		case m.revealed && i == m.chosen:
			line = theme.Incorrect.Render(line + "  ✗")
		case m.revealed:
			line = lipgloss.NewStyle().Foreground(theme.TextDim).Render(line)
		case m.focused && i == m.cursor:
			line = theme.Selected.Render(line)
		default:
			line = theme.Unselected.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
