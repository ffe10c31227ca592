package response

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizshell/internal/assessment"
	"github.com/abhisek/quizshell/internal/question"
	"github.com/abhisek/quizshell/internal/ui/theme"
)

// maxAnswerLen bounds typed answers.
const maxAnswerLen = 64

// TextAnswer is a typed-answer widget graded with CheckAnswer.
type TextAnswer struct {
	notifier

	Prompt     string
	Answer     string
	AnswerType assessment.AnswerType

	input    textinput.Model
	revealed bool
	focused  bool
}

var _ Widget = (*TextAnswer)(nil)

// NewTextAnswer creates an empty text widget.
func NewTextAnswer(prompt, answer string, answerType assessment.AnswerType, placeholder string) *TextAnswer {
	ti := textinput.New()
	if placeholder == "" {
		placeholder = "Type your answer..."
	}
	ti.Placeholder = placeholder
	ti.CharLimit = maxAnswerLen

	return &TextAnswer{
		Prompt:     prompt,
		Answer:     answer,
		AnswerType: answerType,
		input:      ti,
	}
}

// State reports unanswered while the input is blank.
func (t *TextAnswer) State() question.ResponseState {
	return t.stateOf(t.input.Value())
}

func (t *TextAnswer) stateOf(value string) question.ResponseState {
	if strings.TrimSpace(value) == "" {
		return question.ResponseUnanswered
	}
	if CheckAnswer(value, t.Answer, t.AnswerType) {
		return question.ResponseAnsweredCorrectly
	}
	return question.ResponseAnsweredIncorrectly
}

// Value returns the typed answer.
func (t *TextAnswer) Value() string { return t.input.Value() }

// Revealed reports whether the graded result is shown.
func (t *TextAnswer) Revealed() bool { return t.revealed }

// SetValue replaces the typed answer as if the user had typed it.
func (t *TextAnswer) SetValue(v string) {
	if t.locked() {
		return
	}
	t.apply(func() { t.input.SetValue(v) })
}

// SubmitResponse reveals the graded result of a non-blank answer.
func (t *TextAnswer) SubmitResponse() {
	if strings.TrimSpace(t.input.Value()) != "" {
		t.revealed = true
	}
}

// Reset clears the input and the reveal.
func (t *TextAnswer) Reset() {
	before := t.State()
	t.input.Reset()
	t.revealed = false
	if t.State() != before {
		t.notify()
	}
}

func (t *TextAnswer) Focus() tea.Cmd {
	t.focused = true
	return t.input.Focus()
}

func (t *TextAnswer) Blur() {
	t.focused = false
	t.input.Blur()
}

// locked is true once a correct answer has been revealed.
func (t *TextAnswer) locked() bool {
	return t.revealed && t.State() == question.ResponseAnsweredCorrectly
}

// Update forwards input to the text field while focused.
func (t *TextAnswer) Update(msg tea.Msg) tea.Cmd {
	if !t.focused || t.locked() {
		return nil
	}
	var cmd tea.Cmd
	t.apply(func() { t.input, cmd = t.input.Update(msg) })
	return cmd
}

// apply runs an edit and, when the value changed, hides a stale reveal and
// notifies.
func (t *TextAnswer) apply(edit func()) {
	before := t.input.Value()
	edit()
	if t.input.Value() == before {
		return
	}
	t.revealed = false
	t.notify()
}

// View renders the prompt, the input, and the graded mark once revealed.
func (t *TextAnswer) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(t.Prompt) + "\n\n"
	view := "  " + t.input.View()
	if t.revealed {
		if t.State() == question.ResponseAnsweredCorrectly {
			view += " " + theme.Correct.Render("✓")
		} else {
			view += " " + theme.Incorrect.Render("✗")
		}
	}
	return s + view + "\n"
}
