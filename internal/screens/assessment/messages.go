package assessment

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizshell/internal/question"
)

// nextQuestionMsg is sent when a completed question asks to move on.
type nextQuestionMsg struct {
	From string
}

// resetAssessmentMsg is sent when the last question asks to start over.
type resetAssessmentMsg struct {
	From string
}

// signalMsg converts a controller signal into the message the screen
// handles for it.
func signalMsg(panelID string, sig question.Signal) tea.Msg {
	switch sig {
	case question.SignalNextQuestion:
		return nextQuestionMsg{From: panelID}
	case question.SignalAssessmentReset:
		return resetAssessmentMsg{From: panelID}
	default:
		return nil
	}
}
