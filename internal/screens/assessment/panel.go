package assessment

import (
	"fmt"
	"log/slog"

	"charm.land/bubbles/v2/viewport"

	asmt "github.com/abhisek/quizshell/internal/assessment"
	"github.com/abhisek/quizshell/internal/question"
	"github.com/abhisek/quizshell/internal/response"
)

// scrollArea is the scrollable content region of one question.
type scrollArea struct {
	vp viewport.Model
}

func newScrollArea() *scrollArea {
	vp := viewport.New()
	vp.SoftWrap = true
	vp.MouseWheelEnabled = false
	return &scrollArea{vp: vp}
}

func (a *scrollArea) ScrollToTop() { a.vp.GotoTop() }

// Offset returns the first visible line.
func (a *scrollArea) Offset() int { return a.vp.YOffset() }

// render lays body out in a width x height window at the current offset.
func (a *scrollArea) render(body string, width, height int) string {
	a.vp.SetWidth(width)
	a.vp.SetHeight(height)
	a.vp.SetContent(body)
	return a.vp.View()
}

// panel is one question hosted in the panel container.
type panel struct {
	def     asmt.Question
	ctrl    *question.Controller
	widgets []response.Widget
	content *scrollArea
}

// newPanel builds the widgets of def and the controller that observes them.
func newPanel(def asmt.Question, panels *asmt.Panels, policy question.Policy, logger *slog.Logger) (*panel, error) {
	p := &panel{def: def, content: newScrollArea()}

	responses := make([]question.Response, 0, len(def.Responses))
	for i, rd := range def.Responses {
		w, err := response.New(rd)
		if err != nil {
			return nil, fmt.Errorf("question %q response %d: %w", def.ID, i+1, err)
		}
		p.widgets = append(p.widgets, w)
		responses = append(responses, w)
	}

	p.ctrl = question.NewController(def.ID, responses, question.Options{
		Policy:    policy,
		Enclosure: panels,
		Content:   p.content,
		Logger:    logger,
	})
	return p, nil
}
