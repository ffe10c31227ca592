package assessment

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"

	asmt "github.com/abhisek/quizshell/internal/assessment"
	"github.com/abhisek/quizshell/internal/logging"
	"github.com/abhisek/quizshell/internal/question"
	"github.com/abhisek/quizshell/internal/response"
	"github.com/abhisek/quizshell/internal/router"
	"github.com/abhisek/quizshell/internal/screen"
	"github.com/abhisek/quizshell/internal/screens/help"
	"github.com/abhisek/quizshell/internal/ui/layout"
)

// Options configures the assessment screen.
type Options struct {
	Policy question.Policy
	Logger *slog.Logger
}

// AssessmentScreen shows one question panel at a time and routes the
// signals of its controllers to the panel container.
type AssessmentScreen struct {
	def    *asmt.Assessment
	panels *asmt.Panels
	byID   map[string]*panel
	order  []*panel
	logger *slog.Logger

	// focus indexes the active panel's widgets; len(widgets) is the CTA.
	focus int

	// pending collects signals emitted by controllers during a key press.
	pending []tea.Msg
}

var _ screen.Screen = (*AssessmentScreen)(nil)
var _ screen.KeyHintProvider = (*AssessmentScreen)(nil)
var _ screen.InputCapturer = (*AssessmentScreen)(nil)

// New builds a panel with a controller for every question of def.
func New(def *asmt.Assessment, opts Options) (*AssessmentScreen, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	ids := make([]string, len(def.Questions))
	for i, q := range def.Questions {
		ids[i] = q.ID
	}

	s := &AssessmentScreen{
		def:    def,
		panels: asmt.NewPanels(ids),
		byID:   make(map[string]*panel, len(ids)),
		logger: logger,
	}
	for _, q := range def.Questions {
		p, err := newPanel(q, s.panels, opts.Policy, logger)
		if err != nil {
			return nil, err
		}
		id := q.ID
		p.ctrl.OnSignal(func(sig question.Signal) {
			if msg := signalMsg(id, sig); msg != nil {
				s.pending = append(s.pending, msg)
			}
		})
		s.byID[id] = p
		s.order = append(s.order, p)
	}
	return s, nil
}

func (s *AssessmentScreen) Init() tea.Cmd {
	return s.focusAt(0)
}

func (s *AssessmentScreen) Title() string {
	return s.def.Title
}

func (s *AssessmentScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Select"},
	}
	if p := s.active(); p != nil && s.focus == len(p.widgets) && p.ctrl.Enabled() {
		hints[1].Description = p.ctrl.Label()
	}
	return append(hints,
		layout.KeyHint{Key: "PgUp/PgDn", Description: "Scroll"},
		layout.KeyHint{Key: "?", Description: "Help"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
}

func (s *AssessmentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case nextQuestionMsg:
		return s, s.handleNextQuestion(msg)
	case resetAssessmentMsg:
		return s, s.handleResetAssessment(msg)
	case tea.KeyPressMsg:
		cmd := s.handleKey(msg)
		return s, tea.Batch(cmd, s.dispatch())
	}

	if w := s.focusedWidget(); w != nil {
		return s, w.Update(msg)
	}
	return s, nil
}

// active returns the panel shown, or nil for an empty assessment.
func (s *AssessmentScreen) active() *panel {
	return s.byID[s.panels.Active()]
}

// Active returns the controller of the question shown.
func (s *AssessmentScreen) Active() *question.Controller {
	if p := s.active(); p != nil {
		return p.ctrl
	}
	return nil
}

// Controller returns the controller of the question with id.
func (s *AssessmentScreen) Controller(id string) *question.Controller {
	if p := s.byID[id]; p != nil {
		return p.ctrl
	}
	return nil
}

// Panels returns the panel container.
func (s *AssessmentScreen) Panels() *asmt.Panels {
	return s.panels
}

// CapturingInput reports whether the focused element is a text answer.
func (s *AssessmentScreen) CapturingInput() bool {
	_, typing := s.focusedWidget().(*response.TextAnswer)
	return typing
}

func (s *AssessmentScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	p := s.active()
	if p == nil {
		return nil
	}

	switch msg.String() {
	case "?":
		if s.CapturingInput() {
			break
		}
		return func() tea.Msg { return router.PushScreenMsg{Screen: help.New()} }
	case "tab":
		return s.focusAt(s.focus + 1)
	case "shift+tab":
		return s.focusAt(s.focus - 1)
	case "pgdown":
		p.content.vp.HalfPageDown()
		return nil
	case "pgup":
		p.content.vp.HalfPageUp()
		return nil
	case "enter":
		if s.focus == len(p.widgets) {
			p.ctrl.Activate()
			return nil
		}
		cmd := p.widgets[s.focus].Update(msg)
		return tea.Batch(cmd, s.focusAt(s.focus+1))
	}

	if w := s.focusedWidget(); w != nil {
		return w.Update(msg)
	}
	return nil
}

// dispatch delivers the signals queued by controllers during the last key
// press, after the controller's transition has finished.
func (s *AssessmentScreen) dispatch() tea.Cmd {
	pending := s.pending
	s.pending = nil

	var cmds []tea.Cmd
	for _, msg := range pending {
		switch msg := msg.(type) {
		case nextQuestionMsg:
			cmds = append(cmds, s.handleNextQuestion(msg))
		case resetAssessmentMsg:
			cmds = append(cmds, s.handleResetAssessment(msg))
		}
	}
	return tea.Batch(cmds...)
}

func (s *AssessmentScreen) handleNextQuestion(msg nextQuestionMsg) tea.Cmd {
	if s.panels.Active() != msg.From {
		return nil
	}
	if !s.panels.Next() {
		return nil
	}
	s.logger.Info("navigate to next question", "from", msg.From, "to", s.panels.Active())

	// The container re-displays the next question from scratch.
	s.active().ctrl.Reset()
	return s.focusAt(0)
}

func (s *AssessmentScreen) handleResetAssessment(msg resetAssessmentMsg) tea.Cmd {
	if s.panels.Active() != msg.From {
		return nil
	}
	s.logger.Info("reset assessment", "from", msg.From)

	for _, p := range s.order {
		p.ctrl.Reset()
	}
	s.panels.Restart()
	return s.focusAt(0)
}

// focusAt moves keyboard focus to position i of the active panel, wrapping
// around the widgets and the CTA.
func (s *AssessmentScreen) focusAt(i int) tea.Cmd {
	p := s.active()
	if p == nil {
		return nil
	}
	n := len(p.widgets) + 1
	i = ((i % n) + n) % n

	for _, w := range p.widgets {
		w.Blur()
	}
	s.focus = i
	if i < len(p.widgets) {
		return p.widgets[i].Focus()
	}
	return nil
}

func (s *AssessmentScreen) focusedWidget() response.Widget {
	p := s.active()
	if p == nil || s.focus >= len(p.widgets) {
		return nil
	}
	return p.widgets[s.focus]
}


