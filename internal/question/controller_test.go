package question

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	signals   []Signal
	snapshots []Snapshot
}

func newTestController(t *testing.T, panels fakeEnclosure, panelID string, responses ...*fakeResponse) (*Controller, *recorder, *fakeContent) {
	t.Helper()
	rs := make([]Response, len(responses))
	for i, r := range responses {
		rs[i] = r
	}
	content := &fakeContent{offset: 12}
	ctrl := NewController(panelID, rs, Options{Enclosure: panels, Content: content})
	rec := &recorder{}
	ctrl.OnSignal(func(s Signal) { rec.signals = append(rec.signals, s) })
	ctrl.Subscribe(func(s Snapshot) { rec.snapshots = append(rec.snapshots, s) })
	return ctrl, rec, content
}

func TestController_InitialState(t *testing.T) {
	ctrl, _, _ := newTestController(t, nil, "q1", newFake(ResponseUnanswered))

	assert.Equal(t, StateUnanswered, ctrl.State())
	assert.Equal(t, LabelCheck, ctrl.Label())
	assert.False(t, ctrl.Enabled())
	assert.NotEmpty(t, ctrl.ID())
}

func TestController_ActivateWhileUnansweredIsNoop(t *testing.T) {
	r := newFake(ResponseUnanswered)
	ctrl, rec, _ := newTestController(t, fakeEnclosure{"q1", "q2"}, "q1", r)

	ctrl.Activate()

	assert.Equal(t, StateUnanswered, ctrl.State())
	assert.Equal(t, LabelCheck, ctrl.Label())
	assert.Zero(t, r.submitted)
	assert.Empty(t, rec.signals)
}

func TestController_IncorrectRecheck(t *testing.T) {
	r := newFake(ResponseUnanswered)
	ctrl, _, _ := newTestController(t, nil, "q1", r)

	r.set(ResponseAnsweredIncorrectly)
	require.Equal(t, StateAnsweredIncorrectly, ctrl.State())
	assert.Equal(t, LabelCheck, ctrl.Label())
	assert.True(t, ctrl.Enabled())

	ctrl.Activate()

	assert.Equal(t, 1, r.submitted)
	assert.Equal(t, StateUnanswered, ctrl.State())
	assert.Equal(t, LabelRecheck, ctrl.Label())
	assert.False(t, ctrl.Enabled())
	assert.Zero(t, r.resets, "recheck must not reset widgets")

	// A new answer re-enables the CTA but keeps the recheck label.
	r.set(ResponseAnsweredCorrectly)
	assert.Equal(t, StateAnsweredCorrectly, ctrl.State())
	assert.Equal(t, LabelRecheck, ctrl.Label())
	assert.True(t, ctrl.Enabled())
}

func TestController_CorrectWithNextPanel(t *testing.T) {
	r := newFake(ResponseUnanswered)
	ctrl, rec, _ := newTestController(t, fakeEnclosure{"q1", "q2"}, "q1", r)

	r.set(ResponseAnsweredCorrectly)
	ctrl.Activate()

	assert.Equal(t, 1, r.submitted)
	assert.Equal(t, StateCompleted, ctrl.State())
	assert.Equal(t, LabelNext, ctrl.Label())
	assert.Empty(t, rec.signals)

	ctrl.Activate()

	assert.Equal(t, []Signal{SignalNextQuestion}, rec.signals)
	assert.Equal(t, StateCompleted, ctrl.State())
	assert.Equal(t, 1, r.submitted, "completed activation does not resubmit")
}

func TestController_CorrectOnLastPanel(t *testing.T) {
	r := newFake(ResponseUnanswered)
	ctrl, rec, _ := newTestController(t, fakeEnclosure{"q1", "q2"}, "q2", r)

	r.set(ResponseAnsweredCorrectly)
	ctrl.Activate()
	assert.Equal(t, StateCompleted, ctrl.State())
	assert.Equal(t, LabelResetQuiz, ctrl.Label())

	ctrl.Activate()
	assert.Equal(t, []Signal{SignalAssessmentReset}, rec.signals)
}

func TestController_MissingEnclosureIsLastQuestion(t *testing.T) {
	r := newFake(ResponseUnanswered)
	ctrl, rec, _ := newTestController(t, nil, "q1", r)

	_, ok := ctrl.CheckNextQuestion()
	assert.False(t, ok)

	r.set(ResponseAnsweredCorrectly)
	ctrl.Activate()
	assert.Equal(t, LabelResetQuiz, ctrl.Label())
	ctrl.Activate()
	assert.Equal(t, []Signal{SignalAssessmentReset}, rec.signals)
}

func TestController_UnknownPanelHasNoNext(t *testing.T) {
	ctrl, _, _ := newTestController(t, fakeEnclosure{"q1", "q2"}, "elsewhere", newFake(ResponseUnanswered))
	_, ok := ctrl.CheckNextQuestion()
	assert.False(t, ok)
}

func TestController_Reset(t *testing.T) {
	r1 := newFake(ResponseUnanswered)
	r2 := newFake(ResponseUnanswered)
	ctrl, _, content := newTestController(t, fakeEnclosure{"q1", "q2"}, "q1", r1, r2)

	r1.set(ResponseAnsweredCorrectly)
	r2.set(ResponseAnsweredCorrectly)
	ctrl.Activate()
	require.Equal(t, LabelNext, ctrl.Label())

	ctrl.Reset()

	assert.Equal(t, LabelCheck, ctrl.Label())
	assert.Equal(t, StateUnanswered, ctrl.State())
	assert.Equal(t, ResponseUnanswered, r1.State())
	assert.Equal(t, ResponseUnanswered, r2.State())
	assert.Equal(t, 1, r1.resets)
	assert.Equal(t, 1, r2.resets)
	assert.Zero(t, content.offset)
}

func TestController_NoResponses(t *testing.T) {
	ctrl, rec, _ := newTestController(t, fakeEnclosure{"q1", "q2"}, "q1")

	ctrl.Recompute()
	ctrl.Activate()
	ctrl.Reset()

	assert.Equal(t, StateUnanswered, ctrl.State())
	assert.Equal(t, LabelCheck, ctrl.Label())
	assert.False(t, ctrl.Enabled())
	assert.Empty(t, rec.signals)
}

func TestController_RecomputeScansAllResponses(t *testing.T) {
	r1 := newFake(ResponseUnanswered)
	r2 := newFake(ResponseUnanswered)
	ctrl, _, _ := newTestController(t, nil, "q1", r1, r2)

	r1.set(ResponseAnsweredCorrectly)
	assert.Equal(t, StateUnanswered, ctrl.State())

	r2.set(ResponseAnsweredCorrectly)
	assert.Equal(t, StateAnsweredCorrectly, ctrl.State())

	r1.set(ResponseAnsweredIncorrectly)
	assert.Equal(t, StateAnsweredIncorrectly, ctrl.State())
}

func TestController_SeverityPolicy(t *testing.T) {
	r1 := newFake(ResponseUnanswered)
	r2 := newFake(ResponseUnanswered)
	ctrl := NewController("q1", []Response{r1, r2}, Options{Policy: PolicySeverity})

	r1.set(ResponseAnsweredIncorrectly)
	assert.Equal(t, StateUnanswered, ctrl.State())
}

func TestController_EnabledIffAnswered(t *testing.T) {
	r := newFake(ResponseUnanswered)
	ctrl, _, _ := newTestController(t, fakeEnclosure{"q1", "q2"}, "q1", r)

	steps := []func(){
		func() { r.set(ResponseAnsweredIncorrectly) },
		ctrl.Activate,
		func() { r.set(ResponseAnsweredCorrectly) },
		ctrl.Activate,
		ctrl.Activate,
		ctrl.Reset,
	}
	for _, step := range steps {
		step()
		assert.Equal(t, ctrl.State() != StateUnanswered, ctrl.Enabled())
	}
}

// notifyOnSubmit flips its state when submitted, as a widget that grades
// lazily would.
type notifyOnSubmit struct {
	fakeResponse
	onSubmit ResponseState
}

func (n *notifyOnSubmit) SubmitResponse() {
	n.submitted++
	n.set(n.onSubmit)
}

func TestController_TransitionWinsOverNestedRecompute(t *testing.T) {
	r := &notifyOnSubmit{fakeResponse: fakeResponse{state: ResponseUnanswered}, onSubmit: ResponseAnsweredIncorrectly}
	ctrl := NewController("q1", []Response{r}, Options{})

	r.set(ResponseAnsweredCorrectly)
	ctrl.Activate()

	assert.Equal(t, StateCompleted, ctrl.State())
	assert.Equal(t, LabelResetQuiz, ctrl.Label())
}

// reentrant activates the controller again from inside SubmitResponse.
type reentrant struct {
	fakeResponse
	ctrl *Controller
}

func (r *reentrant) SubmitResponse() {
	r.submitted++
	r.ctrl.Activate()
}

func TestController_IgnoresReentrantActivation(t *testing.T) {
	r := &reentrant{fakeResponse: fakeResponse{state: ResponseUnanswered}}
	rec := &recorder{}
	ctrl := NewController("q1", []Response{r}, Options{Enclosure: fakeEnclosure{"q1", "q2"}})
	ctrl.OnSignal(func(s Signal) { rec.signals = append(rec.signals, s) })
	r.ctrl = ctrl

	r.set(ResponseAnsweredCorrectly)
	ctrl.Activate()

	assert.Equal(t, 1, r.submitted)
	assert.Equal(t, StateCompleted, ctrl.State())
	assert.Empty(t, rec.signals)
}

func TestController_SubscribeAndUnsubscribe(t *testing.T) {
	r := newFake(ResponseUnanswered)
	ctrl, rec, _ := newTestController(t, nil, "q1", r)

	var extra []Snapshot
	unsubscribe := ctrl.Subscribe(func(s Snapshot) { extra = append(extra, s) })

	r.set(ResponseAnsweredIncorrectly)
	unsubscribe()
	ctrl.Activate()

	require.Len(t, rec.snapshots, 2)
	assert.Equal(t, Snapshot{State: StateAnsweredIncorrectly, Label: LabelCheck, Enabled: true}, rec.snapshots[0])
	assert.Equal(t, Snapshot{State: StateUnanswered, Label: LabelRecheck, Enabled: false}, rec.snapshots[1])
	assert.Len(t, extra, 1)
}

func TestSignal_String(t *testing.T) {
	assert.Equal(t, "request-nav-to-next", SignalNextQuestion.String())
	assert.Equal(t, "request-assessment-reset", SignalAssessmentReset.String())
	assert.Equal(t, "unknown", Signal(0).String())
}
