package question

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// Response is the capability contract a response widget offers to the
// question that hosts it.
type Response interface {
	// State returns the widget's current graded state.
	State() ResponseState

	// OnChange registers fn to be called whenever State changes.
	OnChange(fn func())

	// SubmitResponse reveals the widget's graded result. Idempotent.
	SubmitResponse()

	// Reset clears the widget back to unanswered.
	Reset()
}

// Enclosure locates the panel that follows a given panel in its container.
type Enclosure interface {
	NextSibling(panelID string) (string, bool)
}

// ContentArea is the scrollable region that holds the response widgets.
type ContentArea interface {
	ScrollToTop()
}

// Snapshot is the observable view of a controller.
type Snapshot struct {
	State   State
	Label   string
	Enabled bool
}

// Options configures a Controller.
type Options struct {
	Policy    Policy
	Enclosure Enclosure
	Content   ContentArea
	Logger    *slog.Logger
}

// Controller owns the state of one question and the CTA that drives it.
type Controller struct {
	id        string
	panelID   string
	responses []Response
	policy    Policy
	enclosure Enclosure
	content   ContentArea
	logger    *slog.Logger

	state State
	label string

	transitioning bool
	subscribers   map[int]func(Snapshot)
	nextSubID     int
	signalFns     []func(Signal)
}

// NewController creates a controller for the question hosted in panelID.
// The response list is captured once; widgets added later are not seen.
func NewController(panelID string, responses []Response, opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	c := &Controller{
		id:          uuid.New().String(),
		panelID:     panelID,
		responses:   append([]Response(nil), responses...),
		policy:      opts.Policy,
		enclosure:   opts.Enclosure,
		content:     opts.Content,
		state:       StateUnanswered,
		label:       LabelCheck,
		subscribers: make(map[int]func(Snapshot)),
	}
	c.logger = logger.With("question", panelID, "session", c.id)

	if len(c.responses) == 0 {
		c.logger.Warn("question has no response widgets")
	}
	for _, r := range c.responses {
		r.OnChange(c.Recompute)
	}
	return c
}

// ID returns the session id of this controller.
func (c *Controller) ID() string { return c.id }

// PanelID returns the id of the panel hosting the question.
func (c *Controller) PanelID() string { return c.panelID }

// State returns the current question state.
func (c *Controller) State() State { return c.state }

// Label returns the current CTA label.
func (c *Controller) Label() string { return c.label }

// Enabled reports whether the CTA can be activated.
func (c *Controller) Enabled() bool { return c.state != StateUnanswered }

// Responses returns the cached response widgets.
func (c *Controller) Responses() []Response { return c.responses }

// Snapshot returns the observable state of the controller.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{State: c.state, Label: c.label, Enabled: c.Enabled()}
}

// Subscribe registers fn to be called after every state or label change and
// returns a function that removes the subscription.
func (c *Controller) Subscribe(fn func(Snapshot)) func() {
	id := c.nextSubID
	c.nextSubID++
	c.subscribers[id] = fn
	return func() { delete(c.subscribers, id) }
}

// OnSignal registers fn to receive navigation signals.
func (c *Controller) OnSignal(fn func(Signal)) {
	c.signalFns = append(c.signalFns, fn)
}

// Recompute aggregates the state of every response and mirrors it into the
// question state. The CTA label is left untouched.
func (c *Controller) Recompute() {
	if len(c.responses) == 0 {
		return
	}
	states := make([]ResponseState, len(c.responses))
	for i, r := range c.responses {
		states[i] = r.State()
	}
	c.set(Aggregate(states, c.policy), c.label)
}

// Activate handles a CTA activation.
func (c *Controller) Activate() {
	if c.transitioning || len(c.responses) == 0 {
		return
	}
	c.transitioning = true
	defer func() { c.transitioning = false }()

	switch c.state {
	case StateAnsweredCorrectly:
		c.UpdateResponseComponents()
		label := LabelResetQuiz
		if _, ok := c.CheckNextQuestion(); ok {
			label = LabelNext
		}
		c.set(StateCompleted, label)

	case StateAnsweredIncorrectly:
		c.UpdateResponseComponents()
		c.set(StateUnanswered, LabelRecheck)

	case StateCompleted:
		if _, ok := c.CheckNextQuestion(); ok {
			c.emit(SignalNextQuestion)
		} else {
			c.emit(SignalAssessmentReset)
		}
	}
}

// UpdateResponseComponents asks every response widget to reveal its result.
func (c *Controller) UpdateResponseComponents() {
	for _, r := range c.responses {
		r.SubmitResponse()
	}
}

// CheckNextQuestion returns the panel that follows this question's panel.
// A question that is not hosted in a container has no next panel.
func (c *Controller) CheckNextQuestion() (string, bool) {
	if c.enclosure == nil || c.panelID == "" {
		return "", false
	}
	return c.enclosure.NextSibling(c.panelID)
}

// Reset clears every response widget, restores the CTA label and scrolls
// the content area back to its origin.
func (c *Controller) Reset() {
	if len(c.responses) == 0 {
		return
	}
	for _, r := range c.responses {
		r.Reset()
	}
	if c.content != nil {
		c.content.ScrollToTop()
	}
	c.set(c.state, LabelCheck)
}

func (c *Controller) set(state State, label string) {
	if state == c.state && label == c.label {
		return
	}
	c.logger.Debug("question transition",
		"from", string(c.state), "to", string(state), "label", label)
	c.state = state
	c.label = label

	snap := c.Snapshot()
	for _, fn := range c.subscribers {
		fn(snap)
	}
}

func (c *Controller) emit(sig Signal) {
	c.logger.Debug("question signal", "signal", sig.String())
	for _, fn := range c.signalFns {
		fn(sig)
	}
}
