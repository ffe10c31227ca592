package question

// ResponseState is the graded state reported by a single response widget.
type ResponseState string

const (
	ResponseUnanswered          ResponseState = "unanswered"
	ResponseAnsweredCorrectly   ResponseState = "answeredCorrectly"
	ResponseAnsweredIncorrectly ResponseState = "answeredIncorrectly"
)

// State is the aggregate state of a question.
type State string

const (
	StateUnanswered          State = "unanswered"
	StateAnsweredCorrectly   State = "answeredCorrectly"
	StateAnsweredIncorrectly State = "answeredIncorrectly"

	// StateCompleted is reached only through Activate after a correct answer
	// has been acknowledged. Aggregation never produces it.
	StateCompleted State = "completed"
)

// CTA labels.
const (
	LabelCheck     = "Check"
	LabelRecheck   = "Recheck"
	LabelNext      = "Next"
	LabelResetQuiz = "Reset quiz"
)

// fromResponse maps a response state onto the matching question state.
// Unknown values are treated as unanswered.
func fromResponse(rs ResponseState) State {
	switch rs {
	case ResponseAnsweredCorrectly:
		return StateAnsweredCorrectly
	case ResponseAnsweredIncorrectly:
		return StateAnsweredIncorrectly
	default:
		return StateUnanswered
	}
}

// Signal is a payload-free message from a question to its container.
type Signal int

const (
	// SignalNextQuestion asks the container to navigate to the next panel.
	SignalNextQuestion Signal = iota + 1

	// SignalAssessmentReset asks the container to restart the whole assessment.
	SignalAssessmentReset
)

func (s Signal) String() string {
	switch s {
	case SignalNextQuestion:
		return "request-nav-to-next"
	case SignalAssessmentReset:
		return "request-assessment-reset"
	default:
		return "unknown"
	}
}
