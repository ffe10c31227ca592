package question

import "fmt"

// Policy selects how response states are reduced into one question state.
type Policy int

const (
	// PolicyPositional scans responses in registration order and stops at the
	// first unanswered or incorrect one.
	PolicyPositional Policy = iota

	// PolicySeverity scans every response and ranks
	// unanswered > incorrect > correct regardless of position.
	PolicySeverity
)

// ParsePolicy parses "positional" or "severity". The empty string yields
// PolicyPositional.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "positional":
		return PolicyPositional, nil
	case "severity":
		return PolicySeverity, nil
	default:
		return PolicyPositional, fmt.Errorf("unknown aggregation policy %q", s)
	}
}

func (p Policy) String() string {
	if p == PolicySeverity {
		return "severity"
	}
	return "positional"
}

// Aggregate reduces the ordered response states into a question state.
// An empty sequence is unanswered. The result is never StateCompleted.
func Aggregate(states []ResponseState, policy Policy) State {
	if len(states) == 0 {
		return StateUnanswered
	}
	if policy == PolicySeverity {
		return aggregateBySeverity(states)
	}

	for _, rs := range states {
		if st := fromResponse(rs); st != StateAnsweredCorrectly {
			return st
		}
	}
	return StateAnsweredCorrectly
}

func aggregateBySeverity(states []ResponseState) State {
	result := StateAnsweredCorrectly
	for _, rs := range states {
		switch fromResponse(rs) {
		case StateUnanswered:
			return StateUnanswered
		case StateAnsweredIncorrectly:
			result = StateAnsweredIncorrectly
		}
	}
	return result
}
