package assessment

// Kind identifies the widget used for a response.
type Kind string

const (
	// KindMultipleChoice picks one option from Choices.
	KindMultipleChoice Kind = "multiple_choice"

	// KindText accepts a typed answer graded against Answer.
	KindText Kind = "text"
)

// AnswerType describes how a typed answer is normalized before comparison.
type AnswerType string

const (
	AnswerTypeText     AnswerType = "text"     // case-insensitive, trimmed
	AnswerTypeInteger  AnswerType = "integer"  // e.g. "623", "-15"
	AnswerTypeDecimal  AnswerType = "decimal"  // e.g. "3.75", "0.5"
	AnswerTypeFraction AnswerType = "fraction" // e.g. "3/4", "7/2"
)

// Assessment is an ordered set of questions shown as panels.
type Assessment struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Questions   []Question `json:"questions"`
}

// Question is one panel of an assessment. A question with no responses is
// accepted but can never be answered.
type Question struct {
	// ID names the panel. Defaults to "q<n>" (1-based).
	ID string `json:"id,omitempty"`

	Title     string     `json:"title,omitempty"`
	Prompt    string     `json:"prompt,omitempty"`
	Responses []Response `json:"responses"`
}

// Response defines a single response widget inside a question.
type Response struct {
	Kind   Kind   `json:"kind"`
	Prompt string `json:"prompt"`

	// Choices and Correct (0-based index into Choices) apply to
	// multiple_choice responses.
	Choices []string `json:"choices,omitempty"`
	Correct int      `json:"correct,omitempty"`

	// Answer, AnswerType and Placeholder apply to text responses.
	Answer      string     `json:"answer,omitempty"`
	AnswerType  AnswerType `json:"answer_type,omitempty"`
	Placeholder string     `json:"placeholder,omitempty"`
}

// ResponseCount returns the number of response widgets across all questions.
func (a *Assessment) ResponseCount() int {
	n := 0
	for _, q := range a.Questions {
		n += len(q.Responses)
	}
	return n
}
