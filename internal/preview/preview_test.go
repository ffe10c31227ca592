package preview

import (
	"bytes"
	"context"
	"strings"
	"testing"

	asmt "github.com/abhisek/quizshell/internal/assessment"
	"github.com/abhisek/quizshell/internal/question"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAssessment() *asmt.Assessment {
	return &asmt.Assessment{
		Title: "Capitals",
		Questions: []asmt.Question{
			{ID: "france", Prompt: "Capital of France?", Responses: []asmt.Response{
				{Kind: asmt.KindMultipleChoice, Prompt: "Pick one", Choices: []string{"Lyon", "Paris", "Nice"}, Correct: 1},
			}},
			{ID: "pair", Prompt: "Two capitals", Responses: []asmt.Response{
				{Kind: asmt.KindText, Prompt: "Italy", Answer: "Rome", AnswerType: asmt.AnswerTypeText},
				{Kind: asmt.KindText, Prompt: "Spain", Answer: "Madrid", AnswerType: asmt.AnswerTypeText},
			}},
		},
	}
}

func run(t *testing.T, input string) (*Runner, string) {
	t.Helper()
	var out bytes.Buffer
	r, err := New(testAssessment(), strings.NewReader(input), &out, question.PolicyPositional, nil)
	require.NoError(t, err)
	require.NoError(t, r.Run(context.Background()))
	return r, out.String()
}

func TestRunCorrectPathAdvancesAndResets(t *testing.T) {
	input := strings.Join([]string{
		"B",          // choose Paris
		"",           // Check
		"",           // Next
		"1=rome",     // Italy
		"2=  Madrid", // Spain
		"",           // Check
		"",           // Reset quiz
	}, "\n") + "\n"

	r, out := run(t, input)

	assert.Contains(t, out, "── Question 1/2 ──")
	assert.Contains(t, out, "── Question 2/2 ──")
	assert.Contains(t, out, "[Next]")
	assert.Contains(t, out, "[Reset quiz]")
	assert.Contains(t, out, "Starting over.")
	assert.Equal(t, "france", r.panels.Active())
	assert.Equal(t, question.StateUnanswered, r.ctrls["france"].State())
	assert.Equal(t, question.LabelCheck, r.ctrls["pair"].Label())
}

func TestRunWrongAnswerOffersRecheck(t *testing.T) {
	r, out := run(t, "1\n\n")

	assert.Contains(t, out, "[Recheck]")
	assert.Equal(t, question.StateAnsweredIncorrectly, r.ctrls["france"].State())
	assert.Equal(t, "france", r.panels.Active())
}

func TestRunRecheckWithAnotherWrongAnswer(t *testing.T) {
	r, out := run(t, "A\n\nC\n")

	assert.Contains(t, out, "[Recheck] (disabled)")
	assert.Contains(t, out, "[Recheck] (press Enter)")
	assert.True(t, r.ctrls["france"].Enabled())
	assert.Equal(t, question.StateAnsweredIncorrectly, r.ctrls["france"].State())
}

func TestRunDisabledButton(t *testing.T) {
	_, out := run(t, "\n")
	assert.Contains(t, out, "(answer every part first)")
	assert.Contains(t, out, "[Check] (disabled)")
}

func TestRunQuit(t *testing.T) {
	_, out := run(t, ":quit\nB\n\n")
	assert.NotContains(t, out, "[Next]")
	assert.NotContains(t, out, "(input closed)")
}

func TestRunRejectsBadInput(t *testing.T) {
	_, out := run(t, "7\n")
	assert.Contains(t, out, "pick an option between 1 and 3")

	_, out = run(t, "B\n\n\nRome\n3=Rome\n")
	assert.Contains(t, out, "use n=answer")
	assert.Contains(t, out, `no part "3"`)
}

func TestRunResetCommand(t *testing.T) {
	r, _ := run(t, "B\n:reset\n")
	assert.Equal(t, question.StateUnanswered, r.ctrls["france"].State())
	assert.Equal(t, question.LabelCheck, r.ctrls["france"].Label())
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	var out bytes.Buffer
	r, err := New(testAssessment(), strings.NewReader("B\n"), &out, question.PolicyPositional, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, r.Run(ctx), context.Canceled)
}

func TestParseChoice(t *testing.T) {
	i, err := parseChoice("2", 3)
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	i, err = parseChoice("c", 3)
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	_, err = parseChoice("d", 3)
	assert.Error(t, err)
	_, err = parseChoice("0", 3)
	assert.Error(t, err)
}
