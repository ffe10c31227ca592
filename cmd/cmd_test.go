package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abhisek/quizshell/internal/assessment"
	"github.com/abhisek/quizshell/internal/config"
	"github.com/abhisek/quizshell/internal/question"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const capitals = `
title: Capitals
questions:
  - id: france
    responses:
      - kind: multiple_choice
        prompt: Capital of France?
        choices: [Lyon, Paris]
        correct: 1
  - id: blank
    responses: []
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func execute(t *testing.T, in string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(in))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestValidateCommand(t *testing.T) {
	path := writeFile(t, "capitals.yaml", capitals)

	out, err := execute(t, "", "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Capitals: 2 questions, 1 responses")
	assert.Contains(t, out, "1. france")
	assert.Contains(t, out, "(warning: cannot be answered)")
}

func TestValidateCommandRejectsInvalid(t *testing.T) {
	path := writeFile(t, "broken.json", `{"title": "Broken", "questions": []}`)

	_, err := execute(t, "", "validate", path)
	require.Error(t, err)

	var verr *assessment.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, path, verr.Source)
}

func TestValidateCommandNeedsFile(t *testing.T) {
	_, err := execute(t, "", "validate")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "quizshell (devel)\n", out)
}

func TestPreviewCommand(t *testing.T) {
	path := writeFile(t, "capitals.yaml", capitals)

	out, err := execute(t, "2\n\n:quit\n", "preview", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Capitals")
	assert.Contains(t, out, "── Question 1/2 ──")
	assert.Contains(t, out, "[Next]")
}

func TestResolveConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("QUIZSHELL_FILE", "env.yaml")
	t.Setenv("QUIZSHELL_AGGREGATION", "severity")

	c := &cobra.Command{}
	c.Flags().String("file", "", "")
	c.Flags().String("log", "", "")
	c.Flags().String("aggregation", "", "")
	require.NoError(t, c.Flags().Set("file", "flag.yaml"))

	cfg, err := resolveConfig(c)
	require.NoError(t, err)
	assert.Equal(t, "flag.yaml", cfg.AssessmentFile)
	assert.Equal(t, "severity", cfg.Aggregation)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestSetupFromUsesSample(t *testing.T) {
	rt, err := setupFrom(config.Config{Aggregation: "severity", LogLevel: "info"})
	require.NoError(t, err)
	defer rt.close()

	want, err := assessment.Sample()
	require.NoError(t, err)
	assert.Equal(t, want.Title, rt.def.Title)
	assert.Equal(t, question.PolicySeverity, rt.policy)
}

func TestSetupFromRejectsBadLogLevel(t *testing.T) {
	_, err := setupFrom(config.Config{LogLevel: "loud"})
	assert.Error(t, err)
}

func TestSetupFromRejectsUnknownPolicy(t *testing.T) {
	_, err := setupFrom(config.Config{Aggregation: "majority"})
	assert.Error(t, err)
}

func TestSetupFromWritesLog(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "quizshell.log")
	rt, err := setupFrom(config.Config{LogFile: logPath, LogLevel: "info"})
	require.NoError(t, err)
	require.NoError(t, rt.close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "assessment loaded")
}
