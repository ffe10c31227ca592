package cmd

import (
	"fmt"
	"log/slog"

	"github.com/abhisek/quizshell/internal/app"
	"github.com/abhisek/quizshell/internal/assessment"
	"github.com/abhisek/quizshell/internal/config"
	"github.com/abhisek/quizshell/internal/logging"
	"github.com/abhisek/quizshell/internal/question"
	"github.com/spf13/cobra"
)

// runtime is everything a runner needs once config is resolved.
type runtime struct {
	def    *assessment.Assessment
	policy question.Policy
	logger *slog.Logger
	close  func() error
}

// setup resolves config, opens the log and loads the assessment. The
// built-in sample is used when no file is configured.
func setup(cmd *cobra.Command) (*runtime, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return setupFrom(cfg)
}

func setupFrom(cfg config.Config) (*runtime, error) {
	policy, err := cfg.Policy()
	if err != nil {
		return nil, fmt.Errorf("aggregation policy: %w", err)
	}

	var def *assessment.Assessment
	if cfg.AssessmentFile != "" {
		def, err = assessment.Load(cfg.AssessmentFile)
	} else {
		def, err = assessment.Sample()
	}
	if err != nil {
		return nil, err
	}

	logger, closeLog, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	logger.Info("assessment loaded",
		"title", def.Title, "questions", len(def.Questions), "policy", policy.String())

	return &runtime{def: def, policy: policy, logger: logger, close: closeLog}, nil
}

// runApp loads the assessment and launches the TUI.
func runApp(cmd *cobra.Command) error {
	rt, err := setup(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	return app.Run(app.Options{
		Assessment: rt.def,
		Policy:     rt.policy,
		Logger:     rt.logger,
	})
}
