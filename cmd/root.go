package cmd

import (
	"github.com/abhisek/quizshell/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quizshell",
	Short: "Terminal quiz runner",
	Long:  "Quizshell runs multi-part assessments in the terminal, one question panel at a time.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("file", "", "Assessment definition, YAML or JSON (overrides QUIZSHELL_FILE env var)")
	rootCmd.PersistentFlags().String("log", "", "Write logs to this file (overrides QUIZSHELL_LOG env var)")
	rootCmd.PersistentFlags().String("aggregation", "", "Aggregation policy: positional or severity (overrides QUIZSHELL_AGGREGATION env var)")

	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig loads the environment config and applies flag overrides.
// Flags win over environment variables.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if p, _ := cmd.Flags().GetString("file"); p != "" {
		cfg.AssessmentFile = p
	}
	if p, _ := cmd.Flags().GetString("log"); p != "" {
		cfg.LogFile = p
	}
	if p, _ := cmd.Flags().GetString("aggregation"); p != "" {
		cfg.Aggregation = p
	}
	return cfg, nil
}
