package cmd

import (
	"github.com/abhisek/quizshell/internal/preview"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Answer an assessment in line mode (no TUI)",
	Long: `Play an assessment over plain stdin/stdout.

Each question is printed with its parts numbered. Type an answer (or
n=answer when a question has several parts) and press Enter on an empty
line to press the question's button. Useful for scripting and for
checking a definition without a terminal UI.`,
	RunE: runPreview,
}

func runPreview(cmd *cobra.Command, args []string) error {
	rt, err := setup(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	r, err := preview.New(rt.def, cmd.InOrStdin(), cmd.OutOrStdout(), rt.policy, rt.logger)
	if err != nil {
		return err
	}
	return r.Run(cmd.Context())
}
