package cmd

import (
	"fmt"
	"io"

	"github.com/abhisek/quizshell/internal/assessment"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check an assessment definition and print a summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := assessment.Load(args[0])
		if err != nil {
			return err
		}
		printSummary(cmd.OutOrStdout(), def)
		return nil
	},
}

func printSummary(w io.Writer, def *assessment.Assessment) {
	fmt.Fprintf(w, "%s: %d questions, %d responses\n",
		def.Title, len(def.Questions), def.ResponseCount())
	for i, q := range def.Questions {
		fmt.Fprintf(w, "  %d. %-12s %d responses", i+1, q.ID, len(q.Responses))
		if len(q.Responses) == 0 {
			fmt.Fprint(w, "  (warning: cannot be answered)")
		}
		fmt.Fprintln(w)
	}
}
