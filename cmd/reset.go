package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	resetProgress  bool
	resetQuestions bool
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear recorded progress or the question bank",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		if !resetProgress && !resetQuestions {
			fmt.Fprintln(out, "⚠️ Pass --progress and/or --questions.")
			return
		}

		store, err := openStore()
		if err != nil {
			fmt.Fprintln(out, "❌ Database error:", err)
			return
		}
		defer store.Close()

		if resetProgress {
			if err := store.ResetProgress(); err != nil {
				fmt.Fprintln(out, "❌ Error clearing progress:", err)
				return
			}
			fmt.Fprintln(out, "🗑️ Progress cleared")
		}
		if resetQuestions {
			if err := store.ClearQuestions(); err != nil {
				fmt.Fprintln(out, "❌ Error clearing questions:", err)
				return
			}
			fmt.Fprintln(out, "🗑️ Question bank cleared. The bundled set is restored on next start.")
		}
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVar(&resetProgress, "progress", false, "clear the progress ledger")
	resetCmd.Flags().BoolVar(&resetQuestions, "questions", false, "clear the question bank")
}
