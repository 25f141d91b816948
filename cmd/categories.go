package cmd

import (
	"fmt"

	"github.com/adamspd/medstudy/deck"
	"github.com/adamspd/medstudy/models"
	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List question categories",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		store, err := openStore()
		if err != nil {
			fmt.Fprintln(out, "❌ Database error:", err)
			return
		}
		defer store.Close()

		questions, err := store.GetQuestions()
		if err != nil {
			fmt.Fprintln(out, "❌ Error fetching questions:", err)
			return
		}

		counts := deck.CountByCategory(questions)
		fmt.Fprintln(out, "📚 Categories:")
		for _, name := range deck.Categories(questions) {
			if name == models.AllCategories {
				fmt.Fprintf(out, "- %s (%d)\n", name, len(questions))
				continue
			}
			fmt.Fprintf(out, "- %s (%d)\n", name, counts[name])
		}
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
