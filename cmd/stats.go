package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/adamspd/medstudy/progress"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show study progress and streak",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		store, err := openStore()
		if err != nil {
			fmt.Fprintln(out, "❌ Database error:", err)
			return
		}
		defer store.Close()

		stats, err := store.GetStats()
		if err != nil {
			fmt.Fprintln(out, "❌ Error computing stats:", err)
			return
		}

		fmt.Fprintln(out, "📊 Statistics")
		fmt.Fprintln(out, "-------------")
		fmt.Fprintf(out, "Questions in bank: %d\n", stats.TotalQuestions)
		fmt.Fprintf(out, "Answers recorded:  %d\n", stats.TotalStudied)
		fmt.Fprintf(out, "Accuracy:          %s\n", progress.FormatPct(stats.Accuracy))
		fmt.Fprintf(out, "Streak:            %d day(s)\n", stats.Streak)
		if stats.StoredStreak != stats.Streak {
			fmt.Fprintf(out, "Last streak:       %d day(s)\n", stats.StoredStreak)
		}
		if stats.LastStudyDate != "" {
			fmt.Fprintf(out, "Last studied:      %s\n", stats.LastStudyDate)
		}

		fmt.Fprintln(out, "\n📅 Last 30 days")
		for _, day := range stats.Timeline {
			if day.Studied == 0 {
				continue
			}
			fmt.Fprintf(out, "%s  %-20s %d (%d correct)\n", day.Day, strings.Repeat("█", min(day.Studied, 20)), day.Studied, day.Correct)
		}

		if len(stats.Categories) > 0 {
			fmt.Fprintln(out, "\n📚 By category")
			names := make([]string, 0, len(stats.Categories))
			for name := range stats.Categories {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				c := stats.Categories[name]
				fmt.Fprintf(out, "- %s: %d/%d\n", name, c.Correct, c.Answered)
			}
		}

		if len(stats.WeakAreas) > 0 {
			fmt.Fprintln(out, "\n⚠️ Needs work")
			for _, w := range stats.WeakAreas {
				fmt.Fprintf(out, "- %s (%s): %s over %d attempts\n", w.QuestionID, w.Category, progress.FormatPct(w.Accuracy), w.Attempts)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
