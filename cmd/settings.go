package cmd

import (
	"fmt"

	"github.com/adamspd/medstudy/models"
	"github.com/adamspd/medstudy/utils"
	"github.com/spf13/cobra"
)

var settingsFlags struct {
	category  string
	size      int
	randomize bool
	showInfo  bool
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change the saved session settings",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		store, err := openStore()
		if err != nil {
			fmt.Fprintln(out, "❌ Database error:", err)
			return
		}
		defer store.Close()

		var req models.SessionSettingsRequest
		flags := cmd.Flags()
		if flags.Changed("category") {
			req.CategoryFilter = &settingsFlags.category
		}
		if flags.Changed("size") {
			req.Size = &settingsFlags.size
		}
		if flags.Changed("randomize") {
			req.Randomize = &settingsFlags.randomize
		}
		if flags.Changed("show-info") {
			req.ShowInfo = &settingsFlags.showInfo
		}

		var settings *models.SessionSettings
		if req == (models.SessionSettingsRequest{}) {
			settings, err = store.GetSettings()
		} else {
			if err := utils.ValidateSettingsRequest(&req); err != nil {
				fmt.Fprintln(out, "❌", err)
				return
			}
			settings, err = store.UpdateSettings(req)
			if err == nil {
				fmt.Fprintln(out, "✅ Settings saved")
			}
		}
		if err != nil {
			fmt.Fprintln(out, "❌ Settings error:", err)
			return
		}

		fmt.Fprintf(out, "Category:  %s\n", settings.CategoryFilter)
		fmt.Fprintf(out, "Size:      %d\n", settings.Size)
		fmt.Fprintf(out, "Randomize: %t\n", settings.Randomize)
		fmt.Fprintf(out, "Show info: %t\n", settings.ShowInfo)
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	f := settingsCmd.Flags()
	f.StringVar(&settingsFlags.category, "category", models.AllCategories, "category filter")
	f.IntVar(&settingsFlags.size, "size", 20, "questions per session")
	f.BoolVar(&settingsFlags.randomize, "randomize", true, "shuffle questions")
	f.BoolVar(&settingsFlags.showInfo, "show-info", true, "show explanations after answering")
}
