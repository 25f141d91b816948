package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adamspd/medstudy/deck"
	"github.com/adamspd/medstudy/models"
	"github.com/adamspd/medstudy/utils"
	"github.com/spf13/cobra"
)

var (
	importStdin bool
	importName  string
)

var importCmd = &cobra.Command{
	Use:   "import [files...]",
	Short: "Import questions from YAML or JSON files",
	Long: `Import questions from one or more YAML or JSON files, or from text
pasted on stdin with --stdin. Questions that need an image are skipped.
Questions with an existing id replace the stored version.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()

		var sources []models.ImportSource
		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				fmt.Fprintln(out, "❌ Cannot read", path+":", err)
				continue
			}
			sources = append(sources, models.ImportSource{Name: filepath.Base(path), Data: data})
		}
		if importStdin {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				fmt.Fprintln(out, "❌ Cannot read stdin:", err)
				return
			}
			sources = append(sources, models.ImportSource{Name: importName, Data: data})
		}
		if len(sources) == 0 {
			fmt.Fprintln(out, "⚠️ Nothing to import. Pass files or --stdin.")
			return
		}

		store, err := openStore()
		if err != nil {
			fmt.Fprintln(out, "❌ Database error:", err)
			return
		}
		defer store.Close()

		for _, src := range sources {
			if seen, _ := store.SeenFingerprint(utils.Fingerprint(src.Data)); seen {
				fmt.Fprintf(out, "🔁 %s was imported before; matching questions will be updated.\n", src.Name)
			}
		}

		result, err := store.ImportQuestions(sources...)
		if result != nil {
			for _, src := range result.Sources {
				if src.Error != "" {
					fmt.Fprintf(out, "❌ %s: %s\n", src.Name, src.Error)
					continue
				}
				fmt.Fprintf(out, "📄 %s: %d accepted, %d discarded\n", src.Name, src.Accepted, src.Discarded)
			}
		}
		if err != nil {
			if errors.Is(err, deck.ErrNoImportable) {
				fmt.Fprintln(out, "⚠️ No valid questions found. The question bank was not changed.")
				return
			}
			fmt.Fprintln(out, "❌ Import failed:", err)
			return
		}

		fmt.Fprintf(out, "✅ Imported %d questions (%d new, %d updated). %d in the bank.\n",
			result.ImportedQuestions, result.NewQuestions, result.UpdatedQuestions, result.StoreSize)
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().BoolVar(&importStdin, "stdin", false, "read questions pasted on stdin")
	importCmd.Flags().StringVar(&importName, "name", "pasted.yaml", "source name for --stdin (a .json suffix parses as JSON)")
}
