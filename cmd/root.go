// Package cmd is the medstudy command line: local study runs, imports and
// the local API server.
package cmd

import (
	"fmt"
	"os"

	"github.com/adamspd/medstudy/db"
	"github.com/adamspd/medstudy/utils"
	"github.com/spf13/cobra"
)

var (
	cfg    utils.Config
	dbPath string
)

var rootCmd = &cobra.Command{
	Use:   "medstudy",
	Short: "Study medical multiple-choice questions offline",
	Long: `medstudy keeps a local bank of multiple-choice questions and lets you
study them as flashcards or as a scored quiz. Every graded answer is
recorded in a progress ledger with daily counts and a study streak.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the command line with the loaded configuration.
func Execute(c utils.Config) {
	cfg = c
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database file (default $MEDSTUDY_DB_PATH or ~/.medstudy/medstudy.db)")
}

// openStore opens the database and seeds the bundled questions into an
// empty store.
func openStore() (*db.DB, error) {
	path := dbPath
	if path == "" {
		path = cfg.DBPath
	}
	if path == "" {
		path = utils.DefaultDBPath()
	}

	store, err := db.InitDB(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if _, err := store.SeedQuestions(); err != nil {
		store.Close()
		return nil, fmt.Errorf("seed questions: %w", err)
	}
	return store, nil
}
