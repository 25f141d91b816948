package cmd

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/adamspd/medstudy/db"
	"github.com/adamspd/medstudy/deck"
	"github.com/adamspd/medstudy/models"
	"github.com/adamspd/medstudy/study"
	"github.com/adamspd/medstudy/utils"
	"github.com/spf13/cobra"
)

// runFlags are shared by the flashcards and quiz commands.
type runFlags struct {
	category  string
	size      int
	randomize bool
	seed      int64
}

func (f *runFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.category, "category", "c", "", "study one category (default: saved setting)")
	cmd.Flags().IntVarP(&f.size, "size", "n", 0, "number of questions (default: saved setting)")
	cmd.Flags().BoolVar(&f.randomize, "randomize", true, "shuffle the questions")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "shuffle seed, for a repeatable order")
}

// prepareRun resolves the session settings for this run and builds its items.
func (f *runFlags) prepareRun(cmd *cobra.Command, store *db.DB) ([]models.Question, models.SessionSettings, error) {
	settings, err := store.GetSettings()
	if err != nil {
		return nil, models.SessionSettings{}, err
	}

	var req models.SessionSettingsRequest
	if cmd.Flags().Changed("category") {
		req.CategoryFilter = &f.category
	}
	if cmd.Flags().Changed("size") {
		req.Size = &f.size
	}
	if cmd.Flags().Changed("randomize") {
		req.Randomize = &f.randomize
	}
	if err := utils.ValidateSettingsRequest(&req); err != nil {
		return nil, models.SessionSettings{}, err
	}
	req.Apply(settings)

	questions, err := store.GetQuestions()
	if err != nil {
		return nil, models.SessionSettings{}, err
	}

	var rng *rand.Rand
	if cmd.Flags().Changed("seed") {
		rng = rand.New(rand.NewSource(f.seed))
	}
	return deck.BuildSession(questions, *settings, rng), *settings, nil
}

var (
	flashcardFlags runFlags
	quizFlags      runFlags
)

var flashcardsCmd = &cobra.Command{
	Use:   "flashcards",
	Short: "Study with self-graded flashcards",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		store, err := openStore()
		if err != nil {
			fmt.Fprintln(out, "❌ Database error:", err)
			return
		}
		defer store.Close()

		items, settings, err := flashcardFlags.prepareRun(cmd, store)
		if err != nil {
			fmt.Fprintln(out, "❌", err)
			return
		}
		if len(items) == 0 {
			fmt.Fprintln(out, "✅ No questions match these settings.")
			return
		}

		runFlashcards(cmd.InOrStdin(), out, study.NewFlashcards(items, store), settings.ShowInfo)
	},
}

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take a scored multiple-choice quiz",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		store, err := openStore()
		if err != nil {
			fmt.Fprintln(out, "❌ Database error:", err)
			return
		}
		defer store.Close()

		items, settings, err := quizFlags.prepareRun(cmd, store)
		if err != nil {
			fmt.Fprintln(out, "❌", err)
			return
		}
		if len(items) == 0 {
			fmt.Fprintln(out, "✅ No questions match these settings.")
			return
		}

		runQuiz(cmd.InOrStdin(), out, study.NewQuiz(items, store), settings.ShowInfo)
	},
}

func init() {
	flashcardFlags.register(flashcardsCmd)
	quizFlags.register(quizCmd)
	rootCmd.AddCommand(flashcardsCmd, quizCmd)
}

func printCard(out io.Writer, q models.Question, index, total int) {
	fmt.Fprintln(out, "\n========================================")
	fmt.Fprintf(out, "[%d/%d] %s  %s\n", index+1, total, q.DisplayID(), q.Category)
	fmt.Fprintln(out, "========================================")
	fmt.Fprintln(out, q.Prompt)
}

func printOptions(out io.Writer, q models.Question, selected int, reveal bool) {
	for i, opt := range q.Options {
		mark := "  "
		switch {
		case reveal && q.IsCorrect(i):
			mark = "✅"
		case reveal && i == selected:
			mark = "❌"
		case i == selected:
			mark = "👉"
		}
		fmt.Fprintf(out, "%s %s) %s\n", mark, models.OptionLabel(i), opt)
	}
}

func printExplanation(out io.Writer, q models.Question, showInfo bool) {
	if showInfo && q.Explanation != "" {
		fmt.Fprintln(out, "\nℹ️ ", q.Explanation)
	}
}

// runFlashcards drives a flashcard run from line input until it completes
// or the user quits.
func runFlashcards(in io.Reader, out io.Writer, fc *study.Flashcards, showInfo bool) {
	reader := bufio.NewReader(in)
	graded := 0

	for !fc.Complete() {
		q, _ := fc.Current()
		printCard(out, q, fc.Index(), fc.Len())

		if fc.Revealed() {
			printOptions(out, q, -1, true)
			printExplanation(out, q, showInfo)
			fmt.Fprint(out, "\nDid you get it right? [y]es / [n]o / [h]ide / [p]rev / [s]kip / [q]uit: ")
		} else {
			fmt.Fprint(out, "\n[Enter] reveal / [p]rev / [s]kip / [q]uit: ")
		}

		line, err := reader.ReadString('\n')
		choice := strings.ToLower(strings.TrimSpace(line))
		if err != nil && choice == "" {
			break
		}

		switch {
		case choice == "q":
			fmt.Fprintf(out, "\n👋 Stopped after %d cards.\n", graded)
			return
		case choice == "p":
			fc.Prev()
		case choice == "s":
			fc.Next()
		case !fc.Revealed() || choice == "h":
			fc.Reveal()
		case choice == "y" || choice == "n":
			if err := fc.Grade(choice == "y"); err != nil {
				fmt.Fprintln(out, "❌ Could not save progress:", err)
				continue
			}
			graded++
		default:
			fmt.Fprintln(out, "⚠️ Unknown choice.")
		}
	}

	if fc.Complete() {
		fmt.Fprintf(out, "\n🎉 Run complete! %d cards graded.\n", graded)
	}
}

// runQuiz drives a quiz run from line input until every question is
// answered or the user quits.
func runQuiz(in io.Reader, out io.Writer, quiz *study.Quiz, showInfo bool) {
	reader := bufio.NewReader(in)

	for !quiz.Complete() {
		q, _ := quiz.Current()
		printCard(out, q, quiz.Index(), quiz.Len())

		selected, _ := quiz.Selected()
		if quiz.Answered() {
			printOptions(out, q, selected, true)
			printExplanation(out, q, showInfo)
			fmt.Fprint(out, "\n[n]ext / [p]rev / [q]uit: ")
		} else {
			printOptions(out, q, -1, false)
			fmt.Fprintf(out, "\nAnswer [A-%s] / [n]ext / [p]rev / [q]uit: ", models.OptionLabel(len(q.Options)-1))
		}

		line, err := reader.ReadString('\n')
		choice := strings.ToUpper(strings.TrimSpace(line))
		if err != nil && choice == "" {
			break
		}

		switch choice {
		case "Q":
			fmt.Fprintf(out, "\n👋 Stopped. Score: %d/%d\n", quiz.Score(), quiz.Len())
			return
		case "N":
			quiz.Next()
			continue
		case "P":
			quiz.Prev()
			continue
		}

		option, ok := parseOption(choice)
		if !ok || quiz.Answered() {
			fmt.Fprintln(out, "⚠️ Unknown choice.")
			continue
		}
		if err := quiz.SelectOption(option); err != nil {
			fmt.Fprintln(out, "⚠️", err)
			continue
		}
		outcome, err := quiz.Submit()
		if err != nil {
			fmt.Fprintln(out, "❌ Could not save progress:", err)
			continue
		}
		if outcome.Correct {
			fmt.Fprintln(out, "✅ Correct!")
		} else {
			fmt.Fprintf(out, "❌ Incorrect. The answer was %s.\n", models.OptionLabel(outcome.CorrectIndex))
		}
		printExplanation(out, q, showInfo)
		quiz.Next()
	}

	if quiz.Complete() {
		fmt.Fprintf(out, "\n🎉 Quiz complete! Score: %d/%d\n", quiz.Score(), quiz.Len())
	}
}

// parseOption accepts a letter label ("B") or a 1-based number ("2").
func parseOption(s string) (int, bool) {
	if len(s) == 1 && s[0] >= 'A' && s[0] <= 'Z' {
		return int(s[0] - 'A'), true
	}
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err == nil && n >= 1 {
		return n - 1, true
	}
	return 0, false
}
