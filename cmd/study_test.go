package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/adamspd/medstudy/models"
	"github.com/adamspd/medstudy/study"
)

type countingRecorder struct {
	correct, incorrect int
}

func (r *countingRecorder) RecordStudy(_ string, correct bool) error {
	if correct {
		r.correct++
	} else {
		r.incorrect++
	}
	return nil
}

func cliItems() []models.Question {
	return []models.Question{
		{ID: "A__1", Number: 1, Category: "A", Prompt: "first?", Options: []string{"yes", "no"}, CorrectOptionIndex: 0, Explanation: "because"},
		{ID: "A__2", Number: 2, Category: "A", Prompt: "second?", Options: []string{"red", "green", "blue"}, CorrectOptionIndex: 2},
	}
}

func TestRunQuiz(t *testing.T) {
	rec := &countingRecorder{}
	quiz := study.NewQuiz(cliItems(), rec)
	var out bytes.Buffer

	// answer the first correctly, go back and try again, then miss the second
	runQuiz(strings.NewReader("a\np\nb\nn\nb\n"), &out, quiz, true)

	if rec.correct != 1 || rec.incorrect != 1 {
		t.Fatalf("recorded %d correct %d incorrect, want 1 and 1", rec.correct, rec.incorrect)
	}
	text := out.String()
	for _, want := range []string{"✅ Correct!", "because", "The answer was C", "Score: 1/2"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
}

func TestRunQuizQuit(t *testing.T) {
	rec := &countingRecorder{}
	var out bytes.Buffer
	runQuiz(strings.NewReader("q\n"), &out, study.NewQuiz(cliItems(), rec), false)
	if rec.correct+rec.incorrect != 0 || !strings.Contains(out.String(), "Stopped") {
		t.Fatalf("output:\n%s", out.String())
	}
}

func TestRunFlashcards(t *testing.T) {
	rec := &countingRecorder{}
	fc := study.NewFlashcards(cliItems(), rec)
	var out bytes.Buffer

	// reveal and grade the first, reveal and fail the second
	runFlashcards(strings.NewReader("\ny\n\nn\n"), &out, fc, false)

	if rec.correct != 1 || rec.incorrect != 1 {
		t.Fatalf("recorded %d correct %d incorrect", rec.correct, rec.incorrect)
	}
	if !fc.Complete() || !strings.Contains(out.String(), "2 cards graded") {
		t.Fatalf("output:\n%s", out.String())
	}
	if strings.Contains(out.String(), "because") {
		t.Fatal("explanation shown with show-info off")
	}
}

func TestRunFlashcardsEOF(t *testing.T) {
	rec := &countingRecorder{}
	fc := study.NewFlashcards(cliItems(), rec)
	var out bytes.Buffer
	runFlashcards(strings.NewReader(""), &out, fc, true)
	if fc.Complete() || rec.correct+rec.incorrect != 0 {
		t.Fatal("run advanced without input")
	}
}

func TestParseOption(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"A", 0, true},
		{"C", 2, true},
		{"1", 0, true},
		{"3", 2, true},
		{"0", 0, false},
		{"", 0, false},
		{"AB", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseOption(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("parseOption(%q) = %d %v, want %d %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
