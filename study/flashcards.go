package study

import (
	"fmt"

	"github.com/adamspd/medstudy/models"
)

// Flashcards shows one card at a time; the answer is hidden until revealed
// and the user grades themselves.
type Flashcards struct {
	items    []models.Question
	recorder Recorder
	index    int
	revealed bool
	complete bool
}

func NewFlashcards(items []models.Question, recorder Recorder) *Flashcards {
	f := &Flashcards{recorder: recorder}
	f.Reset(items)
	return f
}

// Reset starts over on a new session.
func (f *Flashcards) Reset(items []models.Question) {
	f.items = items
	f.index = 0
	f.revealed = false
	f.complete = false
}

func (f *Flashcards) Current() (models.Question, bool) {
	if len(f.items) == 0 {
		return models.Question{}, false
	}
	return f.items[f.index], true
}

func (f *Flashcards) Index() int     { return f.index }
func (f *Flashcards) Len() int       { return len(f.items) }
func (f *Flashcards) Revealed() bool { return f.revealed }

// Complete reports whether the last card has been graded.
func (f *Flashcards) Complete() bool { return f.complete }

func (f *Flashcards) Reveal() {
	f.revealed = !f.revealed
}

// Grade records the current card and moves on. If recording fails the
// cursor stays where it is.
func (f *Flashcards) Grade(correct bool) error {
	current, ok := f.Current()
	if !ok {
		return ErrEmptySession
	}
	if err := f.recorder.RecordStudy(current.ID, correct); err != nil {
		return fmt.Errorf("grade %s: %w", current.ID, err)
	}
	if f.index == len(f.items)-1 {
		f.complete = true
	}
	f.Next()
	return nil
}

func (f *Flashcards) Next() {
	f.revealed = false
	f.index = clamp(f.index+1, len(f.items))
}

func (f *Flashcards) Prev() {
	f.revealed = false
	f.index = clamp(f.index-1, len(f.items))
}
