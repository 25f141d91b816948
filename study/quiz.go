package study

import (
	"fmt"

	"github.com/adamspd/medstudy/models"
)

// Outcome describes what a Submit call did.
type Outcome struct {
	Submitted    bool `json:"submitted"`
	Correct      bool `json:"correct"`
	CorrectIndex int  `json:"correct_index"`
}

// Quiz asks one question at a time and keeps a running score.
//
// Each question can be graded once per run. Moving to a question that was
// already answered shows it answered, with the submitted option selected.
type Quiz struct {
	items    []models.Question
	recorder Recorder
	index    int
	selected int
	answers  []int
	score    int
}

const noSelection = -1

func NewQuiz(items []models.Question, recorder Recorder) *Quiz {
	q := &Quiz{recorder: recorder}
	q.Reset(items)
	return q
}

// Reset starts over on a new session, clearing answers and score.
func (q *Quiz) Reset(items []models.Question) {
	q.items = items
	q.index = 0
	q.selected = noSelection
	q.score = 0
	q.answers = make([]int, len(items))
	for i := range q.answers {
		q.answers[i] = noSelection
	}
}

func (q *Quiz) Current() (models.Question, bool) {
	if len(q.items) == 0 {
		return models.Question{}, false
	}
	return q.items[q.index], true
}

func (q *Quiz) Index() int { return q.index }
func (q *Quiz) Len() int   { return len(q.items) }
func (q *Quiz) Score() int { return q.score }

func (q *Quiz) Answered() bool {
	return len(q.items) > 0 && q.answers[q.index] != noSelection
}

// AnsweredCount is the number of questions graded in this run.
func (q *Quiz) AnsweredCount() int {
	n := 0
	for _, a := range q.answers {
		if a != noSelection {
			n++
		}
	}
	return n
}

func (q *Quiz) Selected() (int, bool) {
	return q.selected, q.selected != noSelection
}

// SelectOption picks an answer. It does nothing once the question has been
// answered.
func (q *Quiz) SelectOption(option int) error {
	current, ok := q.Current()
	if !ok {
		return ErrEmptySession
	}
	if q.Answered() {
		return nil
	}
	if !current.HasOption(option) {
		return fmt.Errorf("%w: %d of %d", ErrOptionOutOfRange, option, len(current.Options))
	}
	q.selected = option
	return nil
}

// Submit grades the selected option. It is a no-op when the question is
// already answered or nothing is selected.
func (q *Quiz) Submit() (Outcome, error) {
	current, ok := q.Current()
	if !ok {
		return Outcome{}, ErrEmptySession
	}
	if q.Answered() {
		return Outcome{CorrectIndex: current.CorrectOptionIndex}, nil
	}
	if q.selected == noSelection {
		return Outcome{CorrectIndex: noSelection}, nil
	}

	correct := current.IsCorrect(q.selected)
	if err := q.recorder.RecordStudy(current.ID, correct); err != nil {
		return Outcome{}, fmt.Errorf("submit %s: %w", current.ID, err)
	}
	if correct {
		q.score++
	}
	q.answers[q.index] = q.selected

	return Outcome{Submitted: true, Correct: correct, CorrectIndex: current.CorrectOptionIndex}, nil
}

// Complete reports whether every question of the run has been answered.
func (q *Quiz) Complete() bool {
	return len(q.items) > 0 && q.AnsweredCount() == len(q.items)
}

func (q *Quiz) Next() {
	q.move(q.index + 1)
}

func (q *Quiz) Prev() {
	q.move(q.index - 1)
}

func (q *Quiz) move(to int) {
	q.index = clamp(to, len(q.items))
	q.selected = noSelection
	if len(q.items) > 0 {
		q.selected = q.answers[q.index]
	}
}
