// Package study drives one study run at a time: a cursor over a session
// that grades answers through a Recorder.
package study

import "errors"

var (
	ErrEmptySession     = errors.New("study: empty session")
	ErrOptionOutOfRange = errors.New("study: option out of range")
)

// Recorder stores one graded answer. It is called exactly once per grade.
type Recorder interface {
	RecordStudy(questionID string, correct bool) error
}

// RecorderFunc adapts a function to Recorder.
type RecorderFunc func(questionID string, correct bool) error

func (f RecorderFunc) RecordStudy(questionID string, correct bool) error {
	return f(questionID, correct)
}

// Mode names a study interaction style.
type Mode string

const (
	ModeFlashcards Mode = "flashcards"
	ModeQuiz       Mode = "quiz"
)

func (m Mode) Valid() bool {
	return m == ModeFlashcards || m == ModeQuiz
}

func clamp(i, n int) int {
	if i > n-1 {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
