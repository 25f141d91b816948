package study

import (
	"errors"
	"fmt"

	"github.com/adamspd/medstudy/models"
)

type call struct {
	id      string
	correct bool
}

// fakeRecorder keeps every call and fails while err is set.
type fakeRecorder struct {
	calls []call
	err   error
}

func (r *fakeRecorder) RecordStudy(questionID string, correct bool) error {
	if r.err != nil {
		return r.err
	}
	r.calls = append(r.calls, call{questionID, correct})
	return nil
}

var errStorage = errors.New("disk full")

func items(n int) []models.Question {
	out := make([]models.Question, n)
	for i := range out {
		out[i] = models.Question{
			ID:                 fmt.Sprintf("C__%d", i+1),
			Number:             i + 1,
			Category:           "C",
			Options:            []string{"w", "x", "y", "z"},
			CorrectOptionIndex: i % 4,
		}
	}
	return out
}
