package sessions

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/adamspd/medstudy/models"
	"github.com/adamspd/medstudy/study"
)

type nopRecorder struct{ calls int }

func (r *nopRecorder) RecordStudy(string, bool) error {
	r.calls++
	return nil
}

func testItems() []models.Question {
	return []models.Question{
		{ID: "A__1", Number: 1, Category: "A", Prompt: "one", Options: []string{"x", "y"}, CorrectOptionIndex: 1, Explanation: "why"},
		{ID: "A__2", Number: 2, Category: "A", Prompt: "two", Options: []string{"x", "y"}, CorrectOptionIndex: 0},
	}
}

func newTestStore(t *testing.T, ttl time.Duration) (*Store, *time.Time) {
	t.Helper()
	s := NewStore(ttl)
	t.Cleanup(s.Close)
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	return s, &now
}

func TestCreateAndGet(t *testing.T) {
	s, _ := newTestStore(t, time.Hour)

	run, err := s.Create(study.ModeQuiz, testItems(), models.SessionSettings{ShowInfo: true}, &nopRecorder{})
	if err != nil {
		t.Fatal(err)
	}
	if run.ID == "" || run.Quiz == nil || run.Flashcards != nil {
		t.Fatalf("run = %+v", run)
	}

	got, ok := s.Get(run.ID)
	if !ok || got != run {
		t.Fatal("Get did not return the created run")
	}
	if s.Len() != 1 {
		t.Fatalf("Len = %d", s.Len())
	}
}

func TestCreateInvalidMode(t *testing.T) {
	s, _ := newTestStore(t, time.Hour)
	if _, err := s.Create("exam", testItems(), models.SessionSettings{}, &nopRecorder{}); !errors.Is(err, ErrInvalidMode) {
		t.Fatalf("err = %v, want ErrInvalidMode", err)
	}
}

func TestExpiry(t *testing.T) {
	s, now := newTestStore(t, time.Hour)
	run, _ := s.Create(study.ModeFlashcards, testItems(), models.SessionSettings{}, &nopRecorder{})
	other, _ := s.Create(study.ModeFlashcards, testItems(), models.SessionSettings{}, &nopRecorder{})

	*now = now.Add(50 * time.Minute)
	if _, ok := s.Get(run.ID); !ok {
		t.Fatal("run expired early")
	}

	// the Get above extended run but not other
	*now = now.Add(30 * time.Minute)
	if _, ok := s.Get(run.ID); !ok {
		t.Fatal("access did not extend the run")
	}
	if n := s.removeExpired(); n != 1 {
		t.Fatalf("removeExpired = %d, want 1", n)
	}
	if _, ok := s.Get(other.ID); ok {
		t.Fatal("expired run still available")
	}
}

func TestConcurrentGetAndDo(t *testing.T) {
	s, _ := newTestStore(t, time.Hour)
	run, _ := s.Create(study.ModeFlashcards, testItems(), models.SessionSettings{}, &nopRecorder{})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if _, ok := s.Get(run.ID); !ok {
				t.Error("run not found")
			}
		}()
		go func() {
			defer wg.Done()
			if v, _ := run.Do(nil); v.ExpiresAt.IsZero() {
				t.Error("view has no expiry")
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.removeExpired()
	}()
	wg.Wait()
}

func TestDelete(t *testing.T) {
	s, _ := newTestStore(t, time.Hour)
	run, _ := s.Create(study.ModeQuiz, testItems(), models.SessionSettings{}, &nopRecorder{})

	if !s.Delete(run.ID) {
		t.Fatal("Delete returned false for a live run")
	}
	if s.Delete(run.ID) {
		t.Fatal("Delete returned true twice")
	}
	if _, ok := s.Get(run.ID); ok {
		t.Fatal("deleted run still available")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	s := NewStore(time.Minute)
	s.Close()
	s.Close()
}

func TestViewHidesAnswerUntilRevealed(t *testing.T) {
	s, _ := newTestStore(t, time.Hour)
	run, _ := s.Create(study.ModeFlashcards, testItems(), models.SessionSettings{ShowInfo: true}, &nopRecorder{})

	v, _ := run.Do(nil)
	if v.Current == nil || v.Current.CorrectIndex != nil || v.Current.Explanation != "" {
		t.Fatalf("hidden view = %+v", v.Current)
	}
	if v.Total != 2 || v.Current.DisplayID != "#1" {
		t.Fatalf("view = %+v", v)
	}

	v, _ = run.Do(func(r *Run) error {
		r.Flashcards.Reveal()
		return nil
	})
	if !v.Revealed || v.Current.CorrectIndex == nil || *v.Current.CorrectIndex != 1 || v.Current.Explanation != "why" {
		t.Fatalf("revealed view = %+v", v.Current)
	}
}

func TestViewQuizAnswered(t *testing.T) {
	s, _ := newTestStore(t, time.Hour)
	rec := &nopRecorder{}
	run, _ := s.Create(study.ModeQuiz, testItems(), models.SessionSettings{ShowInfo: false}, rec)

	v, err := run.Do(func(r *Run) error {
		if err := r.Quiz.SelectOption(1); err != nil {
			return err
		}
		_, err := r.Quiz.Submit()
		return err
	})
	if err != nil {
		t.Fatal(err)
	}
	if !v.Answered || v.Score != 1 || v.Selected == nil || *v.Selected != 1 {
		t.Fatalf("view = %+v", v)
	}
	if v.Current.CorrectIndex == nil || v.Current.Explanation != "" {
		t.Fatalf("card = %+v, want answer shown without explanation", v.Current)
	}
	if rec.calls != 1 {
		t.Fatalf("calls = %d", rec.calls)
	}
}

func TestViewEmptyRun(t *testing.T) {
	s, _ := newTestStore(t, time.Hour)
	run, _ := s.Create(study.ModeQuiz, nil, models.SessionSettings{}, &nopRecorder{})
	v, _ := run.Do(nil)
	if v.Current != nil || v.Total != 0 || v.Complete {
		t.Fatalf("view = %+v", v)
	}
}
