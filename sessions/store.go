// Package sessions keeps the active study runs of the local API in memory.
package sessions

import (
	"errors"
	"sync"
	"time"

	"github.com/adamspd/medstudy/models"
	"github.com/adamspd/medstudy/study"
	"github.com/adamspd/medstudy/utils"
	"github.com/google/uuid"
)

var ErrInvalidMode = errors.New("sessions: mode must be flashcards or quiz")

// Run is one study run: a session plus the cursor driving it.
type Run struct {
	ID         string
	Mode       study.Mode
	Settings   models.SessionSettings
	Flashcards *study.Flashcards
	Quiz       *study.Quiz
	CreatedAt  time.Time

	// mu guards the cursors and ExpiresAt.
	mu        sync.Mutex
	ExpiresAt time.Time
}

// Do runs fn with the run locked and returns the state it left behind.
func (r *Run) Do(fn func(r *Run) error) (View, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var err error
	if fn != nil {
		err = fn(r)
	}
	return r.view(), err
}

type Store struct {
	runs  map[string]*Run
	mutex sync.RWMutex
	ttl   time.Duration
	now   func() time.Time
	done  chan struct{}
	once  sync.Once
}

func NewStore(ttl time.Duration) *Store {
	store := &Store{
		runs: make(map[string]*Run),
		ttl:  ttl,
		now:  time.Now,
		done: make(chan struct{}),
	}

	// Start a cleanup goroutine
	go store.cleanupExpiredRuns(time.Hour)

	return store
}

// Create starts a run over items. Grades go to recorder.
func (s *Store) Create(mode study.Mode, items []models.Question, settings models.SessionSettings, recorder study.Recorder) (*Run, error) {
	if !mode.Valid() {
		return nil, ErrInvalidMode
	}

	now := s.now()
	run := &Run{
		ID:        uuid.NewString(),
		Mode:      mode,
		Settings:  settings,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	switch mode {
	case study.ModeFlashcards:
		run.Flashcards = study.NewFlashcards(items, recorder)
	case study.ModeQuiz:
		run.Quiz = study.NewQuiz(items, recorder)
	}

	s.mutex.Lock()
	s.runs[run.ID] = run
	s.mutex.Unlock()

	utils.LogSession("Started %s run %s with %d questions", mode, run.ID, len(items))
	return run, nil
}

// Get returns a live run and extends its lifetime.
func (s *Store) Get(id string) (*Run, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	run, exists := s.runs[id]
	if !exists {
		return nil, false
	}

	now := s.now()
	run.mu.Lock()
	defer run.mu.Unlock()
	if now.After(run.ExpiresAt) {
		delete(s.runs, id)
		return nil, false
	}
	run.ExpiresAt = now.Add(s.ttl)

	return run, true
}

func (s *Store) Delete(id string) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	_, exists := s.runs[id]
	delete(s.runs, id)
	return exists
}

func (s *Store) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.runs)
}

// Close stops the cleanup goroutine.
func (s *Store) Close() {
	s.once.Do(func() { close(s.done) })
}

// removeExpired drops every run past its expiry and returns how many went.
func (s *Store) removeExpired() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	now := s.now()
	cleaned := 0
	for id, run := range s.runs {
		run.mu.Lock()
		expired := now.After(run.ExpiresAt)
		run.mu.Unlock()
		if expired {
			delete(s.runs, id)
			cleaned++
		}
	}
	return cleaned
}

func (s *Store) cleanupExpiredRuns(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			if cleaned := s.removeExpired(); cleaned > 0 {
				utils.LogInfo("Cleaned up %d expired study runs", cleaned)
			}
		}
	}
}
