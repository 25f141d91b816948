package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"math/rand"
	"net/http"

	"github.com/adamspd/medstudy/db"
	"github.com/adamspd/medstudy/deck"
	"github.com/adamspd/medstudy/models"
	"github.com/adamspd/medstudy/sessions"
	"github.com/adamspd/medstudy/study"
	"github.com/adamspd/medstudy/utils"
	"github.com/gorilla/mux"
)

// CreateSessionRequest starts a run. Unset fields fall back to the stored
// preferences.
type CreateSessionRequest struct {
	Mode      study.Mode `json:"mode"`
	Category  *string    `json:"category,omitempty"`
	Randomize *bool      `json:"randomize,omitempty"`
	Size      *int       `json:"size,omitempty"`
	ShowInfo  *bool      `json:"show_info,omitempty"`
	Seed      *int64     `json:"seed,omitempty"`
}

type gradeRequest struct {
	Correct *bool `json:"correct"`
}

type selectRequest struct {
	Option *int `json:"option"`
}

var errWrongMode = errors.New("action not available in this mode")

type SessionHandlers struct {
	db   *db.DB
	runs *sessions.Store
}

func NewSessionHandlers(database *db.DB, runs *sessions.Store) *SessionHandlers {
	return &SessionHandlers{db: database, runs: runs}
}

func (sh *SessionHandlers) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.LogHTTP("Invalid JSON in session request: %v", err)
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if !req.Mode.Valid() {
		http.Error(w, "mode must be flashcards or quiz", http.StatusBadRequest)
		return
	}

	overrides := models.SessionSettingsRequest{
		CategoryFilter: req.Category,
		Randomize:      req.Randomize,
		Size:           req.Size,
		ShowInfo:       req.ShowInfo,
	}
	if err := utils.ValidateSettingsRequest(&overrides); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	settings, err := sh.db.GetSettings()
	if err != nil {
		utils.LogError("Failed to get settings: %v", err)
		http.Error(w, "Failed to get preferences", http.StatusInternalServerError)
		return
	}
	overrides.Apply(settings)

	store, err := sh.db.GetQuestions()
	if err != nil {
		utils.LogError("Failed to fetch questions: %v", err)
		http.Error(w, "Failed to fetch questions", http.StatusInternalServerError)
		return
	}

	var rng *rand.Rand
	if req.Seed != nil {
		rng = rand.New(rand.NewSource(*req.Seed))
	}
	items := deck.BuildSession(store, *settings, rng)

	run, err := sh.runs.Create(req.Mode, items, *settings, sh.db)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	view, _ := run.Do(nil)
	writeJSON(w, http.StatusCreated, view)
}

func (sh *SessionHandlers) GetSession(w http.ResponseWriter, r *http.Request) {
	run, ok := sh.lookup(w, r)
	if !ok {
		return
	}
	view, _ := run.Do(nil)
	writeJSON(w, http.StatusOK, view)
}

func (sh *SessionHandlers) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !sh.runs.Delete(id) {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}
	utils.LogSession("Ended run %s", id)
	w.WriteHeader(http.StatusNoContent)
}

func (sh *SessionHandlers) SessionAction(w http.ResponseWriter, r *http.Request) {
	action := mux.Vars(r)["action"]

	var apply func(run *sessions.Run) error
	var outcome *study.Outcome

	switch action {
	case "reveal":
		apply = func(run *sessions.Run) error {
			if run.Flashcards == nil {
				return errWrongMode
			}
			run.Flashcards.Reveal()
			return nil
		}
	case "grade":
		var req gradeRequest
		if err := decodeBody(r, &req); err != nil || req.Correct == nil {
			http.Error(w, "grade needs a boolean \"correct\"", http.StatusBadRequest)
			return
		}
		apply = func(run *sessions.Run) error {
			if run.Flashcards == nil {
				return errWrongMode
			}
			return run.Flashcards.Grade(*req.Correct)
		}
	case "select":
		var req selectRequest
		if err := decodeBody(r, &req); err != nil || req.Option == nil {
			http.Error(w, "select needs an integer \"option\"", http.StatusBadRequest)
			return
		}
		apply = func(run *sessions.Run) error {
			if run.Quiz == nil {
				return errWrongMode
			}
			return run.Quiz.SelectOption(*req.Option)
		}
	case "submit":
		apply = func(run *sessions.Run) error {
			if run.Quiz == nil {
				return errWrongMode
			}
			out, err := run.Quiz.Submit()
			if err != nil {
				return err
			}
			outcome = &out
			return nil
		}
	case "next":
		apply = func(run *sessions.Run) error {
			if run.Quiz != nil {
				run.Quiz.Next()
			} else {
				run.Flashcards.Next()
			}
			return nil
		}
	case "prev":
		apply = func(run *sessions.Run) error {
			if run.Quiz != nil {
				run.Quiz.Prev()
			} else {
				run.Flashcards.Prev()
			}
			return nil
		}
	default:
		http.Error(w, "Unknown session action", http.StatusNotFound)
		return
	}

	run, ok := sh.lookup(w, r)
	if !ok {
		return
	}

	view, err := run.Do(apply)
	if err != nil {
		status := actionStatus(err)
		if status == http.StatusInternalServerError {
			utils.LogError("Session %s action %s failed: %v", run.ID, action, err)
		}
		http.Error(w, err.Error(), status)
		return
	}
	view.Outcome = outcome

	utils.LogSession("Run %s: %s (index %d/%d)", run.ID, action, view.Index+1, view.Total)
	writeJSON(w, http.StatusOK, view)
}

func (sh *SessionHandlers) lookup(w http.ResponseWriter, r *http.Request) (*sessions.Run, bool) {
	id := mux.Vars(r)["id"]
	run, ok := sh.runs.Get(id)
	if !ok {
		http.Error(w, "Session not found", http.StatusNotFound)
		return nil, false
	}
	return run, true
}

func actionStatus(err error) int {
	switch {
	case errors.Is(err, errWrongMode),
		errors.Is(err, study.ErrOptionOutOfRange),
		errors.Is(err, study.ErrEmptySession):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func decodeBody(r *http.Request, v interface{}) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
