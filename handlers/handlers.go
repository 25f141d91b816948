package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/adamspd/medstudy/db"
	"github.com/adamspd/medstudy/sessions"
	"github.com/adamspd/medstudy/utils"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// API wrapper to hold all handlers
type API struct {
	questionHandlers    *QuestionHandlers
	progressHandlers    *ProgressHandlers
	preferencesHandlers *PreferencesHandlers
	sessionHandlers     *SessionHandlers
}

func NewAPI(database *db.DB, runs *sessions.Store) *API {
	return &API{
		questionHandlers:    NewQuestionHandlers(database),
		progressHandlers:    NewProgressHandlers(database),
		preferencesHandlers: NewPreferencesHandlers(database),
		sessionHandlers:     NewSessionHandlers(database, runs),
	}
}

func NewRouter(database *db.DB, runs *sessions.Store, allowedOrigins []string) http.Handler {
	api := NewAPI(database, runs)

	r := mux.NewRouter()
	r.Use(recoveryMiddleware, loggingMiddleware)

	r.HandleFunc("/health", healthCheck).Methods(http.MethodGet)

	// Question store
	r.HandleFunc("/questions", api.questionHandlers.GetQuestions).Methods(http.MethodGet)
	r.HandleFunc("/categories", api.questionHandlers.GetCategories).Methods(http.MethodGet)
	r.HandleFunc("/import", api.questionHandlers.ImportQuestions).Methods(http.MethodPost)
	r.HandleFunc("/imports", api.questionHandlers.GetImportHistory).Methods(http.MethodGet)

	// Progress ledger
	r.HandleFunc("/progress", api.progressHandlers.GetProgress).Methods(http.MethodGet)
	r.HandleFunc("/progress", api.progressHandlers.RecordProgress).Methods(http.MethodPost)
	r.HandleFunc("/progress/stats", api.progressHandlers.GetProgressStats).Methods(http.MethodGet)

	r.HandleFunc("/preferences", api.preferencesHandlers.GetPreferences).Methods(http.MethodGet)
	r.HandleFunc("/preferences", api.preferencesHandlers.UpdatePreferences).Methods(http.MethodPut)

	// Study runs
	r.HandleFunc("/sessions", api.sessionHandlers.CreateSession).Methods(http.MethodPost)
	r.HandleFunc("/sessions/{id}", api.sessionHandlers.GetSession).Methods(http.MethodGet)
	r.HandleFunc("/sessions/{id}", api.sessionHandlers.DeleteSession).Methods(http.MethodDelete)
	r.HandleFunc("/sessions/{id}/{action}", api.sessionHandlers.SessionAction).Methods(http.MethodPost)

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})

	return c.Handler(r)
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	utils.LogHTTP("Health check requested")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		utils.LogError("Failed to encode response: %v", err)
	}
}
