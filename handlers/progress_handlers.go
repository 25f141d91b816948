package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/adamspd/medstudy/db"
	"github.com/adamspd/medstudy/models"
	"github.com/adamspd/medstudy/utils"
)

type ProgressHandlers struct {
	db *db.DB
}

func NewProgressHandlers(database *db.DB) *ProgressHandlers {
	return &ProgressHandlers{db: database}
}

func (ph *ProgressHandlers) GetProgress(w http.ResponseWriter, r *http.Request) {
	ledger, err := ph.db.GetLedger()
	if err != nil {
		utils.LogError("Failed to load ledger: %v", err)
		http.Error(w, "Failed to load progress", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, ledger)
}

func (ph *ProgressHandlers) RecordProgress(w http.ResponseWriter, r *http.Request) {
	var req models.ProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.LogHTTP("Invalid JSON in progress request: %v", err)
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if err := ph.db.RecordStudy(req.QuestionID, req.Correct); err != nil {
		if errors.Is(err, db.ErrMissingQuestionID) {
			http.Error(w, "Missing required fields", http.StatusBadRequest)
			return
		}
		utils.LogError("Failed to record progress: %v", err)
		http.Error(w, "Failed to record progress", http.StatusInternalServerError)
		return
	}

	ledger, err := ph.db.GetLedger()
	if err != nil {
		http.Error(w, "Failed to load progress", http.StatusInternalServerError)
		return
	}

	utils.LogHTTP("Progress recorded for %s, correct: %t", req.QuestionID, req.Correct)
	writeJSON(w, http.StatusCreated, ledger)
}

func (ph *ProgressHandlers) GetProgressStats(w http.ResponseWriter, r *http.Request) {
	stats, err := ph.db.GetStats()
	if err != nil {
		utils.LogError("Failed to fetch stats: %v", err)
		http.Error(w, "Failed to fetch stats", http.StatusInternalServerError)
		return
	}

	utils.LogHTTP("Returning stats: %d/%d correct (%.1f%%)", stats.TotalCorrect, stats.TotalStudied, stats.Accuracy*100)
	writeJSON(w, http.StatusOK, stats)
}
