package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/adamspd/medstudy/db"
	"github.com/adamspd/medstudy/models"
	"github.com/adamspd/medstudy/utils"
)

type PreferencesHandlers struct {
	db *db.DB
}

func NewPreferencesHandlers(database *db.DB) *PreferencesHandlers {
	return &PreferencesHandlers{db: database}
}

func (ph *PreferencesHandlers) GetPreferences(w http.ResponseWriter, r *http.Request) {
	settings, err := ph.db.GetSettings()
	if err != nil {
		utils.LogError("Failed to get preferences: %v", err)
		http.Error(w, "Failed to get preferences", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (ph *PreferencesHandlers) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var req models.SessionSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.LogHTTP("Invalid JSON in preferences update request: %v", err)
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if err := utils.ValidateSettingsRequest(&req); err != nil {
		utils.LogHTTP("Invalid preference values: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	settings, err := ph.db.UpdateSettings(req)
	if err != nil {
		utils.LogError("Failed to update preferences: %v", err)
		http.Error(w, "Failed to update preferences", http.StatusInternalServerError)
		return
	}

	utils.LogHTTP("Updated preferences")
	writeJSON(w, http.StatusOK, settings)
}
