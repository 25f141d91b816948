package db

import (
	"database/sql"

	"github.com/adamspd/medstudy/models"
	"github.com/adamspd/medstudy/utils"
)

func (db *DB) GetSettings() (*models.SessionSettings, error) {
	utils.LogDB("Getting session settings")

	var s models.SessionSettings
	err := db.QueryRow(`
		SELECT category_filter, randomize, session_size, show_info, updated_at
		FROM preferences WHERE id = 1
	`).Scan(&s.CategoryFilter, &s.Randomize, &s.Size, &s.ShowInfo, &s.UpdatedAt)

	if err == sql.ErrNoRows {
		utils.LogDB("No settings stored, creating defaults")
		return db.CreateDefaultSettings()
	}
	if err != nil {
		utils.LogError("Failed to get settings: %v", err)
		return nil, err
	}
	return &s, nil
}

func (db *DB) CreateDefaultSettings() (*models.SessionSettings, error) {
	defaults := models.GetDefaultSettings()
	defaults.UpdatedAt = db.Now()

	if err := db.writeSettings(defaults); err != nil {
		utils.LogError("Failed to create default settings: %v", err)
		return nil, err
	}
	return defaults, nil
}

// UpdateSettings applies the non-nil fields of req. Callers validate req
// first with utils.ValidateSettingsRequest.
func (db *DB) UpdateSettings(req models.SessionSettingsRequest) (*models.SessionSettings, error) {
	utils.LogDB("Updating session settings")

	current, err := db.GetSettings()
	if err != nil {
		return nil, err
	}
	req.Apply(current)
	current.UpdatedAt = db.Now()

	if err := db.writeSettings(current); err != nil {
		utils.LogError("Failed to update settings: %v", err)
		return nil, err
	}

	utils.LogDB("Settings updated: category=%s randomize=%t size=%d show_info=%t",
		current.CategoryFilter, current.Randomize, current.Size, current.ShowInfo)
	return current, nil
}

func (db *DB) writeSettings(s *models.SessionSettings) error {
	_, err := db.Exec(`
		INSERT INTO preferences (id, category_filter, randomize, session_size, show_info, updated_at)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			category_filter = excluded.category_filter,
			randomize = excluded.randomize,
			session_size = excluded.session_size,
			show_info = excluded.show_info,
			updated_at = excluded.updated_at
	`, s.CategoryFilter, s.Randomize, s.Size, s.ShowInfo, s.UpdatedAt)
	return err
}
