package db

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/adamspd/medstudy/data"
	"github.com/adamspd/medstudy/deck"
	"github.com/adamspd/medstudy/models"
	"github.com/adamspd/medstudy/utils"
)

// decodeQuestions reads a stored question store; anything unreadable is
// treated as an empty store.
func decodeQuestions(raw []byte) []models.Question {
	if len(raw) == 0 {
		return []models.Question{}
	}
	var questions []models.Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		utils.LogError("Stored question set is unreadable, using an empty set: %v", err)
		return []models.Question{}
	}
	valid := questions[:0]
	for _, q := range questions {
		if q.ID == "" {
			continue
		}
		valid = append(valid, q)
	}
	// collapse duplicate ids a hand-edited blob might contain
	return deck.Merge(nil, valid)
}

func (db *DB) loadQuestions(q queryer) ([]models.Question, error) {
	raw, err := getBlob(q, QuestionsKey)
	if err != nil {
		return nil, err
	}
	return decodeQuestions(raw), nil
}

func (db *DB) saveQuestions(q queryer, questions []models.Question) error {
	raw, err := json.Marshal(questions)
	if err != nil {
		return fmt.Errorf("encode questions: %w", err)
	}
	return putBlob(q, QuestionsKey, raw, db.now())
}

// GetQuestions returns the question store in its stored order.
func (db *DB) GetQuestions() ([]models.Question, error) {
	utils.LogDB("Executing query: GetQuestions")
	start := time.Now()

	questions, err := db.loadQuestions(db.DB)
	if err != nil {
		utils.LogError("GetQuestions failed: %v", err)
		return nil, err
	}

	utils.LogDB("GetQuestions completed: %d questions in %v", len(questions), time.Since(start))
	return questions, nil
}

// GetQuestionsByCategory returns the store narrowed to one category; "All"
// returns everything.
func (db *DB) GetQuestionsByCategory(category string) ([]models.Question, error) {
	questions, err := db.GetQuestions()
	if err != nil {
		return nil, err
	}
	if category == "" || category == models.AllCategories {
		return questions, nil
	}
	filtered := make([]models.Question, 0, len(questions))
	for _, q := range questions {
		if q.Category == category {
			filtered = append(filtered, q)
		}
	}
	return filtered, nil
}

// SeedQuestions fills an empty question store from the bundled set. It
// returns the number of questions now stored.
func (db *DB) SeedQuestions() (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	existing, err := db.loadQuestions(db.DB)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		utils.LogDB("Question store holds %d questions, no seeding needed", len(existing))
		return len(existing), nil
	}

	utils.LogStartup("Question store is empty, seeding from %s", data.BundledName)
	result, err := db.importLocked(models.ImportSource{Name: data.BundledName, Data: data.Bundled()})
	if err != nil {
		utils.LogError("Failed to seed bundled questions: %v", err)
		return 0, err
	}
	return result.StoreSize, nil
}

// ImportQuestions merges the importable questions of every source into the
// store. When nothing importable is found, or the write fails, the store is
// left as it was.
func (db *DB) ImportQuestions(sources ...models.ImportSource) (*models.ImportResult, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.importLocked(sources...)
}

func (db *DB) importLocked(sources ...models.ImportSource) (*models.ImportResult, error) {
	tx, err := db.Begin()
	if err != nil {
		utils.LogError("Failed to start transaction: %v", err)
		return nil, err
	}
	defer tx.Rollback()

	existing, err := db.loadQuestions(tx)
	if err != nil {
		return nil, err
	}

	merged, result, err := deck.ImportSources(existing, sources...)
	if err != nil {
		return result, err
	}

	if err := db.saveQuestions(tx, merged); err != nil {
		utils.LogError("Failed to store imported questions: %v", err)
		return nil, err
	}

	at := db.now()
	for _, src := range result.Sources {
		if src.Error != "" {
			continue
		}
		if _, err := tx.Exec(`
			INSERT INTO import_history (source_name, fingerprint, accepted, discarded, imported_at)
			VALUES (?, ?, ?, ?, ?)
		`, src.Name, src.Fingerprint, src.Accepted, src.Discarded, at); err != nil {
			utils.LogError("Failed to record import history for %s: %v", src.Name, err)
			return nil, fmt.Errorf("record import history: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		utils.LogError("Failed to commit transaction: %v", err)
		return nil, err
	}

	return result, nil
}

// GetImportHistory returns the most recent imports first.
func (db *DB) GetImportHistory(limit int) ([]models.ImportRecord, error) {
	utils.LogDB("Executing query: GetImportHistory(%d)", limit)
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.Query(`
		SELECT id, source_name, fingerprint, accepted, discarded, imported_at
		FROM import_history
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		utils.LogError("GetImportHistory failed: %v", err)
		return nil, err
	}
	defer rows.Close()

	records := make([]models.ImportRecord, 0)
	for rows.Next() {
		var r models.ImportRecord
		if err := rows.Scan(&r.ID, &r.SourceName, &r.Fingerprint, &r.Accepted, &r.Discarded, &r.ImportedAt); err != nil {
			utils.LogError("Failed to scan import history row: %v", err)
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// SeenFingerprint reports whether a source with this fingerprint was
// imported before.
func (db *DB) SeenFingerprint(fingerprint string) (bool, error) {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM import_history WHERE fingerprint = ?", fingerprint).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ClearQuestions empties the question store. Progress is kept.
func (db *DB) ClearQuestions() error {
	db.mu.Lock()
	defer db.mu.Unlock()

	utils.LogDB("Clearing question store")
	return deleteBlob(db.DB, QuestionsKey)
}
