package db

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/adamspd/medstudy/models"
	"github.com/adamspd/medstudy/progress"
	"github.com/adamspd/medstudy/utils"
)

var ErrMissingQuestionID = errors.New("db: question id is required")

func (db *DB) loadLedger(q queryer) (models.Ledger, error) {
	raw, err := getBlob(q, ProgressKey)
	if err != nil {
		return models.Ledger{}, err
	}
	return progress.DecodeLedger(raw), nil
}

// GetLedger returns a snapshot of the progress ledger.
func (db *DB) GetLedger() (models.Ledger, error) {
	utils.LogDB("Executing query: GetLedger")

	ledger, err := db.loadLedger(db.DB)
	if err != nil {
		utils.LogError("GetLedger failed: %v", err)
		return models.Ledger{}, err
	}
	return ledger, nil
}

// RecordStudy applies one graded answer to the ledger and persists it. The
// whole ledger is rewritten in a single transaction, so a failure leaves
// the previous ledger in place.
func (db *DB) RecordStudy(questionID string, correct bool) error {
	questionID = strings.TrimSpace(questionID)
	if questionID == "" {
		return ErrMissingQuestionID
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	utils.LogProgress("Recording answer: question %s, correct %t", questionID, correct)
	start := time.Now()

	tx, err := db.Begin()
	if err != nil {
		utils.LogError("Failed to start transaction: %v", err)
		return err
	}
	defer tx.Rollback()

	ledger, err := db.loadLedger(tx)
	if err != nil {
		utils.LogError("RecordStudy failed to read ledger: %v", err)
		return err
	}

	now := db.now()
	updated := progress.RecordStudy(ledger, questionID, correct, now)

	raw, err := progress.EncodeLedger(updated)
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}
	if err := putBlob(tx, ProgressKey, raw, now); err != nil {
		utils.LogError("RecordStudy failed to write ledger: %v", err)
		return err
	}

	if err := tx.Commit(); err != nil {
		utils.LogError("Failed to commit transaction: %v", err)
		return err
	}

	day := updated.Daily[progress.DayKey(now)]
	utils.LogProgress("Recorded %s in %v: day %s %d studied (%d correct), streak %d",
		questionID, time.Since(start), progress.DayKey(now), day.StudiedCount, day.CorrectCount, updated.Streak)
	return nil
}

// GetStats summarises the ledger against the current question store.
func (db *DB) GetStats() (*models.Stats, error) {
	utils.LogDB("Calculating stats")
	start := time.Now()

	questions, err := db.GetQuestions()
	if err != nil {
		return nil, err
	}
	ledger, err := db.GetLedger()
	if err != nil {
		return nil, err
	}

	stats := progress.Summarize(ledger, questions, db.Now())

	utils.LogDB("Stats calculated: %d/%d correct (%s), streak %d, %d categories (%v)",
		stats.TotalCorrect, stats.TotalStudied, progress.FormatPct(stats.Accuracy),
		stats.Streak, len(stats.Categories), time.Since(start))
	return stats, nil
}

// ResetProgress deletes the ledger. The next read returns an empty one.
func (db *DB) ResetProgress() error {
	db.mu.Lock()
	defer db.mu.Unlock()

	utils.LogDB("Resetting progress ledger")
	return deleteBlob(db.DB, ProgressKey)
}
