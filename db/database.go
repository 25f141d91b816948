package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adamspd/medstudy/utils"
	_ "github.com/mattn/go-sqlite3"
)

// Durable keys of the two state blobs
const (
	QuestionsKey = "medstudy.v1.questions"
	ProgressKey  = "medstudy.v1.progress"
)

type DB struct {
	*sql.DB

	// mu serializes read-modify-write cycles on the blobs
	mu  sync.Mutex
	now func() time.Time
}

// queryer is satisfied by both *sql.DB and *sql.Tx
type queryer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

func InitDB(dbPath string) (*DB, error) {
	utils.LogStartup("Initializing database at: %s", dbPath)

	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			utils.LogError("Failed to create data directory: %v", err)
			return nil, fmt.Errorf("cannot create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		utils.LogError("Failed to open database: %v", err)
		return nil, err
	}

	if err := db.Ping(); err != nil {
		utils.LogError("Failed to ping database: %v", err)
		db.Close()
		return nil, err
	}

	utils.LogStartup("Database connection established")

	if err := createTables(db); err != nil {
		utils.LogError("Failed to create tables: %v", err)
		db.Close()
		return nil, err
	}

	utils.LogStartup("Database tables initialized successfully")
	return &DB{DB: db, now: time.Now}, nil
}

// SetClock replaces the time source used for day keys and timestamps.
func (db *DB) SetClock(now func() time.Time) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.now = now
}

func (db *DB) Now() time.Time {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.now()
}

func createTables(db *sql.DB) error {
	queries := []string{
		// Question store and progress ledger blobs
		`CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS preferences (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			category_filter TEXT NOT NULL DEFAULT 'All',
			randomize BOOLEAN NOT NULL DEFAULT 1,
			session_size INTEGER NOT NULL DEFAULT 20 CHECK (session_size BETWEEN 1 AND 200),
			show_info BOOLEAN NOT NULL DEFAULT 1,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS import_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source_name TEXT NOT NULL,
			fingerprint TEXT NOT NULL,
			accepted INTEGER NOT NULL DEFAULT 0,
			discarded INTEGER NOT NULL DEFAULT 0,
			imported_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for i, query := range queries {
		utils.LogDB("Creating table %d/%d", i+1, len(queries))
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_import_history_fingerprint ON import_history(fingerprint)",
	}

	for _, index := range indexes {
		if _, err := db.Exec(index); err != nil {
			utils.LogDB("Failed to create index (non-fatal): %v", err)
		}
	}

	return nil
}

// getBlob returns the stored value for key, or nil when it was never written.
func getBlob(q queryer, key string) ([]byte, error) {
	var value string
	err := q.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return []byte(value), nil
}

func putBlob(q queryer, key string, value []byte, at time.Time) error {
	_, err := q.Exec(`
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, string(value), at)
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func deleteBlob(q queryer, key string) error {
	if _, err := q.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}
