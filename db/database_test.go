package db

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) (*DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "medstudy.db")
	db, err := InitDB(path)
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, path
}

func fixedClock(s string) func() time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04", s, time.Local)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func TestInitDBCreatesTables(t *testing.T) {
	db, _ := openTestDB(t)
	for _, table := range []string{"kv", "preferences", "import_history"} {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		if err != nil {
			t.Fatalf("table %s: %v", table, err)
		}
	}
}

func TestBlobRoundTrip(t *testing.T) {
	db, _ := openTestDB(t)

	got, err := getBlob(db.DB, "missing")
	if err != nil || got != nil {
		t.Fatalf("missing blob = %q, %v", got, err)
	}

	now := time.Now()
	if err := putBlob(db.DB, "k", []byte("one"), now); err != nil {
		t.Fatal(err)
	}
	if err := putBlob(db.DB, "k", []byte("two"), now); err != nil {
		t.Fatal(err)
	}
	got, err = getBlob(db.DB, "k")
	if err != nil || string(got) != "two" {
		t.Fatalf("blob = %q, %v", got, err)
	}

	if err := deleteBlob(db.DB, "k"); err != nil {
		t.Fatal(err)
	}
	if got, _ := getBlob(db.DB, "k"); got != nil {
		t.Fatalf("blob after delete = %q", got)
	}
}
