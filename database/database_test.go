package database

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
)

func newTestDatabase(t *testing.T) *Database {
	t.Helper()

	db, err := Connect("sqlite3", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
	})

	_, err = db.GetDB().Exec(`CREATE TABLE scratch (value TEXT NOT NULL)`)
	if err != nil {
		t.Fatalf("Failed to create scratch table: %v", err)
	}
	return db
}

func countScratch(t *testing.T, db *Database) int {
	t.Helper()
	var count int
	if err := db.GetDB().Get(&count, "SELECT COUNT(*) FROM scratch"); err != nil {
		t.Fatalf("Failed to count scratch rows: %v", err)
	}
	return count
}

func TestWithTxCommits(t *testing.T) {
	db := newTestDatabase(t)

	err := db.WithTx(func(tx *sqlx.Tx) error {
		_, err := tx.Exec(`INSERT INTO scratch (value) VALUES ($1)`, "kept")
		return err
	})
	if err != nil {
		t.Fatalf("WithTx failed: %v", err)
	}

	if count := countScratch(t, db); count != 1 {
		t.Errorf("Got %d rows after commit, want 1", count)
	}
}

func TestWithTxRollsBackOnError(t *testing.T) {
	db := newTestDatabase(t)
	failure := errors.New("handler failed")

	err := db.WithTx(func(tx *sqlx.Tx) error {
		if _, err := tx.Exec(`INSERT INTO scratch (value) VALUES ($1)`, "discarded"); err != nil {
			return err
		}
		return failure
	})
	if !errors.Is(err, failure) {
		t.Fatalf("WithTx returned %v, want the handler error", err)
	}

	if count := countScratch(t, db); count != 0 {
		t.Errorf("Got %d rows after rollback, want 0", count)
	}
}
