package store

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/subtrackapp/subtrack/database"
)

const usersSchema = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	email TEXT UNIQUE NOT NULL,
	hashed_password TEXT NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`

const subscriptionsSchema = `
CREATE TABLE IF NOT EXISTS subscriptions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	amount REAL NOT NULL,
	renewal_date TEXT NOT NULL,
	category TEXT DEFAULT 'Uncategorized',
	logo_url TEXT,
	currency TEXT DEFAULT 'DKK',
	transaction_date TEXT,
	owner_id INTEGER NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (owner_id) REFERENCES users(id) ON DELETE CASCADE
)`

// Store provides CRUD access to the subscription-tracking schema in a single
// SQLite database file.
type Store struct {
	db *database.Database
}

// Open connects to the SQLite database at path. Foreign-key enforcement is
// enabled on the connection so deleting a user cascades to its
// subscriptions.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on", path)
	db, err := database.Connect("sqlite3", dsn)
	if err != nil {
		return nil, NewStorageUnavailableError(fmt.Sprintf("failed to open database %s", path), err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// InitializeSchema creates the users and subscriptions tables if they do not
// exist. Calling it repeatedly is a no-op once the schema is in place.
func (s *Store) InitializeSchema() error {
	err := s.db.WithTx(func(tx *sqlx.Tx) error {
		if _, err := tx.Exec(usersSchema); err != nil {
			return fmt.Errorf("failed to create users table: %w", err)
		}
		if _, err := tx.Exec(subscriptionsSchema); err != nil {
			return fmt.Errorf("failed to create subscriptions table: %w", err)
		}
		return nil
	})
	if err != nil {
		return NewStorageUnavailableError("failed to initialize schema", err)
	}
	fmt.Println("Store tables initialized (if not exists).")
	return nil
}
