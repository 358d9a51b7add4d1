package database

// Database manages the SQL connection and provides the transaction scope
// every write operation runs inside.

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

type Database struct {
	db *sqlx.DB
}

// Connect creates a new database connection.
func Connect(driverName string, dataSourceName string) (*Database, error) {
	db, err := sqlx.Connect(driverName, dataSourceName)
	if err != nil {
		return nil, err
	}
	return &Database{db: db}, nil
}

// WithTx runs fn inside a transaction, committing if fn succeeds and rolling
// back if it returns an error.
func (db *Database) WithTx(fn func(tx *sqlx.Tx) error) error {
	tx, err := db.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (db *Database) GetDB() *sqlx.DB {
	return db.db
}

func (db *Database) Close() error {
	return db.db.Close()
}
