package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// User is a registered account. The store treats hashed_password as opaque;
// hashing happens upstream of this layer.
type User struct {
	ID             int64     `db:"id" json:"id"`
	Email          string    `db:"email" json:"email"`
	HashedPassword string    `db:"hashed_password" json:"hashed_password"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// GetUserByEmail looks up a user by exact email match. No normalization is
// applied to the email. A missing user is not an error; the result is
// (nil, nil).
func (s *Store) GetUserByEmail(email string) (*User, error) {
	var user User
	err := s.db.GetDB().Get(&user,
		"SELECT id, email, hashed_password, created_at FROM users WHERE email = $1", email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

// CreateUser inserts a new user and returns the created row, including the
// assigned id and timestamp. A duplicate email surfaces as a constraint
// violation from the unique index; there is no pre-check. The insert and the
// read-back share one transaction.
func (s *Store) CreateUser(email string, hashedPassword string) (*User, error) {
	var user User
	err := s.db.WithTx(func(tx *sqlx.Tx) error {
		res, err := tx.Exec(`INSERT INTO users (email, hashed_password) VALUES ($1, $2)`,
			email, hashedPassword)
		if err != nil {
			return wrapQueryError(fmt.Sprintf("failed to insert user %s", email), err)
		}

		userId, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get inserted user id: %w", err)
		}

		err = tx.Get(&user,
			"SELECT id, email, hashed_password, created_at FROM users WHERE id = $1", userId)
		if err != nil {
			return fmt.Errorf("failed to read back user %d: %w", userId, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}
