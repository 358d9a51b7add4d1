package store

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// Defaults applied when the corresponding NewSubscription field is left
// empty.
const (
	DefaultCategory = "Uncategorized"
	DefaultCurrency = "DKK"
)

// Subscription is a recurring payment tracked for a single owner.
//
// The id column is an integer in the schema, but downstream serialization
// expects the id as a string, so it is surfaced here in its decimal string
// form.
type Subscription struct {
	ID              string    `db:"id" json:"id"`
	Title           string    `db:"title" json:"title"`
	Amount          float64   `db:"amount" json:"amount"`
	RenewalDate     string    `db:"renewal_date" json:"renewal_date"`
	Category        string    `db:"category" json:"category"`
	LogoURL         *string   `db:"logo_url" json:"logo_url,omitempty"`
	Currency        string    `db:"currency" json:"currency"`
	TransactionDate *string   `db:"transaction_date" json:"transaction_date,omitempty"`
	OwnerID         int64     `db:"owner_id" json:"owner_id"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// NewSubscription carries the caller-supplied fields for CreateSubscription.
// Title, Amount, RenewalDate and OwnerID are required by the schema; the
// rest are optional. An empty Category or Currency takes DefaultCategory or
// DefaultCurrency. Values are stored verbatim: the store does not validate
// amount sign, date format or currency code.
type NewSubscription struct {
	Title           string
	Amount          float64
	RenewalDate     string
	OwnerID         int64
	Category        string
	LogoURL         *string
	Currency        string
	TransactionDate *string
}

// CreateSubscription inserts a new subscription and returns the created row.
// An OwnerID that does not reference an existing user surfaces as a
// constraint violation from the foreign key. The insert and the read-back
// share one transaction.
func (s *Store) CreateSubscription(sub NewSubscription) (*Subscription, error) {
	category := sub.Category
	if category == "" {
		category = DefaultCategory
	}
	currency := sub.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	var created Subscription
	err := s.db.WithTx(func(tx *sqlx.Tx) error {
		res, err := tx.Exec(`
			INSERT INTO subscriptions
			(title, amount, renewal_date, category, logo_url, currency, transaction_date, owner_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			sub.Title, sub.Amount, sub.RenewalDate, category,
			sub.LogoURL, currency, sub.TransactionDate, sub.OwnerID)
		if err != nil {
			return wrapQueryError(fmt.Sprintf("failed to insert subscription %s", sub.Title), err)
		}

		subscriptionId, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get inserted subscription id: %w", err)
		}

		err = tx.Get(&created, `
			SELECT id, title, amount, renewal_date, category, logo_url, currency, transaction_date, owner_id, created_at
			FROM subscriptions WHERE id = $1`, subscriptionId)
		if err != nil {
			return fmt.Errorf("failed to read back subscription %d: %w", subscriptionId, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetSubscriptionsByOwner returns every subscription belonging to ownerId,
// newest first. An owner with no subscriptions (or no such owner) yields an
// empty slice, not an error. Ids are monotonic, so they break ties between
// rows created within the same timestamp second.
func (s *Store) GetSubscriptionsByOwner(ownerId int64) ([]Subscription, error) {
	subscriptions := []Subscription{}
	err := s.db.GetDB().Select(&subscriptions, `
		SELECT id, title, amount, renewal_date, category, logo_url, currency, transaction_date, owner_id, created_at
		FROM subscriptions
		WHERE owner_id = $1
		ORDER BY created_at DESC, id DESC`, ownerId)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscriptions for owner %d: %w", ownerId, err)
	}
	return subscriptions, nil
}

// DeleteSubscription removes the subscription with the given id. Deleting an
// id that matches no row is not an error; the store does not distinguish a
// no-op delete from a real one.
func (s *Store) DeleteSubscription(subscriptionId int64) error {
	_, err := s.db.GetDB().Exec(`DELETE FROM subscriptions WHERE id = $1`, subscriptionId)
	if err != nil {
		return fmt.Errorf("failed to delete subscription %d: %w", subscriptionId, err)
	}
	return nil
}
