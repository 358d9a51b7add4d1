package store

import (
	"testing"
)

func TestCreateUserRoundTrip(t *testing.T) {
	s := newTestStore(t)
	email := testEmail()

	created, err := s.CreateUser(email, "argon2id$v=19$...")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if created.ID <= 0 {
		t.Errorf("Created user id = %d, want > 0", created.ID)
	}
	if created.Email != email {
		t.Errorf("Created user email = %q, want %q", created.Email, email)
	}
	if created.HashedPassword != "argon2id$v=19$..." {
		t.Errorf("Created user hashed password = %q, stored value was not opaque", created.HashedPassword)
	}
	if created.CreatedAt.IsZero() {
		t.Error("Created user has zero created_at timestamp")
	}

	fetched, err := s.GetUserByEmail(email)
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if fetched == nil {
		t.Fatal("GetUserByEmail returned nil for a user that was just created")
	}
	if *fetched != *created {
		t.Errorf("Fetched user %+v does not match created user %+v", fetched, created)
	}
}

func TestGetUserByEmailAbsent(t *testing.T) {
	s := newTestStore(t)

	user, err := s.GetUserByEmail("nobody@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail on an absent email returned error: %v", err)
	}
	if user != nil {
		t.Errorf("GetUserByEmail on an absent email returned %+v, want nil", user)
	}
}

func TestGetUserByEmailIsCaseSensitive(t *testing.T) {
	s := newTestStore(t)
	email := testEmail()

	if _, err := s.CreateUser(email, "hash"); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	// The store performs no normalization; a differently-cased email is a
	// different email.
	user, err := s.GetUserByEmail("X" + email)
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if user != nil {
		t.Errorf("GetUserByEmail matched a different email: %+v", user)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	email := testEmail()

	if _, err := s.CreateUser(email, "hash1"); err != nil {
		t.Fatalf("First CreateUser failed: %v", err)
	}

	_, err := s.CreateUser(email, "hash2")
	if err == nil {
		t.Fatal("Second CreateUser with the same email succeeded")
	}
	if !IsConstraintViolation(err) {
		t.Errorf("Duplicate email error is not a ConstraintViolation: %v", err)
	}

	var count int
	if err := s.db.GetDB().Get(&count, "SELECT COUNT(*) FROM users WHERE email = $1", email); err != nil {
		t.Fatalf("Failed to count users: %v", err)
	}
	if count != 1 {
		t.Errorf("Found %d users with email %q after duplicate insert, want 1", count, email)
	}
}
