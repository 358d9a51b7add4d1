package store

// Package store owns the subscription-tracking schema and its CRUD
// operations over a single-file SQLite database. A Store is constructed with
// the path to the database file, so callers (and tests) can point it at any
// file rather than a process-wide default.
//
// The store performs no business validation: hashed passwords are opaque,
// dates and currency codes are stored verbatim, and constraint enforcement
// is left entirely to the storage engine.
