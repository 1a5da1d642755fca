// Package store persists the contact book as a single snapshot per data
// directory. Two backends implement the same contract: a versioned JSON
// snapshot file (default) and a SQLite database.
//
// Load on a data directory that has no snapshot yet returns a fresh empty
// book; every other read or decode failure propagates to the caller.
package store

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/rolodex/pkg/book"
)

// Store serializes and restores a whole Book. Save overwrites any
// existing snapshot; Load reconstructs the key set, per-record name,
// ordered phones, and birthday exactly as saved.
type Store interface {
	Save(b *book.Book) error
	Load() (*book.Book, error)
}

// Open validates config and returns the Store for its backend.
func Open(config Config) (Store, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	switch config.Backend {
	case BackendJSON:
		return newJSONStore(config.DataDir), nil
	case BackendSQLite:
		return newSQLiteStore(config.DataDir), nil
	default:
		return nil, ErrBackendUnknown
	}
}

// ErrCorruptSnapshot wraps decode failures so callers can distinguish a
// damaged snapshot from plain I/O errors.
var ErrCorruptSnapshot = errors.New("corrupt snapshot")

func corruptf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrCorruptSnapshot, fmt.Sprintf(format, args...))
}
