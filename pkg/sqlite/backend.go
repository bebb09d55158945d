// Package sqlite provides the public API for the SQLite grammar store.
// This package exposes the factory function for creating SQLite backends
// while keeping implementation details internal.
package sqlite

import (
	"github.com/mesh-intelligence/sierra/internal/sqlite"
	"github.com/mesh-intelligence/sierra/pkg/types"
)

// NewBackend creates a new SQLite grammar store.
// The backend is not attached; call Attach with a Config to initialize.
//
// Example:
//
//	store := sqlite.NewBackend()
//	err := store.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".sierra-db",
//	})
//	defer store.Detach()
func NewBackend() types.GrammarStore {
	return sqlite.NewBackend()
}
