package testutil

import (
	"testing"

	"github.com/pviana/futstats/internal/repository"
)

// NewTestStore creates a fresh in-memory SQLite snapshot store.
// Each call gets its own database with migrations applied.
func NewTestStore(t *testing.T) *repository.SQLiteStore {
	t.Helper()

	store, err := repository.NewSQLite(":memory:")
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}

	t.Cleanup(func() {
		store.Close()
	})

	return store
}
