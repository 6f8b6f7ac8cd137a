// Package repository persists the game snapshot and the action-type catalog.
// It is the only persistence boundary: the rest of the application goes
// through the Store contract and can swap the SQLite implementation for the
// in-memory one.
package repository

import (
	"context"
	"errors"

	"github.com/pviana/futstats/internal/models"
)

// ErrNoSnapshot is returned by the load methods when nothing has been
// persisted under the requested key yet
var ErrNoSnapshot = errors.New("no snapshot found")

// Store is the snapshot persistence contract
type Store interface {
	LoadGameState(ctx context.Context) (*models.GameState, error)
	SaveGameState(ctx context.Context, state *models.GameState) error
	LoadActionTypes(ctx context.Context) ([]models.ActionType, error)
	SaveActionTypes(ctx context.Context, types []models.ActionType) error
	ClearAll(ctx context.Context) error
	Close() error
}
