package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pviana/futstats/internal/models"
)

// Snapshot keys. One row per root: the game state and the action-type
// catalog are loaded and saved independently.
const (
	keyGameState   = "game_state"
	keyActionTypes = "action_types"
)

// SQLiteStore persists snapshots as JSON payloads in a key-value table
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the snapshot database at dbPath
func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	// SQLite works best with a single connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Ping checks if the database connection is alive
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) migrate() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS snapshots (
		key TEXT PRIMARY KEY,
		data TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`)
	return err
}

func (s *SQLiteStore) load(ctx context.Context, key string, target interface{}) error {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM snapshots WHERE key = ?`, key).Scan(&data)
	if err == sql.ErrNoRows {
		return ErrNoSnapshot
	}
	if err != nil {
		return fmt.Errorf("loading snapshot %q: %w", key, err)
	}
	if err := json.Unmarshal([]byte(data), target); err != nil {
		return fmt.Errorf("decoding snapshot %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) save(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding snapshot %q: %w", key, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO snapshots (key, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`,
		key, string(data))
	if err != nil {
		return fmt.Errorf("saving snapshot %q: %w", key, err)
	}
	return nil
}

// LoadGameState returns the persisted game snapshot, or ErrNoSnapshot
func (s *SQLiteStore) LoadGameState(ctx context.Context) (*models.GameState, error) {
	var state models.GameState
	if err := s.load(ctx, keyGameState, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// SaveGameState persists the full game snapshot
func (s *SQLiteStore) SaveGameState(ctx context.Context, state *models.GameState) error {
	return s.save(ctx, keyGameState, state)
}

// LoadActionTypes returns the persisted catalog, or ErrNoSnapshot
func (s *SQLiteStore) LoadActionTypes(ctx context.Context) ([]models.ActionType, error) {
	var types []models.ActionType
	if err := s.load(ctx, keyActionTypes, &types); err != nil {
		return nil, err
	}
	return types, nil
}

// SaveActionTypes persists the action-type catalog
func (s *SQLiteStore) SaveActionTypes(ctx context.Context, types []models.ActionType) error {
	return s.save(ctx, keyActionTypes, types)
}

// ClearAll purges both persisted roots
func (s *SQLiteStore) ClearAll(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM snapshots`)
	if err != nil {
		return fmt.Errorf("clearing snapshots: %w", err)
	}
	return nil
}
