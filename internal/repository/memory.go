package repository

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/pviana/futstats/internal/models"
)

// MemoryStore is an in-memory Store used by tests and as a drop-in adapter
// when no durable persistence is wanted. Values round-trip through JSON so
// callers observe the same copy semantics as the SQLite store.
type MemoryStore struct {
	mu        sync.Mutex
	snapshots map[string][]byte

	// FailSaves makes every save return the given error, for exercising
	// the non-fatal save-failure path
	FailSaves error
}

// NewMemory creates an empty MemoryStore
func NewMemory() *MemoryStore {
	return &MemoryStore{snapshots: make(map[string][]byte)}
}

func (m *MemoryStore) load(key string, target interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.snapshots[key]
	if !ok {
		return ErrNoSnapshot
	}
	return json.Unmarshal(data, target)
}

func (m *MemoryStore) save(key string, value interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSaves != nil {
		return m.FailSaves
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.snapshots[key] = data
	return nil
}

// Seed stores a raw payload under a snapshot key, for corrupt-data tests
func (m *MemoryStore) Seed(key string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshots[key] = data
}

func (m *MemoryStore) LoadGameState(ctx context.Context) (*models.GameState, error) {
	var state models.GameState
	if err := m.load(keyGameState, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (m *MemoryStore) SaveGameState(ctx context.Context, state *models.GameState) error {
	return m.save(keyGameState, state)
}

func (m *MemoryStore) LoadActionTypes(ctx context.Context) ([]models.ActionType, error) {
	var types []models.ActionType
	if err := m.load(keyActionTypes, &types); err != nil {
		return nil, err
	}
	return types, nil
}

func (m *MemoryStore) SaveActionTypes(ctx context.Context, types []models.ActionType) error {
	return m.save(keyActionTypes, types)
}

func (m *MemoryStore) ClearAll(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshots = make(map[string][]byte)
	return nil
}

func (m *MemoryStore) Close() error { return nil }

var _ Store = (*MemoryStore)(nil)
var _ Store = (*SQLiteStore)(nil)
