package services

import (
	"context"
	"strings"
	"sync"

	apperrors "github.com/pviana/futstats/internal/errors"
	"github.com/pviana/futstats/internal/logger"
	"github.com/pviana/futstats/internal/models"
	"github.com/pviana/futstats/internal/repository"
)

// DefaultActionTypes returns the built-in catalog used until the user edits
// it, and as the fallback when the persisted copy is absent or corrupt
func DefaultActionTypes() []models.ActionType {
	return []models.ActionType{
		{ID: "defensive", Name: "Ação Defensiva", RequiresPlayer: false},
		{ID: "offensive", Name: "Ação Ofensiva", RequiresPlayer: false},
		{ID: "shot_on_target", Name: "Chutes no Alvo", RequiresPlayer: true},
		{ID: "shot_off_target", Name: "Chutes Fora do Alvo", RequiresPlayer: true},
		{ID: "goal", Name: "Gols", RequiresPlayer: true},
		{ID: "foul", Name: "Faltas Cometidas", RequiresPlayer: true},
		{ID: "foul_suffered", Name: "Faltas Sofridas", RequiresPlayer: true},
		{ID: "yellow_card", Name: "Cartões Amarelos", RequiresPlayer: true},
		{ID: "red_card", Name: "Cartão Vermelho Direto", RequiresPlayer: true},
		{ID: "assist", Name: "Assistências", RequiresPlayer: true},
		{ID: "offside", Name: "Impedimentos", RequiresPlayer: true},
		{ID: "corner", Name: "Escanteios", RequiresPlayer: true},
		{ID: "throw_in", Name: "Lateral", RequiresPlayer: true},
		{ID: "goal_kick", Name: "Tiro de Meta", RequiresPlayer: true},
	}
}

var diacriticFold = map[rune]rune{
	'á': 'a', 'à': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a',
	'é': 'e', 'è': 'e', 'ê': 'e', 'ë': 'e',
	'í': 'i', 'ì': 'i', 'î': 'i', 'ï': 'i',
	'ó': 'o', 'ò': 'o', 'ô': 'o', 'õ': 'o', 'ö': 'o',
	'ú': 'u', 'ù': 'u', 'û': 'u', 'ü': 'u',
	'ç': 'c',
}

// DeriveTypeID normalizes an action-type name into its stable id:
// lowercased, diacritics folded, runs of non-alphanumerics collapsed to a
// single underscore, leading/trailing underscores trimmed. Pure and
// deterministic: the same name always yields the same id.
func DeriveTypeID(name string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.ToLower(name) {
		if folded, ok := diacriticFold[r]; ok {
			r = folded
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastUnderscore = false
			continue
		}
		if !lastUnderscore {
			b.WriteByte('_')
			lastUnderscore = true
		}
	}
	return strings.Trim(b.String(), "_")
}

// CatalogService owns the user-editable action-type taxonomy
type CatalogService struct {
	log   logger.Logger
	store repository.Store

	mu    sync.Mutex
	types []models.ActionType
}

// NewCatalogService creates a CatalogService with the default catalog
func NewCatalogService(log logger.Logger, store repository.Store) *CatalogService {
	return &CatalogService{log: log, store: store, types: DefaultActionTypes()}
}

// Load replaces the catalog with the persisted copy. Absent or corrupt
// snapshots fall back to the defaults; startup never fails here.
func (s *CatalogService) Load(ctx context.Context) {
	types, err := s.store.LoadActionTypes(ctx)
	if err != nil {
		if err != repository.ErrNoSnapshot {
			s.log.Warn("Falling back to default action types", "error", err)
		}
		return
	}
	s.mu.Lock()
	s.types = types
	s.mu.Unlock()
}

// List returns a copy of the catalog in display order
func (s *CatalogService) List() []models.ActionType {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ActionType, len(s.types))
	copy(out, s.types)
	return out
}

// Resolve looks up a catalog entry by id
func (s *CatalogService) Resolve(id string) (models.ActionType, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.types {
		if t.ID == id {
			return t, true
		}
	}
	return models.ActionType{}, false
}

// DisplayName resolves an action-type id to its name, or the raw id when
// the entry was removed from the catalog
func (s *CatalogService) DisplayName(id string) string {
	if t, ok := s.Resolve(id); ok {
		return t.Name
	}
	return id
}

// Add appends a new action type. The id is derived from the name; a
// derived-id collision is rejected before any mutation.
func (s *CatalogService) Add(ctx context.Context, name string, requiresPlayer bool) (models.ActionType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.ActionType{}, apperrors.Validation("action type name is required")
	}
	id := DeriveTypeID(name)
	if id == "" {
		return models.ActionType{}, apperrors.Validationf("action type name %q has no usable characters", name)
	}

	s.mu.Lock()
	for _, t := range s.types {
		if t.ID == id {
			s.mu.Unlock()
			return models.ActionType{}, apperrors.Duplicatef("action type %q already exists", id)
		}
	}
	at := models.ActionType{ID: id, Name: name, RequiresPlayer: requiresPlayer}
	s.types = append(s.types, at)
	s.mu.Unlock()

	s.persist(ctx)
	return at, nil
}

// ActionTypePatch carries the optional fields of a partial update
type ActionTypePatch struct {
	Name           *string `json:"name,omitempty"`
	RequiresPlayer *bool   `json:"requiresPlayer,omitempty"`
}

// Update applies a partial update in place. The id is never re-derived, so
// existing actions referencing it stay valid. Unknown ids are a no-op.
func (s *CatalogService) Update(ctx context.Context, id string, patch ActionTypePatch) {
	s.mu.Lock()
	changed := false
	for i := range s.types {
		if s.types[i].ID != id {
			continue
		}
		if patch.Name != nil {
			s.types[i].Name = strings.TrimSpace(*patch.Name)
		}
		if patch.RequiresPlayer != nil {
			s.types[i].RequiresPlayer = *patch.RequiresPlayer
		}
		changed = true
		break
	}
	s.mu.Unlock()

	if changed {
		s.persist(ctx)
	}
}

// Remove deletes a catalog entry. Existing actions referencing it keep the
// id and display it raw. Unknown ids are a no-op.
func (s *CatalogService) Remove(ctx context.Context, id string) {
	s.mu.Lock()
	changed := false
	for i, t := range s.types {
		if t.ID == id {
			s.types = append(s.types[:i], s.types[i+1:]...)
			changed = true
			break
		}
	}
	s.mu.Unlock()

	if changed {
		s.persist(ctx)
	}
}

// ResetDefaults restores the built-in catalog without persisting; used by
// the clear-all flow after the store has been purged
func (s *CatalogService) ResetDefaults() {
	s.mu.Lock()
	s.types = DefaultActionTypes()
	s.mu.Unlock()
}

// persist saves the catalog; a failure is a warning, never fatal, and the
// in-memory catalog is left as mutated
func (s *CatalogService) persist(ctx context.Context) {
	if err := s.store.SaveActionTypes(ctx, s.List()); err != nil {
		s.log.Warn("Failed to save action types", "error", err)
	}
}
