package services

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	apperrors "github.com/pviana/futstats/internal/errors"
	"github.com/pviana/futstats/internal/field"
	"github.com/pviana/futstats/internal/logger"
	"github.com/pviana/futstats/internal/models"
	"github.com/pviana/futstats/internal/repository"
)

// Broadcaster pushes messages to connected clients
type Broadcaster interface {
	Broadcast(msg models.WSMessage)
}

// GameService is the state container for the single match: teams, rosters,
// the action log and the clock. All mutations take its mutex, mutate the
// in-memory state, persist through the store, then notify clients, so no
// half-applied state is ever observable.
type GameService struct {
	log     logger.Logger
	store   repository.Store
	catalog *CatalogService

	mu           sync.Mutex
	state        *models.GameState
	lastActionID int64

	broadcaster Broadcaster
}

// NewGameService creates a GameService with a fresh default state
func NewGameService(log logger.Logger, store repository.Store, catalog *CatalogService) *GameService {
	return &GameService{
		log:     log,
		store:   store,
		catalog: catalog,
		state:   models.NewGameState(),
	}
}

// SetBroadcaster wires the websocket hub in after construction
func (s *GameService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Load replaces the in-memory state with the persisted snapshot. Absent or
// corrupt snapshots fall back to the fresh default state; startup never
// fails here.
func (s *GameService) Load(ctx context.Context) {
	state, err := s.store.LoadGameState(ctx)
	if err != nil {
		if err != repository.ErrNoSnapshot {
			s.log.Warn("Falling back to fresh game state", "error", err)
		}
		return
	}
	normalizeState(state)
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// normalizeState repairs nil collections in a decoded snapshot so the rest
// of the code never branches on them
func normalizeState(state *models.GameState) {
	if state.Actions == nil {
		state.Actions = []models.GameAction{}
	}
	if state.Teams == nil {
		state.Teams = models.NewGameState().Teams
	}
	if state.Players == nil {
		state.Players = map[models.TeamID][]models.Player{}
	}
	for _, team := range []models.TeamID{models.TeamA, models.TeamB} {
		if _, ok := state.Teams[team]; !ok {
			state.Teams[team] = models.NewGameState().Teams[team]
		}
		if state.Players[team] == nil {
			state.Players[team] = []models.Player{}
		}
	}
}

// State returns a deep copy of the current game state
func (s *GameService) State() models.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyState(s.state)
}

// Actions returns a copy of the action log, newest-first
func (s *GameService) Actions() []models.GameAction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyActions(s.state.Actions)
}

// Teams returns the two teams keyed by id
func (s *GameService) Teams() map[models.TeamID]models.Team {
	s.mu.Lock()
	defer s.mu.Unlock()
	teams := make(map[models.TeamID]models.Team, len(s.state.Teams))
	for id, t := range s.state.Teams {
		teams[id] = copyTeam(t)
	}
	return teams
}

// UpdateTeam replaces a team's display attributes. Identity is fixed; only
// name, color, palette and logo change.
func (s *GameService) UpdateTeam(ctx context.Context, id models.TeamID, name, color string, palette *models.ColorPalette, logo string) (models.Team, error) {
	if !id.Valid() {
		return models.Team{}, apperrors.Validationf("unknown team %q", id)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Team{}, apperrors.Validation("team name is required")
	}

	s.mu.Lock()
	team := models.Team{ID: id, Name: name, Color: color, Logo: logo}
	if palette != nil {
		p := *palette
		team.Palette = &p
	}
	s.state.Teams[id] = team
	s.mu.Unlock()

	s.persist(ctx)
	s.notify("team_updated")
	return team, nil
}

// StartTimer marks the match clock as running
func (s *GameService) StartTimer(ctx context.Context) {
	s.mu.Lock()
	s.state.IsRunning = true
	s.mu.Unlock()
	s.persist(ctx)
	s.notifyClock()
}

// StopTimer pauses the match clock
func (s *GameService) StopTimer(ctx context.Context) {
	s.mu.Lock()
	s.state.IsRunning = false
	s.mu.Unlock()
	s.persist(ctx)
	s.notifyClock()
}

// ResetTimer stops the clock and rewinds it to zero. The action log is
// untouched.
func (s *GameService) ResetTimer(ctx context.Context) {
	s.mu.Lock()
	s.state.IsRunning = false
	s.state.CurrentTime = 0
	s.mu.Unlock()
	s.persist(ctx)
	s.notifyClock()
}

// RunClock increments the clock once per second while the match is running.
// It blocks until ctx is cancelled; the app runs it in a goroutine. The
// clock only ever touches CurrentTime, never the action log.
func (s *GameService) RunClock(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.mu.Lock()
			if !s.state.IsRunning {
				s.mu.Unlock()
				continue
			}
			s.state.CurrentTime++
			s.mu.Unlock()
			s.persist(ctx)
			s.notifyClock()
		}
	}
}

// GameTime returns the current clock reading as "MM:SS"
func (s *GameService) GameTime() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return field.FormatGameTime(s.state.CurrentTime)
}

// ClearAll resets the game state and the catalog to defaults and purges
// the persisted copies
func (s *GameService) ClearAll(ctx context.Context) error {
	if err := s.store.ClearAll(ctx); err != nil {
		return apperrors.Persistence("clearing persisted data", err)
	}
	s.mu.Lock()
	s.state = models.NewGameState()
	s.lastActionID = 0
	s.mu.Unlock()
	s.catalog.ResetDefaults()
	s.notify("state_cleared")
	return nil
}

// nextActionID returns a fresh unique action id. Ids are the creation
// instant in unix milliseconds, bumped when two submissions land within
// the same millisecond. Callers must hold s.mu.
func (s *GameService) nextActionID() (string, int64) {
	now := time.Now().UnixMilli()
	if now <= s.lastActionID {
		now = s.lastActionID + 1
	}
	s.lastActionID = now
	return strconv.FormatInt(now, 10), now
}

// persist saves the current state. A save failure must not corrupt the
// in-memory state: it is logged as a warning and the mutation stands.
func (s *GameService) persist(ctx context.Context) {
	s.mu.Lock()
	snapshot := copyState(s.state)
	s.mu.Unlock()
	if err := s.store.SaveGameState(ctx, &snapshot); err != nil {
		s.log.Warn("Failed to save game state", "error", err)
	}
}

func (s *GameService) notify(event string) {
	if s.broadcaster == nil {
		return
	}
	s.broadcaster.Broadcast(models.WSMessage{Type: event})
}

func (s *GameService) notifyClock() {
	if s.broadcaster == nil {
		return
	}
	s.mu.Lock()
	payload := map[string]interface{}{
		"isRunning": s.state.IsRunning,
		"seconds":   s.state.CurrentTime,
		"display":   field.FormatGameTime(s.state.CurrentTime),
	}
	s.mu.Unlock()
	s.broadcaster.Broadcast(models.WSMessage{Type: "clock", Payload: payload})
}

func copyState(state *models.GameState) models.GameState {
	out := models.GameState{
		IsRunning:   state.IsRunning,
		CurrentTime: state.CurrentTime,
		Actions:     copyActions(state.Actions),
		Teams:       make(map[models.TeamID]models.Team, len(state.Teams)),
		Players:     make(map[models.TeamID][]models.Player, len(state.Players)),
	}
	for id, t := range state.Teams {
		out.Teams[id] = copyTeam(t)
	}
	for id, players := range state.Players {
		out.Players[id] = append([]models.Player{}, players...)
	}
	return out
}

func copyActions(actions []models.GameAction) []models.GameAction {
	out := make([]models.GameAction, len(actions))
	for i, a := range actions {
		out[i] = a
		if a.Player != nil {
			p := *a.Player
			out[i].Player = &p
		}
	}
	return out
}

func copyTeam(t models.Team) models.Team {
	if t.Palette != nil {
		p := *t.Palette
		t.Palette = &p
	}
	return t
}
