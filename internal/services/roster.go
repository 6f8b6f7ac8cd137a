package services

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	apperrors "github.com/pviana/futstats/internal/errors"
	"github.com/pviana/futstats/internal/models"
)

// ErrNoValidPlayers is returned by ImportPlayers when no line of the input
// parses into a valid record
var ErrNoValidPlayers = apperrors.Validation("no valid players found")

// AddOrReplacePlayer registers a player on a team. Shirt numbers are unique
// within a team: an existing player with the same number is replaced, never
// duplicated. The player id is derived from (team, number).
func (s *GameService) AddOrReplacePlayer(ctx context.Context, team models.TeamID, number int, name, position string) (models.Player, error) {
	player, err := buildPlayer(team, number, name, position)
	if err != nil {
		return models.Player{}, err
	}

	s.mu.Lock()
	s.state.Players[team] = upsertByNumber(s.state.Players[team], player)
	s.mu.Unlock()

	s.persist(ctx)
	s.notify("roster_updated")
	return player, nil
}

// RemovePlayer removes a player by id. Unknown ids are a no-op. Historical
// actions keep their embedded snapshot of the removed player.
func (s *GameService) RemovePlayer(ctx context.Context, team models.TeamID, playerID string) {
	s.mu.Lock()
	changed := false
	players := s.state.Players[team]
	for i, p := range players {
		if p.ID == playerID {
			s.state.Players[team] = append(players[:i], players[i+1:]...)
			changed = true
			break
		}
	}
	s.mu.Unlock()

	if changed {
		s.persist(ctx)
		s.notify("roster_updated")
	}
}

// ImportResult reports the outcome of a bulk roster import
type ImportResult struct {
	Added   int `json:"added"`
	Skipped int `json:"skipped"`
}

// ImportPlayers parses a bulk roster in "number,name,position" lines and
// registers the valid records. Malformed lines are silently skipped;
// records whose shirt number is already taken are skipped without
// overwriting. The import fails only when zero lines parse at all.
func (s *GameService) ImportPlayers(ctx context.Context, team models.TeamID, text string) (ImportResult, error) {
	if !team.Valid() {
		return ImportResult{}, apperrors.Validationf("unknown team %q", team)
	}

	var candidates []models.Player
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		parts := strings.Split(line, ",")
		if len(parts) < 3 {
			continue
		}
		number, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			continue
		}
		player, err := buildPlayer(team, number, parts[1], parts[2])
		if err != nil {
			continue
		}
		candidates = append(candidates, player)
	}
	if len(candidates) == 0 {
		return ImportResult{}, ErrNoValidPlayers
	}

	var result ImportResult
	s.mu.Lock()
	taken := make(map[int]bool, len(s.state.Players[team]))
	for _, p := range s.state.Players[team] {
		taken[p.Number] = true
	}
	for _, c := range candidates {
		if taken[c.Number] {
			result.Skipped++
			continue
		}
		taken[c.Number] = true
		s.state.Players[team] = append(s.state.Players[team], c)
		result.Added++
	}
	s.mu.Unlock()

	if result.Added > 0 {
		s.persist(ctx)
		s.notify("roster_updated")
	}
	return result, nil
}

// PlayersSortedByNumber returns a team's roster ascending by shirt number
func (s *GameService) PlayersSortedByNumber(team models.TeamID) []models.Player {
	s.mu.Lock()
	players := append([]models.Player{}, s.state.Players[team]...)
	s.mu.Unlock()

	sort.Slice(players, func(i, j int) bool {
		return players[i].Number < players[j].Number
	})
	return players
}

// FindPlayer looks up a roster entry by id
func (s *GameService) FindPlayer(team models.TeamID, playerID string) (models.Player, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.state.Players[team] {
		if p.ID == playerID {
			return p, true
		}
	}
	return models.Player{}, false
}

// buildPlayer validates the fields and derives the deterministic id
func buildPlayer(team models.TeamID, number int, name, position string) (models.Player, error) {
	if !team.Valid() {
		return models.Player{}, apperrors.Validationf("unknown team %q", team)
	}
	if number < 1 || number > 99 {
		return models.Player{}, apperrors.Validationf("shirt number %d out of range 1-99", number)
	}
	name = strings.TrimSpace(name)
	position = strings.TrimSpace(position)
	if name == "" {
		return models.Player{}, apperrors.Validation("player name is required")
	}
	if position == "" {
		return models.Player{}, apperrors.Validation("player position is required")
	}
	return models.Player{
		ID:       fmt.Sprintf("%s-%d", team, number),
		Number:   number,
		Name:     name,
		Position: position,
		Team:     team,
	}, nil
}

// upsertByNumber drops any entry sharing the new player's number, then
// appends, so one number maps to at most one player
func upsertByNumber(players []models.Player, player models.Player) []models.Player {
	out := players[:0]
	for _, p := range players {
		if p.Number != player.Number {
			out = append(out, p)
		}
	}
	return append(out, player)
}
