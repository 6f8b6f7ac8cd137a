package services

import (
	"context"

	apperrors "github.com/pviana/futstats/internal/errors"
	"github.com/pviana/futstats/internal/field"
	"github.com/pviana/futstats/internal/models"
)

// ActionSubmission carries the fields of a new action. PlayerID references
// a roster entry; the submitted action embeds a snapshot of that player,
// not a live reference.
type ActionSubmission struct {
	Team       models.TeamID `json:"team"`
	Zone       string        `json:"zone"`
	ActionType string        `json:"actionType"`
	PlayerID   string        `json:"playerId,omitempty"`
}

// SubmitAction validates a submission against the catalog and inserts the
// new action at the head of the log. Player presence follows the action
// type at submission time: a required player missing is rejected, and a
// player offered for a team-level type is dropped. The log itself stores
// exactly what is built here.
func (s *GameService) SubmitAction(ctx context.Context, sub ActionSubmission) (models.GameAction, error) {
	if !sub.Team.Valid() {
		return models.GameAction{}, apperrors.Validationf("unknown team %q", sub.Team)
	}
	if sub.Zone == "" {
		return models.GameAction{}, apperrors.Validation("zone is required")
	}
	actionType, ok := s.catalog.Resolve(sub.ActionType)
	if !ok {
		return models.GameAction{}, apperrors.Validationf("unknown action type %q", sub.ActionType)
	}

	var player *models.Player
	if actionType.RequiresPlayer {
		if sub.PlayerID == "" {
			return models.GameAction{}, apperrors.Validationf("action type %q requires a player", actionType.ID)
		}
		p, found := s.FindPlayer(sub.Team, sub.PlayerID)
		if !found {
			return models.GameAction{}, apperrors.NotFoundf("player %q not on team %s", sub.PlayerID, sub.Team)
		}
		player = &p
	}

	s.mu.Lock()
	id, timestamp := s.nextActionID()
	action := models.GameAction{
		ID:         id,
		Timestamp:  timestamp,
		GameTime:   s.gameTimeLocked(),
		Team:       sub.Team,
		Zone:       sub.Zone,
		ActionType: sub.ActionType,
		Player:     player,
	}
	// newest-first: insert at the head, older entries keep their order
	s.state.Actions = append([]models.GameAction{action}, s.state.Actions...)
	s.mu.Unlock()

	s.persist(ctx)
	s.notify("action_added")
	return action, nil
}

// ActionPatch carries the optional fields of a partial action edit
type ActionPatch struct {
	GameTime   *string        `json:"gameTime,omitempty"`
	Team       *models.TeamID `json:"team,omitempty"`
	Zone       *string        `json:"zone,omitempty"`
	ActionType *string        `json:"actionType,omitempty"`
}

// UpdateAction merges the patch into the matching entry. Unknown ids are a
// no-op; the entry keeps its position in the log.
func (s *GameService) UpdateAction(ctx context.Context, id string, patch ActionPatch) {
	if patch.Team != nil && !patch.Team.Valid() {
		return
	}

	s.mu.Lock()
	changed := false
	for i := range s.state.Actions {
		if s.state.Actions[i].ID != id {
			continue
		}
		if patch.GameTime != nil {
			s.state.Actions[i].GameTime = *patch.GameTime
		}
		if patch.Team != nil {
			s.state.Actions[i].Team = *patch.Team
		}
		if patch.Zone != nil {
			s.state.Actions[i].Zone = *patch.Zone
		}
		if patch.ActionType != nil {
			s.state.Actions[i].ActionType = *patch.ActionType
		}
		changed = true
		break
	}
	s.mu.Unlock()

	if changed {
		s.persist(ctx)
		s.notify("action_updated")
	}
}

// DeleteAction removes the matching entry. Unknown ids are a no-op.
func (s *GameService) DeleteAction(ctx context.Context, id string) {
	s.mu.Lock()
	changed := false
	for i, a := range s.state.Actions {
		if a.ID == id {
			s.state.Actions = append(s.state.Actions[:i], s.state.Actions[i+1:]...)
			changed = true
			break
		}
	}
	s.mu.Unlock()

	if changed {
		s.persist(ctx)
		s.notify("action_deleted")
	}
}

// gameTimeLocked formats the clock reading; callers must hold s.mu
func (s *GameService) gameTimeLocked() string {
	return field.FormatGameTime(s.state.CurrentTime)
}
