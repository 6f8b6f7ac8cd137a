package services_test

import (
	"context"
	stderrors "errors"
	"testing"

	apperrors "github.com/pviana/futstats/internal/errors"
	"github.com/pviana/futstats/internal/models"
	"github.com/pviana/futstats/internal/services"
)

func submit(t *testing.T, game *services.GameService, sub services.ActionSubmission) models.GameAction {
	t.Helper()
	action, err := game.SubmitAction(context.Background(), sub)
	if err != nil {
		t.Fatalf("SubmitAction(%+v) failed: %v", sub, err)
	}
	return action
}

func TestSubmitAction_TeamLevelAction(t *testing.T) {
	game, _, _ := newGame(t)

	action := submit(t, game, services.ActionSubmission{
		Team: models.TeamA, Zone: "Z3_MID_CENTRAL", ActionType: "offensive",
	})

	if action.ID == "" {
		t.Error("expected a fresh id")
	}
	if action.Timestamp == 0 {
		t.Error("expected a creation timestamp")
	}
	if action.GameTime != "00:00" {
		t.Errorf("expected clock reading 00:00, got %q", action.GameTime)
	}
	if action.Player != nil {
		t.Error("team-level action must not carry a player")
	}
}

func TestSubmitAction_EmbedsPlayerSnapshot(t *testing.T) {
	game, _, _ := newGame(t)
	ctx := context.Background()

	if _, err := game.AddOrReplacePlayer(ctx, models.TeamA, 10, "Pelé", "Atacante"); err != nil {
		t.Fatalf("add player failed: %v", err)
	}

	action := submit(t, game, services.ActionSubmission{
		Team: models.TeamA, Zone: "Z5_GOAL", ActionType: "goal", PlayerID: "A-10",
	})
	if action.Player == nil || action.Player.Name != "Pelé" {
		t.Fatalf("expected embedded player snapshot, got %+v", action.Player)
	}

	// later roster edits must not rewrite the recorded snapshot
	if _, err := game.AddOrReplacePlayer(ctx, models.TeamA, 10, "Zico", "Meia"); err != nil {
		t.Fatalf("replace player failed: %v", err)
	}
	logged := game.Actions()[0]
	if logged.Player.Name != "Pelé" {
		t.Errorf("historical action changed after roster edit: %+v", logged.Player)
	}
}

func TestSubmitAction_RequiredPlayerMissing(t *testing.T) {
	game, _, _ := newGame(t)

	_, err := game.SubmitAction(context.Background(), services.ActionSubmission{
		Team: models.TeamA, Zone: "Z5_GOAL", ActionType: "goal",
	})
	if err == nil {
		t.Fatal("expected validation error for missing player")
	}
	var appErr *apperrors.Error
	if !stderrors.As(err, &appErr) || appErr.Kind != apperrors.ErrValidation {
		t.Errorf("expected ErrValidation, got %v", err)
	}
	if len(game.Actions()) != 0 {
		t.Error("rejected submission must not mutate the log")
	}
}

func TestSubmitAction_DropsPlayerForTeamLevelType(t *testing.T) {
	game, _, _ := newGame(t)
	ctx := context.Background()

	if _, err := game.AddOrReplacePlayer(ctx, models.TeamA, 10, "Pelé", "Atacante"); err != nil {
		t.Fatalf("add player failed: %v", err)
	}

	action := submit(t, game, services.ActionSubmission{
		Team: models.TeamA, Zone: "Z2_PROG_TOP", ActionType: "defensive", PlayerID: "A-10",
	})
	if action.Player != nil {
		t.Error("player offered for a team-level type must be dropped")
	}
}

func TestSubmitAction_UnknownActionType(t *testing.T) {
	game, _, _ := newGame(t)

	if _, err := game.SubmitAction(context.Background(), services.ActionSubmission{
		Team: models.TeamA, Zone: "Z1_GOAL", ActionType: "nonexistent",
	}); err == nil {
		t.Error("expected error for unknown action type")
	}
}

func TestSubmitAction_NewestFirstOrdering(t *testing.T) {
	game, _, _ := newGame(t)

	first := submit(t, game, services.ActionSubmission{Team: models.TeamA, Zone: "Z1_GOAL", ActionType: "offensive"})
	second := submit(t, game, services.ActionSubmission{Team: models.TeamB, Zone: "Z2_PROG_TOP", ActionType: "defensive"})
	third := submit(t, game, services.ActionSubmission{Team: models.TeamA, Zone: "Z3_MID_TOP", ActionType: "offensive"})

	actions := game.Actions()
	if len(actions) != 3 {
		t.Fatalf("expected 3 actions, got %d", len(actions))
	}
	if actions[0].ID != third.ID || actions[1].ID != second.ID || actions[2].ID != first.ID {
		t.Error("expected newest-first ordering")
	}

	// ids must be unique even for rapid submissions
	if first.ID == second.ID || second.ID == third.ID {
		t.Error("expected unique action ids")
	}
}

func TestUpdateAction_MergesPartialFields(t *testing.T) {
	game, _, _ := newGame(t)
	ctx := context.Background()

	action := submit(t, game, services.ActionSubmission{Team: models.TeamA, Zone: "Z1_GOAL", ActionType: "offensive"})
	submit(t, game, services.ActionSubmission{Team: models.TeamB, Zone: "Z5_GOAL", ActionType: "defensive"})

	zone := "Z4_PROG_BOTTOM"
	team := models.TeamB
	game.UpdateAction(ctx, action.ID, services.ActionPatch{Zone: &zone, Team: &team})

	actions := game.Actions()
	// the edited entry keeps its position at the tail
	edited := actions[1]
	if edited.ID != action.ID {
		t.Fatal("edit must not reorder the log")
	}
	if edited.Zone != "Z4_PROG_BOTTOM" || edited.Team != models.TeamB {
		t.Errorf("expected merged fields, got %+v", edited)
	}
	if edited.ActionType != "offensive" {
		t.Error("untouched fields must survive a partial update")
	}
}

func TestUpdateAction_UnknownIDIsNoop(t *testing.T) {
	game, _, _ := newGame(t)

	zone := "Z1_GOAL"
	game.UpdateAction(context.Background(), "missing", services.ActionPatch{Zone: &zone})
	if len(game.Actions()) != 0 {
		t.Error("expected log unchanged")
	}
}

func TestDeleteAction_RemovesEntry(t *testing.T) {
	game, _, _ := newGame(t)
	ctx := context.Background()

	keep := submit(t, game, services.ActionSubmission{Team: models.TeamA, Zone: "Z1_GOAL", ActionType: "offensive"})
	gone := submit(t, game, services.ActionSubmission{Team: models.TeamA, Zone: "Z2_PROG_TOP", ActionType: "offensive"})

	game.DeleteAction(ctx, gone.ID)
	actions := game.Actions()
	if len(actions) != 1 || actions[0].ID != keep.ID {
		t.Errorf("expected only the kept action, got %+v", actions)
	}

	// deleting the same id again is a no-op
	game.DeleteAction(ctx, gone.ID)
	if len(game.Actions()) != 1 {
		t.Error("expected log unchanged after repeated delete")
	}
}
