package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pviana/futstats/internal/models"
)

// handleGetState returns the full game state plus the action-type catalog
func (h *Handlers) handleGetState(w http.ResponseWriter, r *http.Request) {
	respondOK(w, StateResponse{
		Game:        h.Game.State(),
		ActionTypes: h.Catalog.List(),
	})
}

// handleUpdateTeam edits a team's display attributes
func (h *Handlers) handleUpdateTeam(w http.ResponseWriter, r *http.Request) {
	id := models.TeamID(chi.URLParam(r, "id"))

	var req TeamUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	team, err := h.Game.UpdateTeam(r.Context(), id, req.Name, req.Color, req.Palette, req.Logo)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, team)
}

// handleTimerStart starts the match clock
func (h *Handlers) handleTimerStart(w http.ResponseWriter, r *http.Request) {
	h.Game.StartTimer(r.Context())
	respondOK(w, map[string]string{"gameTime": h.Game.GameTime()})
}

// handleTimerStop pauses the match clock
func (h *Handlers) handleTimerStop(w http.ResponseWriter, r *http.Request) {
	h.Game.StopTimer(r.Context())
	respondOK(w, map[string]string{"gameTime": h.Game.GameTime()})
}

// handleTimerReset stops and rewinds the match clock
func (h *Handlers) handleTimerReset(w http.ResponseWriter, r *http.Request) {
	h.Game.ResetTimer(r.Context())
	respondOK(w, map[string]string{"gameTime": h.Game.GameTime()})
}

// handleClearAll resets game state and catalog to defaults and purges the
// persisted copies
func (h *Handlers) handleClearAll(w http.ResponseWriter, r *http.Request) {
	if err := h.Game.ClearAll(r.Context()); err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, map[string]string{"message": "all data cleared"})
}
