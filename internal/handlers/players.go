package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleListPlayers returns a team's roster sorted by shirt number
func (h *Handlers) handleListPlayers(w http.ResponseWriter, r *http.Request) {
	team, err := teamParam(r)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, h.Game.PlayersSortedByNumber(team))
}

// handleCreatePlayer registers a player; an existing shirt number on the
// same team is replaced
func (h *Handlers) handleCreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req PlayerCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	player, err := h.Game.AddOrReplacePlayer(r.Context(), req.Team, req.Number, req.Name, req.Position)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, player)
}

// handleDeletePlayer removes a player from the roster
func (h *Handlers) handleDeletePlayer(w http.ResponseWriter, r *http.Request) {
	team, err := teamParam(r)
	if err != nil {
		respondError(w, err)
		return
	}
	h.Game.RemovePlayer(r.Context(), team, chi.URLParam(r, "playerID"))
	respondDeleted(w)
}

// handleImportPlayers bulk-imports players from "number,name,position" lines
func (h *Handlers) handleImportPlayers(w http.ResponseWriter, r *http.Request) {
	var req PlayerImportRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	result, err := h.Game.ImportPlayers(r.Context(), req.Team, req.Text)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, result)
}
