package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pviana/futstats/internal/field"
	"github.com/pviana/futstats/internal/services"
)

// handleZoneHit resolves a pointer position on the field image to a zone
func (h *Handlers) handleZoneHit(w http.ResponseWriter, r *http.Request) {
	var req ZoneHitRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if req.Width <= 0 || req.Height <= 0 {
		respondError(w, BadRequest("field dimensions must be positive"))
		return
	}

	zone := field.ZoneFromCoordinates(req.X, req.Y, req.Width, req.Height)
	respondOK(w, ZoneHitResponse{Zone: zone, Name: field.ZoneName(zone)})
}

// handleSubmitAction records a new match event
func (h *Handlers) handleSubmitAction(w http.ResponseWriter, r *http.Request) {
	var req services.ActionSubmission
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	action, err := h.Game.SubmitAction(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, action)
}

// handleUpdateAction applies a partial edit to a logged action
func (h *Handlers) handleUpdateAction(w http.ResponseWriter, r *http.Request) {
	var patch services.ActionPatch
	if err := decodeJSON(r, &patch); err != nil {
		respondError(w, err)
		return
	}

	h.Game.UpdateAction(r.Context(), chi.URLParam(r, "id"), patch)
	respondOK(w, map[string]string{"message": "action updated"})
}

// handleDeleteAction removes a logged action
func (h *Handlers) handleDeleteAction(w http.ResponseWriter, r *http.Request) {
	h.Game.DeleteAction(r.Context(), chi.URLParam(r, "id"))
	respondDeleted(w)
}

// handleListZones returns the static zone catalog
func (h *Handlers) handleListZones(w http.ResponseWriter, r *http.Request) {
	respondOK(w, field.Zones)
}
