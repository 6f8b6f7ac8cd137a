package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pviana/futstats/internal/services"
)

// handleListActionTypes returns the catalog in display order
func (h *Handlers) handleListActionTypes(w http.ResponseWriter, r *http.Request) {
	respondOK(w, h.Catalog.List())
}

// handleCreateActionType adds a catalog entry; a name normalizing to an
// existing id is rejected with 409
func (h *Handlers) handleCreateActionType(w http.ResponseWriter, r *http.Request) {
	var req ActionTypeCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	at, err := h.Catalog.Add(r.Context(), req.Name, req.RequiresPlayer)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, at)
}

// handleUpdateActionType renames or re-flags a catalog entry; the id is
// stable across renames
func (h *Handlers) handleUpdateActionType(w http.ResponseWriter, r *http.Request) {
	var patch services.ActionTypePatch
	if err := decodeJSON(r, &patch); err != nil {
		respondError(w, err)
		return
	}

	h.Catalog.Update(r.Context(), chi.URLParam(r, "id"), patch)
	respondOK(w, map[string]string{"message": "action type updated"})
}

// handleDeleteActionType removes a catalog entry; logged actions keep the
// orphaned id
func (h *Handlers) handleDeleteActionType(w http.ResponseWriter, r *http.Request) {
	h.Catalog.Remove(r.Context(), chi.URLParam(r, "id"))
	respondDeleted(w)
}
