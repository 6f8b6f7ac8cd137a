package handlers

import (
	"net/http"
	"strconv"

	"github.com/pviana/futstats/internal/models"
)

// handleGetStats returns possession plus per-team player and action-type
// breakdowns
func (h *Handlers) handleGetStats(w http.ResponseWriter, r *http.Request) {
	respondOK(w, h.Stats.Stats())
}

// handleGetHeatmap returns per-team zone counts, intensity and top zones
func (h *Handlers) handleGetHeatmap(w http.ResponseWriter, r *http.Request) {
	respondOK(w, map[string]interface{}{
		"teamA": h.Stats.Heatmap(models.TeamA),
		"teamB": h.Stats.Heatmap(models.TeamB),
	})
}

// handleRecentActions returns the newest actions resolved for display
func (h *Handlers) handleRecentActions(w http.ResponseWriter, r *http.Request) {
	n := 10
	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			respondError(w, BadRequest("Invalid n parameter"))
			return
		}
		n = parsed
	}
	respondOK(w, h.Stats.RecentActions(n))
}

// handleGetReport renders the plain-text match report
func (h *Handlers) handleGetReport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(h.Stats.Report()))
}
