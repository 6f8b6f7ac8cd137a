package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// conditionalHTTPLogger only logs HTTP requests when HTTP logging is enabled
func (h *Handlers) conditionalHTTPLogger(next http.Handler) http.Handler {
	logger := middleware.Logger(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.Log != nil && h.Log.IsHTTPLoggingEnabled() {
			logger.ServeHTTP(w, r)
		} else {
			next.ServeHTTP(w, r)
		}
	})
}

// Router returns a configured chi router with all routes
func (h *Handlers) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.conditionalHTTPLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RedirectSlashes)
	r.Use(middleware.Timeout(60 * time.Second))

	if h.staticServer != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", h.staticServer))
	}
	if h.index != nil {
		r.Get("/", h.handleIndex)
	}

	if h.Hub != nil {
		r.Get("/ws", h.Hub.ServeWs)
	}

	r.Get("/share/qr", h.handleShareQR)

	r.Route("/api", func(r chi.Router) {
		r.Get("/state", h.handleGetState)
		r.Get("/zones", h.handleListZones)
		r.Post("/zone-hit", h.handleZoneHit)

		r.Put("/teams/{id}", h.handleUpdateTeam)

		r.Get("/players/{team}", h.handleListPlayers)
		r.Post("/players", h.handleCreatePlayer)
		r.Post("/players/import", h.handleImportPlayers)
		r.Delete("/players/{team}/{playerID}", h.handleDeletePlayer)

		r.Post("/actions", h.handleSubmitAction)
		r.Patch("/actions/{id}", h.handleUpdateAction)
		r.Delete("/actions/{id}", h.handleDeleteAction)

		r.Get("/action-types", h.handleListActionTypes)
		r.Post("/action-types", h.handleCreateActionType)
		r.Put("/action-types/{id}", h.handleUpdateActionType)
		r.Delete("/action-types/{id}", h.handleDeleteActionType)

		r.Get("/stats", h.handleGetStats)
		r.Get("/heatmap", h.handleGetHeatmap)
		r.Get("/actions/recent", h.handleRecentActions)
		r.Get("/report", h.handleGetReport)

		r.Post("/timer/start", h.handleTimerStart)
		r.Post("/timer/stop", h.handleTimerStop)
		r.Post("/timer/reset", h.handleTimerReset)

		r.Post("/clear", h.handleClearAll)
	})

	return r
}
