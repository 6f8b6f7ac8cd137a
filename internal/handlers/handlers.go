package handlers

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/pviana/futstats/internal/services"
	"github.com/pviana/futstats/internal/websocket"
)

// NewStaticServer creates a static file server from an fs.FS
func NewStaticServer(staticFS fs.FS) http.Handler {
	return http.FileServer(http.FS(staticFS))
}

// HTTPLogger is an interface for loggers that support HTTP logging control
type HTTPLogger interface {
	IsHTTPLoggingEnabled() bool
}

// Handlers holds all HTTP handler dependencies
type Handlers struct {
	Game    *services.GameService
	Catalog *services.CatalogService
	Stats   *services.StatsService
	Hub     *websocket.Hub
	Log     HTTPLogger

	// BaseURL is the LAN address encoded into the share QR code
	BaseURL string

	index        *template.Template
	staticServer http.Handler
}

// New creates a new Handlers instance with all dependencies
func New(
	game *services.GameService,
	catalog *services.CatalogService,
	stats *services.StatsService,
	hub *websocket.Hub,
	log HTTPLogger,
	templatesFS fs.FS,
	staticServer http.Handler,
) (*Handlers, error) {
	index, err := template.ParseFS(templatesFS, "index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	return &Handlers{
		Game:         game,
		Catalog:      catalog,
		Stats:        stats,
		Hub:          hub,
		Log:          log,
		index:        index,
		staticServer: staticServer,
	}, nil
}

// NewForTesting creates a Handlers instance without templates, for
// exercising the API endpoints in tests
func NewForTesting(
	game *services.GameService,
	catalog *services.CatalogService,
	stats *services.StatsService,
) *Handlers {
	return &Handlers{
		Game:    game,
		Catalog: catalog,
		Stats:   stats,
	}
}

// handleIndex serves the single-page UI
func (h *Handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	teams := h.Game.Teams()
	data := map[string]interface{}{
		"Teams": teams,
	}
	if err := h.index.Execute(w, data); err != nil {
		respondError(w, err)
	}
}
