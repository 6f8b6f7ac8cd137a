package app

import (
	"context"
	"fmt"
	"io/fs"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pviana/futstats/internal/handlers"
	"github.com/pviana/futstats/internal/logger"
	"github.com/pviana/futstats/internal/repository"
	"github.com/pviana/futstats/internal/services"
	"github.com/pviana/futstats/internal/websocket"
)

// App holds all application dependencies
type App struct {
	log         logger.Logger
	handlers    *handlers.Handlers
	store       repository.Store
	game        *services.GameService
	cancelClock context.CancelFunc
}

// New creates and initializes a new application instance: opens the
// snapshot store, loads both persisted roots (falling back to defaults),
// wires services, hub and handlers
func New(log logger.Logger, dbPath string, templatesFS, staticFS fs.FS) (*App, error) {
	store, err := repository.NewSQLite(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot store: %w", err)
	}

	catalog := services.NewCatalogService(log, store)
	game := services.NewGameService(log, store, catalog)
	stats := services.NewStatsService(log, game, catalog)

	ctx := context.Background()
	catalog.Load(ctx)
	game.Load(ctx)

	hub := websocket.New(log, game)
	hub.Start()
	game.SetBroadcaster(hub)

	// match clock ticks while running, stops with the app
	clockCtx, cancel := context.WithCancel(context.Background())
	go game.RunClock(clockCtx)

	h, err := handlers.New(game, catalog, stats, hub, log, templatesFS, handlers.NewStaticServer(staticFS))
	if err != nil {
		cancel()
		store.Close()
		return nil, fmt.Errorf("failed to initialize handlers: %w", err)
	}

	return &App{
		log:         log,
		handlers:    h,
		store:       store,
		game:        game,
		cancelClock: cancel,
	}, nil
}

// Router returns the configured HTTP router
func (a *App) Router() chi.Router {
	return a.handlers.Router()
}

// Close performs graceful shutdown of app resources
func (a *App) Close() {
	if a.cancelClock != nil {
		a.cancelClock()
	}
	if a.store != nil {
		a.store.Close()
	}
}

// Run starts the HTTP server
func (a *App) Run(addr string) error {
	ip := getPreferredIP(realNetworkProvider{})
	baseURL := fmt.Sprintf("http://%s%s", ip, addr)
	a.handlers.BaseURL = baseURL

	a.log.Info("Server starting", "url", baseURL)
	a.log.Info("Scan to open on a phone", "url", baseURL+"/share/qr")
	return http.ListenAndServe(addr, a.Router())
}

// networkInterface wraps net.Interface for testing
type networkInterface interface {
	Flags() net.Flags
	Addrs() ([]net.Addr, error)
}

// realInterface wraps a real net.Interface
type realInterface struct {
	iface net.Interface
}

func (r realInterface) Flags() net.Flags {
	return r.iface.Flags
}

func (r realInterface) Addrs() ([]net.Addr, error) {
	return r.iface.Addrs()
}

// networkProvider is an interface for getting network interfaces (for testing)
type networkProvider interface {
	Interfaces() ([]networkInterface, error)
}

// realNetworkProvider implements networkProvider using the net package
type realNetworkProvider struct{}

func (realNetworkProvider) Interfaces() ([]networkInterface, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}
	result := make([]networkInterface, len(ifaces))
	for i, iface := range ifaces {
		result[i] = realInterface{iface: iface}
	}
	return result, nil
}

// getPreferredIP returns the best IP address for LAN access.
// Prefers private network addresses (192.168.x.x, 10.x.x.x, 172.16-31.x.x).
// Falls back to localhost if no suitable address is found.
func getPreferredIP(provider networkProvider) string {
	ifaces, err := provider.Interfaces()
	if err != nil {
		return "localhost"
	}

	var candidates []net.IP

	for _, iface := range ifaces {
		flags := iface.Flags()
		if flags&net.FlagUp == 0 || flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}

		for _, addr := range addrs {
			var ip net.IP
			switch v := addr.(type) {
			case *net.IPNet:
				ip = v.IP
			case *net.IPAddr:
				ip = v.IP
			}

			if ip == nil || ip.To4() == nil {
				continue
			}
			if ip.IsLoopback() {
				continue
			}

			candidates = append(candidates, ip)
		}
	}

	for _, ip := range candidates {
		if ip.IsPrivate() {
			return ip.String()
		}
	}
	if len(candidates) > 0 {
		return candidates[0].String()
	}
	return "localhost"
}
