package web

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/venuedesk/venuedesk/internal/overlay"
	"github.com/venuedesk/venuedesk/internal/session"
	"github.com/venuedesk/venuedesk/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger       *slog.Logger
	Sessions     *session.Store
	Interactions *overlay.Bus
}

// handlers groups the web handlers and their dependencies
type handlers struct {
	sessions     *session.Store
	renderer     *Renderer
	interactions *overlay.Bus
	menu         *overlay.Controller
	logger       *slog.Logger
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) (http.Handler, error) {
	renderer, err := NewRenderer(cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	interactions := cfg.Interactions
	if interactions == nil {
		interactions = overlay.NewBus(cfg.Logger)
	}

	h := &handlers{
		sessions:     cfg.Sessions,
		renderer:     renderer,
		interactions: interactions,
		menu:         overlay.NewController(interactions, "nav/profile-menu", nil),
		logger:       cfg.Logger.With(slog.String("component", "web")),
	}

	r := mux.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))
	r.Use(middleware.Session(cfg.Sessions))
	r.Use(middleware.Flash())

	// Public routes
	r.HandleFunc("/", h.Home).Methods(http.MethodGet)
	r.HandleFunc("/venues", h.Venues).Methods(http.MethodGet)
	r.HandleFunc("/signin", h.SignInPage).Methods(http.MethodGet)
	r.HandleFunc("/signin", h.SignIn).Methods(http.MethodPost)
	r.HandleFunc("/signout", h.SignOut).Methods(http.MethodPost)

	// Navigation chrome
	r.HandleFunc("/nav/menu", h.ToggleMenu).Methods(http.MethodPost)
	r.HandleFunc("/ui/interaction", h.Interaction).Methods(http.MethodPost)

	// Role-gated dashboards
	gated := r.NewRoute().Subrouter()
	gated.Use(middleware.RequireActor())
	gated.HandleFunc("/guest", h.GuestDashboard).Methods(http.MethodGet)
	gated.HandleFunc("/host", h.HostDashboard).Methods(http.MethodGet)
	gated.HandleFunc("/admin", h.AdminDashboard).Methods(http.MethodGet)

	return r, nil
}
