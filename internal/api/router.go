package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/venuedesk/venuedesk/internal/api/handler"
	"github.com/venuedesk/venuedesk/internal/api/middleware"
	"github.com/venuedesk/venuedesk/internal/api/response"
	"github.com/venuedesk/venuedesk/internal/session"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger   *slog.Logger
	Sessions *session.Store
	Backend  string
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	sessionHandler := handler.NewSessionHandler(cfg.Sessions)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	api.HandleFunc("/session", sessionHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/session/login", sessionHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/session/logout", sessionHandler.Logout).Methods(http.MethodPost)

	api.HandleFunc("/health", healthHandler(cfg.Backend)).Methods(http.MethodGet)

	return r
}

func healthHandler(backend string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, http.StatusOK, response.Health{Status: "ok", Backend: backend})
	}
}
