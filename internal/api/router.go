package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/AriellAlcantara/Gamebackend/internal/api/handler"
	"github.com/AriellAlcantara/Gamebackend/internal/api/middleware"
	sharedmw "github.com/AriellAlcantara/Gamebackend/internal/middleware"
	"github.com/AriellAlcantara/Gamebackend/internal/services/player"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger        *slog.Logger
	PlayerService *player.Service
	AdminSecret   string
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.PlayerService)
	leaderboardHandler := handler.NewLeaderboardHandler(cfg.PlayerService)
	adminHandler := handler.NewAdminHandler(cfg.PlayerService)

	// Create middleware
	loggingMiddleware := sharedmw.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	adminMiddleware := middleware.AdminAuth(cfg.AdminSecret)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Player routes; each privileged operation carries its own
	// credential, so there is no auth middleware
	api.HandleFunc("/player/register", playerHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/player/login", playerHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/player", playerHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/player", playerHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/player", playerHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/player/{id}", playerHandler.Delete).Methods(http.MethodDelete)

	// Public leaderboard
	api.HandleFunc("/leaderboard", leaderboardHandler.Get).Methods(http.MethodGet)

	// Admin routes behind the shared operator secret
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(adminMiddleware)
	admin.HandleFunc("/players", adminHandler.ListPlayers).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
