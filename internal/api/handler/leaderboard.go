package handler

import (
	"net/http"
	"strconv"

	"github.com/AriellAlcantara/Gamebackend/internal/api/response"
	"github.com/AriellAlcantara/Gamebackend/internal/services/player"
)

// LeaderboardHandler handles the public leaderboard endpoint
type LeaderboardHandler struct {
	playerService *player.Service
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(playerService *player.Service) *LeaderboardHandler {
	return &LeaderboardHandler{
		playerService: playerService,
	}
}

// Get handles GET /api/v1/leaderboard?limit=N. A missing or
// unparseable limit falls back to the default; out-of-range values are
// clamped by the service, never rejected.
func (h *LeaderboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	records, err := h.playerService.Leaderboard(r.Context(), limit)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "leaderboard", response.LeaderboardFromModel(records))
}
