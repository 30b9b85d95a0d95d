package handler

import (
	"net/http"

	"github.com/AriellAlcantara/Gamebackend/internal/api/response"
	"github.com/AriellAlcantara/Gamebackend/internal/services/player"
)

// AdminHandler handles operator endpoints; the router gates these
// behind the admin secret middleware
type AdminHandler struct {
	playerService *player.Service
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(playerService *player.Service) *AdminHandler {
	return &AdminHandler{
		playerService: playerService,
	}
}

// ListPlayers handles GET /api/v1/admin/players
func (h *AdminHandler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	records, err := h.playerService.ListAll(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "players", response.PlayerListFromModel(records))
}
