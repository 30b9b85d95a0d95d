package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/AriellAlcantara/Gamebackend/internal/api/request"
	"github.com/AriellAlcantara/Gamebackend/internal/api/response"
	"github.com/AriellAlcantara/Gamebackend/internal/model"
	"github.com/AriellAlcantara/Gamebackend/internal/services/player"
)

// PlayerHandler handles player record endpoints
type PlayerHandler struct {
	playerService *player.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerService *player.Service) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
	}
}

// Register handles POST /api/v1/player/register
func (h *PlayerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	record, err := h.playerService.Register(r.Context(), req.Handle, req.Password, req.Email)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "player registered", response.PlayerFromModel(record))
}

// Login handles POST /api/v1/player/login
func (h *PlayerHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	record, err := h.playerService.Login(r.Context(), req.Handle, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "login successful", response.PlayerFromModel(record))
}

// Get handles GET /api/v1/player?id=|handle=&credential=
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	ref := player.Ref{
		ID:     model.PlayerID(q.Get("id")),
		Handle: q.Get("handle"),
	}

	record, err := h.playerService.Fetch(r.Context(), ref, q.Get("credential"))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "player found", response.PlayerFromModel(record))
}

// Update handles PUT /api/v1/player
func (h *PlayerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	ref := player.Ref{ID: model.PlayerID(req.ID), Handle: req.Handle}
	update := player.UpdateRequest{
		Email:         req.Email,
		Level:         req.Level,
		Experience:    req.Experience,
		Score:         req.Score,
		Wins:          req.Wins,
		Losses:        req.Losses,
		NewCredential: req.NewPassword,
	}

	record, err := h.playerService.Update(r.Context(), ref, req.Password, update)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "player updated", response.PlayerFromModel(record))
}

// Delete handles DELETE /api/v1/player and DELETE /api/v1/player/{id};
// the path id, when present, overrides the body addressing
func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req request.DeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if pathID, ok := mux.Vars(r)["id"]; ok {
		req.ID = pathID
		req.Handle = ""
	}

	ref := player.Ref{ID: model.PlayerID(req.ID), Handle: req.Handle}
	if err := h.playerService.Delete(r.Context(), ref, req.Password); err != nil {
		WriteError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "player deleted", nil)
}
