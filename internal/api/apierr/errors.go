// Package apierr maps service and model errors to HTTP statuses and
// writes them in the common response envelope.
package apierr

import (
	"errors"
	"net/http"

	"github.com/AriellAlcantara/Gamebackend/internal/api/response"
	"github.com/AriellAlcantara/Gamebackend/internal/model"
	"github.com/AriellAlcantara/Gamebackend/internal/services/player"
)

// httpError combines an HTTP status code with a client-facing message
type httpError struct {
	status  int
	message string
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	response.JSON(w, he.status, response.Envelope{Success: false, Message: he.message})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, player.ErrInvalidInput):
		return &httpError{http.StatusBadRequest, err.Error()}
	case errors.Is(err, player.ErrUnauthorized):
		return &httpError{http.StatusUnauthorized, "Invalid handle or credential"}
	case errors.Is(err, model.ErrHandleExists):
		return &httpError{http.StatusConflict, "Handle is already taken"}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, "Player not found"}
	default:
		return &httpError{http.StatusInternalServerError, "Internal server error"}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, message}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, "Authentication required"}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, "Internal server error"}
}
