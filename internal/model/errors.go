package model

import "errors"

// Common errors used across the application
var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrHandleExists   = errors.New("handle already exists")
)
