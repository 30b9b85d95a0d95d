package redis

import (
	"fmt"

	"github.com/AriellAlcantara/Gamebackend/internal/model"
)

// Key prefix for all player record data
const keyPrefix = "gamebackend"

// playerKey returns the Redis key for a PlayerRecord document
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// handleIndexKey returns the Redis key for the handle -> player_id index.
// Created with SETNX so concurrent registrations of the same handle
// cannot both succeed.
func handleIndexKey(handle string) string {
	return fmt.Sprintf("%s:idx:handle:%s", keyPrefix, handle)
}

// scoreIndexKey returns the Redis key of the score sorted set.
// It doubles as the index of all player ids for listing.
func scoreIndexKey() string {
	return fmt.Sprintf("%s:idx:score", keyPrefix)
}
