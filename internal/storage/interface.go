package storage

import (
	"context"
	"sort"
	"time"

	"github.com/AriellAlcantara/Gamebackend/internal/model"
)

// Store defines the interface for player record persistence.
// Backends enforce handle uniqueness and assign record IDs at
// creation; they never hash credentials (that is the service's job).
type Store interface {
	// CreatePlayer atomically checks handle uniqueness and inserts the
	// record, assigning record.ID. Returns model.ErrHandleExists if the
	// handle is already taken.
	CreatePlayer(ctx context.Context, record *model.PlayerRecord) error

	GetPlayer(ctx context.Context, id model.PlayerID) (*model.PlayerRecord, error)
	GetPlayerByHandle(ctx context.Context, handle string) (*model.PlayerRecord, error)

	// UpdatePlayer applies the non-nil fields of update to the record
	// under the store's write lock. Returns model.ErrPlayerNotFound if
	// the record vanished.
	UpdatePlayer(ctx context.Context, id model.PlayerID, update PlayerUpdate) (*model.PlayerRecord, error)

	DeletePlayer(ctx context.Context, id model.PlayerID) error

	// ListPlayers returns records ordered by descending score; ties are
	// broken by earliest CreatedAt (insertion order). limit <= 0 means
	// no limit.
	ListPlayers(ctx context.Context, limit int) ([]*model.PlayerRecord, error)
}

// PlayerUpdate is a partial update: nil fields are left unchanged.
// PasswordHash must already be in verifiable form when it reaches the
// store.
type PlayerUpdate struct {
	Email        *string
	Level        *int
	Experience   *int
	Score        *int
	Wins         *int
	Losses       *int
	PasswordHash *string
	LastLoginAt  *time.Time
}

// Apply mutates record with the non-nil fields of the update
func (u PlayerUpdate) Apply(record *model.PlayerRecord) {
	if u.Email != nil {
		record.Email = *u.Email
	}
	if u.Level != nil {
		record.Level = *u.Level
	}
	if u.Experience != nil {
		record.Experience = *u.Experience
	}
	if u.Score != nil {
		record.Score = *u.Score
	}
	if u.Wins != nil {
		record.Wins = *u.Wins
	}
	if u.Losses != nil {
		record.Losses = *u.Losses
	}
	if u.PasswordHash != nil {
		record.PasswordHash = *u.PasswordHash
	}
	if u.LastLoginAt != nil {
		record.LastLoginAt = *u.LastLoginAt
	}
}

// SortByScore orders records for listing: descending score, ties by
// earliest CreatedAt. The sort is stable so every backend agrees on
// the tie-break.
func SortByScore(records []*model.PlayerRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Score != records[j].Score {
			return records[i].Score > records[j].Score
		}
		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})
}
