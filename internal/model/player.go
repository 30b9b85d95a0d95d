package model

import "time"

// PlayerID uniquely identifies a player record across the system
type PlayerID string

// MaxHandleLength is the longest handle accepted at registration
const MaxHandleLength = 32

// PlayerRecord is the canonical player entity.
// PasswordHash is the only stored form of the credential; the plaintext
// is never persisted and the hash is never included in API responses.
type PlayerRecord struct {
	ID           PlayerID  `json:"id"`
	Handle       string    `json:"handle"` // unique, immutable after creation
	PasswordHash string    `json:"password_hash"`
	Email        string    `json:"email,omitempty"`
	Level        int       `json:"level"`
	Experience   int       `json:"experience"`
	Score        int       `json:"score"`
	Wins         int       `json:"wins"`
	Losses       int       `json:"losses"`
	CreatedAt    time.Time `json:"created_at"`
	LastLoginAt  time.Time `json:"last_login_at,omitempty"`
}

// NewPlayerRecord builds a record with the default progression stats.
// The store assigns the ID at creation.
func NewPlayerRecord(handle, passwordHash, email string, now time.Time) *PlayerRecord {
	return &PlayerRecord{
		Handle:       handle,
		PasswordHash: passwordHash,
		Email:        email,
		Level:        1,
		Experience:   0,
		Score:        0,
		CreatedAt:    now,
	}
}

// WinRate derives the win percentage from wins and losses.
// It is never persisted; always recompute from the counters.
func (r *PlayerRecord) WinRate() int {
	total := r.Wins + r.Losses
	if total == 0 {
		return 0
	}
	return 100 * r.Wins / total
}

// ApplyOutcome folds a single game outcome into the progression stats.
// A loss decrements the score but never below zero.
func (r *PlayerRecord) ApplyOutcome(won bool) {
	if won {
		r.Wins++
		r.Score++
		return
	}
	r.Losses++
	if r.Score > 0 {
		r.Score--
	}
}

// ClampScore applies the floor-at-zero rule to an absolute score value.
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	return score
}

// Clone returns a copy so stores can hand out records without aliasing
// their internal state.
func (r *PlayerRecord) Clone() *PlayerRecord {
	cp := *r
	return &cp
}
