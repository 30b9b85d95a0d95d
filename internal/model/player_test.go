package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewPlayerRecordDefaults(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	r := NewPlayerRecord("alice", "hash", "a@x.com", now)

	assert.Equal(t, "alice", r.Handle)
	assert.Equal(t, 1, r.Level)
	assert.Equal(t, 0, r.Experience)
	assert.Equal(t, 0, r.Score)
	assert.Equal(t, 0, r.Wins)
	assert.Equal(t, 0, r.Losses)
	assert.Equal(t, now, r.CreatedAt)
	assert.True(t, r.LastLoginAt.IsZero())
}

func TestWinRate(t *testing.T) {
	r := &PlayerRecord{Wins: 3, Losses: 1}
	assert.Equal(t, 75, r.WinRate())

	r = &PlayerRecord{}
	assert.Equal(t, 0, r.WinRate())

	r = &PlayerRecord{Wins: 1, Losses: 2}
	assert.Equal(t, 33, r.WinRate())
}

func TestApplyOutcomeWin(t *testing.T) {
	r := &PlayerRecord{}
	r.ApplyOutcome(true)

	assert.Equal(t, 1, r.Wins)
	assert.Equal(t, 0, r.Losses)
	assert.Equal(t, 1, r.Score)
}

func TestApplyOutcomeLossClampsScoreAtZero(t *testing.T) {
	r := &PlayerRecord{}

	// Losses while at zero keep the score pinned there
	r.ApplyOutcome(false)
	r.ApplyOutcome(false)
	assert.Equal(t, 0, r.Score)
	assert.Equal(t, 2, r.Losses)

	// A win lifts it off the floor again
	r.ApplyOutcome(true)
	assert.Equal(t, 1, r.Score)

	r.ApplyOutcome(false)
	assert.Equal(t, 0, r.Score)
}

func TestApplyOutcomeSequenceNeverNegative(t *testing.T) {
	r := &PlayerRecord{}
	outcomes := []bool{false, true, true, false, false, false, true, false}
	for _, won := range outcomes {
		r.ApplyOutcome(won)
		assert.GreaterOrEqual(t, r.Score, 0)
	}
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 0, ClampScore(-5))
	assert.Equal(t, 0, ClampScore(0))
	assert.Equal(t, 7, ClampScore(7))
}

func TestCloneDoesNotAlias(t *testing.T) {
	r := &PlayerRecord{ID: "p1", Handle: "alice", Score: 3}
	cp := r.Clone()
	cp.Score = 99

	assert.Equal(t, 3, r.Score)
	assert.Equal(t, r.ID, cp.ID)
}
