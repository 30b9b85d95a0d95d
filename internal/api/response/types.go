package response

import (
	"time"

	"github.com/AriellAlcantara/Gamebackend/internal/model"
)

// Envelope is the shape of every API response body
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Player represents a player record in API responses. Credential
// material is never part of this type.
type Player struct {
	ID          string     `json:"id"`
	Handle      string     `json:"handle"`
	Email       string     `json:"email,omitempty"`
	Level       int        `json:"level"`
	Experience  int        `json:"experience"`
	Score       int        `json:"score"`
	Wins        int        `json:"wins"`
	Losses      int        `json:"losses"`
	WinRate     int        `json:"win_rate"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// PlayerFromModel converts a model.PlayerRecord to a response Player
func PlayerFromModel(p *model.PlayerRecord) Player {
	var lastLogin *time.Time
	if !p.LastLoginAt.IsZero() {
		t := p.LastLoginAt
		lastLogin = &t
	}
	return Player{
		ID:          string(p.ID),
		Handle:      p.Handle,
		Email:       p.Email,
		Level:       p.Level,
		Experience:  p.Experience,
		Score:       p.Score,
		Wins:        p.Wins,
		Losses:      p.Losses,
		WinRate:     p.WinRate(),
		CreatedAt:   p.CreatedAt,
		LastLoginAt: lastLogin,
	}
}

// LeaderboardEntry is the public slice of a record shown on the
// leaderboard; no email, no timestamps.
type LeaderboardEntry struct {
	Rank    int    `json:"rank"`
	Handle  string `json:"handle"`
	Level   int    `json:"level"`
	Score   int    `json:"score"`
	Wins    int    `json:"wins"`
	Losses  int    `json:"losses"`
	WinRate int    `json:"win_rate"`
}

// Leaderboard is the data payload of the leaderboard endpoint
type Leaderboard struct {
	Entries []LeaderboardEntry `json:"entries"`
}

// LeaderboardFromModel converts an ordered record slice to a
// Leaderboard with 1-based ranks
func LeaderboardFromModel(records []*model.PlayerRecord) Leaderboard {
	entries := make([]LeaderboardEntry, len(records))
	for i, r := range records {
		entries[i] = LeaderboardEntry{
			Rank:    i + 1,
			Handle:  r.Handle,
			Level:   r.Level,
			Score:   r.Score,
			Wins:    r.Wins,
			Losses:  r.Losses,
			WinRate: r.WinRate(),
		}
	}
	return Leaderboard{Entries: entries}
}

// PlayerList is the data payload of the admin listing
type PlayerList struct {
	Players []Player `json:"players"`
	Count   int      `json:"count"`
}

// PlayerListFromModel converts a record slice to a PlayerList
func PlayerListFromModel(records []*model.PlayerRecord) PlayerList {
	players := make([]Player, len(records))
	for i, r := range records {
		players[i] = PlayerFromModel(r)
	}
	return PlayerList{Players: players, Count: len(players)}
}
