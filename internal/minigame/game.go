// Package minigame implements the dice duel played between the local
// player and a house opponent: both roll a die each round, higher
// total over all rounds wins, with sudden-death rounds on a tie.
package minigame

import (
	"github.com/AriellAlcantara/Gamebackend/internal/dependencies/random"
)

// Config holds configuration for a duel
type Config struct {
	Rounds   int
	DieSides int
}

// DefaultConfig returns the standard three-round, six-sided duel
func DefaultConfig() Config {
	return Config{
		Rounds:   3,
		DieSides: 6,
	}
}

// Round is a single pair of rolls
type Round struct {
	PlayerRoll   int
	OpponentRoll int
}

// Result is the outcome of a completed duel
type Result struct {
	PlayerWon     bool
	PlayerTotal   int
	OpponentTotal int
	Rounds        []Round
}

// Game runs duels with injectable randomness
type Game struct {
	rnd random.Random
	cfg Config
}

// New creates a new duel game
func New(rnd random.Random, cfg Config) *Game {
	if cfg.Rounds <= 0 {
		cfg.Rounds = DefaultConfig().Rounds
	}
	if cfg.DieSides <= 1 {
		cfg.DieSides = DefaultConfig().DieSides
	}
	return &Game{rnd: rnd, cfg: cfg}
}

// Play runs a full duel. Ties after the configured rounds are resolved
// by sudden-death rounds, so a result is never a draw.
func (g *Game) Play() Result {
	result := Result{}

	for i := 0; i < g.cfg.Rounds; i++ {
		result = g.playRound(result)
	}

	for result.PlayerTotal == result.OpponentTotal {
		result = g.playRound(result)
	}

	result.PlayerWon = result.PlayerTotal > result.OpponentTotal
	return result
}

func (g *Game) playRound(result Result) Result {
	round := Round{
		PlayerRoll:   g.roll(),
		OpponentRoll: g.roll(),
	}
	result.Rounds = append(result.Rounds, round)
	result.PlayerTotal += round.PlayerRoll
	result.OpponentTotal += round.OpponentRoll
	return result
}

func (g *Game) roll() int {
	return g.rnd.Intn(g.cfg.DieSides) + 1
}
