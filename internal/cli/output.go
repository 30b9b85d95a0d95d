package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/AriellAlcantara/Gamebackend/internal/client"
	"github.com/AriellAlcantara/Gamebackend/internal/minigame"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"error": err.Error()})
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case *client.Record:
		o.printRecord(v)
	case []client.LeaderboardEntry:
		o.printLeaderboard(v)
	case minigame.Result:
		o.printDuelResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printRecord(r *client.Record) {
	fmt.Printf("Player: %s (%s)\n", r.Handle, r.ID)
	if r.Email != "" {
		fmt.Printf("Email: %s\n", r.Email)
	}
	fmt.Printf("Level: %d (XP %d)\n", r.Level, r.Experience)
	fmt.Printf("Score: %d\n", r.Score)
	fmt.Printf("Record: %dW / %dL (%d%%)\n", r.Wins, r.Losses, r.WinRate)
	if r.LastLoginAt != nil {
		fmt.Printf("Last login: %s\n", r.LastLoginAt.Format("2006-01-02 15:04:05 MST"))
	}
}

func (o *Output) printLeaderboard(entries []client.LeaderboardEntry) {
	if len(entries) == 0 {
		fmt.Println("Leaderboard is empty")
		return
	}

	fmt.Printf("%-5s %-20s %7s %6s %6s %6s\n", "RANK", "HANDLE", "SCORE", "LEVEL", "W/L", "RATE")
	for _, e := range entries {
		fmt.Printf("%-5d %-20s %7d %6d %3d/%-3d %5d%%\n",
			e.Rank, e.Handle, e.Score, e.Level, e.Wins, e.Losses, e.WinRate)
	}
}

func (o *Output) printDuelResult(r minigame.Result) {
	for i, round := range r.Rounds {
		fmt.Printf("Round %d: you rolled %d, opponent rolled %d\n", i+1, round.PlayerRoll, round.OpponentRoll)
	}
	fmt.Printf("Total: you %d, opponent %d\n", r.PlayerTotal, r.OpponentTotal)
	if r.PlayerWon {
		fmt.Println("You won!")
	} else {
		fmt.Println("You lost.")
	}
}
