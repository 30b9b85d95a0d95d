package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/AriellAlcantara/Gamebackend/internal/client"
	"github.com/AriellAlcantara/Gamebackend/internal/dependencies/clock"
	"github.com/AriellAlcantara/Gamebackend/internal/dependencies/random"
	"github.com/AriellAlcantara/Gamebackend/internal/minigame"
)

func newPlayCmd() *cobra.Command {
	var rounds int

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a dice duel and report the outcome",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireIdentity(); err != nil {
				return err
			}

			gameCfg := minigame.DefaultConfig()
			if rounds > 0 {
				gameCfg.Rounds = rounds
			}

			result := minigame.New(random.New(), gameCfg).Play()

			out := NewOutput(cfg.Output)
			out.Print(result)

			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
			reporter := client.NewReporter(apiClient, mirror, clock.New(), logger)
			record, err := reporter.ReportOutcome(cmd.Context(), cfg.Password, result.PlayerWon)
			if err != nil {
				return fmt.Errorf("outcome kept locally but not reported: %w", err)
			}

			out.Print(record)
			return nil
		},
	}

	cmd.Flags().IntVar(&rounds, "rounds", 0, "Number of rounds (default 3)")

	return cmd
}
