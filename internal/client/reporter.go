package client

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AriellAlcantara/Gamebackend/internal/dependencies/clock"
)

// Reporter pushes minigame outcomes to the service and keeps the local
// mirror reconciled with the authoritative record
type Reporter struct {
	client *Client
	mirror *Mirror
	clock  clock.Clock
	logger *slog.Logger
}

// NewReporter creates a new outcome reporter
func NewReporter(apiClient *Client, mirror *Mirror, clk clock.Clock, logger *slog.Logger) *Reporter {
	return &Reporter{
		client: apiClient,
		mirror: mirror,
		clock:  clk,
		logger: logger,
	}
}

// ReportOutcome records a win or loss. The mirror is updated
// optimistically first, so a lost connection still counts the game
// locally; the server update sends absolute values recomputed from the
// mirror, and the response overwrites the mirror again.
func (r *Reporter) ReportOutcome(ctx context.Context, password string, won bool) (*Record, error) {
	state, err := r.mirror.ApplyOutcome(won, r.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("updating local mirror: %w", err)
	}

	wins := state.Stats.Wins
	losses := state.Stats.Losses
	score := state.Stats.Score

	record, err := r.client.UpdateRecord(ctx, state.Handle, password, Update{
		Wins:   &wins,
		Losses: &losses,
		Score:  &score,
	})
	if err != nil {
		r.logger.Warn("outcome not reported, keeping local result",
			slog.String("handle", state.Handle),
			slog.Bool("won", won),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	if err := r.mirror.Reconcile(state.ServerURL, record, r.clock.Now()); err != nil {
		return record, fmt.Errorf("reconciling mirror: %w", err)
	}
	return record, nil
}
