// Package player implements the authenticated player-record service:
// registration, credential-gated reads and mutations, and the
// leaderboard. There is no session layer; every privileged operation
// re-presents the plaintext credential and is verified against the
// stored hash.
package player

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"unicode"

	"github.com/AriellAlcantara/Gamebackend/internal/credential"
	"github.com/AriellAlcantara/Gamebackend/internal/dependencies/clock"
	"github.com/AriellAlcantara/Gamebackend/internal/model"
	"github.com/AriellAlcantara/Gamebackend/internal/storage"
)

// Errors
var (
	// ErrInvalidInput marks client errors detected before touching the
	// store; wrapped errors carry the specific reason.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized covers both an unknown handle and a wrong
	// credential so callers cannot enumerate handles.
	ErrUnauthorized = errors.New("invalid handle or credential")
)

// Ref addresses a record by id or by handle; exactly one should be set.
// The id takes precedence when both are present.
type Ref struct {
	ID     model.PlayerID
	Handle string
}

// UpdateRequest is the partial-update surface of the service. Nil
// fields are left unchanged. NewCredential is the plaintext
// replacement credential; the service hashes it before it reaches the
// store.
type UpdateRequest struct {
	Email         *string
	Level         *int
	Experience    *int
	Score         *int
	Wins          *int
	Losses        *int
	NewCredential *string
}

// Config holds configuration for the player service
type Config struct {
	DefaultLeaderboardLimit int
	MaxLeaderboardLimit     int
}

// DefaultConfig returns default service configuration
func DefaultConfig() Config {
	return Config{
		DefaultLeaderboardLimit: 10,
		MaxLeaderboardLimit:     50,
	}
}

// Service owns validation and authorization policy for player records
type Service struct {
	store  storage.Store
	codec  *credential.Codec
	clock  clock.Clock
	logger *slog.Logger

	defaultLimit int
	maxLimit     int
}

// New creates a new player record service
func New(store storage.Store, codec *credential.Codec, clk clock.Clock, cfg Config, logger *slog.Logger) *Service {
	if cfg.DefaultLeaderboardLimit <= 0 {
		cfg.DefaultLeaderboardLimit = DefaultConfig().DefaultLeaderboardLimit
	}
	if cfg.MaxLeaderboardLimit <= 0 {
		cfg.MaxLeaderboardLimit = DefaultConfig().MaxLeaderboardLimit
	}
	return &Service{
		store:        store,
		codec:        codec,
		clock:        clk,
		logger:       logger,
		defaultLimit: cfg.DefaultLeaderboardLimit,
		maxLimit:     cfg.MaxLeaderboardLimit,
	}
}

// Register creates a new player record with default progression stats
func (s *Service) Register(ctx context.Context, handle, password, email string) (*model.PlayerRecord, error) {
	if err := validateHandle(handle); err != nil {
		return nil, err
	}
	if password == "" {
		return nil, fmt.Errorf("%w: credential is required", ErrInvalidInput)
	}

	hash, err := s.codec.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hashing credential: %w", err)
	}

	record := model.NewPlayerRecord(handle, hash, email, s.clock.Now())
	if err := s.store.CreatePlayer(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info("player registered", slog.String("handle", handle), slog.String("id", string(record.ID)))
	return record, nil
}

// Login verifies the credential and stamps LastLoginAt. An unknown
// handle and a wrong credential fail identically.
func (s *Service) Login(ctx context.Context, handle, password string) (*model.PlayerRecord, error) {
	if handle == "" {
		return nil, fmt.Errorf("%w: handle is required", ErrInvalidInput)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: credential is required", ErrInvalidInput)
	}

	record, err := s.store.GetPlayerByHandle(ctx, handle)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	if err := s.verify(password, record); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	updated, err := s.store.UpdatePlayer(ctx, record.ID, storage.PlayerUpdate{LastLoginAt: &now})
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			// Deleted between lookup and stamp; same unified failure
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	return updated, nil
}

// Fetch returns the record addressed by ref after re-verifying the
// credential
func (s *Service) Fetch(ctx context.Context, ref Ref, password string) (*model.PlayerRecord, error) {
	return s.authenticate(ctx, ref, password)
}

// Update applies a partial update after re-verifying the credential.
// An empty update is still credential-checked. Absolute score values
// are floored at zero; the other counters must be non-negative.
func (s *Service) Update(ctx context.Context, ref Ref, password string, req UpdateRequest) (*model.PlayerRecord, error) {
	record, err := s.authenticate(ctx, ref, password)
	if err != nil {
		return nil, err
	}

	update, err := s.buildUpdate(req)
	if err != nil {
		return nil, err
	}

	updated, err := s.store.UpdatePlayer(ctx, record.ID, update)
	if err != nil {
		return nil, err
	}

	s.logger.Info("player updated", slog.String("id", string(record.ID)))
	return updated, nil
}

// Delete removes the record after re-verifying the credential.
// Deletion is terminal; the handle becomes available again.
func (s *Service) Delete(ctx context.Context, ref Ref, password string) error {
	record, err := s.authenticate(ctx, ref, password)
	if err != nil {
		return err
	}

	if err := s.store.DeletePlayer(ctx, record.ID); err != nil {
		return err
	}

	s.logger.Info("player deleted", slog.String("handle", record.Handle), slog.String("id", string(record.ID)))
	return nil
}

// Leaderboard lists records by descending score. A non-positive limit
// falls back to the default; oversized limits are clamped, never an
// error.
func (s *Service) Leaderboard(ctx context.Context, limit int) ([]*model.PlayerRecord, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}
	return s.store.ListPlayers(ctx, limit)
}

// ListAll returns every record, for the admin listing
func (s *Service) ListAll(ctx context.Context) ([]*model.PlayerRecord, error) {
	return s.store.ListPlayers(ctx, 0)
}

// authenticate resolves ref and verifies the credential. A missing
// record is ErrPlayerNotFound; a credential mismatch is
// ErrUnauthorized.
func (s *Service) authenticate(ctx context.Context, ref Ref, password string) (*model.PlayerRecord, error) {
	if password == "" {
		return nil, fmt.Errorf("%w: credential is required", ErrInvalidInput)
	}

	var (
		record *model.PlayerRecord
		err    error
	)
	switch {
	case ref.ID != "":
		record, err = s.store.GetPlayer(ctx, ref.ID)
	case ref.Handle != "":
		record, err = s.store.GetPlayerByHandle(ctx, ref.Handle)
	default:
		return nil, fmt.Errorf("%w: id or handle is required", ErrInvalidInput)
	}
	if err != nil {
		return nil, err
	}

	if err := s.verify(password, record); err != nil {
		return nil, err
	}
	return record, nil
}

// verify checks the plaintext against the stored hash, logging hash
// corruption server-side without leaking it to the caller
func (s *Service) verify(password string, record *model.PlayerRecord) error {
	ok, err := s.codec.Check(password, record.PasswordHash)
	if err != nil {
		s.logger.Error("stored credential hash is malformed",
			slog.String("id", string(record.ID)),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("verifying credential: %w", err)
	}
	if !ok {
		return ErrUnauthorized
	}
	return nil
}

func (s *Service) buildUpdate(req UpdateRequest) (storage.PlayerUpdate, error) {
	var update storage.PlayerUpdate

	for name, v := range map[string]*int{
		"level":      req.Level,
		"experience": req.Experience,
		"wins":       req.Wins,
		"losses":     req.Losses,
	} {
		if v != nil && *v < 0 {
			return update, fmt.Errorf("%w: %s must be non-negative", ErrInvalidInput, name)
		}
	}

	update.Email = req.Email
	update.Level = req.Level
	update.Experience = req.Experience
	update.Wins = req.Wins
	update.Losses = req.Losses

	if req.Score != nil {
		clamped := model.ClampScore(*req.Score)
		update.Score = &clamped
	}

	if req.NewCredential != nil {
		if *req.NewCredential == "" {
			return update, fmt.Errorf("%w: new credential must not be empty", ErrInvalidInput)
		}
		hash, err := s.codec.Hash(*req.NewCredential)
		if err != nil {
			return update, fmt.Errorf("hashing new credential: %w", err)
		}
		update.PasswordHash = &hash
	}

	return update, nil
}

func validateHandle(handle string) error {
	if handle == "" {
		return fmt.Errorf("%w: handle is required", ErrInvalidInput)
	}
	if len(handle) > model.MaxHandleLength {
		return fmt.Errorf("%w: handle exceeds %d characters", ErrInvalidInput, model.MaxHandleLength)
	}
	for _, r := range handle {
		if !unicode.IsPrint(r) || unicode.IsSpace(r) {
			return fmt.Errorf("%w: handle must be printable with no whitespace", ErrInvalidInput)
		}
	}
	return nil
}
