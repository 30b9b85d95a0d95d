// Package factory wires storage, dependencies and services into a
// runnable application.
package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/AriellAlcantara/Gamebackend/internal/credential"
	"github.com/AriellAlcantara/Gamebackend/internal/dependencies/clock"
	"github.com/AriellAlcantara/Gamebackend/internal/dependencies/random"
	"github.com/AriellAlcantara/Gamebackend/internal/services/player"
	"github.com/AriellAlcantara/Gamebackend/internal/storage"
	"github.com/AriellAlcantara/Gamebackend/internal/storage/flatfile"
	"github.com/AriellAlcantara/Gamebackend/internal/storage/memory"
	redisstorage "github.com/AriellAlcantara/Gamebackend/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory   = "memory"
	StorageTypeRedis    = "redis"
	StorageTypeFlatFile = "flatfile"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Store

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Codec         *credential.Codec
	PlayerService *player.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis" or
	// "flatfile"); if empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// FilePath is the collection file path (required if StorageType is "flatfile")
	FilePath string
	// CredentialConfig holds bcrypt settings (optional)
	CredentialConfig credential.Config
	// PlayerConfig holds player service settings (optional)
	PlayerConfig player.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Store
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	case StorageTypeFlatFile:
		fileStore, err := flatfile.New(cfg.FilePath)
		if err != nil {
			return nil, err
		}
		store = fileStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'redis' or 'flatfile'")
	}

	clk := clock.New()
	rnd := random.New()

	return newWithDependencies(store, clk, rnd, cfg.CredentialConfig, cfg.PlayerConfig, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Store,
	clk clock.Clock,
	rnd random.Random,
	credentialCfg credential.Config,
	playerCfg player.Config,
	logger *slog.Logger,
) *App {
	codec := credential.New(credentialCfg)
	playerService := player.New(store, codec, clk, playerCfg, logger)

	return &App{
		Storage:       store,
		Clock:         clk,
		Random:        rnd,
		Codec:         codec,
		PlayerService: playerService,
	}
}
