package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/AriellAlcantara/Gamebackend/internal/api"
	"github.com/AriellAlcantara/Gamebackend/internal/config"
	"github.com/AriellAlcantara/Gamebackend/internal/credential"
	"github.com/AriellAlcantara/Gamebackend/internal/factory"
	"github.com/AriellAlcantara/Gamebackend/internal/services/player"
	redisstorage "github.com/AriellAlcantara/Gamebackend/internal/storage/redis"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := loadConfig(logger)

	// Build factory config
	factoryCfg := factory.Config{
		Logger:           logger,
		StorageType:      cfg.Storage.Backend,
		FilePath:         cfg.Storage.FilePath,
		CredentialConfig: credential.Config{Cost: cfg.Auth.BcryptCost},
		PlayerConfig: player.Config{
			DefaultLeaderboardLimit: cfg.Leaderboard.DefaultLimit,
			MaxLeaderboardLimit:     cfg.Leaderboard.MaxLimit,
		},
	}

	if cfg.Storage.Backend == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.Storage.Redis.URL
		redisCfg.PoolSize = cfg.Storage.Redis.PoolSize
		redisCfg.MinIdleConns = cfg.Storage.Redis.MinIdleConns
		factoryCfg.RedisConfig = &redisCfg
	}

	// Create application factory
	app, err := factory.New(factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:        logger,
		PlayerService: app.PlayerService,
		AdminSecret:   cfg.Admin.Secret,
	})

	// Create server
	serverConfig := api.ServerConfig{
		Host:            cfg.Server.Host,
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started",
		slog.String("addr", server.Addr()),
		slog.String("storage", cfg.Storage.Backend),
	)

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}

// loadConfig reads the config file named by GAMEBACKEND_CONFIG, then
// lets a few common environment variables override it
func loadConfig(logger *slog.Logger) *config.Config {
	var cfg *config.Config

	if path := os.Getenv("GAMEBACKEND_CONFIG"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			logger.Error("failed to load config", slog.String("path", path), slog.String("error", err.Error()))
			os.Exit(1)
		}
		cfg = loaded
	} else {
		cfg = config.Default()
	}

	if backend := os.Getenv("STORAGE_BACKEND"); backend != "" {
		cfg.Storage.Backend = backend
	}
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		cfg.Storage.Redis.URL = redisURL
	}
	if filePath := os.Getenv("STORAGE_FILE_PATH"); filePath != "" {
		cfg.Storage.FilePath = filePath
	}
	if secret := os.Getenv("ADMIN_SECRET"); secret != "" {
		cfg.Admin.Secret = secret
	}

	if cfg.Storage.Backend == factory.StorageTypeRedis && cfg.Storage.Redis.URL == "" {
		logger.Error("REDIS_URL required when storage backend is redis")
		os.Exit(1)
	}

	return cfg
}
