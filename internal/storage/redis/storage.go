// Package redis is the durable storage backend: player records as JSON
// documents, a SETNX-reserved handle index for atomic creation, and a
// sorted set over scores backing the leaderboard.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/AriellAlcantara/Gamebackend/internal/model"
	"github.com/AriellAlcantara/Gamebackend/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Store = (*Storage)(nil)

func (s *Storage) CreatePlayer(ctx context.Context, record *model.PlayerRecord) error {
	if record.ID == "" {
		record.ID = model.PlayerID(uuid.NewString())
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding player record: %w", err)
	}

	// Reserve the handle first; SETNX is the atomicity point that stops
	// two concurrent creations of the same handle
	reserved, err := s.client.SetNX(ctx, handleIndexKey(record.Handle), string(record.ID), 0).Result()
	if err != nil {
		return fmt.Errorf("reserving handle: %w", err)
	}
	if !reserved {
		return model.ErrHandleExists
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, playerKey(record.ID), data, 0)
	pipe.ZAdd(ctx, scoreIndexKey(), redis.Z{Score: float64(record.Score), Member: string(record.ID)})
	if _, err := pipe.Exec(ctx); err != nil {
		// Release the reservation so the handle is not leaked
		_ = s.client.Del(ctx, handleIndexKey(record.Handle)).Err()
		return fmt.Errorf("writing player record: %w", err)
	}
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.PlayerRecord, error) {
	data, err := s.client.Get(ctx, playerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var record model.PlayerRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("decoding player record: %w", err)
	}
	return &record, nil
}

func (s *Storage) GetPlayerByHandle(ctx context.Context, handle string) (*model.PlayerRecord, error) {
	id, err := s.client.Get(ctx, handleIndexKey(handle)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	return s.GetPlayer(ctx, model.PlayerID(id))
}

func (s *Storage) UpdatePlayer(ctx context.Context, id model.PlayerID, update storage.PlayerUpdate) (*model.PlayerRecord, error) {
	record, err := s.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	update.Apply(record)

	data, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("encoding player record: %w", err)
	}

	// Field-level last-writer-wins; the document and score index are
	// kept in step by the pipeline
	pipe := s.client.Pipeline()
	pipe.Set(ctx, playerKey(id), data, 0)
	pipe.ZAdd(ctx, scoreIndexKey(), redis.Z{Score: float64(record.Score), Member: string(id)})
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("writing player record: %w", err)
	}
	return record, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	record, err := s.GetPlayer(ctx, id)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, playerKey(id))
	pipe.Del(ctx, handleIndexKey(record.Handle))
	pipe.ZRem(ctx, scoreIndexKey(), string(id))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("deleting player record: %w", err)
	}
	return nil
}

func (s *Storage) ListPlayers(ctx context.Context, limit int) ([]*model.PlayerRecord, error) {
	// The sorted set bounds candidates by score, but the final order is
	// resolved in Go so score ties break by insertion order, matching
	// the other backends
	ids, err := s.client.ZRevRange(ctx, scoreIndexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("listing player ids: %w", err)
	}
	if len(ids) == 0 {
		return []*model.PlayerRecord{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = playerKey(model.PlayerID(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("fetching player records: %w", err)
	}

	records := make([]*model.PlayerRecord, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // record deleted between ZREVRANGE and MGET
		}
		var record model.PlayerRecord
		if err := json.Unmarshal([]byte(val.(string)), &record); err != nil {
			continue // skip undecodable data
		}
		records = append(records, &record)
	}

	storage.SortByScore(records)
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}
