// Package flatfile persists the whole player collection as a single
// JSON file rewritten on every mutation. It is a low-cost fallback for
// development and small deployments: writes are O(n), uniqueness is a
// linear scan, and only one process may own the file at a time.
// Mutations from concurrent processes are NOT safe; within a process a
// single mutex serializes every read-modify-write.
package flatfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/AriellAlcantara/Gamebackend/internal/model"
	"github.com/AriellAlcantara/Gamebackend/internal/storage"
)

// Storage is a flat-file implementation of the storage interface
type Storage struct {
	mu   sync.Mutex
	path string
}

// New creates a flat-file storage backed by the file at path,
// creating the parent directory if needed
func New(path string) (*Storage, error) {
	if path == "" {
		return nil, errors.New("flatfile: path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("flatfile: creating data dir: %w", err)
	}
	return &Storage{path: path}, nil
}

// Ensure Storage implements the interface
var _ storage.Store = (*Storage)(nil)

// collection is the on-disk layout: one array of records
type collection struct {
	Players []*model.PlayerRecord `json:"players"`
}

func (s *Storage) load() (*collection, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &collection{}, nil
		}
		return nil, fmt.Errorf("flatfile: reading %s: %w", s.path, err)
	}
	if len(data) == 0 {
		return &collection{}, nil
	}

	var col collection
	if err := json.Unmarshal(data, &col); err != nil {
		return nil, fmt.Errorf("flatfile: parsing %s: %w", s.path, err)
	}
	return &col, nil
}

// save rewrites the collection wholesale, via a temp file and rename
// so a crash mid-write cannot truncate the live file
func (s *Storage) save(col *collection) error {
	data, err := json.MarshalIndent(col, "", "  ")
	if err != nil {
		return fmt.Errorf("flatfile: encoding collection: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".players-*.json")
	if err != nil {
		return fmt.Errorf("flatfile: creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("flatfile: writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("flatfile: closing temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("flatfile: replacing %s: %w", s.path, err)
	}
	return nil
}

func (s *Storage) CreatePlayer(ctx context.Context, record *model.PlayerRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	col, err := s.load()
	if err != nil {
		return err
	}

	// Uniqueness by full scan; acceptable at this backend's scale
	for _, existing := range col.Players {
		if existing.Handle == record.Handle {
			return model.ErrHandleExists
		}
	}

	if record.ID == "" {
		record.ID = model.PlayerID(uuid.NewString())
	}

	col.Players = append(col.Players, record.Clone())
	return s.save(col)
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.PlayerRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	col, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, record := range col.Players {
		if record.ID == id {
			return record.Clone(), nil
		}
	}
	return nil, model.ErrPlayerNotFound
}

func (s *Storage) GetPlayerByHandle(ctx context.Context, handle string) (*model.PlayerRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	col, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, record := range col.Players {
		if record.Handle == handle {
			return record.Clone(), nil
		}
	}
	return nil, model.ErrPlayerNotFound
}

func (s *Storage) UpdatePlayer(ctx context.Context, id model.PlayerID, update storage.PlayerUpdate) (*model.PlayerRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	col, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, record := range col.Players {
		if record.ID == id {
			update.Apply(record)
			if err := s.save(col); err != nil {
				return nil, err
			}
			return record.Clone(), nil
		}
	}
	return nil, model.ErrPlayerNotFound
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	col, err := s.load()
	if err != nil {
		return err
	}
	for i, record := range col.Players {
		if record.ID == id {
			col.Players = append(col.Players[:i], col.Players[i+1:]...)
			return s.save(col)
		}
	}
	return model.ErrPlayerNotFound
}

func (s *Storage) ListPlayers(ctx context.Context, limit int) ([]*model.PlayerRecord, error) {
	s.mu.Lock()
	col, err := s.load()
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	records := make([]*model.PlayerRecord, 0, len(col.Players))
	for _, record := range col.Players {
		records = append(records, record.Clone())
	}

	storage.SortByScore(records)
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}
