package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/AriellAlcantara/Gamebackend/internal/model"
	"github.com/AriellAlcantara/Gamebackend/internal/storage"
)

// Storage is an in-memory implementation of the storage interface,
// used for tests and local development
type Storage struct {
	mu sync.RWMutex

	players     map[model.PlayerID]*model.PlayerRecord
	handleIndex map[string]model.PlayerID
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players:     make(map[model.PlayerID]*model.PlayerRecord),
		handleIndex: make(map[string]model.PlayerID),
	}
}

// Ensure Storage implements the interface
var _ storage.Store = (*Storage)(nil)

func (s *Storage) CreatePlayer(ctx context.Context, record *model.PlayerRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.handleIndex[record.Handle]; exists {
		return model.ErrHandleExists
	}

	if record.ID == "" {
		record.ID = model.PlayerID(uuid.NewString())
	}

	s.players[record.ID] = record.Clone()
	s.handleIndex[record.Handle] = record.ID
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.PlayerRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return record.Clone(), nil
}

func (s *Storage) GetPlayerByHandle(ctx context.Context, handle string) (*model.PlayerRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.handleIndex[handle]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	record, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return record.Clone(), nil
}

func (s *Storage) UpdatePlayer(ctx context.Context, id model.PlayerID, update storage.PlayerUpdate) (*model.PlayerRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}

	update.Apply(record)
	return record.Clone(), nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.players[id]
	if !ok {
		return model.ErrPlayerNotFound
	}

	delete(s.handleIndex, record.Handle)
	delete(s.players, id)
	return nil
}

func (s *Storage) ListPlayers(ctx context.Context, limit int) ([]*model.PlayerRecord, error) {
	s.mu.RLock()
	records := make([]*model.PlayerRecord, 0, len(s.players))
	for _, record := range s.players {
		records = append(records, record.Clone())
	}
	s.mu.RUnlock()

	storage.SortByScore(records)
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}
