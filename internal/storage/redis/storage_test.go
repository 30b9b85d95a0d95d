package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/AriellAlcantara/Gamebackend/internal/model"
	"github.com/AriellAlcantara/Gamebackend/internal/storage"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) record(handle string, score int, created time.Time) *model.PlayerRecord {
	return &model.PlayerRecord{
		Handle:       handle,
		PasswordHash: "hash",
		Level:        1,
		Score:        score,
		CreatedAt:    created,
	}
}

func (s *StorageSuite) TestCreateAssignsIDAndRoundTrips() {
	record := s.record("alice", 3, time.Now().UTC())
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, record))
	s.NotEmpty(record.ID)

	retrieved, err := s.storage.GetPlayer(s.ctx, record.ID)
	s.Require().NoError(err)
	s.Equal("alice", retrieved.Handle)
	s.Equal(3, retrieved.Score)
}

func (s *StorageSuite) TestCreateDuplicateHandleFails() {
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, s.record("alice", 0, time.Now())))

	err := s.storage.CreatePlayer(s.ctx, s.record("alice", 0, time.Now()))
	s.ErrorIs(err, model.ErrHandleExists)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestGetPlayerByHandle() {
	record := s.record("alice", 0, time.Now())
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, record))

	retrieved, err := s.storage.GetPlayerByHandle(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(record.ID, retrieved.ID)
}

func (s *StorageSuite) TestGetPlayerByHandleNotFound() {
	_, err := s.storage.GetPlayerByHandle(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestUpdatePlayerPartial() {
	record := s.record("alice", 2, time.Now().UTC())
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, record))

	level := 5
	email := "a@x.com"
	updated, err := s.storage.UpdatePlayer(s.ctx, record.ID, storage.PlayerUpdate{Level: &level, Email: &email})
	s.Require().NoError(err)
	s.Equal(5, updated.Level)
	s.Equal("a@x.com", updated.Email)
	s.Equal(2, updated.Score)

	retrieved, err := s.storage.GetPlayer(s.ctx, record.ID)
	s.Require().NoError(err)
	s.Equal(5, retrieved.Level)
}

func (s *StorageSuite) TestUpdatePlayerNotFound() {
	level := 5
	_, err := s.storage.UpdatePlayer(s.ctx, "nonexistent", storage.PlayerUpdate{Level: &level})
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestUpdateScoreMovesLeaderboard() {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	alice := s.record("alice", 1, base)
	bob := s.record("bob", 5, base.Add(time.Minute))
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, alice))
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, bob))

	score := 9
	_, err := s.storage.UpdatePlayer(s.ctx, alice.ID, storage.PlayerUpdate{Score: &score})
	s.Require().NoError(err)

	records, err := s.storage.ListPlayers(s.ctx, 0)
	s.Require().NoError(err)
	s.Require().Len(records, 2)
	s.Equal("alice", records[0].Handle)
}

func (s *StorageSuite) TestDeletePlayerFreesHandleAndIndex() {
	record := s.record("alice", 4, time.Now())
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, record))

	s.Require().NoError(s.storage.DeletePlayer(s.ctx, record.ID))

	_, err := s.storage.GetPlayer(s.ctx, record.ID)
	s.ErrorIs(err, model.ErrPlayerNotFound)

	records, err := s.storage.ListPlayers(s.ctx, 0)
	s.Require().NoError(err)
	s.Empty(records)

	s.NoError(s.storage.CreatePlayer(s.ctx, s.record("alice", 0, time.Now())))
}

func (s *StorageSuite) TestDeletePlayerNotFound() {
	s.ErrorIs(s.storage.DeletePlayer(s.ctx, "nonexistent"), model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestListPlayersOrderTiesAndLimit() {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, s.record("older", 5, base)))
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, s.record("top", 9, base.Add(time.Minute))))
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, s.record("newer", 5, base.Add(2*time.Minute))))

	records, err := s.storage.ListPlayers(s.ctx, 0)
	s.Require().NoError(err)
	s.Require().Len(records, 3)
	s.Equal("top", records[0].Handle)
	s.Equal("older", records[1].Handle)
	s.Equal("newer", records[2].Handle)

	limited, err := s.storage.ListPlayers(s.ctx, 1)
	s.Require().NoError(err)
	s.Require().Len(limited, 1)
	s.Equal("top", limited[0].Handle)
}

func (s *StorageSuite) TestListPlayersEmpty() {
	records, err := s.storage.ListPlayers(s.ctx, 10)
	s.Require().NoError(err)
	s.Empty(records)
}
