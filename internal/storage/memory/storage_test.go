package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/AriellAlcantara/Gamebackend/internal/model"
	"github.com/AriellAlcantara/Gamebackend/internal/storage"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
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

func (s *StorageSuite) TestCreateAssignsID() {
	record := s.record("alice", 0, time.Now())

	err := s.storage.CreatePlayer(s.ctx, record)
	s.Require().NoError(err)
	s.NotEmpty(record.ID)
}

func (s *StorageSuite) TestCreateAndGetPlayer() {
	record := s.record("alice", 3, time.Now())
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, record))

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

func (s *StorageSuite) TestGetPlayerByHandleIsCaseSensitive() {
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, s.record("Alice", 0, time.Now())))

	_, err := s.storage.GetPlayerByHandle(s.ctx, "alice")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestUpdatePlayerPartial() {
	record := s.record("alice", 2, time.Now())
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, record))

	level := 5
	updated, err := s.storage.UpdatePlayer(s.ctx, record.ID, storage.PlayerUpdate{Level: &level})
	s.Require().NoError(err)

	s.Equal(5, updated.Level)
	// Untouched fields unchanged
	s.Equal(2, updated.Score)
	s.Equal("alice", updated.Handle)
}

func (s *StorageSuite) TestUpdatePlayerNotFound() {
	level := 5
	_, err := s.storage.UpdatePlayer(s.ctx, "nonexistent", storage.PlayerUpdate{Level: &level})
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestUpdateReturnedRecordDoesNotAliasStore() {
	record := s.record("alice", 0, time.Now())
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, record))

	updated, err := s.storage.UpdatePlayer(s.ctx, record.ID, storage.PlayerUpdate{})
	s.Require().NoError(err)
	updated.Score = 99

	retrieved, err := s.storage.GetPlayer(s.ctx, record.ID)
	s.Require().NoError(err)
	s.Equal(0, retrieved.Score)
}

func (s *StorageSuite) TestDeletePlayerFreesHandle() {
	record := s.record("alice", 0, time.Now())
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, record))

	s.Require().NoError(s.storage.DeletePlayer(s.ctx, record.ID))

	_, err := s.storage.GetPlayer(s.ctx, record.ID)
	s.ErrorIs(err, model.ErrPlayerNotFound)

	// Handle can be registered again
	s.NoError(s.storage.CreatePlayer(s.ctx, s.record("alice", 0, time.Now())))
}

func (s *StorageSuite) TestDeletePlayerNotFound() {
	s.ErrorIs(s.storage.DeletePlayer(s.ctx, "nonexistent"), model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestListPlayersOrdersByScoreDescending() {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, s.record("low", 1, base)))
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, s.record("high", 9, base.Add(time.Minute))))
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, s.record("mid", 5, base.Add(2*time.Minute))))

	records, err := s.storage.ListPlayers(s.ctx, 0)
	s.Require().NoError(err)
	s.Require().Len(records, 3)
	s.Equal("high", records[0].Handle)
	s.Equal("mid", records[1].Handle)
	s.Equal("low", records[2].Handle)
}

func (s *StorageSuite) TestListPlayersBreaksTiesByCreation() {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, s.record("first", 5, base)))
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, s.record("second", 5, base.Add(time.Minute))))

	records, err := s.storage.ListPlayers(s.ctx, 0)
	s.Require().NoError(err)
	s.Require().Len(records, 2)
	s.Equal("first", records[0].Handle)
	s.Equal("second", records[1].Handle)
}

func (s *StorageSuite) TestListPlayersAppliesLimit() {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, handle := range []string{"a", "b", "c"} {
		s.Require().NoError(s.storage.CreatePlayer(s.ctx, s.record(handle, i, base.Add(time.Duration(i)*time.Minute))))
	}

	records, err := s.storage.ListPlayers(s.ctx, 2)
	s.Require().NoError(err)
	s.Len(records, 2)
}

func (s *StorageSuite) TestListPlayersEmptyStore() {
	records, err := s.storage.ListPlayers(s.ctx, 10)
	s.Require().NoError(err)
	s.Empty(records)
}
