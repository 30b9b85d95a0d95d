package player

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/AriellAlcantara/Gamebackend/internal/credential"
	"github.com/AriellAlcantara/Gamebackend/internal/dependencies/mocks"
	"github.com/AriellAlcantara/Gamebackend/internal/model"
	"github.com/AriellAlcantara/Gamebackend/internal/storage/memory"
	"github.com/AriellAlcantara/Gamebackend/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	store   *memory.Storage
	clock   *mocks.MockClock
	codec   *credential.Codec
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.store = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.codec = credential.New(credential.Config{Cost: bcrypt.MinCost})
	s.service = New(s.store, s.codec, s.clock, DefaultConfig(), testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) register(handle string) *model.PlayerRecord {
	record, err := s.service.Register(s.ctx, handle, "secret", "")
	s.Require().NoError(err)
	return record
}

func (s *ServiceSuite) TestRegisterDefaults() {
	record, err := s.service.Register(s.ctx, "alice", "secret", "alice@example.com")
	s.Require().NoError(err)

	s.NotEmpty(record.ID)
	s.Equal("alice", record.Handle)
	s.Equal("alice@example.com", record.Email)
	s.Equal(1, record.Level)
	s.Equal(0, record.Experience)
	s.Equal(0, record.Score)
	s.Equal(0, record.Wins)
	s.Equal(0, record.Losses)
	s.Equal(s.clock.Now(), record.CreatedAt)
	s.True(record.LastLoginAt.IsZero())
	s.NotEqual("secret", record.PasswordHash)
}

func (s *ServiceSuite) TestRegisterValidation() {
	for name, tc := range map[string]struct {
		handle   string
		password string
	}{
		"empty handle":        {"", "secret"},
		"empty credential":    {"alice", ""},
		"overlong handle":     {"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", "secret"},
		"handle with space":   {"al ice", "secret"},
		"handle with newline": {"al\nice", "secret"},
	} {
		_, err := s.service.Register(s.ctx, tc.handle, tc.password, "")
		s.ErrorIs(err, ErrInvalidInput, name)
	}
}

func (s *ServiceSuite) TestRegisterDuplicateHandle() {
	s.register("alice")

	_, err := s.service.Register(s.ctx, "alice", "other", "")
	s.ErrorIs(err, model.ErrHandleExists)
}

func (s *ServiceSuite) TestLoginStampsLastLogin() {
	s.register("alice")
	s.clock.Advance(time.Hour)

	record, err := s.service.Login(s.ctx, "alice", "secret")
	s.Require().NoError(err)
	s.Equal(s.clock.Now(), record.LastLoginAt)
}

func (s *ServiceSuite) TestLoginUnknownHandleAndWrongCredentialFailAlike() {
	s.register("alice")

	_, unknownErr := s.service.Login(s.ctx, "nobody", "secret")
	_, wrongErr := s.service.Login(s.ctx, "alice", "wrong")

	s.ErrorIs(unknownErr, ErrUnauthorized)
	s.ErrorIs(wrongErr, ErrUnauthorized)
	s.Equal(unknownErr.Error(), wrongErr.Error())
}

func (s *ServiceSuite) TestLoginValidation() {
	_, err := s.service.Login(s.ctx, "", "secret")
	s.ErrorIs(err, ErrInvalidInput)

	_, err = s.service.Login(s.ctx, "alice", "")
	s.ErrorIs(err, ErrInvalidInput)
}

func (s *ServiceSuite) TestFetchByIDAndHandle() {
	record := s.register("alice")

	byID, err := s.service.Fetch(s.ctx, Ref{ID: record.ID}, "secret")
	s.Require().NoError(err)
	s.Equal(record.ID, byID.ID)

	byHandle, err := s.service.Fetch(s.ctx, Ref{Handle: "alice"}, "secret")
	s.Require().NoError(err)
	s.Equal(record.ID, byHandle.ID)
}

func (s *ServiceSuite) TestFetchDistinguishesMissingFromUnauthorized() {
	record := s.register("alice")

	_, err := s.service.Fetch(s.ctx, Ref{ID: "nonexistent"}, "secret")
	s.ErrorIs(err, model.ErrPlayerNotFound)

	_, err = s.service.Fetch(s.ctx, Ref{ID: record.ID}, "wrong")
	s.ErrorIs(err, ErrUnauthorized)
}

func (s *ServiceSuite) TestFetchRequiresRefAndCredential() {
	s.register("alice")

	_, err := s.service.Fetch(s.ctx, Ref{}, "secret")
	s.ErrorIs(err, ErrInvalidInput)

	_, err = s.service.Fetch(s.ctx, Ref{Handle: "alice"}, "")
	s.ErrorIs(err, ErrInvalidInput)
}

func (s *ServiceSuite) TestUpdatePartial() {
	record := s.register("alice")

	level := 4
	exp := 120
	updated, err := s.service.Update(s.ctx, Ref{ID: record.ID}, "secret", UpdateRequest{
		Level:      &level,
		Experience: &exp,
	})
	s.Require().NoError(err)
	s.Equal(4, updated.Level)
	s.Equal(120, updated.Experience)
	s.Equal(0, updated.Score)
	s.Equal("alice", updated.Handle)
}

func (s *ServiceSuite) TestUpdateClampsNegativeScore() {
	record := s.register("alice")

	score := -5
	updated, err := s.service.Update(s.ctx, Ref{ID: record.ID}, "secret", UpdateRequest{Score: &score})
	s.Require().NoError(err)
	s.Equal(0, updated.Score)
}

func (s *ServiceSuite) TestUpdateRejectsNegativeCounters() {
	record := s.register("alice")

	for _, field := range []string{"level", "experience", "wins", "losses"} {
		neg := -1
		req := UpdateRequest{}
		switch field {
		case "level":
			req.Level = &neg
		case "experience":
			req.Experience = &neg
		case "wins":
			req.Wins = &neg
		case "losses":
			req.Losses = &neg
		}
		_, err := s.service.Update(s.ctx, Ref{ID: record.ID}, "secret", req)
		s.ErrorIs(err, ErrInvalidInput, field)
	}
}

func (s *ServiceSuite) TestUpdateCredentialRotation() {
	record := s.register("alice")

	newCred := "rotated"
	_, err := s.service.Update(s.ctx, Ref{ID: record.ID}, "secret", UpdateRequest{NewCredential: &newCred})
	s.Require().NoError(err)

	_, err = s.service.Login(s.ctx, "alice", "secret")
	s.ErrorIs(err, ErrUnauthorized)

	_, err = s.service.Login(s.ctx, "alice", "rotated")
	s.NoError(err)
}

func (s *ServiceSuite) TestUpdateRejectsEmptyNewCredential() {
	record := s.register("alice")

	empty := ""
	_, err := s.service.Update(s.ctx, Ref{ID: record.ID}, "secret", UpdateRequest{NewCredential: &empty})
	s.ErrorIs(err, ErrInvalidInput)
}

func (s *ServiceSuite) TestUpdateWrongCredential() {
	record := s.register("alice")

	level := 2
	_, err := s.service.Update(s.ctx, Ref{ID: record.ID}, "wrong", UpdateRequest{Level: &level})
	s.ErrorIs(err, ErrUnauthorized)

	fetched, err := s.service.Fetch(s.ctx, Ref{ID: record.ID}, "secret")
	s.Require().NoError(err)
	s.Equal(1, fetched.Level)
}

func (s *ServiceSuite) TestDeleteFreesHandle() {
	record := s.register("alice")

	s.Require().NoError(s.service.Delete(s.ctx, Ref{ID: record.ID}, "secret"))

	_, err := s.service.Fetch(s.ctx, Ref{ID: record.ID}, "secret")
	s.ErrorIs(err, model.ErrPlayerNotFound)

	_, err = s.service.Register(s.ctx, "alice", "fresh", "")
	s.NoError(err)
}

func (s *ServiceSuite) TestDeleteWrongCredential() {
	record := s.register("alice")

	s.ErrorIs(s.service.Delete(s.ctx, Ref{ID: record.ID}, "wrong"), ErrUnauthorized)

	_, err := s.service.Fetch(s.ctx, Ref{ID: record.ID}, "secret")
	s.NoError(err)
}

func (s *ServiceSuite) TestLeaderboardLimits() {
	for i := 0; i < 15; i++ {
		record := s.register(fmt.Sprintf("player%02d", i))
		score := i
		_, err := s.service.Update(s.ctx, Ref{ID: record.ID}, "secret", UpdateRequest{Score: &score})
		s.Require().NoError(err)
		s.clock.Advance(time.Second)
	}

	defaulted, err := s.service.Leaderboard(s.ctx, 0)
	s.Require().NoError(err)
	s.Len(defaulted, 10)
	s.Equal("player14", defaulted[0].Handle)

	clamped, err := s.service.Leaderboard(s.ctx, 500)
	s.Require().NoError(err)
	s.Len(clamped, 15)

	exact, err := s.service.Leaderboard(s.ctx, 3)
	s.Require().NoError(err)
	s.Len(exact, 3)
}

func (s *ServiceSuite) TestLeaderboardTiesByRegistrationOrder() {
	first := s.register("first")
	s.clock.Advance(time.Minute)
	second := s.register("second")

	score := 5
	for _, id := range []model.PlayerID{second.ID, first.ID} {
		_, err := s.service.Update(s.ctx, Ref{ID: id}, "secret", UpdateRequest{Score: &score})
		s.Require().NoError(err)
	}

	records, err := s.service.Leaderboard(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(records, 2)
	s.Equal("first", records[0].Handle)
	s.Equal("second", records[1].Handle)
}

func (s *ServiceSuite) TestListAllReturnsEverything() {
	for i := 0; i < 12; i++ {
		s.register(fmt.Sprintf("player%02d", i))
		s.clock.Advance(time.Second)
	}

	records, err := s.service.ListAll(s.ctx)
	s.Require().NoError(err)
	s.Len(records, 12)
}
