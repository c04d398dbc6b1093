//go:build integration

package store_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"notary/internal/notary/models"
	"notary/internal/notary/store"
	"notary/pkg/testutil/containers"
)

type RedisStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *store.RedisStore
}

func TestRedisStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())
	s.store = store.NewRedisStore(s.redis.Client)
}

func (s *RedisStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisStoreSuite) TestLoadBeforeSave() {
	ctx := context.Background()

	ok, err := s.store.Initialized(ctx)
	s.Require().NoError(err)
	s.False(ok)

	_, err = s.store.Load(ctx)
	s.Require().ErrorIs(err, store.ErrNotInitialized)
}

func (s *RedisStoreSuite) TestRoundTrip() {
	ctx := context.Background()
	hash, err := models.ParseHash(strings.Repeat("aa", 32))
	s.Require().NoError(err)

	state := models.NewState("admin")
	state.Documents[hash] = models.Document{
		Hash:              hash,
		Status:            models.DocumentPending,
		Owner:             "owner",
		AuthorizedSigners: []models.Address{"alice", "bob"},
		Versions: []models.DocumentVersion{{
			Hash:            hash,
			Status:          models.VersionPendingApproval,
			RequiredSigners: []models.Address{"alice", "bob"},
		}},
	}
	state.UserDocuments["owner"] = []models.Hash{hash}
	state.Authorities = []models.Address{"authority"}
	state.Settings["EXP_DAYS"] = "365"

	s.Require().NoError(s.store.Save(ctx, state))

	ok, err := s.store.Initialized(ctx)
	s.Require().NoError(err)
	s.True(ok)

	loaded, err := s.store.Load(ctx)
	s.Require().NoError(err)
	s.Equal(models.Address("admin"), loaded.Admin)
	s.Equal(state.Documents[hash].AuthorizedSigners, loaded.Documents[hash].AuthorizedSigners)
	s.Equal([]models.Hash{hash}, loaded.UserDocuments["owner"])
	s.Equal("365", loaded.Settings["EXP_DAYS"])
}

func (s *RedisStoreSuite) TestSaveOverwrites() {
	ctx := context.Background()

	s.Require().NoError(s.store.Save(ctx, models.NewState("first")))
	s.Require().NoError(s.store.Save(ctx, models.NewState("second")))

	loaded, err := s.store.Load(ctx)
	s.Require().NoError(err)
	s.Equal(models.Address("second"), loaded.Admin)
}
