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

type PostgresStoreSuite struct {
	suite.Suite
	pg    *containers.PostgresContainer
	store *store.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.pg = containers.NewPostgresContainer(s.T())
	s.store = store.NewPostgresStore(s.pg.DB)
	s.Require().NoError(s.store.Migrate(context.Background()))
}

func (s *PostgresStoreSuite) SetupTest() {
	_, err := s.pg.DB.ExecContext(context.Background(), `DELETE FROM notary_state`)
	s.Require().NoError(err)
}

func (s *PostgresStoreSuite) TestLoadBeforeSave() {
	ctx := context.Background()

	ok, err := s.store.Initialized(ctx)
	s.Require().NoError(err)
	s.False(ok)

	_, err = s.store.Load(ctx)
	s.Require().ErrorIs(err, store.ErrNotInitialized)
}

func (s *PostgresStoreSuite) TestRoundTrip() {
	ctx := context.Background()
	hash, err := models.ParseHash(strings.Repeat("bb", 32))
	s.Require().NoError(err)

	state := models.NewState("admin")
	state.Documents[hash] = models.Document{
		Hash:   hash,
		Status: models.DocumentActive,
		Owner:  "owner",
		Versions: []models.DocumentVersion{{
			Hash:   hash,
			Status: models.VersionApproved,
			Signatures: []models.Signature{
				{Signer: "alice"},
			},
			RequiredSigners: []models.Address{"alice"},
		}},
		AuthorizedSigners: []models.Address{"alice"},
	}
	state.Claims["user"] = []models.IdentityClaim{{
		Authority: "authority",
		ClaimType: "kyc",
	}}

	s.Require().NoError(s.store.Save(ctx, state))

	loaded, err := s.store.Load(ctx)
	s.Require().NoError(err)
	s.Equal(models.DocumentActive, loaded.Documents[hash].Status)
	s.Len(loaded.Documents[hash].Versions[0].Signatures, 1)
	s.Equal("kyc", loaded.Claims["user"][0].ClaimType)
}

func (s *PostgresStoreSuite) TestSaveOverwrites() {
	ctx := context.Background()

	s.Require().NoError(s.store.Save(ctx, models.NewState("first")))
	s.Require().NoError(s.store.Save(ctx, models.NewState("second")))

	loaded, err := s.store.Load(ctx)
	s.Require().NoError(err)
	s.Equal(models.Address("second"), loaded.Admin)

	var count int
	err = s.pg.DB.QueryRowContext(ctx, `SELECT count(*) FROM notary_state`).Scan(&count)
	s.Require().NoError(err)
	s.Equal(1, count)
}
