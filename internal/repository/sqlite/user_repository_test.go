package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/studyvault/backend/internal/models"
	"github.com/studyvault/backend/internal/repository"
	"github.com/studyvault/backend/internal/repository/sqlite"
	"github.com/studyvault/backend/internal/testutil"
)

type UserRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.UserRepository
}

func (s *UserRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewUserRepository(s.db)
}

func (s *UserRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *UserRepositorySuite) TestInsertAndGet() {
	ctx := context.Background()
	user := models.User{
		ID:           uuid.NewString(),
		Email:        "student@example.com",
		PasswordHash: "bcrypt-hash",
	}
	s.Require().NoError(s.repo.Insert(ctx, user))

	got, err := s.repo.Get(ctx, user.ID)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(user.Email, got.Email)
	s.Equal(0, got.StreakCount)
	s.Nil(got.LastActiveDate)
	s.False(got.CreatedAt.IsZero())

	byEmail, err := s.repo.GetByEmail(ctx, user.Email)
	s.Require().NoError(err)
	s.Require().NotNil(byEmail)
	s.Equal(user.ID, byEmail.ID)
}

func (s *UserRepositorySuite) TestDuplicateEmailRejected() {
	ctx := context.Background()
	s.Require().NoError(s.repo.Insert(ctx, models.User{
		ID: uuid.NewString(), Email: "taken@example.com", PasswordHash: "h",
	}))

	err := s.repo.Insert(ctx, models.User{
		ID: uuid.NewString(), Email: "taken@example.com", PasswordHash: "h",
	})
	s.Require().ErrorIs(err, repository.ErrDuplicate)
}

func (s *UserRepositorySuite) TestGetUnknownReturnsNil() {
	got, err := s.repo.Get(context.Background(), uuid.NewString())
	s.Require().NoError(err)
	s.Nil(got)

	got, err = s.repo.GetByEmail(context.Background(), "nobody@example.com")
	s.Require().NoError(err)
	s.Nil(got)
}

func (s *UserRepositorySuite) TestListIDs() {
	ctx := context.Background()
	first := models.User{ID: uuid.NewString(), Email: "a@example.com", PasswordHash: "h"}
	second := models.User{ID: uuid.NewString(), Email: "b@example.com", PasswordHash: "h"}
	s.Require().NoError(s.repo.Insert(ctx, first))
	s.Require().NoError(s.repo.Insert(ctx, second))

	ids, err := s.repo.ListIDs(ctx)
	s.Require().NoError(err)
	s.Len(ids, 2)
	s.Contains(ids, first.ID)
	s.Contains(ids, second.ID)
}

func TestUserRepositorySuite(t *testing.T) {
	suite.Run(t, new(UserRepositorySuite))
}
