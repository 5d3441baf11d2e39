package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/studyvault/backend/internal/models"
	"github.com/studyvault/backend/internal/repository"
	"github.com/studyvault/backend/internal/repository/sqlite"
	"github.com/studyvault/backend/internal/streak"
	"github.com/studyvault/backend/internal/testutil"
)

type StreakRepositorySuite struct {
	suite.Suite
	db     *sql.DB
	repo   repository.StreakRepository
	users  repository.UserRepository
	userID string
}

func (s *StreakRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewStreakRepository(s.db)
	s.users = sqlite.NewUserRepository(s.db)
	s.userID = insertTestUser(&s.Suite, s.db)
}

func (s *StreakRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *StreakRepositorySuite) record(activityType, day string) repository.StreakActivityResult {
	date, err := models.ParseDate(day)
	s.Require().NoError(err)

	result, err := s.repo.RecordActivity(context.Background(), models.StreakLog{
		UserID:       s.userID,
		ActivityType: activityType,
		ActivityDate: date,
	}, func(current int, lastActive *models.Date) int {
		return streak.Advance(current, lastActive, date)
	})
	s.Require().NoError(err)
	return result
}

func (s *StreakRepositorySuite) TestConsecutiveDaysIncrement() {
	result := s.record(models.ActivityRedo, "2026-09-01")
	s.Equal(1, result.StreakCount)
	s.False(result.AlreadyLogged)

	result = s.record(models.ActivityRevision, "2026-09-02")
	s.Equal(2, result.StreakCount)

	result = s.record(models.ActivityShuffle, "2026-09-03")
	s.Equal(3, result.StreakCount)

	user, err := s.users.Get(context.Background(), s.userID)
	s.Require().NoError(err)
	s.Equal(3, user.StreakCount)
	s.Require().NotNil(user.LastActiveDate)
	s.Equal("2026-09-03", user.LastActiveDate.String())
}

func (s *StreakRepositorySuite) TestSameDayLeavesCounterUntouched() {
	s.record(models.ActivityRedo, "2026-09-01")

	result := s.record(models.ActivityShuffle, "2026-09-01")
	s.Equal(1, result.StreakCount)
	s.True(result.AlreadyLogged)

	count, err := s.repo.CountActivities(context.Background(), s.userID)
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *StreakRepositorySuite) TestGapResetsToOne() {
	s.record(models.ActivityRedo, "2026-09-01")
	s.record(models.ActivityRedo, "2026-09-02")

	result := s.record(models.ActivityRedo, "2026-09-05")
	s.Equal(1, result.StreakCount)
	s.False(result.AlreadyLogged)
}

func (s *StreakRepositorySuite) TestActivityBreakdown() {
	s.record(models.ActivityRedo, "2026-09-01")
	s.record(models.ActivityRedo, "2026-09-02")
	s.record(models.ActivityShuffle, "2026-09-03")

	since, err := models.ParseDate("2026-09-02")
	s.Require().NoError(err)
	breakdown, err := s.repo.ActivityBreakdown(context.Background(), s.userID, since)
	s.Require().NoError(err)
	s.Equal(map[string]int{
		models.ActivityRedo:    1,
		models.ActivityShuffle: 1,
	}, breakdown)
}

func TestStreakRepositorySuite(t *testing.T) {
	suite.Run(t, new(StreakRepositorySuite))
}
