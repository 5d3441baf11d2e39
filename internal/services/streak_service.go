package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/studyvault/backend/internal/errors"
	"github.com/studyvault/backend/internal/logger"
	"github.com/studyvault/backend/internal/models"
	"github.com/studyvault/backend/internal/repository"
	"github.com/studyvault/backend/internal/streak"
)

// StreakActivityStatus is the outcome of logging a streak activity.
type StreakActivityStatus struct {
	CurrentStreak      int  `json:"current_streak"`
	AlreadyLoggedToday bool `json:"already_logged_today"`
}

// StreakCurrent is the side-effect-free read of a user's streak. The
// displayed count is derived: a stale cache reads as 0 without being
// rewritten until the next activity.
type StreakCurrent struct {
	CurrentStreak  int          `json:"current_streak"`
	CachedStreak   int          `json:"cached_streak"`
	LastActiveDate *models.Date `json:"last_active_date"`
}

// StreakService handles streak accounting
type StreakService interface {
	LogActivity(ctx context.Context, userID, activityType string) (*StreakActivityStatus, error)
	Current(ctx context.Context, userID string) (*StreakCurrent, error)
	Stats(ctx context.Context, userID string) (*models.StreakStats, error)
}

type streakService struct {
	streaks repository.StreakRepository
	users   repository.UserRepository
}

// NewStreakService creates a new StreakService
func NewStreakService(streaks repository.StreakRepository, users repository.UserRepository) StreakService {
	return &streakService{streaks: streaks, users: users}
}

func (s *streakService) LogActivity(ctx context.Context, userID, activityType string) (*StreakActivityStatus, error) {
	log := logger.FromContext(ctx)
	log.Debug("logging streak activity: type=%s", activityType)

	if !models.ValidActivityType(activityType) {
		return nil, errors.NewValidationError("activity_type", "must be one of redo, revision, shuffle")
	}

	today := models.Today()
	result, err := s.streaks.RecordActivity(ctx, models.StreakLog{
		ID:           uuid.NewString(),
		UserID:       userID,
		ActivityType: activityType,
		ActivityDate: today,
	}, func(current int, lastActive *models.Date) int {
		return streak.Advance(current, lastActive, today)
	})
	if err != nil {
		log.Error("failed to record streak activity: %v", err)
		return nil, errors.NewInternalError(err)
	}

	log.Debug("streak activity logged: streak=%d, already_logged=%v", result.StreakCount, result.AlreadyLogged)
	return &StreakActivityStatus{
		CurrentStreak:      result.StreakCount,
		AlreadyLoggedToday: result.AlreadyLogged,
	}, nil
}

func (s *streakService) Current(ctx context.Context, userID string) (*StreakCurrent, error) {
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if user == nil {
		return nil, errors.NewNotFoundError("user", userID)
	}

	return &StreakCurrent{
		CurrentStreak:  streak.Display(user.StreakCount, user.LastActiveDate, models.Today()),
		CachedStreak:   user.StreakCount,
		LastActiveDate: user.LastActiveDate,
	}, nil
}

func (s *streakService) Stats(ctx context.Context, userID string) (*models.StreakStats, error) {
	log := logger.FromContext(ctx)

	current, err := s.Current(ctx, userID)
	if err != nil {
		return nil, err
	}

	total, err := s.streaks.CountActivities(ctx, userID)
	if err != nil {
		log.Error("failed to count activities: %v", err)
		return nil, errors.NewInternalError(err)
	}

	breakdown, err := s.streaks.ActivityBreakdown(ctx, userID, models.Today().AddDays(-30))
	if err != nil {
		log.Error("failed to load activity breakdown: %v", err)
		return nil, errors.NewInternalError(err)
	}

	return &models.StreakStats{
		CurrentStreak:     current.CurrentStreak,
		LastActiveDate:    current.LastActiveDate,
		TotalActivities:   total,
		ActivityBreakdown: breakdown,
	}, nil
}
