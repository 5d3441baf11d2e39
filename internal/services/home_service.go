package services

import (
	"context"

	"github.com/studyvault/backend/internal/errors"
	"github.com/studyvault/backend/internal/logger"
	"github.com/studyvault/backend/internal/models"
	"github.com/studyvault/backend/internal/repository"
)

// HomeSummary is the day's dashboard: what is due and how the streak stands.
type HomeSummary struct {
	RedoToday     []models.RedoScheduleItem   `json:"redo_today"`
	RevisionToday []models.RevisionSlotDetail `json:"revision_today"`
	CurrentStreak int                         `json:"current_streak"`
}

// HomeService aggregates the home dashboard
type HomeService interface {
	Summary(ctx context.Context, userID string) (*HomeSummary, error)
}

type homeService struct {
	redos     repository.RedoRepository
	revisions repository.RevisionRepository
	streaks   StreakService
}

// NewHomeService creates a new HomeService
func NewHomeService(redos repository.RedoRepository, revisions repository.RevisionRepository, streaks StreakService) HomeService {
	return &homeService{redos: redos, revisions: revisions, streaks: streaks}
}

func (s *homeService) Summary(ctx context.Context, userID string) (*HomeSummary, error) {
	log := logger.FromContext(ctx)
	today := models.Today()

	redoToday, err := s.redos.ListDueOn(ctx, userID, today)
	if err != nil {
		log.Error("failed to list today's redos: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if redoToday == nil {
		redoToday = []models.RedoScheduleItem{}
	}

	revisionToday, err := s.revisions.ListDueOn(ctx, userID, today)
	if err != nil {
		log.Error("failed to list today's revisions: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if revisionToday == nil {
		revisionToday = []models.RevisionSlotDetail{}
	}

	current, err := s.streaks.Current(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &HomeSummary{
		RedoToday:     redoToday,
		RevisionToday: revisionToday,
		CurrentStreak: current.CurrentStreak,
	}, nil
}
