package services

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/studyvault/backend/internal/errors"
	"github.com/studyvault/backend/internal/logger"
	"github.com/studyvault/backend/internal/models"
	"github.com/studyvault/backend/internal/repository"
	"github.com/studyvault/backend/internal/shuffle"
)

// ShuffleService assembles randomized weighted practice sessions
type ShuffleService interface {
	Questions(ctx context.Context, userID string, limit int) ([]models.ShuffleQuestion, error)
}

type shuffleService struct {
	mistakes repository.MistakeRepository
	streaks  StreakService

	mu  sync.Mutex
	rng *rand.Rand
}

// NewShuffleService creates a new ShuffleService. A nil rng gets a
// time-seeded one; tests pass a fixed seed.
func NewShuffleService(mistakes repository.MistakeRepository, streaks StreakService, rng *rand.Rand) ShuffleService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &shuffleService{mistakes: mistakes, streaks: streaks, rng: rng}
}

func (s *shuffleService) Questions(ctx context.Context, userID string, limit int) ([]models.ShuffleQuestion, error) {
	log := logger.FromContext(ctx)
	limit = shuffle.ClampLimit(limit)
	log.Debug("assembling shuffle session: limit=%d", limit)

	pool, err := s.mistakes.ShufflePool(ctx, userID)
	if err != nil {
		log.Error("failed to load shuffle pool: %v", err)
		return nil, errors.NewInternalError(err)
	}

	s.mu.Lock()
	questions := shuffle.Select(pool, limit, s.rng)
	s.mu.Unlock()

	// An empty pool is a valid session and still counts as activity.
	if _, err := s.streaks.LogActivity(ctx, userID, models.ActivityShuffle); err != nil {
		log.Warn("failed to log streak activity for shuffle: %v", err)
	}

	log.Debug("shuffle session assembled: %d questions from pool of %d", len(questions), len(pool))
	return questions, nil
}
