package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/studyvault/backend/internal/errors"
	"github.com/studyvault/backend/internal/jobs"
	"github.com/studyvault/backend/internal/logger"
	"github.com/studyvault/backend/internal/models"
	"github.com/studyvault/backend/internal/repository"
)

// RedoService handles redo schedule and attempt business logic
type RedoService interface {
	ListSchedule(ctx context.Context, userID string) ([]models.RedoScheduleItem, error)
	ListAttempts(ctx context.Context, userID string) ([]models.RedoAttemptItem, error)
	RecordAttempt(ctx context.Context, userID, redoID string, isCorrect bool) (*models.RedoAttemptItem, error)
}

type redoService struct {
	redos   repository.RedoRepository
	streaks StreakService
	queue   jobs.JobQueue
}

// NewRedoService creates a new RedoService
func NewRedoService(redos repository.RedoRepository, streaks StreakService, queue jobs.JobQueue) RedoService {
	return &redoService{redos: redos, streaks: streaks, queue: queue}
}

func (s *redoService) ListSchedule(ctx context.Context, userID string) ([]models.RedoScheduleItem, error) {
	items, err := s.redos.ListPending(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list redo schedule: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if items == nil {
		items = []models.RedoScheduleItem{}
	}
	return items, nil
}

func (s *redoService) ListAttempts(ctx context.Context, userID string) ([]models.RedoAttemptItem, error) {
	items, err := s.redos.ListAttempts(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list redo attempts: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if items == nil {
		items = []models.RedoAttemptItem{}
	}
	return items, nil
}

func (s *redoService) RecordAttempt(ctx context.Context, userID, redoID string, isCorrect bool) (*models.RedoAttemptItem, error) {
	log := logger.FromContext(ctx)
	log.Debug("recording redo attempt: redo_id=%s, correct=%t", redoID, isCorrect)

	if uuid.Validate(redoID) != nil {
		return nil, errors.NewValidationError("redo_id", "must be a valid UUID")
	}

	sched, err := s.redos.GetForUser(ctx, userID, redoID)
	if err != nil {
		log.Error("failed to load redo schedule: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if sched == nil {
		return nil, errors.NewNotFoundError("redo schedule", redoID)
	}

	attempt := models.RedoAttempt{
		ID:        uuid.NewString(),
		RedoID:    redoID,
		IsCorrect: isCorrect,
	}
	if err := s.redos.RecordAttempt(ctx, attempt); err != nil {
		if repository.IsDuplicate(err) {
			return nil, errors.NewConflictError("redo already attempted")
		}
		log.Error("failed to record redo attempt: %v", err)
		return nil, errors.NewInternalError(err)
	}

	// Streak and heat-map updates ride on the attempt but never undo it.
	if _, err := s.streaks.LogActivity(ctx, userID, models.ActivityRedo); err != nil {
		log.Warn("failed to log streak activity for redo: %v", err)
	}
	if err := s.queue.EnqueueHeatmapRefresh(userID); err != nil {
		log.Warn("failed to enqueue heatmap refresh: %v", err)
	}

	item := &models.RedoAttemptItem{
		RedoAttempt:  attempt,
		QuestionText: sched.QuestionText,
	}
	log.Info("redo attempt recorded: redo_id=%s, correct=%t", redoID, isCorrect)
	return item, nil
}
