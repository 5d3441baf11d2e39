package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/studyvault/backend/internal/errors"
	"github.com/studyvault/backend/internal/logger"
	"github.com/studyvault/backend/internal/models"
	"github.com/studyvault/backend/internal/repository"
	"github.com/studyvault/backend/internal/schedule"
)

// RevisionService handles topic revision slot business logic
type RevisionService interface {
	ListSlots(ctx context.Context, userID string, includeAll bool) ([]models.RevisionSlotDetail, error)
	Schedule(ctx context.Context, userID, topicID, difficulty string) (*models.RevisionSlotDetail, error)
	Complete(ctx context.Context, userID, slotID string) (*models.RevisionSlotDetail, error)
}

type revisionService struct {
	revisions repository.RevisionRepository
	taxonomy  repository.TaxonomyRepository
	streaks   StreakService
}

// NewRevisionService creates a new RevisionService
func NewRevisionService(revisions repository.RevisionRepository, taxonomy repository.TaxonomyRepository, streaks StreakService) RevisionService {
	return &revisionService{revisions: revisions, taxonomy: taxonomy, streaks: streaks}
}

func (s *revisionService) ListSlots(ctx context.Context, userID string, includeAll bool) ([]models.RevisionSlotDetail, error) {
	slots, err := s.revisions.List(ctx, models.RevisionSlotFilter{
		UserID:      userID,
		PendingOnly: !includeAll,
		Today:       models.Today(),
	})
	if err != nil {
		logger.FromContext(ctx).Error("failed to list revision slots: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if slots == nil {
		slots = []models.RevisionSlotDetail{}
	}
	return slots, nil
}

func (s *revisionService) Schedule(ctx context.Context, userID, topicID, difficulty string) (*models.RevisionSlotDetail, error) {
	log := logger.FromContext(ctx)
	log.Debug("scheduling revision: topic_id=%s, difficulty=%s", topicID, difficulty)

	if uuid.Validate(topicID) != nil {
		return nil, errors.NewValidationError("topic_id", "must be a valid UUID")
	}
	slotType, scheduledFor, err := schedule.RevisionSlot(schedule.Difficulty(difficulty), models.Today())
	if err != nil {
		return nil, errors.NewValidationError("difficulty", "must be one of easy, medium, hard")
	}

	if ok, err := s.taxonomy.TopicExists(ctx, topicID); err != nil {
		return nil, errors.NewInternalError(err)
	} else if !ok {
		return nil, errors.NewNotFoundError("topic", topicID)
	}

	slot := models.RevisionSlot{
		ID:           uuid.NewString(),
		UserID:       userID,
		TopicID:      topicID,
		SlotType:     slotType,
		ScheduledFor: scheduledFor,
	}
	if err := s.revisions.Insert(ctx, slot); err != nil {
		if repository.IsDuplicate(err) {
			return nil, errors.NewConflictError("revision already scheduled for this topic and date")
		}
		log.Error("failed to insert revision slot: %v", err)
		return nil, errors.NewInternalError(err)
	}

	created, err := s.revisions.Get(ctx, userID, slot.ID)
	if err != nil || created == nil {
		log.Error("failed to load created revision slot: %v", err)
		return nil, errors.NewInternalError(err)
	}
	log.Info("revision scheduled: id=%s, for=%s", created.ID, scheduledFor)
	return created, nil
}

func (s *revisionService) Complete(ctx context.Context, userID, slotID string) (*models.RevisionSlotDetail, error) {
	log := logger.FromContext(ctx)
	log.Debug("completing revision slot: id=%s", slotID)

	if uuid.Validate(slotID) != nil {
		return nil, errors.NewValidationError("slot_id", "must be a valid UUID")
	}

	done, err := s.revisions.MarkCompleted(ctx, userID, slotID)
	if err != nil {
		log.Error("failed to complete revision slot: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if !done {
		// Distinguish an unknown slot from one already completed.
		slot, err := s.revisions.Get(ctx, userID, slotID)
		if err != nil {
			return nil, errors.NewInternalError(err)
		}
		if slot == nil {
			return nil, errors.NewNotFoundError("revision slot", slotID)
		}
		return nil, errors.NewConflictError("revision slot already completed")
	}

	if _, err := s.streaks.LogActivity(ctx, userID, models.ActivityRevision); err != nil {
		log.Warn("failed to log streak activity for revision: %v", err)
	}

	slot, err := s.revisions.Get(ctx, userID, slotID)
	if err != nil || slot == nil {
		log.Error("failed to load completed revision slot: %v", err)
		return nil, errors.NewInternalError(err)
	}
	log.Info("revision slot completed: id=%s", slotID)
	return slot, nil
}
