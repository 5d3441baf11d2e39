package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/studyvault/backend/internal/errors"
	"github.com/studyvault/backend/internal/logger"
	"github.com/studyvault/backend/internal/models"
	"github.com/studyvault/backend/internal/repository"
	"github.com/studyvault/backend/internal/strength"
)

// HeatmapService serves cached topic strength and recomputes it from the
// mistake and redo history.
type HeatmapService interface {
	ListTopics(ctx context.Context, userID string) ([]models.TopicHeatmapDetail, error)
	GetTopic(ctx context.Context, userID, topicID string) (*models.TopicHeatmapDetail, error)
	RecomputeUser(ctx context.Context, userID string) error
	RecomputeAllUsers(ctx context.Context) error
}

type heatmapService struct {
	heatmap  repository.HeatmapRepository
	taxonomy repository.TaxonomyRepository
	users    repository.UserRepository
}

// NewHeatmapService creates a new HeatmapService
func NewHeatmapService(heatmap repository.HeatmapRepository, taxonomy repository.TaxonomyRepository, users repository.UserRepository) HeatmapService {
	return &heatmapService{heatmap: heatmap, taxonomy: taxonomy, users: users}
}

func synthesizeDetail(userID string, ref models.TopicRef) models.TopicHeatmapDetail {
	return models.TopicHeatmapDetail{
		TopicHeatmap: models.TopicHeatmap{
			UserID:          userID,
			TopicID:         ref.TopicID,
			MistakeFreq:     0,
			RedoSuccessRate: 0,
			StrengthLevel:   strength.Strong.String(),
		},
		TopicName:   ref.TopicName,
		ChapterName: ref.ChapterName,
		SubjectName: ref.SubjectName,
	}
}

// ListTopics returns one row per known topic. Topics the recompute has never
// written appear as Strong with zero counts.
func (s *heatmapService) ListTopics(ctx context.Context, userID string) ([]models.TopicHeatmapDetail, error) {
	log := logger.FromContext(ctx)

	stored, err := s.heatmap.ListForUser(ctx, userID)
	if err != nil {
		log.Error("failed to list heatmap rows: %v", err)
		return nil, errors.NewInternalError(err)
	}
	byTopic := make(map[string]models.TopicHeatmapDetail, len(stored))
	for _, row := range stored {
		byTopic[row.TopicID] = row
	}

	refs, err := s.taxonomy.ListTopicRefs(ctx)
	if err != nil {
		log.Error("failed to list topics: %v", err)
		return nil, errors.NewInternalError(err)
	}

	details := make([]models.TopicHeatmapDetail, 0, len(refs))
	for _, ref := range refs {
		if row, ok := byTopic[ref.TopicID]; ok {
			details = append(details, row)
			continue
		}
		details = append(details, synthesizeDetail(userID, ref))
	}
	return details, nil
}

func (s *heatmapService) GetTopic(ctx context.Context, userID, topicID string) (*models.TopicHeatmapDetail, error) {
	if uuid.Validate(topicID) != nil {
		return nil, errors.NewValidationError("topic_id", "must be a valid UUID")
	}

	row, err := s.heatmap.GetForTopic(ctx, userID, topicID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if row != nil {
		return row, nil
	}

	ref, err := s.taxonomy.GetTopicRef(ctx, topicID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if ref == nil {
		return nil, errors.NewNotFoundError("topic", topicID)
	}
	detail := synthesizeDetail(userID, *ref)
	return &detail, nil
}

// RecomputeUser rebuilds the user's heat-map rows from scratch. Every topic
// aggregate is written back, so a row left over from since-deleted mistakes
// is overwritten with zero counts instead of surviving the recompute.
func (s *heatmapService) RecomputeUser(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx).WithField("user_id", userID)
	log.Debug("recomputing heatmap")

	aggs, err := s.heatmap.TopicAggregates(ctx, userID)
	if err != nil {
		log.Error("failed to load topic aggregates: %v", err)
		return err
	}

	updated := 0
	for _, agg := range aggs {
		rate := 0.0
		if agg.AttemptCount > 0 {
			rate = float64(agg.CorrectCount) / float64(agg.AttemptCount)
		}
		level := strength.Classify(agg.MistakeFreq, rate)

		err := s.heatmap.Upsert(ctx, models.TopicHeatmap{
			UserID:          userID,
			TopicID:         agg.TopicID,
			MistakeFreq:     agg.MistakeFreq,
			RedoSuccessRate: rate,
			StrengthLevel:   level.String(),
		})
		if err != nil {
			log.Error("failed to upsert heatmap row for topic %s: %v", agg.TopicID, err)
			return err
		}
		updated++
	}
	log.Info("heatmap recomputed: %d topics updated", updated)
	return nil
}

// RecomputeAllUsers runs the per-user recompute sequentially. One user's
// failure is logged and skipped so the rest of the batch still runs.
func (s *heatmapService) RecomputeAllUsers(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info("recomputing heatmaps for all users")

	ids, err := s.users.ListIDs(ctx)
	if err != nil {
		log.Error("failed to list users: %v", err)
		return err
	}

	failures := 0
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.RecomputeUser(ctx, id); err != nil {
			log.Error("heatmap recompute failed for user %s: %v", id, err)
			failures++
		}
	}
	log.Info("heatmap batch done: %d users, %d failures", len(ids), failures)
	return nil
}
