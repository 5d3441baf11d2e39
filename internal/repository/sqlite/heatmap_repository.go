package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/studyvault/backend/internal/logger"
	"github.com/studyvault/backend/internal/models"
	"github.com/studyvault/backend/internal/repository"
)

type heatmapRepository struct {
	db *sql.DB
}

// NewHeatmapRepository creates a new HeatmapRepository implementation
func NewHeatmapRepository(db *sql.DB) repository.HeatmapRepository {
	return &heatmapRepository{db: db}
}

const heatmapDetailQuery = `
SELECT th.user_id, th.topic_id, th.mistake_freq, th.redo_success_rate, th.strength_level, th.last_calculated,
       t.name, c.name, s.name
FROM topic_heatmap th
JOIN topics t ON t.id = th.topic_id
JOIN chapters c ON c.id = t.chapter_id
JOIN subjects s ON s.id = c.subject_id
`

func (r *heatmapRepository) ListForUser(ctx context.Context, userID string) ([]models.TopicHeatmapDetail, error) {
	log := logger.FromContext(ctx).WithPrefix("heatmap_repo")
	log.Debug("listing heatmap rows: user_id=%s", userID)

	rows, err := r.db.QueryContext(ctx, heatmapDetailQuery+`WHERE th.user_id = ? ORDER BY s.name, c.name, t.name`, userID)
	if err != nil {
		log.Error("failed to list heatmap rows: %v", err)
		return nil, err
	}
	defer rows.Close()

	var details []models.TopicHeatmapDetail
	for rows.Next() {
		var d models.TopicHeatmapDetail
		if err := rows.Scan(&d.UserID, &d.TopicID, &d.MistakeFreq, &d.RedoSuccessRate, &d.StrengthLevel, &d.LastCalculated,
			&d.TopicName, &d.ChapterName, &d.SubjectName); err != nil {
			log.Error("failed to scan heatmap row: %v", err)
			return nil, err
		}
		details = append(details, d)
	}
	log.Debug("found %d heatmap rows", len(details))
	return details, rows.Err()
}

func (r *heatmapRepository) GetForTopic(ctx context.Context, userID, topicID string) (*models.TopicHeatmapDetail, error) {
	log := logger.FromContext(ctx).WithPrefix("heatmap_repo")
	log.Debug("getting heatmap row: user_id=%s, topic_id=%s", userID, topicID)

	var d models.TopicHeatmapDetail
	err := r.db.QueryRowContext(ctx, heatmapDetailQuery+`WHERE th.user_id = ? AND th.topic_id = ?`, userID, topicID).
		Scan(&d.UserID, &d.TopicID, &d.MistakeFreq, &d.RedoSuccessRate, &d.StrengthLevel, &d.LastCalculated,
			&d.TopicName, &d.ChapterName, &d.SubjectName)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("heatmap row not found: topic_id=%s", topicID)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get heatmap row: %v", err)
		return nil, err
	}
	return &d, nil
}

func (r *heatmapRepository) Upsert(ctx context.Context, hm models.TopicHeatmap) error {
	log := logger.FromContext(ctx).WithPrefix("heatmap_repo")
	log.Debug("upserting heatmap row: topic_id=%s, freq=%d, rate=%.2f, level=%s",
		hm.TopicID, hm.MistakeFreq, hm.RedoSuccessRate, hm.StrengthLevel)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO topic_heatmap (user_id, topic_id, mistake_freq, redo_success_rate, strength_level, last_calculated)
VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(user_id, topic_id) DO UPDATE SET
    mistake_freq = excluded.mistake_freq,
    redo_success_rate = excluded.redo_success_rate,
    strength_level = excluded.strength_level,
    last_calculated = CURRENT_TIMESTAMP
`, hm.UserID, hm.TopicID, hm.MistakeFreq, hm.RedoSuccessRate, hm.StrengthLevel)
	if err != nil {
		log.Error("failed to upsert heatmap row: %v", err)
	}
	return err
}

func (r *heatmapRepository) TopicAggregates(ctx context.Context, userID string) ([]repository.TopicAggregate, error) {
	log := logger.FromContext(ctx).WithPrefix("heatmap_repo")
	log.Debug("computing topic aggregates: user_id=%s", userID)

	rows, err := r.db.QueryContext(ctx, `
SELECT t.id,
       COUNT(DISTINCT m.id),
       COUNT(DISTINCT ra.id),
       COUNT(DISTINCT CASE WHEN ra.is_correct = 1 THEN ra.id END)
FROM topics t
LEFT JOIN mistake_entries m ON m.topic_id = t.id AND m.user_id = ?
LEFT JOIN redo_schedules rs ON rs.mistake_id = m.id
LEFT JOIN redo_attempts ra ON ra.redo_id = rs.id
GROUP BY t.id
`, userID)
	if err != nil {
		log.Error("failed to compute topic aggregates: %v", err)
		return nil, err
	}
	defer rows.Close()

	var aggs []repository.TopicAggregate
	for rows.Next() {
		var a repository.TopicAggregate
		if err := rows.Scan(&a.TopicID, &a.MistakeFreq, &a.AttemptCount, &a.CorrectCount); err != nil {
			log.Error("failed to scan topic aggregate: %v", err)
			return nil, err
		}
		aggs = append(aggs, a)
	}
	log.Debug("computed aggregates for %d topics", len(aggs))
	return aggs, rows.Err()
}
