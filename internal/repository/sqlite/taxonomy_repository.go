package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/studyvault/backend/internal/logger"
	"github.com/studyvault/backend/internal/models"
	"github.com/studyvault/backend/internal/repository"
)

type taxonomyRepository struct {
	db *sql.DB
}

// NewTaxonomyRepository creates a new TaxonomyRepository implementation
func NewTaxonomyRepository(db *sql.DB) repository.TaxonomyRepository {
	return &taxonomyRepository{db: db}
}

func (r *taxonomyRepository) SubjectExists(ctx context.Context, id string) (bool, error) {
	return r.exists(ctx, `SELECT 1 FROM subjects WHERE id = ?`, id)
}

func (r *taxonomyRepository) ChapterExists(ctx context.Context, id string) (bool, error) {
	return r.exists(ctx, `SELECT 1 FROM chapters WHERE id = ?`, id)
}

func (r *taxonomyRepository) TopicExists(ctx context.Context, id string) (bool, error) {
	return r.exists(ctx, `SELECT 1 FROM topics WHERE id = ?`, id)
}

func (r *taxonomyRepository) exists(ctx context.Context, query, id string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, query, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		logger.FromContext(ctx).WithPrefix("taxonomy_repo").Error("existence check failed: %v", err)
		return false, err
	}
	return true, nil
}

const topicRefQuery = `
SELECT t.id, t.name, c.name, s.name
FROM topics t
JOIN chapters c ON c.id = t.chapter_id
JOIN subjects s ON s.id = c.subject_id
`

func (r *taxonomyRepository) GetTopicRef(ctx context.Context, topicID string) (*models.TopicRef, error) {
	log := logger.FromContext(ctx).WithPrefix("taxonomy_repo")

	var ref models.TopicRef
	err := r.db.QueryRowContext(ctx, topicRefQuery+`WHERE t.id = ?`, topicID).
		Scan(&ref.TopicID, &ref.TopicName, &ref.ChapterName, &ref.SubjectName)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("topic not found: id=%s", topicID)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get topic: %v", err)
		return nil, err
	}
	return &ref, nil
}

func (r *taxonomyRepository) ListTopicRefs(ctx context.Context) ([]models.TopicRef, error) {
	log := logger.FromContext(ctx).WithPrefix("taxonomy_repo")

	rows, err := r.db.QueryContext(ctx, topicRefQuery+`ORDER BY s.name, c.name, t.name`)
	if err != nil {
		log.Error("failed to list topics: %v", err)
		return nil, err
	}
	defer rows.Close()

	var refs []models.TopicRef
	for rows.Next() {
		var ref models.TopicRef
		if err := rows.Scan(&ref.TopicID, &ref.TopicName, &ref.ChapterName, &ref.SubjectName); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	log.Debug("found %d topics", len(refs))
	return refs, rows.Err()
}
