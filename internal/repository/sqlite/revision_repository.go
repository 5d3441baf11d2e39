package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/studyvault/backend/internal/logger"
	"github.com/studyvault/backend/internal/models"
	"github.com/studyvault/backend/internal/repository"
)

type revisionRepository struct {
	db *sql.DB
}

// NewRevisionRepository creates a new RevisionRepository implementation
func NewRevisionRepository(db *sql.DB) repository.RevisionRepository {
	return &revisionRepository{db: db}
}

func (r *revisionRepository) Insert(ctx context.Context, slot models.RevisionSlot) error {
	log := logger.FromContext(ctx).WithPrefix("revision_repo")
	log.Debug("inserting revision slot: topic_id=%s, scheduled_for=%s", slot.TopicID, slot.ScheduledFor)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO revision_slots (id, user_id, topic_id, slot_type, scheduled_for, completed)
VALUES (?, ?, ?, ?, ?, 0)
`, slot.ID, slot.UserID, slot.TopicID, slot.SlotType, slot.ScheduledFor.String())
	if err != nil {
		err = asDuplicate(err)
		if !errors.Is(err, repository.ErrDuplicate) {
			log.Error("failed to insert revision slot: %v", err)
		}
		return err
	}
	log.Debug("revision slot inserted: id=%s", slot.ID)
	return nil
}

func scanSlotDetail(row interface {
	Scan(dest ...any) error
}) (*models.RevisionSlotDetail, error) {
	var d models.RevisionSlotDetail
	var scheduled string
	err := row.Scan(&d.ID, &d.UserID, &d.TopicID, &d.SlotType, &scheduled, &d.Completed,
		&d.CreatedAt, &d.UpdatedAt, &d.TopicName, &d.ChapterName, &d.SubjectName)
	if err != nil {
		return nil, err
	}
	if d.ScheduledFor, err = scanDate(scheduled); err != nil {
		return nil, err
	}
	return &d, nil
}

func slotDetailBuilder() squirrel.SelectBuilder {
	return sqlBuilder.Select(
		"rs.id", "rs.user_id", "rs.topic_id", "rs.slot_type", "rs.scheduled_for",
		"rs.completed", "rs.created_at", "rs.updated_at",
		"t.name AS topic_name", "c.name AS chapter_name", "s.name AS subject_name",
	).From("revision_slots rs").
		Join("topics t ON t.id = rs.topic_id").
		Join("chapters c ON c.id = t.chapter_id").
		Join("subjects s ON s.id = c.subject_id")
}

func (r *revisionRepository) List(ctx context.Context, filter models.RevisionSlotFilter) ([]models.RevisionSlotDetail, error) {
	log := logger.FromContext(ctx).WithPrefix("revision_repo")
	log.Debug("listing revision slots: user_id=%s, pending_only=%t", filter.UserID, filter.PendingOnly)

	query := slotDetailBuilder().
		Where(squirrel.Eq{"rs.user_id": filter.UserID}).
		OrderBy("rs.scheduled_for ASC")

	if filter.PendingOnly {
		query = query.Where(squirrel.Eq{"rs.completed": 0}).
			Where(squirrel.LtOrEq{"rs.scheduled_for": filter.Today.String()})
	}

	return r.query(ctx, query)
}

func (r *revisionRepository) ListDueOn(ctx context.Context, userID string, day models.Date) ([]models.RevisionSlotDetail, error) {
	query := slotDetailBuilder().
		Where(squirrel.Eq{"rs.user_id": userID, "rs.completed": 0}).
		Where(squirrel.Eq{"rs.scheduled_for": day.String()}).
		OrderBy("rs.scheduled_for ASC")
	return r.query(ctx, query)
}

func (r *revisionRepository) query(ctx context.Context, query squirrel.SelectBuilder) ([]models.RevisionSlotDetail, error) {
	log := logger.FromContext(ctx).WithPrefix("revision_repo")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build slot query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list revision slots: %v", err)
		return nil, err
	}
	defer rows.Close()

	var slots []models.RevisionSlotDetail
	for rows.Next() {
		slot, err := scanSlotDetail(rows)
		if err != nil {
			log.Error("failed to scan revision slot row: %v", err)
			return nil, err
		}
		slots = append(slots, *slot)
	}
	log.Debug("found %d revision slots", len(slots))
	return slots, rows.Err()
}

func (r *revisionRepository) Get(ctx context.Context, userID, id string) (*models.RevisionSlotDetail, error) {
	log := logger.FromContext(ctx).WithPrefix("revision_repo")
	log.Debug("getting revision slot: id=%s", id)

	query := slotDetailBuilder().Where(squirrel.Eq{"rs.id": id, "rs.user_id": userID})
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	slot, err := scanSlotDetail(r.db.QueryRowContext(ctx, sqlStr, args...))
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("revision slot not found: id=%s", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get revision slot: %v", err)
		return nil, err
	}
	return slot, nil
}

func (r *revisionRepository) MarkCompleted(ctx context.Context, userID, id string) (bool, error) {
	log := logger.FromContext(ctx).WithPrefix("revision_repo")
	log.Debug("completing revision slot: id=%s", id)

	res, err := r.db.ExecContext(ctx, `
UPDATE revision_slots
SET completed = 1, updated_at = CURRENT_TIMESTAMP
WHERE id = ? AND user_id = ? AND completed = 0
`, id, userID)
	if err != nil {
		log.Error("failed to complete revision slot: %v", err)
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
