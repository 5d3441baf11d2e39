package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/studyvault/backend/internal/logger"
	"github.com/studyvault/backend/internal/models"
	"github.com/studyvault/backend/internal/repository"
)

type redoRepository struct {
	db *sql.DB
}

// NewRedoRepository creates a new RedoRepository implementation
func NewRedoRepository(db *sql.DB) repository.RedoRepository {
	return &redoRepository{db: db}
}

const redoItemQuery = `
SELECT rs.id, rs.mistake_id, rs.schedule_type, rs.due_date, rs.performed, m.question_text
FROM redo_schedules rs
JOIN mistake_entries m ON m.id = rs.mistake_id
`

func scanRedoItem(row interface {
	Scan(dest ...any) error
}) (*models.RedoScheduleItem, error) {
	var item models.RedoScheduleItem
	var due string
	if err := row.Scan(&item.ID, &item.MistakeID, &item.ScheduleType, &due, &item.Performed, &item.QuestionText); err != nil {
		return nil, err
	}
	var err error
	if item.DueDate, err = scanDate(due); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *redoRepository) ListPending(ctx context.Context, userID string) ([]models.RedoScheduleItem, error) {
	return r.list(ctx, redoItemQuery+`WHERE m.user_id = ? AND rs.performed = 0 ORDER BY rs.due_date ASC`, userID)
}

func (r *redoRepository) ListDueOn(ctx context.Context, userID string, day models.Date) ([]models.RedoScheduleItem, error) {
	return r.list(ctx, redoItemQuery+`WHERE m.user_id = ? AND rs.performed = 0 AND rs.due_date = ? ORDER BY rs.due_date ASC`, userID, day.String())
}

func (r *redoRepository) list(ctx context.Context, query string, args ...any) ([]models.RedoScheduleItem, error) {
	log := logger.FromContext(ctx).WithPrefix("redo_repo")

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list redo schedules: %v", err)
		return nil, err
	}
	defer rows.Close()

	var items []models.RedoScheduleItem
	for rows.Next() {
		item, err := scanRedoItem(rows)
		if err != nil {
			log.Error("failed to scan redo schedule row: %v", err)
			return nil, err
		}
		items = append(items, *item)
	}
	log.Debug("found %d redo schedules", len(items))
	return items, rows.Err()
}

func (r *redoRepository) GetForUser(ctx context.Context, userID, redoID string) (*models.RedoScheduleItem, error) {
	log := logger.FromContext(ctx).WithPrefix("redo_repo")
	log.Debug("getting redo schedule: id=%s", redoID)

	row := r.db.QueryRowContext(ctx, redoItemQuery+`WHERE rs.id = ? AND m.user_id = ?`, redoID, userID)
	item, err := scanRedoItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("redo schedule not found: id=%s", redoID)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get redo schedule: %v", err)
		return nil, err
	}
	return item, nil
}

func (r *redoRepository) RecordAttempt(ctx context.Context, attempt models.RedoAttempt) error {
	log := logger.FromContext(ctx).WithPrefix("redo_repo")
	log.Debug("recording redo attempt: redo_id=%s, correct=%t", attempt.RedoID, attempt.IsCorrect)

	return tx(ctx, r.db, func(t *sql.Tx) error {
		// The UNIQUE constraint on redo_id is the real guard; the insert and
		// the performed flip commit together or not at all.
		_, err := t.ExecContext(ctx, `
INSERT INTO redo_attempts (id, redo_id, is_correct)
VALUES (?, ?, ?)
`, attempt.ID, attempt.RedoID, attempt.IsCorrect)
		if err != nil {
			return asDuplicate(err)
		}

		res, err := t.ExecContext(ctx, `
UPDATE redo_schedules SET performed = 1 WHERE id = ? AND performed = 0
`, attempt.RedoID)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			// Schedule was already marked performed despite the missing
			// attempt row; treat it the same as a duplicate attempt.
			return repository.ErrDuplicate
		}
		return nil
	})
}

func (r *redoRepository) ListAttempts(ctx context.Context, userID string) ([]models.RedoAttemptItem, error) {
	log := logger.FromContext(ctx).WithPrefix("redo_repo")
	log.Debug("listing redo attempts: user_id=%s", userID)

	rows, err := r.db.QueryContext(ctx, `
SELECT ra.id, ra.redo_id, ra.is_correct, ra.attempted_at, m.question_text
FROM redo_attempts ra
JOIN redo_schedules rs ON rs.id = ra.redo_id
JOIN mistake_entries m ON m.id = rs.mistake_id
WHERE m.user_id = ?
ORDER BY ra.attempted_at DESC
`, userID)
	if err != nil {
		log.Error("failed to list redo attempts: %v", err)
		return nil, err
	}
	defer rows.Close()

	var items []models.RedoAttemptItem
	for rows.Next() {
		var item models.RedoAttemptItem
		if err := rows.Scan(&item.ID, &item.RedoID, &item.IsCorrect, &item.AttemptedAt, &item.QuestionText); err != nil {
			return nil, fmt.Errorf("scan redo attempt: %w", err)
		}
		items = append(items, item)
	}
	log.Debug("found %d redo attempts", len(items))
	return items, rows.Err()
}
