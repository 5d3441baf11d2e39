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

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

type mistakeRepository struct {
	db *sql.DB
}

// NewMistakeRepository creates a new MistakeRepository implementation
func NewMistakeRepository(db *sql.DB) repository.MistakeRepository {
	return &mistakeRepository{db: db}
}

func (r *mistakeRepository) InsertWithSchedule(ctx context.Context, entry models.MistakeEntry, sched models.RedoSchedule) error {
	log := logger.FromContext(ctx).WithPrefix("mistake_repo")
	log.Debug("inserting mistake with schedule: id=%s, due=%s", entry.ID, sched.DueDate)

	return tx(ctx, r.db, func(t *sql.Tx) error {
		_, err := t.ExecContext(ctx, `
INSERT INTO mistake_entries (id, user_id, question_text, source, mistake_type, subject_id, chapter_id, topic_id, notes, screenshot_url)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, entry.ID, entry.UserID, entry.QuestionText, string(entry.Source), nullString(entry.MistakeType),
			entry.SubjectID, entry.ChapterID, nullString(entry.TopicID), nullString(entry.Notes), nullString(entry.ScreenshotURL))
		if err != nil {
			log.Error("failed to insert mistake: %v", err)
			return err
		}

		_, err = t.ExecContext(ctx, `
INSERT INTO redo_schedules (id, mistake_id, schedule_type, due_date, performed)
VALUES (?, ?, ?, ?, 0)
`, sched.ID, entry.ID, sched.ScheduleType, sched.DueDate.String())
		if err != nil {
			log.Error("failed to insert redo schedule: %v", err)
		}
		return err
	})
}

const mistakeColumns = `id, user_id, question_text, source, mistake_type, subject_id, chapter_id, topic_id, notes, screenshot_url, created_at, updated_at`

func scanMistake(row interface {
	Scan(dest ...any) error
}) (*models.MistakeEntry, error) {
	var e models.MistakeEntry
	var source string
	var mistakeType, topicID, notes, screenshotURL sql.NullString
	err := row.Scan(&e.ID, &e.UserID, &e.QuestionText, &source, &mistakeType,
		&e.SubjectID, &e.ChapterID, &topicID, &notes, &screenshotURL, &e.SavedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	e.Source = models.Source(source)
	e.MistakeType = fromNullString(mistakeType)
	e.TopicID = fromNullString(topicID)
	e.Notes = fromNullString(notes)
	e.ScreenshotURL = fromNullString(screenshotURL)
	return &e, nil
}

func (r *mistakeRepository) Get(ctx context.Context, userID, id string) (*models.MistakeEntry, error) {
	log := logger.FromContext(ctx).WithPrefix("mistake_repo")
	log.Debug("getting mistake: id=%s", id)

	row := r.db.QueryRowContext(ctx, `
SELECT `+mistakeColumns+`
FROM mistake_entries
WHERE id = ? AND user_id = ?
`, id, userID)
	entry, err := scanMistake(row)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("mistake not found: id=%s", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get mistake: %v", err)
		return nil, err
	}
	return entry, nil
}

func (r *mistakeRepository) List(ctx context.Context, filter models.MistakeFilter) ([]models.MistakeEntry, error) {
	log := logger.FromContext(ctx).WithPrefix("mistake_repo")
	log.Debug("listing mistakes: user_id=%s, limit=%d, offset=%d", filter.UserID, filter.Limit, filter.Offset)

	query := sqlBuilder.Select(
		"id", "user_id", "question_text", "source", "mistake_type",
		"subject_id", "chapter_id", "topic_id", "notes", "screenshot_url",
		"created_at", "updated_at",
	).From("mistake_entries").
		Where(squirrel.Eq{"user_id": filter.UserID}).
		OrderBy("created_at DESC")

	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build list query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list mistakes: %v", err)
		return nil, err
	}
	defer rows.Close()

	var entries []models.MistakeEntry
	for rows.Next() {
		entry, err := scanMistake(rows)
		if err != nil {
			log.Error("failed to scan mistake row: %v", err)
			return nil, err
		}
		entries = append(entries, *entry)
	}
	log.Debug("found %d mistakes", len(entries))
	return entries, rows.Err()
}

func (r *mistakeRepository) Count(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM mistake_entries WHERE user_id = ?`, userID).Scan(&count)
	if err != nil {
		logger.FromContext(ctx).WithPrefix("mistake_repo").Error("failed to count mistakes: %v", err)
		return 0, err
	}
	return count, nil
}

func (r *mistakeRepository) Update(ctx context.Context, entry models.MistakeEntry) (bool, error) {
	log := logger.FromContext(ctx).WithPrefix("mistake_repo")
	log.Debug("updating mistake: id=%s", entry.ID)

	res, err := r.db.ExecContext(ctx, `
UPDATE mistake_entries
SET question_text = ?, source = ?, mistake_type = ?, subject_id = ?, chapter_id = ?,
    topic_id = ?, notes = ?, screenshot_url = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ? AND user_id = ?
`, entry.QuestionText, string(entry.Source), nullString(entry.MistakeType), entry.SubjectID, entry.ChapterID,
		nullString(entry.TopicID), nullString(entry.Notes), nullString(entry.ScreenshotURL), entry.ID, entry.UserID)
	if err != nil {
		log.Error("failed to update mistake: %v", err)
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *mistakeRepository) Delete(ctx context.Context, userID, id string) (bool, error) {
	log := logger.FromContext(ctx).WithPrefix("mistake_repo")
	log.Debug("deleting mistake: id=%s", id)

	res, err := r.db.ExecContext(ctx, `DELETE FROM mistake_entries WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		log.Error("failed to delete mistake: %v", err)
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *mistakeRepository) ShufflePool(ctx context.Context, userID string) ([]models.ShuffleQuestion, error) {
	log := logger.FromContext(ctx).WithPrefix("mistake_repo")
	log.Debug("loading shuffle pool: user_id=%s", userID)

	rows, err := r.db.QueryContext(ctx, `
SELECT m.id, m.question_text, m.source, m.subject_id, m.chapter_id, m.topic_id,
       COALESCE(th.strength_level, 'Strong')
FROM mistake_entries m
LEFT JOIN topic_heatmap th ON th.topic_id = m.topic_id AND th.user_id = m.user_id
WHERE m.user_id = ?
ORDER BY m.created_at
`, userID)
	if err != nil {
		log.Error("failed to load shuffle pool: %v", err)
		return nil, err
	}
	defer rows.Close()

	var pool []models.ShuffleQuestion
	for rows.Next() {
		var q models.ShuffleQuestion
		var source string
		var topicID sql.NullString
		if err := rows.Scan(&q.MistakeID, &q.QuestionText, &source, &q.SubjectID, &q.ChapterID, &topicID, &q.TopicStrength); err != nil {
			log.Error("failed to scan shuffle row: %v", err)
			return nil, err
		}
		q.Source = models.Source(source)
		q.TopicID = fromNullString(topicID)
		pool = append(pool, q)
	}
	log.Debug("shuffle pool has %d candidates", len(pool))
	return pool, rows.Err()
}
