package sqlite

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/studyvault/backend/internal/logger"
	"github.com/studyvault/backend/internal/models"
	"github.com/studyvault/backend/internal/repository"
)

type streakRepository struct {
	db *sql.DB
}

// NewStreakRepository creates a new StreakRepository implementation
func NewStreakRepository(db *sql.DB) repository.StreakRepository {
	return &streakRepository{db: db}
}

// RecordActivity inserts the activity log and updates the user's streak
// counter in one transaction. The UNIQUE(user_id, activity_date) constraint
// makes the duplicate check race free: when the insert is ignored, the
// counter is left untouched.
func (r *streakRepository) RecordActivity(ctx context.Context, entry models.StreakLog, advance func(current int, lastActive *models.Date) int) (repository.StreakActivityResult, error) {
	log := logger.FromContext(ctx).WithPrefix("streak_repo")
	log.Debug("recording activity: user_id=%s, type=%s, date=%s", entry.UserID, entry.ActivityType, entry.ActivityDate)

	id := entry.ID
	if id == "" {
		id = uuid.NewString()
	}

	var result repository.StreakActivityResult
	err := tx(ctx, r.db, func(t *sql.Tx) error {
		res, err := t.ExecContext(ctx, `
INSERT INTO streak_logs (id, user_id, activity_type, activity_date)
VALUES (?, ?, ?, ?)
ON CONFLICT(user_id, activity_date) DO NOTHING
`, id, entry.UserID, entry.ActivityType, entry.ActivityDate.String())
		if err != nil {
			return err
		}
		inserted, err := res.RowsAffected()
		if err != nil {
			return err
		}

		var current int
		var lastActive sql.NullString
		if err := t.QueryRowContext(ctx, `SELECT streak_count, last_active_date FROM users WHERE id = ?`, entry.UserID).
			Scan(&current, &lastActive); err != nil {
			return err
		}
		last, err := scanNullDate(lastActive)
		if err != nil {
			return err
		}

		if inserted == 0 {
			result = repository.StreakActivityResult{StreakCount: current, AlreadyLogged: true}
			return nil
		}

		next := advance(current, last)
		if _, err := t.ExecContext(ctx, `UPDATE users SET streak_count = ?, last_active_date = ? WHERE id = ?`,
			next, entry.ActivityDate.String(), entry.UserID); err != nil {
			return err
		}
		result = repository.StreakActivityResult{StreakCount: next, AlreadyLogged: false}
		return nil
	})
	if err != nil {
		log.Error("failed to record activity: %v", err)
		return repository.StreakActivityResult{}, err
	}
	log.Debug("activity recorded: streak=%d, already_logged=%v", result.StreakCount, result.AlreadyLogged)
	return result, nil
}

func (r *streakRepository) CountActivities(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM streak_logs WHERE user_id = ?`, userID).Scan(&count)
	if err != nil {
		logger.FromContext(ctx).WithPrefix("streak_repo").Error("failed to count activities: %v", err)
		return 0, err
	}
	return count, nil
}

func (r *streakRepository) ActivityBreakdown(ctx context.Context, userID string, since models.Date) (map[string]int, error) {
	log := logger.FromContext(ctx).WithPrefix("streak_repo")

	rows, err := r.db.QueryContext(ctx, `
SELECT activity_type, COUNT(*)
FROM streak_logs
WHERE user_id = ? AND activity_date >= ?
GROUP BY activity_type
`, userID, since.String())
	if err != nil {
		log.Error("failed to compute activity breakdown: %v", err)
		return nil, err
	}
	defer rows.Close()

	breakdown := make(map[string]int)
	for rows.Next() {
		var activityType string
		var count int
		if err := rows.Scan(&activityType, &count); err != nil {
			log.Error("failed to scan activity breakdown row: %v", err)
			return nil, err
		}
		breakdown[activityType] = count
	}
	return breakdown, rows.Err()
}
