package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/studyvault/backend/internal/logger"
	"github.com/studyvault/backend/internal/models"
	"github.com/studyvault/backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository implementation
func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Insert(ctx context.Context, u models.User) error {
	log := logger.FromContext(ctx).WithPrefix("user_repo")
	log.Debug("inserting user: email=%s", u.Email)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO users (id, email, password_hash, streak_count, created_at)
VALUES (?, ?, ?, 0, CURRENT_TIMESTAMP)
`, u.ID, u.Email, u.PasswordHash)
	if err != nil {
		err = asDuplicate(err)
		if !errors.Is(err, repository.ErrDuplicate) {
			log.Error("failed to insert user: %v", err)
		}
		return err
	}
	log.Debug("user inserted: id=%s", u.ID)
	return nil
}

func (r *userRepository) Get(ctx context.Context, id string) (*models.User, error) {
	return r.getWhere(ctx, `id = ?`, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getWhere(ctx, `email = ?`, email)
}

func (r *userRepository) getWhere(ctx context.Context, clause string, arg any) (*models.User, error) {
	log := logger.FromContext(ctx).WithPrefix("user_repo")

	var u models.User
	var lastActive sql.NullString
	err := r.db.QueryRowContext(ctx, `
SELECT id, email, password_hash, streak_count, last_active_date, created_at
FROM users
WHERE `+clause, arg).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.StreakCount, &lastActive, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get user: %v", err)
		return nil, err
	}
	if u.LastActiveDate, err = scanNullDate(lastActive); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) ListIDs(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx).WithPrefix("user_repo")

	rows, err := r.db.QueryContext(ctx, `SELECT id FROM users ORDER BY created_at`)
	if err != nil {
		log.Error("failed to list user ids: %v", err)
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
