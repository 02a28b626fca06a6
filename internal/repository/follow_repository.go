package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type FollowRepositoryImpl struct {
	db *sqlx.DB
}

func NewFollowRepository(db *sqlx.DB) *FollowRepositoryImpl {
	return &FollowRepositoryImpl{db: db}
}

// GetOrCreate создаёт ребро (user, author), если его ещё нет.
// Уникальность пары гарантирует индекс UNIQUE (user_id, author_id),
// поэтому повторный вызов идемпотентен. Возвращает true, если ребро создано.
func (r *FollowRepositoryImpl) GetOrCreate(ctx context.Context, userID, authorID string) (bool, error) {
	query := `
		INSERT INTO follows (follow_id, user_id, author_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, author_id) DO NOTHING
	`

	result, err := r.db.ExecContext(ctx, query, uuid.New().String(), userID, authorID)
	if err != nil {
		return false, fmt.Errorf("ошибка при создании подписки: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке созданных строк: %w", err)
	}

	return rowsAffected == 1, nil
}

func (r *FollowRepositoryImpl) Delete(ctx context.Context, userID, authorID string) error {
	query := `DELETE FROM follows WHERE user_id = $1 AND author_id = $2`

	result, err := r.db.ExecContext(ctx, query, userID, authorID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении подписки: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("подписка не найдена")
	}

	return nil
}

func (r *FollowRepositoryImpl) Exists(ctx context.Context, userID, authorID string) (bool, error) {
	query := `SELECT COUNT(*) FROM follows WHERE user_id = $1 AND author_id = $2`

	var count int
	err := r.db.GetContext(ctx, &count, query, userID, authorID)
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке подписки: %w", err)
	}

	return count > 0, nil
}
