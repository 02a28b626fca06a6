package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"yatube/internal/models"
)

type GroupRepositoryImpl struct {
	db *sqlx.DB
}

func NewGroupRepository(db *sqlx.DB) *GroupRepositoryImpl {
	return &GroupRepositoryImpl{db: db}
}

func (r *GroupRepositoryImpl) Create(ctx context.Context, group *models.Group) error {
	if group.GroupID == "" {
		group.GroupID = uuid.New().String()
	}

	query := `
		INSERT INTO groups (group_id, title, slug, description)
		VALUES (:group_id, :title, :slug, :description)
	`

	_, err := r.db.NamedExecContext(ctx, query, group)
	if err != nil {
		return fmt.Errorf("ошибка при создании группы: %w", err)
	}

	return nil
}

func (r *GroupRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*models.Group, error) {
	query := `SELECT * FROM groups WHERE slug = $1`

	var group models.Group
	err := r.db.GetContext(ctx, &group, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("группа со slug %s не найдена", slug)
		}
		return nil, fmt.Errorf("ошибка при получении группы: %w", err)
	}

	return &group, nil
}

func (r *GroupRepositoryImpl) GetAll(ctx context.Context) ([]models.Group, error) {
	query := `SELECT * FROM groups ORDER BY title`

	var groups []models.Group
	err := r.db.SelectContext(ctx, &groups, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка групп: %w", err)
	}

	return groups, nil
}

// Delete удаляет группу, посты остаются с group_id = NULL (ON DELETE SET NULL)
func (r *GroupRepositoryImpl) Delete(ctx context.Context, groupID string) error {
	query := `DELETE FROM groups WHERE group_id = $1`

	result, err := r.db.ExecContext(ctx, query, groupID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении группы: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("группа с ID %s не найдена", groupID)
	}

	return nil
}
