package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"yatube/internal/models"
)

type PostRepositoryImpl struct {
	db *sqlx.DB
}

type CreatePostRequest struct {
	AuthorID string  `json:"author_id"`
	Text     string  `json:"text"`
	GroupID  *string `json:"group_id"`
	ImageURL *string `json:"image_url"`
}

type UpdatePostRequest struct {
	PostID   string  `json:"post_id"`
	AuthorID string  `json:"author_id"`
	Text     string  `json:"text"`
	GroupID  *string `json:"group_id"`
	ImageURL *string `json:"image_url"`
}

const postListColumns = `
		p.post_id, p.text, p.pub_date, p.author_id, p.group_id, p.image_url,
		u.username AS author_username, g.slug AS group_slug
`

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{db: db}
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}

	// pub_date выставляется один раз при создании
	if post.PubDate.IsZero() {
		post.PubDate = time.Now()
	}

	query := `
        INSERT INTO posts (post_id, text, pub_date, author_id, group_id, image_url)
        VALUES (:post_id, :text, :pub_date, :author_id, :group_id, :image_url)
    `

	_, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("ошибка при создании поста: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	query := `
        SELECT ` + postListColumns + `
        FROM posts p
        LEFT JOIN users u ON u.user_id = p.author_id
        LEFT JOIN groups g ON g.group_id = p.group_id
        WHERE p.post_id = $1
    `

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пост с ID %s не найден", postID)
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	return &post, nil
}

// Update не трогает pub_date и author_id
func (r *PostRepositoryImpl) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts SET
			text = :text,
			group_id = :group_id,
			image_url = :image_url
		WHERE post_id = :post_id
	`

	result, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пост с ID %s не найден", post.PostID)
	}

	return nil
}

func (r *PostRepositoryImpl) Delete(ctx context.Context, postID string) error {
	query := `DELETE FROM posts WHERE post_id = $1`

	result, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пост с ID %s не найден", postID)
	}

	return nil
}

func (r *PostRepositoryImpl) GetAll(ctx context.Context, limit, offset int) ([]models.Post, error) {
	query := `
        SELECT ` + postListColumns + `
        FROM posts p
        LEFT JOIN users u ON u.user_id = p.author_id
        LEFT JOIN groups g ON g.group_id = p.group_id
        ORDER BY p.pub_date DESC
        LIMIT $1 OFFSET $2
    `

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) CountAll(ctx context.Context) (int, error) {
	var count int

	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM posts`)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте постов: %w", err)
	}

	return count, nil
}

func (r *PostRepositoryImpl) GetByGroupID(ctx context.Context, groupID string, limit, offset int) ([]models.Post, error) {
	query := `
        SELECT ` + postListColumns + `
        FROM posts p
        LEFT JOIN users u ON u.user_id = p.author_id
        LEFT JOIN groups g ON g.group_id = p.group_id
        WHERE p.group_id = $1
        ORDER BY p.pub_date DESC
        LIMIT $2 OFFSET $3
    `

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, groupID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов группы: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) CountByGroupID(ctx context.Context, groupID string) (int, error) {
	var count int

	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM posts WHERE group_id = $1`, groupID)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте постов группы: %w", err)
	}

	return count, nil
}

func (r *PostRepositoryImpl) GetByAuthorID(ctx context.Context, authorID string, limit, offset int) ([]models.Post, error) {
	query := `
        SELECT ` + postListColumns + `
        FROM posts p
        LEFT JOIN users u ON u.user_id = p.author_id
        LEFT JOIN groups g ON g.group_id = p.group_id
        WHERE p.author_id = $1
        ORDER BY p.pub_date DESC
        LIMIT $2 OFFSET $3
    `

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, authorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов автора: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) CountByAuthorID(ctx context.Context, authorID string) (int, error) {
	var count int

	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM posts WHERE author_id = $1`, authorID)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте постов автора: %w", err)
	}

	return count, nil
}

func (r *PostRepositoryImpl) GetByFollowedAuthors(ctx context.Context, userID string, limit, offset int) ([]models.Post, error) {
	query := `
        SELECT ` + postListColumns + `
        FROM posts p
        LEFT JOIN users u ON u.user_id = p.author_id
        LEFT JOIN groups g ON g.group_id = p.group_id
        WHERE p.author_id IN (
            SELECT author_id FROM follows WHERE user_id = $1 AND author_id IS NOT NULL
        )
        ORDER BY p.pub_date DESC
        LIMIT $2 OFFSET $3
    `

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении ленты подписок: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) CountByFollowedAuthors(ctx context.Context, userID string) (int, error) {
	query := `
        SELECT COUNT(*) FROM posts
        WHERE author_id IN (
            SELECT author_id FROM follows WHERE user_id = $1 AND author_id IS NOT NULL
        )
    `

	var count int
	err := r.db.GetContext(ctx, &count, query, userID)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте ленты подписок: %w", err)
	}

	return count, nil
}
