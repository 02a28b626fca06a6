package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"yatube/internal/models"
)

type CommentRepositoryImpl struct {
	db *sqlx.DB
}

type CreateCommentRequest struct {
	PostID   string `json:"post_id"`
	AuthorID string `json:"author_id"`
	Text     string `json:"text"`
}

func NewCommentRepository(db *sqlx.DB) *CommentRepositoryImpl {
	return &CommentRepositoryImpl{db: db}
}

func (r *CommentRepositoryImpl) Create(ctx context.Context, comment *models.Comment) error {
	if comment.CommentID == "" {
		comment.CommentID = uuid.New().String()
	}

	if comment.Created.IsZero() {
		comment.Created = time.Now()
	}

	query := `
		INSERT INTO comments (comment_id, post_id, author_id, text, created)
		VALUES (:comment_id, :post_id, :author_id, :text, :created)
	`

	_, err := r.db.NamedExecContext(ctx, query, comment)
	if err != nil {
		return fmt.Errorf("ошибка при создании комментария: %w", err)
	}

	return nil
}

func (r *CommentRepositoryImpl) GetByPostID(ctx context.Context, postID string) ([]models.Comment, error) {
	query := `
		SELECT c.comment_id, c.post_id, c.author_id, c.text, c.created,
		       u.username AS author_username
		FROM comments c
		LEFT JOIN users u ON u.user_id = c.author_id
		WHERE c.post_id = $1
		ORDER BY c.created
	`

	var comments []models.Comment
	err := r.db.SelectContext(ctx, &comments, query, postID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении комментариев: %w", err)
	}

	return comments, nil
}
