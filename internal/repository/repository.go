package repository

import (
	"context"
	"github.com/jmoiron/sqlx"
	"yatube/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	VerifyPassword(ctx context.Context, username, password string) (*models.User, error)
	DeleteUser(ctx context.Context, userID string) error
}

type GroupRepository interface {
	Create(ctx context.Context, group *models.Group) error
	GetBySlug(ctx context.Context, slug string) (*models.Group, error)
	GetAll(ctx context.Context) ([]models.Group, error)
	Delete(ctx context.Context, groupID string) error
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, postID string) error
	GetAll(ctx context.Context, limit, offset int) ([]models.Post, error)
	CountAll(ctx context.Context) (int, error)
	GetByGroupID(ctx context.Context, groupID string, limit, offset int) ([]models.Post, error)
	CountByGroupID(ctx context.Context, groupID string) (int, error)
	GetByAuthorID(ctx context.Context, authorID string, limit, offset int) ([]models.Post, error)
	CountByAuthorID(ctx context.Context, authorID string) (int, error)
	GetByFollowedAuthors(ctx context.Context, userID string, limit, offset int) ([]models.Post, error)
	CountByFollowedAuthors(ctx context.Context, userID string) (int, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByPostID(ctx context.Context, postID string) ([]models.Comment, error)
}

type FollowRepository interface {
	GetOrCreate(ctx context.Context, userID, authorID string) (bool, error)
	Delete(ctx context.Context, userID, authorID string) error
	Exists(ctx context.Context, userID, authorID string) (bool, error)
}

type Repository struct {
	User    UserRepository
	Group   GroupRepository
	Post    PostRepository
	Comment CommentRepository
	Follow  FollowRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:    NewUserRepository(db),
		Group:   NewGroupRepository(db),
		Post:    NewPostRepository(db),
		Comment: NewCommentRepository(db),
		Follow:  NewFollowRepository(db),
	}
}
