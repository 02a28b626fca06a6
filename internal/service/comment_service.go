package service

import (
	"context"

	"yatube/internal/models"
	"yatube/internal/repository"
)

// PostDetail - данные страницы поста: сам пост, его комментарии
// и общее число постов автора
type PostDetail struct {
	Post          *models.Post
	Comments      []models.Comment
	AuthorPostNum int
}

type CommentService interface {
	AddComment(ctx context.Context, req repository.CreateCommentRequest) (*models.Comment, error)
	GetPostDetail(ctx context.Context, postID string) (*PostDetail, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

func (s *commentService) AddComment(ctx context.Context, req repository.CreateCommentRequest) (*models.Comment, error) {
	// комментарий привязывается только к существующему посту
	post, err := s.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:   &post.PostID,
		AuthorID: &req.AuthorID,
		Text:     req.Text,
	}

	err = s.commentRepo.Create(ctx, comment)
	if err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *commentService) GetPostDetail(ctx context.Context, postID string) (*PostDetail, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.GetByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}

	authorPostNum := 0
	if post.AuthorID != nil {
		authorPostNum, err = s.postRepo.CountByAuthorID(ctx, *post.AuthorID)
		if err != nil {
			return nil, err
		}
	}

	return &PostDetail{
		Post:          post,
		Comments:      comments,
		AuthorPostNum: authorPostNum,
	}, nil
}
