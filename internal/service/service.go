package service

import (
	"yatube/internal/config"
	"yatube/internal/repository"
	"yatube/internal/storage"
)

type Service struct {
	Feed    FeedService
	Post    PostService
	Comment CommentService
	Follow  FollowService
	Auth    AuthService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Feed:    NewFeedService(rep.Post, rep.Group, rep.User, rep.Follow, cfg),
		Post:    NewPostService(rep.Post, storage, cfg),
		Comment: NewCommentService(rep.Comment, rep.Post),
		Follow:  NewFollowService(rep.Follow, rep.User),
		Auth:    NewAuthService(rep.User, cfg),
	}
}
