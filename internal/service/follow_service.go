package service

import (
	"context"

	"yatube/internal/models"
	"yatube/internal/repository"
)

type FollowService interface {
	Follow(ctx context.Context, userID, authorUsername string) (*models.User, error)
	Unfollow(ctx context.Context, userID, authorUsername string) (*models.User, error)
	IsFollowing(ctx context.Context, userID, authorID string) (bool, error)
}

type followService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) FollowService {
	return &followService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow подписывает user на автора по username.
// Подписка на самого себя молча пропускается, повторная подписка идемпотентна.
func (s *followService) Follow(ctx context.Context, userID, authorUsername string) (*models.User, error) {
	author, err := s.userRepo.GetUserByUsername(ctx, authorUsername)
	if err != nil {
		return nil, err
	}

	if author.UserID == userID {
		return author, nil
	}

	_, err = s.followRepo.GetOrCreate(ctx, userID, author.UserID)
	if err != nil {
		return nil, err
	}

	return author, nil
}

func (s *followService) Unfollow(ctx context.Context, userID, authorUsername string) (*models.User, error) {
	author, err := s.userRepo.GetUserByUsername(ctx, authorUsername)
	if err != nil {
		return nil, err
	}

	err = s.followRepo.Delete(ctx, userID, author.UserID)
	if err != nil {
		return nil, err
	}

	return author, nil
}

func (s *followService) IsFollowing(ctx context.Context, userID, authorID string) (bool, error) {
	return s.followRepo.Exists(ctx, userID, authorID)
}
