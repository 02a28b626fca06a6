package service

import (
	"context"

	"yatube/internal/config"
	"yatube/internal/models"
	"yatube/internal/repository"
)

// Page - одна страница ленты с метаданными пагинации
type Page struct {
	Posts      []models.Post
	Number     int
	TotalPages int
	TotalItems int
}

func (p *Page) HasNext() bool {
	return p.Number < p.TotalPages
}

func (p *Page) HasPrevious() bool {
	return p.Number > 1
}

func (p *Page) Next() int {
	return p.Number + 1
}

func (p *Page) Prev() int {
	return p.Number - 1
}

type FeedService interface {
	Index(ctx context.Context, page int) (*Page, error)
	GroupFeed(ctx context.Context, slug string, page int) (*models.Group, *Page, error)
	ProfileFeed(ctx context.Context, username string, page int) (*models.User, *Page, error)
	FollowFeed(ctx context.Context, userID string, page int) (*Page, error)
}

type feedService struct {
	postRepo   repository.PostRepository
	groupRepo  repository.GroupRepository
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	cfg        *config.Config
}

func NewFeedService(
	postRepo repository.PostRepository,
	groupRepo repository.GroupRepository,
	userRepo repository.UserRepository,
	followRepo repository.FollowRepository,
	cfg *config.Config,
) FeedService {
	return &feedService{
		postRepo:   postRepo,
		groupRepo:  groupRepo,
		userRepo:   userRepo,
		followRepo: followRepo,
		cfg:        cfg,
	}
}

// clampPage приводит номер страницы к допустимому диапазону:
// меньше 1 - первая страница, больше максимума - последняя
func clampPage(page, total, pageSize int) (int, int) {
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	return page, totalPages
}

func (s *feedService) Index(ctx context.Context, page int) (*Page, error) {
	total, err := s.postRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	page, totalPages := clampPage(page, total, s.cfg.PageSize)

	posts, err := s.postRepo.GetAll(ctx, s.cfg.PageSize, (page-1)*s.cfg.PageSize)
	if err != nil {
		return nil, err
	}

	return &Page{
		Posts:      posts,
		Number:     page,
		TotalPages: totalPages,
		TotalItems: total,
	}, nil
}

func (s *feedService) GroupFeed(ctx context.Context, slug string, page int) (*models.Group, *Page, error) {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}

	total, err := s.postRepo.CountByGroupID(ctx, group.GroupID)
	if err != nil {
		return nil, nil, err
	}

	page, totalPages := clampPage(page, total, s.cfg.PageSize)

	posts, err := s.postRepo.GetByGroupID(ctx, group.GroupID, s.cfg.PageSize, (page-1)*s.cfg.PageSize)
	if err != nil {
		return nil, nil, err
	}

	return group, &Page{
		Posts:      posts,
		Number:     page,
		TotalPages: totalPages,
		TotalItems: total,
	}, nil
}

func (s *feedService) ProfileFeed(ctx context.Context, username string, page int) (*models.User, *Page, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}

	total, err := s.postRepo.CountByAuthorID(ctx, user.UserID)
	if err != nil {
		return nil, nil, err
	}

	page, totalPages := clampPage(page, total, s.cfg.PageSize)

	posts, err := s.postRepo.GetByAuthorID(ctx, user.UserID, s.cfg.PageSize, (page-1)*s.cfg.PageSize)
	if err != nil {
		return nil, nil, err
	}

	return user, &Page{
		Posts:      posts,
		Number:     page,
		TotalPages: totalPages,
		TotalItems: total,
	}, nil
}

func (s *feedService) FollowFeed(ctx context.Context, userID string, page int) (*Page, error) {
	total, err := s.postRepo.CountByFollowedAuthors(ctx, userID)
	if err != nil {
		return nil, err
	}

	page, totalPages := clampPage(page, total, s.cfg.PageSize)

	posts, err := s.postRepo.GetByFollowedAuthors(ctx, userID, s.cfg.PageSize, (page-1)*s.cfg.PageSize)
	if err != nil {
		return nil, err
	}

	return &Page{
		Posts:      posts,
		Number:     page,
		TotalPages: totalPages,
		TotalItems: total,
	}, nil
}
