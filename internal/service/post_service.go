package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"yatube/internal/config"
	"yatube/internal/models"
	"yatube/internal/repository"
	"yatube/internal/storage"
)

type PostService interface {
	CreatePost(ctx context.Context, req repository.CreatePostRequest) (*models.Post, error)
	UpdatePost(ctx context.Context, req repository.UpdatePostRequest) (*models.Post, error)
	GetPost(ctx context.Context, postID string) (*models.Post, error)
	DeletePost(ctx context.Context, postID string) error
	UploadImage(ctx context.Context, fileName string, file io.Reader, size int64) (string, error)
}

type postService struct {
	postRepo repository.PostRepository
	storage  storage.Storage
	cfg      *config.Config
}

func NewPostService(postRepo repository.PostRepository, storage storage.Storage, cfg *config.Config) PostService {
	return &postService{
		postRepo: postRepo,
		storage:  storage,
		cfg:      cfg,
	}
}

// ValidatePostText - единственное доменное правило валидации:
// текст поста не может быть пустым или состоять из одних пробелов
func ValidatePostText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("текст поста не может быть пустым")
	}
	return nil
}

func (p *postService) CreatePost(ctx context.Context, req repository.CreatePostRequest) (*models.Post, error) {
	if err := ValidatePostText(req.Text); err != nil {
		return nil, err
	}

	// автор всегда берётся из контекста запроса, а не из формы
	post := &models.Post{
		Text:     req.Text,
		AuthorID: &req.AuthorID,
		GroupID:  req.GroupID,
		ImageURL: req.ImageURL,
	}

	err := p.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) UpdatePost(ctx context.Context, req repository.UpdatePostRequest) (*models.Post, error) {
	if err := ValidatePostText(req.Text); err != nil {
		return nil, err
	}

	post, err := p.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		return nil, err
	}

	post.Text = req.Text
	post.GroupID = req.GroupID
	if req.ImageURL != nil {
		// прежняя картинка больше никем не используется
		if post.ImageURL != nil && *post.ImageURL != *req.ImageURL {
			if err := p.deleteStoredImage(ctx, *post.ImageURL); err != nil {
				log.Printf("Внимание: не удалось удалить старое изображение: %v", err)
			}
		}
		post.ImageURL = req.ImageURL
	}

	err = p.postRepo.Update(ctx, post)
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	return p.postRepo.GetByID(ctx, postID)
}

func (p *postService) DeletePost(ctx context.Context, postID string) error {
	return p.postRepo.Delete(ctx, postID)
}

// deleteStoredImage восстанавливает имя объекта из сохранённой ссылки
// вида scheme://endpoint/bucket/objectName и удаляет его из хранилища
func (p *postService) deleteStoredImage(ctx context.Context, imageURL string) error {
	marker := "/" + p.cfg.MinIO.BucketName + "/"
	idx := strings.Index(imageURL, marker)
	if idx < 0 {
		return fmt.Errorf("не удалось определить объект по ссылке %s", imageURL)
	}

	return p.storage.DeleteImage(ctx, imageURL[idx+len(marker):])
}

func (p *postService) UploadImage(ctx context.Context, fileName string, file io.Reader, size int64) (string, error) {
	_, imageURL, err := p.storage.UploadImage(ctx, fileName, file, size)
	if err != nil {
		return "", fmt.Errorf("ошибка загрузки изображения в MinIO: %w", err)
	}

	return imageURL, nil
}
