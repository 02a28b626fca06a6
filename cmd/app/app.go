package app

import (
	"log"
	"yatube/internal/cache"
	"yatube/internal/config"
	"yatube/internal/database"
	"yatube/internal/repository"
	"yatube/internal/service"
	"yatube/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service, cache.PageCache) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}

	// connection MinIO
	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("Не удалось инициализировать MinIO: %v", err)
	}

	// connection Redis
	pageCache, err := cache.NewRedisCache(cfg)
	if err != nil {
		log.Fatalf("Не удалось инициализировать Redis: %v", err)
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, minioClient)

	return db, repo, services, pageCache
}
