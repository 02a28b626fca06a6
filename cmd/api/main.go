package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"yatube/cmd/app"
	"yatube/internal/config"
	handlers "yatube/internal/handler"
	"yatube/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, repo, services, pageCache := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, pageCache, db, cfg)

	r := mux.NewRouter()

	// setting up routes
	r.HandleFunc("/", handler.Index).Methods(http.MethodGet)
	r.HandleFunc("/health", handler.HealthHandler).Methods(http.MethodGet)

	r.HandleFunc("/auth/login/", handler.Login).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/auth/signup/", handler.Signup).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/auth/logout/", handler.Logout).Methods(http.MethodGet)

	r.HandleFunc("/create/", handler.PostCreate).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/follow/", handler.FollowIndex).Methods(http.MethodGet)

	r.HandleFunc("/group/{slug}/", handler.GroupPosts).Methods(http.MethodGet)

	r.HandleFunc("/profile/{username}/follow/", handler.ProfileFollow).Methods(http.MethodGet)
	r.HandleFunc("/profile/{username}/unfollow/", handler.ProfileUnfollow).Methods(http.MethodGet)
	r.HandleFunc("/profile/{username}/", handler.Profile).Methods(http.MethodGet)

	r.HandleFunc("/posts/{id}/edit/", handler.PostEdit).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/posts/{id}/comment/", handler.AddComment).Methods(http.MethodPost)
	r.HandleFunc("/posts/{id}/", handler.PostDetailHandler).Methods(http.MethodGet)

	handlerChain := middleware.Chain(
		r,
		middleware.LoggingMiddleware,
		middleware.AuthMiddleware(services.Auth),
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
