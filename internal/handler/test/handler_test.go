package test

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"yatube/internal/config"
	handlers "yatube/internal/handler"
)

type testMocks struct {
	Feed    *MockFeedService
	Post    *MockPostService
	Comment *MockCommentService
	Follow  *MockFollowService
	Auth    *MockAuthService
	Groups  *MockGroupRepository
	Cache   *MockPageCache
}

func newTestHandlers() (*handlers.Handlers, *testMocks) {
	m := &testMocks{
		Feed:    new(MockFeedService),
		Post:    new(MockPostService),
		Comment: new(MockCommentService),
		Follow:  new(MockFollowService),
		Auth:    new(MockAuthService),
		Groups:  new(MockGroupRepository),
		Cache:   new(MockPageCache),
	}

	cfg := &config.Config{
		PageSize:      10,
		IndexCacheTTL: 20 * time.Second,
		MaxUploadSize: 10 * 1024 * 1024,
	}

	h := &handlers.Handlers{
		FeedService:    m.Feed,
		PostService:    m.Post,
		CommentService: m.Comment,
		FollowService:  m.Follow,
		AuthService:    m.Auth,
		GroupRepo:      m.Groups,
		Cache:          m.Cache,
		Cfg:            cfg,
		Validate:       validator.New(),
	}

	return h, m
}

// newRouter собирает те же маршруты, что и main
func newRouter(h *handlers.Handlers) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", h.Index).Methods(http.MethodGet)
	r.HandleFunc("/create/", h.PostCreate).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/follow/", h.FollowIndex).Methods(http.MethodGet)
	r.HandleFunc("/group/{slug}/", h.GroupPosts).Methods(http.MethodGet)
	r.HandleFunc("/profile/{username}/follow/", h.ProfileFollow).Methods(http.MethodGet)
	r.HandleFunc("/profile/{username}/unfollow/", h.ProfileUnfollow).Methods(http.MethodGet)
	r.HandleFunc("/profile/{username}/", h.Profile).Methods(http.MethodGet)
	r.HandleFunc("/posts/{id}/edit/", h.PostEdit).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/posts/{id}/comment/", h.AddComment).Methods(http.MethodPost)
	r.HandleFunc("/posts/{id}/", h.PostDetailHandler).Methods(http.MethodGet)

	return r
}

// asUser кладёт пользователя в контекст запроса так же,
// как это делает auth-middleware
func asUser(r *http.Request, userID, username string) *http.Request {
	ctx := context.WithValue(r.Context(), "userID", userID)
	ctx = context.WithValue(ctx, "username", username)
	return r.WithContext(ctx)
}
