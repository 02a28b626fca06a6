package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"yatube/internal/cache"
	"yatube/internal/models"
	"yatube/internal/service"
)

type baseView struct {
	User *models.User
}

type indexView struct {
	baseView
	Page *service.Page
}

type groupView struct {
	baseView
	Group *models.Group
	Page  *service.Page
}

type profileView struct {
	baseView
	Author    *models.User
	Page      *service.Page
	Following bool
}

// currentUser достаёт пользователя, положенного в контекст auth-middleware
func currentUser(r *http.Request) *models.User {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		return nil
	}

	username, _ := r.Context().Value("username").(string)

	return &models.User{UserID: userID, Username: username}
}

func pageNumber(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	return page
}

// Index - главная лента. Отрендеренная страница кэшируется на короткий TTL,
// поэтому свежий пост может появиться с задержкой до истечения кэша.
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	page := pageNumber(r)
	key := cache.PageKey("/", page)

	if h.Cache != nil {
		if body, ok, err := h.Cache.Get(r.Context(), key); err == nil && ok {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(body)
			return
		}
	}

	feedPage, err := h.FeedService.Index(r.Context(), page)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	view := indexView{
		baseView: baseView{User: currentUser(r)},
		Page:     feedPage,
	}

	body, err := renderToBytes("index", view)
	if err != nil {
		log.Printf("Ошибка рендеринга главной: %v", err)
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	if h.Cache != nil {
		if err := h.Cache.Set(r.Context(), key, body, h.Cfg.IndexCacheTTL); err != nil {
			log.Printf("Внимание: не удалось записать страницу в кэш: %v", err)
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(body)
}

// GroupPosts - лента постов группы по slug
func (h *Handlers) GroupPosts(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	group, feedPage, err := h.FeedService.GroupFeed(r.Context(), slug, pageNumber(r))
	if err != nil {
		if isNotFound(err) {
			NotFoundPage(w)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	view := groupView{
		baseView: baseView{User: currentUser(r)},
		Group:    group,
		Page:     feedPage,
	}

	render(w, http.StatusOK, "group_list", view)
}

// Profile - лента автора и счётчик его постов
func (h *Handlers) Profile(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	author, feedPage, err := h.FeedService.ProfileFeed(r.Context(), username, pageNumber(r))
	if err != nil {
		if isNotFound(err) {
			NotFoundPage(w)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	following := false
	if user := currentUser(r); user != nil {
		var followErr error
		following, followErr = h.FollowService.IsFollowing(r.Context(), user.UserID, author.UserID)
		if followErr != nil {
			// профиль показываем и без статуса подписки
			log.Printf("Внимание: не удалось проверить подписку: %v", followErr)
		}
	}

	view := profileView{
		baseView:  baseView{User: currentUser(r)},
		Author:    author,
		Page:      feedPage,
		Following: following,
	}

	render(w, http.StatusOK, "profile", view)
}

// FollowIndex - лента постов авторов, на которых подписан пользователь
func (h *Handlers) FollowIndex(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)
	if user == nil {
		redirectToLogin(w, r)
		return
	}

	feedPage, err := h.FeedService.FollowFeed(r.Context(), user.UserID, pageNumber(r))
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	view := indexView{
		baseView: baseView{User: user},
		Page:     feedPage,
	}

	render(w, http.StatusOK, "follow", view)
}
