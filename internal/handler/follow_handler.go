package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// ProfileFollow подписывает текущего пользователя на автора.
// Подписка на себя и повторная подписка молча пропускаются,
// редирект на профиль происходит в любом случае.
func (h *Handlers) ProfileFollow(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)
	if user == nil {
		redirectToLogin(w, r)
		return
	}

	username := mux.Vars(r)["username"]

	_, err := h.FollowService.Follow(r.Context(), user.UserID, username)
	if err != nil {
		if isNotFound(err) {
			NotFoundPage(w)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	http.Redirect(w, r, "/profile/"+username+"/", http.StatusFound)
}

// ProfileUnfollow удаляет подписку; отсутствующее ребро - 404
func (h *Handlers) ProfileUnfollow(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)
	if user == nil {
		redirectToLogin(w, r)
		return
	}

	username := mux.Vars(r)["username"]

	_, err := h.FollowService.Unfollow(r.Context(), user.UserID, username)
	if err != nil {
		if isNotFound(err) {
			NotFoundPage(w)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	http.Redirect(w, r, "/profile/"+username+"/", http.StatusFound)
}
