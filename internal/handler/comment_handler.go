package handlers

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"yatube/internal/repository"
)

// CommentForm - форма нового комментария
type CommentForm struct {
	Text string `validate:"required"`
}

// AddComment добавляет комментарий к посту и в любом случае
// возвращает на страницу поста
func (h *Handlers) AddComment(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)
	if user == nil {
		redirectToLogin(w, r)
		return
	}

	postID := mux.Vars(r)["id"]

	r.ParseForm()
	form := CommentForm{Text: r.FormValue("text")}

	if err := h.Validate.Struct(form); err == nil {
		req := repository.CreateCommentRequest{
			PostID:   postID,
			AuthorID: user.UserID,
			Text:     form.Text,
		}

		if _, err := h.CommentService.AddComment(r.Context(), req); err != nil {
			if isNotFound(err) {
				NotFoundPage(w)
				return
			}
			log.Printf("Ошибка при добавлении комментария: %v", err)
		}
	}

	http.Redirect(w, r, "/posts/"+postID+"/", http.StatusFound)
}
