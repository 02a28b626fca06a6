package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"yatube/internal/models"
	"yatube/internal/repository"
	"yatube/internal/service"
)

// PostForm - типизированная форма создания/редактирования поста
type PostForm struct {
	Text    string `validate:"required"`
	GroupID string
}

type postDetailView struct {
	baseView
	Detail *service.PostDetail
}

type createPostView struct {
	baseView
	Groups  []models.Group
	Form    PostForm
	Errors  map[string]string
	IsEdit  bool
	PostID  string
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// validatePostForm возвращает пофилдовые ошибки; пустой после trim текст -
// единственное доменное правило
func (h *Handlers) validatePostForm(form *PostForm) map[string]string {
	formErrors := map[string]string{}

	if err := h.Validate.Struct(form); err != nil {
		formErrors["text"] = "Обязательное поле"
	}

	if err := service.ValidatePostText(form.Text); err != nil {
		formErrors["text"] = "Текст поста не может быть пустым"
	}

	if len(formErrors) == 0 {
		return nil
	}
	return formErrors
}

func (h *Handlers) parsePostForm(r *http.Request) PostForm {
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		r.ParseForm()
	}

	return PostForm{
		Text:    r.FormValue("text"),
		GroupID: r.FormValue("group"),
	}
}

// uploadFormImage загружает вложение формы в MinIO, если оно есть
func (h *Handlers) uploadFormImage(w http.ResponseWriter, r *http.Request) (*string, bool) {
	file, header, err := r.FormFile("image")
	if err != nil {
		// изображение опционально
		return nil, true
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		WriteError(w, "Неподдерживаемый тип файла. Разрешены: JPEG, PNG, GIF, WebP", http.StatusBadRequest)
		return nil, false
	}

	imageURL, err := h.PostService.UploadImage(r.Context(), header.Filename, file, header.Size)
	if err != nil {
		WriteError(w, "Ошибка загрузки изображения", http.StatusInternalServerError)
		return nil, false
	}

	return &imageURL, true
}

// PostDetailHandler - страница поста: пост, комментарии, число постов автора
// и пустая форма комментария
func (h *Handlers) PostDetailHandler(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	detail, err := h.CommentService.GetPostDetail(r.Context(), postID)
	if err != nil {
		if isNotFound(err) {
			NotFoundPage(w)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	view := postDetailView{
		baseView: baseView{User: currentUser(r)},
		Detail:   detail,
	}

	render(w, http.StatusOK, "post_detail", view)
}

// PostCreate создаёт пост от имени текущего пользователя.
// Невалидная форма перерисовывается с ошибками и статусом 200.
func (h *Handlers) PostCreate(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)
	if user == nil {
		redirectToLogin(w, r)
		return
	}

	groups, err := h.GroupRepo.GetAll(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if r.Method == http.MethodGet {
		view := createPostView{
			baseView: baseView{User: user},
			Groups:   groups,
		}
		render(w, http.StatusOK, "create_post", view)
		return
	}

	form := h.parsePostForm(r)

	if formErrors := h.validatePostForm(&form); formErrors != nil {
		view := createPostView{
			baseView: baseView{User: user},
			Groups:   groups,
			Form:     form,
			Errors:   formErrors,
		}
		render(w, http.StatusOK, "create_post", view)
		return
	}

	imageURL, ok := h.uploadFormImage(w, r)
	if !ok {
		return
	}

	req := repository.CreatePostRequest{
		// автор берётся из сессии, значение из формы игнорируется
		AuthorID: user.UserID,
		Text:     form.Text,
		ImageURL: imageURL,
	}
	if form.GroupID != "" {
		req.GroupID = &form.GroupID
	}

	_, err = h.PostService.CreatePost(r.Context(), req)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/profile/"+user.Username+"/", http.StatusFound)
}

// PostEdit редактирует пост. Проверки владельца нет - авторизованный
// пользователь может открыть форму любого поста, автор при сохранении
// принудительно заменяется на текущего пользователя.
func (h *Handlers) PostEdit(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)
	if user == nil {
		redirectToLogin(w, r)
		return
	}

	postID := mux.Vars(r)["id"]

	post, err := h.PostService.GetPost(r.Context(), postID)
	if err != nil {
		if isNotFound(err) {
			NotFoundPage(w)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	groups, err := h.GroupRepo.GetAll(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if r.Method == http.MethodGet {
		form := PostForm{Text: post.Text}
		if post.GroupID != nil {
			form.GroupID = *post.GroupID
		}

		view := createPostView{
			baseView: baseView{User: user},
			Groups:   groups,
			Form:     form,
			IsEdit:   true,
			PostID:   postID,
		}
		render(w, http.StatusOK, "create_post", view)
		return
	}

	form := h.parsePostForm(r)

	if formErrors := h.validatePostForm(&form); formErrors != nil {
		view := createPostView{
			baseView: baseView{User: user},
			Groups:   groups,
			Form:     form,
			Errors:   formErrors,
			IsEdit:   true,
			PostID:   postID,
		}
		render(w, http.StatusOK, "create_post", view)
		return
	}

	imageURL, ok := h.uploadFormImage(w, r)
	if !ok {
		return
	}

	req := repository.UpdatePostRequest{
		PostID:   postID,
		AuthorID: user.UserID,
		Text:     form.Text,
		ImageURL: imageURL,
	}
	if form.GroupID != "" {
		req.GroupID = &form.GroupID
	}

	_, err = h.PostService.UpdatePost(r.Context(), req)
	if err != nil {
		if isNotFound(err) {
			NotFoundPage(w)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	http.Redirect(w, r, "/posts/"+postID+"/", http.StatusFound)
}
