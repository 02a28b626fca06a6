package handlers

import (
	"net/http"
	"strings"
	"time"

	"yatube/internal/middleware"
	"yatube/internal/repository"
)

type authView struct {
	baseView
	Error string
	Next  string
}

// LoginForm - форма входа
type LoginForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// SignupForm - форма регистрации
type SignupForm struct {
	Username  string `validate:"required,min=3,max=150"`
	FirstName string
	LastName  string
	Password  string `validate:"required,min=6"`
}

func (h *Handlers) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.Cfg.SessionDuration),
		HttpOnly: true,
	})
}

// safeNext не даёт использовать next для редиректа на чужой хост.
// Двойной слэш в начале браузеры трактуют как protocol-relative ссылку,
// поэтому он тоже отбрасывается.
func safeNext(next string) string {
	if next == "" || next[0] != '/' || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}

// Login - вход; после успеха возвращает на страницу из next
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	next := r.URL.Query().Get("next")

	if r.Method == http.MethodGet {
		view := authView{
			baseView: baseView{User: currentUser(r)},
			Next:     next,
		}
		render(w, http.StatusOK, "login", view)
		return
	}

	r.ParseForm()
	form := LoginForm{
		Username: r.FormValue("username"),
		Password: r.FormValue("password"),
	}
	if r.FormValue("next") != "" {
		next = r.FormValue("next")
	}

	if err := h.Validate.Struct(form); err != nil {
		view := authView{
			Error: "Укажите имя пользователя и пароль",
			Next:  next,
		}
		render(w, http.StatusOK, "login", view)
		return
	}

	_, token, err := h.AuthService.Login(r.Context(), form.Username, form.Password)
	if err != nil {
		view := authView{
			Error: "Неверное имя пользователя или пароль",
			Next:  next,
		}
		render(w, http.StatusOK, "login", view)
		return
	}

	h.setSessionCookie(w, token)
	http.Redirect(w, r, safeNext(next), http.StatusFound)
}

// Signup - регистрация с автоматическим входом
func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		view := authView{baseView: baseView{User: currentUser(r)}}
		render(w, http.StatusOK, "signup", view)
		return
	}

	r.ParseForm()
	form := SignupForm{
		Username:  r.FormValue("username"),
		FirstName: r.FormValue("first_name"),
		LastName:  r.FormValue("last_name"),
		Password:  r.FormValue("password"),
	}

	if err := h.Validate.Struct(form); err != nil {
		view := authView{Error: "Проверьте имя пользователя (от 3 символов) и пароль (от 6 символов)"}
		render(w, http.StatusOK, "signup", view)
		return
	}

	req := repository.CreateUserRequest{
		Username:  form.Username,
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Password:  form.Password,
	}

	user, err := h.AuthService.Register(r.Context(), req)
	if err != nil {
		view := authView{Error: err.Error()}
		render(w, http.StatusOK, "signup", view)
		return
	}

	_, token, err := h.AuthService.Login(r.Context(), user.Username, form.Password)
	if err != nil {
		http.Redirect(w, r, "/auth/login/", http.StatusFound)
		return
	}

	h.setSessionCookie(w, token)
	http.Redirect(w, r, "/", http.StatusFound)
}

// Logout сбрасывает сессионную куку
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	http.Redirect(w, r, "/", http.StatusFound)
}
