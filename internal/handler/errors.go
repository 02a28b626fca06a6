package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
)

// ErrorResponse - стандартный ответ с ошибкой для служебных эндпоинтов
type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// WriteError - универсальная функция для отправки ошибок в JSON
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// NotFoundPage - 404 для неизвестных slug/username/постов
func NotFoundPage(w http.ResponseWriter) {
	http.Error(w, "Страница не найдена", http.StatusNotFound)
}

// isNotFound - репозитории сообщают об отсутствии записи русским "не найден"
func isNotFound(err error) bool {
	return err != nil && strings.Contains(err.Error(), "не найден")
}

// redirectToLogin отправляет неавторизованного пользователя на вход,
// сохраняя исходный путь в next
func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/auth/login/?next="+url.QueryEscape(r.URL.Path), http.StatusFound)
}
