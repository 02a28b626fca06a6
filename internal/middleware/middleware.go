package middleware

import (
	"context"
	"log"
	"net/http"
	"yatube/internal/service"
)

type Middleware func(http.Handler) http.Handler

const SessionCookieName = "session"

// AuthMiddleware читает сессионную куку и кладёт пользователя в контекст.
// Запрос без валидной сессии проходит дальше анонимным - решение о редиректе
// на логин принимает обработчик закрытого маршрута.
func AuthMiddleware(authService service.AuthService) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			user, err := authService.GetUserFromToken(cookie.Value)
			if err != nil {
				// просроченная или битая сессия - считаем запрос анонимным
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			ctx = context.WithValue(ctx, "userID", user.UserID)
			ctx = context.WithValue(ctx, "username", user.Username)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("Method: %s, URL: %s", r.Method, r.RequestURI)
		next.ServeHTTP(w, r)
	})
}

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
