package rest

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// Определяем кастомный тип для ключа контекста, чтобы избежать коллизий.
type contextKey string

const (
	userIDKey   = contextKey("userID")
	userRoleKey = contextKey("userRole")
)

// AuthMiddleware - middleware для извлечения userID из заголовка.
// Аутентификацию выполняет API Gateway, сюда приходит уже проверенный идентификатор.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get("X-User-ID")
		if userIDStr == "" {
			WriteJSONError(w, http.StatusUnauthorized, "X-User-ID header is missing")
			return
		}

		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			WriteJSONError(w, http.StatusUnauthorized, "Invalid X-User-ID header format")
			return
		}

		// Добавляем userID в контекст запроса
		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, userRoleKey, r.Header.Get("X-User-Role"))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuthMiddleware кладет userID в контекст, если заголовок есть,
// но не требует его. Нужен для публичных форм (заявки по объявлениям).
func OptionalAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if userID, err := uuid.Parse(r.Header.Get("X-User-ID")); err == nil {
			ctx = context.WithValue(ctx, userIDKey, userID)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminMiddleware пропускает только пользователей с ролью admin.
// Вешается после AuthMiddleware.
func AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, _ := r.Context().Value(userRoleKey).(string)
		if role != "admin" {
			WriteJSONError(w, http.StatusForbidden, "Admin role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CronAuthMiddleware защищает внутренние эндпоинты планировщика общим секретом.
func CronAuthMiddleware(secret string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if secret == "" || subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
				WriteJSONError(w, http.StatusUnauthorized, "Invalid cron secret")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
