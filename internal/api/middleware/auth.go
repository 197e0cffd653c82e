package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/EDU-SchedulingService/internal/api/handlers"
	"github.com/m04kA/EDU-SchedulingService/internal/domain"
)

const (
	// HeaderUserID заголовок с ID аутентифицированного пользователя
	// Проставляется API gateway после проверки токена
	HeaderUserID = "X-User-ID"

	// HeaderUserRole заголовок с ролью пользователя (client, provider, admin)
	HeaderUserRole = "X-User-Role"
)

const (
	msgMissingUserID = "отсутствует заголовок X-User-ID"
	msgInvalidUserID = "некорректный заголовок X-User-ID"
	msgInvalidRole   = "некорректный заголовок X-User-Role"
)

type contextKey string

const (
	userIDKey   contextKey = "userID"
	userRoleKey contextKey = "userRole"
)

// Auth извлекает пользователя из заголовков и кладет его в контекст запроса
// Роль по умолчанию client, если заголовок не передан
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get(HeaderUserID)
		if userIDStr == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgInvalidUserID)
			return
		}

		role := domain.RoleClient
		if roleStr := r.Header.Get(HeaderUserRole); roleStr != "" {
			role = domain.ActorRole(roleStr)
			if !role.IsValid() {
				handlers.RespondUnauthorized(w, msgInvalidRole)
				return
			}
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, userRoleKey, role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

// GetUserRole возвращает роль пользователя из контекста запроса
func GetUserRole(ctx context.Context) (domain.ActorRole, bool) {
	role, ok := ctx.Value(userRoleKey).(domain.ActorRole)
	return role, ok
}
