package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/iudanet/gophchat/internal/apperr"
	"github.com/iudanet/gophchat/internal/models"
	"github.com/iudanet/gophchat/internal/server/handlers"
)

// TokenVerifier разрешает токен сессии в пользователя
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (models.User, error)
}

// AuthMiddleware создает middleware для проверки токена сессии.
// Токен берется из заголовка Authorization: Bearer, пользователь кладется в контекст
func AuthMiddleware(logger *slog.Logger, verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := handlers.BearerToken(r)
			if !ok {
				logger.WarnContext(r.Context(), "missing or malformed Authorization header", "path", r.URL.Path)
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			user, err := verifier.Verify(r.Context(), token)
			if err != nil {
				if apperr.KindOf(err) == apperr.KindTransient {
					logger.ErrorContext(r.Context(), "token verification failed", "error", err)
					writeError(w, http.StatusServiceUnavailable, "Service temporarily unavailable, please retry")
					return
				}
				logger.WarnContext(r.Context(), "invalid session token", "path", r.URL.Path)
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			logger.DebugContext(r.Context(), "user authenticated", "username", user.Username)

			next.ServeHTTP(w, r.WithContext(handlers.WithUser(r.Context(), user)))
		})
	}
}
