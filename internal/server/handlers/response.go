package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/gophchat/internal/apperr"
	"github.com/iudanet/gophchat/internal/models"
	"github.com/iudanet/gophchat/pkg/api"
)

// MaxBodyBytes ограничивает тело запроса: изображения приходят как data URI
const MaxBodyBytes = 8 << 20

// contextKey тип для ключей контекста
type contextKey string

// UserKey ключ для хранения аутентифицированного пользователя в контексте
const UserKey contextKey = "user"

// WithUser returns a copy of ctx carrying user.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, UserKey, user)
}

// GetUser извлекает пользователя из контекста запроса
func GetUser(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserKey).(models.User)
	return user, ok
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	scheme, token, ok := strings.Cut(authHeader, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// errInvalidBody is returned by decodeJSON for malformed bodies.
var errInvalidBody = fmt.Errorf("%w: invalid request body", apperr.ErrValidation)

// decodeJSON читает JSON тело запроса с ограничением размера
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return errBodyTooLarge
		}
		return errInvalidBody
	}
	return nil
}

var errBodyTooLarge = errors.New("request body too large")

// statusFor maps an error kind to an HTTP status
func statusFor(err error) int {
	if errors.Is(err, errBodyTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindConflict:
		return http.StatusConflict
	case apperr.KindAuth:
		return http.StatusUnauthorized
	case apperr.KindTransient:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// userMessage возвращает текст ошибки для клиента.
// Внутренние детали (пути, причины ввода-вывода) наружу не попадают
func userMessage(err error) string {
	switch {
	case errors.Is(err, apperr.ErrEmptyUsername):
		return "Username cannot be empty"
	case errors.Is(err, apperr.ErrEmptyCredentials):
		return "Username and password cannot be empty"
	case errors.Is(err, apperr.ErrUsernameTaken):
		return "Username already exists"
	case errors.Is(err, apperr.ErrInvalidCredentials):
		return "Invalid username or password"
	case errors.Is(err, apperr.ErrInvalidToken), errors.Is(err, apperr.ErrAuth):
		return "Unauthorized"
	case errors.Is(err, apperr.ErrEmptyMessage):
		return "Message or image is required"
	case errors.Is(err, apperr.ErrInvalidAvatar):
		return "Avatar must be a data URI"
	case errors.Is(err, apperr.ErrInvalidImage):
		return "Image must be a data URI"
	case errors.Is(err, errInvalidBody):
		return "Invalid request body"
	case errors.Is(err, errBodyTooLarge):
		return "Request body too large"
	case errors.Is(err, apperr.ErrValidation):
		return strings.TrimPrefix(err.Error(), apperr.ErrValidation.Error()+": ")
	case errors.Is(err, apperr.ErrTransient):
		return "Service temporarily unavailable, please retry"
	default:
		return "Internal server error"
	}
}

// sendJSON отправляет JSON ответ
func sendJSON(logger *slog.Logger, w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой, статус выбирается по виду ошибки
func sendError(ctx context.Context, logger *slog.Logger, w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.ErrorContext(ctx, "request failed", slog.Any("error", err))
	}
	resp := api.ErrorResponse{
		Success: false,
		Error:   http.StatusText(status),
		Message: userMessage(err),
	}
	sendJSON(logger, w, resp, status)
}
