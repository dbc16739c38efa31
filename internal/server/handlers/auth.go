package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/iudanet/gophchat/internal/models"
	"github.com/iudanet/gophchat/internal/server/credentials"
	"github.com/iudanet/gophchat/pkg/api"
)

//go:generate moq -out credential_store_mock_test.go . CredentialStore

// CredentialStore определяет операции хранилища учетных записей
type CredentialStore interface {
	Register(ctx context.Context, username, password, avatar string) (credentials.RegisterResult, error)
	Login(ctx context.Context, username, password string) (credentials.LoginResult, error)
	Verify(ctx context.Context, token string) (models.User, error)
}

// AuthHandler обрабатывает запросы авторизации
type AuthHandler struct {
	logger *slog.Logger
	store  CredentialStore
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, store CredentialStore) *AuthHandler {
	return &AuthHandler{
		logger: logger,
		store:  store,
	}
}

// Register обрабатывает POST /api/v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req api.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "failed to decode register request", slog.Any("error", err))
		sendError(r.Context(), h.logger, w, err)
		return
	}
	h.register(r.Context(), w, req)
}

func (h *AuthHandler) register(ctx context.Context, w http.ResponseWriter, req api.RegisterRequest) {
	res, err := h.store.Register(ctx, req.Username, req.Password, req.Avatar)
	if err != nil {
		sendError(ctx, h.logger, w, err)
		return
	}

	sendJSON(h.logger, w, api.RegisterResponse{
		Success:  true,
		Token:    res.Token,
		Username: res.Username,
	}, http.StatusCreated)
}

// Login обрабатывает POST /api/v1/auth/login
// Каждый успешный вход выдает новый токен, старый перестает действовать
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req api.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "failed to decode login request", slog.Any("error", err))
		sendError(r.Context(), h.logger, w, err)
		return
	}
	h.login(r.Context(), w, req)
}

func (h *AuthHandler) login(ctx context.Context, w http.ResponseWriter, req api.LoginRequest) {
	res, err := h.store.Login(ctx, req.Username, req.Password)
	if err != nil {
		sendError(ctx, h.logger, w, err)
		return
	}

	sendJSON(h.logger, w, api.LoginResponse{
		Success:  true,
		Token:    res.Token,
		Username: res.Username,
		Avatar:   res.Avatar,
	}, http.StatusOK)
}

// Verify обрабатывает GET /api/v1/auth/verify
// Токен берется из Authorization: Bearer, либо из query параметра token
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	token, ok := BearerToken(r)
	if !ok {
		token = r.URL.Query().Get("token")
	}
	h.verify(r.Context(), w, token)
}

func (h *AuthHandler) verify(ctx context.Context, w http.ResponseWriter, token string) {
	user, err := h.store.Verify(ctx, token)
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			h.logger.ErrorContext(ctx, "token verification failed", slog.Any("error", err))
		}
		// неуспешная проверка отвечает только флагом success
		sendJSON(h.logger, w, api.VerifyResponse{Success: false}, status)
		return
	}

	sendJSON(h.logger, w, api.VerifyResponse{
		Success:  true,
		Username: user.Username,
		Avatar:   user.Avatar,
	}, http.StatusOK)
}
