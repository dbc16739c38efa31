package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/iudanet/gophchat/internal/apperr"
	"github.com/iudanet/gophchat/internal/models"
	"github.com/iudanet/gophchat/pkg/api"
)

//go:generate moq -out message_log_mock_test.go . MessageLog

// MessageLog определяет операции лога сообщений
type MessageLog interface {
	Append(ctx context.Context, author models.User, text, image string) (models.Message, error)
	List(ctx context.Context) []models.Message
}

// MessageHandler обрабатывает запросы к логу сообщений
type MessageHandler struct {
	logger *slog.Logger
	log    MessageLog
}

// NewMessageHandler создает новый handler сообщений
func NewMessageHandler(logger *slog.Logger, log MessageLog) *MessageHandler {
	return &MessageHandler{
		logger: logger,
		log:    log,
	}
}

// Send обрабатывает POST /api/v1/messages
// Автор берется из контекста, его кладет AuthMiddleware
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	author, ok := GetUser(ctx)
	if !ok {
		sendError(ctx, h.logger, w, apperr.ErrInvalidToken)
		return
	}

	var req api.SendMessageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode message request", slog.Any("error", err))
		sendError(ctx, h.logger, w, err)
		return
	}

	h.send(ctx, w, author, req)
}

func (h *MessageHandler) send(ctx context.Context, w http.ResponseWriter, author models.User, req api.SendMessageRequest) {
	msg, err := h.log.Append(ctx, author, req.Message, req.Image)
	if err != nil {
		sendError(ctx, h.logger, w, err)
		return
	}

	sendJSON(h.logger, w, api.SendMessageResponse{Success: true, Message: msg}, http.StatusCreated)
}

// List обрабатывает GET /api/v1/messages
// Возвращает весь лог массивом, без обертки
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	sendJSON(h.logger, w, h.log.List(r.Context()), http.StatusOK)
}
