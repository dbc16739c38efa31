package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/iudanet/gophchat/internal/apperr"
	"github.com/iudanet/gophchat/internal/validation"
	"github.com/iudanet/gophchat/pkg/api"
)

// ActionHandler обслуживает протокол с одним endpoint:
// POST с полем action в JSON теле и GET с параметром action в query.
// Он делегирует работу AuthHandler и MessageHandler
type ActionHandler struct {
	logger   *slog.Logger
	auth     *AuthHandler
	messages *MessageHandler
}

// NewActionHandler создает action-роутер
func NewActionHandler(logger *slog.Logger, auth *AuthHandler, messages *MessageHandler) *ActionHandler {
	return &ActionHandler{
		logger:   logger,
		auth:     auth,
		messages: messages,
	}
}

// ServeHTTP обрабатывает /api/v1/action
func (h *ActionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleQuery(w, r)
	case http.MethodPost:
		h.handleCommand(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		sendJSON(h.logger, w, api.ErrorResponse{
			Error:   http.StatusText(http.StatusMethodNotAllowed),
			Message: "Method not allowed",
		}, http.StatusMethodNotAllowed)
	}
}

func (h *ActionHandler) handleCommand(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.ActionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode action request", slog.Any("error", err))
		sendError(ctx, h.logger, w, err)
		return
	}
	if err := validation.Struct(req); err != nil {
		h.logger.WarnContext(ctx, "invalid action request", slog.String("action", req.Action), slog.Any("error", err))
		sendError(ctx, h.logger, w, err)
		return
	}

	switch req.Action {
	case api.ActionRegister:
		h.auth.register(ctx, w, api.RegisterRequest{
			Username: req.Username,
			Password: req.Password,
			Avatar:   req.Avatar,
		})
	case api.ActionLogin:
		h.auth.login(ctx, w, api.LoginRequest{
			Username: req.Username,
			Password: req.Password,
		})
	case api.ActionSendMessage:
		author, err := h.auth.store.Verify(ctx, req.Token)
		if err != nil {
			sendError(ctx, h.logger, w, err)
			return
		}
		h.messages.send(ctx, w, author, api.SendMessageRequest{
			Message: req.Message,
			Image:   req.Image,
		})
	}
}

func (h *ActionHandler) handleQuery(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	switch action := query.Get("action"); action {
	case api.ActionGetMessages:
		h.messages.List(w, r)
	case api.ActionVerifyToken:
		h.auth.verify(r.Context(), w, query.Get("token"))
	default:
		err := fmt.Errorf("%w: unknown action %q", apperr.ErrValidation, action)
		sendError(r.Context(), h.logger, w, err)
	}
}
