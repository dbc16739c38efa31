package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/gophchat/pkg/api"
)

// Pinger проверяет доступность хранилища
type Pinger interface {
	Ping(ctx context.Context) error
}

// Counter возвращает текущий размер коллекции
type Counter func() int

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	logger   *slog.Logger
	backend  Pinger
	users    Counter
	messages Counter
	storage  string
	version  string
}

// NewHealthHandler создает новый handler для health check
func NewHealthHandler(logger *slog.Logger, backend Pinger, storage, version string, users, messages Counter) *HealthHandler {
	return &HealthHandler{
		logger:   logger,
		backend:  backend,
		storage:  storage,
		version:  version,
		users:    users,
		messages: messages,
	}
}

// Health обрабатывает GET /api/v1/health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	resp := api.HealthResponse{
		Status:   "ok",
		Version:  h.version,
		Storage:  h.storage,
		Users:    h.users(),
		Messages: h.messages(),
	}

	status := http.StatusOK
	if err := h.backend.Ping(ctx); err != nil {
		h.logger.ErrorContext(ctx, "storage health check failed", slog.Any("error", err))
		resp.Status = "unavailable"
		status = http.StatusServiceUnavailable
	}

	sendJSON(h.logger, w, resp, status)
}
