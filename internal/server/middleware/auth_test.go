package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophchat/internal/apperr"
	"github.com/iudanet/gophchat/internal/models"
	"github.com/iudanet/gophchat/internal/server/handlers"
	"github.com/iudanet/gophchat/pkg/api"
)

type verifierFunc func(ctx context.Context, token string) (models.User, error)

func (f verifierFunc) Verify(ctx context.Context, token string) (models.User, error) {
	return f(ctx, token)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func staticVerifier(valid string) verifierFunc {
	return func(_ context.Context, token string) (models.User, error) {
		if token != valid {
			return models.User{}, apperr.ErrInvalidToken
		}
		return models.User{Username: "alice", Avatar: "data:image/png;base64,AA=="}, nil
	}
}

func TestAuthMiddleware_Success(t *testing.T) {
	var gotUser models.User
	var gotOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, gotOK = handlers.GetUser(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	handler := AuthMiddleware(discardLogger(), staticVerifier("tok"))(next)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/messages", nil)
	req.Header.Set("Authorization", "Bearer tok")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.True(t, gotOK)
	assert.Equal(t, "alice", gotUser.Username)
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	tests := []struct {
		verifier   verifierFunc
		name       string
		header     string
		wantMsg    string
		wantStatus int
	}{
		{name: "missing header", verifier: staticVerifier("tok"), wantStatus: http.StatusUnauthorized, wantMsg: "Unauthorized"},
		{name: "wrong scheme", header: "Basic tok", verifier: staticVerifier("tok"), wantStatus: http.StatusUnauthorized, wantMsg: "Unauthorized"},
		{name: "rotated token", header: "Bearer old", verifier: staticVerifier("tok"), wantStatus: http.StatusUnauthorized, wantMsg: "Unauthorized"},
		{
			name:   "storage unavailable",
			header: "Bearer tok",
			verifier: func(context.Context, string) (models.User, error) {
				return models.User{}, apperr.Transient("load users", errors.New("redis down"))
			},
			wantStatus: http.StatusServiceUnavailable,
			wantMsg:    "Service temporarily unavailable, please retry",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })
			handler := AuthMiddleware(discardLogger(), tt.verifier)(next)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/messages", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.False(t, called, "next handler must not be called")
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var resp api.ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantMsg, resp.Message)
		})
	}
}
