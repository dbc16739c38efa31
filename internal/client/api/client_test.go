package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophchat/internal/apperr"
	"github.com/iudanet/gophchat/internal/models"
	"github.com/iudanet/gophchat/pkg/api"
)

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:8080/")

	assert.Equal(t, "http://localhost:8080", client.baseURL)
	assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)
}

func TestClient_Register(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/auth/register", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))

		var req api.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Username)
		assert.Equal(t, "pw", req.Password)

		writeJSON(t, w, http.StatusCreated, api.RegisterResponse{Success: true, Token: "tok", Username: "alice"})
	}))
	defer server.Close()

	resp, err := NewClient(server.URL).Register(context.Background(), api.RegisterRequest{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "tok", resp.Token)
}

func TestClient_ErrorKinds(t *testing.T) {
	tests := []struct {
		kind    error
		name    string
		message string
		status  int
	}{
		{name: "validation", status: http.StatusBadRequest, message: "Username cannot be empty", kind: apperr.ErrValidation},
		{name: "conflict", status: http.StatusConflict, message: "Username already exists", kind: apperr.ErrConflict},
		{name: "auth", status: http.StatusUnauthorized, message: "Invalid username or password", kind: apperr.ErrAuth},
		{name: "unavailable", status: http.StatusServiceUnavailable, message: "Service temporarily unavailable, please retry", kind: apperr.ErrTransient},
		{name: "rate limited", status: http.StatusTooManyRequests, message: "Too many requests, please try again later", kind: apperr.ErrTransient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, tt.status, api.ErrorResponse{Success: false, Message: tt.message})
			}))
			defer server.Close()

			_, err := NewClient(server.URL).Register(context.Background(), api.RegisterRequest{Username: "alice"})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)

			var remote *apperr.Remote
			require.True(t, errors.As(err, &remote))
			assert.Equal(t, tt.status, remote.Status)
			assert.Equal(t, tt.message, remote.Message)
		})
	}
}

func TestClient_NetworkErrorIsTransient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewClient(url).GetMessages(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrTransient)
	assert.Equal(t, apperr.KindTransient, apperr.KindOf(err))
}

func TestClient_Verify(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/auth/verify", r.URL.Path)
		if r.Header.Get("Authorization") != "Bearer good" {
			writeJSON(t, w, http.StatusUnauthorized, api.VerifyResponse{Success: false})
			return
		}
		writeJSON(t, w, http.StatusOK, api.VerifyResponse{Success: true, Username: "alice"})
	}))
	defer server.Close()
	client := NewClient(server.URL)

	resp, err := client.Verify(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, "alice", resp.Username)

	_, err = client.Verify(context.Background(), "stale")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrAuth)
}

func TestClient_SendMessage(t *testing.T) {
	want := models.Message{ID: "m1", Username: "alice", Message: "hi", Timestamp: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/messages", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var req api.SendMessageRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "hi", req.Message)
		assert.Empty(t, req.Token)

		writeJSON(t, w, http.StatusCreated, api.SendMessageResponse{Success: true, Message: want})
	}))
	defer server.Close()

	got, err := NewClient(server.URL).SendMessage(context.Background(), "tok", api.SendMessageRequest{Message: "hi"})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClient_GetMessages(t *testing.T) {
	fixed := time.UnixMilli(1700000000000)

	t.Run("sends cache buster", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "1700000000000", r.URL.Query().Get("t"))
			writeJSON(t, w, http.StatusOK, []models.Message{{ID: "1"}, {ID: "2"}})
		}))
		defer server.Close()

		client := NewClient(server.URL)
		client.now = func() time.Time { return fixed }

		msgs, err := client.GetMessages(context.Background())
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		assert.Equal(t, "2", msgs[1].ID)
	})

	t.Run("null body is empty slice", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("null"))
		}))
		defer server.Close()

		msgs, err := NewClient(server.URL).GetMessages(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, msgs)
		assert.Empty(t, msgs)
	})

	t.Run("malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("{oops"))
		}))
		defer server.Close()

		_, err := NewClient(server.URL).GetMessages(context.Background())
		require.Error(t, err)
		assert.Equal(t, apperr.KindUnknown, apperr.KindOf(err))
	})
}

func TestClient_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewClient(server.URL).GetMessages(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
