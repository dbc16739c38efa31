package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/iudanet/gophchat/internal/apperr"
	"github.com/iudanet/gophchat/internal/models"
	"github.com/iudanet/gophchat/pkg/api"
)

// DefaultTimeout ограничивает каждый запрос к серверу
const DefaultTimeout = 10 * time.Second

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	now        func() time.Time
	baseURL    string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Authorization не переносится через редирект автоматически
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/register", "", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя, сервер выдает новый токен
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.LoginResponse, error) {
	var resp api.LoginResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", "", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Verify проверяет токен и возвращает его владельца
func (c *Client) Verify(ctx context.Context, token string) (*api.VerifyResponse, error) {
	var resp api.VerifyResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/auth/verify", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("verify request failed: %w", err)
	}
	return &resp, nil
}

// SendMessage отправляет сообщение от имени владельца токена
func (c *Client) SendMessage(ctx context.Context, token string, req api.SendMessageRequest) (models.Message, error) {
	var resp api.SendMessageResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/messages", token, req, &resp); err != nil {
		return models.Message{}, fmt.Errorf("send message request failed: %w", err)
	}
	return resp.Message, nil
}

// GetMessages загружает весь лог сообщений.
// Параметр t защищает от кеширующих прокси
func (c *Client) GetMessages(ctx context.Context) ([]models.Message, error) {
	path := "/api/v1/messages?" + url.Values{
		"t": {strconv.FormatInt(c.now().UnixMilli(), 10)},
	}.Encode()

	var msgs []models.Message
	if err := c.doRequest(ctx, http.MethodGet, path, "", nil, &msgs); err != nil {
		return nil, fmt.Errorf("get messages request failed: %w", err)
	}
	if msgs == nil {
		msgs = []models.Message{}
	}
	return msgs, nil
}

// doRequest выполняет HTTP запрос
// Ошибки сети и 5xx возвращаются как apperr.ErrTransient, остальные статусы как *apperr.Remote
func (c *Client) doRequest(ctx context.Context, method, path, token string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperr.Transient("request", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperr.Transient("read response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return remoteError(resp.StatusCode, respBody)
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// remoteError восстанавливает вид ошибки по HTTP статусу
func remoteError(status int, body []byte) error {
	var errResp api.ErrorResponse
	_ = json.Unmarshal(body, &errResp)

	var kind error
	switch {
	case status == http.StatusBadRequest, status == http.StatusRequestEntityTooLarge:
		kind = apperr.ErrValidation
	case status == http.StatusConflict:
		kind = apperr.ErrConflict
	case status == http.StatusUnauthorized:
		kind = apperr.ErrAuth
	case status == http.StatusTooManyRequests, status >= http.StatusInternalServerError:
		kind = apperr.ErrTransient
	default:
		kind = errors.New(http.StatusText(status))
	}
	return apperr.NewRemote(kind, status, errResp.Message)
}
