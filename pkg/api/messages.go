package api

import "github.com/iudanet/gophchat/internal/models"

// Action names of the single-endpoint protocol
const (
	ActionRegister    = "register"
	ActionLogin       = "login"
	ActionSendMessage = "send_message"
	ActionGetMessages = "get_messages"
	ActionVerifyToken = "verify_token"
)

// SendMessageRequest представляет запрос на отправку сообщения.
// Token передается в теле только в action-протоколе, REST маршрут берет его
// из заголовка Authorization
type SendMessageRequest struct {
	Token   string `json:"token,omitempty"`
	Message string `json:"message"`
	Image   string `json:"image,omitempty"`
}

// SendMessageResponse содержит сохраненное сообщение
type SendMessageResponse struct {
	Message models.Message `json:"message"`
	Success bool           `json:"success"`
}

// ActionRequest is the body of POST /api/v1/action. Fields not used by the
// action are ignored.
type ActionRequest struct {
	Action   string `json:"action" validate:"required,oneof=register login send_message"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
	Token    string `json:"token,omitempty"`
	Message  string `json:"message,omitempty"`
	Image    string `json:"image,omitempty"`
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version,omitempty"`
	Storage  string `json:"storage,omitempty"`
	Users    int    `json:"users"`
	Messages int    `json:"messages"`
}
