package api

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Username string `json:"username"`         // username, обрезается сервером
	Password string `json:"password"`         // пароль в открытом виде (только по TLS)
	Avatar   string `json:"avatar,omitempty"` // data URI аватара
}

// RegisterResponse представляет ответ на успешную регистрацию
type RegisterResponse struct {
	Token    string `json:"token"`    // bearer token
	Username string `json:"username"` // нормализованный username
	Success  bool   `json:"success"`
}

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse представляет ответ с новым токеном
type LoginResponse struct {
	Token    string `json:"token"` // новый токен, предыдущий больше не действует
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
	Success  bool   `json:"success"`
}

// VerifyResponse представляет результат проверки токена
type VerifyResponse struct {
	Username string `json:"username,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
	Success  bool   `json:"success"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error,omitempty"`   // HTTP status text
	Message string `json:"message,omitempty"` // текст для пользователя
	Success bool   `json:"success"`
}
