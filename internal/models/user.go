package models

import "time"

// User представляет зарегистрированного пользователя чата
type User struct {
	CreatedAt    time.Time `json:"created_at"`    // время регистрации
	Username     string    `json:"username"`      // уникальный username (регистрозависимый)
	PasswordHash string    `json:"password_hash"` // bcrypt хеш пароля
	Avatar       string    `json:"avatar"`        // data URI или пустая строка
	Token        string    `json:"token"`         // единственный действующий bearer token
}

// Public returns a copy of u without credentials.
func (u User) Public() User {
	u.PasswordHash = ""
	u.Token = ""
	return u
}
