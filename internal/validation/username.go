package validation

import (
	"strings"

	"github.com/iudanet/gophchat/internal/apperr"
)

// NormalizeUsername обрезает пробелы по краям.
// Username сравнивается с учетом регистра, поэтому регистр не меняем.
func NormalizeUsername(username string) string {
	return strings.TrimSpace(username)
}

// ValidateUsername проверяет username для регистрации, возвращает
// нормализованное значение
func ValidateUsername(username string) (string, error) {
	username = NormalizeUsername(username)
	if username == "" {
		return "", apperr.ErrEmptyUsername
	}
	return username, nil
}

// ValidateCredentials проверяет пару username/password для входа
func ValidateCredentials(username, password string) (string, error) {
	username = NormalizeUsername(username)
	if username == "" || password == "" {
		return "", apperr.ErrEmptyCredentials
	}
	return username, nil
}

// ValidateContent проверяет содержимое сообщения: текст (после trim) или
// изображение должны быть непустыми, изображение - data URI
func ValidateContent(text, image string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" && image == "" {
		return "", apperr.ErrEmptyMessage
	}
	if image != "" && !IsDataURI(image) {
		return "", apperr.ErrInvalidImage
	}
	return text, nil
}

// ValidateAvatar проверяет, что аватар пустой или является data URI
func ValidateAvatar(avatar string) error {
	if avatar != "" && !IsDataURI(avatar) {
		return apperr.ErrInvalidAvatar
	}
	return nil
}
