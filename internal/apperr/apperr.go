// Package apperr содержит таксономию ошибок, общую для сервера и клиента.
//
// Каждая конкретная ошибка оборачивает один из четырёх видов (Validation,
// Conflict, Auth, Transient), поэтому errors.Is работает на обоих уровнях.
// Текст для пользователя формируется только на HTTP границе.
package apperr

import (
	"errors"
	"fmt"
)

// Kind sentinels
var (
	// ErrValidation - входные данные некорректны, повтор без изменений бесполезен
	ErrValidation = errors.New("validation error")

	// ErrConflict - ресурс уже существует
	ErrConflict = errors.New("conflict")

	// ErrAuth - неверные учетные данные или токен
	ErrAuth = errors.New("unauthorized")

	// ErrTransient - временная ошибка хранилища или сети, можно повторить
	ErrTransient = errors.New("transient error")
)

// Specific errors
var (
	ErrEmptyUsername      = fmt.Errorf("%w: username cannot be empty", ErrValidation)
	ErrEmptyCredentials   = fmt.Errorf("%w: username and password cannot be empty", ErrValidation)
	ErrEmptyMessage       = fmt.Errorf("%w: message or image is required", ErrValidation)
	ErrInvalidAvatar      = fmt.Errorf("%w: avatar must be a data URI", ErrValidation)
	ErrInvalidImage       = fmt.Errorf("%w: image must be a data URI", ErrValidation)
	ErrUsernameTaken      = fmt.Errorf("%w: username already exists", ErrConflict)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid username or password", ErrAuth)
	ErrInvalidToken       = fmt.Errorf("%w: invalid token", ErrAuth)
)

// Kind classifies an error by its sentinel.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindConflict
	KindAuth
	KindTransient
)

// String returns a short label, used for logs and metric labels.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindAuth:
		return "auth"
	case KindTransient:
		return "transient"
	default:
		return "unknown"
	}
}

// KindOf returns the kind of err. nil and unclassified errors are KindUnknown.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrAuth):
		return KindAuth
	case errors.Is(err, ErrTransient):
		return KindTransient
	default:
		return KindUnknown
	}
}

// transientError помечает ошибку ввода-вывода как временную,
// сохраняя исходную причину для errors.Is/As
type transientError struct {
	err error
	op  string
}

func (e *transientError) Error() string {
	return fmt.Sprintf("%s: %v", e.op, e.err)
}

func (e *transientError) Unwrap() []error {
	return []error{ErrTransient, e.err}
}

// Transient wraps err as a retryable failure of op. Returns nil for a nil err.
func Transient(op string, err error) error {
	if err == nil {
		return nil
	}
	return &transientError{op: op, err: err}
}

// Remote is an error reported by the server. The message is the server's
// user-facing text and kind is recovered from the HTTP status.
type Remote struct {
	kind    error
	Message string
	Status  int
}

// NewRemote builds a Remote error for the given kind sentinel.
func NewRemote(kind error, status int, message string) *Remote {
	return &Remote{kind: kind, Status: status, Message: message}
}

func (e *Remote) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server error (%d)", e.Status)
	}
	return e.Message
}

func (e *Remote) Unwrap() error {
	return e.kind
}
