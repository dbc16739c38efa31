package auth

import (
	"context"

	"github.com/iudanet/gophchat/pkg/api"
)

//go:generate moq -out auth_api_mock_test.go . AuthAPI

// AuthAPI операции сервера, которые нужны сервису авторизации
type AuthAPI interface {
	Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error)
	Login(ctx context.Context, req api.LoginRequest) (*api.LoginResponse, error)
	Verify(ctx context.Context, token string) (*api.VerifyResponse, error)
}
