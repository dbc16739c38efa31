package sync

import (
	"context"

	"github.com/iudanet/gophchat/internal/models"
	"github.com/iudanet/gophchat/pkg/api"
)

//go:generate moq -out messages_api_mock_test.go . MessagesAPI

// MessagesAPI операции сервера, которые нужны движку синхронизации
type MessagesAPI interface {
	GetMessages(ctx context.Context) ([]models.Message, error)
	SendMessage(ctx context.Context, token string, req api.SendMessageRequest) (models.Message, error)
}
