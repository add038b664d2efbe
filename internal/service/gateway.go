package service

import (
	"context"

	"digital-sales-be/pkg/upstream"
)

// AgentGateway abstracts the external sales-agent backend so services can be
// tested against a fake. *upstream.Client satisfies it.
type AgentGateway interface {
	Health(ctx context.Context) (*upstream.HealthResponse, error)
	StartConversation(ctx context.Context, req *upstream.StartConversationRequest) (*upstream.StartConversationResponse, error)
	SendMessage(ctx context.Context, conversationID string, req *upstream.MessageRequest) (*upstream.MessageResponse, error)
}
