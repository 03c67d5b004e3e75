package chat

import (
	"PlantyChat/entity"
	"context"
)

type Core interface {
	AssistantReady() bool
	ComposeReply(ctx context.Context, req entity.ChatRequest) (string, error)
}
