package gpt

import (
	"PlantyChat/entity"
	"context"
	"fmt"
	"log/slog"

	"github.com/sashabaranov/go-openai"
)

const fallbackReply = "Sorry, I don't know."

// ComposeResponse sends the composed conversation to the chat completion
// endpoint and returns the assistant's reply. A response without usable
// content yields a fixed fallback reply, never an error.
func (a *Assistant) ComposeResponse(ctx context.Context, systemPrompt string, conversation []entity.DialogMessage, userMsg string) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(conversation)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, m := range conversation {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: userMsg,
	})

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    a.chatModel,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("error creating chat completion: %v", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		a.log.With(
			slog.String("model", a.chatModel),
		).Warn("completion response missing content, using fallback reply")
		return fallbackReply, nil
	}

	return resp.Choices[0].Message.Content, nil
}
