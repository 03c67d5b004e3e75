package gpt

import (
	"PlantyChat/internal/config"
	"PlantyChat/internal/lib/sl"
	"log/slog"

	"github.com/sashabaranov/go-openai"
)

const defaultTopK = 5

// Assistant talks to the OpenAI API: embeddings for product relevance and
// chat completions for the reply itself.
type Assistant struct {
	client         *openai.Client
	chatModel      string
	embeddingModel string
	topK           int
	log            *slog.Logger
}

func NewAssistant(conf *config.Config, logger *slog.Logger) *Assistant {
	cfg := openai.DefaultConfig(conf.OpenAI.ApiKey)
	if conf.OpenAI.BaseURL != "" {
		cfg.BaseURL = conf.OpenAI.BaseURL
	}

	topK := conf.OpenAI.TopK
	if topK <= 0 {
		topK = defaultTopK
	}

	return &Assistant{
		client:         openai.NewClientWithConfig(cfg),
		chatModel:      conf.OpenAI.ChatModel,
		embeddingModel: conf.OpenAI.EmbeddingModel,
		topK:           topK,
		log:            logger.With(sl.Module("assistant")),
	}
}
