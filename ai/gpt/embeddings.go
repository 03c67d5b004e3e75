package gpt

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// Embed returns the embedding vector for one piece of text.
func (a *Assistant) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := a.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.EmbeddingModel(a.embeddingModel),
	})
	if err != nil {
		return nil, fmt.Errorf("error creating embedding: %v", err)
	}

	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("no embedding data returned")
	}

	return resp.Data[0].Embedding, nil
}
