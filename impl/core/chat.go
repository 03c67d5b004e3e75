package core

import (
	"PlantyChat/entity"
	"PlantyChat/internal/lib/sl"
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// ComposeReply runs the whole pipeline for one chat exchange: fetch the
// catalog, rank products against the message, compose the system prompt
// and ask the completion endpoint.
func (c *Core) ComposeReply(ctx context.Context, req entity.ChatRequest) (string, error) {
	if c.ass == nil {
		return "", fmt.Errorf("assistant not initialized")
	}

	logger := c.log.With(slog.String("exchange_id", uuid.NewString()))

	var products []entity.Product
	if c.catalog != nil && c.catalog.Configured() {
		var err error
		products, err = c.catalog.FetchAllProducts(ctx)
		if err != nil {
			// Degraded path: answer without products.
			logger.With(
				sl.Err(err),
			).Warn("catalog fetch failed, replying without products")
			products = nil
		}
	} else {
		logger.Warn("shopify credentials missing, replying without products")
	}

	var ranked []entity.ScoredProduct
	if len(products) > 0 {
		var err error
		ranked, err = c.ass.RankProducts(ctx, products, req.Message)
		if err != nil {
			return "", err
		}
	}

	systemPrompt := BuildSystemPrompt(c.assistantName, c.siteName, c.store, c.faq, ranked)

	reply, err := c.ass.ComposeResponse(ctx, systemPrompt, req.Conversation, req.Message)
	if err != nil {
		return "", err
	}

	logger.With(
		slog.Int("catalog_size", len(products)),
		slog.Int("ranked", len(ranked)),
		slog.Int("reply_length", len(reply)),
	).Debug("compose reply")

	return reply, nil
}
