package gpt

import (
	"PlantyChat/entity"
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"
)

// RankProducts embeds every product and the query, scores each product by
// cosine similarity to the query and keeps the top-K. Embedding calls run
// concurrently; the first failure aborts the whole ranking.
func (a *Assistant) RankProducts(ctx context.Context, products []entity.Product, query string) ([]entity.ScoredProduct, error) {
	if len(products) == 0 {
		return nil, nil
	}

	scored := make([]entity.ScoredProduct, len(products))
	var queryEmbedding []float32

	g, gCtx := errgroup.WithContext(ctx)
	for i, p := range products {
		i, p := i, p // per-iteration copies; required while the go directive is below 1.22
		g.Go(func() error {
			embedding, err := a.Embed(gCtx, p.Title+" "+p.Description)
			if err != nil {
				return fmt.Errorf("embedding product %d: %w", p.ID, err)
			}
			scored[i] = entity.ScoredProduct{Product: p, Embedding: embedding}
			return nil
		})
	}
	g.Go(func() error {
		embedding, err := a.Embed(gCtx, query)
		if err != nil {
			return fmt.Errorf("embedding query: %w", err)
		}
		queryEmbedding = embedding
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := range scored {
		scored[i].Score = cosineSimilarity(scored[i].Embedding, queryEmbedding)
	}

	// Stable sort keeps catalog order for equal scores.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > a.topK {
		scored = scored[:a.topK]
	}

	a.log.With(
		slog.Int("products", len(products)),
		slog.Int("ranked", len(scored)),
	).Debug("products ranked")

	return scored, nil
}

// cosineSimilarity returns 0 for zero-magnitude vectors so scores stay
// comparable in the sort.
func cosineSimilarity(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, magA, magB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		magA += float64(a[i]) * float64(a[i])
		magB += float64(b[i]) * float64(b[i])
	}

	if magA == 0 || magB == 0 {
		return 0
	}

	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}
