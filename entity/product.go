package entity

// Product is the normalized view of one catalog entry. It lives only for
// the duration of a single request.
type Product struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
	URL         string `json:"url"`
}

// ScoredProduct carries a product together with its embedding and the
// cosine similarity to the user query.
type ScoredProduct struct {
	Product
	Embedding []float32 `json:"-"`
	Score     float64   `json:"score"`
}
