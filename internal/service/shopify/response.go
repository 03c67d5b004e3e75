package shopify

import "encoding/json"

type PageResponse struct {
	Products []RawProduct `json:"products"`
}

// RawProduct is the subset of the admin API product record the proxy needs.
type RawProduct struct {
	ID       int64     `json:"id"`
	Title    string    `json:"title"`
	BodyHTML string    `json:"body_html"`
	Handle   string    `json:"handle"`
	Variants []Variant `json:"variants"`
}

type Variant struct {
	Price string `json:"price"`
}

func ParsePage(body []byte) (*PageResponse, error) {
	var page PageResponse
	err := json.Unmarshal(body, &page)
	if err != nil {
		return nil, err
	}
	return &page, nil
}
