package shopify

import (
	"PlantyChat/entity"
	"PlantyChat/internal/config"
	"PlantyChat/internal/lib/sl"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"time"
)

// Service fetches the product catalog from the Shopify admin REST API.
type Service struct {
	Domain      string
	AccessToken string
	BaseURL     string
	Client      *http.Client
	Log         *slog.Logger
}

// nextLinkRe extracts the next page URL from an RFC 5988 Link header.
var nextLinkRe = regexp.MustCompile(`<([^>]+)>;\s*rel="next"`)

func NewService(conf *config.Config, logger *slog.Logger) *Service {
	return &Service{
		Domain:      conf.Shopify.StoreDomain,
		AccessToken: conf.Shopify.AccessToken,
		BaseURL: fmt.Sprintf("https://%s/admin/api/%s/products.json?limit=%d",
			conf.Shopify.StoreDomain, conf.Shopify.ApiVersion, conf.Shopify.PageLimit),
		Client: &http.Client{Timeout: 30 * time.Second},
		Log:    logger.With(sl.Module("shopify service")),
	}
}

func (s *Service) Configured() bool {
	return s.Domain != "" && s.AccessToken != ""
}

// FetchAllProducts walks the paginated product listing following rel="next"
// links until exhausted. A failed page terminates pagination and whatever
// was accumulated so far is returned; a partial catalog is acceptable.
func (s *Service) FetchAllProducts(ctx context.Context) ([]entity.Product, error) {
	if !s.Configured() {
		return nil, nil
	}

	var all []entity.Product
	url := s.BaseURL
	for url != "" {
		products, next, err := s.fetchPage(ctx, url)
		if err != nil {
			s.Log.With(
				slog.Int("accumulated", len(all)),
				sl.Err(err),
			).Warn("catalog fetch interrupted, continuing with partial catalog")
			return all, nil
		}
		all = append(all, products...)
		url = next
	}

	s.Log.With(
		slog.Int("products", len(all)),
	).Debug("catalog fetched")

	return all, nil
}

func (s *Service) fetchPage(ctx context.Context, url string) ([]entity.Product, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %v", err)
	}

	req.Header.Set("X-Shopify-Access-Token", s.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to send request: %v", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("request failed with status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read response body: %v", err)
	}

	page, err := ParsePage(body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to parse response: %v", err)
	}

	products := make([]entity.Product, 0, len(page.Products))
	for _, raw := range page.Products {
		products = append(products, s.normalize(raw))
	}

	next := ""
	if m := nextLinkRe.FindStringSubmatch(resp.Header.Get("Link")); m != nil {
		next = m[1]
	}

	return products, next, nil
}

func (s *Service) normalize(raw RawProduct) entity.Product {
	price := ""
	if len(raw.Variants) > 0 {
		price = raw.Variants[0].Price
	}
	return entity.Product{
		ID:          raw.ID,
		Title:       raw.Title,
		Description: raw.BodyHTML,
		Price:       price,
		URL:         fmt.Sprintf("https://%s/products/%s", s.Domain, raw.Handle),
	}
}
