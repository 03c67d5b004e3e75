package shopify

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testService(baseURL string, client *http.Client) *Service {
	return &Service{
		Domain:      "test-store.myshopify.com",
		AccessToken: "shpat_test",
		BaseURL:     baseURL,
		Client:      client,
		Log:         discardLogger(),
	}
}

func productsJSON(items ...string) string {
	out := `{"products":[`
	for i, it := range items {
		if i > 0 {
			out += ","
		}
		out += it
	}
	return out + `]}`
}

func rawProduct(id int64, title string) string {
	return fmt.Sprintf(`{"id":%d,"title":%q,"body_html":"<p>desc</p>","handle":"handle-%d","variants":[{"price":"9.99"},{"price":"19.99"}]}`, id, title, id)
}

func TestFetchAllProductsSinglePage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Shopify-Access-Token"); got != "shpat_test" {
			t.Errorf("missing access token header, got %q", got)
		}
		// No Link header: this is the only page.
		fmt.Fprint(w, productsJSON(rawProduct(1, "Basil Plant"), rawProduct(2, "Rose Bush")))
	}))
	defer srv.Close()

	s := testService(srv.URL+"/products.json?limit=50", srv.Client())

	products, err := s.FetchAllProducts(context.Background())
	if err != nil {
		t.Fatalf("FetchAllProducts: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}

	p := products[0]
	if p.ID != 1 || p.Title != "Basil Plant" {
		t.Errorf("unexpected first product: %+v", p)
	}
	if p.Description != "<p>desc</p>" {
		t.Errorf("description should come from body_html, got %q", p.Description)
	}
	if p.Price != "9.99" {
		t.Errorf("price should come from the first variant, got %q", p.Price)
	}
	if p.URL != "https://test-store.myshopify.com/products/handle-1" {
		t.Errorf("unexpected product url %q", p.URL)
	}
}

func TestFetchAllProductsFollowsNextLinks(t *testing.T) {
	var srv *httptest.Server
	mux := http.NewServeMux()
	mux.HandleFunc("/products.json", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("page_info") {
		case "":
			w.Header().Set("Link", fmt.Sprintf(`<%s/products.json?page_info=p2>; rel="next"`, srv.URL))
			fmt.Fprint(w, productsJSON(rawProduct(1, "One")))
		case "p2":
			w.Header().Set("Link", fmt.Sprintf(`<%s/products.json?page_info=p1>; rel="previous", <%s/products.json?page_info=p3>; rel="next"`, srv.URL, srv.URL))
			fmt.Fprint(w, productsJSON(rawProduct(2, "Two")))
		case "p3":
			w.Header().Set("Link", fmt.Sprintf(`<%s/products.json?page_info=p2>; rel="previous"`, srv.URL))
			fmt.Fprint(w, productsJSON(rawProduct(3, "Three")))
		default:
			t.Errorf("unexpected page_info %q", r.URL.Query().Get("page_info"))
			w.WriteHeader(http.StatusNotFound)
		}
	})
	srv = httptest.NewServer(mux)
	defer srv.Close()

	s := testService(srv.URL+"/products.json?limit=1", srv.Client())

	products, err := s.FetchAllProducts(context.Background())
	if err != nil {
		t.Fatalf("FetchAllProducts: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("expected 3 products across 3 pages, got %d", len(products))
	}
	for i, want := range []string{"One", "Two", "Three"} {
		if products[i].Title != want {
			t.Errorf("position %d: expected %q, got %q", i, want, products[i].Title)
		}
	}
}

func TestFetchAllProductsPartialOnFailure(t *testing.T) {
	var srv *httptest.Server
	mux := http.NewServeMux()
	mux.HandleFunc("/products.json", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page_info") == "" {
			w.Header().Set("Link", fmt.Sprintf(`<%s/products.json?page_info=p2>; rel="next"`, srv.URL))
			fmt.Fprint(w, productsJSON(rawProduct(1, "One")))
			return
		}
		w.WriteHeader(http.StatusTooManyRequests)
	})
	srv = httptest.NewServer(mux)
	defer srv.Close()

	s := testService(srv.URL+"/products.json?limit=1", srv.Client())

	products, err := s.FetchAllProducts(context.Background())
	if err != nil {
		t.Fatalf("a failed page must not surface an error, got %v", err)
	}
	if len(products) != 1 || products[0].Title != "One" {
		t.Errorf("expected the first page only, got %+v", products)
	}
}

type countingTransport struct {
	calls int32
}

func (c *countingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	atomic.AddInt32(&c.calls, 1)
	return nil, fmt.Errorf("no network calls expected")
}

func TestFetchAllProductsUnconfigured(t *testing.T) {
	transport := &countingTransport{}
	s := &Service{
		Client: &http.Client{Transport: transport},
		Log:    discardLogger(),
	}

	if s.Configured() {
		t.Fatal("service without credentials must not report configured")
	}

	products, err := s.FetchAllProducts(context.Background())
	if err != nil {
		t.Fatalf("FetchAllProducts: %v", err)
	}
	if products != nil {
		t.Errorf("expected nil products, got %v", products)
	}
	if atomic.LoadInt32(&transport.calls) != 0 {
		t.Error("no network call may happen without credentials")
	}
}

func TestParsePageBadBody(t *testing.T) {
	if _, err := ParsePage([]byte("not json")); err == nil {
		t.Fatal("expected parse error")
	}
}
