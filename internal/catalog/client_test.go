package catalog

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"salesreport/internal/config"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg, err := config.Load()
	if err != nil {
		t.Fatal(err)
	}
	cfg.CatalogBaseURL = "https://example.test"
	cfg.CatalogLimit = 100
	return cfg
}

func TestFetchProducts(t *testing.T) {
	client := NewClient(testConfig(t))
	client.httpClient = &http.Client{
		Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			if r.URL.Path != "/products" {
				t.Fatalf("unexpected path %s", r.URL.Path)
			}
			if r.URL.Query().Get("limit") != "100" {
				t.Fatalf("unexpected limit %s", r.URL.Query().Get("limit"))
			}
			body := `{"products":[
				{"id":1,"title":"iPhone 9","category":"smartphones","brand":"Apple","price":549,"rating":4.69},
				{"title":"no id, skipped"},
				{"id":2,"title":"Laptop","category":"laptops","brand":"Dell","price":999.5,"rating":4.2}
			],"total":3}`
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(strings.NewReader(body)),
				Header:     make(http.Header),
			}, nil
		}),
	}

	products, err := client.FetchProducts(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(products) != 2 {
		t.Fatalf("len=%d", len(products))
	}
	if products[0].ID != 1 || products[0].Category != "smartphones" || products[0].Rating != 4.69 {
		t.Fatalf("product0=%+v", products[0])
	}
	if products[1].Price != 999.5 {
		t.Fatalf("product1=%+v", products[1])
	}
}

func TestFetchProductsHTTPError(t *testing.T) {
	client := NewClient(testConfig(t))
	client.httpClient = &http.Client{
		Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusInternalServerError,
				Body:       io.NopCloser(strings.NewReader(`boom`)),
				Header:     make(http.Header),
			}, nil
		}),
	}

	if _, err := client.FetchProducts(context.Background()); err == nil {
		t.Fatal("expected error on 500")
	}
}

func TestFetchProductsOrEmptyDegrades(t *testing.T) {
	client := NewClient(testConfig(t))
	client.httpClient = &http.Client{
		Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			return nil, io.ErrUnexpectedEOF
		}),
	}

	products := client.FetchProductsOrEmpty(context.Background(), zerolog.Nop())
	if len(products) != 0 {
		t.Fatalf("len=%d, want empty on failure", len(products))
	}
}
