package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"salesreport/internal"
	"salesreport/internal/config"
)

// Client fetches product metadata from the remote catalog service.
type Client struct {
	cfg        config.Config
	httpClient *http.Client
}

type productsPayload struct {
	Products []map[string]any `json:"products"`
	Total    *int             `json:"total"`
}

func NewClient(cfg config.Config) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: time.Duration(cfg.CatalogTimeoutMs) * time.Millisecond},
	}
}

// FetchProducts performs a single request for up to cfg.CatalogLimit products.
// Records with a missing or unparseable id are skipped.
func (c *Client) FetchProducts(ctx context.Context) ([]internal.ProductRecord, error) {
	u, err := url.Parse(strings.TrimRight(c.cfg.CatalogBaseURL, "/") + "/products")
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("limit", strconv.Itoa(c.cfg.CatalogLimit))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	body, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return nil, readErr
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("catalog api error: status=%d body=%s", resp.StatusCode, string(body))
	}

	var payload productsPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}

	out := make([]internal.ProductRecord, 0, len(payload.Products))
	for _, raw := range payload.Products {
		product, err := toProductRecord(raw)
		if err != nil {
			continue
		}
		out = append(out, product)
	}
	return out, nil
}

// FetchProductsOrEmpty is the total-failure-tolerant variant: any transport or
// decode failure collapses to an empty list so the pipeline can proceed with
// zero enrichment matches.
func (c *Client) FetchProductsOrEmpty(ctx context.Context, log zerolog.Logger) []internal.ProductRecord {
	products, err := c.FetchProducts(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("catalog fetch failed, continuing without enrichment")
		return nil
	}
	log.Info().Int("products", len(products)).Msg("catalog fetch complete")
	return products
}

func toProductRecord(raw map[string]any) (internal.ProductRecord, error) {
	id, ok := toInt(raw["id"])
	if !ok {
		return internal.ProductRecord{}, errors.New("missing id")
	}

	return internal.ProductRecord{
		ID:       id,
		Title:    toString(raw["title"]),
		Category: toString(raw["category"]),
		Brand:    toString(raw["brand"]),
		Price:    toFloat(raw["price"]),
		Rating:   toFloat(raw["rating"]),
	}, nil
}

func toInt(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case float64:
		return int(t), true
	case json.Number:
		i, err := t.Int64()
		return int(i), err == nil
	default:
		return 0, false
	}
}

func toFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return f
		}
	}
	return 0
}

func toString(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}
