package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/nutrigate/backend/internal/domain"
	"golang.org/x/time/rate"
)

// Client handles communication with the Open Food Facts API.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	userAgent   string
	rateLimiter *rate.Limiter
}

// NewClient creates a new Open Food Facts client. Open Food Facts asks
// clients to stay under 100 requests per minute on read endpoints, so
// the limiter allows ~1.6 requests/sec with a small burst.
func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:     baseURL,
		userAgent:   userAgent,
		rateLimiter: rate.NewLimiter(rate.Limit(1.6), 5),
	}
}

// get executes a single HTTP GET against the upstream and decodes the
// JSON body into out. A non-2xx status yields *domain.UpstreamError.
// There is no retry: one attempt per request.
func (c *Client) get(ctx context.Context, pathAndQuery string, out any) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter error: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+pathAndQuery, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUpstreamFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &domain.UpstreamError{StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// ProductByBarcode looks up a single product by barcode. The returned
// envelope's Status discriminates found (1) from not found; Product may
// be entirely absent in the latter case.
func (c *Client) ProductByBarcode(ctx context.Context, barcode string) (*domain.ProductLookup, error) {
	var lookup domain.ProductLookup
	path := fmt.Sprintf("/api/v0/product/%s.json", url.PathEscape(barcode))
	if err := c.get(ctx, path, &lookup); err != nil {
		return nil, err
	}
	return &lookup, nil
}

// SearchProducts performs a full-text search. The page size is passed
// upstream, so the returned list is already capped.
func (c *Client) SearchProducts(ctx context.Context, terms string, pageSize int) (*domain.ProductList, error) {
	params := url.Values{}
	params.Set("search_terms", terms)
	params.Set("json", "1")
	params.Set("page_size", fmt.Sprintf("%d", pageSize))

	var list domain.ProductList
	if err := c.get(ctx, "/cgi/search.pl?"+params.Encode(), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// ProductsByCategory lists products in a category. The category listing
// has no upstream page-size parameter; callers slice locally.
func (c *Client) ProductsByCategory(ctx context.Context, slug string) (*domain.ProductList, error) {
	var list domain.ProductList
	path := fmt.Sprintf("/category/%s.json", url.PathEscape(slug))
	if err := c.get(ctx, path, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// ProductsByBrand lists products of a brand. Same slicing contract as
// ProductsByCategory.
func (c *Client) ProductsByBrand(ctx context.Context, slug string) (*domain.ProductList, error) {
	var list domain.ProductList
	path := fmt.Sprintf("/brand/%s.json", url.PathEscape(slug))
	if err := c.get(ctx, path, &list); err != nil {
		return nil, err
	}
	return &list, nil
}
