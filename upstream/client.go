package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Norvela-Retail/norvela-ops-console/models"
)

// ErrNotFound reports a 404 from the upstream API.
var ErrNotFound = errors.New("upstream: not found")

// SortDescending is the fixed recency sort every scheduled list fetch uses.
var SortDescending = map[string]int{"created_at": -1}

// CredentialProvider supplies the bearer token attached to every upstream
// call. Injected so token storage stays out of the core.
type CredentialProvider interface {
	Token(ctx context.Context) (string, error)
}

// ListQuery is the paginated list-fetch request. Filter and Sort travel as
// JSON strings inside the filter/sort query parameters; page/limit are plain
// integers.
type ListQuery struct {
	Filter models.QueryPredicate
	Sort   map[string]int
	Page   int
	Limit  int
}

// Page is one page of list results. Items stay raw: the console relays them
// to the UI without interpreting entity shapes.
type Page struct {
	Items      []json.RawMessage `json:"items"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	Total      int               `json:"total"`
	TotalPages int               `json:"total_pages"`
}

// Client talks to the upstream catalog/order REST API.
type Client struct {
	baseURL    string
	creds      CredentialProvider
	httpClient *http.Client
}

func NewClient(baseURL string, creds CredentialProvider) *Client {
	return &Client{
		baseURL: baseURL,
		creds:   creds,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// List fetches one page of a resource with the compiled predicate.
func (c *Client) List(ctx context.Context, resource string, q ListQuery) (*Page, error) {
	filterJSON, err := json.Marshal(q.Filter)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal filter: %w", err)
	}
	sortJSON, err := json.Marshal(q.Sort)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sort: %w", err)
	}

	params := url.Values{}
	params.Set("filter", string(filterJSON))
	params.Set("sort", string(sortJSON))
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}

	reqURL := fmt.Sprintf("%s/%s?%s", c.baseURL, resource, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if err := c.authorize(ctx, req); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("list %s failed with status %d: %s", resource, resp.StatusCode, string(body))
	}

	var page Page
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &page, nil
}

// FetchAll retrieves a whole resource unfiltered; the owning view caches the
// result as its catalog snapshot.
func (c *Client) FetchAll(ctx context.Context, resource string, out any) error {
	reqURL := fmt.Sprintf("%s/%s", c.baseURL, resource)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if err := c.authorize(ctx, req); err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("fetch %s failed with status %d: %s", resource, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// GetOrder fetches one order for editing.
func (c *Client) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	reqURL := fmt.Sprintf("%s/orders/%s", c.baseURL, orderID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if err := c.authorize(ctx, req); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: order %s", ErrNotFound, orderID)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("get order failed with status %d: %s", resp.StatusCode, string(body))
	}

	var order models.Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &order, nil
}

// UpdateOrder submits the whole order. The payload type carries no created_at
// field; the upstream rejects it.
func (c *Client) UpdateOrder(ctx context.Context, orderID string, upd models.OrderUpdate) (*models.Order, error) {
	payload, err := json.Marshal(upd)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/orders/%s", c.baseURL, orderID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, reqURL, bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if err := c.authorize(ctx, req); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: order %s", ErrNotFound, orderID)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("update order failed with status %d: %s", resp.StatusCode, string(body))
	}

	var order models.Order
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &order, nil
}

func (c *Client) authorize(ctx context.Context, req *http.Request) error {
	if c.creds == nil {
		return nil
	}
	token, err := c.creds.Token(ctx)
	if err != nil {
		return fmt.Errorf("failed to obtain credential: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return nil
}
