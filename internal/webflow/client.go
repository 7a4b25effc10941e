// Package webflow is a minimal client for the Webflow Data API v2, scoped to
// the items of a single collection.
package webflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.webflow.com/v2"
	defaultTimeout = 15 * time.Second
)

// APIError is a non-2xx response from the Webflow API. Status code and body
// are preserved verbatim so callers can classify and log the remote verdict.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("webflow: API error (%d): %s", e.StatusCode, e.Body)
}

// NewClient instantiates a Webflow collection client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Token == "" || cfg.CollectionID == "" {
		return nil, fmt.Errorf("webflow: token and collection id are required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{
		token:        cfg.Token,
		collectionID: cfg.CollectionID,
		baseURL:      baseURL,
		httpClient:   httpClient,
	}, nil
}

// ListItems fetches one page of collection items.
func (c *Client) ListItems(ctx context.Context, limit, offset int) (*ItemList, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))

	var out ItemList
	if err := c.do(ctx, http.MethodGet, c.itemsPath(), query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetItem fetches a single item by id.
func (c *Client) GetItem(ctx context.Context, itemID string) (*Item, error) {
	var out Item
	if err := c.do(ctx, http.MethodGet, c.itemPath(itemID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateItem creates an item. With live set it uses the live endpoint, which
// creates and publishes in one call; otherwise the item is created as a draft.
func (c *Client) CreateItem(ctx context.Context, fieldData map[string]any, live bool) (*Item, error) {
	path := c.itemsPath()
	if live {
		path += "/live"
	}
	body := itemRequest{IsArchived: false, IsDraft: !live, FieldData: fieldData}

	var out Item
	if err := c.do(ctx, http.MethodPost, path, nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateItem patches an item's field data. Draft/archived state is left
// untouched; publishing is a separate call.
func (c *Client) UpdateItem(ctx context.Context, itemID string, fieldData map[string]any) (*Item, error) {
	var out Item
	if err := c.do(ctx, http.MethodPatch, c.itemPath(itemID), nil, fieldPatch{FieldData: fieldData}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateItemLive patches an item's field data and publishes the change in the
// same call. The API rejects it when the item has no live copy to update.
func (c *Client) UpdateItemLive(ctx context.Context, itemID string, fieldData map[string]any) (*Item, error) {
	var out Item
	if err := c.do(ctx, http.MethodPatch, c.itemPath(itemID)+"/live", nil, fieldPatch{FieldData: fieldData}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PublishItem pushes the staged item live.
func (c *Client) PublishItem(ctx context.Context, itemID string) error {
	return c.do(ctx, http.MethodPost, c.itemsPath()+"/publish", nil, publishRequest{ItemIDs: []string{itemID}}, nil)
}

// UnpublishItem removes the live copy of an item; the staged item remains.
func (c *Client) UnpublishItem(ctx context.Context, itemID string) error {
	return c.do(ctx, http.MethodDelete, c.itemPath(itemID)+"/live", nil, nil, nil)
}

// DeleteItem removes an item from the collection.
func (c *Client) DeleteItem(ctx context.Context, itemID string) error {
	return c.do(ctx, http.MethodDelete, c.itemPath(itemID), nil, nil, nil)
}

func (c *Client) itemsPath() string {
	return "/collections/" + c.collectionID + "/items"
}

func (c *Client) itemPath(itemID string) string {
	return c.itemsPath() + "/" + itemID
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("webflow: encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("webflow: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("webflow: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("webflow: decode response: %w", err)
	}
	return nil
}
