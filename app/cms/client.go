package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lysyi3m/slug-sync/app/content"
	"github.com/lysyi3m/slug-sync/app/seo"
)

const sitemapsPath = "/sitemaps"

var _ seo.Poster = (*Client)(nil)

// Client talks to the CMS REST API (Strapi v3 collection endpoints).
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a client for baseURL. A zero timeout leaves requests
// unbounded.
func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  userAgent,
	}
}

// FetchEntries returns every entry of a collection in a single unbounded
// request.
func (c *Client) FetchEntries(ctx context.Context, contentType string) ([]content.Entry, error) {
	endpoint := c.baseURL + "/" + url.PathEscape(contentType) + "?_limit=-1"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", contentType, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	var entries []content.Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", contentType, err)
	}

	return entries, nil
}

// CreateSitemapEntry posts a new sitemap record. It never checks for an
// existing record with the same URL.
func (c *Client) CreateSitemapEntry(ctx context.Context, record seo.Record) error {
	body, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode sitemap entry: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+sitemapsPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sitemap request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("sitemap request returned %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	// drain so the connection can be reused
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
