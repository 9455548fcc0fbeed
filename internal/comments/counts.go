package comments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// CountClient fetches per-page comment counts from a Commento instance
// using direct HTTP calls to its count API.
type CountClient struct {
	origin string // e.g. https://commento.example.com
	domain string // the domain registered with Commento
	client *http.Client
}

// NewCountClient creates a count client for the given Commento origin
// and registered domain.
func NewCountClient(origin, domain string) *CountClient {
	return &CountClient{
		origin: strings.TrimRight(origin, "/"),
		domain: domain,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type countRequest struct {
	Domain string   `json:"domain"`
	Paths  []string `json:"paths"`
}

type countResponse struct {
	Success       bool           `json:"success"`
	Message       string         `json:"message"`
	CommentCounts map[string]int `json:"commentCounts"`
}

// Counts returns the number of comments on each of the given page
// paths. Paths the service does not know about are reported as 0.
func (c *CountClient) Counts(ctx context.Context, paths []string) (map[string]int, error) {
	if len(paths) == 0 {
		return map[string]int{}, nil
	}

	body, err := json.Marshal(countRequest{Domain: c.domain, Paths: paths})
	if err != nil {
		return nil, fmt.Errorf("marshalling count request: %w", err)
	}

	url := fmt.Sprintf("%s/api/comment/count", c.origin)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating count request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("commento count request failed: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(httpResp.Body)
		return nil, fmt.Errorf("commento returned status %d: %s", httpResp.StatusCode, string(respBody))
	}

	var resp countResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decoding count response: %w", err)
	}
	if !resp.Success {
		return nil, fmt.Errorf("commento count lookup failed: %s", resp.Message)
	}

	counts := make(map[string]int, len(paths))
	for _, p := range paths {
		counts[p] = resp.CommentCounts[p]
	}
	return counts, nil
}
