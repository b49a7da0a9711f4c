// Package figma is a thin client for the Figma REST API endpoints the token
// sync pipeline needs: files, nodes, local variables and image renders.
package figma

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultAPIBase = "https://api.figma.com/v1"

// APIError is a non-2xx response from the Figma API. The status code is
// preserved so callers can distinguish expected failures (a 403 on the
// variables endpoint means the plan does not include the Variables API).
type APIError struct {
	Status   int
	Endpoint string
	Body     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("figma: GET %s failed with status %d: %s", e.Endpoint, e.Status, e.Body)
}

// Client issues authenticated requests against the Figma REST API.
// There is no retry logic: a failed call aborts the sync run.
type Client struct {
	// BaseURL is the API root, overridable for tests.
	BaseURL string

	accessToken string
	httpClient  *http.Client
}

// NewClient creates a client for the given personal access token.
// The transport is tuned for large design files: connection pooling, HTTP/2
// disabled to avoid stream errors, and a generous timeout.
func NewClient(accessToken string) *Client {
	transport := &http.Transport{
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConnsPerHost: 10,
		ForceAttemptHTTP2:   false,
	}

	return &Client{
		BaseURL:     defaultAPIBase,
		accessToken: accessToken,
		httpClient: &http.Client{
			Timeout:   10 * time.Minute,
			Transport: transport,
		},
	}
}

func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Figma-Token", c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Endpoint: endpoint, Body: strings.TrimSpace(string(body))}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("parse response from %s: %w", endpoint, err)
	}
	return nil
}

// GetFile retrieves the complete file: document tree, published styles and
// component tables.
func (c *Client) GetFile(ctx context.Context, fileID string) (*FileResponse, error) {
	var resp FileResponse
	if err := c.get(ctx, fmt.Sprintf("/files/%s", fileID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetFileNodes retrieves specific node subtrees with their scoped style and
// component tables.
func (c *Client) GetFileNodes(ctx context.Context, fileID string, nodeIDs []string) (*NodesResponse, error) {
	q := url.Values{}
	q.Set("ids", strings.Join(nodeIDs, ","))

	var resp NodesResponse
	if err := c.get(ctx, fmt.Sprintf("/files/%s/nodes?%s", fileID, q.Encode()), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetLocalVariables retrieves the file's local variables and collections.
// Plans without the Variables API answer this endpoint with a 403.
func (c *Client) GetLocalVariables(ctx context.Context, fileID string) (*VariablesResponse, error) {
	var resp VariablesResponse
	if err := c.get(ctx, fmt.Sprintf("/files/%s/variables/local", fileID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetImages asks the render endpoint for download URLs of the given nodes.
func (c *Client) GetImages(ctx context.Context, fileID string, nodeIDs []string, format string, scale float64) (*ImagesResponse, error) {
	q := url.Values{}
	q.Set("ids", strings.Join(nodeIDs, ","))
	q.Set("format", format)
	q.Set("scale", fmt.Sprintf("%g", scale))

	var resp ImagesResponse
	if err := c.get(ctx, fmt.Sprintf("/images/%s?%s", fileID, q.Encode()), &resp); err != nil {
		return nil, err
	}
	if resp.Err != "" {
		return nil, fmt.Errorf("figma: image render failed: %s", resp.Err)
	}
	return &resp, nil
}
