package client

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"pmshub/pkg/secrets"
)

// PMSClient talks to one configured vendor endpoint. Paths and auth
// headers are supplied by the vendor adapter layer; header values may
// carry unresolved {{...}} secret placeholders, which are passed through
// the Resolver immediately before dispatch.
type PMSClient struct {
	httpClient *HttpClient
	headers    map[string]string
	resolver   secrets.Resolver
}

func NewPMSClient(endpoint string, headers map[string]string, resolver secrets.Resolver, timeout time.Duration) *PMSClient {
	if resolver == nil {
		resolver = secrets.Passthrough{}
	}
	return &PMSClient{
		httpClient: NewHttpClient(endpoint, timeout),
		headers:    headers,
		resolver:   resolver,
	}
}

// Health probes GET {endpoint}/health. Any 2xx response counts as healthy.
func (c *PMSClient) Health(ctx context.Context) error {
	resp, err := c.get(ctx, "/health", nil)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("health check returned status %d", resp.StatusCode)
	}
	return nil
}

// FetchResource issues GET {endpoint}{path} and decodes the JSON body.
// The decoded value is handed to the vendor adapter untyped; adapters
// tolerate any shape.
func (c *PMSClient) FetchResource(ctx context.Context, path string, query url.Values) (any, error) {
	resp, err := c.get(ctx, path, query)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("fetch %s returned status %d", path, resp.StatusCode)
	}

	var raw any
	if err := resp.DecodeJSON(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return raw, nil
}

func (c *PMSClient) get(ctx context.Context, path string, query url.Values) (*Response, error) {
	headers := make(map[string]string, len(c.headers))
	for key, value := range c.headers {
		resolved, err := c.resolver.Resolve(ctx, value)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve credential for header %s: %w", key, err)
		}
		headers[key] = resolved
	}

	return c.httpClient.GET(ctx, path, query, headers)
}
