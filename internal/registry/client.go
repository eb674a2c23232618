// Package registry fetches raw package documentation from public registries
// and local doc tooling. Fetchers are the external collaborators of the
// documentation pipeline: they obtain text, the pipeline never fetches
// anything itself.
//
// All clients share the same plumbing: an injected http.Client, a
// per-client rate limiter, a single retry on transient failure, and a typed
// ErrNotFound for missing packages.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/docsmith/pkgdocs-mcp/pkg/types"
)

// Fetcher obtains documentation for one ecosystem.
type Fetcher interface {
	// Ecosystem identifies the registry this fetcher serves.
	Ecosystem() types.Ecosystem

	// FetchPackageDoc fetches documentation for a package. version may be
	// empty, meaning the registry's latest. Returns types.ErrNotFound when
	// the package or version does not exist.
	FetchPackageDoc(ctx context.Context, name, version string) (*types.DocSource, error)
}

const (
	defaultTimeout = 30 * time.Second
	maxBodyBytes   = 16 << 20 // registries serve multi-MB packuments
)

// httpClient is the shared HTTP plumbing for registry fetchers.
type httpClient struct {
	client  *http.Client
	limiter *rate.Limiter
}

func newHTTPClient(client *http.Client, rps float64) httpClient {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	if rps <= 0 {
		rps = 5
	}
	return httpClient{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// get performs a rate-limited GET with one retry on transient failure
// (network error or 5xx). 404 maps to types.ErrNotFound.
func (c *httpClient) get(ctx context.Context, url string, headers map[string]string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	body, err := c.getOnce(ctx, url, headers)
	if err == nil || err == types.ErrNotFound || ctx.Err() != nil {
		return body, err
	}

	// One retry with jittered backoff
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(200*time.Millisecond + time.Duration(rand.Intn(300))*time.Millisecond):
	}
	return c.getOnce(ctx, url, headers)
}

func (c *httpClient) getOnce(ctx context.Context, url string, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "pkgdocs-mcp")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return nil, types.ErrNotFound
	case resp.StatusCode >= 400:
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

// getJSON fetches and decodes a JSON endpoint.
func (c *httpClient) getJSON(ctx context.Context, url string, headers map[string]string, out interface{}) error {
	body, err := c.get(ctx, url, headers)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", url, err)
	}
	return nil
}
