package registry

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/docsmith/pkgdocs-mcp/internal/htmldoc"
	"github.com/docsmith/pkgdocs-mcp/pkg/types"
)

// DefaultCratesURL is the public crates.io API.
const DefaultCratesURL = "https://crates.io"

// CratesClient fetches crate metadata and READMEs from crates.io. The README
// endpoint serves rendered HTML, which is converted back to Markdown before
// the pipeline sees it.
type CratesClient struct {
	httpClient
	baseURL   string
	converter *htmldoc.Converter
}

// NewCratesClient creates a crates.io fetcher. base may be empty for the
// public instance.
func NewCratesClient(client *http.Client, base string, rps float64) *CratesClient {
	if base == "" {
		base = DefaultCratesURL
	}
	return &CratesClient{
		httpClient: newHTTPClient(client, rps),
		baseURL:    strings.TrimRight(base, "/"),
		converter:  htmldoc.NewConverter(),
	}
}

// Ecosystem implements Fetcher.
func (c *CratesClient) Ecosystem() types.Ecosystem { return types.EcosystemRust }

type cratesResponse struct {
	Crate struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Homepage    string `json:"homepage"`
		Repository  string `json:"repository"`
		MaxVersion  string `json:"max_version"`
	} `json:"crate"`
	Versions []struct {
		Num     string `json:"num"`
		License string `json:"license"`
	} `json:"versions"`
}

// FetchPackageDoc implements Fetcher.
func (c *CratesClient) FetchPackageDoc(ctx context.Context, name, version string) (*types.DocSource, error) {
	if name == "" {
		return nil, types.ErrEmptyPackageName
	}

	var resp cratesResponse
	endpoint := fmt.Sprintf("%s/api/v1/crates/%s", c.baseURL, url.PathEscape(name))
	if err := c.getJSON(ctx, endpoint, nil, &resp); err != nil {
		return nil, err
	}

	resolved := version
	if resolved == "" || resolved == "latest" {
		resolved = resp.Crate.MaxVersion
	}

	license := ""
	found := false
	for _, v := range resp.Versions {
		if v.Num == resolved {
			license = v.License
			found = true
			break
		}
	}
	if !found && version != "" && version != "latest" {
		return nil, fmt.Errorf("version %s of %s: %w", version, name, types.ErrNotFound)
	}

	markdown := ""
	readmeURL := fmt.Sprintf("%s/api/v1/crates/%s/%s/readme", c.baseURL, url.PathEscape(name), url.PathEscape(resolved))
	if body, err := c.get(ctx, readmeURL, nil); err == nil {
		markdown = string(body)
		if looksLikeHTML(markdown) {
			if converted, err := c.converter.Convert(markdown); err == nil {
				markdown = converted
			}
		}
	}
	// A crate without a README still has registry metadata worth returning.

	homepage := resp.Crate.Homepage
	if homepage == "" {
		homepage = resp.Crate.Repository
	}

	return &types.DocSource{
		Ecosystem:   types.EcosystemRust,
		Name:        resp.Crate.Name,
		Version:     resolved,
		Markdown:    markdown,
		Description: resp.Crate.Description,
		Homepage:    homepage,
		License:     license,
		FetchedAt:   time.Now(),
		Origin:      strings.TrimPrefix(strings.TrimPrefix(c.baseURL, "https://"), "http://"),
	}, nil
}

// looksLikeHTML is a cheap sniff for rendered-HTML readme bodies.
func looksLikeHTML(s string) bool {
	trimmed := strings.TrimSpace(s)
	return strings.HasPrefix(trimmed, "<") && strings.Contains(trimmed, ">")
}
