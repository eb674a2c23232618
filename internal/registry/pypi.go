package registry

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/docsmith/pkgdocs-mcp/pkg/types"
)

// DefaultPyPIURL is the public PyPI JSON API.
const DefaultPyPIURL = "https://pypi.org"

// PyPIClient fetches package documentation from the PyPI JSON API.
type PyPIClient struct {
	httpClient
	baseURL string
}

// NewPyPIClient creates a PyPI fetcher. base may be empty for the public
// instance.
func NewPyPIClient(client *http.Client, base string, rps float64) *PyPIClient {
	if base == "" {
		base = DefaultPyPIURL
	}
	return &PyPIClient{
		httpClient: newHTTPClient(client, rps),
		baseURL:    strings.TrimRight(base, "/"),
	}
}

// Ecosystem implements Fetcher.
func (c *PyPIClient) Ecosystem() types.Ecosystem { return types.EcosystemPython }

type pypiResponse struct {
	Info struct {
		Name        string `json:"name"`
		Version     string `json:"version"`
		Summary     string `json:"summary"`
		Description string `json:"description"`
		HomePage    string `json:"home_page"`
		License     string `json:"license"`
		ProjectURLs map[string]string `json:"project_urls"`
	} `json:"info"`
}

// FetchPackageDoc implements Fetcher. The long_description PyPI serves is
// usually Markdown or reST; both are consumed as text by the pipeline.
func (c *PyPIClient) FetchPackageDoc(ctx context.Context, name, version string) (*types.DocSource, error) {
	if name == "" {
		return nil, types.ErrEmptyPackageName
	}

	endpoint := fmt.Sprintf("%s/pypi/%s/json", c.baseURL, url.PathEscape(name))
	if version != "" && version != "latest" {
		endpoint = fmt.Sprintf("%s/pypi/%s/%s/json", c.baseURL, url.PathEscape(name), url.PathEscape(version))
	}

	var resp pypiResponse
	if err := c.getJSON(ctx, endpoint, nil, &resp); err != nil {
		return nil, err
	}

	homepage := resp.Info.HomePage
	if homepage == "" {
		homepage = resp.Info.ProjectURLs["Homepage"]
	}

	return &types.DocSource{
		Ecosystem:   types.EcosystemPython,
		Name:        resp.Info.Name,
		Version:     resp.Info.Version,
		Markdown:    resp.Info.Description,
		Description: resp.Info.Summary,
		Homepage:    homepage,
		License:     resp.Info.License,
		FetchedAt:   time.Now(),
		Origin:      strings.TrimPrefix(strings.TrimPrefix(c.baseURL, "https://"), "http://"),
	}, nil
}
