package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/docsmith/pkgdocs-mcp/internal/npmrc"
	"github.com/docsmith/pkgdocs-mcp/pkg/types"
)

// NpmClient fetches package documentation from an npm-compatible registry,
// honoring scoped-registry and auth-token configuration from .npmrc.
type NpmClient struct {
	httpClient
	npmrc   *npmrc.Config
	baseURL string // overrides npmrc resolution when set; used by tests
}

// NewNpmClient creates an npm fetcher. cfg may be nil, in which case the
// public registry is used without auth.
func NewNpmClient(client *http.Client, cfg *npmrc.Config, rps float64) *NpmClient {
	if cfg == nil {
		cfg = &npmrc.Config{DefaultRegistry: npmrc.DefaultRegistry}
	}
	return &NpmClient{
		httpClient: newHTTPClient(client, rps),
		npmrc:      cfg,
	}
}

// WithBaseURL pins the client to a single registry URL, bypassing .npmrc
// scope resolution.
func (c *NpmClient) WithBaseURL(base string) *NpmClient {
	c.baseURL = strings.TrimRight(base, "/")
	return c
}

// Ecosystem implements Fetcher.
func (c *NpmClient) Ecosystem() types.Ecosystem { return types.EcosystemNpm }

// packument is the registry document for a package across all versions.
type packument struct {
	Name        string                    `json:"name"`
	Description string                    `json:"description"`
	Readme      string                    `json:"readme"`
	Homepage    string                    `json:"homepage"`
	License     licenseField              `json:"license"`
	DistTags    map[string]string         `json:"dist-tags"`
	Versions    map[string]packumentEntry `json:"versions"`
}

type packumentEntry struct {
	Description string       `json:"description"`
	Readme      string       `json:"readme"`
	Homepage    string       `json:"homepage"`
	License     licenseField `json:"license"`
}

// licenseField tolerates both the modern string form and the legacy
// {"type": "...", "url": "..."} object form.
type licenseField string

func (l *licenseField) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = licenseField(s)
		return nil
	}
	var obj struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		*l = licenseField(obj.Type)
		return nil
	}
	*l = ""
	return nil
}

// FetchPackageDoc implements Fetcher.
func (c *NpmClient) FetchPackageDoc(ctx context.Context, name, version string) (*types.DocSource, error) {
	if name == "" {
		return nil, types.ErrEmptyPackageName
	}

	base := c.baseURL
	if base == "" {
		base = c.npmrc.RegistryFor(name)
	}

	// Scoped names keep the "@" but must escape the inner slash.
	url := base + "/" + strings.Replace(name, "/", "%2f", 1)

	headers := map[string]string{"Accept": "application/json"}
	if token := c.npmrc.TokenFor(base); token != "" {
		headers["Authorization"] = "Bearer " + token
	}

	var pack packument
	if err := c.getJSON(ctx, url, headers, &pack); err != nil {
		return nil, err
	}

	resolved := version
	if resolved == "" || resolved == "latest" {
		resolved = pack.DistTags["latest"]
	}

	readme := pack.Readme
	description := pack.Description
	homepage := pack.Homepage
	license := string(pack.License)
	if entry, ok := pack.Versions[resolved]; ok {
		if entry.Readme != "" {
			readme = entry.Readme
		}
		if entry.Description != "" {
			description = entry.Description
		}
		if entry.Homepage != "" {
			homepage = entry.Homepage
		}
		if entry.License != "" {
			license = string(entry.License)
		}
	} else if version != "" && version != "latest" {
		return nil, fmt.Errorf("version %s of %s: %w", version, name, types.ErrNotFound)
	}

	return &types.DocSource{
		Ecosystem:   types.EcosystemNpm,
		Name:        pack.Name,
		Version:     resolved,
		Markdown:    readme,
		Description: description,
		Homepage:    homepage,
		License:     license,
		FetchedAt:   time.Now(),
		Origin:      strings.TrimPrefix(strings.TrimPrefix(base, "https://"), "http://"),
	}, nil
}
