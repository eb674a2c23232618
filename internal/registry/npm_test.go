package registry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsmith/pkgdocs-mcp/internal/npmrc"
	"github.com/docsmith/pkgdocs-mcp/pkg/types"
)

const leftPadPackument = `{
	"name": "left-pad",
	"description": "String left pad",
	"readme": "# left-pad\n\nPads strings on the left.",
	"homepage": "https://github.com/stevemao/left-pad",
	"license": "WTFPL",
	"dist-tags": {"latest": "1.3.0"},
	"versions": {
		"1.3.0": {},
		"1.0.0": {"description": "Older release", "license": {"type": "MIT", "url": "x"}}
	}
}`

func TestNpmClient_FetchLatest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/left-pad", r.URL.Path)
		_, _ = w.Write([]byte(leftPadPackument))
	}))
	defer srv.Close()

	c := NewNpmClient(srv.Client(), nil, 100).WithBaseURL(srv.URL)

	doc, err := c.FetchPackageDoc(context.Background(), "left-pad", "")
	require.NoError(t, err)
	assert.Equal(t, types.EcosystemNpm, doc.Ecosystem)
	assert.Equal(t, "left-pad", doc.Name)
	assert.Equal(t, "1.3.0", doc.Version)
	assert.Equal(t, "# left-pad\n\nPads strings on the left.", doc.Markdown)
	assert.Equal(t, "String left pad", doc.Description)
	assert.Equal(t, "WTFPL", doc.License)
}

func TestNpmClient_VersionOverridesAndLegacyLicense(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(leftPadPackument))
	}))
	defer srv.Close()

	c := NewNpmClient(srv.Client(), nil, 100).WithBaseURL(srv.URL)

	doc, err := c.FetchPackageDoc(context.Background(), "left-pad", "1.0.0")
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", doc.Version)
	assert.Equal(t, "Older release", doc.Description)
	assert.Equal(t, "MIT", doc.License)
}

func TestNpmClient_UnknownVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(leftPadPackument))
	}))
	defer srv.Close()

	c := NewNpmClient(srv.Client(), nil, 100).WithBaseURL(srv.URL)

	_, err := c.FetchPackageDoc(context.Background(), "left-pad", "9.9.9")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestNpmClient_ScopedNameEscaped(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_, _ = w.Write([]byte(`{"name": "@types/node", "dist-tags": {"latest": "20.0.0"}, "versions": {"20.0.0": {}}}`))
	}))
	defer srv.Close()

	c := NewNpmClient(srv.Client(), nil, 100).WithBaseURL(srv.URL)

	_, err := c.FetchPackageDoc(context.Background(), "@types/node", "")
	require.NoError(t, err)
	assert.Equal(t, "/@types%2fnode", gotPath)
}

func TestNpmClient_AuthTokenHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(leftPadPackument))
	}))
	defer srv.Close()

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	cfg := &npmrc.Config{
		DefaultRegistry: srv.URL,
		AuthTokens:      map[string]string{"//" + u.Host + "/": "tok-123"},
	}
	c := NewNpmClient(srv.Client(), cfg, 100).WithBaseURL(srv.URL)

	_, err = c.FetchPackageDoc(context.Background(), "left-pad", "")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestNpmClient_PackageNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewNpmClient(srv.Client(), nil, 100).WithBaseURL(srv.URL)

	_, err := c.FetchPackageDoc(context.Background(), "no-such-package", "")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestNpmClient_EmptyName(t *testing.T) {
	c := NewNpmClient(nil, nil, 100)
	_, err := c.FetchPackageDoc(context.Background(), "", "")
	assert.ErrorIs(t, err, types.ErrEmptyPackageName)
}
