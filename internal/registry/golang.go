package registry

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os/exec"
	"strings"
	"time"
	"unicode"

	"github.com/docsmith/pkgdocs-mcp/pkg/types"
)

// DefaultGoProxyURL is the public Go module proxy.
const DefaultGoProxyURL = "https://proxy.golang.org"

// GoClient fetches Go package documentation. It prefers local `go doc`
// output, which includes signatures and doc comments for any module in the
// build cache, and falls back to module proxy metadata when the toolchain
// cannot resolve the import path.
type GoClient struct {
	httpClient
	proxyURL string

	// runGoDoc is swappable for tests.
	runGoDoc func(ctx context.Context, importPath string) (string, error)
}

// NewGoClient creates a Go fetcher. proxy may be empty for the public proxy.
func NewGoClient(client *http.Client, proxy string, rps float64) *GoClient {
	if proxy == "" {
		proxy = DefaultGoProxyURL
	}
	return &GoClient{
		httpClient: newHTTPClient(client, rps),
		proxyURL:   strings.TrimRight(proxy, "/"),
		runGoDoc:   execGoDoc,
	}
}

// Ecosystem implements Fetcher.
func (c *GoClient) Ecosystem() types.Ecosystem { return types.EcosystemGo }

// FetchPackageDoc implements Fetcher.
func (c *GoClient) FetchPackageDoc(ctx context.Context, importPath, version string) (*types.DocSource, error) {
	if importPath == "" {
		return nil, types.ErrEmptyPackageName
	}

	if output, err := c.runGoDoc(ctx, importPath); err == nil && strings.TrimSpace(output) != "" {
		return &types.DocSource{
			Ecosystem: types.EcosystemGo,
			Name:      importPath,
			Version:   version,
			Markdown:  goDocMarkdown(importPath, output),
			FetchedAt: time.Now(),
			Origin:    "go doc",
		}, nil
	}

	return c.fetchFromProxy(ctx, importPath, version)
}

// fetchFromProxy resolves version metadata from the module proxy. The proxy
// serves no documentation, so the result carries metadata only.
func (c *GoClient) fetchFromProxy(ctx context.Context, importPath, version string) (*types.DocSource, error) {
	escaped := escapeModulePath(importPath)

	endpoint := fmt.Sprintf("%s/%s/@latest", c.proxyURL, escaped)
	if version != "" && version != "latest" {
		endpoint = fmt.Sprintf("%s/%s/@v/%s.info", c.proxyURL, escaped, version)
	}

	var info struct {
		Version string    `json:"Version"`
		Time    time.Time `json:"Time"`
	}
	if err := c.getJSON(ctx, endpoint, nil, &info); err != nil {
		return nil, err
	}

	markdown := fmt.Sprintf("# %s\n\nModule %s at version %s (published %s).\n\nSee https://pkg.go.dev/%s for full documentation.",
		importPath, importPath, info.Version, info.Time.Format("2006-01-02"), importPath)

	return &types.DocSource{
		Ecosystem:   types.EcosystemGo,
		Name:        importPath,
		Version:     info.Version,
		Markdown:    markdown,
		Description: fmt.Sprintf("Go module %s", importPath),
		Homepage:    "https://pkg.go.dev/" + importPath,
		FetchedAt:   time.Now(),
		Origin:      strings.TrimPrefix(c.proxyURL, "https://"),
	}, nil
}

// goDocMarkdown wraps go doc output as Markdown the pipeline can segment:
// a title heading, then the output in a fenced block so code-block and
// signature extraction see the declarations.
func goDocMarkdown(importPath, output string) string {
	return fmt.Sprintf("# %s\n\n## Documentation\n\n```go\n%s\n```", importPath, strings.TrimSpace(output))
}

func execGoDoc(ctx context.Context, importPath string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, "go", "doc", importPath)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("go doc %s: %w", importPath, err)
	}
	return stdout.String(), nil
}

// escapeModulePath applies the module proxy's case encoding: every uppercase
// letter becomes "!" followed by its lowercase form.
func escapeModulePath(path string) string {
	var sb strings.Builder
	for _, r := range path {
		if unicode.IsUpper(r) {
			sb.WriteByte('!')
			sb.WriteRune(unicode.ToLower(r))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
