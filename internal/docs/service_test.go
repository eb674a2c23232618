package docs

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsmith/pkgdocs-mcp/internal/registry"
	"github.com/docsmith/pkgdocs-mcp/internal/storage"
	"github.com/docsmith/pkgdocs-mcp/pkg/types"
)

const widgetReadme = `# mywidget

A tiny helper library for building widgets.

## Installation

Run npm install mywidget.

## API Reference

` + "```js\nfunction createWidget(options) {\n  return new Widget(options);\n}\n```" + `

## License

MIT
`

// fakeFetcher serves a canned document and counts fetches.
type fakeFetcher struct {
	eco   types.Ecosystem
	doc   *types.DocSource
	err   error
	calls int
}

func (f *fakeFetcher) Ecosystem() types.Ecosystem { return f.eco }

func (f *fakeFetcher) FetchPackageDoc(ctx context.Context, name, version string) (*types.DocSource, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.doc, nil
}

func newWidgetFetcher() *fakeFetcher {
	return &fakeFetcher{
		eco: types.EcosystemNpm,
		doc: &types.DocSource{
			Ecosystem:   types.EcosystemNpm,
			Name:        "mywidget",
			Version:     "1.2.3",
			Markdown:    widgetReadme,
			Description: "registry description",
			Homepage:    "https://example.com/mywidget",
			License:     "MIT",
			Origin:      "registry.npmjs.org",
		},
	}
}

func fetchersOf(f *fakeFetcher) []registry.Fetcher {
	return []registry.Fetcher{f}
}

func TestDescribe(t *testing.T) {
	f := newWidgetFetcher()
	svc, err := NewService(fetchersOf(f), Options{})
	require.NoError(t, err)

	desc, err := svc.Describe(context.Background(), types.EcosystemNpm, "mywidget", "")
	require.NoError(t, err)

	assert.Equal(t, types.EcosystemNpm, desc.Ecosystem)
	assert.Equal(t, "mywidget", desc.Name)
	assert.Equal(t, "1.2.3", desc.Version)
	assert.Equal(t, "A tiny helper library for building widgets.", desc.Summary)
	assert.Equal(t, "https://example.com/mywidget", desc.Homepage)
	assert.Equal(t, "MIT", desc.License)
	assert.Equal(t, "registry.npmjs.org", desc.Origin)

	// License is filtered out of the surfaced titles.
	assert.Equal(t, []string{"mywidget", "Installation", "API Reference"}, desc.SectionTitles)
	assert.Contains(t, desc.APIExcerpt, "## API Reference")
	assert.Contains(t, desc.Signatures, "function createWidget(options)")
}

func TestDescribe_SummaryFallsBackToRegistryDescription(t *testing.T) {
	f := newWidgetFetcher()
	f.doc.Markdown = ""
	svc, err := NewService(fetchersOf(f), Options{})
	require.NoError(t, err)

	desc, err := svc.Describe(context.Background(), types.EcosystemNpm, "mywidget", "")
	require.NoError(t, err)
	assert.Equal(t, "registry description", desc.Summary)
}

func TestDescribe_CachesResult(t *testing.T) {
	f := newWidgetFetcher()
	svc, err := NewService(fetchersOf(f), Options{})
	require.NoError(t, err)

	ctx := context.Background()
	_, err = svc.Describe(ctx, types.EcosystemNpm, "mywidget", "")
	require.NoError(t, err)
	_, err = svc.Describe(ctx, types.EcosystemNpm, "mywidget", "")
	require.NoError(t, err)

	assert.Equal(t, 1, f.calls)
}

func TestDescribe_InvalidInput(t *testing.T) {
	svc, err := NewService(fetchersOf(newWidgetFetcher()), Options{})
	require.NoError(t, err)
	ctx := context.Background()

	_, err = svc.Describe(ctx, "maven", "junit", "")
	assert.ErrorIs(t, err, types.ErrUnsupportedEcosystem)

	_, err = svc.Describe(ctx, types.EcosystemNpm, "", "")
	assert.ErrorIs(t, err, types.ErrEmptyPackageName)

	_, err = svc.Describe(ctx, types.EcosystemGo, "golang.org/x/sync", "")
	assert.ErrorIs(t, err, types.ErrUnsupportedEcosystem)
}

func TestSearchDocs_CombinesCategories(t *testing.T) {
	svc, err := NewService(fetchersOf(newWidgetFetcher()), Options{})
	require.NoError(t, err)

	results, err := svc.SearchDocs(context.Background(), types.EcosystemNpm, "mywidget", "",
		types.SearchOptions{Query: "createWidget"})
	require.NoError(t, err)
	require.Len(t, results, 4)

	// Equal scores keep category order.
	assert.Equal(t, CategoryDocumentation, results[0].Category)
	assert.Equal(t, CategorySection, results[1].Category)
	assert.Equal(t, CategoryCode, results[2].Category)
	assert.Equal(t, CategorySignature, results[3].Category)
	for _, r := range results {
		assert.Equal(t, float64(1), r.Score)
	}
}

func TestSearchDocs_EmptyQuery(t *testing.T) {
	f := newWidgetFetcher()
	svc, err := NewService(fetchersOf(f), Options{})
	require.NoError(t, err)

	results, err := svc.SearchDocs(context.Background(), types.EcosystemNpm, "mywidget", "",
		types.SearchOptions{Query: ""})
	require.NoError(t, err)
	assert.Nil(t, results)
	assert.Equal(t, 0, f.calls)
}

func TestSearchDocs_LimitCapsMergedResults(t *testing.T) {
	svc, err := NewService(fetchersOf(newWidgetFetcher()), Options{})
	require.NoError(t, err)

	results, err := svc.SearchDocs(context.Background(), types.EcosystemNpm, "mywidget", "",
		types.SearchOptions{Query: "createWidget", MaxResults: 2})
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestLoadDoc_PersistsAndReusesStoredDocument(t *testing.T) {
	store, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "docs.db"))
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	ctx := context.Background()

	f1 := newWidgetFetcher()
	svc1, err := NewService(fetchersOf(f1), Options{Store: store})
	require.NoError(t, err)
	_, err = svc1.Describe(ctx, types.EcosystemNpm, "mywidget", "")
	require.NoError(t, err)
	assert.Equal(t, 1, f1.calls)

	// A second service sharing the store answers from it without fetching.
	f2 := newWidgetFetcher()
	f2.err = errors.New("registry down")
	svc2, err := NewService(fetchersOf(f2), Options{Store: store})
	require.NoError(t, err)

	desc, err := svc2.Describe(ctx, types.EcosystemNpm, "mywidget", "")
	require.NoError(t, err)
	assert.Equal(t, "A tiny helper library for building widgets.", desc.Summary)
	assert.Equal(t, 0, f2.calls)
}

func TestLoadDoc_StaleCopyServedWhenFetchFails(t *testing.T) {
	store, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "docs.db"))
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	ctx := context.Background()

	f1 := newWidgetFetcher()
	svc1, err := NewService(fetchersOf(f1), Options{Store: store})
	require.NoError(t, err)
	_, err = svc1.Describe(ctx, types.EcosystemNpm, "mywidget", "")
	require.NoError(t, err)

	// Tiny TTL makes the stored copy stale; the failing fetch falls back to it.
	f2 := newWidgetFetcher()
	f2.err = errors.New("registry down")
	svc2, err := NewService(fetchersOf(f2), Options{Store: store, StoreTTL: 1})
	require.NoError(t, err)

	desc, err := svc2.Describe(ctx, types.EcosystemNpm, "mywidget", "")
	require.NoError(t, err)
	assert.Equal(t, "mywidget", desc.Name)
	assert.Equal(t, 1, f2.calls)
}

func TestStatus(t *testing.T) {
	store, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "docs.db"))
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	svc, err := NewService(fetchersOf(newWidgetFetcher()), Options{Store: store})
	require.NoError(t, err)

	status, err := svc.Status(context.Background())
	require.NoError(t, err)
	assert.Contains(t, status, "describe_cache")
	assert.Contains(t, status, "search_cache")
	assert.Contains(t, status, "store")
}
