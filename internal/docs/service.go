// Package docs composes the fetch layer, the persistent store, the result
// cache, and the extraction/search pipeline into the operations the MCP
// tools expose.
package docs

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/docsmith/pkgdocs-mcp/internal/cache"
	"github.com/docsmith/pkgdocs-mcp/internal/markdown"
	"github.com/docsmith/pkgdocs-mcp/internal/registry"
	"github.com/docsmith/pkgdocs-mcp/internal/search"
	"github.com/docsmith/pkgdocs-mcp/internal/signature"
	"github.com/docsmith/pkgdocs-mcp/internal/storage"
	"github.com/docsmith/pkgdocs-mcp/pkg/types"
)

const (
	// perCategoryLimit caps each category's contribution before results are
	// merged into the combined ranking.
	perCategoryLimit = 5

	// maxSignaturesInDescription bounds the signature list in a package
	// description.
	maxSignaturesInDescription = 20
)

// Category labels for combined search results.
const (
	CategoryDocumentation = "documentation"
	CategorySection       = "section"
	CategoryCode          = "code"
	CategorySignature     = "signature"
)

// CategorizedResult is a search result tagged with the block category it
// came from.
type CategorizedResult struct {
	Content  string  `json:"content"`
	Score    float64 `json:"score"`
	Source   string  `json:"source"`
	Category string  `json:"category"`
}

// Service answers describe and search requests over package documentation.
type Service struct {
	fetchers map[types.Ecosystem]registry.Fetcher
	store    storage.Storage // nil disables persistence
	storeTTL time.Duration

	describeCache *cache.Cache[*types.PackageDescription]
	searchCache   *cache.Cache[[]CategorizedResult]
}

// Options configures the service.
type Options struct {
	Store     storage.Storage
	StoreTTL  time.Duration
	CacheSize int
	CacheTTL  time.Duration
}

// NewService builds a Service from the given fetchers.
func NewService(fetchers []registry.Fetcher, opts Options) (*Service, error) {
	if opts.CacheSize <= 0 {
		opts.CacheSize = 1000
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = time.Hour
	}
	if opts.StoreTTL <= 0 {
		opts.StoreTTL = 24 * time.Hour
	}

	describeCache, err := cache.New[*types.PackageDescription](opts.CacheSize, opts.CacheTTL)
	if err != nil {
		return nil, err
	}
	searchCache, err := cache.New[[]CategorizedResult](opts.CacheSize, opts.CacheTTL)
	if err != nil {
		return nil, err
	}

	byEco := make(map[types.Ecosystem]registry.Fetcher, len(fetchers))
	for _, f := range fetchers {
		byEco[f.Ecosystem()] = f
	}

	return &Service{
		fetchers:      byEco,
		store:         opts.Store,
		storeTTL:      opts.StoreTTL,
		describeCache: describeCache,
		searchCache:   searchCache,
	}, nil
}

// Describe returns the condensed documentation view for a package.
func (s *Service) Describe(ctx context.Context, eco types.Ecosystem, name, version string) (*types.PackageDescription, error) {
	if !eco.Valid() {
		return nil, types.ErrUnsupportedEcosystem
	}
	if name == "" {
		return nil, types.ErrEmptyPackageName
	}

	key := cache.Key("describe", string(eco), name, version)
	desc, _, err := s.describeCache.GetOrCompute(key, func() (*types.PackageDescription, error) {
		doc, err := s.loadDoc(ctx, eco, name, version)
		if err != nil {
			return nil, err
		}
		return s.describe(doc), nil
	})
	return desc, err
}

func (s *Service) describe(doc *types.DocSource) *types.PackageDescription {
	sections := markdown.ExtractSections(doc.Markdown)
	relevant := markdown.FilterRelevantSections(sections)
	blocks := markdown.ExtractCodeBlocks(doc.Markdown)
	signatures := signature.Extract(blocks)
	if len(signatures) > maxSignaturesInDescription {
		signatures = signatures[:maxSignaturesInDescription]
	}

	summary := markdown.Summarize(doc.Markdown, 0)
	if summary == "" {
		summary = doc.Description
	}

	titles := make([]string, 0, len(relevant))
	for _, sec := range relevant {
		titles = append(titles, sec.Title)
	}

	return &types.PackageDescription{
		Ecosystem:     doc.Ecosystem,
		Name:          doc.Name,
		Version:       doc.Version,
		Summary:       summary,
		Homepage:      doc.Homepage,
		License:       doc.License,
		SectionTitles: titles,
		APIExcerpt:    markdown.ExtractAPISection(relevant),
		Examples:      markdown.ExtractExamplesSection(relevant),
		Signatures:    signatures,
		Origin:        doc.Origin,
	}
}

// SearchDocs runs the query over the whole document, its relevant sections,
// its code blocks, and its extracted signatures, then merges the four result
// lists into one ranking. Each category contributes at most five results
// before the merge; the combined list is capped by opts.Limit().
func (s *Service) SearchDocs(ctx context.Context, eco types.Ecosystem, name, version string, opts types.SearchOptions) ([]CategorizedResult, error) {
	if !eco.Valid() {
		return nil, types.ErrUnsupportedEcosystem
	}
	if name == "" {
		return nil, types.ErrEmptyPackageName
	}
	if opts.Query == "" {
		return nil, nil
	}

	key := cache.Key("search", string(eco), name, version, opts.Query,
		fmt.Sprintf("%t:%d", opts.Fuzzy, opts.Limit()))
	results, _, err := s.searchCache.GetOrCompute(key, func() ([]CategorizedResult, error) {
		doc, err := s.loadDoc(ctx, eco, name, version)
		if err != nil {
			return nil, err
		}
		return s.searchDoc(doc, opts), nil
	})
	return results, err
}

func (s *Service) searchDoc(doc *types.DocSource, opts types.SearchOptions) []CategorizedResult {
	sections := markdown.ExtractSections(doc.Markdown)
	relevant := markdown.FilterRelevantSections(sections)
	blocks := markdown.ExtractCodeBlocks(doc.Markdown)
	signatures := signature.Extract(blocks)

	perCategory := opts
	perCategory.MaxResults = perCategoryLimit

	var combined []CategorizedResult
	appendAll := func(category string, results []types.SearchResult) {
		for _, r := range results {
			combined = append(combined, CategorizedResult{
				Content:  r.Content,
				Score:    r.Score,
				Source:   r.Source,
				Category: category,
			})
		}
	}

	appendAll(CategoryDocumentation, search.Document(doc.Markdown, perCategory))
	appendAll(CategorySection, search.Sections(relevant, perCategory))
	appendAll(CategoryCode, search.CodeBlocks(blocks, perCategory))
	appendAll(CategorySignature, search.Signatures(signatures, perCategory))

	// All four lists came from the same scoring mode, so one combined sort
	// is sound. Ties keep category order: document, sections, code,
	// signatures.
	sort.SliceStable(combined, func(i, j int) bool {
		return combined[i].Score > combined[j].Score
	})

	if limit := opts.Limit(); len(combined) > limit {
		combined = combined[:limit]
	}
	return combined
}

// loadDoc returns a fresh document from the store when possible, fetching
// and persisting otherwise. A stale stored copy is served only when the
// fetch fails.
func (s *Service) loadDoc(ctx context.Context, eco types.Ecosystem, name, version string) (*types.DocSource, error) {
	fetcher, ok := s.fetchers[eco]
	if !ok {
		return nil, types.ErrUnsupportedEcosystem
	}

	var stale *storage.Document
	if s.store != nil {
		stored, err := s.store.GetDocument(ctx, eco, name, version)
		if err == nil {
			if time.Since(stored.FetchedAt) < s.storeTTL {
				return docFromStored(stored), nil
			}
			stale = stored
		}
	}

	doc, err := fetcher.FetchPackageDoc(ctx, name, version)
	if err != nil {
		if stale != nil {
			log.Printf("fetch failed for %s/%s, serving stale copy: %v", eco, name, err)
			return docFromStored(stale), nil
		}
		return nil, err
	}

	if s.store != nil {
		stored := &storage.Document{
			Ecosystem:   doc.Ecosystem,
			Name:        name,
			Version:     version,
			Content:     doc.Markdown,
			Description: doc.Description,
			Homepage:    doc.Homepage,
			License:     doc.License,
			Origin:      doc.Origin,
			FetchedAt:   doc.FetchedAt,
		}
		if err := s.store.SaveDocument(ctx, stored); err != nil {
			log.Printf("failed to persist document %s/%s: %v", eco, name, err)
		}
	}

	return doc, nil
}

func docFromStored(d *storage.Document) *types.DocSource {
	return &types.DocSource{
		Ecosystem:   d.Ecosystem,
		Name:        d.Name,
		Version:     d.Version,
		Markdown:    d.Content,
		Description: d.Description,
		Homepage:    d.Homepage,
		License:     d.License,
		FetchedAt:   d.FetchedAt,
		Origin:      d.Origin,
	}
}

// Status reports cache and store statistics.
func (s *Service) Status(ctx context.Context) (map[string]interface{}, error) {
	status := map[string]interface{}{
		"describe_cache": s.describeCache.Stats(),
		"search_cache":   s.searchCache.Stats(),
	}
	if s.store != nil {
		storeStats, err := s.store.Stats(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to read store stats: %w", err)
		}
		status["store"] = storeStats
	}
	return status, nil
}
