package mcp

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/server"

	"github.com/docsmith/pkgdocs-mcp/internal/config"
	"github.com/docsmith/pkgdocs-mcp/internal/docs"
	"github.com/docsmith/pkgdocs-mcp/internal/npmrc"
	"github.com/docsmith/pkgdocs-mcp/internal/registry"
	"github.com/docsmith/pkgdocs-mcp/internal/storage"
)

const (
	// ServerName is the MCP server name
	ServerName = "pkgdocs-mcp"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with application dependencies
type Server struct {
	mcp     *server.MCPServer
	service *docs.Service
	store   storage.Storage
}

// NewServer creates a new MCP server instance from the given configuration.
func NewServer(cfg config.Config) (*Server, error) {
	var store storage.Storage
	if cfg.StorePath != "" {
		if err := os.MkdirAll(cfg.StorePath, 0755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
		s, err := storage.NewSQLiteStorage(filepath.Join(cfg.StorePath, "pkgdocs.db"))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize storage: %w", err)
		}
		store = s
	}

	httpClient := &http.Client{}
	npmCfg := npmrc.Load("")

	npmClient := registry.NewNpmClient(httpClient, npmCfg, cfg.RateLimit)
	if cfg.Registries.Npm != "" {
		npmClient.WithBaseURL(cfg.Registries.Npm)
	}

	fetchers := []registry.Fetcher{
		npmClient,
		registry.NewPyPIClient(httpClient, cfg.Registries.PyPI, cfg.RateLimit),
		registry.NewCratesClient(httpClient, cfg.Registries.Crates, cfg.RateLimit),
		registry.NewGoClient(httpClient, cfg.Registries.GoProxy, cfg.RateLimit),
	}

	service, err := docs.NewService(fetchers, docs.Options{
		Store:     store,
		StoreTTL:  cfg.StoreTTL,
		CacheSize: cfg.CacheSize,
		CacheTTL:  cfg.CacheTTL,
	})
	if err != nil {
		if store != nil {
			_ = store.Close()
		}
		return nil, fmt.Errorf("failed to initialize docs service: %w", err)
	}

	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
	)

	s := &Server{
		mcp:     mcpServer,
		service: service,
		store:   store,
	}

	s.registerTools()

	return s, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown
func (s *Server) Serve(ctx context.Context) error {
	defer func() {
		if s.store != nil {
			_ = s.store.Close()
		}
	}()
	return server.ServeStdio(s.mcp)
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	s.mcp.AddTool(describePackageTool(), s.handleDescribePackage)
	s.mcp.AddTool(searchPackageDocsTool(), s.handleSearchPackageDocs)
	s.mcp.AddTool(getCacheStatusTool(), s.handleGetCacheStatus)
}
