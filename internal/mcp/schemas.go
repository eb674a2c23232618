package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// describePackageTool returns the tool definition for describe_package
func describePackageTool() mcp.Tool {
	return mcp.Tool{
		Name:        "describe_package",
		Description: "Get a concise description of a package's documentation: summary, relevant sections, API and example excerpts, and extracted function signatures",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"ecosystem": map[string]interface{}{
					"type":        "string",
					"description": "Package ecosystem",
					"enum":        []string{"npm", "python", "go", "rust"},
				},
				"package": map[string]interface{}{
					"type":        "string",
					"description": "Package name (npm name, PyPI name, Go import path, or crate name)",
				},
				"version": map[string]interface{}{
					"type":        "string",
					"description": "Specific version to describe (defaults to latest)",
				},
			},
			Required: []string{"ecosystem", "package"},
		},
	}
}

// searchPackageDocsTool returns the tool definition for search_package_docs
func searchPackageDocsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "search_package_docs",
		Description: "Search a package's documentation for a query, returning ranked matches with surrounding context from sections, code blocks, and function signatures",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"ecosystem": map[string]interface{}{
					"type":        "string",
					"description": "Package ecosystem",
					"enum":        []string{"npm", "python", "go", "rust"},
				},
				"package": map[string]interface{}{
					"type":        "string",
					"description": "Package name (npm name, PyPI name, Go import path, or crate name)",
				},
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Search query (cannot be empty)",
				},
				"fuzzy": map[string]interface{}{
					"type":        "boolean",
					"description": "If true, use approximate matching instead of exact substring matching",
					"default":     false,
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of results to return (1-50)",
					"default":     10,
					"minimum":     1,
					"maximum":     50,
				},
				"version": map[string]interface{}{
					"type":        "string",
					"description": "Specific version to search (defaults to latest)",
				},
			},
			Required: []string{"ecosystem", "package", "query"},
		},
	}
}

// getCacheStatusTool returns the tool definition for get_cache_status
func getCacheStatusTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_cache_status",
		Description: "Query result cache and document store statistics",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}
