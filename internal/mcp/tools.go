package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/docsmith/pkgdocs-mcp/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams   = -32602 // Invalid method parameters
	ErrorCodeInternalError   = -32603 // Internal JSON-RPC error
	ErrorCodePackageNotFound = -32001 // Package or version does not exist in the registry
	ErrorCodeEmptyQuery      = -32004 // Query parameter is empty
)

// handleDescribePackage handles the describe_package tool invocation
func (s *Server) handleDescribePackage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	eco, name, version, err := packageParams(args)
	if err != nil {
		return nil, err
	}

	desc, err := s.service.Describe(ctx, eco, name, version)
	if err != nil {
		return nil, mapServiceError(err, eco, name)
	}

	return mcp.NewToolResultText(formatJSONValue(desc)), nil
}

// handleSearchPackageDocs handles the search_package_docs tool invocation
func (s *Server) handleSearchPackageDocs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	eco, name, version, err := packageParams(args)
	if err != nil {
		return nil, err
	}

	query, ok := args["query"].(string)
	if !ok || query == "" {
		return nil, newMCPError(ErrorCodeEmptyQuery, "query parameter is required and cannot be empty", map[string]interface{}{
			"param":  "query",
			"reason": "missing or empty",
		})
	}

	limit := getIntDefault(args, "limit", 10)
	if limit < 1 || limit > 50 {
		return nil, newMCPError(ErrorCodeInvalidParams, "limit must be between 1 and 50", map[string]interface{}{
			"param": "limit",
			"value": limit,
		})
	}

	opts := types.SearchOptions{
		Query:      query,
		Fuzzy:      getBoolDefault(args, "fuzzy", false),
		MaxResults: limit,
	}

	results, err := s.service.SearchDocs(ctx, eco, name, version, opts)
	if err != nil {
		return nil, mapServiceError(err, eco, name)
	}

	response := map[string]interface{}{
		"package":   name,
		"ecosystem": string(eco),
		"query":     query,
		"fuzzy":     opts.Fuzzy,
		"count":     len(results),
		"results":   results,
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleGetCacheStatus handles the get_cache_status tool invocation
func (s *Server) handleGetCacheStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	status, err := s.service.Status(ctx)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to read status", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return mcp.NewToolResultText(formatJSON(status)), nil
}

// packageParams extracts and validates the common ecosystem/package/version
// parameters.
func packageParams(args map[string]interface{}) (types.Ecosystem, string, string, error) {
	ecoStr, ok := args["ecosystem"].(string)
	if !ok || ecoStr == "" {
		return "", "", "", newMCPError(ErrorCodeInvalidParams, "ecosystem parameter is required", map[string]interface{}{
			"param":  "ecosystem",
			"reason": "missing or empty",
		})
	}
	eco := types.Ecosystem(ecoStr)
	if !eco.Valid() {
		return "", "", "", newMCPError(ErrorCodeInvalidParams, "unsupported ecosystem", map[string]interface{}{
			"param":   "ecosystem",
			"value":   ecoStr,
			"allowed": []string{"npm", "python", "go", "rust"},
		})
	}

	name, ok := args["package"].(string)
	if !ok || name == "" {
		return "", "", "", newMCPError(ErrorCodeInvalidParams, "package parameter is required", map[string]interface{}{
			"param":  "package",
			"reason": "missing or empty",
		})
	}

	version, _ := args["version"].(string)
	return eco, name, version, nil
}

// mapServiceError converts docs service errors to MCP errors
func mapServiceError(err error, eco types.Ecosystem, name string) error {
	if errors.Is(err, types.ErrNotFound) {
		return newMCPError(ErrorCodePackageNotFound, "package not found", map[string]interface{}{
			"ecosystem": string(eco),
			"package":   name,
		})
	}
	return newMCPError(ErrorCodeInternalError, "documentation lookup failed", map[string]interface{}{
		"error": err.Error(),
	})
}

// Helper functions

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	// MCP errors are returned as regular errors, the framework handles encoding
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// formatJSON formats a map as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// formatJSONValue formats any value as indented JSON
func formatJSONValue(v interface{}) string {
	bytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(bytes)
}

// getBoolDefault extracts a boolean parameter with a default value
func getBoolDefault(args map[string]interface{}, key string, defaultValue bool) bool {
	if val, ok := args[key].(bool); ok {
		return val
	}
	return defaultValue
}

// getIntDefault extracts an integer parameter with a default value
func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	if val, ok := args[key].(float64); ok {
		return int(val)
	}
	if val, ok := args[key].(int); ok {
		return val
	}
	return defaultValue
}
