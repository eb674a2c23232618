// Package mcp implements the MCP protocol surface of the pkgdocs server.
//
// Three tools are exposed over stdio:
//
//   - describe_package: condensed documentation view for a package
//     (summary, relevant sections, API/example excerpts, signatures)
//   - search_package_docs: ranked search over a package's documentation,
//     sections, code blocks, and extracted signatures
//   - get_cache_status: result cache and document store statistics
//
// Argument validation happens at this boundary; the pipeline underneath is
// total over its inputs and never fails on content. Tool responses are
// indented JSON via mcp.NewToolResultText, errors are MCPError values with
// JSON-RPC style codes.
package mcp
