package mcpserver

import (
	"context"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New builds the MCP server with the full tool catalog registered and the
// argument-normalization middleware installed.
func New(h *Handler, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"wordpress-mcp",
		version,
		server.WithToolCapabilities(false),
		server.WithLogging(),
		server.WithToolHandlerMiddleware(normalizeMiddleware),
	)
	registerTools(s, h)
	return s
}

// HTTPHandler exposes the MCP server over a single streamable HTTP endpoint
// at the given path.
func HTTPHandler(s *server.MCPServer, path string) http.Handler {
	return server.NewStreamableHTTPServer(s,
		server.WithEndpointPath(path),
	)
}

// normalizeMiddleware rewrites inbound tool arguments before any handler
// decodes them. See NormalizeArguments.
func normalizeMiddleware(next server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if args, ok := req.Params.Arguments.(map[string]any); ok {
			req.Params.Arguments = NormalizeArguments(req.Params.Name, args)
		}
		return next(ctx, req)
	}
}
