package tools

import (
	"context"
	"fmt"

	"github.com/datamachine/mcp-server-sqlite-bridge/core"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Registry manages tool registration and dispatch. It is stateless per call:
// no invocation affects the routing of a subsequent one.
type Registry struct {
	server *server.MCPServer
	tools  map[string]core.Tool
}

// NewRegistry creates a registry. mcpServer may be nil, in which case tools
// are only dispatchable directly (used by tests).
func NewRegistry(mcpServer *server.MCPServer) *Registry {
	return &Registry{
		server: mcpServer,
		tools:  make(map[string]core.Tool),
	}
}

// Register adds a tool under the name declared in its handle and, when a
// server is attached, exposes it over the protocol.
func (r *Registry) Register(tool core.Tool) {
	name := tool.Handle().Name
	r.tools[name] = tool
	if r.server != nil {
		r.server.AddTool(tool.Handle(), tool.Handler)
	}
}

// Dispatch routes a call to the registered tool. An unregistered name yields
// an "Unknown tool" error payload rather than a transport failure.
func (r *Registry) Dispatch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tool, ok := r.tools[request.Params.Name]
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("Unknown tool: %s", request.Params.Name)), nil
	}
	return tool.Handler(ctx, request)
}

// Names returns the registered tool names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	return names
}
