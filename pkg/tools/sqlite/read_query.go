package sqlite

import (
	"context"
	"errors"
	"strings"

	"github.com/datamachine/mcp-server-sqlite-bridge/core"
	"github.com/datamachine/mcp-server-sqlite-bridge/pkg/store"
	"github.com/datamachine/mcp-server-sqlite-bridge/pkg/tools"
	"github.com/mark3labs/mcp-go/mcp"
)

// ReadQueryTool executes SELECT statements against the store.
type ReadQueryTool struct {
	handle mcp.Tool
	store  *store.Store
}

// NewReadQueryTool creates the read_query tool backed by the given store.
func NewReadQueryTool(db *store.Store) core.Tool {
	tool := &ReadQueryTool{store: db}

	tool.handle = mcp.NewTool(
		"read_query",
		mcp.WithDescription("Execute a SELECT query on the SQLite database"),
		mcp.WithString(
			"query",
			mcp.Required(),
			mcp.Description("SELECT SQL query to execute"),
		),
	)
	return tool
}

func (tool *ReadQueryTool) Handle() mcp.Tool {
	return tool.handle
}

// Handler rejects anything that is not a SELECT before the store is touched.
func (tool *ReadQueryTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := parseReadQueryRequest(request)
	if err != nil {
		return tools.NewErrorResult(err), nil
	}

	if !strings.HasPrefix(strings.ToUpper(strings.TrimSpace(args.Query)), "SELECT") {
		return tools.NewErrorResult(errors.New("Only SELECT queries are allowed for read_query")), nil
	}

	result, err := tool.store.Execute(ctx, args.Query)
	if err != nil {
		return tools.NewErrorResult(err), nil
	}

	return tools.NewTextResult(result.Text()), nil
}
