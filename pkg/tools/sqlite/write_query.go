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

// WriteQueryTool executes mutating statements against the store.
type WriteQueryTool struct {
	handle mcp.Tool
	store  *store.Store
}

// NewWriteQueryTool creates the write_query tool backed by the given store.
func NewWriteQueryTool(db *store.Store) core.Tool {
	tool := &WriteQueryTool{store: db}

	tool.handle = mcp.NewTool(
		"write_query",
		mcp.WithDescription("Execute an INSERT, UPDATE, or DELETE query on the SQLite database"),
		mcp.WithString(
			"query",
			mcp.Required(),
			mcp.Description("SQL query to execute"),
		),
	)
	return tool
}

func (tool *WriteQueryTool) Handle() mcp.Tool {
	return tool.handle
}

// Handler rejects SELECT statements; reads belong to read_query.
func (tool *WriteQueryTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := parseWriteQueryRequest(request)
	if err != nil {
		return tools.NewErrorResult(err), nil
	}

	if strings.HasPrefix(strings.ToUpper(strings.TrimSpace(args.Query)), "SELECT") {
		return tools.NewErrorResult(errors.New("SELECT queries are not allowed for write_query")), nil
	}

	result, err := tool.store.Execute(ctx, args.Query)
	if err != nil {
		return tools.NewErrorResult(err), nil
	}

	return tools.NewTextResult(result.Text()), nil
}
