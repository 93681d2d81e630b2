package sqlite

import (
	"context"

	"github.com/datamachine/mcp-server-sqlite-bridge/core"
	"github.com/datamachine/mcp-server-sqlite-bridge/pkg/store"
	"github.com/datamachine/mcp-server-sqlite-bridge/pkg/tools"
	"github.com/mark3labs/mcp-go/mcp"
)

// listTablesQuery introspects the catalog for user tables.
const listTablesQuery = "SELECT name FROM sqlite_master WHERE type='table'"

// ListTablesTool reports every table in the database.
type ListTablesTool struct {
	handle mcp.Tool
	store  *store.Store
}

// NewListTablesTool creates the list_tables tool backed by the given store.
func NewListTablesTool(db *store.Store) core.Tool {
	tool := &ListTablesTool{store: db}

	tool.handle = mcp.NewTool(
		"list_tables",
		mcp.WithDescription("List all tables in the SQLite database"),
	)
	return tool
}

func (tool *ListTablesTool) Handle() mcp.Tool {
	return tool.handle
}

func (tool *ListTablesTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := tool.store.Execute(ctx, listTablesQuery)
	if err != nil {
		return tools.NewErrorResult(err), nil
	}

	return tools.NewTextResult(result.Text()), nil
}
