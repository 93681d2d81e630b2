package sqlite

import (
	"context"
	"fmt"

	"github.com/datamachine/mcp-server-sqlite-bridge/core"
	"github.com/datamachine/mcp-server-sqlite-bridge/pkg/store"
	"github.com/datamachine/mcp-server-sqlite-bridge/pkg/tools"
	"github.com/mark3labs/mcp-go/mcp"
)

// DescribeTableTool reports the schema of a single table.
type DescribeTableTool struct {
	handle mcp.Tool
	store  *store.Store
}

// NewDescribeTableTool creates the describe_table tool backed by the given store.
func NewDescribeTableTool(db *store.Store) core.Tool {
	tool := &DescribeTableTool{store: db}

	tool.handle = mcp.NewTool(
		"describe_table",
		mcp.WithDescription("Get the schema information for a specific table"),
		mcp.WithString(
			"table_name",
			mcp.Required(),
			mcp.Description("Name of the table to describe"),
		),
	)
	return tool
}

func (tool *DescribeTableTool) Handle() mcp.Tool {
	return tool.handle
}

// Handler runs PRAGMA table_info for the table. PRAGMA cannot take the
// identifier as a bound parameter, so the name is interpolated directly;
// an absent table yields an empty result set, not an error.
func (tool *DescribeTableTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := parseDescribeTableRequest(request)
	if err != nil {
		return tools.NewErrorResult(err), nil
	}

	result, err := tool.store.Execute(ctx, fmt.Sprintf("PRAGMA table_info(%s)", args.TableName))
	if err != nil {
		return tools.NewErrorResult(err), nil
	}

	return tools.NewTextResult(result.Text()), nil
}
