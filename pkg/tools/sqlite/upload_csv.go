package sqlite

import (
	"context"
	"fmt"

	"github.com/datamachine/mcp-server-sqlite-bridge/core"
	"github.com/datamachine/mcp-server-sqlite-bridge/pkg/store"
	"github.com/datamachine/mcp-server-sqlite-bridge/pkg/tools"
	"github.com/mark3labs/mcp-go/mcp"
)

// UploadCSVTool loads a delimited file into a table via the CSV ingestor.
type UploadCSVTool struct {
	handle mcp.Tool
	store  *store.Store
}

// NewUploadCSVTool creates the upload_csv tool backed by the given store.
func NewUploadCSVTool(db *store.Store) core.Tool {
	tool := &UploadCSVTool{store: db}

	tool.handle = mcp.NewTool(
		"upload_csv",
		mcp.WithDescription("Upload a new CSV file and convert it into a table"),
		mcp.WithString(
			"csv_path",
			mcp.Required(),
			mcp.Description("Path to the CSV file to upload"),
		),
		mcp.WithString(
			"table_name",
			mcp.Required(),
			mcp.Description("Name of the table to create"),
		),
	)
	return tool
}

func (tool *UploadCSVTool) Handle() mcp.Tool {
	return tool.handle
}

// Handler imports the file and reports the created table.
func (tool *UploadCSVTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := parseUploadCSVRequest(request)
	if err != nil {
		return tools.NewErrorResult(err), nil
	}

	if err := tool.store.ImportCSV(ctx, args.CSVPath, args.TableName); err != nil {
		return tools.NewErrorResult(err), nil
	}

	return tools.NewTextResult(fmt.Sprintf(
		"CSV file %s uploaded and converted to table %s", args.CSVPath, args.TableName,
	)), nil
}
