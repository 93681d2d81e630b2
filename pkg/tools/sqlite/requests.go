package sqlite

import (
	"github.com/datamachine/mcp-server-sqlite-bridge/pkg/tools"
	"github.com/mark3labs/mcp-go/mcp"
)

// Typed requests, one per tool. The loosely-typed argument mapping on the
// wire is decoded into one of these at the dispatch boundary so validation
// happens in one place instead of per-branch key checks.

// UploadCSVRequest asks for a delimited file to be loaded into a table.
type UploadCSVRequest struct {
	CSVPath   string `json:"csv_path" jsonschema:"required,description=Path to the CSV file to upload"`
	TableName string `json:"table_name" jsonschema:"required,description=Name of the table to create"`
}

// ReadQueryRequest carries a SELECT statement.
type ReadQueryRequest struct {
	Query string `json:"query" jsonschema:"required,description=SELECT SQL query to execute"`
}

// WriteQueryRequest carries a mutating statement.
type WriteQueryRequest struct {
	Query string `json:"query" jsonschema:"required,description=SQL query to execute"`
}

// ListTablesRequest takes no arguments.
type ListTablesRequest struct{}

// DescribeTableRequest names the table whose schema should be reported.
type DescribeTableRequest struct {
	TableName string `json:"table_name" jsonschema:"required,description=Name of the table to describe"`
}

func parseUploadCSVRequest(req mcp.CallToolRequest) (UploadCSVRequest, error) {
	var parsed UploadCSVRequest
	var err error

	if parsed.CSVPath, err = tools.GetStringArg(req, "csv_path"); err != nil {
		return parsed, err
	}
	if parsed.TableName, err = tools.GetStringArg(req, "table_name"); err != nil {
		return parsed, err
	}
	return parsed, nil
}

func parseReadQueryRequest(req mcp.CallToolRequest) (ReadQueryRequest, error) {
	var parsed ReadQueryRequest
	var err error

	parsed.Query, err = tools.GetStringArg(req, "query")
	return parsed, err
}

func parseWriteQueryRequest(req mcp.CallToolRequest) (WriteQueryRequest, error) {
	var parsed WriteQueryRequest
	var err error

	parsed.Query, err = tools.GetStringArg(req, "query")
	return parsed, err
}

func parseDescribeTableRequest(req mcp.CallToolRequest) (DescribeTableRequest, error) {
	var parsed DescribeTableRequest
	var err error

	parsed.TableName, err = tools.GetStringArg(req, "table_name")
	return parsed, err
}
