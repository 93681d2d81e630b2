// Package sqlite implements the SQLite bridge toolset
package sqlite

import (
	"github.com/datamachine/mcp-server-sqlite-bridge/core"
	"github.com/datamachine/mcp-server-sqlite-bridge/pkg/store"
)

// RegisterSQLiteTools builds the full toolset backed by the given store
func RegisterSQLiteTools(db *store.Store) []core.Tool {
	return []core.Tool{
		NewUploadCSVTool(db),
		NewReadQueryTool(db),
		NewWriteQueryTool(db),
		NewListTablesTool(db),
		NewDescribeTableTool(db),
	}
}
