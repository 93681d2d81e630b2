package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/datamachine/mcp-server-sqlite-bridge/pkg/store"
	"github.com/mark3labs/mcp-go/mcp"
)

// Helper function for creating mock request
func newMockRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: struct {
			Name      string                 `json:"name"`
			Arguments map[string]interface{} `json:"arguments,omitempty"`
			Meta      *struct {
				ProgressToken mcp.ProgressToken `json:"progressToken,omitempty"`
			} `json:"_meta,omitempty"`
		}{
			Name:      name,
			Arguments: args,
		},
	}
}

func resultText(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}
	switch content := result.Content[0].(type) {
	case mcp.TextContent:
		return content.Text
	case string:
		return content
	}
	return ""
}

// newTestStore returns a ready store backed by a fresh database file.
func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.New(filepath.Join(t.TempDir(), "test.db"), "")
	if err := s.EnsureReady(); err != nil {
		t.Fatal(err)
	}
	return s
}

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
