// Package tools provides the tool registry and shared helpers for MCP tools
package tools

import (
	"errors"
	"fmt"

	"github.com/datamachine/mcp-server-sqlite-bridge/pkg/store"
	"github.com/mark3labs/mcp-go/mcp"
)

// Standard errors for consistent error handling
var (
	ErrInvalidParams = errors.New("invalid parameters")
	ErrUnknownTool   = errors.New("unknown tool")
)

// GetStringArg extracts a required string argument from a request.
func GetStringArg(req mcp.CallToolRequest, key string) (string, error) {
	var (
		val any
		str string
		ok  bool
	)

	if val, ok = req.Params.Arguments[key]; !ok {
		return "", fmt.Errorf("missing argument: %s", key)
	}

	str, ok = val.(string)

	if !ok {
		return "", fmt.Errorf("argument %s is not a string", key)
	}

	return str, nil
}

// NewErrorResult converts a failure into the textual error payload the tool
// protocol expects: the call itself succeeds and the payload carries the
// message. Store-level faults keep the engine message verbatim under a
// "Database error:" prefix so they stay distinguishable from everything else.
func NewErrorResult(err error) *mcp.CallToolResult {
	var storageErr *store.StorageError
	if errors.As(err, &storageErr) {
		return mcp.NewToolResultError(fmt.Sprintf("Database error: %s", storageErr.Error()))
	}
	return mcp.NewToolResultError(fmt.Sprintf("Error: %s", err.Error()))
}

// NewTextResult creates a standard text result
func NewTextResult(text string) *mcp.CallToolResult {
	return mcp.NewToolResultText(text)
}
