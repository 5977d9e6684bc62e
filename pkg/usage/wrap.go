package usage

import (
	"context"
	"log"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

// HandlerFunc is the tool handler signature the MCP server expects. It is
// an alias, not a defined type, so wrapped handlers stay assignable to the
// server's own handler type.
type HandlerFunc = func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)

// WrapHandler wraps a tool handler with usage tracking. When the tracker is
// not initialized the handler runs untracked.
func WrapHandler(toolName string, handler HandlerFunc) HandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		startTime := time.Now()
		result, err := handler(ctx, request)
		if t := GetTracker(); t != nil {
			t.Record(toolName, time.Since(startTime), err != nil)
		}
		if err != nil {
			log.Printf("[Usage] Tool '%s' failed: %v", toolName, err)
			return nil, err
		}
		return result, nil
	}
}
