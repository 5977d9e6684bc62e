package usage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wrapped handlers must remain assignable to the server's handler type,
// since they are registered with MCPServer.AddTool directly.
var _ server.ToolHandlerFunc = WrapHandler("assignability", nil)

func TestTrackerRecordAndFormat(t *testing.T) {
	require.NoError(t, InitTracker(t.TempDir()))
	tracker := GetTracker()

	tracker.Record("spellcheck", 3*time.Millisecond, false)
	tracker.Record("spellcheck", 2*time.Millisecond, true)

	report := tracker.Format()
	assert.Contains(t, report, "spellcheck: 2 calls, 1 failures")
}

func TestTrackerSaveAndReload(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, InitTracker(dir))
	GetTracker().Record("spellcheck", time.Millisecond, false)
	require.NoError(t, GetTracker().Save())

	// A fresh tracker over the same directory picks up the saved counts
	require.NoError(t, InitTracker(dir))
	assert.Contains(t, GetTracker().Format(), "spellcheck: 1 calls")
}

func TestWrapHandlerRecords(t *testing.T) {
	require.NoError(t, InitTracker(t.TempDir()))

	handler := WrapHandler("demo", func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return &mcp.CallToolResult{}, nil
	})
	_, err := handler(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)

	failing := WrapHandler("demo", func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return nil, errors.New("boom")
	})
	_, err = failing(context.Background(), mcp.CallToolRequest{})
	require.Error(t, err)

	assert.Contains(t, GetTracker().Format(), "demo: 2 calls, 1 failures")
}
