package spellservice

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/lingware/spellbridge/pkg/hostenv"
	"github.com/lingware/spellbridge/pkg/propmgr"
	"github.com/lingware/spellbridge/pkg/speller"
)

// RegisterBridgeInfo registers the bridge info resource with the MCP server
func RegisterBridgeInfo(mcpServer *server.MCPServer, sc hostenv.ServiceContext, checker *speller.Checker, props *propmgr.Manager) {
	mcpServer.AddResource(
		mcp.NewResource(
			"bridge://info",
			"Bridge Information",
			mcp.WithMIMEType("text/plain"),
		),
		func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			return handleBridgeInfo(request, sc, checker, props)
		},
	)
}

func handleBridgeInfo(request mcp.ReadResourceRequest, sc hostenv.ServiceContext, checker *speller.Checker, props *propmgr.Manager) ([]mcp.ResourceContents, error) {
	installPath := hostenv.InstallationPath(sc)
	if installPath == "" {
		installPath = "(unknown)"
	}

	var b strings.Builder
	b.WriteString("Bridge Information:\n\n")
	b.WriteString(fmt.Sprintf("package_id: %s\n", hostenv.PackageID))
	b.WriteString(fmt.Sprintf("installation_path: %s\n", installPath))
	b.WriteString(fmt.Sprintf("locales: %s\n", strings.Join(checker.Locales(), ", ")))
	if props != nil {
		b.WriteString(fmt.Sprintf("message_language: %s\n", props.MessageLanguage()))
		b.WriteString(fmt.Sprintf("spell_with_digits: %v\n", props.SpellWithDigits()))
		b.WriteString(fmt.Sprintf("spell_upper_case: %v\n", props.SpellUpperCase()))
		b.WriteString(fmt.Sprintf("hyph_min_word_length: %d\n", props.HyphMinWordLength()))
	}
	b.WriteString(fmt.Sprintf("timestamp: %s\n", time.Now().Format(time.RFC3339)))
	b.WriteString(fmt.Sprintf("go_version: %s\n", runtime.Version()))
	b.WriteString(fmt.Sprintf("os: %s\n", runtime.GOOS))

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "text/plain",
			Text:     b.String(),
		},
	}, nil
}
