// Package spellservice publishes the spelling bridge to the host: a
// spellcheck tool returning ranked alternatives for one word, and an info
// resource describing the installed bridge.
package spellservice

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/lingware/spellbridge/pkg/speller"
	"github.com/lingware/spellbridge/pkg/usage"
)

// defaultLocale is assumed when the host does not name one.
const defaultLocale = "en-US"

// makeSpellHandler builds the handler for the spellcheck tool.
func makeSpellHandler(checker *speller.Checker) usage.HandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		arguments := request.Params.Arguments

		// Extract the word to check
		word, ok := arguments["word"].(string)
		if !ok {
			return nil, fmt.Errorf("word must be a string")
		}

		// Extract the locale (optional)
		locale := defaultLocale
		if localeVal, ok := arguments["locale"].(string); ok && localeVal != "" {
			locale = localeVal
		}

		res, err := checker.Check(word, locale)
		if err != nil {
			return nil, fmt.Errorf("error checking word: %v", err)
		}

		// Create the result
		result := &mcp.CallToolResult{}

		if res == nil {
			result.Content = append(result.Content, mcp.TextContent{
				Text: fmt.Sprintf("No spelling issues found for %q.", word),
				Type: "text",
			})
			return result, nil
		}

		var summary strings.Builder
		summary.WriteString(fmt.Sprintf("Word: %s\n", res.Word()))
		summary.WriteString(fmt.Sprintf("Locale: %s\n", res.Locale()))
		summary.WriteString(fmt.Sprintf("Failure: %s\n", res.FailureKind()))
		summary.WriteString(fmt.Sprintf("Alternatives (%d):", res.AlternativesCount()))
		if res.AlternativesCount() > 0 {
			summary.WriteString(" " + strings.Join(res.Alternatives(), ", "))
		}
		summary.WriteString("\n")

		result.Content = append(result.Content, mcp.TextContent{
			Text: summary.String(),
			Type: "text",
		})

		return result, nil
	}
}

// RegisterSpellService registers the spellcheck tool with the MCP server
func RegisterSpellService(mcpServer *server.MCPServer, checker *speller.Checker) {
	// Create the tool definition
	spellTool := mcp.NewTool("spellcheck",
		mcp.WithDescription("Checks the spelling of a single word and returns ranked replacement alternatives. Reports the failure classification (spelling error, capitalization error) along with the alternatives; correct words report no issues."),
		mcp.WithString("word",
			mcp.Description("The word to check"),
			mcp.Required(),
		),
		mcp.WithString("locale",
			mcp.Description("BCP-47 language tag of the text (default: en-US)"),
		),
	)

	// Wrap the handler with usage tracking
	wrappedHandler := usage.WrapHandler("spellcheck", makeSpellHandler(checker))

	// Register the tool with the wrapped handler
	mcpServer.AddTool(spellTool, wrappedHandler)

	log.Printf("[SpellService] Registered spellcheck tool")
}
