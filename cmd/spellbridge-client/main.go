package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
)

var (
	serverURL   = flag.String("server", "http://localhost:8080", "spellbridge server URL")
	timeoutSecs = flag.Int("timeout", 60, "Client timeout in seconds")
	word        = flag.String("word", "mispelled", "Word to check")
	locale      = flag.String("locale", "en-US", "BCP-47 language tag")
)

func main() {
	flag.Parse()

	// Create a context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(*timeoutSecs)*time.Second)
	defer cancel()

	// Create the SSE client
	log.Printf("Connecting to spellbridge server at %s...", *serverURL)
	sseClient, err := client.NewSSEMCPClient(*serverURL)
	if err != nil {
		log.Fatalf("Failed to create SSE client: %v", err)
	}

	// Start the client
	if err := sseClient.Start(ctx); err != nil {
		log.Fatalf("Failed to start SSE client: %v", err)
	}

	// Initialize the client
	initReq := mcp.InitializeRequest{}
	initReq.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION

	initResult, err := sseClient.Initialize(ctx, initReq)
	if err != nil {
		log.Fatalf("Failed to initialize client: %v", err)
	}

	log.Printf("Connected to server successfully")
	log.Printf("Server capabilities: %+v", initResult.Capabilities)

	// Read the bridge info resource
	readReq := mcp.ReadResourceRequest{}
	readReq.Params.URI = "bridge://info"

	infoResult, err := sseClient.ReadResource(ctx, readReq)
	if err != nil {
		log.Printf("Failed to read bridge info: %v", err)
	} else if len(infoResult.Contents) > 0 {
		if textContent, ok := infoResult.Contents[0].(mcp.TextResourceContents); ok {
			log.Printf("Bridge Info:\n%s", textContent.Text)
		}
	}

	// Check the word
	callReq := mcp.CallToolRequest{}
	callReq.Params.Name = "spellcheck"
	callReq.Params.Arguments = map[string]interface{}{
		"word":   *word,
		"locale": *locale,
	}

	result, err := sseClient.CallTool(ctx, callReq)
	if err != nil {
		log.Fatalf("Failed to call spellcheck: %v", err)
	}

	if len(result.Content) > 0 {
		if textContent, ok := result.Content[0].(mcp.TextContent); ok {
			log.Printf("Spellcheck result:\n%s", textContent.Text)
		}
	}
}
