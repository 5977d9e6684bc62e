package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/text/language"

	"github.com/lingware/spellbridge/pkg/hostenv/local"
	"github.com/lingware/spellbridge/pkg/propmgr"
	"github.com/lingware/spellbridge/pkg/speller"
	"github.com/lingware/spellbridge/pkg/spellservice"
	"github.com/lingware/spellbridge/pkg/usage"
)

var (
	port       = flag.Int("port", 8080, "Port to listen on")
	baseURL    = flag.String("baseurl", "", "Base URL for the server (e.g., http://localhost:8080)")
	serverName = flag.String("name", "spellbridge MCP Server", "Server name")
	serverVer  = flag.String("version", "1.0.0", "Server version")
	dataDir    = flag.String("data-dir", filepath.Join(".", "data"), "Directory for configuration and usage data")
	dictFile   = flag.String("dictionary", "", "Extra dictionary file to train, one word per line")
	dictLocale = flag.String("dictionary-locale", "en-US", "Locale of the extra dictionary")
)

func main() {
	flag.Parse()

	// Create data directory if it doesn't exist
	if err := os.MkdirAll(*dataDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	// The standalone server is its own host environment
	serviceContext, err := local.NewContext(*dataDir)
	if err != nil {
		log.Fatalf("Failed to create service context: %v", err)
	}

	// Bootstrap the shared property manager
	props := propmgr.Instance(serviceContext)

	// Build the suggestion provider and train any extra dictionary
	provider := speller.NewFuzzyProvider()
	if *dictFile != "" {
		tag, err := language.Parse(*dictLocale)
		if err != nil {
			log.Fatalf("Invalid dictionary locale %q: %v", *dictLocale, err)
		}
		words, err := readDictionaryFile(*dictFile)
		if err != nil {
			log.Fatalf("Failed to read dictionary %s: %v", *dictFile, err)
		}
		provider.Train(tag, words)
	}
	checker := speller.NewChecker(provider, props)

	// Create the MCP server
	mcpServer := server.NewMCPServer(
		*serverName,
		*serverVer,
		server.WithResourceCapabilities(true, true),
		server.WithToolCapabilities(true),
		server.WithLogging(),
	)

	// Initialize usage tracking
	if err := usage.InitTracker(*dataDir); err != nil {
		log.Fatalf("Failed to initialize usage tracker: %v", err)
	}

	// Register tools and resources
	spellservice.RegisterSpellService(mcpServer, checker)
	spellservice.RegisterBridgeInfo(mcpServer, serviceContext, checker, props)

	// Create the SSE server
	baseURLValue := *baseURL
	if baseURLValue == "" {
		baseURLValue = fmt.Sprintf("http://localhost:%d", *port)
	}

	sseServer := server.NewSSEServer(
		mcpServer,
		server.WithBaseURL(baseURLValue),
		server.WithSSEEndpoint("/"),
		server.WithMessageEndpoint("/messages"),
	)

	// Set up HTTP server
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: sseServer,
	}

	// Set up signal handling for graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Start the server in a goroutine
	go func() {
		log.Printf("[Server] Starting spellbridge server on port %d...", *port)
		log.Printf("[Server] Base URL: %s", baseURLValue)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[Server] Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	<-stop

	// Create a deadline for shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	log.Println("[Server] Shutting down server...")

	// Persist and print final usage before shutdown
	if tracker := usage.GetTracker(); tracker != nil {
		if err := tracker.Save(); err != nil {
			log.Printf("[Server] Failed to save usage data: %v", err)
		}
		log.Printf("[Server] Final usage:\n%s", tracker.Format())
	}

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("[Server] Server shutdown failed: %v", err)
	}
	log.Println("[Server] Server stopped")
}

// readDictionaryFile loads a plain word list, one word per line.
func readDictionaryFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
