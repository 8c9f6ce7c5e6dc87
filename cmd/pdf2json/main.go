package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/docsmith/pdf2json/internal/config"
	"github.com/docsmith/pdf2json/internal/convert"
	"github.com/docsmith/pdf2json/internal/mcp"
	"github.com/docsmith/pdf2json/internal/pdf"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
	gitCommit = "unknown" // This will be set by build flags
)

// setupLogging configures logging based on the run mode
func setupLogging(cfg *config.Config) {
	// Logs always go to stderr; stdout carries JSON or the MCP protocol
	log.SetOutput(os.Stderr)

	if cfg.IsStdioMode() && !cfg.IsDebug() {
		// Silence logs in stdio mode to avoid interfering with the protocol
		log.SetOutput(io.Discard)
	}
	if cfg.IsDebug() {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}
}

// runStdioMode runs the MCP server with signal handling
func runStdioMode(ctx context.Context, cancel context.CancelFunc, server *mcp.Server) {
	// Set up signal handling for graceful shutdown
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	// Start server in a goroutine
	serverErrCh := make(chan error, 1)
	go func() {
		serverErrCh <- server.Run(ctx)
	}()

	// Wait for shutdown signal or server error
	select {
	case sig := <-signalCh:
		log.Printf("Received signal: %s", sig)
		log.Println("Initiating graceful shutdown...")
		cancel()

		// Wait for server to shutdown
		if err := <-serverErrCh; err != nil {
			log.Printf("Server shutdown with error: %v", err)
			os.Exit(1)
		}

	case err := <-serverErrCh:
		if err != nil {
			log.Printf("Server error: %v", err)
			os.Exit(1)
		}
	}

	log.Println("Server stopped successfully")
}

// runConvertMode performs a one-shot conversion of the configured input file
func runConvertMode(cfg *config.Config, converter *convert.Converter) {
	record, err := converter.Convert(cfg.InputPath)
	if err != nil {
		// Convert already logged the failure
		os.Exit(1)
	}

	if err := writeOutput(cfg, converter, record); err != nil {
		os.Exit(1)
	}
}

// writeOutput delivers the record to the configured destination: the output
// file when one is set, stdout otherwise.
func writeOutput(cfg *config.Config, converter *convert.Converter, record *convert.DocumentRecord) error {
	if cfg.OutputPath != "" {
		// File output is always indented; --pretty shapes stdout only
		if !converter.SaveAsJSON(record, cfg.OutputPath, true) {
			// SaveAsJSON already logged the failure
			return fmt.Errorf("save to %s failed", cfg.OutputPath)
		}
		fmt.Printf("Successfully saved to %s\n", cfg.OutputPath)
		return nil
	}

	if err := convert.EncodeJSON(os.Stdout, record, cfg.Pretty); err != nil {
		log.Printf("Error writing JSON: %v", err)
		return err
	}
	return nil
}

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			printVersion()
			return
		}
	}

	// Load configuration from flags first
	cfg, err := config.LoadFromFlags()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set up logging based on mode
	setupLogging(cfg)

	// Set version if it was provided during build
	if version != "dev" {
		cfg.Version = version
	}

	if cfg.IsDebug() {
		log.Printf("Starting with configuration: %s", cfg.String())
	}

	// Create the converter over the PDF access layer
	converter := convert.NewConverter(pdf.NewLibrary(), cfg.MaxFileSize)

	if cfg.IsStdioMode() {
		server, err := mcp.NewServer(cfg, converter)
		if err != nil {
			log.Fatalf("Failed to create MCP server: %v", err)
		}

		// Set up context for graceful shutdown
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		runStdioMode(ctx, cancel, server)
		return
	}

	runConvertMode(cfg, converter)
}

// printVersion prints version information
func printVersion() {
	fmt.Printf("PDF to JSON Converter\n")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build Time: %s\n", buildTime)
	fmt.Printf("Git Commit: %s\n", gitCommit)
	fmt.Printf("Built with: %s\n", runtime.Version())
}
