package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/docstruct/pdf-outline/internal/batch"
	"github.com/docstruct/pdf-outline/internal/config"
	"github.com/docstruct/pdf-outline/internal/mcp"
	"github.com/docstruct/pdf-outline/internal/outline"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
	gitCommit = "unknown" // This will be set by build flags
)

// setupLogging configures logging based on the execution mode
func setupLogging(cfg *config.Config) {
	if cfg.IsStdioMode() {
		// In stdio mode, log output must not interfere with the MCP protocol
		log.SetOutput(os.Stderr)
		if !cfg.IsDebug() {
			log.SetOutput(os.NewFile(0, os.DevNull))
		}
	} else {
		log.SetFlags(log.LstdFlags)
	}
}

// runBatchMode processes the input directory once and exits
func runBatchMode(ctx context.Context, cfg *config.Config) {
	if _, err := os.Stat(cfg.InputDirectory); os.IsNotExist(err) {
		log.Fatalf("Input directory %s does not exist", cfg.InputDirectory)
	}

	log.Printf("Input directory: %s", cfg.InputDirectory)
	log.Printf("Output directory: %s", cfg.OutputDirectory)

	extractor := outline.NewExtractor(cfg.MaxFileSize)
	runner := batch.NewRunner(extractor, cfg.MaxFileSize, cfg.Workers)

	if err := runner.Run(ctx, cfg.InputDirectory, cfg.OutputDirectory); err != nil {
		log.Fatalf("Batch processing failed: %v", err)
	}
}

// runStdioMode serves the outline tools over MCP standard I/O
func runStdioMode(ctx context.Context, cfg *config.Config) {
	extractor := outline.NewExtractor(cfg.MaxFileSize)

	server, err := mcp.NewServer(cfg, extractor)
	if err != nil {
		log.Fatalf("Failed to create MCP server: %v", err)
	}

	// The parent process controls our lifecycle; exit cleanly when stdin
	// closes or the server errors.
	if err := server.Run(ctx); err != nil {
		if os.Getenv("DEBUG") != "" {
			log.Printf("Server error: %v", err)
		}
		os.Exit(1)
	}
}

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			printVersion()
			return
		}
	}

	cfg, err := config.LoadFromFlags()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setupLogging(cfg)

	// Set version if it was provided during build
	if version != "dev" {
		cfg.Version = version
	}

	if cfg.IsDebug() {
		log.Printf("Starting with configuration: %s", cfg.String())
	}

	// Cancel the batch on SIGINT/SIGTERM so partially written output stops cleanly
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-signalCh
		log.Printf("Received signal: %s", sig)
		cancel()
	}()

	if cfg.IsBatchMode() {
		runBatchMode(ctx, cfg)
	} else {
		runStdioMode(ctx, cfg)
	}
}

// printVersion prints version information
func printVersion() {
	fmt.Printf("PDF Outline Extractor\n")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build Time: %s\n", buildTime)
	fmt.Printf("Git Commit: %s\n", gitCommit)
	fmt.Printf("Built with: %s\n", runtime.Version())
}
