package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/docstruct/pdf-outline/internal/batch"
	"github.com/docstruct/pdf-outline/internal/config"
	"github.com/docstruct/pdf-outline/internal/outline"
	pdfsvc "github.com/docstruct/pdf-outline/internal/pdf"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server exposes outline extraction as MCP tools over standard I/O.
type Server struct {
	config    *config.Config
	extractor *outline.Extractor
	search    *pdfsvc.Search
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server instance
func NewServer(cfg *config.Config, extractor *outline.Extractor) (*Server, error) {
	if extractor == nil {
		return nil, fmt.Errorf("extractor cannot be nil")
	}

	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false),
	)

	s := &Server{
		config:    cfg,
		extractor: extractor,
		search:    pdfsvc.NewSearch(cfg.MaxFileSize),
		mcpServer: mcpServer,
	}

	s.registerTools()

	return s, nil
}

// registerTools registers all available MCP tools
func (s *Server) registerTools() {
	extractFileTool := mcp.NewTool(
		"outline_extract_file",
		mcp.WithDescription("Infer the title and H1-H3 heading outline of a PDF file from its typography"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
	)
	s.mcpServer.AddTool(extractFileTool, s.handleExtractFile)

	scanDirectoryTool := mcp.NewTool(
		"outline_scan_directory",
		mcp.WithDescription("List the PDF files a batch run would process"),
		mcp.WithString("directory",
			mcp.Description("Directory to scan (uses the configured input directory if empty)"),
		),
	)
	s.mcpServer.AddTool(scanDirectoryTool, s.handleScanDirectory)

	processDirectoryTool := mcp.NewTool(
		"outline_process_directory",
		mcp.WithDescription("Extract outlines for every PDF in a directory, writing one JSON file per document"),
		mcp.WithString("input",
			mcp.Description("Input directory (uses the configured input directory if empty)"),
		),
		mcp.WithString("output",
			mcp.Description("Output directory (uses the configured output directory if empty)"),
		),
	)
	s.mcpServer.AddTool(processDirectoryTool, s.handleProcessDirectory)
}

// Handler functions

func (s *Server) handleExtractFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := s.extractor.ExtractFile(path)

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal outline: %v", err)), nil
	}

	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleScanDirectory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	directory := s.config.InputDirectory
	if dir, ok := args["directory"].(string); ok && dir != "" {
		directory = dir
	}

	files, err := s.search.FindPDFsInDirectory(directory)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if len(files) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No PDF files found in directory: %s", directory)), nil
	}

	responseText := fmt.Sprintf("Found %d PDF file(s) in directory: %s\n\nFiles:\n", len(files), directory)
	for i, file := range files {
		responseText += fmt.Sprintf("%d. %s (%d bytes, modified %s)\n", i+1, file.Name, file.Size, file.ModifiedTime)
	}

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleProcessDirectory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	inputDir := s.config.InputDirectory
	if dir, ok := args["input"].(string); ok && dir != "" {
		inputDir = dir
	}
	outputDir := s.config.OutputDirectory
	if dir, ok := args["output"].(string); ok && dir != "" {
		outputDir = dir
	}

	runner := batch.NewRunner(s.extractor, s.config.MaxFileSize, s.config.Workers)
	if err := runner.Run(ctx, inputDir, outputDir); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	count, err := s.search.CountPDFsInDirectory(inputDir)
	if err != nil {
		count = 0
	}

	responseText := fmt.Sprintf("Processed %d PDF file(s) from %s\nResults written to %s", count, inputDir, outputDir)
	return mcp.NewToolResultText(responseText), nil
}

// Run starts the MCP server over standard I/O. The parent process owns
// the lifecycle; the call returns when stdin closes.
func (s *Server) Run(_ context.Context) error {
	if s.config.IsDebug() {
		log.Printf("Starting pdf-outline MCP server in stdio mode")
		log.Printf("Input directory: %s", s.config.InputDirectory)
	}

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}
