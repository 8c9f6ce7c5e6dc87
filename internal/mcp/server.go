package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/docsmith/pdf2json/internal/config"
	"github.com/docsmith/pdf2json/internal/convert"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server represents the MCP server instance
type Server struct {
	config    *config.Config
	converter *convert.Converter
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server instance
func NewServer(cfg *config.Config, converter *convert.Converter) (*Server, error) {
	if converter == nil {
		return nil, fmt.Errorf("converter cannot be nil")
	}

	// Create MCP server
	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false), // We don't support dynamic tool capabilities
	)

	s := &Server{
		config:    cfg,
		converter: converter,
		mcpServer: mcpServer,
	}

	// Register tools
	s.registerTools()

	return s, nil
}

// registerTools registers all available MCP tools
func (s *Server) registerTools() {
	// Register PDF convert file tool
	pdfConvertFileTool := mcp.NewTool(
		"pdf_convert_file",
		mcp.WithDescription("Convert a PDF file into a structured JSON record"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
		mcp.WithBoolean("pretty",
			mcp.Description("Indent the JSON output with two spaces"),
		),
	)
	s.mcpServer.AddTool(pdfConvertFileTool, s.handlePDFConvertFile)

	// Register PDF document metadata tool
	pdfDocumentMetadataTool := mcp.NewTool(
		"pdf_document_metadata",
		mcp.WithDescription("Read document metadata from a PDF file"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
	)
	s.mcpServer.AddTool(pdfDocumentMetadataTool, s.handlePDFDocumentMetadata)

	// Register PDF page content tool
	pdfPageContentTool := mcp.NewTool(
		"pdf_page_content",
		mcp.WithDescription("Extract the content of a single PDF page"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
		mcp.WithNumber("page",
			mcp.Required(),
			mcp.Description("1-indexed page number"),
		),
	)
	s.mcpServer.AddTool(pdfPageContentTool, s.handlePDFPageContent)

	// Register PDF validate file tool
	pdfValidateFileTool := mcp.NewTool(
		"pdf_validate_file",
		mcp.WithDescription("Validate that a file is present and within size limits"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
	)
	s.mcpServer.AddTool(pdfValidateFileTool, s.handlePDFValidateFile)

	// Register PDF service info tool
	pdfServiceInfoTool := mcp.NewTool(
		"pdf_service_info",
		mcp.WithDescription("Get service information, available tools, and usage guidance"),
	)
	s.mcpServer.AddTool(pdfServiceInfoTool, s.handlePDFServiceInfo)
}

// Handler functions
func (s *Server) handlePDFConvertFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	pretty := false
	if p, ok := request.GetArguments()["pretty"].(bool); ok {
		pretty = p
	}

	record, err := s.converter.Convert(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var buf bytes.Buffer
	if err := convert.EncodeJSON(&buf, record, pretty); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(buf.String()), nil
}

func (s *Server) handlePDFDocumentMetadata(ctx context.Context, request mcp.CallToolRequest) (
	*mcp.CallToolResult, error,
) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	meta, err := s.converter.Metadata(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText, err := marshalJSON(meta)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handlePDFPageContent(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	// JSON numbers arrive as float64
	number, ok := request.GetArguments()["page"].(float64)
	if !ok {
		return mcp.NewToolResultError("page must be a number"), nil
	}

	page, err := s.converter.Page(path, int(number))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText, err := marshalJSON(page)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handlePDFValidateFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	// A failed check is a verdict, not a tool error
	var responseText string
	if err := s.converter.ValidateFile(path); err != nil {
		responseText = fmt.Sprintf("PDF validation failed for %s: %s", path, err)
	} else {
		responseText = fmt.Sprintf("PDF file %s is valid and readable", path)
	}

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handlePDFServiceInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	info := s.converter.ServiceInfo(s.config.ServerName, s.config.Version, s.config.MaxFileSize)

	responseText := s.formatServiceInfo(info)
	return mcp.NewToolResultText(responseText), nil
}

// marshalJSON renders tool payloads with the same conventions as the
// converter output: two-space indent, no HTML escaping.
func marshalJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Formatting methods
func (s *Server) formatServiceInfo(info *convert.ServiceInfo) string {
	text := fmt.Sprintf("📋 %s v%s - Service Information\n", info.ServerName, info.Version)
	text += fmt.Sprintf("📏 Max File Size: %d MB\n", info.MaxFileSize/(1024*1024))

	// Available tools
	text += "\n🛠️  Available Tools:\n"
	for _, tool := range info.AvailableTools {
		text += fmt.Sprintf("\n• %s\n", tool.Name)
		text += fmt.Sprintf("  Description: %s\n", tool.Description)
		text += fmt.Sprintf("  Usage: %s\n", tool.Usage)
		text += fmt.Sprintf("  Parameters: %s\n", tool.Parameters)
	}

	// Usage guidance
	text += "\n" + info.UsageGuidance

	return text
}

// Run starts the MCP server over standard I/O
func (s *Server) Run(ctx context.Context) error {
	return s.runStdioMode(ctx)
}

// runStdioMode runs the server in stdio mode
func (s *Server) runStdioMode(_ context.Context) error {
	if s.config.IsDebug() {
		log.Printf("Starting PDF to JSON server in stdio mode")
		log.Printf("Max file size: %d bytes", s.config.MaxFileSize)
	}

	// Use the mark3labs/mcp-go server.ServeStdio function
	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}
