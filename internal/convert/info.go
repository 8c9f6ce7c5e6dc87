package convert

import (
	"fmt"

	"github.com/docsmith/pdf2json/internal/descriptions"
)

// ServiceInfo describes the running service and its tool catalog.
type ServiceInfo struct {
	ServerName     string     `json:"server_name"`
	Version        string     `json:"version"`
	MaxFileSize    int64      `json:"max_file_size"`
	AvailableTools []ToolInfo `json:"available_tools"`
	UsageGuidance  string     `json:"usage_guidance"`
}

// ToolInfo represents information about an available tool
type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Usage       string `json:"usage"`
	Parameters  string `json:"parameters"`
}

// ServiceInfo builds the service description for the given server identity.
func (c *Converter) ServiceInfo(serverName, version string, maxFileSize int64) *ServiceInfo {
	return &ServiceInfo{
		ServerName:     serverName,
		Version:        version,
		MaxFileSize:    maxFileSize,
		AvailableTools: availableTools(),
		UsageGuidance:  usageGuidance(maxFileSize),
	}
}

func availableTools() []ToolInfo {
	return []ToolInfo{
		{
			Name:        "pdf_convert_file",
			Description: descriptions.GetToolDescription("pdf_convert_file"),
			Usage:       "Use this tool to convert an entire PDF into one structured JSON record.",
			Parameters: "path (required): Full path to the PDF file, " +
				"pretty (optional): Indent the JSON output with two spaces",
		},
		{
			Name:        "pdf_document_metadata",
			Description: descriptions.GetToolDescription("pdf_document_metadata"),
			Usage:       "Use this tool to read document properties without extracting page content.",
			Parameters:  "path (required): Full path to the PDF file",
		},
		{
			Name:        "pdf_page_content",
			Description: descriptions.GetToolDescription("pdf_page_content"),
			Usage:       "Use this tool to extract a single page when the whole document is not needed.",
			Parameters: "path (required): Full path to the PDF file, " +
				"page (required): 1-indexed page number",
		},
		{
			Name:        "pdf_validate_file",
			Description: descriptions.GetToolDescription("pdf_validate_file"),
			Usage:       "Use this tool to check a file is present and within limits before converting it.",
			Parameters:  "path (required): Full path to the PDF file",
		},
		{
			Name:        "pdf_service_info",
			Description: descriptions.GetToolDescription("pdf_service_info"),
			Usage:       "Use this tool to get service configuration and available capabilities.",
			Parameters:  "No parameters required",
		},
	}
}

func usageGuidance(maxFileSize int64) string {
	maxFileSizeMB := maxFileSize / (1024 * 1024)

	return fmt.Sprintf(`PDF to JSON Service Usage Guide:

1. VALIDATE FILES:
   - Use 'pdf_validate_file' to check a file is readable before processing

2. CONVERT DOCUMENTS:
   - Use 'pdf_convert_file' for the complete document record
   - Conversion is whole-or-nothing: a failure on any page fails the document

3. TARGETED EXTRACTION:
   - Use 'pdf_document_metadata' when only document properties are needed
   - Use 'pdf_page_content' to walk large documents one page at a time

LIMITS:
   - Maximum file size: %d MB

The record layout is stable: metadata (recognized info fields only),
pages (text, tables, images flag, layout statistics per page), and
stats (total pages and whitespace-token word count).`, maxFileSizeMB)
}
