package descriptions

// Tool descriptions with practical examples and use cases

const (
	PDFConvertFileDescription = `Convert a complete PDF document into structured JSON.

**When to use:** Need the full document as machine-readable data: metadata, per-page text, detected tables, image flags, and word statistics in one pass.

**Why it's useful:** Produces a single self-contained record that downstream systems can store, index, or transform without touching the PDF again.

**Examples:**
• Archive ingestion: "Convert annual-report.pdf to JSON for the document store"
• Data extraction: "Convert invoice-2024-001.pdf and pull line items from its tables"
• Search indexing: "Convert manual.pdf so each page can be indexed separately"

**Best practices:** Conversion is whole-or-nothing; a failure on any page fails the document. Validate files first in automated pipelines.`

	PDFDocumentMetadataDescription = `Read document metadata from a PDF without extracting page content.

**When to use:** Need title, author, creation date, or producer information for cataloging, filing, or routing decisions.

**Why it's useful:** Much cheaper than a full conversion when only document properties matter. Date fields are normalized to ISO-8601 where possible.

**Examples:**
• Document filing: "Get author and creation date from legal-contract.pdf"
• Audit trail: "Read metadata from signed-agreement.pdf for compliance records"
• Routing: "Check the producer of exported-report.pdf to pick a processing path"

**Best practices:** Only standard info fields are returned; absent fields are simply omitted rather than returned empty.`

	PDFPageContentDescription = `Extract the content of a single PDF page as structured data.

**When to use:** Need one page's text, tables, image flag, and layout statistics without converting the whole document.

**Why it's useful:** Keeps responses small for large documents and lets callers walk a document page by page.

**Examples:**
• Spot checking: "Get page 3 of quarterly-report.pdf to inspect the summary table"
• Incremental processing: "Extract pages of manual.pdf one at a time"
• Preview generation: "Get the first page of brochure.pdf for a text preview"

**Best practices:** Pages are numbered from 1. Out-of-range page numbers are rejected with the document's actual page count.`

	PDFValidateFileDescription = `Verify a PDF file is present and readable before processing.

**When to use:** Before converting unknown files, especially in automated workflows or when handling user uploads.

**Why it's useful:** Catches missing, empty, or oversized files early with clear messages instead of mid-conversion failures.

**Examples:**
• Upload verification: "Check user-uploaded contract.pdf before converting"
• Batch safety: "Validate each file in the queue before bulk conversion"
• Quality control: "Verify exported-report.pdf is usable before archiving"

**Best practices:** Run this first in automated workflows; it checks the file on disk, not the PDF structure.`

	PDFServiceInfoDescription = `Get service configuration and the catalog of available tools.

**When to use:** Starting a session, debugging tool availability, or discovering usage and limits.

**Why it's useful:** Reports the configured file size limit and describes every tool with its parameters, so clients can adapt without hardcoding.

**Examples:**
• Session setup: "Get service info to discover available PDF tools"
• Troubleshooting: "Check the maximum accepted file size"

**Best practices:** Useful as the first call when integrating a new client.`
)

// ToolDescriptions maps tool names to their descriptions
var ToolDescriptions = map[string]string{
	"pdf_convert_file":      PDFConvertFileDescription,
	"pdf_document_metadata": PDFDocumentMetadataDescription,
	"pdf_page_content":      PDFPageContentDescription,
	"pdf_validate_file":     PDFValidateFileDescription,
	"pdf_service_info":      PDFServiceInfoDescription,
}

// GetToolDescription returns the description for a specific tool
func GetToolDescription(toolName string) string {
	if desc, exists := ToolDescriptions[toolName]; exists {
		return desc
	}
	return "Tool description not available"
}

// GetAllToolNames returns a list of all available tool names
func GetAllToolNames() []string {
	var names []string
	for name := range ToolDescriptions {
		names = append(names, name)
	}
	return names
}
