// Package convert turns PDF documents into structured JSON records. It
// drives the pdf access layer page by page and assembles a DocumentRecord
// holding metadata, per-page content, and document-wide statistics.
package convert

import (
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/docsmith/pdf2json/internal/pdf"
)

// metadataFields is the set of document info fields that make it into the
// record, in output-stable order. Anything else in the info dictionary is
// dropped.
var metadataFields = []string{
	"Title",
	"Author",
	"Subject",
	"Keywords",
	"Creator",
	"Producer",
	"CreationDate",
	"ModDate",
}

// Converter produces DocumentRecords from PDF files.
type Converter struct {
	lib       pdf.Library
	validator *pdf.Validator
}

// NewConverter creates a Converter backed by the given PDF library.
// maxFileSize bounds the size of accepted input files; a non-positive
// value disables the limit.
func NewConverter(lib pdf.Library, maxFileSize int64) *Converter {
	return &Converter{
		lib:       lib,
		validator: pdf.NewValidator(maxFileSize),
	}
}

// ExtractMetadata reads the recognized info fields from an open document.
// Fields absent from the document are absent from the result, so the map
// may be empty but is never nil. Date fields matching the PDF date form
// are normalized to ISO-8601; all other values pass through byte-exact.
func (c *Converter) ExtractMetadata(doc pdf.Document) map[string]string {
	raw := doc.Metadata()
	meta := make(map[string]string)
	for _, field := range metadataFields {
		value, ok := raw[field]
		if !ok {
			continue
		}
		if strings.Contains(field, "Date") {
			value, _ = NormalizeDate(value)
		}
		meta[field] = value
	}
	return meta
}

// ExtractPageContent pulls text, tables, images, and layout statistics from
// a single page. Extraction errors from the underlying page propagate
// unchanged in cause.
func (c *Converter) ExtractPageContent(page pdf.Page) (PageContent, error) {
	content := PageContent{
		Tables: []TableRecord{},
		Layout: map[string]float64{},
	}

	text, err := page.Text()
	if err != nil {
		return PageContent{}, fmt.Errorf("extract text: %w", err)
	}
	content.Text = text

	grids, err := page.Tables()
	if err != nil {
		return PageContent{}, fmt.Errorf("detect tables: %w", err)
	}
	for _, grid := range grids {
		content.Tables = append(content.Tables, TableRecord{Data: grid})
	}

	content.Images = page.HasImages()

	words, err := page.Words()
	if err != nil {
		return PageContent{}, fmt.Errorf("extract words: %w", err)
	}
	if len(words) > 0 {
		runes := 0
		for _, w := range words {
			runes += utf8.RuneCountInString(w.Text)
		}
		content.Layout["word_count"] = float64(len(words))
		content.Layout["avg_word_length"] = float64(runes) / float64(len(words))
	}

	return content, nil
}

// Convert processes the PDF at path into a complete DocumentRecord. The
// conversion is whole-or-nothing: any failure on any page abandons the
// entire document. Failures are logged and reported; a nil record always
// comes with a non-nil error.
func (c *Converter) Convert(path string) (*DocumentRecord, error) {
	record, err := c.convert(path)
	if err != nil {
		log.Printf("Error processing PDF: %v", err)
		return nil, err
	}
	return record, nil
}

func (c *Converter) convert(path string) (*DocumentRecord, error) {
	if err := c.validator.ValidateFile(path); err != nil {
		return nil, err
	}

	doc, err := c.lib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer doc.Close()

	record := &DocumentRecord{
		Metadata: c.ExtractMetadata(doc),
		Pages:    make([]PageRecord, 0, doc.PageCount()),
	}

	totalWords := 0
	for n := 1; n <= doc.PageCount(); n++ {
		page, err := doc.Page(n)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", n, err)
		}
		content, err := c.ExtractPageContent(page)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", n, err)
		}
		record.Pages = append(record.Pages, PageRecord{
			PageNumber: n,
			Dimensions: Dimensions{Width: page.Width(), Height: page.Height()},
			Content:    content,
		})
		totalWords += len(strings.Fields(content.Text))
	}

	record.Stats = DocumentStats{
		TotalPages: len(record.Pages),
		TotalWords: totalWords,
	}
	return record, nil
}

// Metadata opens the PDF at path and returns just its recognized metadata.
func (c *Converter) Metadata(path string) (map[string]string, error) {
	if err := c.validator.ValidateFile(path); err != nil {
		return nil, err
	}
	doc, err := c.lib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer doc.Close()
	return c.ExtractMetadata(doc), nil
}

// Page opens the PDF at path and extracts a single page record. The page
// number is 1-indexed.
func (c *Converter) Page(path string, number int) (*PageRecord, error) {
	if err := c.validator.ValidateFile(path); err != nil {
		return nil, err
	}
	doc, err := c.lib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer doc.Close()

	page, err := doc.Page(number)
	if err != nil {
		return nil, err
	}
	content, err := c.ExtractPageContent(page)
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", number, err)
	}
	return &PageRecord{
		PageNumber: number,
		Dimensions: Dimensions{Width: page.Width(), Height: page.Height()},
		Content:    content,
	}, nil
}

// ValidateFile checks that path points to a readable PDF candidate without
// opening it as a document.
func (c *Converter) ValidateFile(path string) error {
	return c.validator.ValidateFile(path)
}
