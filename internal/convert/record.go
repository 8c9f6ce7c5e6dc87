package convert

// DocumentRecord is the JSON-serializable result of one conversion.
type DocumentRecord struct {
	Metadata map[string]string `json:"metadata"`
	Pages    []PageRecord      `json:"pages"`
	Stats    DocumentStats     `json:"stats"`
}

// PageRecord holds the extracted payload of a single page.
type PageRecord struct {
	PageNumber int         `json:"page_number"`
	Dimensions Dimensions  `json:"dimensions"`
	Content    PageContent `json:"content"`
}

// Dimensions is the page size in PDF points.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// PageContent is the extracted content of one page. Text is always present
// (empty string when nothing was extracted), Tables is never null, and
// Layout is an empty object for pages with no extractable words.
type PageContent struct {
	Text   string             `json:"text"`
	Tables []TableRecord      `json:"tables"`
	Images bool               `json:"images"`
	Layout map[string]float64 `json:"layout"`
}

// TableRecord wraps one detected table grid. Cells are strings or null,
// exactly as produced by table detection.
type TableRecord struct {
	Data [][]*string `json:"data"`
}

// DocumentStats aggregates counters over all pages. TotalWords counts
// whitespace-delimited tokens of the page texts, which is deliberately a
// different tokenization from the per-page layout word_count.
type DocumentStats struct {
	TotalPages int `json:"total_pages"`
	TotalWords int `json:"total_words"`
}
