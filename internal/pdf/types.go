package pdf

// Word is a single extracted word with its horizontal extent on the page.
// Coordinates are in PDF user space (points, origin bottom-left).
type Word struct {
	Text string
	X0   float64
	X1   float64
	Y    float64
}

// Grid is a detected table as rows of cells. A nil cell marks a column
// position with no content in that row.
type Grid [][]*string

// Document is an open PDF ready for extraction. Close releases the
// underlying file handles; all other methods are invalid afterwards.
type Document interface {
	// Metadata returns the document information dictionary as a
	// string-keyed mapping. Non-string entries are omitted.
	Metadata() map[string]string
	// PageCount returns the number of pages in the document.
	PageCount() int
	// Page returns the 1-indexed page handle.
	Page(number int) (Page, error)
	// Close releases the document resources.
	Close() error
}

// Page exposes per-page extraction capabilities.
type Page interface {
	// Number returns the 1-indexed page number.
	Number() int
	// Width returns the page width in points.
	Width() float64
	// Height returns the page height in points.
	Height() float64
	// Text extracts the plain text of the page.
	Text() (string, error)
	// Words extracts positioned words in reading order.
	Words() ([]Word, error)
	// Tables detects tabular regions and returns their cell grids.
	Tables() ([]Grid, error)
	// HasImages reports whether the page embeds at least one image.
	HasImages() bool
}

// Library opens PDF documents for extraction.
type Library interface {
	Open(path string) (Document, error)
}
