package convert

import (
	"encoding/json"
	"io"
	"log"
	"os"
)

// EncodeJSON writes the record to w as JSON. When pretty is set the output
// is indented with two spaces; otherwise it is compact. HTML escaping is
// off so non-ASCII text and characters like < and & appear literally.
func EncodeJSON(w io.Writer, record *DocumentRecord, pretty bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(record)
}

// SaveAsJSON writes the record to a file at path and reports whether the
// write succeeded. Failures are logged, not returned; callers branch on
// the boolean.
func (c *Converter) SaveAsJSON(record *DocumentRecord, path string, pretty bool) bool {
	f, err := os.Create(path)
	if err != nil {
		log.Printf("Error saving JSON: %v", err)
		return false
	}
	if err := EncodeJSON(f, record, pretty); err != nil {
		f.Close()
		log.Printf("Error saving JSON: %v", err)
		return false
	}
	if err := f.Close(); err != nil {
		log.Printf("Error saving JSON: %v", err)
		return false
	}
	return true
}
