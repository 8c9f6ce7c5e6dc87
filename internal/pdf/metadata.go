package pdf

import (
	"github.com/ledongthuc/pdf"
)

// readInfoDict extracts the document information dictionary as raw strings.
// Navigation of the object tree can panic on malformed documents; the
// recover keeps metadata best-effort and never fails an open.
func readInfoDict(r *pdf.Reader) (meta map[string]string) {
	meta = make(map[string]string)

	defer func() {
		if rec := recover(); rec != nil {
			meta = map[string]string{}
		}
	}()

	trailer := r.Trailer()
	if trailer.IsNull() {
		return meta
	}

	info := trailer.Key("Info")
	if info.IsNull() || info.Kind() != pdf.Dict {
		return meta
	}

	for _, key := range info.Keys() {
		if value, ok := infoString(info.Key(key)); ok {
			meta[key] = value
		}
	}
	return meta
}

// infoString renders a metadata value as text. Only string and name
// objects carry usable text; other kinds are dropped.
func infoString(v pdf.Value) (string, bool) {
	switch v.Kind() {
	case pdf.String:
		return v.Text(), true
	case pdf.Name:
		return v.Name(), true
	default:
		return "", false
	}
}
