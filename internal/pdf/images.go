package pdf

import (
	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
)

// HasImages reports whether the page embeds at least one image XObject.
// The optimized pdfcpu context tracks image objects per page; when it is
// unavailable the page resource dictionary is walked directly.
func (p *docPage) HasImages() bool {
	if p.doc.ctx != nil && p.doc.ctx.Optimize != nil {
		return len(pdfcpu.ImageObjNrs(p.doc.ctx, p.number)) > 0
	}
	return hasImageXObject(p.p)
}

func hasImageXObject(page pdf.Page) (found bool) {
	defer func() {
		if rec := recover(); rec != nil {
			found = false
		}
	}()

	resources := page.V.Key("Resources")
	if resources.Kind() != pdf.Dict {
		return false
	}
	xobjects := resources.Key("XObject")
	if xobjects.Kind() != pdf.Dict {
		return false
	}
	for _, name := range xobjects.Keys() {
		if xobjects.Key(name).Key("Subtype").Name() == "Image" {
			return true
		}
	}
	return false
}
