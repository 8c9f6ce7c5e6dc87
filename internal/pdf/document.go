// Package pdf provides the PDF-access layer the converter consumes: scoped
// document open, metadata, and per-page text, word, table, and image
// extraction. It combines two backends: ledongthuc/pdf for content access
// and pdfcpu for structural validation, page geometry, and image detection.
package pdf

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// NewLibrary returns the file-backed Library implementation.
func NewLibrary() Library {
	return library{}
}

type library struct{}

func (library) Open(path string) (Document, error) {
	return Open(path)
}

// Open opens the PDF at path with both backends. The returned document
// holds two file handles until Close.
func Open(path string) (Document, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	cf, err := os.Open(path)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	cleanup := func() {
		f.Close()
		cf.Close()
	}

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadValidateAndOptimize(cf, conf)
	if err != nil {
		cleanup()
		return nil, fmt.Errorf("failed to read PDF structure: %w", err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		cleanup()
		return nil, fmt.Errorf("failed to resolve page count: %w", err)
	}
	if reader.NumPage() != ctx.PageCount {
		cleanup()
		return nil, fmt.Errorf("inconsistent page count: %d vs %d", reader.NumPage(), ctx.PageCount)
	}

	dims, err := ctx.PageDims()
	if err != nil {
		cleanup()
		return nil, fmt.Errorf("failed to read page dimensions: %w", err)
	}

	return &document{
		path:    path,
		file:    f,
		reader:  reader,
		ctxFile: cf,
		ctx:     ctx,
		dims:    dims,
		meta:    readInfoDict(reader),
	}, nil
}

type document struct {
	path    string
	file    *os.File
	reader  *pdf.Reader
	ctxFile *os.File
	ctx     *model.Context
	dims    []types.Dim
	meta    map[string]string
}

func (d *document) Metadata() map[string]string {
	return d.meta
}

func (d *document) PageCount() int {
	return d.reader.NumPage()
}

func (d *document) Page(number int) (Page, error) {
	if number < 1 || number > d.reader.NumPage() {
		return nil, fmt.Errorf("invalid page number %d (document has %d pages)", number, d.reader.NumPage())
	}

	p := d.reader.Page(number)
	if p.V.IsNull() {
		return nil, fmt.Errorf("page %d has no page object", number)
	}

	var dim types.Dim
	if number-1 < len(d.dims) {
		dim = d.dims[number-1]
	}

	return &docPage{doc: d, p: p, number: number, dim: dim}, nil
}

func (d *document) Close() error {
	var firstErr error
	if d.file != nil {
		if err := d.file.Close(); err != nil {
			firstErr = err
		}
		d.file = nil
	}
	if d.ctxFile != nil {
		if err := d.ctxFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		d.ctxFile = nil
	}
	return firstErr
}

type docPage struct {
	doc    *document
	p      pdf.Page
	number int
	dim    types.Dim

	words     []Word
	wordsErr  error
	wordsDone bool
}

func (p *docPage) Number() int {
	return p.number
}

func (p *docPage) Width() float64 {
	return p.dim.Width
}

func (p *docPage) Height() float64 {
	return p.dim.Height
}

// Text extracts the plain text of the page. The underlying parser panics
// on some malformed content streams; those surface as errors.
func (p *docPage) Text() (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("text extraction failed on page %d: %v", p.number, r)
		}
	}()

	// A page without a content stream is empty, not broken.
	if p.p.V.Key("Contents").IsNull() {
		return "", nil
	}

	text, err = p.p.GetPlainText(nil)
	if err != nil {
		return "", fmt.Errorf("text extraction failed on page %d: %w", p.number, err)
	}
	return text, nil
}

// Words extracts positioned words, computing them once per page handle.
func (p *docPage) Words() ([]Word, error) {
	if p.wordsDone {
		return p.words, p.wordsErr
	}
	p.words, p.wordsErr = p.extractWords()
	p.wordsDone = true
	return p.words, p.wordsErr
}

// Tables groups the page words into aligned cell grids.
func (p *docPage) Tables() ([]Grid, error) {
	words, err := p.Words()
	if err != nil {
		return nil, err
	}
	return detectTables(words), nil
}
