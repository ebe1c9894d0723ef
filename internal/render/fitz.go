package render

import (
	"fmt"
	"image"

	"github.com/gen2brain/go-fitz"
)

// FitzRenderer renders through MuPDF via go-fitz (requires CGo)
type FitzRenderer struct{}

// NewFitzRenderer creates a new Fitz-based renderer
func NewFitzRenderer() *FitzRenderer {
	return &FitzRenderer{}
}

// Open loads a PDF document with go-fitz
func (r *FitzRenderer) Open(path string) (Document, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open PDF document: %w", err)
	}
	return &fitzDocument{doc: doc}, nil
}

// Close is a no-op; documents are closed individually
func (r *FitzRenderer) Close() error {
	return nil
}

type fitzDocument struct {
	doc *fitz.Document
}

func (d *fitzDocument) NumPages() int {
	return d.doc.NumPage()
}

// Render scales by zoom through the DPI argument; MuPDF maps dpi/72 to the page matrix.
func (d *fitzDocument) Render(index int, zoom float64) (image.Image, error) {
	img, err := d.doc.ImageDPI(index, BaseDPI*zoom)
	if err != nil {
		return nil, fmt.Errorf("unable to render page %d: %w", index, err)
	}
	return img, nil
}

func (d *fitzDocument) Close() error {
	return d.doc.Close()
}
