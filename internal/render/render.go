// Package render rasterizes PDF pages through MuPDF (go-fitz) or PDFium (go-pdfium).
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/disintegration/imaging"
)

// Backend names accepted by New.
const (
	BackendFitz   = "fitz"
	BackendPDFium = "pdfium"
)

// BaseDPI is the resolution of a page rendered at zoom 1.
const BaseDPI = 72.0

// ErrUnknownBackend is returned by New for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown render backend")

// Renderer opens PDF documents for rasterization.
type Renderer interface {
	// Open loads the document at path.
	Open(path string) (Document, error)

	// Close releases resources held by the renderer.
	Close() error
}

// Document is an open PDF that can render its pages.
type Document interface {
	// NumPages returns the number of pages in the document.
	NumPages() int

	// Render rasterizes the page at 0-based index, scaling both axes by zoom.
	Render(index int, zoom float64) (image.Image, error)

	// Close releases the document.
	Close() error
}

// New creates a Renderer for the named backend.
func New(backend string) (Renderer, error) {
	switch backend {
	case BackendFitz, "":
		return NewFitzRenderer(), nil
	case BackendPDFium:
		return NewPDFiumRenderer(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, backend)
	}
}

// Flatten composites img over opaque white, dropping the alpha channel.
func Flatten(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Over)
	return dst
}

// SavePNG flattens img and writes it to path as an opaque PNG.
func SavePNG(img image.Image, path string) error {
	if err := imaging.Save(Flatten(img), path, imaging.PNGCompressionLevel(png.DefaultCompression)); err != nil {
		return fmt.Errorf("failed to write PNG %s: %w", path, err)
	}
	return nil
}
