package render

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/jackzampolin/pdfedit/internal/testutil"
)

func TestNew(t *testing.T) {
	tests := []struct {
		backend string
		wantErr bool
	}{
		{BackendFitz, false},
		{"", false},
		{BackendPDFium, false},
		{"ghostscript", true},
	}

	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			r, err := New(tt.backend)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownBackend) {
					t.Fatalf("expected ErrUnknownBackend, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if err := r.Close(); err != nil {
				t.Errorf("Close failed: %v", err)
			}
		})
	}
}

func TestFlatten(t *testing.T) {
	src := image.NewNRGBA(image.Rect(5, 5, 9, 7))
	// Top-left pixel fully transparent, next one opaque red
	src.SetNRGBA(5, 5, color.NRGBA{})
	src.SetNRGBA(6, 5, color.NRGBA{R: 255, A: 255})

	flat := Flatten(src)

	if flat.Bounds() != image.Rect(0, 0, 4, 2) {
		t.Fatalf("unexpected bounds: %v", flat.Bounds())
	}
	if !flat.Opaque() {
		t.Error("flattened image must be opaque")
	}
	if got := flat.RGBAAt(0, 0); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("transparent pixel should become white, got %v", got)
	}
	if got := flat.RGBAAt(1, 0); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("opaque pixel should be kept, got %v", got)
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.png")
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))

	if err := SavePNG(src, path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open PNG: %v", err)
	}
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("failed to decode PNG: %v", err)
	}
	if cfg.Width != 3 || cfg.Height != 2 {
		t.Errorf("unexpected size %dx%d", cfg.Width, cfg.Height)
	}
	// Opaque RGBA images are encoded without an alpha channel
	if cfg.ColorModel != color.RGBAModel {
		t.Errorf("expected RGB PNG without alpha, got %T", cfg.ColorModel)
	}
}

func TestFitzRenderer(t *testing.T) {
	pdfPath := testutil.WritePDFSizes(t, filepath.Join(t.TempDir(), "letter.pdf"),
		[]testutil.PageSize{testutil.Letter, testutil.Letter})

	r := NewFitzRenderer()
	defer r.Close()

	doc, err := r.Open(pdfPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer doc.Close()

	if doc.NumPages() != 2 {
		t.Fatalf("expected 2 pages, got %d", doc.NumPages())
	}

	img, err := doc.Render(0, 1.33333333)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if img.Bounds().Dx() != 816 || img.Bounds().Dy() != 1056 {
		t.Errorf("expected 816x1056, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestPDFiumRenderer(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping WebAssembly renderer in short mode")
	}

	pdfPath := testutil.WritePDFSizes(t, filepath.Join(t.TempDir(), "letter.pdf"),
		[]testutil.PageSize{testutil.Letter})

	r := NewPDFiumRenderer()
	defer r.Close()

	doc, err := r.Open(pdfPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer doc.Close()

	if doc.NumPages() != 1 {
		t.Fatalf("expected 1 page, got %d", doc.NumPages())
	}

	img, err := doc.Render(0, 1.33333333)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if img.Bounds().Dx() != 816 || img.Bounds().Dy() != 1056 {
		t.Errorf("expected 816x1056, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
}
