package render

import (
	"fmt"
	"image"
	"math"
	"os"
	"time"

	"github.com/disintegration/imaging"
	"github.com/klippa-app/go-pdfium"
	"github.com/klippa-app/go-pdfium/references"
	"github.com/klippa-app/go-pdfium/requests"
	"github.com/klippa-app/go-pdfium/webassembly"
)

// PDFiumRenderer renders through PDFium compiled to WebAssembly (pure Go, no CGo).
// The runtime is started on the first Open.
type PDFiumRenderer struct {
	pool     pdfium.Pool
	instance pdfium.Pdfium
}

// NewPDFiumRenderer creates a new PDFium-based renderer
func NewPDFiumRenderer() *PDFiumRenderer {
	return &PDFiumRenderer{}
}

func (r *PDFiumRenderer) init() error {
	if r.instance != nil {
		return nil
	}

	// Single worker: pdfedit renders one page at a time
	pool, err := webassembly.Init(webassembly.Config{
		MinIdle:  1,
		MaxIdle:  1,
		MaxTotal: 1,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize PDFium WebAssembly: %w", err)
	}

	instance, err := pool.GetInstance(time.Second * 30)
	if err != nil {
		pool.Close()
		return fmt.Errorf("failed to get PDFium instance: %w", err)
	}

	r.pool = pool
	r.instance = instance
	return nil
}

// Open loads a PDF document into PDFium
func (r *PDFiumRenderer) Open(path string) (Document, error) {
	if err := r.init(); err != nil {
		return nil, err
	}

	pdfBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read PDF file: %w", err)
	}

	doc, err := r.instance.OpenDocument(&requests.OpenDocument{
		File: &pdfBytes,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to open PDF document: %w", err)
	}

	pageCount, err := r.instance.FPDF_GetPageCount(&requests.FPDF_GetPageCount{
		Document: doc.Document,
	})
	if err != nil {
		r.instance.FPDF_CloseDocument(&requests.FPDF_CloseDocument{Document: doc.Document})
		return nil, fmt.Errorf("unable to get page count: %w", err)
	}

	return &pdfiumDocument{
		instance:  r.instance,
		doc:       doc.Document,
		pageCount: pageCount.PageCount,
	}, nil
}

// Close shuts down the WebAssembly pool
func (r *PDFiumRenderer) Close() error {
	if r.pool != nil {
		r.pool.Close()
		r.pool = nil
	}
	r.instance = nil
	return nil
}

type pdfiumDocument struct {
	instance  pdfium.Pdfium
	doc       references.FPDF_DOCUMENT
	pageCount int
}

func (d *pdfiumDocument) NumPages() int {
	return d.pageCount
}

// Render uses the nearest whole DPI; PDFium only accepts integer resolutions.
func (d *pdfiumDocument) Render(index int, zoom float64) (image.Image, error) {
	pageRender, err := d.instance.RenderPageInDPI(&requests.RenderPageInDPI{
		DPI: int(math.Round(BaseDPI * zoom)),
		Page: requests.Page{
			ByIndex: &requests.PageByIndex{
				Document: d.doc,
				Index:    index,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("unable to render page %d: %w", index, err)
	}
	defer pageRender.Cleanup()

	// Copy out before Cleanup releases the WebAssembly buffer
	return imaging.Clone(pageRender.Result.Image), nil
}

func (d *pdfiumDocument) Close() error {
	_, err := d.instance.FPDF_CloseDocument(&requests.FPDF_CloseDocument{
		Document: d.doc,
	})
	return err
}
