// Package pdfops implements the page extraction, image conversion and merge
// operations on top of pdfcpu and the render backends.
package pdfops

import (
	"log/slog"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/jackzampolin/pdfedit/internal/render"
)

// Operation names used in results and logs.
const (
	OpExtract = "extract"
	OpImages  = "images"
	OpMerge   = "merge"
)

// Zoom scales rendered pages on both axes: 72 dpi * 1.33333333 ≈ 96 dpi,
// so a 612x792 pt page becomes 816x1056 px.
const Zoom = 1.33333333

// AllPages asks Extract for every page. Any negative page number means the same.
const AllPages = -1

// Validation modes for reading PDFs.
const (
	ValidationRelaxed = "relaxed"
	ValidationStrict  = "strict"
)

// Result describes the files an operation wrote.
type Result struct {
	Operation string   `json:"operation" yaml:"operation"`
	RunID     string   `json:"run_id" yaml:"run_id"`
	Source    string   `json:"source" yaml:"source"`
	OutputDir string   `json:"output_dir" yaml:"output_dir"`
	Files     []string `json:"files" yaml:"files"`
	Pages     int      `json:"pages" yaml:"pages"`
}

// Config configures an Editor.
type Config struct {
	Validation string          // "relaxed" (default) or "strict"
	Order      MergeOrder      // merge ordering, default OrderLexical
	Renderer   render.Renderer // required for ConvertToImages
	Logger     *slog.Logger
}

// Editor runs PDF operations. It holds no state between calls.
type Editor struct {
	validation string
	order      MergeOrder
	renderer   render.Renderer
	logger     *slog.Logger
}

// New creates an Editor.
func New(cfg Config) *Editor {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	order := cfg.Order
	if order == "" {
		order = OrderLexical
	}

	return &Editor{
		validation: cfg.Validation,
		order:      order,
		renderer:   cfg.Renderer,
		logger:     logger,
	}
}

// newConf returns a fresh pdfcpu configuration per operation.
func (e *Editor) newConf() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	if e.validation == ValidationStrict {
		conf.ValidationMode = model.ValidationStrict
	} else {
		conf.ValidationMode = model.ValidationRelaxed
	}
	return conf
}
