package config

import (
	"github.com/jackzampolin/pdfedit/internal/pdfops"
	"github.com/jackzampolin/pdfedit/internal/render"
)

// Render backends.
const (
	BackendFitz   = render.BackendFitz
	BackendPDFium = render.BackendPDFium
)

// PDF validation modes.
const (
	ValidationRelaxed = pdfops.ValidationRelaxed
	ValidationStrict  = pdfops.ValidationStrict
)

// Merge orderings.
const (
	OrderLexical = string(pdfops.OrderLexical)
	OrderNumeric = string(pdfops.OrderNumeric)
)

// Config holds pdfedit configuration.
// Stored at: ~/.pdfedit/config.yaml (or ./config.yaml, or --config)
type Config struct {
	Render RenderConfig `mapstructure:"render" yaml:"render" json:"render"`
	PDF    PDFConfig    `mapstructure:"pdf" yaml:"pdf" json:"pdf"`
	Merge  MergeConfig  `mapstructure:"merge" yaml:"merge" json:"merge"`
	Log    LogConfig    `mapstructure:"log" yaml:"log" json:"log"`
}

// RenderConfig selects the rasterizer used for image conversion.
type RenderConfig struct {
	Backend string `mapstructure:"backend" yaml:"backend" json:"backend"` // "fitz" (MuPDF) or "pdfium" (WebAssembly)
}

// PDFConfig configures PDF reading.
type PDFConfig struct {
	Validation string `mapstructure:"validation" yaml:"validation" json:"validation"` // "relaxed" or "strict"
}

// MergeConfig configures merge ordering.
type MergeConfig struct {
	Order string `mapstructure:"order" yaml:"order" json:"order"` // "lexical" or "numeric"
}

// LogConfig configures the slog logger.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level" json:"level"`    // debug, info, warn, error
	Format string `mapstructure:"format" yaml:"format" json:"format"` // text or json
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Render: RenderConfig{Backend: BackendFitz},
		PDF:    PDFConfig{Validation: ValidationRelaxed},
		Merge:  MergeConfig{Order: OrderLexical},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}
