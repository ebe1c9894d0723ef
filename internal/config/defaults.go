package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

// setDefaults seeds viper with the leaf keys of DefaultConfig.
// Leaf keys keep AllSettings a plain map tree for schema validation.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("render.backend", d.Render.Backend)
	v.SetDefault("pdf.validation", d.PDF.Validation)
	v.SetDefault("merge.order", d.Merge.Order)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// WriteDefault writes the default configuration to the specified path.
func WriteDefault(path string) error {
	cfg := DefaultConfig()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# pdfedit configuration
# Every key can be overridden with a PDFEDIT_ environment variable,
# e.g. PDFEDIT_RENDER_BACKEND=pdfium or PDFEDIT_LOG_LEVEL=debug.
# render.backend: fitz | pdfium
# pdf.validation: relaxed | strict
# merge.order:    lexical | numeric
# log.level:      debug | info | warn | error
# log.format:     text | json

`)
	return os.WriteFile(path, append(header, data...), 0o644)
}
