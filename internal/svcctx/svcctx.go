// Package svcctx carries pdfedit's services through a context.
package svcctx

import (
	"context"
	"log/slog"

	"github.com/jackzampolin/pdfedit/internal/config"
	"github.com/jackzampolin/pdfedit/internal/home"
	"github.com/jackzampolin/pdfedit/internal/pdfops"
	"github.com/jackzampolin/pdfedit/internal/render"
)

// Services holds the services built once per command invocation.
type Services struct {
	Config   *config.Config
	Logger   *slog.Logger
	Home     *home.Dir
	Renderer render.Renderer
	Editor   *pdfops.Editor
}

type servicesKey struct{}

// WithServices returns a new context with services attached.
func WithServices(ctx context.Context, s *Services) context.Context {
	return context.WithValue(ctx, servicesKey{}, s)
}

// ServicesFrom extracts the full Services struct from context.
// Returns nil if not present.
func ServicesFrom(ctx context.Context) *Services {
	s, _ := ctx.Value(servicesKey{}).(*Services)
	return s
}

// LoggerFrom extracts the logger from context, falling back to slog.Default.
func LoggerFrom(ctx context.Context) *slog.Logger {
	if s := ServicesFrom(ctx); s != nil && s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// EditorFrom extracts the PDF editor from context.
func EditorFrom(ctx context.Context) *pdfops.Editor {
	if s := ServicesFrom(ctx); s != nil {
		return s.Editor
	}
	return nil
}

// ConfigFrom extracts the loaded configuration from context.
func ConfigFrom(ctx context.Context) *config.Config {
	if s := ServicesFrom(ctx); s != nil {
		return s.Config
	}
	return nil
}
