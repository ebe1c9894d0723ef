package svcctx

import (
	"context"
	"log/slog"
	"testing"

	"github.com/jackzampolin/pdfedit/internal/config"
	"github.com/jackzampolin/pdfedit/internal/pdfops"
)

func TestServicesFrom(t *testing.T) {
	t.Run("empty context", func(t *testing.T) {
		ctx := context.Background()
		if ServicesFrom(ctx) != nil {
			t.Error("expected nil services")
		}
		if EditorFrom(ctx) != nil {
			t.Error("expected nil editor")
		}
		if ConfigFrom(ctx) != nil {
			t.Error("expected nil config")
		}
		if LoggerFrom(ctx) != slog.Default() {
			t.Error("expected default logger")
		}
	})

	t.Run("attached services", func(t *testing.T) {
		logger := slog.New(slog.DiscardHandler)
		ed := pdfops.New(pdfops.Config{Logger: logger})
		cfg := config.DefaultConfig()

		ctx := WithServices(context.Background(), &Services{
			Config: cfg,
			Logger: logger,
			Editor: ed,
		})

		if EditorFrom(ctx) != ed {
			t.Error("editor not found")
		}
		if ConfigFrom(ctx) != cfg {
			t.Error("config not found")
		}
		if LoggerFrom(ctx) != logger {
			t.Error("logger not found")
		}
	})
}
