package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jackzampolin/pdfedit/internal/config"
	"github.com/jackzampolin/pdfedit/internal/home"
	"github.com/jackzampolin/pdfedit/internal/logging"
	"github.com/jackzampolin/pdfedit/internal/output"
	"github.com/jackzampolin/pdfedit/internal/pdfops"
	"github.com/jackzampolin/pdfedit/internal/render"
	"github.com/jackzampolin/pdfedit/internal/shell"
	"github.com/jackzampolin/pdfedit/internal/svcctx"
	"github.com/jackzampolin/pdfedit/version"
)

// skipServices marks commands that run without loading config.
const skipServices = "skip-services"

var (
	cfgFile      string
	homeDir      string
	outputFormat string
	logLevel     string
)

// active holds the services of the running command so they can be closed on exit.
var active *svcctx.Services

var rootCmd = &cobra.Command{
	Use:   "pdfedit",
	Short: "Extract, rasterize and merge PDF files",
	Long: `pdfedit extracts pages from a PDF, converts PDF pages to PNG images,
and merges a directory of PDFs into one file.

Run without arguments for the interactive prompt:
  1  extract one page (or -1 for every page) into split_pdf/
  2  convert every page to PNG into pdf_images/
  3  merge the PDFs of a directory into merge_pdf/merge.pdf

Examples:
  pdfedit                           # interactive
  pdfedit extract book.pdf --page 3 # writes split_pdf/pdf_2.pdf
  pdfedit images book.pdf
  pdfedit merge ./chapters`,
	Version:       version.GitRelease,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		svcctx.LoggerFrom(ctx).Debug("starting interactive session")
		sh := shell.New(cmd.InOrStdin(), cmd.OutOrStdout())
		_, err := sh.Run(ctx, svcctx.EditorFrom(ctx))
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.pdfedit/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "pdfedit home directory (default: ~/.pdfedit)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", string(output.DefaultFormat), "result output format: yaml or json",
	)
	rootCmd.PersistentFlags().StringVar(
		&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)",
	)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if cmd.Annotations[skipServices] == "true" {
			return nil
		}
		svc, err := buildServices()
		if err != nil {
			return err
		}
		active = svc
		cmd.SetContext(svcctx.WithServices(cmd.Context(), svc))
		return nil
	}

	cobra.OnFinalize(func() {
		if active != nil && active.Renderer != nil {
			active.Renderer.Close()
		}
	})

	rootCmd.AddCommand(versionCmd)
}

// buildServices loads config and wires the logger, renderer and editor.
func buildServices() (*svcctx.Services, error) {
	h, err := home.New(homeDir)
	if err != nil {
		return nil, err
	}

	// PDFEDIT_* variables may come from .env files; the real environment wins
	_ = godotenv.Load(".env")
	_ = godotenv.Load(filepath.Join(h.Path(), ".env"))

	mgr, err := config.NewManager(cfgFile, h.Path())
	if err != nil {
		return nil, err
	}
	cfg := mgr.Get()

	level := cfg.Log.Level
	if logLevel != "" {
		level = logLevel
	}
	logger, err := logging.New(os.Stderr, level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}
	if used := mgr.ConfigFileUsed(); used != "" {
		logger.Debug("loaded config", "file", used)
	}
	if !h.Exists() {
		logger.Debug("home directory not found, using defaults", "home", h.Path())
	}

	renderer, err := render.New(cfg.Render.Backend)
	if err != nil {
		return nil, err
	}

	order, err := pdfops.ParseMergeOrder(cfg.Merge.Order)
	if err != nil {
		return nil, err
	}

	editor := pdfops.New(pdfops.Config{
		Validation: cfg.PDF.Validation,
		Order:      order,
		Renderer:   renderer,
		Logger:     logger,
	})

	return &svcctx.Services{
		Config:   cfg,
		Logger:   logger,
		Home:     h,
		Renderer: renderer,
		Editor:   editor,
	}, nil
}

// writeResult prints a command result in the --output format.
func writeResult(cmd *cobra.Command, res any) error {
	format, err := output.ParseFormat(outputFormat)
	if err != nil {
		return err
	}
	if err := output.Write(cmd.OutOrStdout(), format, res); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}
