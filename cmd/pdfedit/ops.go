package main

import (
	"github.com/spf13/cobra"

	"github.com/jackzampolin/pdfedit/internal/pdfops"
	"github.com/jackzampolin/pdfedit/internal/svcctx"
)

var (
	extractPage int
	mergeOrder  string
)

var extractCmd = &cobra.Command{
	Use:   "extract <pdf>",
	Short: "Extract one page, or every page, into split_pdf/",
	Long: `Extract pages of a PDF into single-page PDFs.

Output goes to split_pdf/ next to the source, named by 0-based page
index (pdf_0.pdf is page 1). --page is 1-based; a negative value
extracts every page.

Examples:
  pdfedit extract book.pdf            # every page
  pdfedit extract book.pdf --page 12  # writes split_pdf/pdf_11.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		svcctx.LoggerFrom(ctx).Debug("extract requested", "source", args[0], "page", extractPage)
		res, err := svcctx.EditorFrom(ctx).Extract(ctx, args[0], extractPage)
		if err != nil {
			return err
		}
		return writeResult(cmd, res)
	},
}

var imagesCmd = &cobra.Command{
	Use:   "images <pdf>",
	Short: "Render every page to PNG into pdf_images/",
	Long: `Render every page of a PDF to a PNG at ~96 dpi (zoom 1.33333333).

Output goes to pdf_images/ next to the source as pdf_images_<index>.png.
Images have no alpha channel. The rasterizer is chosen by render.backend
in the config (fitz or pdfium).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		res, err := svcctx.EditorFrom(ctx).ConvertToImages(ctx, args[0])
		if err != nil {
			return err
		}
		return writeResult(cmd, res)
	},
}

var mergeCmd = &cobra.Command{
	Use:   "merge <dir>",
	Short: "Merge the PDFs of a directory into merge_pdf/merge.pdf",
	Long: `Merge every *.pdf file directly inside a directory.

Files are appended in lexical file name order by default, so page10.pdf
comes before page2.pdf. --order numeric sorts name-<n>.pdf files by n.
The result is written to merge_pdf/merge.pdf inside the directory.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		svc := svcctx.ServicesFrom(ctx)

		editor := svc.Editor
		if cmd.Flags().Changed("order") {
			order, err := pdfops.ParseMergeOrder(mergeOrder)
			if err != nil {
				return err
			}
			editor = pdfops.New(pdfops.Config{
				Validation: svc.Config.PDF.Validation,
				Order:      order,
				Renderer:   svc.Renderer,
				Logger:     svc.Logger,
			})
		}

		res, err := editor.Merge(ctx, args[0])
		if err != nil {
			return err
		}
		return writeResult(cmd, res)
	},
}

func init() {
	extractCmd.Flags().IntVar(&extractPage, "page", pdfops.AllPages, "1-based page to extract, negative for every page")
	mergeCmd.Flags().StringVar(&mergeOrder, "order", "lexical", "merge order: lexical or numeric (overrides config)")

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(imagesCmd)
	rootCmd.AddCommand(mergeCmd)
}
