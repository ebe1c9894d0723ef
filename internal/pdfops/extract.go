package pdfops

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Extract writes pages of src as single-page PDFs under split_pdf/ next to src.
//
// A negative page extracts every page in ascending order. Otherwise page is
// 1-based and must lie in [1, total]; out-of-range requests return
// ErrPageTooLow or ErrPageOutOfRange and write nothing. Output files are named
// by 0-based index (pdf_<index>.pdf) and overwrite earlier runs. Pages already
// written stay on disk if a later page fails.
func (e *Editor) Extract(ctx context.Context, src string, page int) (*Result, error) {
	runID := uuid.New().String()
	log := e.logger.With("run_id", runID, "op", OpExtract, "source", src)

	pdfCtx, err := e.readContext(src)
	if err != nil {
		return nil, err
	}
	total := pdfCtx.PageCount

	var indexes []int
	switch {
	case page < 0:
		for i := 0; i < total; i++ {
			indexes = append(indexes, i)
		}
	case page < 1:
		return nil, fmt.Errorf("%w, got %d", ErrPageTooLow, page)
	case page > total:
		return nil, fmt.Errorf("%w: requested %d, document has %d pages", ErrPageOutOfRange, page, total)
	default:
		indexes = []int{page - 1}
	}

	dir, err := SplitDir(src)
	if err != nil {
		return nil, ioErr(OpExtract, src, err)
	}

	res := &Result{
		Operation: OpExtract,
		RunID:     runID,
		Source:    src,
		OutputDir: dir,
	}
	if len(indexes) == 0 {
		log.Warn("document has no pages")
		return res, nil
	}

	if err := ensureDir(dir); err != nil {
		return nil, ioErr(OpExtract, dir, err)
	}

	log.Info("extracting pages", "pages", len(indexes), "total", total)
	for _, idx := range indexes {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		out := SplitPagePath(dir, idx)
		if err := extractPage(pdfCtx, src, idx, out); err != nil {
			return res, err
		}
		res.Files = append(res.Files, out)
		res.Pages++
		log.Debug("page extracted", "index", idx, "file", out)
	}

	log.Info("extraction complete", "pages", res.Pages, "output_dir", dir)
	return res, nil
}

// PageCount returns the number of pages in src.
func (e *Editor) PageCount(src string) (int, error) {
	f, err := os.Open(src)
	if err != nil {
		return 0, ioErr("page-count", src, err)
	}
	defer f.Close()

	n, err := api.PageCount(f, e.newConf())
	if err != nil {
		return 0, parseErr("page-count", src, err)
	}
	return n, nil
}

// readContext parses and validates src into a pdfcpu context.
func (e *Editor) readContext(src string) (*model.Context, error) {
	f, err := os.Open(src)
	if err != nil {
		return nil, ioErr("read", src, err)
	}
	defer f.Close()

	pdfCtx, err := api.ReadValidateAndOptimize(f, e.newConf())
	if err != nil {
		return nil, parseErr("read", src, err)
	}
	return pdfCtx, nil
}

// extractPage writes a one-page copy of the page at 0-based index to out.
func extractPage(pdfCtx *model.Context, src string, index int, out string) error {
	r, err := api.ExtractPage(pdfCtx, index+1)
	if err != nil {
		return parseErr(OpExtract, src, fmt.Errorf("page %d: %w", index+1, err))
	}

	f, err := os.Create(out)
	if err != nil {
		return ioErr(OpExtract, out, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return ioErr(OpExtract, out, err)
	}
	if err := f.Close(); err != nil {
		return ioErr(OpExtract, out, err)
	}
	return nil
}
