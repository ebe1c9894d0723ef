package pdfops

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Merge concatenates the .pdf files directly inside dir, in the editor's
// merge order, into merge_pdf/merge.pdf inside dir.
// A directory without .pdf files returns ErrNoPDFs and writes nothing.
func (e *Editor) Merge(ctx context.Context, dir string) (*Result, error) {
	runID := uuid.New().String()
	log := e.logger.With("run_id", runID, "op", OpMerge, "source", dir)

	files, err := ListPDFs(dir, e.order)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoPDFs, dir)
	}
	log.Info("merging documents", "files", len(files), "order", e.order)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	outDir := MergeDir(dir)
	if err := ensureDir(outDir); err != nil {
		return nil, ioErr(OpMerge, outDir, err)
	}

	out := MergePath(dir)
	if err := api.MergeCreateFile(files, out, false, e.newConf()); err != nil {
		return nil, parseErr(OpMerge, dir, err)
	}

	pages, err := e.PageCount(out)
	if err != nil {
		return nil, err
	}

	log.Info("merge complete", "pages", pages, "output", out)
	return &Result{
		Operation: OpMerge,
		RunID:     runID,
		Source:    dir,
		OutputDir: outDir,
		Files:     []string{out},
		Pages:     pages,
	}, nil
}

// ListPDFs returns the paths of entries in dir whose names end in ".pdf"
// (case-sensitive), skipping subdirectories, sorted by order.
func ListPDFs(dir string, order MergeOrder) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, ioErr(OpMerge, dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), ".pdf") {
			names = append(names, entry.Name())
		}
	}

	names = order.Sort(names)

	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
	}
	return paths, nil
}
