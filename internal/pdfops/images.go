package pdfops

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jackzampolin/pdfedit/internal/render"
)

// ConvertToImages renders every page of src at Zoom into pdf_images/ next to
// src, one opaque PNG per page named pdf_images_<index>.png.
func (e *Editor) ConvertToImages(ctx context.Context, src string) (*Result, error) {
	if e.renderer == nil {
		return nil, errors.New("no renderer configured")
	}

	runID := uuid.New().String()
	log := e.logger.With("run_id", runID, "op", OpImages, "source", src)

	dir, err := ImagesDir(src)
	if err != nil {
		return nil, ioErr(OpImages, src, err)
	}
	if err := ensureDir(dir); err != nil {
		return nil, ioErr(OpImages, dir, err)
	}

	doc, err := e.renderer.Open(src)
	if err != nil {
		return nil, parseErr(OpImages, src, err)
	}
	defer doc.Close()

	res := &Result{
		Operation: OpImages,
		RunID:     runID,
		Source:    src,
		OutputDir: dir,
	}

	total := doc.NumPages()
	log.Info("converting pages", "total", total, "zoom", Zoom)
	for i := 0; i < total; i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		img, err := doc.Render(i, Zoom)
		if err != nil {
			return res, renderErr(OpImages, src, err)
		}

		out := ImagePath(dir, i)
		if err := render.SavePNG(img, out); err != nil {
			return res, ioErr(OpImages, out, err)
		}
		res.Files = append(res.Files, out)
		res.Pages++
		log.Debug("page rendered",
			"index", i,
			"size", fmt.Sprintf("%dx%d", img.Bounds().Dx(), img.Bounds().Dy()),
			"file", out,
		)
	}

	log.Info("conversion complete", "pages", res.Pages, "output_dir", dir)
	return res, nil
}
