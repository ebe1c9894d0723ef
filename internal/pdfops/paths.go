package pdfops

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// SplitDirName holds pages written by Extract, next to the source PDF.
	SplitDirName = "split_pdf"

	// ImagesDirName holds PNGs written by ConvertToImages, next to the source PDF.
	ImagesDirName = "pdf_images"

	// MergeDirName holds the merged document, inside the merged directory.
	MergeDirName = "merge_pdf"

	// MergeFileName is the merged document's name.
	MergeFileName = "merge.pdf"
)

// SplitDir returns the extraction output directory for a source PDF.
func SplitDir(src string) (string, error) {
	return siblingDir(src, SplitDirName)
}

// SplitPagePath returns the output path for the page at 0-based index.
func SplitPagePath(dir string, index int) string {
	return filepath.Join(dir, fmt.Sprintf("pdf_%d.pdf", index))
}

// ImagesDir returns the image output directory for a source PDF.
func ImagesDir(src string) (string, error) {
	return siblingDir(src, ImagesDirName)
}

// ImagePath returns the PNG path for the page at 0-based index.
func ImagePath(dir string, index int) string {
	return filepath.Join(dir, fmt.Sprintf("pdf_images_%d.png", index))
}

// MergeDir returns the merge output directory for a source directory.
func MergeDir(dir string) string {
	return filepath.Join(dir, MergeDirName)
}

// MergePath returns the merged document path for a source directory.
func MergePath(dir string) string {
	return filepath.Join(MergeDir(dir), MergeFileName)
}

func siblingDir(src, name string) (string, error) {
	abs, err := filepath.Abs(src)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", src, err)
	}
	return filepath.Join(filepath.Dir(abs), name), nil
}

// ensureDir creates dir and its parents; an existing directory is not an error.
func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}
