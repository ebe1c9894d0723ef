package testutil

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// Letter is the US Letter media box in points.
var Letter = PageSize{Width: 612, Height: 792}

// PageSize is a page media box in points.
type PageSize struct {
	Width  float64
	Height float64
}

// PageWidth returns the width given to page index i by WritePDF.
// Widths differ per page so tests can tell pages apart after extraction or merge.
func PageWidth(i int) float64 {
	return 200 + float64(i)*10
}

// WritePDF writes a minimal valid PDF with the given number of pages to path.
// Page i has width PageWidth(i) and height 300.
func WritePDF(t *testing.T, path string, pages int) string {
	t.Helper()

	sizes := make([]PageSize, pages)
	for i := range sizes {
		sizes[i] = PageSize{Width: PageWidth(i), Height: 300}
	}
	return WritePDFSizes(t, path, sizes)
}

// WritePDFSizes writes a minimal valid PDF with one page per entry in sizes.
// Each page carries a small filled rectangle so renderers have something to draw.
func WritePDFSizes(t *testing.T, path string, sizes []PageSize) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create fixture directory: %v", err)
	}
	if err := os.WriteFile(path, BuildPDF(sizes), 0o644); err != nil {
		t.Fatalf("failed to write fixture PDF: %v", err)
	}
	return path
}

// BuildPDF returns the bytes of a PDF with one page per entry in sizes.
// Objects: 1 catalog, 2 page tree, then a page/content pair per page.
func BuildPDF(sizes []PageSize) []byte {
	var buf bytes.Buffer
	var offsets []int

	obj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	buf.WriteString("%PDF-1.4\n")

	kids := ""
	for i := range sizes {
		kids += fmt.Sprintf("%d 0 R ", 3+2*i)
	}

	obj("<< /Type /Catalog /Pages 2 0 R >>")
	obj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", kids, len(sizes)))

	for i, size := range sizes {
		obj(fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %g %g] /Resources << >> /Contents %d 0 R >>",
			size.Width, size.Height, 4+2*i,
		))
		content := "q 0 0 0 rg 10 10 50 50 re f Q"
		obj(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content))
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xref)

	return buf.Bytes()
}
