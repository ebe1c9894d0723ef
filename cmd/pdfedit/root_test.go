package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jackzampolin/pdfedit/internal/pdfops"
	"github.com/jackzampolin/pdfedit/internal/testutil"
)

// execute runs the root command with args against a temp home and returns stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cfgFile, outputFormat, logLevel = "", "yaml", ""
	extractPage, mergeOrder, configForce = pdfops.AllPages, "lexical", false
	active = nil
	extractCmd.Flags().Lookup("page").Changed = false
	mergeCmd.Flags().Lookup("order").Changed = false

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(append([]string{"--home", t.TempDir()}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestExtractCommand(t *testing.T) {
	dir := t.TempDir()
	src := testutil.WritePDF(t, filepath.Join(dir, "doc.pdf"), 3)

	out, err := execute(t, "", "extract", src, "--page", "2", "-o", "json")
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	var res pdfops.Result
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if res.Operation != pdfops.OpExtract {
		t.Errorf("operation = %q, want %q", res.Operation, pdfops.OpExtract)
	}
	if len(res.Files) != 1 {
		t.Fatalf("files = %v, want one", res.Files)
	}
	if _, err := os.Stat(filepath.Join(dir, pdfops.SplitDirName, "pdf_1.pdf")); err != nil {
		t.Errorf("expected pdf_1.pdf: %v", err)
	}
}

func TestExtractCommandOutOfRange(t *testing.T) {
	dir := t.TempDir()
	src := testutil.WritePDF(t, filepath.Join(dir, "doc.pdf"), 2)

	_, err := execute(t, "", "extract", src, "--page", "5")
	if !pdfops.IsRangeError(err) {
		t.Fatalf("expected range error, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, pdfops.SplitDirName)); !os.IsNotExist(err) {
		t.Error("split directory should not exist")
	}
}

func TestMergeCommand(t *testing.T) {
	dir := t.TempDir()
	testutil.WritePDF(t, filepath.Join(dir, "a.pdf"), 2)
	testutil.WritePDF(t, filepath.Join(dir, "b.pdf"), 3)

	out, err := execute(t, "", "merge", dir)
	if err != nil {
		t.Fatalf("merge failed: %v", err)
	}
	if !strings.HasPrefix(out, "operation: merge\n") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if _, err := os.Stat(pdfops.MergePath(dir)); err != nil {
		t.Errorf("expected merged file: %v", err)
	}
}

func TestMergeCommandInvalidOrder(t *testing.T) {
	dir := t.TempDir()
	testutil.WritePDF(t, filepath.Join(dir, "a.pdf"), 1)

	if _, err := execute(t, "", "merge", dir, "--order", "random"); err == nil {
		t.Fatal("expected error for unknown merge order")
	}
}

func TestInteractiveRangeSkipsCompletionMessage(t *testing.T) {
	dir := t.TempDir()
	src := testutil.WritePDF(t, filepath.Join(dir, "doc.pdf"), 2)

	out, err := execute(t, "1\n"+src+"\n9\n")
	if err != nil {
		t.Fatalf("interactive run failed: %v", err)
	}
	if strings.Contains(out, "Extraction complete") {
		t.Errorf("completion message printed after range error:\n%s", out)
	}
}

func TestInteractiveEOF(t *testing.T) {
	if _, err := execute(t, "9\n"); err == nil {
		t.Fatal("expected error when input ends")
	}
}

func TestConfigInit(t *testing.T) {
	homeDir := t.TempDir()

	if _, err := execute(t, "", "--home", homeDir, "config", "init"); err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(homeDir, "config.yaml")); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	if _, err := execute(t, "", "--home", homeDir, "config", "init"); err == nil {
		t.Error("expected error when config exists")
	}
	if _, err := execute(t, "", "--home", homeDir, "config", "init", "--force"); err != nil {
		t.Errorf("config init --force failed: %v", err)
	}
}

func TestConfigShow(t *testing.T) {
	t.Setenv("PDFEDIT_MERGE_ORDER", "numeric")

	out, err := execute(t, "", "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	if !strings.Contains(out, "order: numeric") {
		t.Errorf("env override missing from output:\n%s", out)
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(out, "pdfedit ") {
		t.Errorf("unexpected version output: %q", out)
	}
}

func TestDotEnvInHome(t *testing.T) {
	homeDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(homeDir, ".env"), []byte("PDFEDIT_LOG_FORMAT=json\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	// Registers a restore of the variable once the test ends
	t.Setenv("PDFEDIT_LOG_FORMAT", "")
	os.Unsetenv("PDFEDIT_LOG_FORMAT")

	out, err := execute(t, "", "--home", homeDir, "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	if !strings.Contains(out, "format: json") {
		t.Errorf(".env value missing from output:\n%s", out)
	}
}

func TestImagesCommand(t *testing.T) {
	dir := t.TempDir()
	src := testutil.WritePDFSizes(t, filepath.Join(dir, "letter.pdf"),
		[]testutil.PageSize{testutil.Letter, testutil.Letter})

	// Second run overwrites the same files
	for run := 0; run < 2; run++ {
		out, err := execute(t, "", "images", src, "-o", "json")
		if err != nil {
			t.Fatalf("run %d: images failed: %v", run, err)
		}

		var res pdfops.Result
		if err := json.Unmarshal([]byte(out), &res); err != nil {
			t.Fatalf("output is not JSON: %v\n%s", err, out)
		}
		if res.Operation != pdfops.OpImages || res.Pages != 2 {
			t.Fatalf("unexpected result: %+v", res)
		}
	}

	entries, err := os.ReadDir(filepath.Join(dir, pdfops.ImagesDirName))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("expected 2 images, got %d", len(entries))
	}
	for i := 0; i < 2; i++ {
		name := filepath.Base(pdfops.ImagePath("", i))
		if _, err := os.Stat(filepath.Join(dir, pdfops.ImagesDirName, name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}
}
