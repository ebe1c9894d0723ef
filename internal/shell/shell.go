// Package shell implements the interactive prompt loop: choose an operation,
// give a path and (for extraction) a page number, then run it once.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/jackzampolin/pdfedit/internal/pdfops"
)

// ErrNoInput is returned when the input stream ends before a valid answer.
var ErrNoInput = errors.New("input closed before a valid answer was given")

// Operation is an operation code from the menu.
type Operation string

const (
	OpExtract Operation = "1"
	OpImages  Operation = "2"
	OpMerge   Operation = "3"
)

var operationLabels = map[Operation]string{
	OpExtract: "1-Extract PDF pages",
	OpImages:  "2-Convert PDF to images",
	OpMerge:   "3-Merge PDFs",
}

// String returns the menu label.
func (o Operation) String() string {
	if label, ok := operationLabels[o]; ok {
		return label
	}
	return string(o)
}

// ParseOperation maps a menu answer to an Operation.
func ParseOperation(s string) (Operation, bool) {
	op := Operation(s)
	_, ok := operationLabels[op]
	return op, ok
}

// Editor is the set of operations the shell dispatches to.
type Editor interface {
	Extract(ctx context.Context, src string, page int) (*pdfops.Result, error)
	ConvertToImages(ctx context.Context, src string) (*pdfops.Result, error)
	Merge(ctx context.Context, dir string) (*pdfops.Result, error)
}

// Shell reads answers from in and writes prompts and messages to out.
type Shell struct {
	in    io.Reader
	out   io.Writer
	lines chan line
	once  sync.Once
}

type line struct {
	text string
	err  error
}

// New creates a Shell.
func New(in io.Reader, out io.Writer) *Shell {
	return &Shell{
		in:    in,
		out:   out,
		lines: make(chan line),
	}
}

// scan feeds input lines to s.lines until the reader ends, then closes it.
// A blocked read cannot be interrupted, so readLine selects on the channel.
func (s *Shell) scan() {
	defer close(s.lines)

	scanner := bufio.NewScanner(s.in)
	for scanner.Scan() {
		s.lines <- line{text: strings.TrimRight(scanner.Text(), "\r")}
	}
	if err := scanner.Err(); err != nil {
		s.lines <- line{err: fmt.Errorf("failed to read input: %w", err)}
	}
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// readLine prints prompt and returns the next line without its line ending.
// It returns ctx.Err() as soon as ctx is done, even while waiting for input.
func (s *Shell) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.once.Do(func() { go s.scan() })

	s.printf("%s", prompt)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-s.lines:
		if !ok {
			return "", ErrNoInput
		}
		return l.text, l.err
	}
}

// ReadOperation prompts until a valid operation code is entered.
func (s *Shell) ReadOperation(ctx context.Context) (Operation, error) {
	for {
		answer, err := s.readLine(ctx, "Enter operation code: 1-Extract PDF pages, 2-Convert PDF to images, 3-Merge PDFs: ")
		if err != nil {
			return "", err
		}
		if op, ok := ParseOperation(answer); ok {
			s.printf("Selected operation: %s. Follow the prompts to continue.\n", op)
			return op, nil
		}
		s.printf("Invalid input [%s], please try again\n", answer)
	}
}

// ReadPath prompts until an existing path is entered.
// Only existence is checked, not file type or readability.
func (s *Shell) ReadPath(ctx context.Context, prompt string) (string, error) {
	for {
		answer, err := s.readLine(ctx, prompt)
		if err != nil {
			return "", err
		}
		if answer != "" {
			if _, err := os.Stat(answer); err == nil {
				return answer, nil
			}
		}
		s.printf("Path does not exist, please check it and try again\n")
	}
}

// ReadPage prompts until an integer is entered. Bounds are checked by the
// extraction itself; a negative number means every page. Integers too large
// for int saturate, so they still reach the range check.
func (s *Shell) ReadPage(ctx context.Context) (int, error) {
	for {
		answer, err := s.readLine(ctx, "Enter the page number to extract (-1 extracts every page): ")
		if err != nil {
			return 0, err
		}
		answer = strings.TrimSpace(answer)
		page, err := strconv.Atoi(answer)
		if err == nil {
			return page, nil
		}
		if errors.Is(err, strconv.ErrRange) {
			if strings.HasPrefix(answer, "-") {
				return math.MinInt, nil
			}
			return math.MaxInt, nil
		}
		s.printf("Invalid input, enter an integer (-1 extracts every page)\n")
	}
}

// Run collects one operation and its arguments, runs it and prints the outcome.
// Page range rejections are reported to the operator and are not errors.
func (s *Shell) Run(ctx context.Context, ed Editor) (*pdfops.Result, error) {
	op, err := s.ReadOperation(ctx)
	if err != nil {
		return nil, err
	}

	switch op {
	case OpExtract:
		src, err := s.ReadPath(ctx, "Enter the absolute path of the PDF: ")
		if err != nil {
			return nil, err
		}
		page, err := s.ReadPage(ctx)
		if err != nil {
			return nil, err
		}
		res, err := ed.Extract(ctx, src, page)
		// A rejected page ends the session without the completion message,
		// unlike a successful extraction.
		if pdfops.IsRangeError(err) {
			s.printf("%v\n", err)
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		s.printf("Extraction complete, see the %s directory next to the PDF\n", pdfops.SplitDirName)
		return res, nil

	case OpImages:
		src, err := s.ReadPath(ctx, "Enter the absolute path of the PDF to convert: ")
		if err != nil {
			return nil, err
		}
		res, err := ed.ConvertToImages(ctx, src)
		if err != nil {
			return nil, err
		}
		s.printf("Conversion complete, see the %s directory next to the PDF\n", pdfops.ImagesDirName)
		return res, nil

	default:
		s.printf("Files are merged in file name order; name your PDFs so they sort correctly\n")
		dir, err := s.ReadPath(ctx, "Enter the absolute path of the directory to merge: ")
		if err != nil {
			return nil, err
		}
		res, err := ed.Merge(ctx, dir)
		if err != nil {
			return nil, err
		}
		s.printf("Merge complete, see the %s directory inside the merged directory\n", pdfops.MergeDirName)
		return res, nil
	}
}
