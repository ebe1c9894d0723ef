package pdfops

import (
	"errors"
	"fmt"
)

var (
	// ErrPageTooLow is returned when a requested page number is below 1.
	ErrPageTooLow = errors.New("requested page must be >= 1")

	// ErrPageOutOfRange is returned when a requested page exceeds the page count.
	ErrPageOutOfRange = errors.New("requested page exceeds total page count")

	// ErrNoPDFs is returned when a merge directory holds no .pdf files.
	ErrNoPDFs = errors.New("no .pdf files found")
)

// Kind classifies failures coming from the PDF libraries or the filesystem.
type Kind string

const (
	KindParse  Kind = "parse"
	KindIO     Kind = "io"
	KindRender Kind = "render"
)

// Error is a library or filesystem failure during an operation.
type Error struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %s failure: %v", e.Op, e.Path, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var opErr *Error
	return errors.As(err, &opErr) && opErr.Kind == kind
}

// IsRangeError reports whether err is a page range rejection.
// Range errors abort the operation before anything is written.
func IsRangeError(err error) bool {
	return errors.Is(err, ErrPageTooLow) || errors.Is(err, ErrPageOutOfRange)
}

func parseErr(op, path string, err error) error {
	return &Error{Kind: KindParse, Op: op, Path: path, Err: err}
}

func ioErr(op, path string, err error) error {
	return &Error{Kind: KindIO, Op: op, Path: path, Err: err}
}

func renderErr(op, path string, err error) error {
	return &Error{Kind: KindRender, Op: op, Path: path, Err: err}
}
