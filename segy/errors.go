package segy

import (
	"errors"
	"fmt"
	"strings"
)

// Format errors returned by the reader
var (
	ErrUnreadable      = errors.New("file cannot be read")
	ErrTruncatedHeader = errors.New("file shorter than the 3600-byte header")
	ErrTruncatedTrace  = errors.New("truncated trace record")
	ErrZeroSamples     = errors.New("samples per trace is zero")
)

// Consistency errors returned by the writer
var (
	ErrInconsistentTraceLength = errors.New("traces have different sample counts")
	ErrHeaderCountMismatch     = errors.New("trace header count does not match trace count")
	ErrMalformedHeader         = errors.New("trace header is not 240 bytes")
	ErrWriteFailed             = errors.New("write failed")
	ErrNoTraces                = errors.New("volume has no traces")
	ErrFieldOverflow           = errors.New("value does not fit a 16-bit header field")
)

// FileError records a failed SEG-Y operation together with its error kind.
// errors.Is matches both the kind (ErrTruncatedTrace, ...) and the
// underlying cause.
type FileError struct {
	Op     string // operation being performed
	Path   string // file path
	Trace  int    // trace index, -1 when not applicable
	Sample int    // sample index, -1 when not applicable
	Kind   error  // one of the Err* kinds above
	Err    error  // underlying cause, may be nil
}

// Error returns the error message
func (e *FileError) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	if e.Path != "" {
		b.WriteString(" ")
		b.WriteString(e.Path)
	}
	b.WriteString(": ")
	b.WriteString(e.Kind.Error())
	if e.Trace >= 0 {
		fmt.Fprintf(&b, " (trace %d", e.Trace)
		if e.Sample >= 0 {
			fmt.Fprintf(&b, ", sample %d", e.Sample)
		}
		b.WriteString(")")
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the error kind and the underlying cause
func (e *FileError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newFileError(op, path string, kind, err error) *FileError {
	return &FileError{Op: op, Path: path, Trace: -1, Sample: -1, Kind: kind, Err: err}
}

func newTraceError(op, path string, trace, sample int, kind, err error) *FileError {
	return &FileError{Op: op, Path: path, Trace: trace, Sample: sample, Kind: kind, Err: err}
}
