// Package failure defines the error categories a generation run can end with,
// so callers can tell bad input data apart from a bad environment.
package failure

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies the category of a fatal or row-level failure.
type Kind int

const (
	// Unknown is any error that does not carry a category.
	Unknown Kind = iota
	// SourceNotFound means a required input file does not exist.
	SourceNotFound
	// SourceUnreadable means an input exists but cannot be read or parsed.
	SourceUnreadable
	// RowShapeMismatch means a data row's field count disagrees with the header.
	RowShapeMismatch
	// OutputUnwritable means the destination cannot be created or replaced.
	OutputUnwritable
	// StalePage means a published page no longer matches its sources.
	StalePage
)

func (k Kind) String() string {
	switch k {
	case SourceNotFound:
		return "source not found"
	case SourceUnreadable:
		return "source unreadable"
	case RowShapeMismatch:
		return "row shape mismatch"
	case OutputUnwritable:
		return "output unwritable"
	case StalePage:
		return "stale page"
	default:
		return "unknown"
	}
}

// ExitCode is the process exit status used for this kind.
func (k Kind) ExitCode() int {
	switch k {
	case SourceNotFound:
		return 2
	case SourceUnreadable:
		return 3
	case RowShapeMismatch:
		return 4
	case OutputUnwritable:
		return 5
	case StalePage:
		return 6
	default:
		return 1
	}
}

// Error is a categorized failure tied to a file and, for row errors, a row.
type Error struct {
	Kind Kind
	Path string
	// Row is the 1-based source line, 0 when not row-specific.
	Row int
	Err error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	if e.Path != "" {
		b.WriteString(": ")
		b.WriteString(e.Path)
	}
	if e.Row > 0 {
		fmt.Fprintf(&b, ": row %d", e.Row)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// New returns a categorized error for path wrapping err.
func New(kind Kind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}

// NewRow returns a RowShapeMismatch error for one row of path.
func NewRow(path string, row int, err error) *Error {
	return &Error{Kind: RowShapeMismatch, Path: path, Row: row, Err: err}
}

// KindOf reports the category of err, or Unknown when it carries none.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return Unknown
}

// Is reports whether err carries the given category.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// ExitCode maps err to a process exit status; nil maps to 0.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return KindOf(err).ExitCode()
}
