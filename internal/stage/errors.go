package stage

import (
	"errors"
	"fmt"
)

// Error kinds. Every failure returned by stage and metadata operations
// unwraps to exactly one of these.
var (
	ErrFormat     = errors.New("format error")
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrLayout     = errors.New("layout error")
)

// Error is a typed failure carrying its kind and, for line-based input,
// the 0-based line number it was raised on (-1 otherwise).
type Error struct {
	Kind error
	Line int
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// Errorf builds an Error of the given kind that is not tied to an input line.
func Errorf(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Line: -1, Msg: fmt.Sprintf(format, args...)}
}

// LineErrorf builds an Error of the given kind for input line n.
func LineErrorf(kind error, n int, format string, args ...any) *Error {
	return &Error{Kind: kind, Line: n, Msg: fmt.Sprintf(format, args...)}
}

// ExitCode maps an error to the process exit status used by the CLI.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrFormat):
		return 2
	case errors.Is(err, ErrValidation):
		return 3
	case errors.Is(err, ErrNotFound):
		return 4
	case errors.Is(err, ErrLayout):
		return 5
	default:
		return 1
	}
}
