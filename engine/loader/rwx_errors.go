package loader

import (
	"errors"
	"fmt"
)

// Errors returned while decoding RWX documents. Parse failures arrive wrapped in an
// *RWXParseError, so match them with errors.Is.
var (
	ErrMalformedDirective = errors.New("malformed directive")
	ErrUnbalancedScope    = errors.New("unbalanced scope")
	ErrUndefinedTemplate  = errors.New("undefined template reference")
	ErrDegenerateLoop     = errors.New("degenerate polygon loop")
	ErrIndexOutOfRange    = errors.New("vertex index out of range")
)

// RWXParseError locates a decoding failure in the source document.
type RWXParseError struct {
	// Line is the 1-based line number of the offending directive, or 0 at end of document.
	Line int

	// Directive is the keyword of the offending directive, if any.
	Directive string

	// Err is the underlying error, usually one of the Err* sentinels.
	Err error
}

func (e *RWXParseError) Error() string {
	switch {
	case e.Line == 0:
		return fmt.Sprintf("rwx end of document: %v", e.Err)
	case e.Directive == "":
		return fmt.Sprintf("rwx line %d: %v", e.Line, e.Err)
	default:
		return fmt.Sprintf("rwx line %d (%s): %v", e.Line, e.Directive, e.Err)
	}
}

func (e *RWXParseError) Unwrap() error {
	return e.Err
}

// rwxErrorf builds an *RWXParseError wrapping sentinel with a formatted detail message.
func rwxErrorf(line int, directive string, sentinel error, format string, args ...any) error {
	return &RWXParseError{
		Line:      line,
		Directive: directive,
		Err:       fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...)),
	}
}
