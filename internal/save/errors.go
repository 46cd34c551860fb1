package save

import (
	"errors"
	"fmt"
)

// ErrInvalidChapter is returned by Decode for chapter numbers below 1.
var ErrInvalidChapter = errors.New("invalid chapter number")

// ParseErrorKind classifies a decode failure.
type ParseErrorKind int

const (
	IntParse ParseErrorKind = iota
	FloatParse
	EofUnexpected
	EofExpected
)

func (k ParseErrorKind) String() string {
	switch k {
	case IntParse:
		return "integer parse error"
	case FloatParse:
		return "float parse error"
	case EofUnexpected:
		return "file ended unexpectedly"
	case EofExpected:
		return "expected end of file"
	}
	return fmt.Sprintf("parse error kind %d", int(k))
}

// ParseError reports where and why a save file could not be decoded.
// Line is 1-based; 0 means the position is unknown.
type ParseError struct {
	Kind ParseErrorKind
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s on line %d", e.Kind, e.Line)
	}
	return e.Kind.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is matches another *ParseError of the same kind, so callers can write
// errors.Is(err, &save.ParseError{Kind: save.EofExpected}).
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Line == 0 || t.Line == e.Line)
}

func newParseError(kind ParseErrorKind, line int, err error) *ParseError {
	return &ParseError{Kind: kind, Line: line, Err: err}
}
