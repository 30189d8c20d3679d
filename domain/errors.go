package domain

import "fmt"

// ParseError reports a malformed input line. Parsing is fail-fast: the
// first bad line aborts the whole run before anything is published.
type ParseError struct {
	File   string
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Reason)
}

func NewParseError(file string, line int, format string, args ...interface{}) *ParseError {
	return &ParseError{File: file, Line: line, Reason: fmt.Sprintf(format, args...)}
}
