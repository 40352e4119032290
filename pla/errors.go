//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package pla

import (
	"errors"
	"fmt"
)

// PLA parse errors.
var (
	ErrMissingHeaderField   = errors.New("pla: missing header field")
	ErrMalformedLine        = errors.New("pla: malformed line")
	ErrArityMismatch        = errors.New("pla: arity mismatch")
	ErrInvalidSymbol        = errors.New("pla: invalid symbol")
	ErrProductCountMismatch = errors.New("pla: product count mismatch")
)

// ParseError describes a PLA parse failure. It wraps one of the parse
// error kinds.
type ParseError struct {
	Source string
	// Line is the 0-based line number or -1 if the error does not
	// concern a single line.
	Line int
	Err  error
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line < 0 {
		return fmt.Sprintf("%s: %s", e.Source, e.Msg)
	}
	return fmt.Sprintf("%s:%d: %s", e.Source, e.Line, e.Msg)
}

// Unwrap returns the error kind.
func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseError(source string, line int, err error, format string,
	a ...interface{}) error {
	return &ParseError{
		Source: source,
		Line:   line,
		Err:    err,
		Msg:    fmt.Sprintf(format, a...),
	}
}
