// SPDX-License-Identifier: MIT
package tokenizer

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

type (
	// UnexpectedCharError reports input that no registered Token matches.
	//
	// Position is a snapshot of where scanning stopped; Line is the complete, unmodified text of
	// the line being scanned, a leading BOM included.
	UnexpectedCharError struct {
		Position CodePosition
		Line     string
	}
)

// Configuration errors.
var (
	ErrInvalidPattern = errors.New("invalid token pattern")
	ErrPanicked       = errors.New("recovery from panic")
)

// Scanning errors.
var (
	// ErrParsing is the base error for scan failures; match it with errors.Is.
	ErrParsing = errors.New("parsing failed")

	ErrRead = errors.New("failed to read source")
)

// Char returns the rune at the error's position, utf8.RuneError if the position is beyond the
// line.
func (e *UnexpectedCharError) Char() rune {
	column := 1
	for _, r := range e.text() {
		if column == e.Position.Column {
			return r
		}
		column++
	}

	return utf8.RuneError
}

// Error implements the `error` interface.
func (e *UnexpectedCharError) Error() string {
	return fmt.Sprintf("%s: unexpected character %q", e.Position, e.Char())
}

// Is reports the error to be an ErrParsing.
func (e *UnexpectedCharError) Is(target error) bool { return target == ErrParsing }

// text retrieves the Line as columns count it, without the BOM skipped on the first line.
func (e *UnexpectedCharError) text() string {
	if e.Position.Line != 1 {
		return e.Line
	}

	return strings.TrimPrefix(e.Line, byteOrderMark)
}
