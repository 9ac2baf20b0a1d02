// SPDX-License-Identifier: MIT
package tokenizer

import "fmt"

type (
	// CodePosition identifies a scan location within some source.
	//
	// Columns count runes (code points), not bytes.
	CodePosition struct {
		// Source is the display name of the input, used in diagnostics.
		Source string
		Line   int // 1-based line number
		Column int // 1-based column number (rune index)
	}
)

// startPosition is the position of the first rune of a source.
func startPosition(source string) CodePosition {
	return CodePosition{Source: source, Line: 1, Column: 1}
}

// String renders the position as `source:line:column`.
func (p CodePosition) String() string {
	return fmt.Sprintf("%s:%d:%d", p.Source, p.Line, p.Column)
}

// nextLine moves the position to the beginning of the next line.
func (p *CodePosition) nextLine() {
	p.Line++
	p.Column = 1
}
