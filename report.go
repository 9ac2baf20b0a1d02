// SPDX-License-Identifier: MIT
package tokenizer

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// Report writes a diagnostic for the error in the form:
//
//	source:line:column: unexpected character 'x'
//	|the offending line
//	|      ^
//
// The caret is aligned for monospaced fonts with East Asian wide runes taking two cells.
func (e *UnexpectedCharError) Report(w io.Writer) (err error) {
	if _, err = fmt.Fprintln(w, e.Error()); err != nil {
		return
	}
	if _, err = fmt.Fprintf(w, "|%s\n", e.Line); err != nil {
		return
	}

	_, err = fmt.Fprintf(w, "|%s^\n", caretPadding(e.text(), e.Position.Column-1))

	return
}

// caretPadding computes the blanks covering the first n runes of line.
//
// Tabs are kept so that the caret follows the terminal's tab stops.
func caretPadding(line string, n int) string {
	var buffer strings.Builder
	for _, r := range line {
		if n < 1 {
			break
		}
		n--

		if r == '\t' {
			buffer.WriteByte('\t')
			continue
		}
		if !unicode.IsGraphic(r) {
			continue
		}

		switch width.LookupRune(r).Kind() {
		case width.EastAsianFullwidth, width.EastAsianWide:
			buffer.WriteString("  ")
		default:
			buffer.WriteByte(' ')
		}
	}

	return buffer.String()
}
