// SPDX-License-Identifier: MIT
package tokenizer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// byteOrderMark is skipped at the start of a source.
const byteOrderMark = "\ufeff"

// Scan reads r line by line, converting it into Parsed Tokens.
//
// At every position the registered Tokens are tried in registration order & the first anchored
// match wins, regardless of the length other Tokens would have matched. Scanning stops at the
// first position no Token matches, returning an *UnexpectedCharError (an ErrParsing) & no Tokens.
// Tokens never span lines.
func (t *Tokenizer) Scan(r io.Reader, source string) (parsed List, err error) {
	t.cfg.Logger.Debugf("scanning (%s) with %d tokens", source, len(t.tokens))

	reader := bufio.NewReader(r)
	position := startPosition(source)
	parsed = make(List, 0)

	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, fmt.Errorf("%w (%s): %v", ErrRead, source, readErr)
		}
		if readErr != nil && line == "" {
			break
		}

		line = strings.TrimSuffix(line, "\n")
		if t.cfg.TrimCR {
			line = strings.TrimSuffix(line, "\r")
		}

		if parsed, err = t.scanLine(line, &position, parsed); err != nil {
			if t.cfg.Debug {
				t.cfg.Logger.Debugf("registry: %s", spew.Sprint(t.tokens))
			}

			return nil, err
		}

		if readErr != nil {
			break
		}
		position.nextLine()
	}

	t.cfg.Logger.Debugf("scanned (%s): %d tokens", source, len(parsed))

	return
}

// ScanString is Scan for in-memory input.
func (t *Tokenizer) ScanString(input, source string) (List, error) {
	return t.Scan(strings.NewReader(input), source)
}

// scanLine appends the Tokens of a single line to parsed, advancing position's column.
//
// A BOM opening the first line is skipped without occupying a column.
func (t *Tokenizer) scanLine(line string, position *CodePosition, parsed List) (List, error) {
	offset := 0
	if position.Line == 1 && strings.HasPrefix(line, byteOrderMark) {
		offset = len(byteOrderMark)
	}

	for offset < len(line) {
		match, ok := t.match(line[offset:], *position)
		if !ok {
			return parsed, &UnexpectedCharError{Position: *position, Line: line}
		}

		parsed = append(parsed, match)
		offset += len(match.Groups[0])
		position.Column += match.Length()
	}

	return parsed, nil
}

// match tries every registered Token against the start of rest.
//
// Each attempt uses its own Matcher, none outlives the call. Zero-length matches are skipped as they
// can't advance the cursor.
func (t *Tokenizer) match(rest string, position CodePosition) (p Parsed, ok bool) {
	for _, token := range t.tokens {
		m := token.Matcher(rest)
		if !m.LookingAt() || m.End() == 0 {
			continue
		}

		p = Parsed{
			Name:   token.name,
			ID:     token.id,
			Groups: m.Groups(),
			Pos:    position,
		}
		ok = true

		return
	}

	return
}
