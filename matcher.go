// SPDX-License-Identifier: MIT
package tokenizer

import (
	"unicode"
	"unicode/utf8"
)

type (
	// Matcher is a single match attempt of a Token against some input.
	//
	// A Matcher is bound to its input for its whole life; obtain a new one for every input instead
	// of re-targeting an existing one.
	Matcher struct {
		token *Token
		input string

		// loc holds the submatch byte offsets of the last successful attempt.
		loc []int
	}
)

// Matcher creates a fresh match attempt bound to input.
func (t *Token) Matcher(input string) *Matcher {
	return &Matcher{token: t, input: input}
}

// LookingAt attempts a match starting exactly at the beginning of the input; the match need not
// consume the whole input.
//
// The beginning of the input counts as a word boundary for keywords.
func (m *Matcher) LookingAt() bool {
	m.loc = m.token.anchored.FindStringSubmatchIndex(m.input)
	if m.loc != nil && m.token.keyword && !m.atWordBounds(m.loc) {
		m.loc = nil
	}

	return m.loc != nil
}

// Find searches for the leftmost match anywhere in the input.
func (m *Matcher) Find() bool {
	if !m.token.keyword {
		m.loc = m.token.unanchored.FindStringSubmatchIndex(m.input)
		return m.loc != nil
	}

	// Keyword expressions are literals, searching a suffix of the input is equivalent.
	m.loc = nil
	for offset := 0; offset <= len(m.input); {
		loc := m.token.unanchored.FindStringSubmatchIndex(m.input[offset:])
		if loc == nil {
			break
		}
		for index := range loc {
			if loc[index] >= 0 {
				loc[index] += offset
			}
		}

		if m.atWordBounds(loc) {
			m.loc = loc
			break
		}

		_, size := utf8.DecodeRuneInString(m.input[loc[0]:])
		if size == 0 {
			break
		}
		offset = loc[0] + size
	}

	return m.loc != nil
}

// atWordBounds reports whether both ends of the match at loc lie on word boundaries.
func (m *Matcher) atWordBounds(loc []int) bool {
	return isWordBoundary(m.input, loc[0]) && isWordBoundary(m.input, loc[1])
}

// Matched reports whether the last attempt succeeded.
func (m *Matcher) Matched() bool { return m.loc != nil }

// GroupCount retrieves the number of capture groups declared by the Token's pattern.
func (m *Matcher) GroupCount() int { return m.token.GroupCount() }

// Start retrieves the byte offset of the match in the input, -1 without a match.
func (m *Matcher) Start() int {
	if m.loc == nil {
		return -1
	}

	return m.loc[0]
}

// End retrieves the byte offset following the match in the input, -1 without a match.
func (m *Matcher) End() int {
	if m.loc == nil {
		return -1
	}

	return m.loc[1]
}

// Group retrieves the text of group index, 0 being the full match.
//
// Unmatched optional groups & out of range indices yield "".
func (m *Matcher) Group(index int) string {
	if m.loc == nil || index < 0 || 2*index+1 >= len(m.loc) {
		return ""
	}

	start, end := m.loc[2*index], m.loc[2*index+1]
	if start < 0 {
		return ""
	}

	return m.input[start:end]
}

// Groups retrieves the full match followed by every declared capture group.
func (m *Matcher) Groups() (groups []string) {
	if m.loc == nil {
		return
	}

	groups = make([]string, m.GroupCount()+1)
	for index := range groups {
		groups[index] = m.Group(index)
	}

	return
}

// isWordRune reports whether r is part of a word, in any script.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.In(r, unicode.M, unicode.Pc)
}

// isWordBoundary reports whether the byte offset i of s separates a word rune from a non-word one;
// the ends of s count as non-word runes.
func isWordBoundary(s string, i int) bool {
	var before, after bool
	if i > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:i])
		before = isWordRune(r)
	}
	if i < len(s) {
		r, _ := utf8.DecodeRuneInString(s[i:])
		after = isWordRune(r)
	}

	return before != after
}
