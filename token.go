// SPDX-License-Identifier: MIT
package tokenizer

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"golang.org/x/exp/slices"

	"gitlab.com/fisherprime/tokenizer/types"
)

type (
	// Token defines a named lexical category backed by a compiled pattern.
	//
	// A Token is immutable once constructed & safe for concurrent use.
	Token struct {
		name string
		id   int

		// pattern is the source expression, as supplied by the grammar author.
		pattern string

		// anchored only matches at the start of its input.
		anchored *regexp.Regexp
		// unanchored matches anywhere in its input.
		unanchored *regexp.Regexp

		// keyword matches are only accepted between word boundaries of any script.
		keyword bool
	}

	// Parsed is a Token found in the scanned input.
	Parsed struct {
		// Name of the originating Token.
		Name string
		// ID of the originating Token.
		ID int

		// Groups holds the full match at index 0 followed by the pattern's capture groups, in
		// declaration order.
		Groups []string

		// Pos is the position of the first rune of the match.
		Pos CodePosition
	}

	// List is a type wrapper for []Parsed, the output of a scan.
	List []Parsed

	// TokenOption defines the Token functional option type.
	TokenOption func(*tokenOpts)

	tokenOpts struct {
		ids *types.Counter
	}
)

// KeywordPrefix is prepended to the names of keyword Tokens.
const KeywordPrefix = "KEYWORD_"

// defIDs is the id source for Tokens constructed without WithIDs.
var defIDs = new(types.Counter)

// WithIDs configures the id source of a Token.
//
// Tokenizers own a Counter so that independent grammars don't observe each other's id sequence.
func WithIDs(ids *types.Counter) TokenOption {
	return func(o *tokenOpts) { o.ids = ids }
}

// NewToken compiles pattern into a Token.
//
// An invalid pattern yields an ErrInvalidPattern & consumes no id.
func NewToken(name, pattern string, options ...TokenOption) (*Token, error) {
	return newToken(name, pattern, pattern, options)
}

// newToken compiles expr into a Token described by pattern.
func newToken(name, pattern, expr string, options []TokenOption) (t *Token, err error) {
	opts := tokenOpts{ids: defIDs}
	for _, opt := range options {
		opt(&opts)
	}
	if opts.ids == nil {
		opts.ids = defIDs
	}

	unanchored, err := regexp.Compile(expr)
	if err != nil {
		err = fmt.Errorf("token (%s) pattern (%s): %w: %v", name, pattern, ErrInvalidPattern, err)
		return
	}
	// A non-capturing group preserves the pattern's capture group numbering.
	anchored, err := regexp.Compile(`\A(?:` + expr + `)`)
	if err != nil {
		err = fmt.Errorf("token (%s) pattern (%s): %w: %v", name, pattern, ErrInvalidPattern, err)
		return
	}

	t = &Token{
		name:       name,
		id:         opts.ids.Next(),
		pattern:    pattern,
		anchored:   anchored,
		unanchored: unanchored,
	}

	return
}

// MustToken is like NewToken but panics on an invalid pattern.
func MustToken(name, pattern string, options ...TokenOption) *Token {
	t, err := NewToken(name, pattern, options...)
	if err != nil {
		panic(err)
	}

	return t
}

// Keyword creates a Token matching word as a whole word.
//
// The name is prefixed with KeywordPrefix; word is matched literally between word boundaries so
// that it never matches inside a longer identifier. Unlike RE2's ASCII `\b`, the boundaries treat
// letters, digits & marks of every script as word runes.
func Keyword(name, word string, options ...TokenOption) (t *Token, err error) {
	quoted := regexp.QuoteMeta(word)
	if t, err = newToken(KeywordPrefix+name, `\b`+quoted+`\b`, quoted, options); err == nil {
		t.keyword = true
	}

	return
}

// MustKeyword is like Keyword but panics on an invalid pattern.
func MustKeyword(name, word string, options ...TokenOption) *Token {
	t, err := Keyword(name, word, options...)
	if err != nil {
		panic(err)
	}

	return t
}

// Name retrieves the Token's name.
func (t *Token) Name() string { return t.name }

// ID retrieves the Token's id.
func (t *Token) ID() int { return t.id }

// Pattern retrieves the Token's source expression.
func (t *Token) Pattern() string { return t.pattern }

// GroupCount retrieves the number of capture groups declared by the Token's pattern.
func (t *Token) GroupCount() int { return t.anchored.NumSubexp() }

// String is the `fmt.Stringer` interface implementation for Token.
func (t *Token) String() string { return fmt.Sprintf("%s#%d(%s)", t.name, t.id, t.pattern) }

// InGroup adds the Token to group, returning the Token.
func (t *Token) InGroup(group *TokenGroup) *Token {
	group.AddToken(t)
	return t
}

// Length retrieves the number of runes in the full match.
func (p *Parsed) Length() int {
	if len(p.Groups) < 1 {
		return 0
	}

	return utf8.RuneCountInString(p.Groups[0])
}

// Text retrieves the full match.
func (p *Parsed) Text() string {
	if len(p.Groups) < 1 {
		return ""
	}

	return p.Groups[0]
}

// Names lists the Token names of a List, in order.
func (l List) Names() (names []string) {
	names = make([]string, len(l))
	for index := range l {
		names[index] = l[index].Name
	}

	return
}

// Without returns a copy of the List omitting Tokens belonging to any of groups.
//
// Groups never influence scanning; this is the means to drop, e.g., ignorable Tokens afterwards.
func (l List) Without(groups ...*TokenGroup) (resl List) {
	resl = make(List, 0, len(l))
	for index := range l {
		id := l[index].ID
		if slices.ContainsFunc(groups, func(g *TokenGroup) bool { return g != nil && g.Contains(id) }) {
			continue
		}

		resl = append(resl, l[index])
	}

	return
}
