// SPDX-License-Identifier: MIT

// Package grammar provides the sample Balakai grammar.
package grammar

import (
	"gitlab.com/fisherprime/tokenizer"
)

// Group names.
const (
	Keywords  = "KEYWORDS"
	Ignorable = "IGNORABLE"
	Literals  = "LITERALS"
)

// keywords lists the Balakai keywords as (name, word) pairs, in priority order.
var keywords = [][2]string{
	{"IS", "is"},
	{"USE", "use"},
	{"AND", "and"},
	{"VARIABLE", "variable"},
	{"EQUAL", "equal"},
	{"OF", "of"},
	{"FUNCTION", "function"},
	{"WITH", "with"},
}

// Register installs the Balakai grammar into t: the KEYWORDS, IGNORABLE & LITERALS groups followed
// by SYMBOL & DOT.
func Register(t *tokenizer.Tokenizer) {
	kw := tokenizer.NewTokenGroup(Keywords)
	for _, pair := range keywords {
		t.MustKeyword(pair[0], pair[1]).InGroup(kw)
	}

	t.RegisterTokenGroups(
		kw,
		tokenizer.NewTokenGroup(Ignorable,
			t.MustToken("SPACE", " "),
			t.MustToken("TAB", "\t"),
			t.MustToken("NEWLINE", "\n"),
		),
		tokenizer.NewTokenGroup(Literals,
			t.MustToken("STRING", `".*"`),
			t.MustToken("NUMBER", "-?[0-9]+"),
		),
	)
	t.RegisterTokens(
		t.MustToken("SYMBOL", `\b[a-zA-Z_][a-zA-Z0-9_]*\b`),
		t.MustToken("DOT", `\.`),
	)
}
