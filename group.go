// SPDX-License-Identifier: MIT
package tokenizer

import "golang.org/x/exp/slices"

type (
	// TokenGroup defines a named, ordered batch of Tokens.
	//
	// Groups are organizational: a Tokenizer copies the members into its registry at registration
	// & never consults the group while scanning.
	TokenGroup struct {
		name   string
		tokens []*Token
	}
)

// NewTokenGroup instantiates a TokenGroup holding tokens in order.
func NewTokenGroup(name string, tokens ...*Token) *TokenGroup {
	return &TokenGroup{name: name, tokens: slices.Clone(tokens)}
}

// Name retrieves the group's name.
func (g *TokenGroup) Name() string { return g.name }

// AddToken appends a Token to the group.
func (g *TokenGroup) AddToken(t *Token) { g.tokens = append(g.tokens, t) }

// Tokens retrieves a copy of the group's members, in insertion order.
func (g *TokenGroup) Tokens() []*Token { return slices.Clone(g.tokens) }

// Len retrieves the number of members.
func (g *TokenGroup) Len() int { return len(g.tokens) }

// Contains reports whether a Token with the given id is a member.
func (g *TokenGroup) Contains(id int) bool {
	return slices.IndexFunc(g.tokens, func(t *Token) bool { return t.id == id }) > -1
}
