// SPDX-License-Identifier: MIT
package tokenizer

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"

	"gitlab.com/fisherprime/tokenizer/types"
)

type (
	// Tokenizer scans input into Parsed Tokens using a priority-ordered registry.
	//
	// Registration & scanning are separate phases: register everything, then scan. Scans only read
	// the registry & may run concurrently; registration must not overlap with scanning.
	Tokenizer struct {
		cfg *Config

		// ids is the id source for Tokens constructed through the Tokenizer.
		ids *types.Counter

		// tokens is the flat registry; its order is the sole source of match priority.
		tokens []*Token

		// groups holds registered groups for lookup by name, never for matching.
		groups []*TokenGroup
	}

	// Option defines the Tokenizer functional option type.
	Option func(*Tokenizer)
)

// New instantiates a Tokenizer with an empty registry.
func New(options ...Option) *Tokenizer {
	t := &Tokenizer{
		cfg: DefConfig(),
		ids: new(types.Counter),
	}

	for _, opt := range options {
		opt(t)
	}
	t.cfg.Validate()

	return t
}

// WithConfig configures the Tokenizer Config; a nil cfg keeps the current one.
func WithConfig(cfg *Config) Option {
	return func(t *Tokenizer) {
		if cfg != nil {
			t.cfg = cfg
		}
	}
}

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(t *Tokenizer) { t.cfg.Logger = logger }
}

// WithDebug configures the debug option.
func WithDebug(debug bool) Option {
	return func(t *Tokenizer) { t.cfg.Debug = debug }
}

// WithTrimCR configures the trailing carriage return handling.
func WithTrimCR(trim bool) Option {
	return func(t *Tokenizer) { t.cfg.TrimCR = trim }
}

// WithWorkers configures the ScanAll goroutine cap.
func WithWorkers(workers int) Option {
	return func(t *Tokenizer) { t.cfg.Workers = workers }
}

// Config retrieves the Tokenizer's Config.
func (t *Tokenizer) Config() *Config { return t.cfg }

// NewToken constructs a Token drawing its id from the Tokenizer; the Token is not registered.
func (t *Tokenizer) NewToken(name, pattern string) (*Token, error) {
	return NewToken(name, pattern, WithIDs(t.ids))
}

// NewKeyword constructs a keyword Token drawing its id from the Tokenizer; the Token is not
// registered.
func (t *Tokenizer) NewKeyword(name, word string) (*Token, error) {
	return Keyword(name, word, WithIDs(t.ids))
}

// MustToken is like NewToken but panics on an invalid pattern.
func (t *Tokenizer) MustToken(name, pattern string) *Token {
	return MustToken(name, pattern, WithIDs(t.ids))
}

// MustKeyword is like NewKeyword but panics on an invalid pattern.
func (t *Tokenizer) MustKeyword(name, word string) *Token {
	return MustKeyword(name, word, WithIDs(t.ids))
}

// RegisterToken appends a Token to the registry.
func (t *Tokenizer) RegisterToken(token *Token) {
	t.tokens = append(t.tokens, token)
	t.cfg.Logger.Debugf("registered token (%s)", token.name)
}

// RegisterTokens appends Tokens to the registry, in order.
func (t *Tokenizer) RegisterTokens(tokens ...*Token) {
	for _, token := range tokens {
		t.RegisterToken(token)
	}
}

// RegisterTokenGroup records the group then registers its members, in the group's order.
//
// Members added to the group afterwards are not registered.
func (t *Tokenizer) RegisterTokenGroup(group *TokenGroup) {
	t.groups = append(t.groups, group)
	t.cfg.Logger.Debugf("registered token group (%s): %d tokens", group.name, group.Len())

	for _, token := range group.tokens {
		t.RegisterToken(token)
	}
}

// RegisterTokenGroups registers groups, in order.
func (t *Tokenizer) RegisterTokenGroups(groups ...*TokenGroup) {
	for _, group := range groups {
		t.RegisterTokenGroup(group)
	}
}

// Tokens retrieves a copy of the registry, in priority order.
func (t *Tokenizer) Tokens() []*Token { return slices.Clone(t.tokens) }

// Groups retrieves a copy of the registered groups, in registration order.
func (t *Tokenizer) Groups() []*TokenGroup { return slices.Clone(t.groups) }

// Group retrieves the first group registered under name.
func (t *Tokenizer) Group(name string) (group *TokenGroup, ok bool) {
	index := slices.IndexFunc(t.groups, func(g *TokenGroup) bool { return g.name == name })
	if ok = index > -1; ok {
		group = t.groups[index]
	}

	return
}

// Token retrieves the highest priority Token registered under name.
func (t *Tokenizer) Token(name string) (token *Token, ok bool) {
	index := slices.IndexFunc(t.tokens, func(tk *Token) bool { return tk.name == name })
	if ok = index > -1; ok {
		token = t.tokens[index]
	}

	return
}
