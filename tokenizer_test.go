// SPDX-License-Identifier: MIT
package tokenizer

import (
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/sirupsen/logrus"
)

// newTestTokenizer registers the grammar used throughout the scan tests.
func newTestTokenizer(options ...Option) *Tokenizer {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	t := New(append([]Option{WithLogger(logger)}, options...)...)
	t.RegisterTokens(
		t.MustKeyword("IF", "if"),
		t.MustKeyword("IS", "is"),
		t.MustKeyword("THEN", "then"),
		t.MustToken("NUMBER", `\b[0-9]+\b`),
		t.MustToken("SYMBOL", `\b([a-zA-Z_])([a-zA-Z0-9_]*)\b`),
		t.MustToken("SPACE", " "),
	)

	return t
}

func TestNew_NilConfig(t *testing.T) {
	tk := New(WithConfig(nil), WithDebug(true), WithLogger(logrus.New()))

	if cfg := tk.Config(); cfg == nil || !cfg.Debug || cfg.Workers < 1 {
		t.Errorf("New().Config() = %+v, want defaults with Debug", cfg)
	}
}

func TestTokenizer_IDs(t *testing.T) {
	tk := newTestTokenizer()

	for index, token := range tk.Tokens() {
		if got := token.ID(); got != index {
			t.Errorf("Token(%s).ID() = %v, want %v", token.Name(), got, index)
		}
	}

	// Independent tokenizers don't share an id sequence.
	if got := New().MustToken("X", "x").ID(); got != 0 {
		t.Errorf("Tokenizer.MustToken().ID() = %v, want 0", got)
	}
}

func TestTokenizer_Scan(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantNames []string
	}{
		{
			name:      "keywords",
			input:     "if then",
			wantNames: []string{"KEYWORD_IF", "SPACE", "KEYWORD_THEN"},
		},
		{
			name:      "keyword prefix",
			input:     "iffer",
			wantNames: []string{"SYMBOL"},
		},
		{
			name:  "mixed",
			input: "if byte is 8 then megabyte is mega8",
			wantNames: []string{
				"KEYWORD_IF", "SPACE", "SYMBOL", "SPACE", "KEYWORD_IS", "SPACE", "NUMBER", "SPACE",
				"KEYWORD_THEN", "SPACE", "SYMBOL", "SPACE", "KEYWORD_IS", "SPACE", "SYMBOL",
			},
		},
		{
			name:      "trailing single rune",
			input:     "if x",
			wantNames: []string{"KEYWORD_IF", "SPACE", "SYMBOL"},
		},
		{
			name:      "empty",
			input:     "",
			wantNames: []string{},
		},
		{
			name:      "multiple lines",
			input:     "if x\n\nthen 1\n",
			wantNames: []string{"KEYWORD_IF", "SPACE", "SYMBOL", "KEYWORD_THEN", "SPACE", "NUMBER"},
		},
	}

	tk := newTestTokenizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tk.ScanString(tt.input, "test")
			if err != nil {
				t.Fatalf("Tokenizer.Scan() error = %v", err)
			}
			if !reflect.DeepEqual(got.Names(), tt.wantNames) {
				t.Errorf("Tokenizer.Scan() = %v, want %v", got.Names(), tt.wantNames)
			}
		})
	}
}

func TestTokenizer_Scan_Groups(t *testing.T) {
	tk := newTestTokenizer()

	got, err := tk.ScanString("if byte is 8 then megabyte is mega8", "test")
	if err != nil {
		t.Fatalf("Tokenizer.Scan() error = %v", err)
	}
	if len(got) != 15 {
		t.Fatalf("Tokenizer.Scan() = %d tokens, want 15", len(got))
	}

	tests := []struct {
		index      int
		wantName   string
		wantGroups []string
		wantPos    CodePosition
	}{
		{index: 2, wantName: "SYMBOL", wantGroups: []string{"byte", "b", "yte"}, wantPos: CodePosition{"test", 1, 4}},
		{index: 6, wantName: "NUMBER", wantGroups: []string{"8"}, wantPos: CodePosition{"test", 1, 12}},
		{index: 14, wantName: "SYMBOL", wantGroups: []string{"mega8", "m", "ega8"}, wantPos: CodePosition{"test", 1, 31}},
	}

	for _, tt := range tests {
		p := got[tt.index]
		if p.Name != tt.wantName {
			t.Errorf("token %d name = %v, want %v", tt.index, p.Name, tt.wantName)
		}
		if !reflect.DeepEqual(p.Groups, tt.wantGroups) {
			t.Errorf("token %d groups = %q, want %q", tt.index, p.Groups, tt.wantGroups)
		}
		if p.Pos != tt.wantPos {
			t.Errorf("token %d pos = %v, want %v", tt.index, p.Pos, tt.wantPos)
		}
	}
}

func TestTokenizer_Scan_UnexpectedChar(t *testing.T) {
	const line = "hello // commentary"

	tests := []struct {
		name     string
		input    string
		wantPos  CodePosition
		wantLine string
	}{
		{name: "comment", input: line, wantPos: CodePosition{"test", 1, 7}, wantLine: line},
		{name: "second line", input: "if x\nthen ?", wantPos: CodePosition{"test", 2, 6}, wantLine: "then ?"},
		{name: "multibyte", input: "if é", wantPos: CodePosition{"test", 1, 4}, wantLine: "if é"},
		{name: "after multibyte", input: "if x é", wantPos: CodePosition{"test", 1, 6}, wantLine: "if x é"},
		{name: "bom", input: "\ufeffif ?", wantPos: CodePosition{"test", 1, 4}, wantLine: "\ufeffif ?"},
	}

	tk := newTestTokenizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tk.ScanString(tt.input, "test")
			if got != nil {
				t.Errorf("Tokenizer.Scan() = %v, want no tokens on failure", got.Names())
			}
			if !errors.Is(err, ErrParsing) {
				t.Fatalf("Tokenizer.Scan() error = %v, want %v", err, ErrParsing)
			}

			var unexpected *UnexpectedCharError
			if !errors.As(err, &unexpected) {
				t.Fatalf("Tokenizer.Scan() error = %T, want *UnexpectedCharError", err)
			}
			if unexpected.Position != tt.wantPos {
				t.Errorf("UnexpectedCharError.Position = %v, want %v", unexpected.Position, tt.wantPos)
			}
			if unexpected.Line != tt.wantLine {
				t.Errorf("UnexpectedCharError.Line = %q, want %q", unexpected.Line, tt.wantLine)
			}
		})
	}
}

func TestTokenizer_Scan_UnicodeKeyword(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantNames []string
	}{
		{name: "keyword prefix", input: "ifé", wantNames: []string{"SYMBOL"}},
		{name: "keyword suffix", input: "éif", wantNames: []string{"SYMBOL"}},
		{name: "separated", input: "if été", wantNames: []string{"KEYWORD_IF", "SPACE", "SYMBOL"}},
	}

	tk := New()
	tk.RegisterTokens(
		tk.MustKeyword("IF", "if"),
		tk.MustToken("SYMBOL", `\pL+`),
		tk.MustToken("SPACE", " "),
	)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tk.ScanString(tt.input, "test")
			if err != nil {
				t.Fatalf("Tokenizer.Scan() error = %v", err)
			}
			if !reflect.DeepEqual(got.Names(), tt.wantNames) {
				t.Errorf("Tokenizer.Scan() = %v, want %v", got.Names(), tt.wantNames)
			}
		})
	}
}

func TestTokenizer_Scan_Priority(t *testing.T) {
	tk := New()
	tk.RegisterTokens(
		tk.MustToken("SHORT", "ab"),
		tk.MustToken("LONG", "abcd"),
	)

	got, err := tk.ScanString("abcd", "test")
	if err == nil {
		t.Fatalf("Tokenizer.Scan() = %v, want a failure at 'c'", got.Names())
	}

	var unexpected *UnexpectedCharError
	if !errors.As(err, &unexpected) || unexpected.Position.Column != 3 {
		t.Errorf("Tokenizer.Scan() error = %v, want failure at column 3", err)
	}
}

func TestTokenizer_Scan_ZeroLength(t *testing.T) {
	tk := New()
	tk.RegisterTokens(
		tk.MustToken("EMPTY", "x*"),
		tk.MustToken("Y", "y"),
	)

	got, err := tk.ScanString("xxy", "test")
	if err != nil {
		t.Fatalf("Tokenizer.Scan() error = %v", err)
	}
	if want := []string{"EMPTY", "Y"}; !reflect.DeepEqual(got.Names(), want) {
		t.Errorf("Tokenizer.Scan() = %v, want %v", got.Names(), want)
	}
}

func TestTokenizer_Scan_LineEndings(t *testing.T) {
	tests := []struct {
		name      string
		trimCR    bool
		input     string
		wantNames []string
		wantErr   bool
	}{
		{name: "crlf kept", input: "if\r\nthen", wantErr: true},
		{name: "crlf trimmed", trimCR: true, input: "if\r\nthen", wantNames: []string{"KEYWORD_IF", "KEYWORD_THEN"}},
		{name: "bom", input: "\ufeffif x", wantNames: []string{"KEYWORD_IF", "SPACE", "SYMBOL"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newTestTokenizer(WithTrimCR(tt.trimCR)).ScanString(tt.input, "test")
			if (err != nil) != tt.wantErr {
				t.Errorf("Tokenizer.Scan() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && !reflect.DeepEqual(got.Names(), tt.wantNames) {
				t.Errorf("Tokenizer.Scan() = %v, want %v", got.Names(), tt.wantNames)
			}
		})
	}
}

func TestTokenizer_Scan_ReadError(t *testing.T) {
	tk := newTestTokenizer()

	_, err := tk.Scan(iotest.ErrReader(io.ErrUnexpectedEOF), "test")
	if !errors.Is(err, ErrRead) {
		t.Errorf("Tokenizer.Scan() error = %v, want %v", err, ErrRead)
	}
	if errors.Is(err, ErrParsing) {
		t.Errorf("Tokenizer.Scan() error = %v, must not be a parsing error", err)
	}
}

func TestTokenizer_Scan_Idempotent(t *testing.T) {
	const input = "if byte is 8 then\nmegabyte is mega8"

	tk := newTestTokenizer()

	first, err := tk.Scan(strings.NewReader(input), "test")
	if err != nil {
		t.Fatalf("Tokenizer.Scan() error = %v", err)
	}
	second, err := tk.Scan(strings.NewReader(input), "test")
	if err != nil {
		t.Fatalf("Tokenizer.Scan() error = %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Tokenizer.Scan() = %v, then %v", first, second)
	}
}

func TestTokenizer_RegisterTokenGroup(t *testing.T) {
	const input = "if byte is 8 then megabyte is mega8"

	flat := newTestTokenizer()
	want, err := flat.ScanString(input, "test")
	if err != nil {
		t.Fatalf("Tokenizer.Scan() error = %v", err)
	}

	grouped := New()
	keywords := NewTokenGroup("KEYWORDS")
	for _, tk := range flat.Tokens()[:3] {
		tk.InGroup(keywords)
	}
	rest := NewTokenGroup("REST", flat.Tokens()[3:]...)
	grouped.RegisterTokenGroups(keywords, rest)

	// Late additions don't reach the registry.
	keywords.AddToken(MustToken("LATE", "."))

	got, err := grouped.ScanString(input, "test")
	if err != nil {
		t.Fatalf("Tokenizer.Scan() error = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenizer.Scan() = %v, want %v", got.Names(), want.Names())
	}

	if n := len(grouped.Tokens()); n != 6 {
		t.Errorf("Tokenizer.Tokens() = %d tokens, want 6", n)
	}
	if g, ok := grouped.Group("KEYWORDS"); !ok || g != keywords {
		t.Errorf("Tokenizer.Group(%q) = %v, %v", "KEYWORDS", g, ok)
	}
	if _, ok := grouped.Group("MISSING"); ok {
		t.Errorf("Tokenizer.Group(%q) found a group", "MISSING")
	}
	if tk, ok := grouped.Token("SYMBOL"); !ok || tk.Name() != "SYMBOL" {
		t.Errorf("Tokenizer.Token(%q) = %v, %v", "SYMBOL", tk, ok)
	}
	if names := []string{grouped.Groups()[0].Name(), grouped.Groups()[1].Name()}; !reflect.DeepEqual(names, []string{"KEYWORDS", "REST"}) {
		t.Errorf("Tokenizer.Groups() = %v", names)
	}
}
