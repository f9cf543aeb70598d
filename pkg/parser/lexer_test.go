package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calder-lang/calder/pkg/token"
)

func lex(t *testing.T, src string) []token.Token {
	t.Helper()
	return NewLexer(src).Tokens()
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestLexPunctuationAndKeyword(t *testing.T) {
	toks := lex(t, "let x = { ( ) } ,")
	assert.Equal(t, []token.Kind{
		token.LET, token.IDENT, token.ASSIGN,
		token.LBRACE, token.LPAREN, token.RPAREN, token.RBRACE,
		token.COMMA, token.EOF,
	}, kinds(toks))
}

func TestLexIdentifiers(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{name: "plain", src: "foo", want: "foo"},
		{name: "with dash", src: "foo-bar", want: "foo-bar"},
		{name: "with underscore", src: "foo_bar", want: "foo_bar"},
		{name: "with digits", src: "arg1", want: "arg1"},
		{name: "digits mid-word", src: "b2b-sales", want: "b2b-sales"},
		{name: "keyword prefix", src: "letter", want: "letter"},
		{name: "capitalized keyword is ident", src: "Let", want: "Let"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := lex(t, tt.src)
			require.Len(t, toks, 2)
			assert.Equal(t, token.IDENT, toks[0].Kind)
			assert.Equal(t, tt.want, toks[0].Literal)
		})
	}
}

func TestLexNumbers(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind token.Kind
		lit  string
	}{
		{name: "integer", src: "250", kind: token.INT, lit: "250"},
		{name: "negative integer", src: "-99", kind: token.INT, lit: "-99"},
		{name: "separated integer", src: "1_000", kind: token.INT, lit: "1_000"},
		{name: "float", src: "99.99", kind: token.FLOAT, lit: "99.99"},
		{name: "negative float", src: "-0.25", kind: token.FLOAT, lit: "-0.25"},
		{name: "leading dot float", src: ".75", kind: token.FLOAT, lit: ".75"},
		{name: "negative leading dot float", src: "-.75", kind: token.FLOAT, lit: "-.75"},
		{name: "trailing dot float", src: "42.", kind: token.FLOAT, lit: "42."},
		{name: "exponent float", src: "1e10", kind: token.FLOAT, lit: "1e10"},
		{name: "signed exponent float", src: "4.2e-3", kind: token.FLOAT, lit: "4.2e-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := lex(t, tt.src)
			require.Len(t, toks, 2)
			assert.Equal(t, tt.kind, toks[0].Kind, "kind for %q", tt.src)
			assert.Equal(t, tt.lit, toks[0].Literal)
		})
	}
}

func TestLexStrings(t *testing.T) {
	toks := lex(t, `"a string"`)
	require.Len(t, toks, 2)
	assert.Equal(t, token.STRING, toks[0].Kind)
	assert.Equal(t, "a string", toks[0].Literal)
}

func TestLexStringSpansLines(t *testing.T) {
	toks := lex(t, "\"line1\nline2\"")
	require.Len(t, toks, 2)
	assert.Equal(t, token.STRING, toks[0].Kind)
	assert.Equal(t, "line1\nline2", toks[0].Literal)
}

func TestLexUnterminatedString(t *testing.T) {
	toks := lex(t, `"oops`)
	require.Len(t, toks, 2)
	assert.Equal(t, token.ILLEGAL, toks[0].Kind)
	assert.Equal(t, token.Position{Line: 1, Column: 1, Offset: 0}, toks[0].Pos)
}

func TestLexComments(t *testing.T) {
	toks := lex(t, "# a comment\nx # trailing\n")
	require.Len(t, toks, 2)
	assert.Equal(t, token.IDENT, toks[0].Kind)
	assert.Equal(t, "x", toks[0].Literal)
	assert.Equal(t, 2, toks[0].Pos.Line)
}

func TestLexPositions(t *testing.T) {
	toks := lex(t, "let x = 0\nx = 1")
	require.Len(t, toks, 8)

	assert.Equal(t, token.Position{Line: 1, Column: 1, Offset: 0}, toks[0].Pos) // let
	assert.Equal(t, token.Position{Line: 1, Column: 5, Offset: 4}, toks[1].Pos) // x
	assert.Equal(t, token.Position{Line: 1, Column: 7, Offset: 6}, toks[2].Pos) // =
	assert.Equal(t, token.Position{Line: 1, Column: 9, Offset: 8}, toks[3].Pos) // 0
	assert.Equal(t, 2, toks[4].Pos.Line)                                        // x on line 2
	assert.Equal(t, 1, toks[4].Pos.Column)
}

func TestLexIllegalBytes(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "bare dot", src: "."},
		{name: "bare minus", src: "- x"},
		{name: "stray symbol", src: "$"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := lex(t, tt.src)
			assert.Equal(t, token.ILLEGAL, toks[0].Kind)
		})
	}
}
