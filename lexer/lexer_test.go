/*
File   : nougo/lexer/lexer_test.go
Package: lexer

Token-stream tests asserting exact Kind sequences and payloads via the
Lexer.Tokens() helper.
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nougo-lang/nougo/position"
	"github.com/nougo-lang/nougo/token"
)

func tokenize(t *testing.T, src string) []token.Token {
	t.Helper()
	l := New(position.NewSource("<test>", src))
	toks := l.Tokens()
	require.Empty(t, l.Errors, "unexpected lex errors for %q: %v", src, l.Errors)
	return toks
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestLexer_Punctuation(t *testing.T) {
	toks := tokenize(t, "+ - * / ^ % // ( ) [ ] , ? ->")
	assert.Equal(t, []token.Kind{
		token.PLUS, token.MINUS, token.MUL, token.DIV, token.POW, token.PERC,
		token.FLOORDIV, token.LPAREN, token.RPAREN, token.LSQUARE, token.RSQUARE,
		token.COMMA, token.INTERROGATIVE_PNT, token.ARROW,
	}, kinds(toks))
}

func TestLexer_CompoundAssignOperators(t *testing.T) {
	toks := tokenize(t, "+= -= *= /= //= ^=")
	assert.Equal(t, []token.Kind{
		token.PLUSEQ, token.MINUSEQ, token.MULTEQ, token.DIVEQ, token.FLOORDIVEQ, token.POWEQ,
	}, kinds(toks))
}

func TestLexer_ComparisonOperators(t *testing.T) {
	toks := tokenize(t, "== != < > <= >=")
	assert.Equal(t, []token.Kind{
		token.EE, token.NE, token.LT, token.GT, token.LTE, token.GTE,
	}, kinds(toks))
}

func TestLexer_IntLiteral(t *testing.T) {
	toks := tokenize(t, "42")
	require.Len(t, toks, 1)
	assert.Equal(t, token.INT, toks[0].Kind)
	assert.Equal(t, int64(42), toks[0].Payload)
}

func TestLexer_FloatLiteral(t *testing.T) {
	toks := tokenize(t, "3.14")
	require.Len(t, toks, 1)
	assert.Equal(t, token.FLOAT, toks[0].Kind)
	assert.InDelta(t, 3.14, toks[0].Payload.(float64), 1e-9)
}

func TestLexer_IntOverflowFallsBackToFloat(t *testing.T) {
	toks := tokenize(t, "99999999999999999999")
	require.Len(t, toks, 1)
	assert.Equal(t, token.FLOAT, toks[0].Kind)
}

func TestLexer_ScientificNotationQueuesExpToken(t *testing.T) {
	toks := tokenize(t, "1e10")
	require.Len(t, toks, 2)
	assert.Equal(t, token.INT, toks[0].Kind)
	assert.Equal(t, token.EXP, toks[1].Kind)
	assert.Equal(t, int64(10), toks[1].Payload)
}

func TestLexer_ScientificNotationNegativeExponent(t *testing.T) {
	toks := tokenize(t, "2.5e-3")
	require.Len(t, toks, 2)
	assert.Equal(t, token.FLOAT, toks[0].Kind)
	assert.Equal(t, token.EXP, toks[1].Kind)
	assert.Equal(t, int64(-3), toks[1].Payload)
}

func TestLexer_IdentifierVsKeyword(t *testing.T) {
	toks := tokenize(t, "foo if bar while")
	require.Len(t, toks, 4)
	assert.Equal(t, token.IDENTIFIER, toks[0].Kind)
	assert.Equal(t, token.KEYWORD, toks[1].Kind)
	assert.Equal(t, token.IDENTIFIER, toks[2].Kind)
	assert.Equal(t, token.KEYWORD, toks[3].Kind)
	assert.Equal(t, "if", toks[1].Payload)
}

func TestLexer_StringEscapes(t *testing.T) {
	toks := tokenize(t, `"a\nb\tc\\d\"e"`)
	require.Len(t, toks, 1)
	assert.Equal(t, token.STRING, toks[0].Kind)
	assert.Equal(t, "a\nb\tc\\d\"e", toks[0].Payload)
}

func TestLexer_HexEscape(t *testing.T) {
	toks := tokenize(t, `"\x41\x42"`)
	require.Len(t, toks, 1)
	assert.Equal(t, "AB", toks[0].Payload)
}

func TestLexer_UnterminatedStringRecordsError(t *testing.T) {
	l := New(position.NewSource("<test>", `"abc`))
	l.Tokens()
	require.NotEmpty(t, l.Errors)
}

func TestLexer_CommentsAreIgnored(t *testing.T) {
	toks := tokenize(t, "1 # this is a comment\n2")
	require.Len(t, toks, 3)
	assert.Equal(t, token.INT, toks[0].Kind)
	assert.Equal(t, token.NEWLINE, toks[1].Kind)
	assert.Equal(t, token.INT, toks[2].Kind)
}

func TestLexer_ConsecutiveNewlinesCoalesce(t *testing.T) {
	toks := tokenize(t, "1\n\n\n2")
	require.Len(t, toks, 3)
	assert.Equal(t, token.NEWLINE, toks[1].Kind)
}

func TestLexer_SemicolonActsAsNewline(t *testing.T) {
	toks := tokenize(t, "1; 2")
	require.Len(t, toks, 3)
	assert.Equal(t, token.NEWLINE, toks[1].Kind)
}

func TestLexer_DollarPrint(t *testing.T) {
	toks := tokenize(t, "$foo")
	require.Len(t, toks, 2)
	assert.Equal(t, token.DOLLAR, toks[0].Kind)
	assert.Equal(t, token.IDENTIFIER, toks[1].Kind)
}

func TestLexer_WriteReadTokens(t *testing.T) {
	toks := tokenize(t, ">> !>>")
	assert.Equal(t, []token.Kind{token.TO, token.TO_AND_OVERWRITE}, kinds(toks))
}

func TestLexer_TokenEqualIgnoresPosition(t *testing.T) {
	a := tokenize(t, "42")[0]
	b := tokenize(t, "  42  ")[0]
	assert.True(t, a.Equal(b))
	assert.NotEqual(t, a.Range, b.Range)
}
