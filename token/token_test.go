package token

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nougo-lang/nougo/position"
)

func TestIsKeyword(t *testing.T) {
	assert.True(t, IsKeyword("while"))
	assert.True(t, IsKeyword("class"))
	assert.False(t, IsKeyword("foo"))
}

func TestToken_EqualIgnoresRangeButNotPayload(t *testing.T) {
	src := position.NewSource("<test>", "42")
	a := WithPayload(INT, "42", int64(42), position.Range{Start: position.New(src, 0, 1, 1)})
	b := WithPayload(INT, "42", int64(42), position.Range{Start: position.New(src, 10, 5, 3)})
	assert.True(t, a.Equal(b))

	c := WithPayload(INT, "7", int64(7), position.Range{})
	assert.False(t, a.Equal(c))
}

func TestToken_EqualRequiresSameKind(t *testing.T) {
	a := New(PLUS, "+", position.Range{})
	b := New(MINUS, "-", position.Range{})
	assert.False(t, a.Equal(b))
}

func TestToken_StringRendersPayloadOrLexeme(t *testing.T) {
	withPayload := WithPayload(INT, "42", int64(42), position.Range{})
	assert.Equal(t, "INT(42)", withPayload.String())

	noPayload := New(PLUS, "+", position.Range{})
	assert.Equal(t, "+(+)", noPayload.String())
}

func TestToken_QuotedSpecialCasesStructuralTokens(t *testing.T) {
	eof := New(EOF, "", position.Range{})
	assert.Equal(t, "end of input", eof.Quoted())

	nl := New(NEWLINE, "\n", position.Range{})
	assert.Equal(t, "newline", nl.Quoted())

	plus := New(PLUS, "+", position.Range{})
	assert.Equal(t, "`+`", plus.Quoted())
}
