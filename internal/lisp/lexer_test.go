package lisp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexAll(t *testing.T, src string) []token {
	t.Helper()
	l := newLexer(strings.NewReader(src))
	var toks []token
	for {
		tok := l.next()
		toks = append(toks, tok)
		if tok.typ == tokenEOF {
			return toks
		}
	}
}

func TestLexerTokenTypes(t *testing.T) {
	toks := lexAll(t, `(+ 1 2.5 "a\nb" #t #f foo)`)
	want := []tokenType{
		tokenLeftParen, tokenIdentifier, tokenNumber, tokenNumber,
		tokenString, tokenBoolean, tokenBoolean, tokenIdentifier,
		tokenRightParen, tokenEOF,
	}
	require.Len(t, toks, len(want))
	for i, w := range want {
		assert.Equal(t, w, toks[i].typ, "token %d", i)
	}
}

func TestLexerLineComment(t *testing.T) {
	toks := lexAll(t, "1 ; a comment\n2")
	require.Len(t, toks, 3)
	assert.Equal(t, tokenNumber, toks[0].typ)
	assert.Equal(t, tokenNumber, toks[1].typ)
	assert.Equal(t, tokenEOF, toks[2].typ)
}

func TestLexerUnterminatedStringFails(t *testing.T) {
	defer func() {
		e := recover()
		_, ok := e.(SyntaxError)
		require.True(t, ok, "expected SyntaxError, got %#v", e)
	}()
	lexAll(t, `"unterminated`)
	t.Fatal("did not panic")
}

func TestLexerMalformedBooleanFails(t *testing.T) {
	defer func() {
		e := recover()
		_, ok := e.(SyntaxError)
		require.True(t, ok, "expected SyntaxError, got %#v", e)
	}()
	lexAll(t, "#x")
	t.Fatal("did not panic")
}

func TestLooksNumeric(t *testing.T) {
	assert.True(t, looksNumeric("42"))
	assert.True(t, looksNumeric("-3.14"))
	assert.True(t, looksNumeric(".5"))
	assert.False(t, looksNumeric("+"))
	assert.False(t, looksNumeric("-"))
	assert.False(t, looksNumeric("."))
}
