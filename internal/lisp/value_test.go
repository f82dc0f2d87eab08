package lisp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func parseOne(t *testing.T, src string) *Value {
	t.Helper()
	return NewReader(strings.NewReader(src)).Parse()
}

var printTests = []struct {
	name string
	in   string
	want string
}{
	{"boolean true", "#t", "#t"},
	{"boolean false", "#f", "#f"},
	{"integral number", "42", "42"},
	{"decimal number", "3.5", "3.5"},
	{"negative number", "-7", "-7"},
	{"nil", "()", "()"},
	{"symbol", "abc", "abc"},
	{"proper list", "(1 2 3)", "(1 2 3)"},
	{"dotted pair", "(1 . 2)", "(1 . 2)"},
	{"nested list", "(1 (2 3) 4)", "(1 (2 3) 4)"},
}

func TestPrintRoundTrip(t *testing.T) {
	for _, tc := range printTests {
		t.Run(tc.name, func(t *testing.T) {
			v := parseOne(t, tc.in)
			assert.Equal(t, tc.want, v.Display())
			assert.Equal(t, tc.want, v.String())
		})
	}
}

func TestStringDisplayVsToString(t *testing.T) {
	v := parseOne(t, `"hi\nthere"`)
	assert.Equal(t, "hi\nthere", v.Display())
	assert.Equal(t, `"hi\nthere"`, v.String())
}

func TestConsCarCdr(t *testing.T) {
	a := NewNumber(1)
	b := NewNumber(2)
	p := Cons(a, b)
	assert.Same(t, a, Car(p))
	assert.Same(t, b, Cdr(p))
}

func TestLength(t *testing.T) {
	assert.Equal(t, 0, Nil.Length())
	list := ListFromSlice([]*Value{NewNumber(1), NewNumber(2), NewNumber(3)})
	assert.Equal(t, 3, list.Length())
}

func TestSymbolInterning(t *testing.T) {
	a := NewSymbol("foo")
	b := NewSymbol("foo")
	assert.Same(t, a, b)
}

func TestIsListVsIsPair(t *testing.T) {
	proper := parseOne(t, "(1 2 3)")
	dotted := parseOne(t, "(1 2 . 3)")
	assert.True(t, proper.IsList())
	assert.True(t, proper.IsPair())
	assert.False(t, dotted.IsList())
	assert.True(t, dotted.IsPair())
	assert.True(t, Nil.IsList())
	assert.False(t, Nil.IsPair())
}

func TestTruthiness(t *testing.T) {
	assert.False(t, False.IsTruthy())
	assert.True(t, True.IsTruthy())
	assert.True(t, NewNumber(0).IsTruthy())
	assert.True(t, NewString("").IsTruthy())
	assert.True(t, Nil.IsTruthy())
}
