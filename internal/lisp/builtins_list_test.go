package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCarCdrBuiltins(t *testing.T) {
	assert.Equal(t, "1", evalString(t, "(car '(1 2 3))").Display())
	assert.Equal(t, "(2 3)", evalString(t, "(cdr '(1 2 3))").Display())
}

func TestCarOfNonPairFails(t *testing.T) {
	assert.Panics(t, func() { evalString(t, "(car 5)") })
}

func TestConsBuiltin(t *testing.T) {
	assert.Equal(t, "(1 . 2)", evalString(t, "(cons 1 2)").Display())
}

func TestListLength(t *testing.T) {
	assert.Equal(t, "0", evalString(t, "(length '())").Display())
	assert.Equal(t, "3", evalString(t, "(len '(1 2 3))").Display())
}

func TestAppend(t *testing.T) {
	assert.Equal(t, "(1 2 3 4)", evalString(t, "(append '(1 2) '(3 4))").Display())
	assert.Equal(t, "()", evalString(t, "(append)").Display())
}

func TestMapPreservesLengthAndOrder(t *testing.T) {
	got := evalString(t, "(map (lambda (x) (* x 2)) '(1 2 3))")
	assert.Equal(t, "(2 4 6)", got.Display())
}

func TestFilter(t *testing.T) {
	got := evalString(t, "(filter (lambda (x) (> x 2)) '(1 2 3 4))")
	assert.Equal(t, "(3 4)", got.Display())
}

func TestReduce(t *testing.T) {
	assert.Equal(t, "10", evalString(t, "(reduce + '(1 2 3 4))").Display())
	assert.Equal(t, "5", evalString(t, "(reduce + '(5))").Display())
}

// reduce is specified as a right fold: (reduce - '(1 2 3)) is
// (- 1 (- 2 3)), not (- (- 1 2) 3); + hides the distinction since it is
// associative, so this uses a non-commutative proc instead.
func TestReduceIsARightFold(t *testing.T) {
	assert.Equal(t, "2", evalString(t, "(reduce - '(1 2 3))").Display())
}

func TestReduceOfEmptyListFails(t *testing.T) {
	assert.Panics(t, func() { evalString(t, "(reduce + '())") })
}

func TestApplyBuiltin(t *testing.T) {
	assert.Equal(t, "6", evalString(t, "(apply + '(1 2 3))").Display())
}
