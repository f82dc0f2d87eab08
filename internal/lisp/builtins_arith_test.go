package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArithmetic(t *testing.T) {
	assert.Equal(t, evalString(t, "(+ 3 4)").Display(), evalString(t, "(+ 4 3)").Display())
	assert.Equal(t, evalString(t, "(* 3 4)").Display(), evalString(t, "(* 4 3)").Display())
	assert.Equal(t, "6", evalString(t, "(+ 1 2 3)").Display())
	assert.Equal(t, "1", evalString(t, "(*)").Display())
	assert.Equal(t, "0", evalString(t, "(+)").Display())
	assert.Equal(t, "-5", evalString(t, "(- 5)").Display())
	assert.Equal(t, "3", evalString(t, "(- 5 2)").Display())
	assert.Equal(t, "0.5", evalString(t, "(/ 2)").Display())
	assert.Equal(t, "2", evalString(t, "(/ 4 2)").Display())
}

func TestDivisionByZeroFails(t *testing.T) {
	assert.Panics(t, func() { evalString(t, "(/ 1 0)") })
}

func TestModuloTakesDivisorSign(t *testing.T) {
	assert.Equal(t, "2", evalString(t, "(modulo 7 5)").Display())
	assert.Equal(t, "-3", evalString(t, "(modulo 7 -5)").Display())
}

func TestRemainderTakesDividendSign(t *testing.T) {
	assert.Equal(t, "2", evalString(t, "(remainder 7 5)").Display())
	assert.Equal(t, "2", evalString(t, "(remainder 7 -5)").Display())
	assert.Equal(t, "-2", evalString(t, "(remainder -7 5)").Display())
}

func TestModuloByZeroFails(t *testing.T) {
	assert.Panics(t, func() { evalString(t, "(modulo 3 0)") })
}

func TestQuotientTruncatesTowardZero(t *testing.T) {
	assert.Equal(t, "3", evalString(t, "(quotient 7 2)").Display())
	assert.Equal(t, "-3", evalString(t, "(quotient -7 2)").Display())
}

func TestExptZeroZeroFails(t *testing.T) {
	assert.Panics(t, func() { evalString(t, "(expt 0 0)") })
}

func TestExpt(t *testing.T) {
	assert.Equal(t, "8", evalString(t, "(expt 2 3)").Display())
}

func TestComparisons(t *testing.T) {
	assert.Equal(t, True, evalString(t, "(< 1 2)"))
	assert.Equal(t, False, evalString(t, "(< 2 1)"))
	assert.Equal(t, True, evalString(t, "(<= 2 2)"))
	assert.Equal(t, True, evalString(t, "(>= 2 2)"))
	assert.Equal(t, True, evalString(t, "(> 3 2)"))
}

func TestNumericPredicates(t *testing.T) {
	assert.Equal(t, True, evalString(t, "(zero? 0)"))
	assert.Equal(t, True, evalString(t, "(even? 4)"))
	assert.Equal(t, True, evalString(t, "(odd? 3)"))
	assert.Equal(t, "5", evalString(t, "(abs -5)").Display())
}
