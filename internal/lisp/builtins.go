package lisp

import "fmt"

// registerBuiltins installs every built-in procedure into env. Called
// once, when the root Environment is created; thereafter the table is
// read-only, like the teacher's elementary funcMap (spec.md §4.8).
func registerBuiltins(env *Environment) {
	for name, fn := range builtinTable {
		env.define(name, NewBuiltin(name, fn))
	}
}

var builtinTable map[string]BuiltinFunc

func init() {
	builtinTable = map[string]BuiltinFunc{
		// Arithmetic.
		"+": addBuiltin,
		"*": mulBuiltin,
		"-": subBuiltin,
		"/": divBuiltin,

		// Unary numeric.
		"abs":   absBuiltin,
		"zero?": zeroBuiltin,
		"even?": evenBuiltin,
		"odd?":  oddBuiltin,

		// Integer ops.
		"quotient":  quotientBuiltin,
		"modulo":    moduloBuiltin,
		"remainder": remainderBuiltin,
		"expt":      exptBuiltin,

		// Comparison.
		"=":  numEqBuiltin,
		"<":  ltBuiltin,
		">":  gtBuiltin,
		"<=": leBuiltin,
		">=": geBuiltin,

		// Equality.
		"eq?":    eqBuiltin,
		"equal?": equalBuiltin,

		// Logical.
		"not": notBuiltin,

		// Predicates.
		"atom?":      atomPredBuiltin,
		"boolean?":   booleanPredBuiltin,
		"integer?":   integerPredBuiltin,
		"list?":      listPredBuiltin,
		"number?":    numberPredBuiltin,
		"null?":      nullPredBuiltin,
		"pair?":      pairPredBuiltin,
		"procedure?": procedurePredBuiltin,
		"string?":    stringPredBuiltin,
		"symbol?":    symbolPredBuiltin,

		// Pair/list.
		"car":    carBuiltin,
		"cdr":    cdrBuiltin,
		"cons":   consBuiltin,
		"list":   listBuiltin,
		"length": lengthBuiltin,
		"len":    lengthBuiltin, // Alias kept from original_source/src/builtins.cpp.
		"append": appendBuiltin,

		// Higher-order.
		"map":    mapBuiltin,
		"filter": filterBuiltin,
		"reduce": reduceBuiltin,

		// Apply.
		"apply": applyBuiltin,

		// I/O.
		"display":   displayBuiltin,
		"displayln": displaylnBuiltin,
		"newline":   newlineBuiltin,
		"print":     printBuiltin,
		"read":      readBuiltin,

		// Control.
		"error": errorBuiltin,
		"exit":  exitBuiltin,
		"eval":  evalBuiltin,
	}
}

// checkArity reports an error unless len(args) is within [min, max].
// max < 0 means unbounded.
func checkArity(name string, args []*Value, min, max int) error {
	n := len(args)
	if n < min || (max >= 0 && n > max) {
		if min == max {
			return LispError(fmt.Sprintf("%s: expected %d argument(s), got %d", name, min, n))
		}
		if max < 0 {
			return LispError(fmt.Sprintf("%s: expected at least %d argument(s), got %d", name, min, n))
		}
		return LispError(fmt.Sprintf("%s: expected %d to %d argument(s), got %d", name, min, max, n))
	}
	return nil
}

// numberArg returns args[i] as a float64, or a LispError naming proc if
// it is not a Number.
func numberArg(proc string, args []*Value, i int) (float64, error) {
	if args[i] == nil || args[i].Kind != KindNumber {
		return 0, LispError(fmt.Sprintf("%s: expected a number in argument %d", proc, i+1))
	}
	return args[i].number, nil
}

func isIntegral(n float64) bool {
	return n == float64(int64(n))
}

func integerArg(proc string, args []*Value, i int) (int64, error) {
	n, err := numberArg(proc, args, i)
	if err != nil {
		return 0, err
	}
	if !isIntegral(n) {
		return 0, LispError(fmt.Sprintf("%s: expected an integer in argument %d", proc, i+1))
	}
	return int64(n), nil
}
