package lisp

import "math"

// addBuiltin implements the variadic + procedure.
func addBuiltin(args []*Value, _ *Environment) (*Value, error) {
	sum := 0.0
	for i := range args {
		n, err := numberArg("+", args, i)
		if err != nil {
			return nil, err
		}
		sum += n
	}
	return NewNumber(sum), nil
}

// mulBuiltin implements the variadic * procedure.
func mulBuiltin(args []*Value, _ *Environment) (*Value, error) {
	product := 1.0
	for i := range args {
		n, err := numberArg("*", args, i)
		if err != nil {
			return nil, err
		}
		product *= n
	}
	return NewNumber(product), nil
}

// subBuiltin implements - : unary negation, or binary subtraction.
func subBuiltin(args []*Value, _ *Environment) (*Value, error) {
	if err := checkArity("-", args, 1, 2); err != nil {
		return nil, err
	}
	a, err := numberArg("-", args, 0)
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		return NewNumber(-a), nil
	}
	b, err := numberArg("-", args, 1)
	if err != nil {
		return nil, err
	}
	return NewNumber(a - b), nil
}

// divBuiltin implements / : unary reciprocal, or binary division.
// Division by zero is a LispError.
func divBuiltin(args []*Value, _ *Environment) (*Value, error) {
	if err := checkArity("/", args, 1, 2); err != nil {
		return nil, err
	}
	a, err := numberArg("/", args, 0)
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		if a == 0 {
			return nil, LispError("/: division by zero")
		}
		return NewNumber(1 / a), nil
	}
	b, err := numberArg("/", args, 1)
	if err != nil {
		return nil, err
	}
	if b == 0 {
		return nil, LispError("/: division by zero")
	}
	return NewNumber(a / b), nil
}

func absBuiltin(args []*Value, _ *Environment) (*Value, error) {
	if err := checkArity("abs", args, 1, 1); err != nil {
		return nil, err
	}
	n, err := numberArg("abs", args, 0)
	if err != nil {
		return nil, err
	}
	return NewNumber(math.Abs(n)), nil
}

func zeroBuiltin(args []*Value, _ *Environment) (*Value, error) {
	if err := checkArity("zero?", args, 1, 1); err != nil {
		return nil, err
	}
	n, err := numberArg("zero?", args, 0)
	if err != nil {
		return nil, err
	}
	return NewBoolean(n == 0), nil
}

func evenBuiltin(args []*Value, _ *Environment) (*Value, error) {
	if err := checkArity("even?", args, 1, 1); err != nil {
		return nil, err
	}
	n, err := integerArg("even?", args, 0)
	if err != nil {
		return nil, err
	}
	return NewBoolean(n%2 == 0), nil
}

func oddBuiltin(args []*Value, _ *Environment) (*Value, error) {
	if err := checkArity("odd?", args, 1, 1); err != nil {
		return nil, err
	}
	n, err := integerArg("odd?", args, 0)
	if err != nil {
		return nil, err
	}
	return NewBoolean(n%2 != 0), nil
}

// quotientBuiltin implements integer division, truncated toward zero,
// per original_source/src/builtins.cpp's quotient (true division first,
// then truncation).
func quotientBuiltin(args []*Value, _ *Environment) (*Value, error) {
	if err := checkArity("quotient", args, 2, 2); err != nil {
		return nil, err
	}
	x, err := integerArg("quotient", args, 0)
	if err != nil {
		return nil, err
	}
	y, err := integerArg("quotient", args, 1)
	if err != nil {
		return nil, err
	}
	if y == 0 {
		return nil, LispError("quotient: division by zero")
	}
	return NewNumber(float64(x / y)), nil
}

// moduloBuiltin implements modulo: the result takes the divisor's sign.
func moduloBuiltin(args []*Value, _ *Environment) (*Value, error) {
	if err := checkArity("modulo", args, 2, 2); err != nil {
		return nil, err
	}
	x, err := integerArg("modulo", args, 0)
	if err != nil {
		return nil, err
	}
	y, err := integerArg("modulo", args, 1)
	if err != nil {
		return nil, err
	}
	if y == 0 {
		return nil, LispError("modulo: division by zero")
	}
	r := x % y
	if r != 0 && (r < 0) != (y < 0) {
		r += y
	}
	return NewNumber(float64(r)), nil
}

// remainderBuiltin implements remainder: the result takes the
// dividend's sign.
func remainderBuiltin(args []*Value, _ *Environment) (*Value, error) {
	if err := checkArity("remainder", args, 2, 2); err != nil {
		return nil, err
	}
	x, err := integerArg("remainder", args, 0)
	if err != nil {
		return nil, err
	}
	y, err := integerArg("remainder", args, 1)
	if err != nil {
		return nil, err
	}
	if y == 0 {
		return nil, LispError("remainder: division by zero")
	}
	return NewNumber(float64(x % y)), nil
}

// exptBuiltin implements expt. (expt 0 0) is explicitly undefined per
// spec.md §4.7.
func exptBuiltin(args []*Value, _ *Environment) (*Value, error) {
	if err := checkArity("expt", args, 2, 2); err != nil {
		return nil, err
	}
	base, err := numberArg("expt", args, 0)
	if err != nil {
		return nil, err
	}
	exp, err := numberArg("expt", args, 1)
	if err != nil {
		return nil, err
	}
	if base == 0 && exp == 0 {
		return nil, LispError("expt: 0**0 is undefined")
	}
	return NewNumber(math.Pow(base, exp)), nil
}

func numEqBuiltin(args []*Value, _ *Environment) (*Value, error) {
	if err := checkArity("=", args, 2, 2); err != nil {
		return nil, err
	}
	a, err := numberArg("=", args, 0)
	if err != nil {
		return nil, err
	}
	b, err := numberArg("=", args, 1)
	if err != nil {
		return nil, err
	}
	return NewBoolean(a == b), nil
}

func ltBuiltin(args []*Value, _ *Environment) (*Value, error) {
	return numCompare("<", args, func(a, b float64) bool { return a < b })
}

func gtBuiltin(args []*Value, _ *Environment) (*Value, error) {
	return numCompare(">", args, func(a, b float64) bool { return a > b })
}

func leBuiltin(args []*Value, _ *Environment) (*Value, error) {
	return numCompare("<=", args, func(a, b float64) bool { return a <= b })
}

func geBuiltin(args []*Value, _ *Environment) (*Value, error) {
	return numCompare(">=", args, func(a, b float64) bool { return a >= b })
}

func numCompare(name string, args []*Value, cmp func(a, b float64) bool) (*Value, error) {
	if err := checkArity(name, args, 2, 2); err != nil {
		return nil, err
	}
	a, err := numberArg(name, args, 0)
	if err != nil {
		return nil, err
	}
	b, err := numberArg(name, args, 1)
	if err != nil {
		return nil, err
	}
	return NewBoolean(cmp(a, b)), nil
}
