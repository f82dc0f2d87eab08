package lisp

import "os"

// errorBuiltin raises a LispError built from the Display form of its
// arguments, space-separated, matching original_source/src/builtins.cpp's
// error (which concatenates a message and zero or more values).
func errorBuiltin(args []*Value, _ *Environment) (*Value, error) {
	if err := checkArity("error", args, 1, -1); err != nil {
		return nil, err
	}
	msg := args[0].Display()
	for _, a := range args[1:] {
		msg += " " + a.Display()
	}
	return nil, LispError(msg)
}

// exitBuiltin terminates the process immediately, bypassing any REPL or
// file-driver cleanup, matching original_source/src/builtins.cpp's
// _exit.
func exitBuiltin(args []*Value, _ *Environment) (*Value, error) {
	if err := checkArity("exit", args, 0, 1); err != nil {
		return nil, err
	}
	code := 0
	if len(args) == 1 {
		n, err := integerArg("exit", args, 0)
		if err != nil {
			return nil, err
		}
		code = int(n)
	}
	os.Exit(code)
	panic("unreachable")
}

// evalBuiltin re-enters the evaluator on an already-read datum, in the
// environment of the eval call site.
func evalBuiltin(args []*Value, env *Environment) (*Value, error) {
	if err := checkArity("eval", args, 1, 1); err != nil {
		return nil, err
	}
	return Eval(args[0], env), nil
}
