package lisp

import "fmt"

// pairArg returns args[i] as a Pair, or a LispError naming proc
// otherwise.
func pairArg(proc string, args []*Value, i int) (*Value, error) {
	if args[i] == nil || !args[i].IsPair() {
		return nil, LispError(fmt.Sprintf("%s: expected a pair in argument %d", proc, i+1))
	}
	return args[i], nil
}

func carBuiltin(args []*Value, _ *Environment) (*Value, error) {
	if err := checkArity("car", args, 1, 1); err != nil {
		return nil, err
	}
	p, err := pairArg("car", args, 0)
	if err != nil {
		return nil, err
	}
	return Car(p), nil
}

func cdrBuiltin(args []*Value, _ *Environment) (*Value, error) {
	if err := checkArity("cdr", args, 1, 1); err != nil {
		return nil, err
	}
	p, err := pairArg("cdr", args, 0)
	if err != nil {
		return nil, err
	}
	return Cdr(p), nil
}

func consBuiltin(args []*Value, _ *Environment) (*Value, error) {
	if err := checkArity("cons", args, 2, 2); err != nil {
		return nil, err
	}
	return Cons(args[0], args[1]), nil
}

func listBuiltin(args []*Value, _ *Environment) (*Value, error) {
	return ListFromSlice(args), nil
}

func lengthBuiltin(args []*Value, _ *Environment) (*Value, error) {
	if err := checkArity("length", args, 1, 1); err != nil {
		return nil, err
	}
	if !args[0].IsList() {
		return nil, LispError("length: expected a list")
	}
	return NewNumber(float64(args[0].Length())), nil
}

// appendBuiltin concatenates zero or more lists; the final argument
// need not be a proper list, matching the teacher's and the original's
// "last element becomes the tail" behavior.
func appendBuiltin(args []*Value, _ *Environment) (*Value, error) {
	if len(args) == 0 {
		return Nil, nil
	}
	for _, a := range args[:len(args)-1] {
		if !a.IsList() {
			return nil, LispError("append: expected a list")
		}
	}
	result := args[len(args)-1]
	for i := len(args) - 2; i >= 0; i-- {
		elems := args[i].ToSlice()
		for j := len(elems) - 1; j >= 0; j-- {
			result = Cons(elems[j], result)
		}
	}
	return result, nil
}

// mapBuiltin applies proc to the elements of one or more lists in
// lockstep, stopping at the shortest, and collects the results into a
// fresh list.
func mapBuiltin(args []*Value, env *Environment) (*Value, error) {
	if err := checkArity("map", args, 2, -1); err != nil {
		return nil, err
	}
	proc := args[0]
	if !proc.IsProcedure() {
		return nil, LispError("map: first argument must be a procedure")
	}
	lists := make([][]*Value, len(args)-1)
	minLen := -1
	for i, l := range args[1:] {
		if !l.IsList() {
			return nil, LispError("map: expected a list")
		}
		lists[i] = l.ToSlice()
		if minLen < 0 || len(lists[i]) < minLen {
			minLen = len(lists[i])
		}
	}
	results := make([]*Value, minLen)
	for i := 0; i < minLen; i++ {
		callArgs := make([]*Value, len(lists))
		for j, l := range lists {
			callArgs[j] = l[i]
		}
		results[i] = Apply(proc, callArgs, env)
	}
	return ListFromSlice(results), nil
}

// filterBuiltin keeps the elements of list for which proc returns a
// truthy value.
func filterBuiltin(args []*Value, env *Environment) (*Value, error) {
	if err := checkArity("filter", args, 2, 2); err != nil {
		return nil, err
	}
	proc := args[0]
	if !proc.IsProcedure() {
		return nil, LispError("filter: first argument must be a procedure")
	}
	if !args[1].IsList() {
		return nil, LispError("filter: second argument must be a list")
	}
	var kept []*Value
	for _, elem := range args[1].ToSlice() {
		if Apply(proc, []*Value{elem}, env).IsTruthy() {
			kept = append(kept, elem)
		}
	}
	return ListFromSlice(kept), nil
}

// reduceBuiltin folds proc over list right-to-left: a single-element
// list returns that element unchanged; an empty list is an error,
// since there is no identity element to fall back on (spec.md §4.7).
func reduceBuiltin(args []*Value, env *Environment) (*Value, error) {
	if err := checkArity("reduce", args, 2, 2); err != nil {
		return nil, err
	}
	proc := args[0]
	if !proc.IsProcedure() {
		return nil, LispError("reduce: first argument must be a procedure")
	}
	if !args[1].IsList() {
		return nil, LispError("reduce: second argument must be a list")
	}
	elems := args[1].ToSlice()
	if len(elems) == 0 {
		return nil, LispError("reduce: empty list has no reduction")
	}
	acc := elems[len(elems)-1]
	for i := len(elems) - 2; i >= 0; i-- {
		acc = Apply(proc, []*Value{elems[i], acc}, env)
	}
	return acc, nil
}

func applyBuiltin(args []*Value, env *Environment) (*Value, error) {
	if err := checkArity("apply", args, 2, 2); err != nil {
		return nil, err
	}
	proc := args[0]
	if !proc.IsProcedure() {
		return nil, LispError("apply: first argument must be a procedure")
	}
	if !args[1].IsList() {
		return nil, LispError("apply: second argument must be a list")
	}
	return Apply(proc, args[1].ToSlice(), env), nil
}
