package lisp

// specialForm is the signature of a special-form handler: it receives
// the unevaluated operand list (the cdr of the form) and the
// environment the form appears in, and decides for itself which parts
// to evaluate (spec.md §4.5).
type specialForm func(operands *Value, env *Environment) *Value

// Eval evaluates expr in env and returns the resulting Value, per the
// dispatch table in spec.md §4.4.
func Eval(expr *Value, env *Environment) *Value {
	if expr == nil {
		expr = Nil
	}
	switch expr.Kind {
	case KindBoolean, KindNumber, KindString, KindBuiltin, KindClosure:
		return expr
	case KindNil:
		lispErrorf("Evaluating nil is prohibited.")
	case KindSymbol:
		v, ok := env.lookup(expr.str)
		if !ok {
			lispErrorf("Variable %s not defined", expr.str)
		}
		return v
	case KindPair:
		return evalForm(expr, env)
	}
	lispErrorf("Unimplemented")
	panic("unreachable")
}

// evalForm handles the Pair case of Eval: a form application.
func evalForm(expr *Value, env *Environment) *Value {
	head := Car(expr)
	if head.Kind == KindSymbol {
		if handler, ok := specialForms[head.str]; ok {
			return handler(Cdr(expr), env)
		}
	}
	proc := Eval(head, env)
	args := evalList(Cdr(expr), env)
	return Apply(proc, args, env)
}

// evalList evaluates each element of a list left to right, in order,
// and returns the results as a slice.
func evalList(list *Value, env *Environment) []*Value {
	var out []*Value
	for list.IsPair() {
		out = append(out, Eval(list.car, env))
		list = list.cdr
	}
	return out
}

// Apply invokes proc (a Builtin or Closure) on args, which have already
// been evaluated. env is the environment the call is being made from;
// Builtin procedures that need to call back into the evaluator (apply,
// map, filter, reduce, eval) use it.
func Apply(proc *Value, args []*Value, env *Environment) *Value {
	if proc == nil || !proc.IsProcedure() {
		lispErrorf("not a procedure: %s", proc.String())
	}
	switch proc.Kind {
	case KindBuiltin:
		result, err := proc.builtin(args, env)
		if err != nil {
			panic(err)
		}
		return result
	case KindClosure:
		return proc.closure.Apply(args)
	default:
		lispErrorf("not a procedure: %s", proc.String())
		panic("unreachable")
	}
}
