package lisp

// specialForms is the process-wide table of special-form handlers,
// keyed by head symbol name. It is built once at package init and read
// only thereafter (spec.md §4.8's "mutable globals" note), mirroring
// original_source/src/forms.cpp's SPECIAL_FORMS map — a name→handler
// table, rather than the teacher's inline switch, since this dialect
// names more forms than the teacher's two (quote, cond).
var specialForms = map[string]specialForm{
	"define":     defineForm,
	"quote":      quoteForm,
	"if":         ifForm,
	"and":        andForm,
	"or":         orForm,
	"lambda":     lambdaForm,
	"cond":       condForm,
	"begin":      beginForm,
	"let":        letForm,
	"quasiquote": quasiquoteForm,
}

// evalSequence evaluates each expression in body left to right in env,
// discarding all but the final result. An empty body evaluates to Nil,
// matching empty-closure-body application (spec.md §4.4 Apply).
func evalSequence(body *Value, env *Environment) *Value {
	result := Nil
	for body.IsPair() {
		result = Eval(body.car, env)
		body = body.cdr
	}
	return result
}

// defineForm implements both (define name expr) and the function-sugar
// (define (fname p1 p2 …) body…).
func defineForm(operands *Value, env *Environment) *Value {
	target := Car(operands)
	if target.Kind == KindSymbol {
		value := Eval(Car(Cdr(operands)), env)
		env.define(target.str, value)
		return Nil
	}
	if target.IsPair() {
		name := Car(target)
		if name.Kind != KindSymbol {
			lispErrorf("malformed define: function name must be a symbol")
		}
		params := parseParamList(Cdr(target))
		body := Cdr(operands).ToSlice()
		closure := &Closure{name: name.str, params: params, body: body, env: env}
		env.define(name.str, NewClosure(closure))
		return Nil
	}
	lispErrorf("malformed define")
	panic("unreachable")
}

func quoteForm(operands *Value, _ *Environment) *Value {
	return Car(operands)
}

func ifForm(operands *Value, env *Environment) *Value {
	cond := Car(operands)
	then := Car(Cdr(operands))
	elseClause := Cdr(Cdr(operands))
	if Eval(cond, env).IsTruthy() {
		return Eval(then, env)
	}
	if elseClause.IsNil() {
		return Nil
	}
	return Eval(Car(elseClause), env)
}

func andForm(operands *Value, env *Environment) *Value {
	if operands.IsNil() {
		return True
	}
	var result *Value = True
	for operands.IsPair() {
		result = Eval(operands.car, env)
		if !result.IsTruthy() {
			return result
		}
		operands = operands.cdr
	}
	return result
}

func orForm(operands *Value, env *Environment) *Value {
	for operands.IsPair() {
		v := Eval(operands.car, env)
		if v.IsTruthy() {
			return v
		}
		operands = operands.cdr
	}
	return False
}

func lambdaForm(operands *Value, env *Environment) *Value {
	params := parseParamList(Car(operands))
	body := Cdr(operands).ToSlice()
	return NewClosure(&Closure{name: "lambda", params: params, body: body, env: env})
}

func parseParamList(list *Value) []string {
	var params []string
	for list.IsPair() {
		p := list.car
		if p.Kind != KindSymbol {
			lispErrorf("malformed parameter list: expected a symbol")
		}
		params = append(params, p.str)
		list = list.cdr
	}
	return params
}

// condForm evaluates clauses in order; the first whose test is truthy
// has its body evaluated and returned. An `else` clause, if present,
// must be last and always matches. No match evaluates to Nil.
func condForm(operands *Value, env *Environment) *Value {
	for operands.IsPair() {
		clause := operands.car
		test := Car(clause)
		body := Cdr(clause)
		if test.Kind == KindSymbol && test.str == "else" {
			return evalSequence(body, env)
		}
		if Eval(test, env).IsTruthy() {
			return evalSequence(body, env)
		}
		operands = operands.cdr
	}
	return Nil
}

func beginForm(operands *Value, env *Environment) *Value {
	return evalSequence(operands, env)
}

// letForm evaluates each binding's value expression in the outer
// environment, then evaluates the body in a fresh child environment
// with those bindings installed (spec.md §4.5 — crucially, one binding
// never sees another in the same let).
func letForm(operands *Value, env *Environment) *Value {
	bindings := Car(operands)
	body := Cdr(operands)
	child := env.newChildScope()
	for bindings.IsPair() {
		binding := bindings.car
		name := Car(binding)
		if name.Kind != KindSymbol {
			lispErrorf("malformed let: binding name must be a symbol")
		}
		value := Eval(Car(Cdr(binding)), env)
		child.define(name.str, value)
		bindings = bindings.cdr
	}
	return evalSequence(body, child)
}

// quasiquoteForm walks datum; any (unquote x) nested within is replaced
// by the evaluated x, and every other atom or pair structure passes
// through unevaluated.
func quasiquoteForm(operands *Value, env *Environment) *Value {
	return quasiquoteWalk(Car(operands), env)
}

func quasiquoteWalk(datum *Value, env *Environment) *Value {
	if !datum.IsPair() {
		return datum
	}
	if head := Car(datum); head.Kind == KindSymbol && head.str == "unquote" {
		return Eval(Car(Cdr(datum)), env)
	}
	return Cons(quasiquoteWalk(datum.car, env), quasiquoteWalk(datum.cdr, env))
}
