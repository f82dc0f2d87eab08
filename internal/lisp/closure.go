package lisp

// Closure is a user-defined procedure: a parameter list, a body (an
// ordered sequence of expressions evaluated left to right, returning
// the last), and the Environment in which the lambda form was
// evaluated. Capturing that Environment, rather than the caller's, is
// what gives the language lexical scope (spec.md §4.3).
type Closure struct {
	name   string // For tracebacks; "lambda" if anonymous.
	params []string
	body   []*Value
	env    *Environment
}

// Apply creates a fresh child of the closure's defining environment,
// binds params to args, evaluates the body sequentially in that child,
// and returns the value of the last expression (Nil for an empty body).
func (c *Closure) Apply(args []*Value) *Value {
	child := c.env.createChild(c.name, c.params, args)
	child.pushFrame(c.name, ListFromSlice(args))
	var result *Value = Nil
	for _, expr := range c.body {
		result = Eval(expr, child)
	}
	// Popped only on normal return: an error leaves the active calls on
	// the stack for StackTrace until the top-level handler calls
	// ResetStack.
	child.popFrame()
	return result
}
