// Package lisp implements the value model, lexer, reader, and evaluator
// of a small Lisp dialect.
package lisp

import (
	"strconv"
	"strings"
)

// Kind identifies which variant of Value is populated.
type Kind int

const (
	KindBoolean Kind = iota
	KindNumber
	KindString
	KindNil
	KindSymbol
	KindPair
	KindBuiltin
	KindClosure
)

// BuiltinFunc is the signature of a host-implemented procedure.
type BuiltinFunc func(args []*Value, env *Environment) (*Value, error)

// Value is a tagged union of every kind of datum the language can
// produce, whether by reading source text or by evaluating it. Only the
// field matching Kind is meaningful.
type Value struct {
	Kind Kind

	boolean bool
	number  float64
	str     string // String payload, or the Symbol name.

	car, cdr *Value // Pair.

	builtinName string
	builtin     BuiltinFunc

	closure *Closure
}

// Nil is the unique empty-list value. Every reference to "the empty
// list" shares this pointer, which makes identity comparison of Nil in
// eq? trivial.
var Nil = &Value{Kind: KindNil}

// True and False are the two Boolean constants.
var (
	True  = &Value{Kind: KindBoolean, boolean: true}
	False = &Value{Kind: KindBoolean, boolean: false}
)

// NewBoolean returns True or False for the given flag.
func NewBoolean(b bool) *Value {
	if b {
		return True
	}
	return False
}

// NewNumber wraps a float64 as a Value.
func NewNumber(n float64) *Value {
	return &Value{Kind: KindNumber, number: n}
}

// NewString wraps a string as a Value.
func NewString(s string) *Value {
	return &Value{Kind: KindString, str: s}
}

// symbolTable interns Symbol values by name so two reads of the same
// identifier return the same pointer, giving eq? cheap identity
// comparison for symbols the way the teacher's token interning does for
// atoms.
var symbolTable = make(map[string]*Value)

// NewSymbol returns the interned Symbol named name.
func NewSymbol(name string) *Value {
	if v, ok := symbolTable[name]; ok {
		return v
	}
	v := &Value{Kind: KindSymbol, str: name}
	symbolTable[name] = v
	return v
}

// Cons builds a new Pair cell. Cons implements the Lisp function CONS.
func Cons(car, cdr *Value) *Value {
	return &Value{Kind: KindPair, car: car, cdr: cdr}
}

// NewBuiltin wraps a host function as a procedure Value.
func NewBuiltin(name string, fn BuiltinFunc) *Value {
	return &Value{Kind: KindBuiltin, builtinName: name, builtin: fn}
}

// NewClosure wraps a user procedure as a Value.
func NewClosure(c *Closure) *Value {
	return &Value{Kind: KindClosure, closure: c}
}

// Car implements the Lisp function CAR. Car and Cdr are functions, not
// methods, so that (CADR X) reads as Car(Cdr(x)), matching the spelling
// of the operation it performs.
func Car(v *Value) *Value {
	if v == nil || v.Kind != KindPair {
		return Nil
	}
	return v.car
}

// Cdr implements the Lisp function CDR.
func Cdr(v *Value) *Value {
	if v == nil || v.Kind != KindPair {
		return Nil
	}
	return v.cdr
}

// SymbolName returns the name of a Symbol, or "" if v is not a Symbol.
func (v *Value) SymbolName() string {
	if v == nil || v.Kind != KindSymbol {
		return ""
	}
	return v.str
}

// StringValue returns the payload of a String, or "" otherwise.
func (v *Value) StringValue() string {
	if v == nil || v.Kind != KindString {
		return ""
	}
	return v.str
}

// NumberValue returns the payload of a Number, or 0 otherwise.
func (v *Value) NumberValue() float64 {
	if v == nil || v.Kind != KindNumber {
		return 0
	}
	return v.number
}

// BoolValue returns the payload of a Boolean, or false otherwise.
func (v *Value) BoolValue() bool {
	if v == nil || v.Kind != KindBoolean {
		return false
	}
	return v.boolean
}

// BuiltinName returns the registered name of a Builtin, or "" otherwise.
func (v *Value) BuiltinName() string {
	if v == nil || v.Kind != KindBuiltin {
		return ""
	}
	return v.builtinName
}

// Closure returns the Closure payload, or nil if v is not a Closure.
func (v *Value) Closure() *Closure {
	if v == nil || v.Kind != KindClosure {
		return nil
	}
	return v.closure
}

// IsTruthy reports whether v counts as true in a conditional. Only the
// Boolean False value is false; every other value, including 0, the
// empty string, and Nil, is truthy.
func (v *Value) IsTruthy() bool {
	return !(v != nil && v.Kind == KindBoolean && !v.boolean)
}

// IsNil reports whether v is the empty list.
func (v *Value) IsNil() bool {
	return v == nil || v.Kind == KindNil
}

// IsPair reports whether v is a cons cell, proper or dotted.
func (v *Value) IsPair() bool {
	return v != nil && v.Kind == KindPair
}

// IsList reports whether v is Nil or a Pair chain whose final cdr is
// Nil.
func (v *Value) IsList() bool {
	for {
		if v.IsNil() {
			return true
		}
		if !v.IsPair() {
			return false
		}
		v = v.cdr
	}
}

// IsProcedure reports whether v can be applied.
func (v *Value) IsProcedure() bool {
	return v != nil && (v.Kind == KindBuiltin || v.Kind == KindClosure)
}

// Length reports the number of Pair cells in the top-level chain before
// the terminating Nil. Nil itself has length 0. Improper chains count
// only the Pair cells seen before the walk hits a non-Pair, non-Nil
// cdr.
func (v *Value) Length() int {
	n := 0
	for v.IsPair() {
		n++
		v = v.cdr
	}
	return n
}

// ToSlice flattens a proper (or improper) list into a slice of its
// elements, for convenience in builtins that need random access. It
// stops at the first non-Pair cdr.
func (v *Value) ToSlice() []*Value {
	var out []*Value
	for v.IsPair() {
		out = append(out, v.car)
		v = v.cdr
	}
	return out
}

// ListFromSlice builds a proper list from elems.
func ListFromSlice(elems []*Value) *Value {
	result := Nil
	for i := len(elems) - 1; i >= 0; i-- {
		result = Cons(elems[i], result)
	}
	return result
}

// String returns the external representation used by toString: strings
// are quoted and escaped.
func (v *Value) String() string {
	var b strings.Builder
	v.write(&b, true)
	return b.String()
}

// Display returns the external representation used by display: strings
// print raw, unquoted.
func (v *Value) Display() string {
	var b strings.Builder
	v.write(&b, false)
	return b.String()
}

func (v *Value) write(b *strings.Builder, quoteStrings bool) {
	if v == nil {
		v = Nil
	}
	switch v.Kind {
	case KindBoolean:
		if v.boolean {
			b.WriteString("#t")
		} else {
			b.WriteString("#f")
		}
	case KindNumber:
		b.WriteString(formatNumber(v.number))
	case KindString:
		if quoteStrings {
			b.WriteString(quoteString(v.str))
		} else {
			b.WriteString(v.str)
		}
	case KindNil:
		b.WriteString("()")
	case KindSymbol:
		b.WriteString(v.str)
	case KindBuiltin, KindClosure:
		b.WriteString("#<procedure>")
	case KindPair:
		v.writeList(b, quoteStrings)
	}
}

func (v *Value) writeList(b *strings.Builder, quoteStrings bool) {
	b.WriteByte('(')
	first := true
	for {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		v.car.write(b, quoteStrings)
		switch {
		case v.cdr.IsNil():
			b.WriteByte(')')
			return
		case v.cdr.IsPair():
			v = v.cdr
		default:
			b.WriteString(" . ")
			v.cdr.write(b, quoteStrings)
			b.WriteByte(')')
			return
		}
	}
}

// formatNumber prints a Number without a decimal point when it is
// integral, otherwise in decimal form.
func formatNumber(n float64) string {
	if n == float64(int64(n)) {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}

func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\n':
			b.WriteString(`\n`)
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
