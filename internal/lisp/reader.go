package lisp

import "io"

// Reader consumes tokens front to back and produces Values. It is not a
// separate AST builder: it builds the same Pair/atom structure the
// evaluator walks, which is what lets quote and eval stay symmetric
// (spec.md §4.2).
type Reader struct {
	lex     *lexer
	peekTok *token
	havePeek bool
}

// NewReader returns a Reader that reads source text from r.
func NewReader(r io.RuneReader) *Reader {
	return &Reader{lex: newLexer(r)}
}

func (r *Reader) next() token {
	if r.havePeek {
		r.havePeek = false
		return *r.peekTok
	}
	return r.lex.next()
}

func (r *Reader) peek() token {
	if !r.havePeek {
		t := r.lex.next()
		r.peekTok = &t
		r.havePeek = true
	}
	return *r.peekTok
}

// AtEOF reports whether the next token is end of input, without
// consuming it. The REPL and file driver use this to distinguish "no
// more top-level forms" from a mid-expression error.
func (r *Reader) AtEOF() bool {
	return r.peek().typ == tokenEOF
}

// Line reports the current 1-based line number of the underlying
// lexer, for the file driver's "Error in line L1 to line L2" reports.
func (r *Reader) Line() int {
	return r.lex.line
}

var quoteSymbol = NewSymbol("quote")
var quasiquoteSymbol = NewSymbol("quasiquote")
var unquoteSymbol = NewSymbol("unquote")

// Parse reads one complete expression and returns the Value it denotes.
// It panics with SyntaxError on malformed input and with EOF if called
// when no more input remains.
func (r *Reader) Parse() *Value {
	t := r.next()
	switch t.typ {
	case tokenEOF:
		panic(EOF{})
	case tokenBoolean:
		return NewBoolean(t.bool)
	case tokenNumber:
		return NewNumber(t.number)
	case tokenString:
		return NewString(t.str)
	case tokenIdentifier:
		return NewSymbol(t.text)
	case tokenQuote:
		return wrapAbbreviation(quoteSymbol, r.Parse())
	case tokenQuasiquote:
		return wrapAbbreviation(quasiquoteSymbol, r.Parse())
	case tokenUnquote:
		return wrapAbbreviation(unquoteSymbol, r.Parse())
	case tokenLeftParen:
		return r.parseTail()
	default:
		syntaxErrorf("unexpected token in expression: %v", t.typ)
		panic("unreachable")
	}
}

func wrapAbbreviation(sym, datum *Value) *Value {
	return Cons(sym, Cons(datum, Nil))
}

// parseTail parses the body of a list after the opening paren has been
// consumed.
func (r *Reader) parseTail() *Value {
	if r.peek().typ == tokenRightParen {
		r.next()
		return Nil
	}
	if r.peek().typ == tokenEOF {
		syntaxErrorf("unmatched parens")
	}
	head := r.Parse()
	if r.peek().typ == tokenDot {
		r.next()
		tail := r.Parse()
		if r.next().typ != tokenRightParen {
			syntaxErrorf("malformed dotted pair: expected ')'")
		}
		return Cons(head, tail)
	}
	tail := r.parseTail()
	return Cons(head, tail)
}
