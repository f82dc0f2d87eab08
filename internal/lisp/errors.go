package lisp

import "fmt"

// SyntaxError signals that the lexer or reader rejected the input:
// unterminated string, unmatched parens, malformed literal, malformed
// dot. Like the teacher's Error type, it is raised with panic and
// caught once at the top (REPL or file driver), never recovered from
// locally.
type SyntaxError string

func (e SyntaxError) Error() string { return string(e) }

// LispError signals an evaluation-time failure: unbound variable, wrong
// arity, wrong argument type, domain error, malformed special form,
// apply of a non-procedure, or a user (error ...) call.
type LispError string

func (e LispError) Error() string { return string(e) }

// FileError signals that the source file could not be opened or read.
// Only the file driver raises this.
type FileError string

func (e FileError) Error() string { return string(e) }

func syntaxErrorf(format string, args ...interface{}) {
	panic(SyntaxError(fmt.Sprintf(format, args...)))
}

func lispErrorf(format string, args ...interface{}) {
	panic(LispError(fmt.Sprintf(format, args...)))
}

// EOF signals, via panic, that input ended cleanly (raised by
// Reader.Parse and recovered by the REPL and the file driver to
// distinguish "nothing more to read" from a syntax error).
type EOF struct{}

func (EOF) Error() string { return "EOF" }
