package lisp

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// stdout is where display, displayln, newline and print write. Tests
// substitute their own writer via SetOutput.
var stdout io.Writer = os.Stdout

// SetOutput redirects builtin output, for tests and for embedding the
// interpreter with a captured stream.
func SetOutput(w io.Writer) {
	stdout = w
}

func displayBuiltin(args []*Value, _ *Environment) (*Value, error) {
	if err := checkArity("display", args, 1, 1); err != nil {
		return nil, err
	}
	fmt.Fprint(stdout, args[0].Display())
	return Nil, nil
}

func displaylnBuiltin(args []*Value, _ *Environment) (*Value, error) {
	if err := checkArity("displayln", args, 1, 1); err != nil {
		return nil, err
	}
	fmt.Fprintln(stdout, args[0].Display())
	return Nil, nil
}

func newlineBuiltin(args []*Value, _ *Environment) (*Value, error) {
	if err := checkArity("newline", args, 0, 0); err != nil {
		return nil, err
	}
	fmt.Fprintln(stdout)
	return Nil, nil
}

// printBuiltin writes the external (quoted-string) representation,
// unlike display.
func printBuiltin(args []*Value, _ *Environment) (*Value, error) {
	if err := checkArity("print", args, 1, 1); err != nil {
		return nil, err
	}
	fmt.Fprintln(stdout, args[0].String())
	return Nil, nil
}

// stdinReader lazily wraps os.Stdin for the read builtin, so a program
// that never calls read never blocks on it.
var stdinReader *Reader

func readBuiltin(args []*Value, _ *Environment) (*Value, error) {
	if err := checkArity("read", args, 0, 0); err != nil {
		return nil, err
	}
	if stdinReader == nil {
		stdinReader = NewReader(bufio.NewReader(os.Stdin))
	}
	if stdinReader.AtEOF() {
		os.Exit(0)
	}
	return stdinReader.Parse(), nil
}

