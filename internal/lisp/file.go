package lisp

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// RunFile tokenizes and evaluates the top-level forms in the named
// source file against env, in order, printing diagnostics for failures
// but not the value of each form (spec.md §6). Evaluation stops after
// the first reported error. It returns exit code 0 once evaluation
// stops; (exit n) terminates the process itself, so RunFile does not
// return in that case.
func RunFile(env *Environment, path string) (exitCode int, err error) {
	data, readErr := os.ReadFile(path)
	if readErr != nil {
		return 1, errors.Wrapf(FileError(readErr.Error()), "opening %s", path)
	}
	reader := NewReader(strings.NewReader(string(data)))
	for evalFileForm(env, reader) {
	}
	return 0, nil
}

// evalFileForm reads and evaluates one top-level form, reporting
// failures as "Error in line L1 to line L2: <msg>" the way the file
// driver's error path is specified in spec.md §7.
func evalFileForm(env *Environment, reader *Reader) (more bool) {
	startLine := reader.Line()
	defer func() {
		e := recover()
		if e == nil {
			return
		}
		switch e := e.(type) {
		case EOF:
			more = false
		case SyntaxError:
			fmt.Fprintf(os.Stderr, "Error in line %d to line %d: %s\n", startLine, reader.Line(), e)
			env.ResetStack()
			more = false
		case LispError:
			fmt.Fprintf(os.Stderr, "Error in line %d to line %d: %s\n", startLine, reader.Line(), e)
			if trace := env.StackTrace(); trace != "" {
				fmt.Fprint(os.Stderr, trace)
			}
			env.ResetStack()
			more = false
		default:
			panic(e)
		}
	}()
	if reader.AtEOF() {
		return false
	}
	expr := reader.Parse()
	Eval(expr, env)
	return true
}
