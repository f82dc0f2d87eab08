package lisp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunFileEvaluatesTopLevelForms(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.lisp")
	require.NoError(t, os.WriteFile(path, []byte("(define x (+ 1 2))\n(define y (* x 2))\n"), 0o644))

	env := NewRootEnvironment(0)
	code, err := RunFile(env, path)
	require.NoError(t, err)
	require.Equal(t, 0, code)

	v, ok := env.lookup("y")
	require.True(t, ok)
	require.Equal(t, float64(6), v.NumberValue())
}

func TestRunFileMissingFileReturnsFileError(t *testing.T) {
	env := NewRootEnvironment(0)
	_, err := RunFile(env, filepath.Join(t.TempDir(), "missing.lisp"))
	require.Error(t, err)
}

func TestRunFileTerminatesAfterLispError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.lisp")
	require.NoError(t, os.WriteFile(path, []byte("(car 5)\n(define z 9)\n"), 0o644))

	env := NewRootEnvironment(0)
	_, err := RunFile(env, path)
	require.NoError(t, err)

	_, ok := env.lookup("z")
	require.False(t, ok, "file driver must stop at the first error, not evaluate subsequent forms")
}
