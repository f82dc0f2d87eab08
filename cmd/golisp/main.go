// Command golisp is an interactive and batch interpreter for a small
// Lisp-family language: a REPL when invoked with no arguments, a file
// evaluator when given a source path.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kcollins/golisp/internal/lisp"
)

var (
	flagPrompt             string
	flagContinuationPrompt string
	flagDepth              int
	flagSExpr              bool
	flagConfig             string
	flagHistory            string
)

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "golisp [file]",
		Short: "An interpreter for a small Lisp-family language",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGolisp,
	}
	defaults := lisp.DefaultConfig()
	cmd.PersistentFlags().StringVar(&flagPrompt, "prompt", defaults.Prompt, "interactive prompt")
	cmd.PersistentFlags().StringVar(&flagContinuationPrompt, "continuation-prompt", defaults.ContinuationPrompt, "continuation prompt for unbalanced input")
	cmd.PersistentFlags().IntVar(&flagDepth, "depth", defaults.MaxStackDepth, "maximum call depth; 0 means no limit")
	cmd.PersistentFlags().BoolVar(&flagSExpr, "sexpr", defaults.PrintSExpr, "print results in external form (strings quoted)")
	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to a YAML config file")
	cmd.PersistentFlags().StringVar(&flagHistory, "history", defaults.HistoryFile, "readline history file")
	return cmd
}

func runGolisp(cmd *cobra.Command, args []string) error {
	cfg, err := lisp.LoadConfig(flagConfig)
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, &cfg)

	env := lisp.NewRootEnvironment(cfg.MaxStackDepth)

	if len(args) == 1 {
		code, err := lisp.RunFile(env, args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		os.Exit(code)
	}

	repl, err := lisp.NewREPL(env, cfg.Prompt, cfg.ContinuationPrompt, cfg.HistoryFile)
	if err != nil {
		return err
	}
	defer repl.Close()
	repl.PrintSExpr = cfg.PrintSExpr
	repl.Run()
	return nil
}

// applyFlagOverrides lets any flag the user explicitly set on the
// command line take precedence over the loaded config file.
func applyFlagOverrides(cmd *cobra.Command, cfg *lisp.Config) {
	flags := cmd.Flags()
	if flags.Changed("prompt") {
		cfg.Prompt = flagPrompt
	}
	if flags.Changed("continuation-prompt") {
		cfg.ContinuationPrompt = flagContinuationPrompt
	}
	if flags.Changed("depth") {
		cfg.MaxStackDepth = flagDepth
	}
	if flags.Changed("sexpr") {
		cfg.PrintSExpr = flagSExpr
	}
	if flags.Changed("history") {
		cfg.HistoryFile = flagHistory
	}
}
