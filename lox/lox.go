// Package lox wires the scanner, parser, and evaluator into the single
// `run` entry point the host (CLI / REPL) calls. It owns the global
// environment for the process, matching the contract in spec.md §5:
// the REPL resets the error flag between prompts but keeps the global
// environment across prompts by design.
package lox

import (
	"io"

	"jlox-go/errs"
	"jlox-go/interp"
	"jlox-go/lexer"
	"jlox-go/parser"
)

// Interpreter is the host-facing façade: one instance per REPL session
// or per script execution.
type Interpreter struct {
	reporter *errs.Reporter
	eval     *interp.Evaluator
}

func New(stdout, stderr io.Writer) *Interpreter {
	reporter := errs.New(stderr)
	return &Interpreter{
		reporter: reporter,
		eval:     interp.New(stdout, reporter),
	}
}

// Run scans, parses, and (if parsing succeeded cleanly) evaluates
// source. It never evaluates a program that had a compile-time error,
// per spec.md §4.3's parser/evaluator decoupling invariant.
func (i *Interpreter) Run(source string) {
	tokens := lexer.New(source, i.reporter).ScanTokens()
	stmts := parser.New(tokens, i.reporter).Parse()

	if i.reporter.HadError {
		return
	}
	i.eval.Interpret(stmts)
}

// HadError reports whether any compile-time error occurred since New or
// the last ResetErrors; Run does not clear it.
func (i *Interpreter) HadError() bool { return i.reporter.HadError }

// HadRuntimeError reports whether a runtime error occurred since New or
// the last ResetErrors; Run does not clear it.
func (i *Interpreter) HadRuntimeError() bool { return i.reporter.HadRuntimeError }

// ResetErrors clears both error flags, as the REPL does between
// prompts; the global environment is untouched.
func (i *Interpreter) ResetErrors() { i.reporter.Reset() }
