// Command jlox is the host entry point described in spec.md §6: zero
// arguments starts the interactive prompt, one argument runs a script
// file, and two or more is a usage error.
package main

import (
	"flag"
	"fmt"
	"os"

	"jlox-go/lox"
	"jlox-go/repl"
)

func main() {
	flag.Parse()
	args := flag.Args()

	switch len(args) {
	case 0:
		os.Exit(repl.Run(os.Stdin, os.Stdout, os.Stderr))
	case 1:
		os.Exit(runFile(args[0]))
	default:
		fmt.Fprintln(os.Stderr, "Usage: jlox [script]")
		os.Exit(64)
	}
}

func runFile(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		return 1
	}

	interpreter := lox.New(os.Stdout, os.Stderr)
	interpreter.Run(string(source))

	if interpreter.HadError() || interpreter.HadRuntimeError() {
		return 1
	}
	return 0
}
