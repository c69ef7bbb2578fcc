// Package repl implements the interactive prompt loop described in
// spec.md §6. It is grounded in the read-eval-print loop pattern used
// across the retrieved pack (readline-backed line editing, colored
// banner and error output) rather than a bare bufio.Scanner loop.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"jlox-go/lox"
)

const (
	banner = "Welcome to python-lox 1.0!"
	prompt = ">> "
)

var (
	bannerColor = color.New(color.FgCyan)
	errorColor  = color.New(color.FgRed)
)

// Run starts the prompt loop. On each line: an empty line ends the
// session; otherwise the line is run through interp and the error
// flag is cleared so the next prompt starts clean. EOF or interrupt
// (Ctrl-D / Ctrl-C) ends the loop with status 0.
func Run(stdin io.ReadCloser, stdout, stderr io.Writer) int {
	bannerColor.Fprintln(stdout, banner)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      prompt,
		Stdin:       stdin,
		Stdout:      stdout,
		Stderr:      stderr,
		HistoryFile: "",
	})
	if err != nil {
		errorColor.Fprintf(stderr, "failed to start prompt: %v\n", err)
		return 0
	}
	defer rl.Close()

	interpreter := lox.New(stdout, stderr)

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			return 0
		}

		if strings.TrimSpace(line) == "" {
			return 0
		}

		interpreter.Run(line)
		interpreter.ResetErrors()
	}
}
