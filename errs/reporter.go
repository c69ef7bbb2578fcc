// Package errs implements the error-reporting sink threaded through the
// scanner, parser, and evaluator. It is an explicit object rather than
// module-level state, per the "encapsulate the error flag" design note:
// each Reporter instance makes the core re-entrant and testable.
package errs

import (
	"fmt"
	"io"

	"jlox-go/token"
)

// Reporter accumulates the had-error / had-runtime-error flags the host
// inspects after a run, and formats messages to an injected writer.
type Reporter struct {
	w               io.Writer
	HadError        bool
	HadRuntimeError bool
}

func New(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Reset clears both flags, as the REPL does between prompts.
func (r *Reporter) Reset() {
	r.HadError = false
	r.HadRuntimeError = false
}

// Error reports a scanner-level error: no token context, so `where` is
// empty.
func (r *Reporter) Error(line int, message string) {
	r.report(line, "", message)
}

// ErrorAtToken reports a parser-level error anchored to the offending
// token: `at end` for EOF, `at <lexeme>` (unquoted) otherwise.
func (r *Reporter) ErrorAtToken(tok token.Token, message string) {
	if tok.Kind == token.EOF {
		r.report(tok.Line, " at end", message)
		return
	}
	r.report(tok.Line, fmt.Sprintf(" at %s", tok.Lexeme), message)
}

// RuntimeError reports an evaluator-level error raised at the given
// operator/name token, using the same "[line N] Error{where}: message"
// format as compile-time errors.
func (r *Reporter) RuntimeError(tok token.Token, message string) {
	where := fmt.Sprintf(" at %s", tok.Lexeme)
	fmt.Fprintf(r.w, "[line %d] Error%s: %s\n", tok.Line, where, message)
	r.HadRuntimeError = true
}

func (r *Reporter) report(line int, where, message string) {
	fmt.Fprintf(r.w, "[line %d] Error%s: %s\n", line, where, message)
	r.HadError = true
}
