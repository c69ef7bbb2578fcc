package interp

import "jlox-go/token"

// RuntimeError aborts the statement list currently being interpreted.
// It carries the operator/name token responsible so the host can
// report a line number; it is caught at the Interpret boundary and
// never escapes across that call.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return e.Message
}
