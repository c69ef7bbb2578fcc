package interp

import (
	"fmt"

	"jlox-go/ast"
	"jlox-go/token"
)

// Environment is a scope frame in the singly-linked chain of scopes.
// It owns its bindings; the parent pointer is a non-owning reference
// whose lifetime is provably at least as long as the child's, since no
// closures exist in this core and no environment outlives the block
// that created it.
type Environment struct {
	parent *Environment
	values map[string]ast.Value
}

func NewEnvironment(parent *Environment) *Environment {
	return &Environment{parent: parent, values: make(map[string]ast.Value)}
}

// Define unconditionally inserts into the innermost scope. A later
// definition of the same name in the same scope shadows the earlier
// one; this is deliberate, not an error (useful for a REPL).
func (e *Environment) Define(name string, value ast.Value) {
	e.values[name] = value
}

// Get looks up name from innermost to outermost scope.
func (e *Environment) Get(name token.Token) (ast.Value, error) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.values[name.Lexeme]; ok {
			return v, nil
		}
	}
	return ast.Nil, &RuntimeError{Token: name, Message: fmt.Sprintf("Undefined variable '%s'.", name.Lexeme)}
}

// Assign mutates the innermost scope in which name is already bound; it
// never creates a new binding.
func (e *Environment) Assign(name token.Token, value ast.Value) error {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.values[name.Lexeme]; ok {
			env.values[name.Lexeme] = value
			return nil
		}
	}
	return &RuntimeError{Token: name, Message: fmt.Sprintf("Undefined variable '%s'.", name.Lexeme)}
}
