// Package interp walks the AST against a lexically-scoped environment
// chain, producing print effects and runtime errors. Dispatch is a
// type switch over the closed ast.Expr/ast.Stmt alternatives rather
// than a visitor, since the set of variants is fixed at compile time.
package interp

import (
	"fmt"
	"io"

	"jlox-go/ast"
	"jlox-go/errs"
	"jlox-go/token"
)

// Evaluator owns the global environment for the lifetime of a run and
// transiently owns block environments, released when their block
// finishes (normally or via runtime-error unwinding).
type Evaluator struct {
	globals  *Environment
	env      *Environment
	out      io.Writer
	reporter *errs.Reporter
}

func New(out io.Writer, reporter *errs.Reporter) *Evaluator {
	globals := NewEnvironment(nil)
	return &Evaluator{globals: globals, env: globals, out: out, reporter: reporter}
}

// Interpret executes statements in order against the current
// environment. A runtime error aborts this call, is reported to the
// sink, and does not propagate to the host.
func (e *Evaluator) Interpret(stmts []ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(*RuntimeError)
			if !ok {
				panic(r)
			}
			e.reporter.RuntimeError(re.Token, re.Message)
		}
	}()

	for _, s := range stmts {
		e.execute(s)
	}
}

func (e *Evaluator) execute(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Expression:
		e.evaluate(s.Expr)
	case *ast.Print:
		value := e.evaluate(s.Expr)
		fmt.Fprintln(e.out, value.Render())
	case *ast.Var:
		value := ast.Nil
		if s.Initializer != nil {
			value = e.evaluate(s.Initializer)
		}
		e.env.Define(s.Name.Lexeme, value)
	case *ast.Block:
		e.executeBlock(s.Statements, NewEnvironment(e.env))
	case *ast.If:
		if e.evaluate(s.Condition).Truthy() {
			e.execute(s.Then)
		} else if s.Else != nil {
			e.execute(s.Else)
		}
	case *ast.While:
		for e.evaluate(s.Condition).Truthy() {
			e.execute(s.Body)
		}
	default:
		panic(fmt.Sprintf("interp: unhandled statement type %T", stmt))
	}
}

// executeBlock runs stmts against env, restoring the previous
// environment on every exit path, including a runtime-error panic
// unwinding through it.
func (e *Evaluator) executeBlock(stmts []ast.Stmt, env *Environment) {
	previous := e.env
	e.env = env
	defer func() { e.env = previous }()

	for _, s := range stmts {
		e.execute(s)
	}
}

func (e *Evaluator) evaluate(expr ast.Expr) ast.Value {
	switch x := expr.(type) {
	case *ast.Literal:
		return x.Value
	case *ast.Grouping:
		return e.evaluate(x.Inner)
	case *ast.Variable:
		v, err := e.env.Get(x.Name)
		if err != nil {
			panic(err)
		}
		return v
	case *ast.Assign:
		value := e.evaluate(x.Value)
		if err := e.env.Assign(x.Name, value); err != nil {
			panic(err)
		}
		return value
	case *ast.Unary:
		return e.evalUnary(x)
	case *ast.Binary:
		return e.evalBinary(x)
	case *ast.Logical:
		return e.evalLogical(x)
	default:
		panic(fmt.Sprintf("interp: unhandled expression type %T", expr))
	}
}

func (e *Evaluator) evalLogical(x *ast.Logical) ast.Value {
	left := e.evaluate(x.Left)
	switch x.Op.Kind {
	case token.OR:
		if left.Truthy() {
			return left
		}
	case token.AND:
		if !left.Truthy() {
			return left
		}
	}
	return e.evaluate(x.Right)
}

func (e *Evaluator) evalUnary(x *ast.Unary) ast.Value {
	right := e.evaluate(x.Right)
	switch x.Op.Kind {
	case token.BANG:
		return ast.Bool(!right.Truthy())
	case token.MINUS:
		n := e.numberOperand(x.Op, right)
		return ast.Number(-n)
	}
	panic(fmt.Sprintf("interp: unhandled unary operator %s", x.Op.Kind))
}

func (e *Evaluator) evalBinary(x *ast.Binary) ast.Value {
	left := e.evaluate(x.Left)
	right := e.evaluate(x.Right)

	switch x.Op.Kind {
	case token.PLUS:
		if left.Kind == ast.ValueNumber && right.Kind == ast.ValueNumber {
			return ast.Number(left.Num + right.Num)
		}
		if left.Kind == ast.ValueString && right.Kind == ast.ValueString {
			return ast.String(left.Str + right.Str)
		}
		panic(&RuntimeError{Token: x.Op, Message: "Operands must be two numbers or two strings."})
	case token.MINUS:
		a, b := e.numberOperands(x.Op, left, right)
		return ast.Number(a - b)
	case token.STAR:
		a, b := e.numberOperands(x.Op, left, right)
		return ast.Number(a * b)
	case token.SLASH:
		a, b := e.numberOperands(x.Op, left, right)
		if b == 0 {
			panic(&RuntimeError{Token: x.Op, Message: "Can't divide by zero."})
		}
		return ast.Number(a / b)
	case token.GREATER:
		a, b := e.numberOperands(x.Op, left, right)
		return ast.Bool(a > b)
	case token.GREATER_EQUAL:
		a, b := e.numberOperands(x.Op, left, right)
		return ast.Bool(a >= b)
	case token.LESS:
		a, b := e.numberOperands(x.Op, left, right)
		return ast.Bool(a < b)
	case token.LESS_EQUAL:
		a, b := e.numberOperands(x.Op, left, right)
		return ast.Bool(a <= b)
	case token.EQUAL_EQUAL:
		return ast.Bool(left.Equal(right))
	case token.BANG_EQUAL:
		return ast.Bool(!left.Equal(right))
	}
	panic(fmt.Sprintf("interp: unhandled binary operator %s", x.Op.Kind))
}

func (e *Evaluator) numberOperand(op token.Token, v ast.Value) float64 {
	if v.Kind != ast.ValueNumber {
		panic(&RuntimeError{Token: op, Message: "Operand must be a number."})
	}
	return v.Num
}

func (e *Evaluator) numberOperands(op token.Token, a, b ast.Value) (float64, float64) {
	if a.Kind != ast.ValueNumber || b.Kind != ast.ValueNumber {
		panic(&RuntimeError{Token: op, Message: "Operand must be a number."})
	}
	return a.Num, b.Num
}
