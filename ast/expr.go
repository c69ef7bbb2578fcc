package ast

import "jlox-go/token"

// Expr is the closed set of expression variants. Evaluation dispatches
// on the concrete type via a type switch in interp.Evaluator rather
// than a visitor, since the alternatives are fixed at compile time.
type Expr interface {
	exprNode()
}

type Literal struct {
	Value Value
}

type Grouping struct {
	Inner Expr
}

type Unary struct {
	Op    token.Token
	Right Expr
}

type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

type Logical struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

type Variable struct {
	Name token.Token
}

type Assign struct {
	Name  token.Token
	Value Expr
}

func (*Literal) exprNode()  {}
func (*Grouping) exprNode() {}
func (*Unary) exprNode()    {}
func (*Binary) exprNode()   {}
func (*Logical) exprNode()  {}
func (*Variable) exprNode() {}
func (*Assign) exprNode()   {}
