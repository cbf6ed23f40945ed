// SPDX-License-Identifier: Apache-2.0
package ast

// Expression is an unresolved expression. The subset is intentionally small:
// base constructor arguments are constant expressions, and function bodies
// only need enough structure for the statement resolver to walk.
type Expression interface {
	expr()
	ExprPos() Position
}

func (*NumberLiteral) expr() {}
func (*BoolLiteral) expr()   {}
func (*StringLiteral) expr() {}
func (*Ident) expr()         {}
func (*UnaryExpr) expr()     {}
func (*BinaryExpr) expr()    {}
func (*CallExpr) expr()      {}

// NumberLiteral keeps the literal text; hex literals keep their 0x prefix.
type NumberLiteral struct {
	Pos  Position
	Text string
}

func (e *NumberLiteral) ExprPos() Position { return e.Pos }

type BoolLiteral struct {
	Pos   Position
	Value bool
}

func (e *BoolLiteral) ExprPos() Position { return e.Pos }

type StringLiteral struct {
	Pos   Position
	Value string
}

func (e *StringLiteral) ExprPos() Position { return e.Pos }

type Ident struct {
	Pos  Position
	Name string
}

func (e *Ident) ExprPos() Position { return e.Pos }

type UnaryExpr struct {
	Pos  Position
	Op   string
	Expr Expression
}

func (e *UnaryExpr) ExprPos() Position { return e.Pos }

type BinaryExpr struct {
	Pos   Position
	Op    string
	Left  Expression
	Right Expression
}

func (e *BinaryExpr) ExprPos() Position { return e.Pos }

type CallExpr struct {
	Pos  Position
	Func Expression
	Args []Expression
}

func (e *CallExpr) ExprPos() Position { return e.Pos }

// Statement is a single statement in a function body.
type Statement interface {
	stmt()
	StmtPos() Position
}

func (*Block) stmt()       {}
func (*VarDeclStmt) stmt() {}
func (*AssignStmt) stmt()  {}
func (*ReturnStmt) stmt()  {}
func (*ExprStmt) stmt()    {}

type Block struct {
	Pos   Position
	Stmts []Statement
}

func (s *Block) StmtPos() Position { return s.Pos }

// VarDeclStmt is a local variable declaration with optional initializer.
type VarDeclStmt struct {
	Pos  Position
	Type TypeName
	Name Identifier
	Init Expression
}

func (s *VarDeclStmt) StmtPos() Position { return s.Pos }

type AssignStmt struct {
	Pos    Position
	Target Identifier
	Value  Expression
}

func (s *AssignStmt) StmtPos() Position { return s.Pos }

type ReturnStmt struct {
	Pos   Position
	Exprs []Expression
}

func (s *ReturnStmt) StmtPos() Position { return s.Pos }

type ExprStmt struct {
	Pos  Position
	Expr Expression
}

func (s *ExprStmt) StmtPos() Position { return s.Pos }
