// SPDX-License-Identifier: Apache-2.0
package parser

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// The grammar structs below mirror the source syntax one-to-one; conversion
// into internal/ast happens in convert.go. Keyword classification (elementary
// vs user types, abstract validity) is conversion work, not grammar work.

type sourceUnit struct {
	Pragmas   []*pragmaDirective `parser:"@@*"`
	Contracts []*contractDef     `parser:"@@*"`
}

type pragmaDirective struct {
	Pos   lexer.Position
	Name  string   `parser:"\"pragma\" @Ident"`
	Value []string `parser:"(@Ident | @Number | @Operator | @\".\")* \";\""`
}

type contractDef struct {
	Pos      lexer.Position
	Abstract bool            `parser:"@\"abstract\"?"`
	Keyword  string          `parser:"@(\"contract\" | \"interface\" | \"library\")"`
	Name     identNode       `parser:"@@"`
	Bases    []*baseSpec     `parser:"(\"is\" @@ (\",\" @@)*)?"`
	Parts    []*contractPart `parser:"\"{\" @@* \"}\""`
}

type identNode struct {
	Pos  lexer.Position
	Name string `parser:"@Ident"`
}

type baseSpec struct {
	Pos  lexer.Position
	Name identNode `parser:"@@"`
	Args *argList  `parser:"@@?"`
}

type argList struct {
	Pos  lexer.Position
	Open bool        `parser:"@\"(\""`
	Args []*exprNode `parser:"(@@ (\",\" @@)*)? \")\""`
}

type contractPart struct {
	Using    *usingDef    `parser:"  @@"`
	Event    *eventDef    `parser:"| @@"`
	Function *functionDef `parser:"| @@"`
	Variable *variableDef `parser:"| @@"`
}

type usingDef struct {
	Pos      lexer.Position
	Library  identNode `parser:"\"using\" @@ \"for\""`
	Wildcard bool      `parser:"( @\"*\""`
	Type     *typeNode `parser:"| @@ ) \";\""`
}

type eventDef struct {
	Pos    lexer.Position
	Name   identNode    `parser:"\"event\" @@"`
	Params []*paramNode `parser:"\"(\" (@@ (\",\" @@)*)? \")\" \";\""`
}

type functionDef struct {
	Pos    lexer.Position
	Kind   string       `parser:"@(\"function\" | \"constructor\" | \"fallback\" | \"receive\" | \"modifier\")"`
	Name   *identNode   `parser:"@@?"`
	Params []*paramNode `parser:"\"(\" (@@ (\",\" @@)*)? \")\""`
	Attrs  []*funcAttr  `parser:"@@*"`
	Body   *blockNode   `parser:"(@@ | \";\")"`
}

// funcAttr is one post-parameter attribute. Source order is free, so the
// grammar accepts them as a repeated union; the returns clause lives here
// too, before the base-call branch, so "returns (...)" is never mistaken
// for a base constructor invocation.
type funcAttr struct {
	Visibility string        `parser:"  @(\"public\" | \"private\" | \"internal\" | \"external\")"`
	Mutability string        `parser:"| @(\"payable\" | \"view\" | \"pure\")"`
	Virtual    bool          `parser:"| @\"virtual\""`
	Override   *overrideSpec `parser:"| @@"`
	Returns    *returnsSpec  `parser:"| @@"`
	BaseCall   *baseCallSpec `parser:"| @@"`
}

type overrideSpec struct {
	Pos     lexer.Position
	Keyword bool         `parser:"@\"override\""`
	Bases   []*identNode `parser:"(\"(\" @@ (\",\" @@)* \")\")?"`
}

type returnsSpec struct {
	Params []*paramNode `parser:"\"returns\" \"(\" @@ (\",\" @@)* \")\""`
}

type baseCallSpec struct {
	Pos  lexer.Position
	Name identNode   `parser:"@@"`
	Args []*exprNode `parser:"\"(\" (@@ (\",\" @@)*)? \")\""`
}

type paramNode struct {
	Pos      lexer.Position
	Type     *typeNode  `parser:"@@"`
	Location string     `parser:"@(\"memory\" | \"calldata\" | \"storage\")?"`
	Name     *identNode `parser:"@@?"`
}

type variableDef struct {
	Pos   lexer.Position
	Type  *typeNode  `parser:"@@"`
	Attrs []*varAttr `parser:"@@*"`
	Name  identNode  `parser:"@@"`
	Init  *exprNode  `parser:"(\"=\" @@)? \";\""`
}

type varAttr struct {
	Visibility string `parser:"  @(\"public\" | \"private\" | \"internal\")"`
	Constant   bool   `parser:"| @\"constant\""`
}

type typeNode struct {
	Pos     lexer.Position
	Mapping *mappingNode   `parser:"( @@"`
	Name    *identNode     `parser:"| @@ )"`
	Arrays  []*arraySuffix `parser:"@@*"`
}

type mappingNode struct {
	Pos   lexer.Position
	Key   *typeNode `parser:"\"mapping\" \"(\" @@"`
	Value *typeNode `parser:"\"=>\" @@ \")\""`
}

type arraySuffix struct {
	Pos    lexer.Position
	Open   bool      `parser:"@\"[\""`
	Length *exprNode `parser:"@@? \"]\""`
}

type blockNode struct {
	Pos   lexer.Position
	Open  bool        `parser:"@\"{\""`
	Stmts []*stmtNode `parser:"@@* \"}\""`
}

type stmtNode struct {
	Return  *returnStmtNode  `parser:"  @@"`
	VarDecl *varDeclStmtNode `parser:"| @@"`
	Assign  *assignStmtNode  `parser:"| @@"`
	Expr    *exprStmtNode    `parser:"| @@"`
}

type returnStmtNode struct {
	Pos     lexer.Position
	Keyword bool        `parser:"@\"return\""`
	Exprs   []*exprNode `parser:"(@@ (\",\" @@)*)? \";\""`
}

type varDeclStmtNode struct {
	Pos  lexer.Position
	Type *typeNode `parser:"@@"`
	Name identNode `parser:"@@"`
	Init *exprNode `parser:"(\"=\" @@)? \";\""`
}

type assignStmtNode struct {
	Pos    lexer.Position
	Target identNode `parser:"@@"`
	Value  *exprNode `parser:"\"=\" @@ \";\""`
}

type exprStmtNode struct {
	Pos  lexer.Position
	Expr *exprNode `parser:"@@ \";\""`
}

type exprNode struct {
	Pos  lexer.Position
	Left *unaryNode `parser:"@@"`
	Ops  []*binOp   `parser:"@@*"`
}

type binOp struct {
	Op    string     `parser:"@(\"||\" | \"&&\" | \"==\" | \"!=\" | \"<=\" | \">=\" | \"<\" | \">\" | \"+\" | \"-\" | \"*\" | \"/\" | \"%\")"`
	Right *unaryNode `parser:"@@"`
}

type unaryNode struct {
	Pos   lexer.Position
	Op    string       `parser:"@(\"!\" | \"-\")?"`
	Value *primaryNode `parser:"@@"`
}

type primaryNode struct {
	Pos    lexer.Position
	Call   *callNode  `parser:"  @@"`
	Bool   *string    `parser:"| @(\"true\" | \"false\")"`
	Number *string    `parser:"| @Number"`
	Str    *string    `parser:"| @String"`
	Ident  *identNode `parser:"| @@"`
	Paren  *exprNode  `parser:"| \"(\" @@ \")\""`
}

type callNode struct {
	Pos  lexer.Position
	Func identNode   `parser:"@@"`
	Args []*exprNode `parser:"\"(\" (@@ (\",\" @@)*)? \")\""`
}
