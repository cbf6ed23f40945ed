// SPDX-License-Identifier: Apache-2.0
package parser

import (
	"regexp"
	"strings"

	"github.com/Setheum-Labs/solang/internal/ast"
	"github.com/Setheum-Labs/solang/internal/diag"
)

// converter lowers the grammar structs into internal/ast, collecting
// declaration-shape diagnostics along the way. Semantic validation stays in
// the resolver; only things the grammar cannot express are checked here.
type converter struct {
	fileNo      int
	diagnostics diag.Diagnostics
}

func (c *converter) errorf(pos ast.Position, format string, args ...any) {
	c.diagnostics.Push(diag.Errorf(pos, format, args...))
}

func (c *converter) sourceUnit(unit *sourceUnit) *ast.SourceUnit {
	tree := &ast.SourceUnit{}
	for _, def := range unit.Contracts {
		tree.Contracts = append(tree.Contracts, c.contract(def))
	}
	return tree
}

func (c *converter) contract(def *contractDef) *ast.ContractDefinition {
	kind := ast.KindContract
	switch def.Keyword {
	case "interface":
		kind = ast.KindInterface
	case "library":
		kind = ast.KindLibrary
	}
	if def.Abstract {
		if def.Keyword != "contract" {
			c.errorf(position(c.fileNo, def.Pos),
				"‘abstract’ is not valid on %s ‘%s’", def.Keyword, def.Name.Name)
		} else {
			kind = ast.KindAbstractContract
		}
	}

	contract := &ast.ContractDefinition{
		Pos:  position(c.fileNo, def.Pos),
		Kind: kind,
		Name: c.ident(def.Name),
	}

	for _, base := range def.Bases {
		spec := ast.BaseSpecifier{
			Pos:  position(c.fileNo, base.Pos),
			Name: c.ident(base.Name),
		}
		if base.Args != nil {
			spec.HasArgs = true
			spec.Args = c.exprs(base.Args.Args)
		}
		contract.Bases = append(contract.Bases, spec)
	}

	for _, part := range def.Parts {
		switch {
		case part.Using != nil:
			contract.Parts = append(contract.Parts, c.using(part.Using))
		case part.Event != nil:
			contract.Parts = append(contract.Parts, c.event(part.Event))
		case part.Function != nil:
			contract.Parts = append(contract.Parts, c.function(part.Function))
		case part.Variable != nil:
			contract.Parts = append(contract.Parts, c.variable(part.Variable))
		}
	}

	return contract
}

func (c *converter) using(def *usingDef) *ast.UsingDefinition {
	using := &ast.UsingDefinition{
		Pos:     position(c.fileNo, def.Pos),
		Library: c.ident(def.Library),
	}
	if !def.Wildcard && def.Type != nil {
		using.Type = c.typeName(def.Type)
	}
	return using
}

func (c *converter) event(def *eventDef) *ast.EventDefinition {
	return &ast.EventDefinition{
		Pos:    position(c.fileNo, def.Pos),
		Name:   c.ident(def.Name),
		Params: c.params(def.Params),
	}
}

func (c *converter) function(def *functionDef) *ast.FunctionDefinition {
	fn := &ast.FunctionDefinition{
		Pos:    position(c.fileNo, def.Pos),
		Params: c.params(def.Params),
	}

	switch def.Kind {
	case "constructor":
		fn.Kind = ast.KindConstructor
	case "fallback":
		fn.Kind = ast.KindFallback
	case "receive":
		fn.Kind = ast.KindReceive
	case "modifier":
		fn.Kind = ast.KindModifier
	default:
		fn.Kind = ast.KindFunction
	}

	switch fn.Kind {
	case ast.KindFunction, ast.KindModifier:
		if def.Name == nil {
			c.errorf(fn.Pos, "%s is missing a name", def.Kind)
		} else {
			fn.Name = c.ident(*def.Name)
		}
	default:
		if def.Name != nil {
			c.errorf(position(c.fileNo, def.Name.Pos),
				"%s cannot have a name", def.Kind)
		}
	}

	for _, attr := range def.Attrs {
		switch {
		case attr.Visibility != "":
			fn.Visibility = visibility(attr.Visibility)
		case attr.Mutability != "":
			fn.Mutability = mutability(attr.Mutability)
		case attr.Virtual:
			fn.Virtual = true
		case attr.Override != nil:
			spec := &ast.OverrideSpecifier{Pos: position(c.fileNo, attr.Override.Pos)}
			for _, base := range attr.Override.Bases {
				spec.Bases = append(spec.Bases, c.ident(*base))
			}
			fn.Override = spec
		case attr.Returns != nil:
			fn.Returns = c.params(attr.Returns.Params)
		case attr.BaseCall != nil:
			fn.BaseCalls = append(fn.BaseCalls, ast.BaseCall{
				Pos:  position(c.fileNo, attr.BaseCall.Pos),
				Name: c.ident(attr.BaseCall.Name),
				Args: c.exprs(attr.BaseCall.Args),
			})
		}
	}

	if def.Body != nil {
		fn.Body = c.block(def.Body)
	}

	return fn
}

func (c *converter) variable(def *variableDef) *ast.VariableDefinition {
	variable := &ast.VariableDefinition{
		Pos:  position(c.fileNo, def.Pos),
		Type: c.typeName(def.Type),
		Name: c.ident(def.Name),
	}
	for _, attr := range def.Attrs {
		switch {
		case attr.Visibility != "":
			variable.Visibility = visibility(attr.Visibility)
		case attr.Constant:
			variable.Constant = true
		}
	}
	if def.Init != nil {
		variable.Initializer = c.expr(def.Init)
	}
	return variable
}

func (c *converter) params(nodes []*paramNode) []ast.Parameter {
	var params []ast.Parameter
	for _, node := range nodes {
		param := ast.Parameter{
			Pos:  position(c.fileNo, node.Pos),
			Type: c.typeName(node.Type),
		}
		if node.Name != nil {
			param.Name = c.ident(*node.Name)
		}
		params = append(params, param)
	}
	return params
}

var (
	intTypePattern   = regexp.MustCompile(`^(u?int)([0-9]+)?$`)
	bytesTypePattern = regexp.MustCompile(`^bytes([0-9]+)$`)
)

func isElementaryType(name string) bool {
	switch name {
	case "bool", "address", "string", "bytes":
		return true
	}
	if m := intTypePattern.FindStringSubmatch(name); m != nil {
		if m[2] == "" {
			return true
		}
		bits := atoi(m[2])
		return bits >= 8 && bits <= 256 && bits%8 == 0
	}
	if m := bytesTypePattern.FindStringSubmatch(name); m != nil {
		n := atoi(m[1])
		return n >= 1 && n <= 32
	}
	return false
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}

func (c *converter) typeName(node *typeNode) ast.TypeName {
	var ty ast.TypeName

	switch {
	case node.Mapping != nil:
		ty = &ast.MappingType{
			Pos:   position(c.fileNo, node.Mapping.Pos),
			Key:   c.typeName(node.Mapping.Key),
			Value: c.typeName(node.Mapping.Value),
		}
	case node.Name != nil:
		pos := position(c.fileNo, node.Name.Pos)
		if isElementaryType(node.Name.Name) {
			ty = &ast.ElementaryType{Pos: pos, Name: node.Name.Name}
		} else {
			ty = &ast.UserType{Pos: pos, Name: c.ident(*node.Name)}
		}
	}

	for _, suffix := range node.Arrays {
		array := &ast.ArrayType{
			Pos:  position(c.fileNo, suffix.Pos),
			Elem: ty,
		}
		if suffix.Length != nil {
			array.Length = c.expr(suffix.Length)
		}
		ty = array
	}

	return ty
}

func (c *converter) block(node *blockNode) *ast.Block {
	block := &ast.Block{Pos: position(c.fileNo, node.Pos)}
	for _, stmt := range node.Stmts {
		switch {
		case stmt.Return != nil:
			block.Stmts = append(block.Stmts, &ast.ReturnStmt{
				Pos:   position(c.fileNo, stmt.Return.Pos),
				Exprs: c.exprs(stmt.Return.Exprs),
			})
		case stmt.VarDecl != nil:
			decl := &ast.VarDeclStmt{
				Pos:  position(c.fileNo, stmt.VarDecl.Pos),
				Type: c.typeName(stmt.VarDecl.Type),
				Name: c.ident(stmt.VarDecl.Name),
			}
			if stmt.VarDecl.Init != nil {
				decl.Init = c.expr(stmt.VarDecl.Init)
			}
			block.Stmts = append(block.Stmts, decl)
		case stmt.Assign != nil:
			block.Stmts = append(block.Stmts, &ast.AssignStmt{
				Pos:    position(c.fileNo, stmt.Assign.Pos),
				Target: c.ident(stmt.Assign.Target),
				Value:  c.expr(stmt.Assign.Value),
			})
		case stmt.Expr != nil:
			block.Stmts = append(block.Stmts, &ast.ExprStmt{
				Pos:  position(c.fileNo, stmt.Expr.Pos),
				Expr: c.expr(stmt.Expr.Expr),
			})
		}
	}
	return block
}

func (c *converter) exprs(nodes []*exprNode) []ast.Expression {
	var out []ast.Expression
	for _, node := range nodes {
		out = append(out, c.expr(node))
	}
	return out
}

// expr folds the flat binary chain left-associatively.
func (c *converter) expr(node *exprNode) ast.Expression {
	left := c.unary(node.Left)
	for _, op := range node.Ops {
		left = &ast.BinaryExpr{
			Pos:   left.ExprPos(),
			Op:    op.Op,
			Left:  left,
			Right: c.unary(op.Right),
		}
	}
	return left
}

func (c *converter) unary(node *unaryNode) ast.Expression {
	value := c.primary(node.Value)
	if node.Op != "" {
		return &ast.UnaryExpr{
			Pos:  position(c.fileNo, node.Pos),
			Op:   node.Op,
			Expr: value,
		}
	}
	return value
}

func (c *converter) primary(node *primaryNode) ast.Expression {
	pos := position(c.fileNo, node.Pos)
	switch {
	case node.Call != nil:
		call := &ast.CallExpr{
			Pos:  position(c.fileNo, node.Call.Pos),
			Func: &ast.Ident{Pos: position(c.fileNo, node.Call.Func.Pos), Name: node.Call.Func.Name},
		}
		call.Args = c.exprs(node.Call.Args)
		return call
	case node.Bool != nil:
		return &ast.BoolLiteral{Pos: pos, Value: *node.Bool == "true"}
	case node.Number != nil:
		return &ast.NumberLiteral{Pos: pos, Text: *node.Number}
	case node.Str != nil:
		return &ast.StringLiteral{Pos: pos, Value: strings.Trim(*node.Str, `"`)}
	case node.Ident != nil:
		return &ast.Ident{Pos: position(c.fileNo, node.Ident.Pos), Name: node.Ident.Name}
	case node.Paren != nil:
		return c.expr(node.Paren)
	}
	return &ast.NumberLiteral{Pos: pos, Text: "0"}
}

func (c *converter) ident(node identNode) ast.Identifier {
	return ast.Identifier{Pos: position(c.fileNo, node.Pos), Name: node.Name}
}

func visibility(name string) ast.Visibility {
	switch name {
	case "public":
		return ast.VisibilityPublic
	case "private":
		return ast.VisibilityPrivate
	case "external":
		return ast.VisibilityExternal
	case "internal":
		return ast.VisibilityInternal
	}
	return ast.VisibilityDefault
}

func mutability(name string) ast.Mutability {
	switch name {
	case "payable":
		return ast.MutabilityPayable
	case "view":
		return ast.MutabilityView
	case "pure":
		return ast.MutabilityPure
	}
	return ast.MutabilityNonpayable
}
