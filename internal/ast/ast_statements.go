package ast

import (
	"github.com/siliconvibe/hdlfx/internal/symbols"
)

// EmptyStatement is a bare `;`.
type EmptyStatement struct{ NodeBase }

func (n *EmptyStatement) Accept(v Visitor) { v.VisitEmptyStatement(n) }
func (n *EmptyStatement) statementNode()   {}

// ExpressionStatement is an expression used as a statement (e.g. a
// connect/assignment `a <-> b;`).
type ExpressionStatement struct {
	NodeBase
	Expr Expression
}

func (n *ExpressionStatement) Accept(v Visitor) { v.VisitExpressionStatement(n) }
func (n *ExpressionStatement) statementNode()   {}

// BlockStatement is a `{ ... }` introducing its own scope.
type BlockStatement struct {
	NodeBase
	ScopeBase
	Body []Statement
}

func (n *BlockStatement) Accept(v Visitor) { v.VisitBlockStatement(n) }
func (n *BlockStatement) statementNode()   {}

// IfStatement is `if (cond) then [else elseBranch]`.
type IfStatement struct {
	NodeBase
	Cond Expression
	Then Statement
	Else Statement // nil if absent
}

func (n *IfStatement) Accept(v Visitor) { v.VisitIfStatement(n) }
func (n *IfStatement) statementNode()   {}

// ForKind distinguishes a numeric range loop from a type-iteration loop.
type ForKind int

const (
	ForNumeric ForKind = iota
	ForTypeIteration
)

// ForStatementVariable is the loop variable bound by a ForStatement; it
// back-references its enclosing ForStatement once that node exists.
type ForStatementVariable struct {
	DeclBase
	Enclosing *ForStatement
}

func (n *ForStatementVariable) Accept(v Visitor) { v.VisitForStatementVariable(n) }

// ForStatement is `for v in lo to hi { body }` (numeric) or
// `for v in TypeList { body }` (type iteration); it introduces its own scope
// containing just the loop Variable.
type ForStatement struct {
	NodeBase
	ScopeBase
	Kind     ForKind
	Variable *ForStatementVariable
	Low      Expression // numeric form
	High     Expression // numeric form
	Types    []TypeExpr // type-iteration form
	Body     []Statement
}

func (n *ForStatement) Accept(v Visitor) { v.VisitForStatement(n) }
func (n *ForStatement) statementNode()   {}

// MatchPart is one `pattern => body` arm of a MatchStatement; its body is
// its own scope so pattern-bound names don't leak between arms.
type MatchPart struct {
	NodeBase
	ScopeBase
	Pat  Pattern
	Body []Statement
}

func (n *MatchPart) Accept(v Visitor) { v.VisitMatchPart(n) }

// MatchStatement is `match (subject) { pattern => body, ... }`.
type MatchStatement struct {
	NodeBase
	Subject Expression
	Parts   []*MatchPart
}

func (n *MatchStatement) Accept(v Visitor) { v.VisitMatchStatement(n) }
func (n *MatchStatement) statementNode()   {}

// ReturnStatement is `return [expr];`.
type ReturnStatement struct {
	NodeBase
	Value Expression // nil if bare `return;`
}

func (n *ReturnStatement) Accept(v Visitor) { v.VisitReturnStatement(n) }
func (n *ReturnStatement) statementNode()   {}

// BreakStatement is `break;`.
type BreakStatement struct{ NodeBase }

func (n *BreakStatement) Accept(v Visitor) { v.VisitBreakStatement(n) }
func (n *BreakStatement) statementNode()   {}

// ContinueStatement is `continue;`.
type ContinueStatement struct{ NodeBase }

func (n *ContinueStatement) Accept(v Visitor) { v.VisitContinueStatement(n) }
func (n *ContinueStatement) statementNode()   {}

// VariableDeclKind distinguishes the five binding forms that share the
// same "list of name[s] + type [+ initializer]" shape (spec §4.4).
type VariableDeclKind int

const (
	DeclConst VariableDeclKind = iota
	DeclLet
	DeclInput
	DeclOutput
	DeclReg
)

func (k VariableDeclKind) String() string {
	switch k {
	case DeclConst:
		return "const"
	case DeclLet:
		return "let"
	case DeclInput:
		return "input"
	case DeclOutput:
		return "output"
	case DeclReg:
		return "reg"
	default:
		return "?"
	}
}

// VariableDecl is a single `name[: Type][ = initializer]` binding, used
// both standalone (one per VariableDeclGroup entry) and as a function
// parameter (Typ required, Initializer nil).
type VariableDecl struct {
	DeclBase
	Typ         TypeExpr // nil if omitted and inferred from Initializer
	Initializer Expression
}

func (n *VariableDecl) Accept(v Visitor) { v.VisitVariableDecl(n) }

// VariableDeclGroup is a `const`/`let`/`input`/`output`/`reg` statement
// declaring one or more VariableDecls under a shared kind.
type VariableDeclGroup struct {
	NodeBase
	Kind  VariableDeclKind
	Decls []*VariableDecl
}

func (n *VariableDeclGroup) Accept(v Visitor) { v.VisitVariableDeclGroup(n) }
func (n *VariableDeclGroup) statementNode()   {}

// TypeAliasStatement is `type Name = Target;`, producing a
// types.TransparentTypeAlias.
type TypeAliasStatement struct {
	DeclBase
	Target TypeExpr
}

func (n *TypeAliasStatement) Accept(v Visitor) { v.VisitTypeAliasStatement(n) }
func (n *TypeAliasStatement) statementNode()   {}

var (
	_ symbols.Symbol = (*ForStatementVariable)(nil)
	_ symbols.Symbol = (*VariableDecl)(nil)
	_ symbols.Symbol = (*TypeAliasStatement)(nil)
)
