package ast

import (
	"github.com/siliconvibe/hdlfx/internal/bignum"
	"github.com/siliconvibe/hdlfx/internal/symbols"
	"github.com/siliconvibe/hdlfx/internal/token"
)

// IntegerLiteralExpr is an integer or integer-pattern literal. Patterns
// (wildcarded) satisfy Pattern as well as Expression only where the parser
// explicitly allows them (spec §4.5 distinguishes the two grammatically);
// the node itself simply carries the parsed value either way.
type IntegerLiteralExpr struct {
	NodeBase
	Value bignum.IntegerPattern
}

func (n *IntegerLiteralExpr) Accept(v Visitor) { v.VisitIntegerLiteralExpr(n) }
func (n *IntegerLiteralExpr) expressionNode()  {}
func (n *IntegerLiteralExpr) patternNode()     {}

// ScopedIdExpr is a (possibly `::`-qualified) name reference, e.g. `x`,
// `A::B::c`, or `::top`.
type ScopedIdExpr struct {
	NodeBase
	Global   bool // true if the name began with `::`
	Names    []string
	Resolved symbols.Symbol
}

func (n *ScopedIdExpr) Accept(v Visitor) { v.VisitScopedIdExpr(n) }
func (n *ScopedIdExpr) expressionNode()  {}

// patternNode lets a ScopedIdExpr stand as a match pattern naming a bare or
// payload-binding enum member (spec §4.5's pattern grammar).
func (n *ScopedIdExpr) patternNode() {}

// ParenExpr is a parenthesized sub-expression, kept distinct from its
// contents so the concrete syntax (and any comments inside the parens)
// survives.
type ParenExpr struct {
	NodeBase
	Inner Expression
}

func (n *ParenExpr) Accept(v Visitor) { v.VisitParenExpr(n) }
func (n *ParenExpr) expressionNode()  {}

// ListExpr is a `{ e1, e2, ... }` list-expression.
type ListExpr struct {
	NodeBase
	Elements []Expression
}

func (n *ListExpr) Accept(v Visitor) { v.VisitListExpr(n) }
func (n *ListExpr) expressionNode()  {}

// MemberExpr is `target.member`.
type MemberExpr struct {
	NodeBase
	Target Expression
	Member string
}

func (n *MemberExpr) Accept(v Visitor) { v.VisitMemberExpr(n) }
func (n *MemberExpr) expressionNode()  {}

// SliceExpr is `target[index]` or `target[low to high]`.
type SliceExpr struct {
	NodeBase
	Target Expression
	Index  Expression // set when not a range
	Low    Expression // set when a range
	High   Expression // set when a range
}

func (n *SliceExpr) Accept(v Visitor) { v.VisitSliceExpr(n) }
func (n *SliceExpr) expressionNode()  {}

// TemplateArg is one `!{...}` argument: either a type (introduced by the
// `type` keyword) or a value expression.
type TemplateArg struct {
	NodeBase
	Typ   TypeExpr
	Value Expression
}

func (n *TemplateArg) Accept(v Visitor) { v.VisitTemplateArg(n) }

// CallExpr is `callee!{templateArgs}(args)`.
type CallExpr struct {
	NodeBase
	Callee       Expression
	TemplateArgs []*TemplateArg
	Args         []Expression
}

func (n *CallExpr) Accept(v Visitor) { v.VisitCallExpr(n) }
func (n *CallExpr) expressionNode()  {}

// CastExpr is `cast!{T}(e)`.
type CastExpr struct {
	NodeBase
	Typ   TypeExpr
	Value Expression
}

func (n *CastExpr) Accept(v Visitor) { v.VisitCastExpr(n) }
func (n *CastExpr) expressionNode()  {}

// FillExpr is `fill(n, v)`.
type FillExpr struct {
	NodeBase
	Count Expression
	Value Expression
}

func (n *FillExpr) Accept(v Visitor) { v.VisitFillExpr(n) }
func (n *FillExpr) expressionNode()  {}

// CatExpr is `cat(a, b, ...)`.
type CatExpr struct {
	NodeBase
	Args []Expression
}

func (n *CatExpr) Accept(v Visitor) { v.VisitCatExpr(n) }
func (n *CatExpr) expressionNode()  {}

// PopCountExpr is `popCount(e)`.
type PopCountExpr struct {
	NodeBase
	Value Expression
}

func (n *PopCountExpr) Accept(v Visitor) { v.VisitPopCountExpr(n) }
func (n *PopCountExpr) expressionNode()  {}

// UnaryExpr is a prefix operator application: `! ~ + - & | ^`.
type UnaryExpr struct {
	NodeBase
	Op      token.TokenType
	Operand Expression
}

func (n *UnaryExpr) Accept(v Visitor) { v.VisitUnaryExpr(n) }
func (n *UnaryExpr) expressionNode()  {}

// BinaryExpr is a left-associative binary operator application at any of
// the arithmetic/shift/relational/equality/bitwise/logical precedence
// tiers (spec §4.4 precedence table, tiers 3-12).
type BinaryExpr struct {
	NodeBase
	Op    token.TokenType
	Left  Expression
	Right Expression
}

func (n *BinaryExpr) Accept(v Visitor) { v.VisitBinaryExpr(n) }
func (n *BinaryExpr) expressionNode()  {}

// TernaryExpr is `cond ? then : els`, right-associative.
type TernaryExpr struct {
	NodeBase
	Cond Expression
	Then Expression
	Else Expression
}

func (n *TernaryExpr) Accept(v Visitor) { v.VisitTernaryExpr(n) }
func (n *TernaryExpr) expressionNode()  {}

// AssignExpr is `lhs = rhs` or `lhs <-> rhs` (connect), right-associative,
// the lowest-precedence tier.
type AssignExpr struct {
	NodeBase
	Op    token.TokenType // token.Equal or token.LAngleMinusRAngle
	Left  Expression
	Right Expression
}

func (n *AssignExpr) Accept(v Visitor) { v.VisitAssignExpr(n) }
func (n *AssignExpr) expressionNode()  {}
