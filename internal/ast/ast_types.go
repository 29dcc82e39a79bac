package ast

import (
	"github.com/siliconvibe/hdlfx/internal/source"
	"github.com/siliconvibe/hdlfx/internal/types"
)

// BitVectorTypeExpr is a builtin alias keyword or a `uint{N}`/`sint{N}`
// spelling, resolved at Reg direction; the bit-vector type of an `input`,
// `output` or `reg` declaration is restamped to that direction and marked
// with DirectionKeywordPresent (spec §4.5).
type BitVectorTypeExpr struct {
	NodeBase
	DirectionKeywordPresent bool
	Resolved                *types.BitVectorType
}

func (n *BitVectorTypeExpr) Accept(v Visitor)         { v.VisitBitVectorTypeExpr(n) }
func (n *BitVectorTypeExpr) typeExprNode()            {}
func (n *BitVectorTypeExpr) ResolvedType() types.Type { return n.Resolved }

// FlipTypeExpr is the surface syntax `!T` (also spelled `flip T`);
// BeforeFlipComments preserves any comment run between the `!` and T.
type FlipTypeExpr struct {
	NodeBase
	Inner              TypeExpr
	BeforeFlipComments source.LocationRange
	Resolved           types.Type
}

func (n *FlipTypeExpr) Accept(v Visitor)         { v.VisitFlipTypeExpr(n) }
func (n *FlipTypeExpr) typeExprNode()            {}
func (n *FlipTypeExpr) ResolvedType() types.Type { return n.Resolved }

// ScopedTypeExpr names a type by a (possibly `::`-qualified) identifier,
// resolved against the enclosing lookup chain once symbol resolution runs.
type ScopedTypeExpr struct {
	NodeBase
	Global   bool
	Names    []string
	Resolved types.Type
}

func (n *ScopedTypeExpr) Accept(v Visitor)         { v.VisitScopedTypeExpr(n) }
func (n *ScopedTypeExpr) typeExprNode()            {}
func (n *ScopedTypeExpr) ResolvedType() types.Type { return n.Resolved }

// TupleTypeExpr is `{T1, T2, ...}` used as a type.
type TupleTypeExpr struct {
	NodeBase
	Members  []TypeExpr
	Resolved *types.TupleType
}

func (n *TupleTypeExpr) Accept(v Visitor)         { v.VisitTupleTypeExpr(n) }
func (n *TupleTypeExpr) typeExprNode()            {}
func (n *TupleTypeExpr) ResolvedType() types.Type { return n.Resolved }

// MemoryTypeExpr is `memory[Depth]: Element`.
type MemoryTypeExpr struct {
	NodeBase
	Element  TypeExpr
	Depth    Expression
	Resolved *types.MemoryType
}

func (n *MemoryTypeExpr) Accept(v Visitor)         { v.VisitMemoryTypeExpr(n) }
func (n *MemoryTypeExpr) typeExprNode()            {}
func (n *MemoryTypeExpr) ResolvedType() types.Type { return n.Resolved }

// FunctionTypeExpr is `function(T1, T2): R` used as a type.
type FunctionTypeExpr struct {
	NodeBase
	Params   []TypeExpr
	Result   TypeExpr
	Resolved *types.FunctionType
}

func (n *FunctionTypeExpr) Accept(v Visitor)         { v.VisitFunctionTypeExpr(n) }
func (n *FunctionTypeExpr) typeExprNode()            {}
func (n *FunctionTypeExpr) ResolvedType() types.Type { return n.Resolved }

// TypeOfTypeExpr is `typeOf(expr)`.
type TypeOfTypeExpr struct {
	NodeBase
	Value    Expression
	Resolved *types.TypeOfType
}

func (n *TypeOfTypeExpr) Accept(v Visitor)         { v.VisitTypeOfTypeExpr(n) }
func (n *TypeOfTypeExpr) typeExprNode()            {}
func (n *TypeOfTypeExpr) ResolvedType() types.Type { return n.Resolved }
