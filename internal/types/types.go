// Package types implements the canonicalizing type pool: bit-vector types
// keyed by (direction, kind, bitWidth) with cross-linked flipped twins,
// transparent type aliases, bundle/flipped-bundle twins, and the remaining
// type variants the front end resolves expressions and declarations to.
package types

import (
	"fmt"

	"github.com/siliconvibe/hdlfx/internal/arena"
	"github.com/siliconvibe/hdlfx/internal/bignum"
)

// Direction labels a bit-vector type as an input port, an output port, or
// an internal register.
type Direction int

const (
	Input Direction = iota
	Output
	Reg
)

func (d Direction) String() string {
	switch d {
	case Input:
		return "input"
	case Output:
		return "output"
	case Reg:
		return "reg"
	default:
		return "?"
	}
}

// FlipDirection swaps Input/Output and leaves Reg unchanged.
func FlipDirection(d Direction) Direction {
	switch d {
	case Input:
		return Output
	case Output:
		return Input
	default:
		return d
	}
}

// IsStatelessDirection reports whether a bit-vector of this direction holds
// no register storage.
func IsStatelessDirection(d Direction) bool { return d == Reg }

// Type is the common interface every canonicalized type variant implements.
// Equality of two Types is always defined as CanonicalType() pointer
// equality — never struct/value equality — because aliases must compare
// equal to their targets.
type Type interface {
	// CanonicalType returns the representative of this type's alias class:
	// itself for every variant except TransparentTypeAlias.
	CanonicalType() Type
	// Flipped returns this type's dual under port-direction inversion; it
	// is self for direction-symmetric types.
	Flipped() Type
	// IsStateless reports whether instances of this type hold no
	// latch/register storage.
	IsStateless() bool
	String() string
}

// SameType reports whether a and b share a canonical representative.
func SameType(a, b Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.CanonicalType() == b.CanonicalType()
}

// BitVectorType is a uniqued (direction, kind, bitWidth) triple.
type BitVectorType struct {
	Direction Direction
	Kind      bignum.Kind
	BitWidth  int
	flipped   *BitVectorType
}

func (t *BitVectorType) CanonicalType() Type { return t }
func (t *BitVectorType) Flipped() Type       { return t.flipped }
func (t *BitVectorType) IsStateless() bool   { return IsStatelessDirection(t.Direction) }
func (t *BitVectorType) String() string {
	return fmt.Sprintf("%s %s%d", t.Direction, t.Kind, t.BitWidth)
}

// BuiltinAlias names one of the nine bit-vector aliases seeded into the
// global scope (spec §4.5), grounded on BitVectorType::getBuiltinAliases in
// the original implementation.
type BuiltinAlias struct {
	Name     string
	Kind     bignum.Kind
	BitWidth int
}

// BuiltinAliases is the authoritative seed list: bit, u8..u64, s8..s64.
var BuiltinAliases = []BuiltinAlias{
	{"bit", bignum.Unsigned, 1},
	{"u8", bignum.Unsigned, 8},
	{"u16", bignum.Unsigned, 16},
	{"u32", bignum.Unsigned, 32},
	{"u64", bignum.Unsigned, 64},
	{"s8", bignum.Signed, 8},
	{"s16", bignum.Signed, 16},
	{"s32", bignum.Signed, 32},
	{"s64", bignum.Signed, 64},
}

// TransparentTypeAlias is a named type whose canonical form is the aliased
// target; type equality passes through to the target.
type TransparentTypeAlias struct {
	Name   string
	Target Type
}

func (a *TransparentTypeAlias) CanonicalType() Type { return a.Target.CanonicalType() }
func (a *TransparentTypeAlias) Flipped() Type       { return a.Target.Flipped() }
func (a *TransparentTypeAlias) IsStateless() bool   { return a.Target.IsStateless() }
func (a *TransparentTypeAlias) String() string      { return a.Name }

// Variable is a single named, typed member of a Bundle.
type Variable struct {
	Name string
	Typ  Type
}

// Bundle is a record type with an ordered member list and a paired
// FlippedBundle twin. Members may be added only once: calling Define twice
// panics, matching the source's "defined goes true once" invariant.
type Bundle struct {
	Name      string
	Members   []Variable
	defined   bool
	flipped   *FlippedBundle
	stateless bool
}

// FlippedBundle is the opaque twin of a Bundle: its Input/Output leaves are
// swapped relative to the Bundle it flips.
type FlippedBundle struct {
	base *Bundle
}

// NewBundlePair allocates a Bundle/FlippedBundle twin pair, cross-linked
// and undefined (no members yet). Use Define to populate members once.
func NewBundlePair(a *arena.Arena, name string) *Bundle {
	b := arena.Keep(a, &Bundle{Name: name})
	b.flipped = arena.Keep(a, &FlippedBundle{base: b})
	return b
}

// Define populates the bundle's members. It may be called exactly once.
func (b *Bundle) Define(members []Variable) {
	if b.defined {
		panic("bundle members already defined")
	}
	b.Members = members
	b.defined = true
	stateless := true
	for _, m := range members {
		if !m.Typ.IsStateless() {
			stateless = false
			break
		}
	}
	b.stateless = stateless
}

func (b *Bundle) CanonicalType() Type { return b }
func (b *Bundle) Flipped() Type       { return b.flipped }
func (b *Bundle) IsStateless() bool   { return b.stateless }
func (b *Bundle) String() string      { return b.Name }

// FlippedMembers returns the twin's members: each member's type flipped,
// in the same order as the base Bundle.
func (f *FlippedBundle) FlippedMembers() []Variable {
	out := make([]Variable, len(f.base.Members))
	for i, m := range f.base.Members {
		out[i] = Variable{Name: m.Name, Typ: m.Typ.Flipped()}
	}
	return out
}

func (f *FlippedBundle) CanonicalType() Type { return f }
func (f *FlippedBundle) Flipped() Type       { return f.base }
func (f *FlippedBundle) IsStateless() bool   { return f.base.stateless }
func (f *FlippedBundle) String() string      { return "!" + f.base.Name }

// TupleType is an ordered, unnamed product of member types.
type TupleType struct {
	Members []Type
	flipped *TupleType
}

func (t *TupleType) CanonicalType() Type { return t }
func (t *TupleType) Flipped() Type {
	if t.flipped != nil {
		return t.flipped
	}
	return t
}
func (t *TupleType) IsStateless() bool {
	for _, m := range t.Members {
		if !m.IsStateless() {
			return false
		}
	}
	return true
}
func (t *TupleType) String() string { return "tuple" }

// NewFlippedTuple builds the flip-distributed twin of a TupleType (flip is
// distributed structurally over tuple members, per spec §4.5).
func NewFlippedTuple(a *arena.Arena, t *TupleType) *TupleType {
	members := make([]Type, len(t.Members))
	for i, m := range t.Members {
		members[i] = m.Flipped()
	}
	flipped := arena.Keep(a, &TupleType{Members: members})
	flipped.flipped = t
	t.flipped = flipped
	return flipped
}

// MemoryType describes a register-file/array type: a fixed depth of
// elements of a uniform element type.
type MemoryType struct {
	ElementType Type
	Depth       int64
}

func (t *MemoryType) CanonicalType() Type { return t }
func (t *MemoryType) Flipped() Type       { return t }
func (t *MemoryType) IsStateless() bool   { return false }
func (t *MemoryType) String() string      { return fmt.Sprintf("memory[%d]", t.Depth) }

// FunctionType describes a callable's parameter and result types. Flip is
// the identity for functions (they carry no port direction).
type FunctionType struct {
	Params []Type
	Result Type
}

func (t *FunctionType) CanonicalType() Type { return t }
func (t *FunctionType) Flipped() Type       { return t }
func (t *FunctionType) IsStateless() bool   { return true }
func (t *FunctionType) String() string      { return "function" }

// IntegerType is the unbounded uint/sint parameterization used only inside
// template-parameter kinds (concrete declarations always resolve to a
// width-bound BitVectorType).
type IntegerType struct {
	Kind bignum.Kind
}

func (t *IntegerType) CanonicalType() Type { return t }
func (t *IntegerType) Flipped() Type       { return t }
func (t *IntegerType) IsStateless() bool   { return true }
func (t *IntegerType) String() string      { return t.Kind.String() + " integer" }

// FlipType is a wrapper for the flip of T; it is resolved away at
// construction time to T.Flipped() and never itself appears as a canonical
// type. The parser does not build FlipType values: ast.FlipTypeExpr keeps
// the flip's concrete syntax (including its comments) and resolves
// directly to T.Flipped().
type FlipType struct {
	Inner              Type
	BeforeFlipComments string
}

func (t *FlipType) CanonicalType() Type { return t.Inner.Flipped().CanonicalType() }
func (t *FlipType) Flipped() Type       { return t.Inner }
func (t *FlipType) IsStateless() bool   { return t.Inner.Flipped().IsStateless() }
func (t *FlipType) String() string      { return "!" + t.Inner.String() }

// TypeOfType represents `typeOf(expr)`: a type computed from an
// expression's type rather than spelled directly. Resolution fills in
// Resolved once the expression's type is known; until then CanonicalType
// returns itself.
type TypeOfType struct {
	Resolved Type
}

func (t *TypeOfType) CanonicalType() Type {
	if t.Resolved != nil {
		return t.Resolved.CanonicalType()
	}
	return t
}
func (t *TypeOfType) Flipped() Type {
	if t.Resolved != nil {
		return t.Resolved.Flipped()
	}
	return t
}
func (t *TypeOfType) IsStateless() bool {
	if t.Resolved != nil {
		return t.Resolved.IsStateless()
	}
	return true
}
func (t *TypeOfType) String() string { return "typeOf(...)" }

// EnumMember is one tagged alternative of an EnumType: a name plus an
// optional payload type (nil for a bare tag).
type EnumMember struct {
	Name    string
	Payload Type
}

// EnumType is a tagged union over EnumMembers. It has no port direction of
// its own; statelessness follows from its members' payloads.
type EnumType struct {
	Name    string
	Members []EnumMember
}

func (t *EnumType) CanonicalType() Type { return t }
func (t *EnumType) Flipped() Type       { return t }
func (t *EnumType) IsStateless() bool {
	for _, m := range t.Members {
		if m.Payload != nil && !m.Payload.IsStateless() {
			return false
		}
	}
	return true
}
func (t *EnumType) String() string { return t.Name }

// ScopedIdType represents a type named by a scoped identifier (`A::B::T`)
// before resolution binds it to the named declaration's type.
type ScopedIdType struct {
	Path     []string
	Resolved Type
}

func (t *ScopedIdType) CanonicalType() Type {
	if t.Resolved != nil {
		return t.Resolved.CanonicalType()
	}
	return t
}
func (t *ScopedIdType) Flipped() Type {
	if t.Resolved != nil {
		return t.Resolved.Flipped()
	}
	return t
}
func (t *ScopedIdType) IsStateless() bool {
	if t.Resolved != nil {
		return t.Resolved.IsStateless()
	}
	return true
}
func (t *ScopedIdType) String() string { return "scoped-id-type" }
