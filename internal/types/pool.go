package types

import (
	"github.com/siliconvibe/hdlfx/internal/arena"
	"github.com/siliconvibe/hdlfx/internal/bignum"
)

// TypePool interns bit-vector types by (direction, kind, bitWidth),
// materializing each triple's flipped twin on first creation and
// cross-linking the two — grounded on ast::TypePool::getBitVectorType in
// the original implementation.
type TypePool struct {
	arena *arena.Arena
	table map[Direction]map[bignum.Kind]map[int]*BitVectorType
}

// NewTypePool returns an empty TypePool bound to the given arena.
func NewTypePool(a *arena.Arena) *TypePool {
	return &TypePool{arena: a, table: make(map[Direction]map[bignum.Kind]map[int]*BitVectorType)}
}

// GetBitVectorType returns the unique BitVectorType instance for
// (direction, kind, bitWidth), creating it (and its flipped twin, at
// FlipDirection(direction)) on first request for either half of the pair.
func (p *TypePool) GetBitVectorType(d Direction, k bignum.Kind, w int) *BitVectorType {
	if existing := p.lookup(d, k, w); existing != nil {
		return existing
	}
	flippedDirection := FlipDirection(d)
	t := arena.Keep(p.arena, &BitVectorType{Direction: d, Kind: k, BitWidth: w})
	p.store(d, k, w, t)

	flipped := p.lookup(flippedDirection, k, w)
	if flipped == nil {
		flipped = arena.Keep(p.arena, &BitVectorType{Direction: flippedDirection, Kind: k, BitWidth: w})
		p.store(flippedDirection, k, w, flipped)
	}
	flipped.flipped = t
	t.flipped = flipped
	return t
}

func (p *TypePool) lookup(d Direction, k bignum.Kind, w int) *BitVectorType {
	byKind, ok := p.table[d]
	if !ok {
		return nil
	}
	byWidth, ok := byKind[k]
	if !ok {
		return nil
	}
	return byWidth[w]
}

func (p *TypePool) store(d Direction, k bignum.Kind, w int, t *BitVectorType) {
	byKind, ok := p.table[d]
	if !ok {
		byKind = make(map[bignum.Kind]map[int]*BitVectorType)
		p.table[d] = byKind
	}
	byWidth, ok := byKind[k]
	if !ok {
		byWidth = make(map[int]*BitVectorType)
		byKind[k] = byWidth
	}
	byWidth[w] = t
}

// SeedBuiltinAliases interns the nine builtin bit-vector aliases at Reg
// direction (spec §4.5: "built-in alias types default to Reg") and returns
// them keyed by name, ready for insertion into the global symbol table as
// TransparentTypeAliases.
func (p *TypePool) SeedBuiltinAliases() map[string]*TransparentTypeAlias {
	out := make(map[string]*TransparentTypeAlias, len(BuiltinAliases))
	for _, b := range BuiltinAliases {
		bvt := p.GetBitVectorType(Reg, b.Kind, b.BitWidth)
		out[b.Name] = &TransparentTypeAlias{Name: b.Name, Target: bvt}
	}
	return out
}
