package types_test

import (
	"testing"

	"github.com/siliconvibe/hdlfx/internal/arena"
	"github.com/siliconvibe/hdlfx/internal/bignum"
	"github.com/siliconvibe/hdlfx/internal/types"
)

// Invariant: type uniqueness. GetBitVectorType returns the same instance
// across calls for the same (direction, kind, bitWidth), and the flip
// relation is involutive with the documented fixed points.
func TestInvariantBitVectorTypeUniqueness(t *testing.T) {
	pool := types.NewTypePool(arena.New())

	a := pool.GetBitVectorType(types.Input, bignum.Unsigned, 8)
	b := pool.GetBitVectorType(types.Input, bignum.Unsigned, 8)
	if a != b {
		t.Fatalf("GetBitVectorType returned distinct instances for the same triple")
	}

	flipped := pool.GetBitVectorType(types.Output, bignum.Unsigned, 8)
	if a.Flipped() != flipped {
		t.Errorf("Flipped() = %v, want the Output twin", a.Flipped())
	}
	if flipped.Flipped() != a {
		t.Errorf("flipped(flipped(t)) != t")
	}

	if got := types.FlipDirection(types.Input); got != types.Output {
		t.Errorf("FlipDirection(Input) = %v, want Output", got)
	}
	if got := types.FlipDirection(types.Output); got != types.Input {
		t.Errorf("FlipDirection(Output) = %v, want Input", got)
	}
	if got := types.FlipDirection(types.Reg); got != types.Reg {
		t.Errorf("FlipDirection(Reg) = %v, want Reg", got)
	}
}

func TestBitVectorTypeDistinctForDifferentWidths(t *testing.T) {
	pool := types.NewTypePool(arena.New())
	w8 := pool.GetBitVectorType(types.Reg, bignum.Unsigned, 8)
	w16 := pool.GetBitVectorType(types.Reg, bignum.Unsigned, 16)
	if w8 == w16 {
		t.Fatalf("expected distinct instances for distinct bit widths")
	}
}

// Invariant: bundle statelessness. A Bundle is stateless iff every member's
// type is stateless; its flipped twin shares the property.
func TestInvariantBundleStatelessness(t *testing.T) {
	pool := types.NewTypePool(arena.New())
	a := arena.New()

	stateless := types.NewBundlePair(a, "allReg")
	stateless.Define([]types.Variable{
		{Name: "x", Typ: pool.GetBitVectorType(types.Reg, bignum.Unsigned, 4)},
		{Name: "y", Typ: pool.GetBitVectorType(types.Reg, bignum.Unsigned, 4)},
	})
	if !stateless.IsStateless() {
		t.Errorf("expected an all-Reg bundle to be stateless")
	}
	if !stateless.Flipped().IsStateless() {
		t.Errorf("expected the flipped twin to share statelessness")
	}

	stateful := types.NewBundlePair(a, "hasPort")
	stateful.Define([]types.Variable{
		{Name: "x", Typ: pool.GetBitVectorType(types.Input, bignum.Unsigned, 4)},
	})
	if stateful.IsStateless() {
		t.Errorf("expected a bundle with an Input member to be stateful")
	}
	if stateful.Flipped().IsStateless() {
		t.Errorf("expected the flipped twin to share statefulness")
	}
}

func TestBundleDefineTwicePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected Define to panic on a second call")
		}
	}()
	b := types.NewBundlePair(arena.New(), "b")
	b.Define(nil)
	b.Define(nil)
}

func TestSeedBuiltinAliasesCoversTheNineAliases(t *testing.T) {
	pool := types.NewTypePool(arena.New())
	aliases := pool.SeedBuiltinAliases()
	want := []string{"bit", "u8", "u16", "u32", "u64", "s8", "s16", "s32", "s64"}
	if len(aliases) != len(want) {
		t.Fatalf("len(aliases) = %d, want %d", len(aliases), len(want))
	}
	for _, name := range want {
		alias, ok := aliases[name]
		if !ok {
			t.Fatalf("missing builtin alias %q", name)
		}
		bvt, ok := alias.Target.(*types.BitVectorType)
		if !ok {
			t.Fatalf("alias %q Target = %T, want *types.BitVectorType", name, alias.Target)
		}
		if bvt.Direction != types.Reg {
			t.Errorf("alias %q has direction %v, want Reg", name, bvt.Direction)
		}
	}
}
