package symbols_test

import (
	"testing"

	"github.com/siliconvibe/hdlfx/internal/arena"
	"github.com/siliconvibe/hdlfx/internal/source"
	"github.com/siliconvibe/hdlfx/internal/symbols"
)

// testSymbol is the smallest possible symbols.Symbol, used to exercise the
// table/chain machinery without depending on the ast package.
type testSymbol struct {
	name  *arena.StringEntry
	at    source.LocationRange
	scope *symbols.SymbolTable
}

func (s *testSymbol) SymbolName() *arena.StringEntry            { return s.name }
func (s *testSymbol) NameRange() source.LocationRange           { return s.at }
func (s *testSymbol) ContainingScope() *symbols.SymbolTable     { return s.scope }
func (s *testSymbol) SetContainingScope(t *symbols.SymbolTable) { s.scope = t }

// Invariant: symbol insertion. After insert(s) returns true in scope S,
// S.find(s.name) == s and s.containingScope == S; after returning false
// (duplicate), S is unchanged.
func TestInvariantSymbolInsertion(t *testing.T) {
	pool := arena.NewStringPool()
	table := symbols.NewSymbolTable()
	name := pool.Intern("foo")

	s1 := &testSymbol{name: name}
	if !table.Insert(s1) {
		t.Fatalf("Insert(s1) = false, want true")
	}
	if table.Find(name) != s1 {
		t.Errorf("Find(name) = %v, want s1", table.Find(name))
	}
	if s1.ContainingScope() != table {
		t.Errorf("s1.ContainingScope() = %v, want table", s1.ContainingScope())
	}

	s2 := &testSymbol{name: name}
	if table.Insert(s2) {
		t.Fatalf("Insert(s2) = true, want false (name already bound)")
	}
	if table.Find(name) != s1 {
		t.Errorf("Find(name) after a rejected Insert = %v, want unchanged s1", table.Find(name))
	}
	if len(table.Symbols()) != 1 {
		t.Errorf("len(Symbols()) = %d, want 1 (rejected insert must not append)", len(table.Symbols()))
	}
}

func TestSymbolsPreservesInsertionOrder(t *testing.T) {
	pool := arena.NewStringPool()
	table := symbols.NewSymbolTable()
	names := []string{"c", "a", "b"}
	var want []symbols.Symbol
	for _, n := range names {
		s := &testSymbol{name: pool.Intern(n)}
		table.Insert(s)
		want = append(want, s)
	}
	got := table.Symbols()
	if len(got) != len(want) {
		t.Fatalf("len(Symbols()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Symbols()[%d] = %v, want %v (insertion order)", i, got[i], want[i])
		}
	}
}

// Invariant: lookup chain. find returns the first symbol found scanning
// from the innermost frame to the outermost, or nil.
func TestInvariantLookupChainInnermostWins(t *testing.T) {
	pool := arena.NewStringPool()
	name := pool.Intern("x")

	outer := symbols.NewSymbolTable()
	outerSym := &testSymbol{name: name}
	outer.Insert(outerSym)

	inner := symbols.NewSymbolTable()
	innerSym := &testSymbol{name: name}
	inner.Insert(innerSym)

	chain := symbols.LookupChain{}.Push(outer).Push(inner)
	if got := chain.Find(name); got != innerSym {
		t.Errorf("Find = %v, want the innermost binding", got)
	}

	// Popping back to just the outer frame (a fresh chain rooted at outer)
	// must not see the inner binding.
	outerOnly := symbols.LookupChain{}.Push(outer)
	if got := outerOnly.Find(name); got != outerSym {
		t.Errorf("Find on the outer-only chain = %v, want outerSym", got)
	}
}

func TestLookupChainMissReturnsNil(t *testing.T) {
	pool := arena.NewStringPool()
	chain := symbols.LookupChain{}.Push(symbols.NewSymbolTable())
	if got := chain.Find(pool.Intern("nowhere")); got != nil {
		t.Errorf("Find on an empty chain = %v, want nil", got)
	}
}

func TestLookupChainPushIsImmutable(t *testing.T) {
	pool := arena.NewStringPool()
	name := pool.Intern("y")
	base := symbols.LookupChain{}.Push(symbols.NewSymbolTable())

	inner := symbols.NewSymbolTable()
	sym := &testSymbol{name: name}
	inner.Insert(sym)
	extended := base.Push(inner)

	if base.Find(name) != nil {
		t.Errorf("Push mutated the chain it was called on: base now finds %v", base.Find(name))
	}
	if extended.Find(name) != sym {
		t.Errorf("extended.Find(name) = %v, want sym", extended.Find(name))
	}
}
