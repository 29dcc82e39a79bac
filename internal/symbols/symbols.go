// Package symbols implements per-scope symbol tables and the immutable
// lexical lookup chains that thread them together, grounded on
// ast::SymbolTable and ast::SymbolLookupChain in the original
// implementation.
package symbols

import (
	"github.com/siliconvibe/hdlfx/internal/arena"
	"github.com/siliconvibe/hdlfx/internal/source"
)

// Symbol is implemented by every declaration-producing AST node (spec §9:
// "a Symbol that is also a Node" — encoded here as an interface the ast
// package's declaration node types satisfy directly, rather than as a
// shared base type, so this package never depends on ast).
type Symbol interface {
	SymbolName() *arena.StringEntry
	NameRange() source.LocationRange
	ContainingScope() *SymbolTable
	SetContainingScope(*SymbolTable)
}

// ScopeIntroducer is implemented by symbols that themselves introduce a
// scope (module, bundle, interface, enum) — used by scoped-name resolution
// to reject `A::B` when A is not such a symbol (spec §4.8 step 2).
type ScopeIntroducer interface {
	Symbol
	IntroducedScope() *SymbolTable
}

// SymbolTable is one lexical scope's frame: an insertion-ordered list of
// local symbols plus a name-keyed map for O(1) lookup.
type SymbolTable struct {
	byName map[*arena.StringEntry]Symbol
	list   []Symbol
}

// NewSymbolTable returns an empty SymbolTable.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{byName: make(map[*arena.StringEntry]Symbol)}
}

// Find returns the symbol locally bound to name, or nil.
func (t *SymbolTable) Find(name *arena.StringEntry) Symbol {
	return t.byName[name]
}

// Insert binds symbol's name in this table. It fails (returns false,
// leaving the table unchanged) if the name is already locally bound —
// strict-unique insertion per spec §4.5.
func (t *SymbolTable) Insert(sym Symbol) bool {
	name := sym.SymbolName()
	if _, exists := t.byName[name]; exists {
		return false
	}
	t.byName[name] = sym
	t.list = append(t.list, sym)
	sym.SetContainingScope(t)
	return true
}

// Symbols returns the table's symbols in insertion order.
func (t *SymbolTable) Symbols() []Symbol { return t.list }

// LookupChainNode is one frame in an immutable, singly-linked lexical scope
// chain: a SymbolTable plus a pointer to the enclosing frame.
type LookupChainNode struct {
	Parent *LookupChainNode
	Table  *SymbolTable
}

// LookupChain is an immutable reference to the innermost frame of a lexical
// scope chain; find walks outward (innermost-first) via parent pointers.
type LookupChain struct {
	Head *LookupChainNode
}

// Push returns a new chain with table as the innermost frame, parented on c.
// c itself is unmodified — chains are immutable and safe to share across
// sibling scopes (spec §5: "restored deterministically on exit").
func (c LookupChain) Push(table *SymbolTable) LookupChain {
	return LookupChain{Head: &LookupChainNode{Parent: c.Head, Table: table}}
}

// Find walks the chain from innermost to outermost, returning the first
// symbol found bound to name, or nil.
func (c LookupChain) Find(name *arena.StringEntry) Symbol {
	for node := c.Head; node != nil; node = node.Parent {
		if sym := node.Table.Find(name); sym != nil {
			return sym
		}
	}
	return nil
}
