// Package parser implements the recursive-descent, precedence-climbing
// parser: it consumes a comment-grouping token stream and produces a
// concrete-syntax-preserving AST, building scopes, interning types, and
// resolving scoped names as it goes.
package parser

import (
	"github.com/siliconvibe/hdlfx/internal/arena"
	"github.com/siliconvibe/hdlfx/internal/diagnostics"
	"github.com/siliconvibe/hdlfx/internal/source"
	"github.com/siliconvibe/hdlfx/internal/symbols"
	"github.com/siliconvibe/hdlfx/internal/types"
)

// Context bundles the per-compilation-unit state that outlives any single
// parse: the arena, string pool, type pool, template-parameter-kind pool,
// the seeded global scope, and the diagnostic sink. One Context is shared
// across every source parsed within the same compilation unit.
type Context struct {
	Arena         *arena.Arena
	Strings       *arena.StringPool
	Types         *types.TypePool
	TemplateKinds *types.TemplateParameterKindPool
	Global        *symbols.SymbolTable
	Sink          diagnostics.Sink
}

// builtinTypeSymbol adapts a built-in TransparentTypeAlias (bit, u8..u64,
// s8..s64) to symbols.Symbol so it can be inserted into the global scope
// (spec §4.5's scope seeding). The alias names lex as keywords, so the parser
// resolves them directly (builtinKeywordKinds in types.go) and scoped-name
// lookup of source text never reaches these entries.
type builtinTypeSymbol struct {
	name  *arena.StringEntry
	alias *types.TransparentTypeAlias
	scope *symbols.SymbolTable
}

func (s *builtinTypeSymbol) SymbolName() *arena.StringEntry            { return s.name }
func (s *builtinTypeSymbol) NameRange() source.LocationRange           { return source.LocationRange{} }
func (s *builtinTypeSymbol) ContainingScope() *symbols.SymbolTable     { return s.scope }
func (s *builtinTypeSymbol) SetContainingScope(t *symbols.SymbolTable) { s.scope = t }
func (s *builtinTypeSymbol) AsType() types.Type                        { return s.alias }

var _ types.TypeSymbol = (*builtinTypeSymbol)(nil)

// NewContext returns a Context with a fresh arena and pools, its global
// scope seeded with the nine built-in bit-vector aliases (spec §4.5).
func NewContext(sink diagnostics.Sink) *Context {
	a := arena.New()
	tp := types.NewTypePool(a)
	ctx := &Context{
		Arena:         a,
		Strings:       arena.NewStringPool(),
		Types:         tp,
		TemplateKinds: types.NewTemplateParameterKindPool(a),
		Global:        symbols.NewSymbolTable(),
		Sink:          sink,
	}
	for name, alias := range tp.SeedBuiltinAliases() {
		sym := arena.Keep(a, &builtinTypeSymbol{name: ctx.Strings.Intern(name), alias: alias})
		ctx.Global.Insert(sym)
	}
	return ctx
}
