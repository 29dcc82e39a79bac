// Package ast defines the closed set of node variants the parser builds:
// declarations, statements, expressions, and type expressions, each
// concrete-syntax-preserving (source range plus leading comments) and
// dispatched through a Visitor rather than open-class virtual dispatch.
package ast

import (
	"github.com/siliconvibe/hdlfx/internal/arena"
	"github.com/siliconvibe/hdlfx/internal/source"
	"github.com/siliconvibe/hdlfx/internal/symbols"
	"github.com/siliconvibe/hdlfx/internal/types"
)

// Node is the base interface every AST variant implements.
type Node interface {
	Range() source.LocationRange
	Accept(v Visitor)
}

// Statement is a Node appearing in a block/module/interface body.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node usable as a value.
type Expression interface {
	Node
	expressionNode()
}

// TypeExpr is a Node naming a type, carrying the resolved types.Type once
// construction has interned/looked it up.
type TypeExpr interface {
	Node
	typeExprNode()
	ResolvedType() types.Type
}

// Pattern is a Node usable where a wildcard-bearing match/integer pattern
// is legal (spec §4.5: "the parser distinguishes patterns from expressions").
type Pattern interface {
	Node
	patternNode()
}

// NodeBase supplies the source range and leading comments every node
// carries; concrete node types embed it.
type NodeBase struct {
	Loc             source.LocationRange
	LeadingComments source.LocationRange
}

func (n NodeBase) Range() source.LocationRange { return n.Loc }

// DeclBase is embedded by every declaration-producing node, implementing
// symbols.Symbol so the node doubles as its own symbol table entry (spec §9:
// "a Symbol that is also a Node" via an intersection on the sum-type rather
// than a shared base class).
type DeclBase struct {
	NodeBase
	Name  *arena.StringEntry
	scope *symbols.SymbolTable
}

func (d *DeclBase) SymbolName() *arena.StringEntry            { return d.Name }
func (d *DeclBase) NameRange() source.LocationRange           { return d.Loc }
func (d *DeclBase) ContainingScope() *symbols.SymbolTable     { return d.scope }
func (d *DeclBase) SetContainingScope(s *symbols.SymbolTable) { d.scope = s }

// ScopeBase is embedded by every node that introduces its own lexical scope
// (module, interface, function, bundle, enum, block, for statement, match
// part), implementing symbols.ScopeIntroducer.
type ScopeBase struct {
	OwnScope       *symbols.SymbolTable
	EnclosingChain symbols.LookupChain
}

func (s *ScopeBase) IntroducedScope() *symbols.SymbolTable { return s.OwnScope }
