package ast

import (
	"github.com/siliconvibe/hdlfx/internal/source"
	"github.com/siliconvibe/hdlfx/internal/symbols"
	"github.com/siliconvibe/hdlfx/internal/types"
)

// TopLevelModule is the root of every parse: the imports, the single main
// module/interface declaration, and any trailing comments after it (spec
// §8 scenario 6: a second top-level declaration is a syntax error).
type TopLevelModule struct {
	NodeBase
	Imports          []*Import
	MainModule       Statement // *Module or *Interface
	TrailingComments source.LocationRange
}

func (n *TopLevelModule) Accept(v Visitor) { v.VisitTopLevelModule(n) }

// Import is a single `import name;` declaration.
type Import struct {
	DeclBase
	NameText string
}

func (n *Import) Accept(v Visitor) { v.VisitImport(n) }
func (n *Import) statementNode()   {}

// TemplateParameter is one entry in a module/function/interface's template
// parameter list: a kind (value or module) plus an isList flag.
type TemplateParameter struct {
	DeclBase
	Kind types.TemplateParameterKind
}

func (n *TemplateParameter) Accept(v Visitor) { v.VisitTemplateParameter(n) }

// Module is a `module Name!{params} implements Parent { ...body... }`
// declaration. It introduces its own scope, populated as the parser walks
// the body (spec §4.5: forward references within the same scope are not
// resolved).
type Module struct {
	DeclBase
	ScopeBase
	TemplateParams []*TemplateParameter
	ParentType     TypeExpr // set when `implements T` is present, else nil
	Body           []Statement
}

func (n *Module) Accept(v Visitor) { v.VisitModule(n) }
func (n *Module) statementNode()   {}

// Interface is structurally identical to Module but denotes a port-only
// contract rather than an implementation.
type Interface struct {
	DeclBase
	ScopeBase
	TemplateParams []*TemplateParameter
	ParentType     TypeExpr
	Body           []Statement
}

func (n *Interface) Accept(v Visitor) { v.VisitInterface(n) }
func (n *Interface) statementNode()   {}

// Function is a `function name!{params}(args): resultType { body }`
// declaration.
type Function struct {
	DeclBase
	ScopeBase
	TemplateParams []*TemplateParameter
	Params         []*VariableDecl
	ResultType     TypeExpr
	Body           []Statement
}

func (n *Function) Accept(v Visitor) { v.VisitFunction(n) }
func (n *Function) statementNode()   {}

// EnumPart is one `Name` or `Name(Type)` member of an Enum.
type EnumPart struct {
	DeclBase
	Enum    *Enum // back-reference, resolved in a second pass after Enum exists
	Payload TypeExpr
}

func (n *EnumPart) Accept(v Visitor) { v.VisitEnumPart(n) }

// Enum is an `enum Name { Part, Part(Type), ... }` declaration.
type Enum struct {
	DeclBase
	ScopeBase
	Parts    []*EnumPart
	Resolved *types.EnumType
}

func (n *Enum) Accept(v Visitor)   { v.VisitEnum(n) }
func (n *Enum) statementNode()     {}
func (n *Enum) AsType() types.Type { return n.Resolved }

// Bundle is a `bundle Name { member: Type; ... }` declaration; its paired
// types.FlippedBundle twin is created alongside it in the type pool.
type Bundle struct {
	DeclBase
	ScopeBase
	Members  []*BundleMember
	Resolved *types.Bundle
}

func (n *Bundle) Accept(v Visitor)   { v.VisitBundle(n) }
func (n *Bundle) statementNode()     {}
func (n *Bundle) AsType() types.Type { return n.Resolved }

// BundleMember is a single `name: Type;` entry inside a Bundle.
type BundleMember struct {
	DeclBase
	Typ TypeExpr
}

func (n *BundleMember) Accept(v Visitor) { v.VisitBundleMember(n) }

var _ symbols.ScopeIntroducer = (*Module)(nil)
var _ symbols.ScopeIntroducer = (*Interface)(nil)
var _ symbols.ScopeIntroducer = (*Enum)(nil)
var _ symbols.ScopeIntroducer = (*Bundle)(nil)
var _ symbols.Symbol = (*Import)(nil)
var _ symbols.Symbol = (*TemplateParameter)(nil)
var _ symbols.Symbol = (*EnumPart)(nil)
var _ symbols.Symbol = (*BundleMember)(nil)
