package dump

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/siliconvibe/hdlfx/internal/ast"
)

// DumpTree is the structured intermediate form both the JSON and DOT
// renderers serialize from: one entry per distinct node (keyed by the
// node's identity, i.e. pointer), with named "ports" to its children.
// Re-encountering an already-keyed node records a reference rather than a
// duplicate entry, so the structure carries the same cycles the AST does.
type DumpTree struct {
	ID    int               `json:"id"`
	Label string            `json:"label"`
	Ports []DumpPort        `json:"ports,omitempty"`
	Ref   bool              `json:"ref,omitempty"` // true if this entry is a back-reference to an already-emitted id
	Attrs map[string]string `json:"attrs,omitempty"`
}

// DumpPort is one named child slot of a DumpTree node. Name carries an
// optional `[N]` index suffix for list members.
type DumpPort struct {
	Name string    `json:"name"`
	Node *DumpTree `json:"node"`
}

// naturalIndex extracts a trailing bracketed index from a port name, e.g.
// "parts[10]" -> ("parts", 10, true), for the natural-number-aware sort
// spec §4.9 requires ("parts[10]" must follow "parts[9]").
var naturalIndexRe = regexp.MustCompile(`^(.*)\[(\d+)\]$`)

func naturalIndex(name string) (base string, idx int, ok bool) {
	m := naturalIndexRe.FindStringSubmatch(name)
	if m == nil {
		return name, 0, false
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return name, 0, false
	}
	return m[1], n, true
}

// SortPorts orders ports lexicographically by base name, and numerically by
// index within a shared base name.
func SortPorts(ports []DumpPort) {
	sort.SliceStable(ports, func(i, j int) bool {
		bi, ii, oki := naturalIndex(ports[i].Name)
		bj, ij, okj := naturalIndex(ports[j].Name)
		if oki && okj && bi == bj {
			return ii < ij
		}
		return ports[i].Name < ports[j].Name
	})
}

// TreeBuilder walks an AST and produces a DumpTree, reusing TextDumper's
// traversal shape but building a structured node graph instead of text.
type TreeBuilder struct {
	ids  map[ast.Node]int
	next int
}

// NewTreeBuilder returns an empty builder.
func NewTreeBuilder() *TreeBuilder {
	return &TreeBuilder{ids: make(map[ast.Node]int)}
}

// BuildJSON renders root as an indented JSON document.
func BuildJSON(w io.Writer, root ast.Node) error {
	b := NewTreeBuilder()
	tree := b.build(root, "root")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tree)
}

// BuildDOT renders root as a Graphviz DOT document.
func BuildDOT(w io.Writer, root ast.Node) {
	b := NewTreeBuilder()
	tree := b.build(root, "root")
	fmt.Fprintln(w, "digraph dump {")
	fmt.Fprintln(w, "  node [shape=box, fontname=monospace];")
	visited := make(map[int]bool)
	var walk func(t *DumpTree)
	walk = func(t *DumpTree) {
		if t == nil || visited[t.ID] {
			return
		}
		visited[t.ID] = true
		fmt.Fprintf(w, "  n%d [label=%q];\n", t.ID, t.Label)
		ports := append([]DumpPort(nil), t.Ports...)
		SortPorts(ports)
		for _, p := range ports {
			if p.Node == nil {
				continue
			}
			fmt.Fprintf(w, "  n%d -> n%d [label=%q];\n", t.ID, p.Node.ID, p.Name)
			if !p.Node.Ref {
				walk(p.Node)
			}
		}
	}
	walk(tree)
	fmt.Fprintln(w, "}")
}

func (b *TreeBuilder) build(n ast.Node, label string) *DumpTree {
	if n == nil {
		return nil
	}
	if id, seen := b.ids[n]; seen {
		return &DumpTree{ID: id, Label: label, Ref: true}
	}
	id := b.next
	b.next++
	b.ids[n] = id

	v := &collectVisitor{b: b, tree: &DumpTree{ID: id}}
	n.Accept(v)
	return v.tree
}

// collectVisitor implements ast.Visitor by filling in a DumpTree for
// whichever node Accept dispatches to. It shares the same field walks as
// TextDumper but records structured ports instead of printing lines.
type collectVisitor struct {
	b    *TreeBuilder
	tree *DumpTree
}

func (v *collectVisitor) port(name string, n ast.Node) {
	if n == nil {
		return
	}
	v.tree.Ports = append(v.tree.Ports, DumpPort{Name: name, Node: v.b.build(n, name)})
}

func (v *collectVisitor) portList(name string, ns []ast.Node) {
	for i, n := range ns {
		v.port(fmt.Sprintf("%s[%d]", name, i), n)
	}
}

func (v *collectVisitor) label(s string) { v.tree.Label = s }

func (v *collectVisitor) VisitTopLevelModule(n *ast.TopLevelModule) {
	v.label("toplevel")
	for i, imp := range n.Imports {
		v.port(fmt.Sprintf("imports[%d]", i), imp)
	}
	v.port("mainModule", n.MainModule)
}

func (v *collectVisitor) VisitImport(n *ast.Import) {
	v.label("import " + n.NameText)
}

func (v *collectVisitor) VisitTemplateParameter(n *ast.TemplateParameter) {
	v.label("templateParam " + n.Name.String())
}

func (v *collectVisitor) VisitModule(n *ast.Module) {
	v.label("module " + n.Name.String())
	for i, p := range n.TemplateParams {
		v.port(fmt.Sprintf("templateParams[%d]", i), p)
	}
	v.port("parentType", n.ParentType)
	v.portList("body", stmts(n.Body))
}

func (v *collectVisitor) VisitInterface(n *ast.Interface) {
	v.label("interface " + n.Name.String())
	for i, p := range n.TemplateParams {
		v.port(fmt.Sprintf("templateParams[%d]", i), p)
	}
	v.port("parentType", n.ParentType)
	v.portList("body", stmts(n.Body))
}

func (v *collectVisitor) VisitFunction(n *ast.Function) {
	v.label("function " + n.Name.String())
	for i, p := range n.Params {
		v.port(fmt.Sprintf("params[%d]", i), p)
	}
	v.port("resultType", n.ResultType)
	v.portList("body", stmts(n.Body))
}

func (v *collectVisitor) VisitEnum(n *ast.Enum) {
	v.label("enum " + n.Name.String())
	for i, p := range n.Parts {
		v.port(fmt.Sprintf("parts[%d]", i), p)
	}
}

func (v *collectVisitor) VisitEnumPart(n *ast.EnumPart) {
	v.label("enumPart " + n.Name.String())
	v.port("payload", n.Payload)
}

func (v *collectVisitor) VisitBundle(n *ast.Bundle) {
	v.label("bundle " + n.Name.String())
	for i, m := range n.Members {
		v.port(fmt.Sprintf("members[%d]", i), m)
	}
}

func (v *collectVisitor) VisitBundleMember(n *ast.BundleMember) {
	v.label("member " + n.Name.String())
	v.port("type", n.Typ)
}

func (v *collectVisitor) VisitEmptyStatement(n *ast.EmptyStatement) { v.label("empty") }

func (v *collectVisitor) VisitExpressionStatement(n *ast.ExpressionStatement) {
	v.label("exprStmt")
	v.port("expr", n.Expr)
}

func (v *collectVisitor) VisitBlockStatement(n *ast.BlockStatement) {
	v.label("block")
	v.portList("body", stmts(n.Body))
}

func (v *collectVisitor) VisitIfStatement(n *ast.IfStatement) {
	v.label("if")
	v.port("cond", n.Cond)
	v.port("then", n.Then)
	v.port("else", n.Else)
}

func (v *collectVisitor) VisitForStatement(n *ast.ForStatement) {
	kind := "numeric"
	if n.Kind == ast.ForTypeIteration {
		kind = "typeIteration"
	}
	v.label("for " + kind)
	v.port("variable", n.Variable)
	v.port("low", n.Low)
	v.port("high", n.High)
	v.portList("types", types(n.Types))
	v.portList("body", stmts(n.Body))
}

func (v *collectVisitor) VisitForStatementVariable(n *ast.ForStatementVariable) {
	v.label("forVar " + n.Name.String())
	v.port("enclosing", n.Enclosing)
}

func (v *collectVisitor) VisitMatchStatement(n *ast.MatchStatement) {
	v.label("match")
	v.port("subject", n.Subject)
	for i, p := range n.Parts {
		v.port(fmt.Sprintf("parts[%d]", i), p)
	}
}

func (v *collectVisitor) VisitMatchPart(n *ast.MatchPart) {
	v.label("matchPart")
	v.port("pattern", n.Pat)
	v.portList("body", stmts(n.Body))
}

func (v *collectVisitor) VisitReturnStatement(n *ast.ReturnStatement) {
	v.label("return")
	v.port("value", n.Value)
}

func (v *collectVisitor) VisitBreakStatement(n *ast.BreakStatement)       { v.label("break") }
func (v *collectVisitor) VisitContinueStatement(n *ast.ContinueStatement) { v.label("continue") }

func (v *collectVisitor) VisitVariableDecl(n *ast.VariableDecl) {
	v.label("var " + n.Name.String())
	v.port("type", n.Typ)
	v.port("initializer", n.Initializer)
}

func (v *collectVisitor) VisitVariableDeclGroup(n *ast.VariableDeclGroup) {
	v.label(n.Kind.String())
	for i, decl := range n.Decls {
		v.port(fmt.Sprintf("decls[%d]", i), decl)
	}
}

func (v *collectVisitor) VisitTypeAliasStatement(n *ast.TypeAliasStatement) {
	v.label("typeAlias " + n.Name.String())
	v.port("target", n.Target)
}

func (v *collectVisitor) VisitIntegerLiteralExpr(n *ast.IntegerLiteralExpr) {
	v.label("int " + n.Value.String())
}

func (v *collectVisitor) VisitScopedIdExpr(n *ast.ScopedIdExpr) {
	v.label("id " + scopedName(n.Global, n.Names))
}

func (v *collectVisitor) VisitParenExpr(n *ast.ParenExpr) {
	v.label("paren")
	v.port("inner", n.Inner)
}

func (v *collectVisitor) VisitListExpr(n *ast.ListExpr) {
	v.label("list")
	v.portList("elements", exprs(n.Elements))
}

func (v *collectVisitor) VisitMemberExpr(n *ast.MemberExpr) {
	v.label("member ." + n.Member)
	v.port("target", n.Target)
}

func (v *collectVisitor) VisitSliceExpr(n *ast.SliceExpr) {
	v.label("slice")
	v.port("target", n.Target)
	v.port("index", n.Index)
	v.port("low", n.Low)
	v.port("high", n.High)
}

func (v *collectVisitor) VisitTemplateArg(n *ast.TemplateArg) {
	v.label("templateArg")
	v.port("type", n.Typ)
	v.port("value", n.Value)
}

func (v *collectVisitor) VisitCallExpr(n *ast.CallExpr) {
	v.label("call")
	v.port("callee", n.Callee)
	for i, ta := range n.TemplateArgs {
		v.port(fmt.Sprintf("templateArgs[%d]", i), ta)
	}
	v.portList("args", exprs(n.Args))
}

func (v *collectVisitor) VisitCastExpr(n *ast.CastExpr) {
	v.label("cast")
	v.port("type", n.Typ)
	v.port("value", n.Value)
}

func (v *collectVisitor) VisitFillExpr(n *ast.FillExpr) {
	v.label("fill")
	v.port("count", n.Count)
	v.port("value", n.Value)
}

func (v *collectVisitor) VisitCatExpr(n *ast.CatExpr) {
	v.label("cat")
	v.portList("args", exprs(n.Args))
}

func (v *collectVisitor) VisitPopCountExpr(n *ast.PopCountExpr) {
	v.label("popCount")
	v.port("value", n.Value)
}

func (v *collectVisitor) VisitUnaryExpr(n *ast.UnaryExpr) {
	v.label("unary " + string(n.Op))
	v.port("operand", n.Operand)
}

func (v *collectVisitor) VisitBinaryExpr(n *ast.BinaryExpr) {
	v.label("binary " + string(n.Op))
	v.port("left", n.Left)
	v.port("right", n.Right)
}

func (v *collectVisitor) VisitTernaryExpr(n *ast.TernaryExpr) {
	v.label("ternary")
	v.port("cond", n.Cond)
	v.port("then", n.Then)
	v.port("else", n.Else)
}

func (v *collectVisitor) VisitAssignExpr(n *ast.AssignExpr) {
	v.label("assign " + string(n.Op))
	v.port("left", n.Left)
	v.port("right", n.Right)
}

func (v *collectVisitor) VisitBitVectorTypeExpr(n *ast.BitVectorTypeExpr) {
	label := "bitVectorType"
	if n.Resolved != nil {
		label = "bitVectorType " + n.Resolved.String()
	}
	v.label(label)
}

func (v *collectVisitor) VisitFlipTypeExpr(n *ast.FlipTypeExpr) {
	v.label("flipType")
	v.port("inner", n.Inner)
}

func (v *collectVisitor) VisitScopedTypeExpr(n *ast.ScopedTypeExpr) {
	v.label("scopedType " + scopedName(n.Global, n.Names))
}

func (v *collectVisitor) VisitTupleTypeExpr(n *ast.TupleTypeExpr) {
	v.label("tupleType")
	v.portList("members", types(n.Members))
}

func (v *collectVisitor) VisitMemoryTypeExpr(n *ast.MemoryTypeExpr) {
	v.label("memoryType")
	v.port("element", n.Element)
	v.port("depth", n.Depth)
}

func (v *collectVisitor) VisitFunctionTypeExpr(n *ast.FunctionTypeExpr) {
	v.label("functionType")
	v.portList("params", types(n.Params))
	v.port("result", n.Result)
}

func (v *collectVisitor) VisitTypeOfTypeExpr(n *ast.TypeOfTypeExpr) {
	v.label("typeOf")
	v.port("value", n.Value)
}

var _ ast.Visitor = (*collectVisitor)(nil)

// String renders t as one indented line per node, mainly for test
// assertions that don't want to parse JSON.
func (t *DumpTree) String() string {
	var sb strings.Builder
	var walk func(t *DumpTree, indent int)
	walk = func(t *DumpTree, indent int) {
		if t == nil {
			return
		}
		pad := strings.Repeat("  ", indent)
		if t.Ref {
			fmt.Fprintf(&sb, "%s%s *%d\n", pad, t.Label, t.ID)
			return
		}
		fmt.Fprintf(&sb, "%s%s =%d\n", pad, t.Label, t.ID)
		ports := append([]DumpPort(nil), t.Ports...)
		SortPorts(ports)
		for _, p := range ports {
			walk(p.Node, indent+1)
		}
	}
	walk(t, 0)
	return sb.String()
}
