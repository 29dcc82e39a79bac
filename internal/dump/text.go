// Package dump implements the two dump styles spec §4.9 calls for: an
// indent-aware textual pretty-print with `=N`/`*N` cycle tagging, and a
// structured (JSON/DOT-ready) DumpTree keyed by node identity with a
// natural-number-aware ordering for indexed children.
package dump

import (
	"fmt"
	"io"
	"strings"

	"github.com/siliconvibe/hdlfx/internal/ast"
)

// TextDumper renders an AST as an indented tree. Every node is tagged `=N`
// the first time it is reached and `*N` on any later revisit (a cross-
// pointer cycle such as ForStatementVariable.Enclosing or EnumPart.Enum);
// a revisited node's children are never re-expanded.
type TextDumper struct {
	w      io.Writer
	ids    map[ast.Node]int
	next   int
	indent int
}

// NewTextDumper returns a dumper writing to w.
func NewTextDumper(w io.Writer) *TextDumper {
	return &TextDumper{w: w, ids: make(map[ast.Node]int)}
}

// Dump writes the textual tree for root.
func Dump(w io.Writer, root ast.Node) {
	d := NewTextDumper(w)
	root.Accept(d)
}

func (d *TextDumper) tag(n ast.Node) (string, bool) {
	id, seen := d.ids[n]
	if seen {
		return fmt.Sprintf("*%d", id), false
	}
	id = d.next
	d.next++
	d.ids[n] = id
	return fmt.Sprintf("=%d", id), true
}

func (d *TextDumper) printf(format string, args ...interface{}) {
	fmt.Fprintf(d.w, "%s%s\n", strings.Repeat("  ", d.indent), fmt.Sprintf(format, args...))
}

// header emits "<label> <tag>" and, if this is the node's first visit, runs
// body with the indent incremented; a revisited node's body never runs.
func (d *TextDumper) header(label string, n ast.Node, body func()) {
	tag, first := d.tag(n)
	d.printf("%s %s", label, tag)
	if !first || body == nil {
		return
	}
	d.indent++
	body()
	d.indent--
}

func (d *TextDumper) visitAll(nodes []ast.Node) {
	for _, n := range nodes {
		if n != nil {
			n.Accept(d)
		}
	}
}

func stmts(ss []ast.Statement) []ast.Node {
	out := make([]ast.Node, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

func exprs(es []ast.Expression) []ast.Node {
	out := make([]ast.Node, len(es))
	for i, e := range es {
		out[i] = e
	}
	return out
}

func types(ts []ast.TypeExpr) []ast.Node {
	out := make([]ast.Node, len(ts))
	for i, t := range ts {
		out[i] = t
	}
	return out
}

var _ ast.Visitor = (*TextDumper)(nil)

func (d *TextDumper) VisitTopLevelModule(n *ast.TopLevelModule) {
	d.header("toplevel", n, func() {
		for _, imp := range n.Imports {
			imp.Accept(d)
		}
		if n.MainModule != nil {
			n.MainModule.Accept(d)
		}
	})
}

func (d *TextDumper) VisitImport(n *ast.Import) {
	d.header(fmt.Sprintf("import %s", n.NameText), n, nil)
}

func (d *TextDumper) VisitTemplateParameter(n *ast.TemplateParameter) {
	d.header(fmt.Sprintf("templateParam %s: %s", n.Name.String(), n.Kind.String()), n, nil)
}

func (d *TextDumper) visitTemplateParams(ps []*ast.TemplateParameter) {
	for _, p := range ps {
		p.Accept(d)
	}
}

func (d *TextDumper) VisitModule(n *ast.Module) {
	d.header(fmt.Sprintf("module %s", n.Name.String()), n, func() {
		d.visitTemplateParams(n.TemplateParams)
		if n.ParentType != nil {
			n.ParentType.Accept(d)
		}
		d.visitAll(stmts(n.Body))
	})
}

func (d *TextDumper) VisitInterface(n *ast.Interface) {
	d.header(fmt.Sprintf("interface %s", n.Name.String()), n, func() {
		d.visitTemplateParams(n.TemplateParams)
		if n.ParentType != nil {
			n.ParentType.Accept(d)
		}
		d.visitAll(stmts(n.Body))
	})
}

func (d *TextDumper) VisitFunction(n *ast.Function) {
	d.header(fmt.Sprintf("function %s", n.Name.String()), n, func() {
		d.visitTemplateParams(n.TemplateParams)
		for _, p := range n.Params {
			p.Accept(d)
		}
		if n.ResultType != nil {
			n.ResultType.Accept(d)
		}
		d.visitAll(stmts(n.Body))
	})
}

func (d *TextDumper) VisitEnum(n *ast.Enum) {
	d.header(fmt.Sprintf("enum %s", n.Name.String()), n, func() {
		for _, p := range n.Parts {
			p.Accept(d)
		}
	})
}

func (d *TextDumper) VisitEnumPart(n *ast.EnumPart) {
	d.header(fmt.Sprintf("enumPart %s", n.Name.String()), n, func() {
		if n.Payload != nil {
			n.Payload.Accept(d)
		}
	})
}

func (d *TextDumper) VisitBundle(n *ast.Bundle) {
	d.header(fmt.Sprintf("bundle %s", n.Name.String()), n, func() {
		for _, m := range n.Members {
			m.Accept(d)
		}
	})
}

func (d *TextDumper) VisitBundleMember(n *ast.BundleMember) {
	d.header(fmt.Sprintf("member %s", n.Name.String()), n, func() {
		if n.Typ != nil {
			n.Typ.Accept(d)
		}
	})
}

func (d *TextDumper) VisitEmptyStatement(n *ast.EmptyStatement) { d.header("empty", n, nil) }

func (d *TextDumper) VisitExpressionStatement(n *ast.ExpressionStatement) {
	d.header("exprStmt", n, func() { n.Expr.Accept(d) })
}

func (d *TextDumper) VisitBlockStatement(n *ast.BlockStatement) {
	d.header("block", n, func() { d.visitAll(stmts(n.Body)) })
}

func (d *TextDumper) VisitIfStatement(n *ast.IfStatement) {
	d.header("if", n, func() {
		n.Cond.Accept(d)
		n.Then.Accept(d)
		if n.Else != nil {
			n.Else.Accept(d)
		}
	})
}

func (d *TextDumper) VisitForStatement(n *ast.ForStatement) {
	kind := "numeric"
	if n.Kind == ast.ForTypeIteration {
		kind = "typeIteration"
	}
	d.header(fmt.Sprintf("for %s", kind), n, func() {
		n.Variable.Accept(d)
		if n.Kind == ast.ForNumeric {
			n.Low.Accept(d)
			n.High.Accept(d)
		} else {
			d.visitAll(types(n.Types))
		}
		d.visitAll(stmts(n.Body))
	})
}

func (d *TextDumper) VisitForStatementVariable(n *ast.ForStatementVariable) {
	d.header(fmt.Sprintf("forVar %s", n.Name.String()), n, func() {
		if n.Enclosing != nil {
			n.Enclosing.Accept(d)
		}
	})
}

func (d *TextDumper) VisitMatchStatement(n *ast.MatchStatement) {
	d.header("match", n, func() {
		n.Subject.Accept(d)
		for _, p := range n.Parts {
			p.Accept(d)
		}
	})
}

func (d *TextDumper) VisitMatchPart(n *ast.MatchPart) {
	d.header("matchPart", n, func() {
		n.Pat.Accept(d)
		d.visitAll(stmts(n.Body))
	})
}

func (d *TextDumper) VisitReturnStatement(n *ast.ReturnStatement) {
	d.header("return", n, func() {
		if n.Value != nil {
			n.Value.Accept(d)
		}
	})
}

func (d *TextDumper) VisitBreakStatement(n *ast.BreakStatement)       { d.header("break", n, nil) }
func (d *TextDumper) VisitContinueStatement(n *ast.ContinueStatement) { d.header("continue", n, nil) }

func (d *TextDumper) VisitVariableDecl(n *ast.VariableDecl) {
	d.header(fmt.Sprintf("var %s", n.Name.String()), n, func() {
		if n.Typ != nil {
			n.Typ.Accept(d)
		}
		if n.Initializer != nil {
			n.Initializer.Accept(d)
		}
	})
}

func (d *TextDumper) VisitVariableDeclGroup(n *ast.VariableDeclGroup) {
	d.header(fmt.Sprintf("%s", n.Kind.String()), n, func() {
		for _, decl := range n.Decls {
			decl.Accept(d)
		}
	})
}

func (d *TextDumper) VisitTypeAliasStatement(n *ast.TypeAliasStatement) {
	d.header(fmt.Sprintf("typeAlias %s", n.Name.String()), n, func() { n.Target.Accept(d) })
}

func (d *TextDumper) VisitIntegerLiteralExpr(n *ast.IntegerLiteralExpr) {
	d.header(fmt.Sprintf("int %s", n.Value.String()), n, nil)
}

func (d *TextDumper) VisitScopedIdExpr(n *ast.ScopedIdExpr) {
	d.header(fmt.Sprintf("id %s", scopedName(n.Global, n.Names)), n, nil)
}

func (d *TextDumper) VisitParenExpr(n *ast.ParenExpr) {
	d.header("paren", n, func() { n.Inner.Accept(d) })
}

func (d *TextDumper) VisitListExpr(n *ast.ListExpr) {
	d.header("list", n, func() { d.visitAll(exprs(n.Elements)) })
}

func (d *TextDumper) VisitMemberExpr(n *ast.MemberExpr) {
	d.header(fmt.Sprintf("member .%s", n.Member), n, func() { n.Target.Accept(d) })
}

func (d *TextDumper) VisitSliceExpr(n *ast.SliceExpr) {
	d.header("slice", n, func() {
		n.Target.Accept(d)
		if n.Index != nil {
			n.Index.Accept(d)
		}
		if n.Low != nil {
			n.Low.Accept(d)
		}
		if n.High != nil {
			n.High.Accept(d)
		}
	})
}

func (d *TextDumper) VisitTemplateArg(n *ast.TemplateArg) {
	d.header("templateArg", n, func() {
		if n.Typ != nil {
			n.Typ.Accept(d)
		}
		if n.Value != nil {
			n.Value.Accept(d)
		}
	})
}

func (d *TextDumper) VisitCallExpr(n *ast.CallExpr) {
	d.header("call", n, func() {
		n.Callee.Accept(d)
		for _, ta := range n.TemplateArgs {
			ta.Accept(d)
		}
		d.visitAll(exprs(n.Args))
	})
}

func (d *TextDumper) VisitCastExpr(n *ast.CastExpr) {
	d.header("cast", n, func() {
		n.Typ.Accept(d)
		n.Value.Accept(d)
	})
}

func (d *TextDumper) VisitFillExpr(n *ast.FillExpr) {
	d.header("fill", n, func() {
		n.Count.Accept(d)
		n.Value.Accept(d)
	})
}

func (d *TextDumper) VisitCatExpr(n *ast.CatExpr) {
	d.header("cat", n, func() { d.visitAll(exprs(n.Args)) })
}

func (d *TextDumper) VisitPopCountExpr(n *ast.PopCountExpr) {
	d.header("popCount", n, func() { n.Value.Accept(d) })
}

func (d *TextDumper) VisitUnaryExpr(n *ast.UnaryExpr) {
	d.header(fmt.Sprintf("unary %s", n.Op), n, func() { n.Operand.Accept(d) })
}

func (d *TextDumper) VisitBinaryExpr(n *ast.BinaryExpr) {
	d.header(fmt.Sprintf("binary %s", n.Op), n, func() {
		n.Left.Accept(d)
		n.Right.Accept(d)
	})
}

func (d *TextDumper) VisitTernaryExpr(n *ast.TernaryExpr) {
	d.header("ternary", n, func() {
		n.Cond.Accept(d)
		n.Then.Accept(d)
		n.Else.Accept(d)
	})
}

func (d *TextDumper) VisitAssignExpr(n *ast.AssignExpr) {
	d.header(fmt.Sprintf("assign %s", n.Op), n, func() {
		n.Left.Accept(d)
		n.Right.Accept(d)
	})
}

func (d *TextDumper) VisitBitVectorTypeExpr(n *ast.BitVectorTypeExpr) {
	label := "bitVectorType"
	if n.Resolved != nil {
		label = fmt.Sprintf("bitVectorType %s", n.Resolved.String())
	}
	d.header(label, n, nil)
}

func (d *TextDumper) VisitFlipTypeExpr(n *ast.FlipTypeExpr) {
	d.header("flipType", n, func() { n.Inner.Accept(d) })
}

func (d *TextDumper) VisitScopedTypeExpr(n *ast.ScopedTypeExpr) {
	d.header(fmt.Sprintf("scopedType %s", scopedName(n.Global, n.Names)), n, nil)
}

func (d *TextDumper) VisitTupleTypeExpr(n *ast.TupleTypeExpr) {
	d.header("tupleType", n, func() { d.visitAll(types(n.Members)) })
}

func (d *TextDumper) VisitMemoryTypeExpr(n *ast.MemoryTypeExpr) {
	d.header("memoryType", n, func() {
		n.Element.Accept(d)
		n.Depth.Accept(d)
	})
}

func (d *TextDumper) VisitFunctionTypeExpr(n *ast.FunctionTypeExpr) {
	d.header("functionType", n, func() {
		d.visitAll(types(n.Params))
		if n.Result != nil {
			n.Result.Accept(d)
		}
	})
}

func (d *TextDumper) VisitTypeOfTypeExpr(n *ast.TypeOfTypeExpr) {
	d.header("typeOf", n, func() { n.Value.Accept(d) })
}

func scopedName(global bool, names []string) string {
	prefix := ""
	if global {
		prefix = "::"
	}
	return prefix + strings.Join(names, "::")
}
