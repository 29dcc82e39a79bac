package parser_test

import (
	"testing"

	"github.com/siliconvibe/hdlfx/internal/ast"
	"github.com/siliconvibe/hdlfx/internal/diagnostics"
	"github.com/siliconvibe/hdlfx/internal/parser"
	"github.com/siliconvibe/hdlfx/internal/source"
)

func parseText(t *testing.T, text string) (*ast.TopLevelModule, error, *diagnostics.CollectingSink) {
	t.Helper()
	sink := &diagnostics.CollectingSink{}
	ctx := parser.NewContext(sink)
	p, err := parser.New(ctx, source.NewSourceFromText(text, "t.hdl"))
	if err != nil {
		t.Fatalf("parser.New: %v", err)
	}
	mod, err := p.ParseTopLevelModule()
	return mod, err, sink
}

// Scenario 1: `module m { }` parses to an empty Module named m, no imports.
func TestScenarioEmptyModule(t *testing.T) {
	mod, err, sink := parseText(t, "module m { }")
	if err != nil {
		t.Fatalf("ParseTopLevelModule: %v", err)
	}
	if len(sink.Errors) != 0 {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors)
	}
	if len(mod.Imports) != 0 {
		t.Fatalf("expected no imports, got %d", len(mod.Imports))
	}
	m, ok := mod.MainModule.(*ast.Module)
	if !ok {
		t.Fatalf("MainModule = %T, want *ast.Module", mod.MainModule)
	}
	if got, want := m.Name.String(), "m"; got != want {
		t.Errorf("Name = %q, want %q", got, want)
	}
	if len(m.Body) != 0 {
		t.Errorf("Body = %v, want empty", m.Body)
	}
}

// Scenario 4: a bundle's members and its flipped twin.
func TestScenarioBundleMembersAndFlip(t *testing.T) {
	mod, err, sink := parseText(t, "module m { bundle b { x: u8; y: flip u8; } }")
	if err != nil {
		t.Fatalf("ParseTopLevelModule: %v", err)
	}
	if len(sink.Errors) != 0 {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors)
	}
	m := mod.MainModule.(*ast.Module)
	if len(m.Body) != 1 {
		t.Fatalf("expected one statement in module body, got %d", len(m.Body))
	}
	bundle, ok := m.Body[0].(*ast.Bundle)
	if !ok {
		t.Fatalf("Body[0] = %T, want *ast.Bundle", m.Body[0])
	}
	if len(bundle.Members) != 2 {
		t.Fatalf("expected 2 bundle members, got %d", len(bundle.Members))
	}
	if !bundle.Resolved.IsStateless() {
		t.Errorf("expected the bundle to be stateless (every member is a Reg-direction bit-vector)")
	}
	flipped := bundle.Resolved.Flipped()
	if flipped == nil {
		t.Fatalf("Flipped() returned nil")
	}
}

// Scenario 5: a name reused by a nested declaration collides with its
// immediately enclosing declaration's own name, even though the two names
// are inserted into different SymbolTables (the inner name never reaches
// the outer module's own containing scope).
func TestScenarioNestedModuleNameCollidesWithEnclosing(t *testing.T) {
	_, err, sink := parseText(t, "module m { module m { } }")

	var diags []*diagnostics.Error
	if d, ok := err.(*diagnostics.Error); ok {
		diags = append(diags, d)
	}
	diags = append(diags, sink.Errors...)

	if len(diags) == 0 {
		t.Fatalf("expected a name-redefined diagnostic, got none")
	}
	found := false
	for _, d := range diags {
		if d.Code == diagnostics.ErrNameRedefined {
			found = true
			if len(d.Args) != 1 || d.Args[0] != "m" {
				t.Errorf("diagnostic args = %v, want [\"m\"]", d.Args)
			}
			innerOffset := len("module m { module ")
			if d.At.Offset != innerOffset {
				t.Errorf("diagnostic range offset = %d, want %d (the inner m's name)", d.At.Offset, innerOffset)
			}
		}
	}
	if !found {
		t.Fatalf("no ErrNameRedefined diagnostic among %v", diags)
	}
}

// An unrelated name, reused by a declaration nested inside a module whose
// own name is different, is legal: declare only rejects a name that
// matches one of the currently open enclosing declarations, not every
// name ever inserted anywhere in the chain.
func TestScenarioUnrelatedNameIsNotACollision(t *testing.T) {
	_, err, sink := parseText(t, "module m { function g() { } }")
	if err != nil {
		t.Fatalf("ParseTopLevelModule: %v", err)
	}
	for _, d := range sink.Errors {
		if d.Code == diagnostics.ErrNameRedefined {
			t.Fatalf("unexpected name-redefined diagnostic: %v", d)
		}
	}
}

// The same "nested name reuses an enclosing declaration's own name" rule
// that governs scenario 5 applies to any scope-introducing declaration
// kind, not only module-in-module: a function named the same as its
// enclosing module collides too, since both names conceptually belong to
// the module's parent scope (spec.md:233's "declared in the outer scope").
func TestScenarioNestedFunctionNameCollidesWithEnclosingModule(t *testing.T) {
	_, err, sink := parseText(t, "module m { function m() { } }")
	var diags []*diagnostics.Error
	if d, ok := err.(*diagnostics.Error); ok {
		diags = append(diags, d)
	}
	diags = append(diags, sink.Errors...)

	found := false
	for _, d := range diags {
		if d.Code == diagnostics.ErrNameRedefined {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a name-redefined diagnostic for function m nested in module m, got %v", diags)
	}
}

// Two declarations with the same name in the very same scope still collide
// via the existing SymbolTable.Insert check, unaffected by the new fix.
func TestScenarioSameScopeCollisionStillDetected(t *testing.T) {
	_, err, sink := parseText(t, "module m { function f() { } function f() { } }")
	var diags []*diagnostics.Error
	if d, ok := err.(*diagnostics.Error); ok {
		diags = append(diags, d)
	}
	diags = append(diags, sink.Errors...)

	found := false
	for _, d := range diags {
		if d.Code == diagnostics.ErrNameRedefined {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a name-redefined diagnostic for the duplicate function, got %v", diags)
	}
}

// Scenario 6: only one top-level declaration is permitted.
func TestScenarioExtraTopLevelDeclarationIsSyntaxError(t *testing.T) {
	_, err, sink := parseText(t, "module a { } module b { }")
	var diags []*diagnostics.Error
	if d, ok := err.(*diagnostics.Error); ok {
		diags = append(diags, d)
	}
	diags = append(diags, sink.Errors...)

	found := false
	for _, d := range diags {
		if d.Code == diagnostics.ErrExtraTokens {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an extra-tokens diagnostic, got %v", diags)
	}
}

// A ShortCircuitSink aborts parsing on the first diagnostic rather than
// collecting it, per the default sink described by spec §7.
func TestShortCircuitSinkAbortsOnFirstError(t *testing.T) {
	ctx := parser.NewContext(diagnostics.ShortCircuitSink{})
	p, err := parser.New(ctx, source.NewSourceFromText("module m { module m { } }", "t.hdl"))
	if err != nil {
		t.Fatalf("parser.New: %v", err)
	}
	_, err = p.ParseTopLevelModule()
	if err == nil {
		t.Fatalf("expected ParseTopLevelModule to return the redefinition error")
	}
	d, ok := err.(*diagnostics.Error)
	if !ok {
		t.Fatalf("err = %T, want *diagnostics.Error", err)
	}
	if d.Code != diagnostics.ErrNameRedefined {
		t.Errorf("Code = %v, want ErrNameRedefined", d.Code)
	}
}

// Enum parts are declared once their whole part (including an optional
// payload type) has been parsed.
func TestEnumPartsDeclaredWithPayloads(t *testing.T) {
	mod, err, sink := parseText(t, "module m { enum e { a, b(u8) } }")
	if err != nil {
		t.Fatalf("ParseTopLevelModule: %v", err)
	}
	if len(sink.Errors) != 0 {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors)
	}
	m := mod.MainModule.(*ast.Module)
	en := m.Body[0].(*ast.Enum)
	if len(en.Parts) != 2 {
		t.Fatalf("expected 2 enum parts, got %d", len(en.Parts))
	}
	if en.Resolved == nil || len(en.Resolved.Members) != 2 {
		t.Fatalf("Resolved enum type not materialized with both members")
	}
}
