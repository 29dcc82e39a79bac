package dump_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/siliconvibe/hdlfx/internal/dump"
	"github.com/siliconvibe/hdlfx/internal/pipeline"
	"github.com/siliconvibe/hdlfx/internal/source"
)

func parseMainModule(t *testing.T, text string) *pipeline.PipelineContext {
	t.Helper()
	src := source.NewSourceFromText(text, "t.hdl")
	ctx := pipeline.NewPipelineContext(src)
	ctx = pipeline.New(pipeline.ParseProcessor{}).Run(ctx)
	if len(ctx.Errors) != 0 {
		t.Fatalf("parse errors: %v", ctx.Errors)
	}
	return ctx
}

func TestTextDumpEmptyModule(t *testing.T) {
	ctx := parseMainModule(t, "module m { }")

	var buf bytes.Buffer
	dump.Dump(&buf, ctx.AstRoot.MainModule)

	if got, want := buf.String(), "module m =0\n"; got != want {
		t.Errorf("Dump() = %q, want %q", got, want)
	}
}

func TestTextDumpBreaksForLoopVariableCycle(t *testing.T) {
	ctx := parseMainModule(t, "module m { function f() { for i in 0 to 4 { } } }")

	var buf bytes.Buffer
	dump.Dump(&buf, ctx.AstRoot.MainModule)

	out := buf.String()
	if strings.Count(out, "forVar") != 1 {
		t.Fatalf("expected the loop variable header to appear exactly once, got:\n%s", out)
	}
	if !strings.Contains(out, "for numeric *") {
		t.Errorf("expected a back-reference tag (for numeric *N) for the Variable.Enclosing cycle, got:\n%s", out)
	}
}

func TestDumpTreeJSONIsDeterministicallyOrdered(t *testing.T) {
	ctx := parseMainModule(t, "module m { enum e { a, b, c } }")

	var buf bytes.Buffer
	if err := dump.BuildJSON(&buf, ctx.AstRoot.MainModule); err != nil {
		t.Fatalf("BuildJSON: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("BuildJSON produced no output")
	}
	out := buf.String()
	a, b, c := strings.Index(out, `"parts[0]"`), strings.Index(out, `"parts[1]"`), strings.Index(out, `"parts[2]"`)
	if a < 0 || a > b || b > c {
		t.Errorf("expected ports parts[0], parts[1], parts[2] in index order, got:\n%s", out)
	}
}

func TestSortPortsOrdersIndicesNumerically(t *testing.T) {
	ports := []dump.DumpPort{
		{Name: "parts[10]"},
		{Name: "parts[2]"},
		{Name: "parts[9]"},
		{Name: "parts[1]"},
	}
	dump.SortPorts(ports)

	var names []string
	for _, p := range ports {
		names = append(names, p.Name)
	}
	want := []string{"parts[1]", "parts[2]", "parts[9]", "parts[10]"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("SortPorts order = %v, want %v", names, want)
		}
	}
}
