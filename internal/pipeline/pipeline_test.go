package pipeline_test

import (
	"testing"

	"github.com/siliconvibe/hdlfx/internal/pipeline"
	"github.com/siliconvibe/hdlfx/internal/source"
)

func TestParseProcessorSuccess(t *testing.T) {
	src := source.NewSourceFromText("module m { }", "m.hdl")
	ctx := pipeline.NewPipelineContext(src)

	p := pipeline.New(pipeline.ParseProcessor{})
	ctx = p.Run(ctx)

	if len(ctx.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", ctx.Errors)
	}
	if ctx.AstRoot == nil {
		t.Fatalf("AstRoot is nil after a successful parse")
	}
	if ctx.AstRoot.MainModule == nil {
		t.Fatalf("MainModule is nil after a successful parse")
	}
}

func TestParseProcessorCollectsDiagnostics(t *testing.T) {
	src := source.NewSourceFromText("module m { @@@ }", "m.hdl")
	ctx := pipeline.NewPipelineContext(src)

	p := pipeline.New(pipeline.ParseProcessor{})
	ctx = p.Run(ctx)

	if len(ctx.Errors) == 0 {
		t.Fatalf("expected at least one diagnostic for malformed input")
	}
}

func TestPipelineRunsAllStagesInOrder(t *testing.T) {
	src := source.NewSourceFromText("module m { }", "m.hdl")
	ctx := pipeline.NewPipelineContext(src)

	var order []string
	mark := func(name string) pipeline.Processor {
		return markProcessor{name: name, log: &order}
	}

	p := pipeline.New(mark("first"), pipeline.ParseProcessor{}, mark("second"))
	p.Run(ctx)

	if got, want := len(order), 2; got != want {
		t.Fatalf("len(order) = %d, want %d", got, want)
	}
	if order[0] != "first" || order[1] != "second" {
		t.Errorf("order = %v, want [first second]", order)
	}
}

type markProcessor struct {
	name string
	log  *[]string
}

func (m markProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	*m.log = append(*m.log, m.name)
	return ctx
}
