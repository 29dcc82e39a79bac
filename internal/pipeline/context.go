package pipeline

import (
	"github.com/siliconvibe/hdlfx/internal/ast"
	"github.com/siliconvibe/hdlfx/internal/diagnostics"
	"github.com/siliconvibe/hdlfx/internal/parser"
	"github.com/siliconvibe/hdlfx/internal/source"
)

// PipelineContext threads the source, the parser's shared Context, and the
// outcome of each stage through the Pipeline. A Processor may fill in fields
// of the context it receives in place; each returns the context (the same
// value or a new one) for the next stage.
type PipelineContext struct {
	Src *source.Source

	// ParserContext is created once per compilation unit and shared by
	// every source parsed into it; callers that parse more than one file
	// into the same Context set this before running the pipeline.
	ParserContext *parser.Context

	// AstRoot is the parsed top-level module, nil until ParseProcessor
	// has run (or if parsing failed before producing one).
	AstRoot *ast.TopLevelModule

	// Errors accumulates every diagnostic collected across every stage
	// that ran so far (requires ParserContext.Sink to be a
	// *diagnostics.CollectingSink for more than the first to appear).
	Errors []*diagnostics.Error
}

// NewPipelineContext returns a context for a single file parsed into a
// fresh Context backed by a CollectingSink, so a driver can report every
// diagnostic a pass discovers rather than only the first.
func NewPipelineContext(src *source.Source) *PipelineContext {
	sink := &diagnostics.CollectingSink{}
	return &PipelineContext{
		Src:           src,
		ParserContext: parser.NewContext(sink),
	}
}

// ParseProcessor is the pipeline's sole mandatory stage: it runs the
// recursive-descent parser over ctx.Src using ctx.ParserContext, recording
// the resulting top-level module (or the diagnostics from a failed parse).
type ParseProcessor struct{}

func (ParseProcessor) Process(ctx *PipelineContext) *PipelineContext {
	p, err := parser.New(ctx.ParserContext, ctx.Src)
	if err != nil {
		ctx.Errors = append(ctx.Errors, asDiagnostic(err))
		return ctx
	}
	mod, err := p.ParseTopLevelModule()
	if err != nil {
		ctx.Errors = append(ctx.Errors, asDiagnostic(err))
	}
	ctx.AstRoot = mod
	if sink, ok := ctx.ParserContext.Sink.(*diagnostics.CollectingSink); ok {
		ctx.Errors = append(ctx.Errors, sink.Errors...)
	}
	return ctx
}

func asDiagnostic(err error) *diagnostics.Error {
	if d, ok := err.(*diagnostics.Error); ok {
		return d
	}
	return &diagnostics.Error{Code: diagnostics.ErrInternal, Phase: diagnostics.PhaseSyntactic, Args: []interface{}{err.Error()}}
}
