// Package pipeline wires the front end's stages together the way the
// surrounding ecosystem's own driver does: a sequence of Processors, each
// taking a PipelineContext and returning a new one, run in order by a
// Pipeline. Unlike the teacher's lex/parse/analyze/execute split, this
// front end has only two stages (lex-on-demand is internal to the parser,
// and symbol resolution happens inline while parsing), so a pipeline here
// is typically just a single ParseProcessor followed by zero or more
// caller-supplied Processors.
package pipeline

// Processor is one stage of the pipeline.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// Pipeline runs a fixed sequence of Processors over a PipelineContext.
type Pipeline struct {
	processors []Processor
}

// New builds a Pipeline from the given stages, run in order.
func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run threads ctx through every stage in order. Processing continues past
// a stage that records errors so later stages (e.g. a dump of whatever
// partial tree exists) still get a chance to run; the driver decides what
// to do with PipelineContext.Errors afterward.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
	}
	return ctx
}
