// Command hdlfx is the front end's CLI driver: it reads one HDL source
// file (or standard input), runs it through the parser, writes a trailing
// dump to standard error, and hands the resulting top-level module to
// every registered back-end (spec §6). No back-end is registered here —
// the output code generator is an external collaborator.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/siliconvibe/hdlfx/internal/backend"
	"github.com/siliconvibe/hdlfx/internal/config"
	"github.com/siliconvibe/hdlfx/internal/dump"
	"github.com/siliconvibe/hdlfx/internal/pipeline"
	"github.com/siliconvibe/hdlfx/internal/source"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s <file.hdl|->\n", filepath.Base(os.Args[0]))
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) != 1 {
		usage()
		return 1
	}
	inputName := args[0]

	src, err := readSource(inputName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	ctx := pipeline.NewPipelineContext(src)
	p := pipeline.New(pipeline.ParseProcessor{})
	ctx = p.Run(ctx)

	for _, e := range ctx.Errors {
		fmt.Fprintln(os.Stderr, e)
	}

	if ctx.AstRoot != nil && ctx.AstRoot.MainModule != nil {
		dump.Dump(os.Stderr, ctx.AstRoot.MainModule)
	}

	if len(ctx.Errors) > 0 {
		return 1
	}

	if err := runBackends(registry(), inputName, ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// readSource resolves the CLI's single positional argument: "-" reads
// standard input (refusing an interactive terminal with nothing piped to
// it), anything else is a file path.
func readSource(name string) (*source.Source, error) {
	if name == "-" {
		if isatty.IsTerminal(os.Stdin.Fd()) {
			return nil, fmt.Errorf("refusing to read source from an interactive terminal")
		}
		return source.NewSourceFromStandardInput(os.Stdin)
	}
	return source.NewSourceFromFile(name)
}

// registry returns the set of back-ends the driver runs every parsed
// module through. Empty: the output code generator is an external
// collaborator, registered by whatever binary links this driver's CLI
// plumbing together with its own Backend implementations.
func registry() *backend.Registry {
	return backend.NewRegistry()
}

// runBackends constructs and runs every registered back-end over the
// parsed module, writing each one's output to <input base>.<extension>.
func runBackends(reg *backend.Registry, inputName string, ctx *pipeline.PipelineContext) error {
	base := config.TrimSourceExt(inputName)
	if base == "-" {
		base = "stdin"
	}
	for _, b := range reg.All() {
		params, err := b.ConstructParams(nil)
		if err != nil {
			return fmt.Errorf("%s: decoding parameters: %w", b.Name(), err)
		}
		gen, err := b.Construct(params)
		if err != nil {
			return fmt.Errorf("%s: constructing generator: %w", b.Name(), err)
		}
		outPath := base + "." + b.OutputExtension()
		if err := writeBackendOutput(outPath, gen, ctx); err != nil {
			return fmt.Errorf("%s: %w", b.Name(), err)
		}
	}
	return nil
}

func writeBackendOutput(outPath string, gen backend.Generator, ctx *pipeline.PipelineContext) error {
	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	var w io.Writer = out
	return gen.Run(ctx.AstRoot, w)
}
