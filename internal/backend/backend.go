// Package backend declares the contract a code-generating back-end must
// satisfy to consume a fully parsed and symbol-resolved top-level module
// (spec §6). No concrete generator lives here: the output code generator
// is an external collaborator treated only as an interface.
package backend

import (
	"io"

	"github.com/siliconvibe/hdlfx/internal/ast"
)

// Params is the decoded configuration a back-end's Generator runs with.
// Concrete back-ends define their own Params shape and decode it from a
// YAML document via ConstructParams.
type Params interface{}

// Generator runs against a fully resolved root module, writing its output
// to a caller-supplied stream.
type Generator interface {
	Run(rootModule *ast.TopLevelModule, out io.Writer) error
}

// Backend is the front end's sole consumer-facing contract: a name, a
// declared output file extension, a way to decode a YAML parameter
// document, and a way to build a Generator from those parameters.
type Backend interface {
	// Name identifies the back-end for CLI selection and diagnostics.
	Name() string

	// OutputExtension is appended to the input file's base name to name
	// the file this back-end writes (spec §6).
	OutputExtension() string

	// ConstructParams decodes a YAML parameter document into this
	// back-end's Params. An empty document yields the back-end's
	// defaults.
	ConstructParams(yamlDoc []byte) (Params, error)

	// Construct builds a Generator from decoded Params.
	Construct(p Params) (Generator, error)
}

// Registry holds every back-end registered with the driver, keyed by
// name, so the CLI can run "for each registered back-end" (spec §6)
// without hard-coding a back-end list.
type Registry struct {
	backends map[string]Backend
	order    []string
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{backends: make(map[string]Backend)}
}

// Register adds b to the registry, keyed by b.Name(). Registration order
// is preserved for All's iteration order.
func (r *Registry) Register(b Backend) {
	if _, exists := r.backends[b.Name()]; !exists {
		r.order = append(r.order, b.Name())
	}
	r.backends[b.Name()] = b
}

// All returns every registered back-end in registration order.
func (r *Registry) All() []Backend {
	result := make([]Backend, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, r.backends[name])
	}
	return result
}

// Lookup returns the back-end registered under name, if any.
func (r *Registry) Lookup(name string) (Backend, bool) {
	b, ok := r.backends[name]
	return b, ok
}
