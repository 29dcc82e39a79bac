package backend_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/siliconvibe/hdlfx/internal/ast"
	"github.com/siliconvibe/hdlfx/internal/backend"
)

type stubParams struct {
	Verbose bool `yaml:"verbose"`
}

type stubGenerator struct{ params stubParams }

func (g *stubGenerator) Run(root *ast.TopLevelModule, out io.Writer) error {
	if g.params.Verbose {
		_, err := io.WriteString(out, "verbose\n")
		return err
	}
	_, err := io.WriteString(out, "quiet\n")
	return err
}

type stubBackend struct{ name string }

func (b *stubBackend) Name() string            { return b.name }
func (b *stubBackend) OutputExtension() string { return "stub" }

func (b *stubBackend) ConstructParams(yamlDoc []byte) (backend.Params, error) {
	var p stubParams
	if err := backend.DecodeParams(yamlDoc, &p); err != nil {
		return nil, err
	}
	return p, nil
}

func (b *stubBackend) Construct(p backend.Params) (backend.Generator, error) {
	return &stubGenerator{params: p.(stubParams)}, nil
}

func TestRegistryPreservesRegistrationOrder(t *testing.T) {
	reg := backend.NewRegistry()
	reg.Register(&stubBackend{name: "c"})
	reg.Register(&stubBackend{name: "a"})
	reg.Register(&stubBackend{name: "b"})

	var names []string
	for _, b := range reg.All() {
		names = append(names, b.Name())
	}
	if got, want := names, []string{"c", "a", "b"}; !equal(got, want) {
		t.Errorf("All() order = %v, want %v", got, want)
	}
}

func TestRegistryReRegisterKeepsOriginalPosition(t *testing.T) {
	reg := backend.NewRegistry()
	reg.Register(&stubBackend{name: "a"})
	reg.Register(&stubBackend{name: "b"})
	reg.Register(&stubBackend{name: "a"})

	var names []string
	for _, b := range reg.All() {
		names = append(names, b.Name())
	}
	if got, want := names, []string{"a", "b"}; !equal(got, want) {
		t.Errorf("All() order = %v, want %v", got, want)
	}
}

func TestRegistryLookup(t *testing.T) {
	reg := backend.NewRegistry()
	reg.Register(&stubBackend{name: "x"})

	if _, ok := reg.Lookup("x"); !ok {
		t.Errorf("Lookup(%q) = false, want true", "x")
	}
	if _, ok := reg.Lookup("missing"); ok {
		t.Errorf("Lookup(%q) = true, want false", "missing")
	}
}

func TestDecodeParamsEmptyDocumentKeepsDefaults(t *testing.T) {
	b := &stubBackend{name: "s"}
	params, err := b.ConstructParams(nil)
	if err != nil {
		t.Fatalf("ConstructParams: %v", err)
	}
	if params.(stubParams).Verbose {
		t.Errorf("expected default Verbose=false for an empty document")
	}
}

func TestDecodeParamsFromYAML(t *testing.T) {
	b := &stubBackend{name: "s"}
	params, err := b.ConstructParams([]byte("verbose: true\n"))
	if err != nil {
		t.Fatalf("ConstructParams: %v", err)
	}
	if !params.(stubParams).Verbose {
		t.Errorf("expected Verbose=true decoded from YAML")
	}

	gen, err := b.Construct(params)
	if err != nil {
		t.Fatalf("Construct: %v", err)
	}
	var buf bytes.Buffer
	if err := gen.Run(nil, &buf); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got, want := buf.String(), "verbose\n"; got != want {
		t.Errorf("Run() wrote %q, want %q", got, want)
	}
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
