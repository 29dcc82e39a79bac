package diagnostics_test

import (
	"strings"
	"testing"

	"github.com/siliconvibe/hdlfx/internal/diagnostics"
	"github.com/siliconvibe/hdlfx/internal/source"
)

func TestErrorFormat(t *testing.T) {
	src := source.NewSourceFromText("module m { }", "m.hdl")
	at := source.LocationRange{Src: src, Offset: 7, Size: 1}
	err := diagnostics.New(diagnostics.PhaseSyntactic, diagnostics.ErrExpectedToken, at, "identifier", "{")

	got := err.Error()
	if !strings.Contains(got, "syntactic") {
		t.Errorf("Error() = %q, want it to mention the phase", got)
	}
	if !strings.Contains(got, `expected identifier, got "{"`) {
		t.Errorf("Error() = %q, want the rendered template", got)
	}
}

func TestErrorWithHint(t *testing.T) {
	err := &diagnostics.Error{Code: diagnostics.ErrNameNotFound, Phase: diagnostics.PhaseResolution, Args: []interface{}{"foo"}}
	withHint := err.WithHint("did you mean bar?")

	if err.Hint != "" {
		t.Fatalf("WithHint mutated the receiver")
	}
	if !strings.Contains(withHint.Error(), "did you mean bar?") {
		t.Errorf("WithHint's Error() = %q, want it to contain the hint", withHint.Error())
	}
}

func TestShortCircuitSink(t *testing.T) {
	sink := diagnostics.ShortCircuitSink{}
	err := &diagnostics.Error{Code: diagnostics.ErrInternal, Args: []interface{}{"boom"}}
	if got := sink.Report(err); got != err {
		t.Errorf("Report() = %v, want the same error back", got)
	}
}

func TestCollectingSink(t *testing.T) {
	sink := &diagnostics.CollectingSink{}
	first := &diagnostics.Error{Code: diagnostics.ErrInternal, Args: []interface{}{"one"}}
	second := &diagnostics.Error{Code: diagnostics.ErrInternal, Args: []interface{}{"two"}}

	if err := sink.Report(first); err != nil {
		t.Fatalf("Report() returned %v, want nil so collection continues", err)
	}
	sink.Report(second)

	if len(sink.Errors) != 2 {
		t.Fatalf("len(Errors) = %d, want 2", len(sink.Errors))
	}
	if sink.Errors[0] != first || sink.Errors[1] != second {
		t.Errorf("Errors were not recorded in report order")
	}
}

func TestUnknownCodeFallsBackToCodeString(t *testing.T) {
	err := &diagnostics.Error{Code: diagnostics.ErrorCode("Z999")}
	if got, want := err.Error(), "<unknown>: : Z999"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
