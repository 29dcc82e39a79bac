package bignum_test

import (
	"testing"

	"github.com/siliconvibe/hdlfx/internal/bignum"
)

func TestIntegerPatternConcrete(t *testing.T) {
	p, err := bignum.ParseIntegerPattern("1010", 2, '?')
	if err != nil {
		t.Fatalf("ParseIntegerPattern: %v", err)
	}
	if !p.IsConcrete() {
		t.Fatalf("expected concrete pattern, got mask %s", p.Mask)
	}
	if got, want := p.String(), "10"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestIntegerPatternWildcard(t *testing.T) {
	p, err := bignum.ParseIntegerPattern("1?1?", 2, '?')
	if err != nil {
		t.Fatalf("ParseIntegerPattern: %v", err)
	}
	if p.IsConcrete() {
		t.Fatalf("expected non-concrete pattern")
	}
	if got, want := p.String(), "1?1?"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestIntegerPatternInvalidDigit(t *testing.T) {
	if _, err := bignum.ParseIntegerPattern("12", 2, '?'); err == nil {
		t.Fatalf("expected error for digit out of range of base")
	}
}
