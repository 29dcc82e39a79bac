package lexer_test

import (
	"errors"
	"testing"

	"github.com/siliconvibe/hdlfx/internal/diagnostics"
	"github.com/siliconvibe/hdlfx/internal/lexer"
	"github.com/siliconvibe/hdlfx/internal/source"
	"github.com/siliconvibe/hdlfx/internal/token"
)

func scanAll(t *testing.T, text string) []token.Token {
	t.Helper()
	l := lexer.New(source.NewSourceFromText(text, "t.hdl"))
	var toks []token.Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("NextToken: %v", err)
		}
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks
		}
	}
}

// Scenario 2: `0o377` is a single OctalLiteralInteger whose integer value is
// 255 with an all-ones mask.
func TestScenarioOctalLiteral(t *testing.T) {
	toks := scanAll(t, "0o377")
	if toks[0].Type != token.OctalLiteralInteger {
		t.Fatalf("Type = %v, want OctalLiteralInteger", toks[0].Type)
	}
	v, err := lexer.IntegerValue(toks[0])
	if err != nil {
		t.Fatalf("IntegerValue: %v", err)
	}
	if got, want := v.Value.Int().Int64(), int64(255); got != want {
		t.Errorf("value = %d, want %d", got, want)
	}
	allOnes := (int64(1) << uint(v.BitWidth)) - 1
	if got := v.Mask.Int().Int64(); got != allOnes {
		t.Errorf("mask = %#x, want all-ones %#x", got, allOnes)
	}
}

// Scenario 3: `0b10?1` is a single BinaryLiteralIntegerPattern with
// (value, mask) == (0b1001, 0b1101); `0d5?` is a lexical error.
func TestScenarioBinaryPattern(t *testing.T) {
	toks := scanAll(t, "0b10?1")
	if toks[0].Type != token.BinaryLiteralIntegerPattern {
		t.Fatalf("Type = %v, want BinaryLiteralIntegerPattern", toks[0].Type)
	}
	v, err := lexer.IntegerValue(toks[0])
	if err != nil {
		t.Fatalf("IntegerValue: %v", err)
	}
	if got, want := v.Value.Int().Int64(), int64(0b1001); got != want {
		t.Errorf("value = %#b, want %#b", got, want)
	}
	if got, want := v.Mask.Int().Int64(), int64(0b1101); got != want {
		t.Errorf("mask = %#b, want %#b", got, want)
	}
}

func TestScenarioWildcardInDecimalIsLexicalError(t *testing.T) {
	l := lexer.New(source.NewSourceFromText("0d5?", "t.hdl"))
	_, err := l.NextToken()
	if err == nil {
		t.Fatalf("expected a lexical error for a wildcard in a decimal literal")
	}
	var d *diagnostics.Error
	if !errors.As(err, &d) || d.Code != diagnostics.ErrWildcardInDecimal {
		t.Errorf("NextToken error = %v, want code %s", err, diagnostics.ErrWildcardInDecimal)
	}
}

// Invariant: lexer round-trip on concatenation — adjacent tokens with no
// intervening whitespace or comments have abutting source ranges.
func TestInvariantAdjacentTokenRangesAbut(t *testing.T) {
	toks := scanAll(t, "module(m){}")
	for i := 1; i < len(toks)-1; i++ {
		prev, cur := toks[i-1], toks[i]
		if prev.Range.End().Offset != cur.Range.Start().Offset {
			t.Errorf("token %d (%v) ends at %d, token %d (%v) starts at %d: ranges do not abut",
				i-1, prev.Type, prev.Range.End().Offset, i, cur.Type, cur.Range.Start().Offset)
		}
	}
}

func TestCommentGroupingAttachesLeadingComments(t *testing.T) {
	g := lexer.NewCommentGroupingLexer(source.NewSourceFromText("// a comment\nmodule", "t.hdl"))
	grouped, err := g.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if grouped.Token.Type != token.KwModule {
		t.Fatalf("Token.Type = %v, want KwModule", grouped.Token.Type)
	}
	if grouped.LeadingComments.Size == 0 {
		t.Errorf("expected the line comment to be attached as a leading comment")
	}
}

func TestIllegalCharacterIsALexicalError(t *testing.T) {
	l := lexer.New(source.NewSourceFromText("@", "t.hdl"))
	if _, err := l.NextToken(); err == nil {
		t.Fatalf("expected a lexical error for an illegal character")
	}
}

func TestUnterminatedBlockCommentIsALexicalError(t *testing.T) {
	l := lexer.New(source.NewSourceFromText("/* unterminated", "t.hdl"))
	if _, err := l.NextToken(); err == nil {
		t.Fatalf("expected a lexical error for an unterminated block comment")
	}
}

func TestKeywordsAreNotIdentifiers(t *testing.T) {
	toks := scanAll(t, "module foo")
	if toks[0].Type != token.KwModule {
		t.Errorf("Type = %v, want KwModule", toks[0].Type)
	}
	if toks[1].Type != token.Identifier {
		t.Errorf("Type = %v, want Identifier", toks[1].Type)
	}
}
