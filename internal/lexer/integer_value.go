package lexer

import (
	"fmt"

	"github.com/siliconvibe/hdlfx/internal/bignum"
	"github.com/siliconvibe/hdlfx/internal/token"
)

// baseAndDigits strips a literal's base marker (if any) and returns the base
// and the remaining digit text.
func baseAndDigits(t token.Token) (base int, digits string) {
	lex := t.Lexeme()
	switch t.Type {
	case token.BinaryLiteralInteger, token.BinaryLiteralIntegerPattern:
		return 2, lex[2:]
	case token.OctalLiteralInteger, token.OctalLiteralIntegerPattern:
		return 8, lex[2:]
	case token.HexadecimalLiteralInteger, token.HexadecimalLiteralIntegerPattern:
		return 16, lex[2:]
	case token.DecimalLiteralInteger:
		return 10, lex[2:]
	case token.UnprefixedDecimalLiteralInteger:
		return 10, lex
	default:
		return 10, lex
	}
}

// IntegerValue parses an integer or integer-pattern token's lexeme into a
// bignum.IntegerPattern, per spec §4.2: "a caller may request integerValue()
// on integer/integer-pattern tokens".
func IntegerValue(t token.Token) (bignum.IntegerPattern, error) {
	switch t.Type {
	case token.UnprefixedDecimalLiteralInteger,
		token.BinaryLiteralInteger, token.OctalLiteralInteger,
		token.DecimalLiteralInteger, token.HexadecimalLiteralInteger,
		token.BinaryLiteralIntegerPattern, token.OctalLiteralIntegerPattern,
		token.HexadecimalLiteralIntegerPattern:
	default:
		return bignum.IntegerPattern{}, fmt.Errorf("%s is not an integer token", t.Type)
	}
	base, digits := baseAndDigits(t)
	digits = bignum.TrimDigitSeparators(digits)
	if digits == "" {
		zero := bignum.NewBigIntegerFromInt64(0)
		return bignum.IntegerPattern{Value: zero, Mask: zero, BitWidth: 0}, nil
	}
	return bignum.ParseIntegerPattern(digits, base, '?')
}
