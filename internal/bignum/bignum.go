// Package bignum supplies the arbitrary-precision integer and bit-vector
// value types the front end's lexer hands back for integer literals.
// Arbitrary-precision arithmetic itself is treated as an external
// collaborator and delegated to math/big; this package adds the HDL-specific
// notions of a signed/unsigned bit-vector value and a wildcard-masked
// integer pattern on top of it.
package bignum

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/funvibe/funbit"
)

// Kind distinguishes signed from unsigned bit-vector magnitudes.
type Kind int

const (
	Unsigned Kind = iota
	Signed
)

func (k Kind) String() string {
	if k == Signed {
		return "signed"
	}
	return "unsigned"
}

// BigInteger is an arbitrary-precision signed integer. It is a thin value
// wrapper over math/big.Int so the rest of the front end never imports
// math/big directly.
type BigInteger struct {
	v big.Int
}

// NewBigIntegerFromInt64 builds a BigInteger from a machine int64.
func NewBigIntegerFromInt64(n int64) BigInteger {
	var b BigInteger
	b.v.SetInt64(n)
	return b
}

// NewBigIntegerFromString parses digits in the given base (2, 8, 10, or 16).
// Returns false if the text contains a character illegal for that base.
func NewBigIntegerFromString(digits string, base int) (BigInteger, bool) {
	var b BigInteger
	_, ok := b.v.SetString(digits, base)
	return b, ok
}

// Int returns the underlying *big.Int (not a copy); callers must not mutate
// it in place.
func (b BigInteger) Int() *big.Int { return &b.v }

// Sign returns -1, 0, or 1.
func (b BigInteger) Sign() int { return b.v.Sign() }

func (b BigInteger) String() string { return b.v.String() }

// Add, Sub, and Mul return newly allocated results; they do not mutate
// their receivers.
func (b BigInteger) Add(other BigInteger) BigInteger {
	var r BigInteger
	r.v.Add(&b.v, &other.v)
	return r
}

func (b BigInteger) Sub(other BigInteger) BigInteger {
	var r BigInteger
	r.v.Sub(&b.v, &other.v)
	return r
}

func (b BigInteger) Mul(other BigInteger) BigInteger {
	var r BigInteger
	r.v.Mul(&b.v, &other.v)
	return r
}

// Cmp returns -1, 0, or +1 comparing b to other.
func (b BigInteger) Cmp(other BigInteger) int { return b.v.Cmp(&other.v) }

// BitLen returns the number of bits required to represent |b|.
func (b BigInteger) BitLen() int { return b.v.BitLen() }

// BitVector is an HDL-level integer value: a magnitude paired with a kind
// (signed/unsigned) and a fixed bit width. Values are always normalized to
// fit within bitWidth bits (two's complement truncation for Signed).
type BitVector struct {
	Kind     Kind
	BitWidth int
	value    BigInteger
}

// NewBitVector builds a BitVector, truncating value to bitWidth bits
// according to kind.
func NewBitVector(kind Kind, bitWidth int, value BigInteger) BitVector {
	bv := BitVector{Kind: kind, BitWidth: bitWidth}
	bv.value = truncate(kind, bitWidth, value)
	return bv
}

func truncate(kind Kind, bitWidth int, value BigInteger) BigInteger {
	if bitWidth <= 0 {
		return NewBigIntegerFromInt64(0)
	}
	mod := new(big.Int).Lsh(big.NewInt(1), uint(bitWidth))
	var m big.Int
	m.Mod(value.Int(), mod)
	if kind == Signed {
		half := new(big.Int).Rsh(mod, 1)
		if m.Cmp(half) >= 0 {
			m.Sub(&m, mod)
		}
	}
	var r BigInteger
	r.v.Set(&m)
	return r
}

// Value returns the BitVector's magnitude as a BigInteger.
func (bv BitVector) Value() BigInteger { return bv.value }

func (bv BitVector) String() string {
	return fmt.Sprintf("%s%d(%s)", bv.Kind, bv.BitWidth, bv.value)
}

// Pack renders the BitVector's concrete bits into a big-endian byte slice of
// the minimum length needed to hold BitWidth bits, using funbit's bit-level
// construction — the same primitive the rest of the ecosystem uses to build
// packed binary payloads, applied here to a fixed-width integer instead of a
// network frame.
func (bv BitVector) Pack() ([]byte, error) {
	unsigned := bv.value.Int()
	if bv.Kind == Signed && unsigned.Sign() < 0 {
		mod := new(big.Int).Lsh(big.NewInt(1), uint(bv.BitWidth))
		unsigned = new(big.Int).Add(unsigned, mod)
	}
	b := funbit.NewBuilder()
	funbit.AddInteger(b, unsigned.Uint64(), funbit.WithSize(uint(bv.BitWidth)), funbit.WithEndianness(funbit.EndiannessBig))
	packed, err := funbit.Build(b)
	if err != nil {
		return nil, fmt.Errorf("packing bit vector: %w", err)
	}
	return packed.ToBytes(), nil
}

// IntegerPattern is a literal value paired with a wildcard mask: a cleared
// mask bit marks a position as "don't care" rather than a concrete 0 or 1.
// A mask of all ones denotes an ordinary integer.
type IntegerPattern struct {
	Value    BigInteger
	Mask     BigInteger
	BitWidth int // number of significant bit positions the mask covers
}

// IsConcrete reports whether every bit position up to BitWidth is
// significant (no wildcards) — i.e. the pattern denotes a plain integer.
func (p IntegerPattern) IsConcrete() bool {
	ones := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(p.BitWidth)), big.NewInt(1))
	return p.Mask.Int().Cmp(ones) == 0
}

// String renders a concrete pattern as its decimal value, or a wildcarded
// one as a binary string with '?' for don't-care bits.
func (p IntegerPattern) String() string {
	if p.IsConcrete() {
		return p.Value.String()
	}
	var sb strings.Builder
	for i := p.BitWidth - 1; i >= 0; i-- {
		if p.Mask.Int().Bit(i) == 0 {
			sb.WriteByte('?')
			continue
		}
		if p.Value.Int().Bit(i) == 0 {
			sb.WriteByte('0')
		} else {
			sb.WriteByte('1')
		}
	}
	return sb.String()
}

// ParseIntegerPattern parses the digits of a (possibly wildcarded) literal
// in the given base, building (value, mask) per the rule: a wildcard digit
// contributes 0 to value and 0 to mask; a concrete digit contributes its
// value and all-ones to the corresponding bit positions. Base-10 digits do
// not map onto whole bit positions, so a decimal literal is parsed as a
// plain integer whose mask is all ones over its bit length. digits must not
// contain digit separators; wildcardChar marks a wildcard digit.
func ParseIntegerPattern(digits string, base int, wildcardChar byte) (IntegerPattern, error) {
	bitsPerDigit := bitsPerDigitForBase(base)
	if bitsPerDigit == 0 {
		v, ok := NewBigIntegerFromString(digits, base)
		if !ok || v.Int().Sign() < 0 {
			return IntegerPattern{}, fmt.Errorf("invalid digits %q for base %d", digits, base)
		}
		bitWidth := v.Int().BitLen()
		var m BigInteger
		m.v.Sub(new(big.Int).Lsh(big.NewInt(1), uint(bitWidth)), big.NewInt(1))
		return IntegerPattern{Value: v, Mask: m, BitWidth: bitWidth}, nil
	}
	value := new(big.Int)
	mask := new(big.Int)
	bitWidth := 0
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		value.Lsh(value, uint(bitsPerDigit))
		mask.Lsh(mask, uint(bitsPerDigit))
		if c == wildcardChar {
			bitWidth += bitsPerDigit
			continue
		}
		d := digitValue(c)
		if d < 0 || d >= base {
			return IntegerPattern{}, fmt.Errorf("invalid digit %q for base %d", c, base)
		}
		value.Or(value, big.NewInt(int64(d)))
		digitMask := (int64(1) << uint(bitsPerDigit)) - 1
		mask.Or(mask, big.NewInt(digitMask))
		bitWidth += bitsPerDigit
	}
	var v, m BigInteger
	v.v.Set(value)
	m.v.Set(mask)
	return IntegerPattern{Value: v, Mask: m, BitWidth: bitWidth}, nil
}

func bitsPerDigitForBase(base int) int {
	switch base {
	case 2:
		return 1
	case 8:
		return 3
	case 16:
		return 4
	default:
		return 0
	}
}

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 0xA
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 0xA
	default:
		return -1
	}
}

// TrimDigitSeparators removes every '_' from s before ParseIntegerPattern is
// called. The lexer does not accept '_' inside a numeric literal, so lexed
// digits never contain one.
func TrimDigitSeparators(s string) string {
	return strings.ReplaceAll(s, "_", "")
}
