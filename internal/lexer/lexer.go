// Package lexer implements the hand-written, single-pass scanner that turns
// a source's bytes into a token stream, plus the comment-grouping wrapper
// that attaches leading comment runs to the token that follows them.
package lexer

import (
	"github.com/siliconvibe/hdlfx/internal/diagnostics"
	"github.com/siliconvibe/hdlfx/internal/source"
	"github.com/siliconvibe/hdlfx/internal/token"
)

const eof = -1

// Lexer is a deterministic, single-pass, byte-addressed scanner over one
// Source. It holds no lookahead buffer of its own; NextToken always starts
// from the current offset.
type Lexer struct {
	src    *source.Source
	text   string
	offset int
}

// New returns a Lexer positioned at the start of src.
func New(src *source.Source) *Lexer {
	return &Lexer{src: src, text: src.Text()}
}

func (l *Lexer) atEnd() bool { return l.offset >= len(l.text) }

func (l *Lexer) peek() int {
	if l.atEnd() {
		return eof
	}
	return int(l.text[l.offset])
}

func (l *Lexer) peekAt(ahead int) int {
	if l.offset+ahead >= len(l.text) {
		return eof
	}
	return int(l.text[l.offset+ahead])
}

func (l *Lexer) get() int {
	if l.atEnd() {
		return eof
	}
	c := int(l.text[l.offset])
	l.offset++
	return c
}

func (l *Lexer) loc() source.Location { return source.Location{Src: l.src, Offset: l.offset} }

func (l *Lexer) rangeFrom(start source.Location) source.LocationRange {
	return source.NewLocationRange(start, l.loc())
}

func isWhitespace(c int) bool {
	switch c {
	case ' ', '\t', '\r', '\n':
		return true
	default:
		return false
	}
}

func isLineCommentTerminator(c int) bool {
	switch c {
	case eof, '\r', '\n':
		return true
	default:
		return false
	}
}

func isDigit(c int) bool { return c >= '0' && c <= '9' }
func isUpper(c int) bool { return c >= 'A' && c <= 'Z' }
func isLower(c int) bool { return c >= 'a' && c <= 'z' }

func isIdentifierStart(c int) bool {
	return c >= 0x80 || isLower(c) || isUpper(c) || c == '_'
}

func isIdentifierContinue(c int) bool {
	return isIdentifierStart(c) || isDigit(c)
}

func digitValue(c int) int {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'z':
		return c - 'a' + 0xA
	case c >= 'A' && c <= 'Z':
		return c - 'A' + 0xA
	default:
		return -1
	}
}

func digitValueInBase(c, base int) int {
	v := digitValue(c)
	if v >= base {
		return -1
	}
	return v
}

// NextToken scans and returns the next token, skipping whitespace and
// comments... except comments are themselves tokens (LineComment,
// BlockComment); it is the comment-grouping layer above that skips them
// for callers that want only substantive tokens.
func (l *Lexer) NextToken() (token.Token, error) {
	for isWhitespace(l.peek()) {
		l.get()
	}
	if l.atEnd() {
		start := l.loc()
		return token.Token{Type: token.EOF, Range: l.rangeFrom(start)}, nil
	}
	start := l.loc()
	c := l.peek()

	if c == '/' {
		if t, ok, err := l.lexComment(start); ok || err != nil {
			return t, err
		}
	}
	if isIdentifierStart(c) {
		return l.lexIdentifierOrKeyword(start), nil
	}
	if isDigit(c) {
		return l.lexNumber(start)
	}
	return l.lexPunctuation(start)
}

func (l *Lexer) lexComment(start source.Location) (token.Token, bool, error) {
	if l.peekAt(1) == '/' {
		l.get()
		l.get()
		for !isLineCommentTerminator(l.peek()) {
			l.get()
		}
		return token.Token{Type: token.LineComment, Range: l.rangeFrom(start)}, true, nil
	}
	if l.peekAt(1) == '*' {
		l.get()
		l.get()
		for {
			if l.atEnd() {
				return token.Token{}, true, diagnostics.New(diagnostics.PhaseLexical,
					diagnostics.ErrUnterminatedBlockComment, l.rangeFrom(start))
			}
			if l.get() == '*' && l.peek() == '/' {
				l.get()
				return token.Token{Type: token.BlockComment, Range: l.rangeFrom(start)}, true, nil
			}
		}
	}
	return token.Token{}, false, nil
}

func (l *Lexer) lexIdentifierOrKeyword(start source.Location) token.Token {
	for isIdentifierContinue(l.peek()) {
		l.get()
	}
	r := l.rangeFrom(start)
	typ := token.Identifier
	if kw, ok := token.Keywords[r.Text()]; ok {
		typ = kw
	}
	return token.Token{Type: typ, Range: r}
}

const wildcardChar = '?'

func (l *Lexer) lexNumber(start source.Location) (token.Token, error) {
	typ := token.UnprefixedDecimalLiteralInteger
	var patternType token.TokenType
	hasDigits := true
	base := 10
	patternAllowed := false
	isPattern := false

	if l.peek() == '0' {
		l.get()
		switch l.peek() {
		case 'b', 'B':
			hasDigits, base, patternAllowed = false, 2, true
			typ, patternType = token.BinaryLiteralInteger, token.BinaryLiteralIntegerPattern
			l.get()
		case 'h', 'H', 'x', 'X':
			hasDigits, base, patternAllowed = false, 16, true
			typ, patternType = token.HexadecimalLiteralInteger, token.HexadecimalLiteralIntegerPattern
			l.get()
		case 'o', 'O':
			hasDigits, base, patternAllowed = false, 8, true
			typ, patternType = token.OctalLiteralInteger, token.OctalLiteralIntegerPattern
			l.get()
		case 'd', 'D':
			hasDigits, base = false, 10
			typ = token.DecimalLiteralInteger
			l.get()
		default:
			if isDigit(l.peek()) {
				return token.Token{}, diagnostics.New(diagnostics.PhaseLexical,
					diagnostics.ErrLeadingZero, l.rangeFrom(start))
			}
			return token.Token{Type: typ, Range: l.rangeFrom(start)}, nil
		}
	}

	for digitValueInBase(l.peek(), base) >= 0 || l.peek() == wildcardChar {
		if l.get() == wildcardChar {
			if !patternAllowed {
				return token.Token{}, diagnostics.New(diagnostics.PhaseLexical,
					diagnostics.ErrWildcardInDecimal, l.rangeFrom(start))
			}
			isPattern = true
		}
		hasDigits = true
	}
	if d := digitValue(l.peek()); d >= 0 && d >= base {
		return token.Token{}, diagnostics.New(diagnostics.PhaseLexical,
			diagnostics.ErrDigitTooLarge, l.rangeFrom(start))
	}
	if !hasDigits {
		return token.Token{}, diagnostics.New(diagnostics.PhaseLexical,
			diagnostics.ErrNumberMissingDigits, l.rangeFrom(start))
	}
	if isPattern {
		typ = patternType
	}
	return token.Token{Type: typ, Range: l.rangeFrom(start)}, nil
}

func (l *Lexer) lexPunctuation(start source.Location) (token.Token, error) {
	c := l.get()
	single := func(t token.TokenType) (token.Token, error) {
		return token.Token{Type: t, Range: l.rangeFrom(start)}, nil
	}
	switch c {
	case '{':
		return single(token.LBrace)
	case '}':
		return single(token.RBrace)
	case '[':
		return single(token.LBracket)
	case ']':
		return single(token.RBracket)
	case '(':
		return single(token.LParen)
	case ')':
		return single(token.RParen)
	case ',':
		return single(token.Comma)
	case '/':
		return single(token.FSlash)
	case ':':
		if l.peek() == ':' {
			l.get()
			return single(token.ColonColon)
		}
		return single(token.Colon)
	case ';':
		return single(token.Semicolon)
	case '~':
		return single(token.Tilde)
	case '!':
		if l.peek() == '=' {
			l.get()
			return single(token.NotEqual)
		}
		return single(token.EMark)
	case '%':
		return single(token.Percent)
	case '^':
		return single(token.Caret)
	case '&':
		if l.peek() == '&' {
			l.get()
			return single(token.AmpAmp)
		}
		return single(token.Amp)
	case '*':
		return single(token.Star)
	case '-':
		return single(token.Minus)
	case '=':
		switch l.peek() {
		case '>':
			l.get()
			return single(token.EqualRAngle)
		case '=':
			l.get()
			return single(token.EqualEqual)
		}
		return single(token.Equal)
	case '+':
		return single(token.Plus)
	case '|':
		if l.peek() == '|' {
			l.get()
			return single(token.VBarVBar)
		}
		return single(token.VBar)
	case '.':
		if l.peek() == '.' {
			afterFirstDot := l.offset
			l.get()
			if l.peek() == '.' {
				l.get()
				return single(token.DotDotDot)
			}
			l.offset = afterFirstDot
		}
		return single(token.Dot)
	case '<':
		switch l.peek() {
		case '-':
			if l.peekAt(1) == '>' {
				l.get()
				l.get()
				return single(token.LAngleMinusRAngle)
			}
		case '<':
			l.get()
			return single(token.LShift)
		case '=':
			l.get()
			return single(token.LAngleEqual)
		}
		return single(token.LAngle)
	case '>':
		switch l.peek() {
		case '>':
			l.get()
			return single(token.RShift)
		case '=':
			l.get()
			return single(token.RAngleEqual)
		}
		return single(token.RAngle)
	case '?':
		return single(token.QMark)
	}
	return token.Token{}, diagnostics.New(diagnostics.PhaseLexical,
		diagnostics.ErrIllegalCharacter, l.rangeFrom(start), rune(c))
}
