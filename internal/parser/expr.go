package parser

import (
	"github.com/siliconvibe/hdlfx/internal/arena"
	"github.com/siliconvibe/hdlfx/internal/ast"
	"github.com/siliconvibe/hdlfx/internal/diagnostics"
	"github.com/siliconvibe/hdlfx/internal/lexer"
	"github.com/siliconvibe/hdlfx/internal/symbols"
	"github.com/siliconvibe/hdlfx/internal/token"
)

// parseExpression is the entry point into the precedence cascade (spec
// §4.4's precedence table, tiers 1-14, lowest first).
func (p *Parser) parseExpression() (ast.Expression, error) {
	return p.parseAssignment()
}

// parseAssignment handles `=` and `<->` (connect), right-associative, the
// lowest-precedence tier.
func (p *Parser) parseAssignment() (ast.Expression, error) {
	left, err := p.parseTernary()
	if err != nil {
		return nil, err
	}
	if p.at(token.Equal) || p.at(token.LAngleMinusRAngle) {
		op := p.cur.Token.Type
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		return &ast.AssignExpr{
			NodeBase: ast.NodeBase{Loc: left.Range().Join(right.Range())},
			Op:       op,
			Left:     left,
			Right:    right,
		}, nil
	}
	return left, nil
}

// parseTernary handles `cond ? then : els`, right-associative.
func (p *Parser) parseTernary() (ast.Expression, error) {
	cond, err := p.parseLogicalOr()
	if err != nil {
		return nil, err
	}
	if !p.at(token.QMark) {
		return cond, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	then, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Colon, "':'"); err != nil {
		return nil, err
	}
	els, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	return &ast.TernaryExpr{
		NodeBase: ast.NodeBase{Loc: cond.Range().Join(els.Range())},
		Cond:     cond,
		Then:     then,
		Else:     els,
	}, nil
}

func (p *Parser) parseLogicalOr() (ast.Expression, error) {
	return p.parseLeftAssocBinary(token.VBarVBar, p.parseLogicalAnd)
}

func (p *Parser) parseLogicalAnd() (ast.Expression, error) {
	return p.parseLeftAssocBinary(token.AmpAmp, p.parseBitwiseOr)
}

func (p *Parser) parseBitwiseOr() (ast.Expression, error) {
	return p.parseLeftAssocBinary(token.VBar, p.parseBitwiseXor)
}

func (p *Parser) parseBitwiseXor() (ast.Expression, error) {
	return p.parseLeftAssocBinary(token.Caret, p.parseBitwiseAnd)
}

func (p *Parser) parseBitwiseAnd() (ast.Expression, error) {
	return p.parseLeftAssocBinary(token.Amp, p.parseEquality)
}

func (p *Parser) parseEquality() (ast.Expression, error) {
	return p.parseLeftAssocBinary2(token.EqualEqual, token.NotEqual, p.parseRelational)
}

func (p *Parser) parseRelational() (ast.Expression, error) {
	left, err := p.parseShift()
	if err != nil {
		return nil, err
	}
	for p.at(token.LAngle) || p.at(token.RAngle) || p.at(token.LAngleEqual) || p.at(token.RAngleEqual) {
		op := p.cur.Token.Type
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseShift()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{NodeBase: ast.NodeBase{Loc: left.Range().Join(right.Range())}, Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseShift() (ast.Expression, error) {
	return p.parseLeftAssocBinary2(token.LShift, token.RShift, p.parseAdditive)
}

func (p *Parser) parseAdditive() (ast.Expression, error) {
	return p.parseLeftAssocBinary2(token.Plus, token.Minus, p.parseMultiplicative)
}

func (p *Parser) parseMultiplicative() (ast.Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.at(token.Star) || p.at(token.FSlash) || p.at(token.Percent) {
		op := p.cur.Token.Type
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{NodeBase: ast.NodeBase{Loc: left.Range().Join(right.Range())}, Op: op, Left: left, Right: right}
	}
	return left, nil
}

// parseLeftAssocBinary folds a single-operator left-associative tier.
func (p *Parser) parseLeftAssocBinary(op token.TokenType, next func() (ast.Expression, error)) (ast.Expression, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}
	for p.at(op) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := next()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{NodeBase: ast.NodeBase{Loc: left.Range().Join(right.Range())}, Op: op, Left: left, Right: right}
	}
	return left, nil
}

// parseLeftAssocBinary2 folds a two-operator left-associative tier.
func (p *Parser) parseLeftAssocBinary2(opA, opB token.TokenType, next func() (ast.Expression, error)) (ast.Expression, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}
	for p.at(opA) || p.at(opB) {
		op := p.cur.Token.Type
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := next()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{NodeBase: ast.NodeBase{Loc: left.Range().Join(right.Range())}, Op: op, Left: left, Right: right}
	}
	return left, nil
}

// parseUnary handles the prefix operators `! ~ + - & | ^`.
func (p *Parser) parseUnary() (ast.Expression, error) {
	switch p.cur.Token.Type {
	case token.EMark, token.Tilde, token.Plus, token.Minus, token.Amp, token.VBar, token.Caret:
		op := p.cur.Token.Type
		start := p.cur.Token.Range
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{NodeBase: ast.NodeBase{Loc: start.Join(operand.Range())}, Op: op, Operand: operand}, nil
	default:
		return p.parsePostfix()
	}
}

// parsePostfix handles member access, indexing/slicing, and calls applied
// to a primary expression, left to right.
func (p *Parser) parsePostfix() (ast.Expression, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.cur.Token.Type {
		case token.Dot:
			if err := p.advance(); err != nil {
				return nil, err
			}
			memberTok, err := p.expect(token.Identifier, "a member name")
			if err != nil {
				return nil, err
			}
			expr = &ast.MemberExpr{
				NodeBase: ast.NodeBase{Loc: expr.Range().Join(memberTok.Range)},
				Target:   expr,
				Member:   memberTok.Lexeme(),
			}
		case token.LBracket:
			if err := p.advance(); err != nil {
				return nil, err
			}
			first, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			slice := &ast.SliceExpr{Target: expr}
			if p.at(token.KwTo) {
				if err := p.advance(); err != nil {
					return nil, err
				}
				high, err := p.parseExpression()
				if err != nil {
					return nil, err
				}
				slice.Low = first
				slice.High = high
			} else {
				slice.Index = first
			}
			closeTok, err := p.expect(token.RBracket, "']'")
			if err != nil {
				return nil, err
			}
			slice.Loc = expr.Range().Join(closeTok.Range)
			expr = slice
		case token.EMark, token.LParen:
			call, err := p.parseCallTail(expr)
			if err != nil {
				return nil, err
			}
			expr = call
		default:
			return expr, nil
		}
	}
}

// parseCallTail parses the optional `!{templateArgs}` followed by a
// required `(args)` applied to callee.
func (p *Parser) parseCallTail(callee ast.Expression) (*ast.CallExpr, error) {
	call := &ast.CallExpr{Callee: callee}
	if p.at(token.EMark) {
		args, err := p.parseTemplateArgs()
		if err != nil {
			return nil, err
		}
		call.TemplateArgs = args
	}
	if _, err := p.expect(token.LParen, "'('"); err != nil {
		return nil, err
	}
	for !p.at(token.RParen) {
		arg, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		call.Args = append(call.Args, arg)
		if p.at(token.Comma) {
			if err := p.advance(); err != nil {
				return nil, err
			}
		} else {
			break
		}
	}
	closeTok, err := p.expect(token.RParen, "')'")
	if err != nil {
		return nil, err
	}
	call.Loc = callee.Range().Join(closeTok.Range)
	return call, nil
}

// parseTemplateArgs parses `!{ arg, arg, ... }`, where each arg is either a
// `type T` form or a value expression (a decision of this front end:
// template arguments live only on a CallExpr, not per-segment on a scoped
// name).
func (p *Parser) parseTemplateArgs() ([]*ast.TemplateArg, error) {
	if _, err := p.expect(token.EMark, "'!'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBrace, "'{'"); err != nil {
		return nil, err
	}
	var args []*ast.TemplateArg
	for !p.at(token.RBrace) {
		start := p.cur.Token.Range
		arg := &ast.TemplateArg{NodeBase: ast.NodeBase{Loc: start}}
		if p.at(token.KwType) {
			if err := p.advance(); err != nil {
				return nil, err
			}
			typeExpr, err := p.parseType()
			if err != nil {
				return nil, err
			}
			arg.Typ = typeExpr
			arg.Loc = arg.Loc.Join(typeExpr.Range())
		} else {
			value, err := p.parseAssignment()
			if err != nil {
				return nil, err
			}
			arg.Value = value
			arg.Loc = arg.Loc.Join(value.Range())
		}
		args = append(args, arg)
		if p.at(token.Comma) {
			if err := p.advance(); err != nil {
				return nil, err
			}
		} else {
			break
		}
	}
	if _, err := p.expect(token.RBrace, "'}'"); err != nil {
		return nil, err
	}
	return args, nil
}

// isIntegerLiteralToken reports whether tt is one of the lexer's integer or
// integer-pattern token kinds.
func isIntegerLiteralToken(tt token.TokenType) bool {
	switch tt {
	case token.UnprefixedDecimalLiteralInteger, token.BinaryLiteralInteger,
		token.OctalLiteralInteger, token.DecimalLiteralInteger, token.HexadecimalLiteralInteger,
		token.BinaryLiteralIntegerPattern, token.OctalLiteralIntegerPattern, token.HexadecimalLiteralIntegerPattern:
		return true
	default:
		return false
	}
}

func (p *Parser) parseIntegerLiteral() (*ast.IntegerLiteralExpr, error) {
	t := p.cur.Token
	leading := p.cur.LeadingComments
	value, err := lexer.IntegerValue(t)
	if err != nil {
		if ferr := p.fail(diagnostics.PhaseLexical, diagnostics.ErrNumberMissingDigits, t.Range); ferr != nil {
			return nil, ferr
		}
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &ast.IntegerLiteralExpr{NodeBase: ast.NodeBase{Loc: t.Range, LeadingComments: leading}, Value: value}, nil
}

// parseScopedId parses a (possibly `::`-qualified) identifier reference and
// resolves it eagerly against the current lookup chain.
func (p *Parser) parseScopedId() (*ast.ScopedIdExpr, error) {
	start := p.cur.Token.Range
	leading := p.cur.LeadingComments
	global := false
	if p.at(token.ColonColon) {
		global = true
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	var names []string
	var interned []*arena.StringEntry
	nameTok, err := p.expect(token.Identifier, "an identifier")
	if err != nil {
		return nil, err
	}
	names = append(names, nameTok.Lexeme())
	interned = append(interned, p.intern(nameTok.Lexeme()))
	end := nameTok.Range
	for p.at(token.ColonColon) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		segTok, err := p.expect(token.Identifier, "an identifier")
		if err != nil {
			return nil, err
		}
		names = append(names, segTok.Lexeme())
		interned = append(interned, p.intern(segTok.Lexeme()))
		end = segTok.Range
	}

	expr := &ast.ScopedIdExpr{
		NodeBase: ast.NodeBase{Loc: start.Join(end), LeadingComments: leading},
		Global:   global,
		Names:    names,
	}
	sym, resolveErr := p.resolveScopedNameSymbol(global, interned)
	if resolveErr != nil {
		if ferr := p.fail(diagnostics.PhaseResolution, diagnostics.ErrNameNotFound, expr.Loc, names[len(names)-1]); ferr != nil {
			return nil, ferr
		}
	} else {
		expr.Resolved = sym
	}
	return expr, nil
}

// resolveScopedNameSymbol runs symbols.ResolveScopedName against the
// parser's current lookup chain and the context's global scope.
func (p *Parser) resolveScopedNameSymbol(global bool, names []*arena.StringEntry) (symbols.Symbol, error) {
	return symbols.ResolveScopedName(p.chain, p.ctx.Global, global, names)
}
