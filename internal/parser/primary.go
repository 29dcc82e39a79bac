package parser

import (
	"github.com/siliconvibe/hdlfx/internal/ast"
	"github.com/siliconvibe/hdlfx/internal/diagnostics"
	"github.com/siliconvibe/hdlfx/internal/token"
)

// parsePrimary parses the innermost expression forms: literals, scoped
// identifiers, parenthesized sub-expressions, list expressions, and the
// built-in pseudo-function forms (cast, fill, cat, popCount).
func (p *Parser) parsePrimary() (ast.Expression, error) {
	switch p.cur.Token.Type {
	case token.ColonColon:
		return p.parseScopedId()
	case token.Identifier:
		return p.parseScopedId()
	case token.LParen:
		return p.parseParenExpr()
	case token.LBrace:
		return p.parseListExpr()
	case token.KwCast:
		return p.parseCastExpr()
	case token.KwFill:
		return p.parseFillExpr()
	case token.KwCat:
		return p.parseCatExpr()
	case token.KwPopCount:
		return p.parsePopCountExpr()
	default:
		if isIntegerLiteralToken(p.cur.Token.Type) {
			lit, err := p.parseIntegerLiteral()
			if err != nil {
				return nil, err
			}
			if !lit.Value.IsConcrete() {
				if ferr := p.fail(diagnostics.PhaseSyntactic, diagnostics.ErrPatternNotExpr, lit.Loc); ferr != nil {
					return nil, ferr
				}
			}
			return lit, nil
		}
		t := p.cur.Token
		return nil, p.fail(diagnostics.PhaseSyntactic, diagnostics.ErrExpectedToken, t.Range, "an expression", t.Lexeme())
	}
}

func (p *Parser) parseParenExpr() (*ast.ParenExpr, error) {
	start := p.cur.Token.Range
	leading := p.cur.LeadingComments
	if _, err := p.expect(token.LParen, "'('"); err != nil {
		return nil, err
	}
	inner, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	closeTok, err := p.expect(token.RParen, "')'")
	if err != nil {
		return nil, err
	}
	return &ast.ParenExpr{
		NodeBase: ast.NodeBase{Loc: start.Join(closeTok.Range), LeadingComments: leading},
		Inner:    inner,
	}, nil
}

// parseListExpr parses `{ e1, e2, ... }`.
//
// REDESIGN: the element loop must continue only while both a comma was
// consumed AND a closing brace hasn't been reached — using `&&`, not `||`,
// to terminate (the repository's analogous loop used `||`, which never
// terminates on a well-formed list).
func (p *Parser) parseListExpr() (*ast.ListExpr, error) {
	start := p.cur.Token.Range
	leading := p.cur.LeadingComments
	if _, err := p.expect(token.LBrace, "'{'"); err != nil {
		return nil, err
	}
	list := &ast.ListExpr{NodeBase: ast.NodeBase{Loc: start, LeadingComments: leading}}
	sawComma := true
	for sawComma && !p.at(token.RBrace) {
		elem, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		list.Elements = append(list.Elements, elem)
		sawComma = p.at(token.Comma)
		if sawComma {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	closeTok, err := p.expect(token.RBrace, "'}'")
	if err != nil {
		return nil, err
	}
	list.Loc = list.Loc.Join(closeTok.Range)
	return list, nil
}

// parseCastExpr parses `cast!{T}(e)`.
func (p *Parser) parseCastExpr() (*ast.CastExpr, error) {
	start := p.cur.Token.Range
	leading := p.cur.LeadingComments
	if _, err := p.expect(token.KwCast, "'cast'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.EMark, "'!'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBrace, "'{'"); err != nil {
		return nil, err
	}
	typeExpr, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBrace, "'}'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LParen, "'('"); err != nil {
		return nil, err
	}
	value, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	closeTok, err := p.expect(token.RParen, "')'")
	if err != nil {
		return nil, err
	}
	return &ast.CastExpr{
		NodeBase: ast.NodeBase{Loc: start.Join(closeTok.Range), LeadingComments: leading},
		Typ:      typeExpr,
		Value:    value,
	}, nil
}

// parseFillExpr parses `fill(count, value)`.
func (p *Parser) parseFillExpr() (*ast.FillExpr, error) {
	start := p.cur.Token.Range
	leading := p.cur.LeadingComments
	if _, err := p.expect(token.KwFill, "'fill'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LParen, "'('"); err != nil {
		return nil, err
	}
	count, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Comma, "','"); err != nil {
		return nil, err
	}
	value, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	closeTok, err := p.expect(token.RParen, "')'")
	if err != nil {
		return nil, err
	}
	return &ast.FillExpr{
		NodeBase: ast.NodeBase{Loc: start.Join(closeTok.Range), LeadingComments: leading},
		Count:    count,
		Value:    value,
	}, nil
}

// parseCatExpr parses `cat(a, b, ...)`.
func (p *Parser) parseCatExpr() (*ast.CatExpr, error) {
	start := p.cur.Token.Range
	leading := p.cur.LeadingComments
	if _, err := p.expect(token.KwCat, "'cat'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LParen, "'('"); err != nil {
		return nil, err
	}
	cat := &ast.CatExpr{NodeBase: ast.NodeBase{Loc: start, LeadingComments: leading}}
	for !p.at(token.RParen) {
		arg, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		cat.Args = append(cat.Args, arg)
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
	cat.Loc = cat.Loc.Join(closeTok.Range)
	return cat, nil
}

// parsePopCountExpr parses `popCount(e)`.
func (p *Parser) parsePopCountExpr() (*ast.PopCountExpr, error) {
	start := p.cur.Token.Range
	leading := p.cur.LeadingComments
	if _, err := p.expect(token.KwPopCount, "'popCount'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LParen, "'('"); err != nil {
		return nil, err
	}
	value, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	closeTok, err := p.expect(token.RParen, "')'")
	if err != nil {
		return nil, err
	}
	return &ast.PopCountExpr{
		NodeBase: ast.NodeBase{Loc: start.Join(closeTok.Range), LeadingComments: leading},
		Value:    value,
	}, nil
}
