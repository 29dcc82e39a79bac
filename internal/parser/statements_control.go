package parser

import (
	"github.com/siliconvibe/hdlfx/internal/ast"
	"github.com/siliconvibe/hdlfx/internal/symbols"
	"github.com/siliconvibe/hdlfx/internal/token"
)

func (p *Parser) parseIfStatement() (*ast.IfStatement, error) {
	start := p.cur.Token.Range
	leading := p.cur.LeadingComments
	if _, err := p.expect(token.KwIf, "'if'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LParen, "'('"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RParen, "')'"); err != nil {
		return nil, err
	}
	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	stmt := &ast.IfStatement{
		NodeBase: ast.NodeBase{Loc: start.Join(then.Range()), LeadingComments: leading},
		Cond:     cond,
		Then:     then,
	}
	if p.at(token.KwElse) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		els, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmt.Else = els
		stmt.Loc = stmt.Loc.Join(els.Range())
	}
	return stmt, nil
}

// parseForStatement parses the two loop forms: `for v in lo to hi { ... }`
// (numeric) and `for v in T1, T2, ... { ... }` (type iteration), sharing a
// single loop-scope containing only the bound variable.
func (p *Parser) parseForStatement() (*ast.ForStatement, error) {
	start := p.cur.Token.Range
	leading := p.cur.LeadingComments
	if _, err := p.expect(token.KwFor, "'for'"); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.Identifier, "a loop variable name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.KwIn, "'in'"); err != nil {
		return nil, err
	}

	stmt := &ast.ForStatement{NodeBase: ast.NodeBase{Loc: start, LeadingComments: leading}}
	stmt.OwnScope = symbols.NewSymbolTable()
	stmt.EnclosingChain = p.chain

	loopVar := &ast.ForStatementVariable{
		DeclBase: ast.DeclBase{
			NodeBase: ast.NodeBase{Loc: nameTok.Range},
			Name:     p.intern(nameTok.Lexeme()),
		},
		Enclosing: stmt,
	}
	stmt.Variable = loopVar

	// Disambiguate: a type expression never begins the numeric-range form,
	// and the numeric form's low bound is an ordinary expression followed
	// by the `to` keyword.
	if isTypeIterationStart(p.cur.Token.Type) && !p.peekAt(token.KwTo) {
		stmt.Kind = ast.ForTypeIteration
		for {
			typeExpr, err := p.parseType()
			if err != nil {
				return nil, err
			}
			stmt.Types = append(stmt.Types, typeExpr)
			if p.at(token.Comma) {
				if err := p.advance(); err != nil {
					return nil, err
				}
				continue
			}
			break
		}
	} else {
		stmt.Kind = ast.ForNumeric
		low, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.KwTo, "'to'"); err != nil {
			return nil, err
		}
		high, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt.Low = low
		stmt.High = high
	}

	savedScope, savedChain := p.enterScope(stmt.OwnScope)
	if err := p.declareInto(stmt.OwnScope, loopVar, nameTok.Lexeme(), nameTok.Range); err != nil {
		p.exitScope(savedScope, savedChain)
		return nil, err
	}
	body, closeRange, err := p.parseBraceBody()
	p.exitScope(savedScope, savedChain)
	if err != nil {
		return nil, err
	}
	stmt.Body = body
	stmt.Loc = stmt.Loc.Join(closeRange)
	return stmt, nil
}

// isTypeIterationStart reports whether tt can begin a type expression, used
// to disambiguate a for-loop's iterable from its numeric low bound.
func isTypeIterationStart(tt token.TokenType) bool {
	switch tt {
	case token.KwFlip, token.KwUint, token.KwSint,
		token.KwMemory, token.KwFunction, token.KwTypeOf,
		token.KwBit, token.KwU8, token.KwU16, token.KwU32, token.KwU64,
		token.KwS8, token.KwS16, token.KwS32, token.KwS64:
		return true
	default:
		return false
	}
}

// parseMatchStatement parses `match (subject) { pattern => body ... }`.
func (p *Parser) parseMatchStatement() (*ast.MatchStatement, error) {
	start := p.cur.Token.Range
	leading := p.cur.LeadingComments
	if _, err := p.expect(token.KwMatch, "'match'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LParen, "'('"); err != nil {
		return nil, err
	}
	subject, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RParen, "')'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBrace, "'{'"); err != nil {
		return nil, err
	}
	stmt := &ast.MatchStatement{NodeBase: ast.NodeBase{Loc: start, LeadingComments: leading}, Subject: subject}
	for !p.at(token.RBrace) {
		part, err := p.parseMatchPart()
		if err != nil {
			return nil, err
		}
		stmt.Parts = append(stmt.Parts, part)
		if p.at(token.Comma) {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	closeTok, err := p.expect(token.RBrace, "'}'")
	if err != nil {
		return nil, err
	}
	stmt.Loc = stmt.Loc.Join(closeTok.Range)
	return stmt, nil
}

// parseMatchPart parses one `pattern => body` arm, with its body in its own
// scope so pattern-bound names (e.g. an enum payload binding) don't leak.
func (p *Parser) parseMatchPart() (*ast.MatchPart, error) {
	start := p.cur.Token.Range
	leading := p.cur.LeadingComments
	part := &ast.MatchPart{NodeBase: ast.NodeBase{Loc: start, LeadingComments: leading}}
	part.OwnScope = symbols.NewSymbolTable()
	part.EnclosingChain = p.chain

	savedScope, savedChain := p.enterScope(part.OwnScope)
	pat, err := p.parseMatchPattern()
	if err != nil {
		p.exitScope(savedScope, savedChain)
		return nil, err
	}
	part.Pat = pat
	if _, err := p.expect(token.EqualRAngle, "'=>'"); err != nil {
		p.exitScope(savedScope, savedChain)
		return nil, err
	}
	if p.at(token.LBrace) {
		body, closeRange, err := p.parseBraceBody()
		p.exitScope(savedScope, savedChain)
		if err != nil {
			return nil, err
		}
		part.Body = body
		part.Loc = part.Loc.Join(closeRange)
		return part, nil
	}
	stmt, err := p.parseStatement()
	p.exitScope(savedScope, savedChain)
	if err != nil {
		return nil, err
	}
	part.Body = []ast.Statement{stmt}
	part.Loc = part.Loc.Join(stmt.Range())
	return part, nil
}

// parseMatchPattern parses a single match arm's pattern: either an integer
// pattern literal (possibly wildcarded) or a scoped enum-member reference,
// optionally binding a payload name in parentheses.
func (p *Parser) parseMatchPattern() (ast.Pattern, error) {
	if isIntegerLiteralToken(p.cur.Token.Type) {
		return p.parseIntegerLiteral()
	}
	id, err := p.parseScopedId()
	if err != nil {
		return nil, err
	}
	if p.at(token.LParen) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		bindTok, err := p.expect(token.Identifier, "a binding name")
		if err != nil {
			return nil, err
		}
		bind := &ast.VariableDecl{
			DeclBase: ast.DeclBase{
				NodeBase: ast.NodeBase{Loc: bindTok.Range},
				Name:     p.intern(bindTok.Lexeme()),
			},
		}
		if err := p.declare(bind, bindTok.Lexeme(), bindTok.Range); err != nil {
			return nil, err
		}
		closeTok, err := p.expect(token.RParen, "')'")
		if err != nil {
			return nil, err
		}
		id.Loc = id.Loc.Join(closeTok.Range)
	}
	return id, nil
}
