package parser

import (
	"github.com/siliconvibe/hdlfx/internal/ast"
	"github.com/siliconvibe/hdlfx/internal/diagnostics"
	"github.com/siliconvibe/hdlfx/internal/token"
)

// parseStatement dispatches on the current token to the production for one
// statement, matching the full statement grammar a module/interface/function
// body or block may contain.
func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.cur.Token.Type {
	case token.Semicolon:
		return p.parseEmptyStatement()
	case token.LBrace:
		return p.parseBlockStatement()
	case token.KwIf:
		return p.parseIfStatement()
	case token.KwFor:
		return p.parseForStatement()
	case token.KwMatch:
		return p.parseMatchStatement()
	case token.KwReturn:
		return p.parseReturnStatement()
	case token.KwBreak:
		return p.parseBreakStatement()
	case token.KwContinue:
		return p.parseContinueStatement()
	case token.KwConst, token.KwLet, token.KwInput, token.KwOutput, token.KwReg:
		return p.parseVariableDeclGroup()
	case token.KwType:
		return p.parseTypeAliasStatement()
	case token.KwModule:
		return p.parseModule()
	case token.KwInterface:
		return p.parseInterface()
	case token.KwFunction:
		return p.parseFunction()
	case token.KwEnum:
		return p.parseEnum()
	case token.KwBundle:
		return p.parseBundle()
	case token.KwImport:
		return p.parseImport()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseEmptyStatement() (*ast.EmptyStatement, error) {
	t := p.cur.Token
	leading := p.cur.LeadingComments
	if _, err := p.expect(token.Semicolon, "';'"); err != nil {
		return nil, err
	}
	return &ast.EmptyStatement{NodeBase: ast.NodeBase{Loc: t.Range, LeadingComments: leading}}, nil
}

func (p *Parser) parseBlockStatement() (*ast.BlockStatement, error) {
	start := p.cur.Token.Range
	leading := p.cur.LeadingComments
	blk := &ast.BlockStatement{NodeBase: ast.NodeBase{Loc: start, LeadingComments: leading}}
	blk.OwnScope = newBlockScope()
	blk.EnclosingChain = p.chain

	savedScope, savedChain := p.enterScope(blk.OwnScope)
	body, closeRange, err := p.parseBraceBody()
	p.exitScope(savedScope, savedChain)
	if err != nil {
		return nil, err
	}
	blk.Body = body
	blk.Loc = blk.Loc.Join(closeRange)
	return blk, nil
}

func (p *Parser) parseExpressionStatement() (*ast.ExpressionStatement, error) {
	start := p.cur.Token.Range
	leading := p.cur.LeadingComments
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	semiTok, err := p.expect(token.Semicolon, "';'")
	if err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{
		NodeBase: ast.NodeBase{Loc: start.Join(semiTok.Range), LeadingComments: leading},
		Expr:     expr,
	}, nil
}

func (p *Parser) parseReturnStatement() (*ast.ReturnStatement, error) {
	start := p.cur.Token.Range
	leading := p.cur.LeadingComments
	if _, err := p.expect(token.KwReturn, "'return'"); err != nil {
		return nil, err
	}
	ret := &ast.ReturnStatement{NodeBase: ast.NodeBase{Loc: start, LeadingComments: leading}}
	if !p.at(token.Semicolon) {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		ret.Value = expr
	}
	semiTok, err := p.expect(token.Semicolon, "';'")
	if err != nil {
		return nil, err
	}
	ret.Loc = ret.Loc.Join(semiTok.Range)
	return ret, nil
}

func (p *Parser) parseBreakStatement() (*ast.BreakStatement, error) {
	start := p.cur.Token.Range
	leading := p.cur.LeadingComments
	if _, err := p.expect(token.KwBreak, "'break'"); err != nil {
		return nil, err
	}
	semiTok, err := p.expect(token.Semicolon, "';'")
	if err != nil {
		return nil, err
	}
	return &ast.BreakStatement{NodeBase: ast.NodeBase{Loc: start.Join(semiTok.Range), LeadingComments: leading}}, nil
}

func (p *Parser) parseContinueStatement() (*ast.ContinueStatement, error) {
	start := p.cur.Token.Range
	leading := p.cur.LeadingComments
	if _, err := p.expect(token.KwContinue, "'continue'"); err != nil {
		return nil, err
	}
	semiTok, err := p.expect(token.Semicolon, "';'")
	if err != nil {
		return nil, err
	}
	return &ast.ContinueStatement{NodeBase: ast.NodeBase{Loc: start.Join(semiTok.Range), LeadingComments: leading}}, nil
}

// parseVariableDeclGroup parses `(const|let|input|output|reg) decl, decl, ...;`.
func (p *Parser) parseVariableDeclGroup() (*ast.VariableDeclGroup, error) {
	start := p.cur.Token.Range
	leading := p.cur.LeadingComments
	kind, err := p.variableDeclKind()
	if err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	group := &ast.VariableDeclGroup{NodeBase: ast.NodeBase{Loc: start, LeadingComments: leading}, Kind: kind}
	for {
		decl, err := p.parseVariableDecl(kind)
		if err != nil {
			return nil, err
		}
		group.Decls = append(group.Decls, decl)
		if p.at(token.Comma) {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	semiTok, err := p.expect(token.Semicolon, "';'")
	if err != nil {
		return nil, err
	}
	group.Loc = group.Loc.Join(semiTok.Range)
	return group, nil
}

func (p *Parser) variableDeclKind() (ast.VariableDeclKind, error) {
	switch p.cur.Token.Type {
	case token.KwConst:
		return ast.DeclConst, nil
	case token.KwLet:
		return ast.DeclLet, nil
	case token.KwInput:
		return ast.DeclInput, nil
	case token.KwOutput:
		return ast.DeclOutput, nil
	case token.KwReg:
		return ast.DeclReg, nil
	default:
		t := p.cur.Token
		return 0, p.fail(diagnostics.PhaseSyntactic, diagnostics.ErrExpectedToken, t.Range, "a declaration keyword", t.Lexeme())
	}
}

// parseVariableDecl parses one `name[: Type][ = initializer]` binding and
// declares it into the current scope. When kind is input/output/reg, the
// declared type's direction is stamped to match (spec §4.5: "input T,
// output T, reg T produce a bit-vector type of the stated direction").
func (p *Parser) parseVariableDecl(kind ast.VariableDeclKind) (*ast.VariableDecl, error) {
	start := p.cur.Token.Range
	leading := p.cur.LeadingComments
	nameTok, err := p.expect(token.Identifier, "a variable name")
	if err != nil {
		return nil, err
	}
	decl := &ast.VariableDecl{
		DeclBase: ast.DeclBase{
			NodeBase: ast.NodeBase{Loc: start, LeadingComments: leading},
			Name:     p.intern(nameTok.Lexeme()),
		},
	}
	if p.at(token.Colon) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		typeExpr, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if dir, ok := directionFor(kind); ok {
			typeExpr = p.stampDirection(typeExpr, dir)
		}
		decl.Typ = typeExpr
		decl.Loc = decl.Loc.Join(typeExpr.Range())
	}
	if p.at(token.Equal) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		init, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		decl.Initializer = init
		decl.Loc = decl.Loc.Join(init.Range())
	}
	if err := p.declare(decl, nameTok.Lexeme(), nameTok.Range); err != nil {
		return nil, err
	}
	return decl, nil
}

// parseTypeAliasStatement parses `type Name = Target;`.
func (p *Parser) parseTypeAliasStatement() (*ast.TypeAliasStatement, error) {
	start := p.cur.Token.Range
	leading := p.cur.LeadingComments
	if _, err := p.expect(token.KwType, "'type'"); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.Identifier, "a type alias name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Equal, "'='"); err != nil {
		return nil, err
	}
	target, err := p.parseType()
	if err != nil {
		return nil, err
	}
	semiTok, err := p.expect(token.Semicolon, "';'")
	if err != nil {
		return nil, err
	}
	alias := &ast.TypeAliasStatement{
		DeclBase: ast.DeclBase{
			NodeBase: ast.NodeBase{Loc: start.Join(semiTok.Range), LeadingComments: leading},
			Name:     p.intern(nameTok.Lexeme()),
		},
		Target: target,
	}
	if err := p.declare(alias, nameTok.Lexeme(), nameTok.Range); err != nil {
		return nil, err
	}
	return alias, nil
}
