package parser

import (
	"github.com/siliconvibe/hdlfx/internal/ast"
	"github.com/siliconvibe/hdlfx/internal/symbols"
	"github.com/siliconvibe/hdlfx/internal/token"
	"github.com/siliconvibe/hdlfx/internal/types"
)

// parseFunction parses `function name!{params}(args): result { body }`.
func (p *Parser) parseFunction() (*ast.Function, error) {
	start := p.cur.Token.Range
	leading := p.cur.LeadingComments
	if _, err := p.expect(token.KwFunction, "'function'"); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.Identifier, "a function name")
	if err != nil {
		return nil, err
	}

	fn := &ast.Function{
		DeclBase: ast.DeclBase{
			NodeBase: ast.NodeBase{Loc: start, LeadingComments: leading},
			Name:     p.intern(nameTok.Lexeme()),
		},
	}
	if err := p.declare(fn, nameTok.Lexeme(), nameTok.Range); err != nil {
		return nil, err
	}
	p.pushEnclosingName(nameTok.Lexeme())
	defer p.popEnclosingName()

	ownScope := symbols.NewSymbolTable()
	fn.OwnScope = ownScope
	fn.EnclosingChain = p.chain

	if p.at(token.EMark) {
		params, err := p.parseTemplateParameters(ownScope)
		if err != nil {
			return nil, err
		}
		fn.TemplateParams = params
	}

	savedScope, savedChain := p.enterScope(ownScope)

	if _, err := p.expect(token.LParen, "'('"); err != nil {
		p.exitScope(savedScope, savedChain)
		return nil, err
	}
	for !p.at(token.RParen) {
		param, err := p.parseFunctionParameter()
		if err != nil {
			p.exitScope(savedScope, savedChain)
			return nil, err
		}
		fn.Params = append(fn.Params, param)
		if p.at(token.Comma) {
			if err := p.advance(); err != nil {
				p.exitScope(savedScope, savedChain)
				return nil, err
			}
		} else {
			break
		}
	}
	if _, err := p.expect(token.RParen, "')'"); err != nil {
		p.exitScope(savedScope, savedChain)
		return nil, err
	}

	if p.at(token.Colon) {
		if err := p.advance(); err != nil {
			p.exitScope(savedScope, savedChain)
			return nil, err
		}
		resultType, err := p.parseType()
		if err != nil {
			p.exitScope(savedScope, savedChain)
			return nil, err
		}
		fn.ResultType = resultType
	}

	body, closeRange, err := p.parseBraceBody()
	p.exitScope(savedScope, savedChain)
	if err != nil {
		return nil, err
	}
	fn.Body = body
	fn.Loc = fn.Loc.Join(closeRange)
	return fn, nil
}

// parseFunctionParameter parses one `name: Type` entry of a function's
// parameter list, declaring it into the function's own scope (already the
// current scope at the call site).
func (p *Parser) parseFunctionParameter() (*ast.VariableDecl, error) {
	start := p.cur.Token.Range
	leading := p.cur.LeadingComments
	nameTok, err := p.expect(token.Identifier, "a parameter name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Colon, "':'"); err != nil {
		return nil, err
	}
	typeExpr, err := p.parseType()
	if err != nil {
		return nil, err
	}
	decl := &ast.VariableDecl{
		DeclBase: ast.DeclBase{
			NodeBase: ast.NodeBase{Loc: start.Join(typeExpr.Range()), LeadingComments: leading},
			Name:     p.intern(nameTok.Lexeme()),
		},
		Typ: typeExpr,
	}
	if err := p.declare(decl, nameTok.Lexeme(), nameTok.Range); err != nil {
		return nil, err
	}
	return decl, nil
}

// parseEnum parses `enum Name { Part, Part(Type), ... }`, materializing the
// types.EnumType alongside the declaration once every part is known.
func (p *Parser) parseEnum() (*ast.Enum, error) {
	start := p.cur.Token.Range
	leading := p.cur.LeadingComments
	if _, err := p.expect(token.KwEnum, "'enum'"); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.Identifier, "an enum name")
	if err != nil {
		return nil, err
	}

	en := &ast.Enum{
		DeclBase: ast.DeclBase{
			NodeBase: ast.NodeBase{Loc: start, LeadingComments: leading},
			Name:     p.intern(nameTok.Lexeme()),
		},
	}
	if err := p.declare(en, nameTok.Lexeme(), nameTok.Range); err != nil {
		return nil, err
	}
	p.pushEnclosingName(nameTok.Lexeme())
	defer p.popEnclosingName()

	ownScope := symbols.NewSymbolTable()
	en.OwnScope = ownScope
	en.EnclosingChain = p.chain

	savedScope, savedChain := p.enterScope(ownScope)
	if _, err := p.expect(token.LBrace, "'{'"); err != nil {
		p.exitScope(savedScope, savedChain)
		return nil, err
	}

	var members []types.EnumMember
	for !p.at(token.RBrace) {
		part, member, err := p.parseEnumPart(en)
		if err != nil {
			p.exitScope(savedScope, savedChain)
			return nil, err
		}
		en.Parts = append(en.Parts, part)
		members = append(members, member)
		if p.at(token.Comma) {
			if err := p.advance(); err != nil {
				p.exitScope(savedScope, savedChain)
				return nil, err
			}
		} else {
			break
		}
	}
	closeTok, err := p.expect(token.RBrace, "'}'")
	p.exitScope(savedScope, savedChain)
	if err != nil {
		return nil, err
	}
	en.Resolved = &types.EnumType{Name: nameTok.Lexeme(), Members: members}
	en.Loc = en.Loc.Join(closeTok.Range)
	return en, nil
}

// parseEnumPart parses one `Name` or `Name(Type)` enum member.
func (p *Parser) parseEnumPart(owner *ast.Enum) (*ast.EnumPart, types.EnumMember, error) {
	start := p.cur.Token.Range
	leading := p.cur.LeadingComments
	nameTok, err := p.expect(token.Identifier, "an enum member name")
	if err != nil {
		return nil, types.EnumMember{}, err
	}
	part := &ast.EnumPart{
		DeclBase: ast.DeclBase{
			NodeBase: ast.NodeBase{Loc: start, LeadingComments: leading},
			Name:     p.intern(nameTok.Lexeme()),
		},
		Enum: owner,
	}
	member := types.EnumMember{Name: nameTok.Lexeme()}
	if p.at(token.LParen) {
		if err := p.advance(); err != nil {
			return nil, types.EnumMember{}, err
		}
		payload, err := p.parseType()
		if err != nil {
			return nil, types.EnumMember{}, err
		}
		closeTok, err := p.expect(token.RParen, "')'")
		if err != nil {
			return nil, types.EnumMember{}, err
		}
		part.Payload = payload
		part.Loc = part.Loc.Join(closeTok.Range)
		member.Payload = payload.ResolvedType()
	}
	if err := p.declare(part, nameTok.Lexeme(), nameTok.Range); err != nil {
		return nil, types.EnumMember{}, err
	}
	return part, member, nil
}

// parseBundle parses `bundle Name { member: Type; ... }`, materializing the
// paired types.Bundle/FlippedBundle twin (spec §4.5 flip distribution).
func (p *Parser) parseBundle() (*ast.Bundle, error) {
	start := p.cur.Token.Range
	leading := p.cur.LeadingComments
	if _, err := p.expect(token.KwBundle, "'bundle'"); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.Identifier, "a bundle name")
	if err != nil {
		return nil, err
	}

	bundle := &ast.Bundle{
		DeclBase: ast.DeclBase{
			NodeBase: ast.NodeBase{Loc: start, LeadingComments: leading},
			Name:     p.intern(nameTok.Lexeme()),
		},
	}
	if err := p.declare(bundle, nameTok.Lexeme(), nameTok.Range); err != nil {
		return nil, err
	}
	p.pushEnclosingName(nameTok.Lexeme())
	defer p.popEnclosingName()

	ownScope := symbols.NewSymbolTable()
	bundle.OwnScope = ownScope
	bundle.EnclosingChain = p.chain

	resolved := types.NewBundlePair(p.ctx.Arena, nameTok.Lexeme())
	bundle.Resolved = resolved

	savedScope, savedChain := p.enterScope(ownScope)
	if _, err := p.expect(token.LBrace, "'{'"); err != nil {
		p.exitScope(savedScope, savedChain)
		return nil, err
	}

	var vars []types.Variable
	for !p.at(token.RBrace) {
		member, err := p.parseBundleMember()
		if err != nil {
			p.exitScope(savedScope, savedChain)
			return nil, err
		}
		bundle.Members = append(bundle.Members, member)
		vars = append(vars, types.Variable{Name: member.Name.String(), Typ: member.Typ.ResolvedType()})
	}
	closeTok, err := p.expect(token.RBrace, "'}'")
	p.exitScope(savedScope, savedChain)
	if err != nil {
		return nil, err
	}
	resolved.Define(vars)
	bundle.Loc = bundle.Loc.Join(closeTok.Range)
	return bundle, nil
}

// parseBundleMember parses one `name: Type;` entry inside a bundle body.
func (p *Parser) parseBundleMember() (*ast.BundleMember, error) {
	start := p.cur.Token.Range
	leading := p.cur.LeadingComments
	nameTok, err := p.expect(token.Identifier, "a bundle member name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Colon, "':'"); err != nil {
		return nil, err
	}
	typeExpr, err := p.parseType()
	if err != nil {
		return nil, err
	}
	semiTok, err := p.expect(token.Semicolon, "';'")
	if err != nil {
		return nil, err
	}
	member := &ast.BundleMember{
		DeclBase: ast.DeclBase{
			NodeBase: ast.NodeBase{Loc: start.Join(semiTok.Range), LeadingComments: leading},
			Name:     p.intern(nameTok.Lexeme()),
		},
		Typ: typeExpr,
	}
	if err := p.declare(member, nameTok.Lexeme(), nameTok.Range); err != nil {
		return nil, err
	}
	return member, nil
}
