package parser

import (
	"github.com/siliconvibe/hdlfx/internal/arena"
	"github.com/siliconvibe/hdlfx/internal/ast"
	"github.com/siliconvibe/hdlfx/internal/bignum"
	"github.com/siliconvibe/hdlfx/internal/diagnostics"
	"github.com/siliconvibe/hdlfx/internal/token"
	"github.com/siliconvibe/hdlfx/internal/types"
)

// builtinKeywordKinds maps a builtin-alias keyword token directly to the
// (kind, bitWidth) it names, grounded on the dedicated per-alias AST node
// types the tokenizer-driven grammar uses for these reserved words (they
// are keywords, not identifiers, so they never reach scoped-name lookup).
var builtinKeywordKinds = map[token.TokenType]struct {
	Kind     bignum.Kind
	BitWidth int
}{
	token.KwBit: {bignum.Unsigned, 1},
	token.KwU8:  {bignum.Unsigned, 8},
	token.KwU16: {bignum.Unsigned, 16},
	token.KwU32: {bignum.Unsigned, 32},
	token.KwU64: {bignum.Unsigned, 64},
	token.KwS8:  {bignum.Signed, 8},
	token.KwS16: {bignum.Signed, 16},
	token.KwS32: {bignum.Signed, 32},
	token.KwS64: {bignum.Signed, 64},
}

// parseType parses one type expression: a scoped identifier, `!T` (flip),
// `typeOf(expr)`, `uint{N}`/`sint{N}`, a builtin alias keyword, `memory[n]: T`,
// `{T1, T2, ...}` (tuple), or `function(...): R`.
func (p *Parser) parseType() (ast.TypeExpr, error) {
	switch p.cur.Token.Type {
	case token.ColonColon, token.Identifier:
		return p.parseScopedTypeExpr()
	case token.KwFlip, token.EMark:
		return p.parseFlipTypeExpr()
	case token.KwTypeOf:
		return p.parseTypeOfTypeExpr()
	case token.KwUint:
		return p.parseIntWidthTypeExpr(bignum.Unsigned)
	case token.KwSint:
		return p.parseIntWidthTypeExpr(bignum.Signed)
	case token.KwMemory:
		return p.parseMemoryTypeExpr()
	case token.LBrace:
		return p.parseTupleTypeExpr()
	case token.KwFunction:
		return p.parseFunctionTypeExpr()
	default:
		if alias, ok := builtinKeywordKinds[p.cur.Token.Type]; ok {
			return p.parseBuiltinAliasTypeExpr(alias.Kind, alias.BitWidth)
		}
		t := p.cur.Token
		return nil, p.fail(diagnostics.PhaseSyntactic, diagnostics.ErrExpectedToken, t.Range, "a type", t.Lexeme())
	}
}

func (p *Parser) parseBuiltinAliasTypeExpr(kind bignum.Kind, bitWidth int) (*ast.BitVectorTypeExpr, error) {
	t := p.cur.Token
	leading := p.cur.LeadingComments
	if err := p.advance(); err != nil {
		return nil, err
	}
	resolved := p.ctx.Types.GetBitVectorType(types.Reg, kind, bitWidth)
	return &ast.BitVectorTypeExpr{
		NodeBase: ast.NodeBase{Loc: t.Range, LeadingComments: leading},
		Resolved: resolved,
	}, nil
}

// parseIntWidthTypeExpr parses `uint{N}`/`sint{N}`. N is resolved eagerly
// only when it is a literal integer; evaluating a general width expression
// is out of scope for this front end, so Resolved is left nil otherwise.
func (p *Parser) parseIntWidthTypeExpr(kind bignum.Kind) (*ast.BitVectorTypeExpr, error) {
	start := p.cur.Token.Range
	leading := p.cur.LeadingComments
	if err := p.advance(); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBrace, "'{'"); err != nil {
		return nil, err
	}
	widthExpr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	closeTok, err := p.expect(token.RBrace, "'}'")
	if err != nil {
		return nil, err
	}
	node := &ast.BitVectorTypeExpr{NodeBase: ast.NodeBase{Loc: start.Join(closeTok.Range), LeadingComments: leading}}
	if lit, ok := widthExpr.(*ast.IntegerLiteralExpr); ok && lit.Value.IsConcrete() {
		width := int(lit.Value.Value.Int().Int64())
		if width <= 0 {
			if ferr := p.fail(diagnostics.PhaseSemantic, diagnostics.ErrZeroWidthBitVector, node.Loc); ferr != nil {
				return nil, ferr
			}
		} else {
			node.Resolved = p.ctx.Types.GetBitVectorType(types.Reg, kind, width)
		}
	}
	return node, nil
}

// parseFlipTypeExpr parses a flip type, spelled `!T` or with the `flip`
// keyword, `flip T`.
func (p *Parser) parseFlipTypeExpr() (*ast.FlipTypeExpr, error) {
	start := p.cur.Token.Range
	leading := p.cur.LeadingComments
	if p.at(token.EMark) {
		if err := p.advance(); err != nil {
			return nil, err
		}
	} else if _, err := p.expect(token.KwFlip, "'flip' or '!'"); err != nil {
		return nil, err
	}
	beforeFlip := p.cur.LeadingComments
	inner, err := p.parseType()
	if err != nil {
		return nil, err
	}
	node := &ast.FlipTypeExpr{
		NodeBase:           ast.NodeBase{Loc: start.Join(inner.Range()), LeadingComments: leading},
		Inner:              inner,
		BeforeFlipComments: beforeFlip,
	}
	if inner.ResolvedType() != nil {
		node.Resolved = inner.ResolvedType().Flipped()
	}
	return node, nil
}

func (p *Parser) parseTypeOfTypeExpr() (*ast.TypeOfTypeExpr, error) {
	start := p.cur.Token.Range
	leading := p.cur.LeadingComments
	if _, err := p.expect(token.KwTypeOf, "'typeOf'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LParen, "'('"); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	closeTok, err := p.expect(token.RParen, "')'")
	if err != nil {
		return nil, err
	}
	return &ast.TypeOfTypeExpr{
		NodeBase: ast.NodeBase{Loc: start.Join(closeTok.Range), LeadingComments: leading},
		Value:    value,
		Resolved: &types.TypeOfType{},
	}, nil
}

// parseMemoryTypeExpr parses `memory[size]: ElementType`.
func (p *Parser) parseMemoryTypeExpr() (*ast.MemoryTypeExpr, error) {
	start := p.cur.Token.Range
	leading := p.cur.LeadingComments
	if _, err := p.expect(token.KwMemory, "'memory'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBracket, "'['"); err != nil {
		return nil, err
	}
	size, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBracket, "']'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Colon, "':'"); err != nil {
		return nil, err
	}
	element, err := p.parseType()
	if err != nil {
		return nil, err
	}
	node := &ast.MemoryTypeExpr{
		NodeBase: ast.NodeBase{Loc: start.Join(element.Range()), LeadingComments: leading},
		Element:  element,
		Depth:    size,
	}
	if lit, ok := size.(*ast.IntegerLiteralExpr); ok && lit.Value.IsConcrete() && element.ResolvedType() != nil {
		node.Resolved = &types.MemoryType{ElementType: element.ResolvedType(), Depth: lit.Value.Value.Int().Int64()}
	}
	return node, nil
}

// parseTupleTypeExpr parses `{T1, T2, ...}`.
func (p *Parser) parseTupleTypeExpr() (*ast.TupleTypeExpr, error) {
	start := p.cur.Token.Range
	leading := p.cur.LeadingComments
	if _, err := p.expect(token.LBrace, "'{'"); err != nil {
		return nil, err
	}
	node := &ast.TupleTypeExpr{NodeBase: ast.NodeBase{Loc: start, LeadingComments: leading}}
	allResolved := true
	for !p.at(token.RBrace) {
		member, err := p.parseType()
		if err != nil {
			return nil, err
		}
		node.Members = append(node.Members, member)
		if member.ResolvedType() == nil {
			allResolved = false
		}
		if p.at(token.Comma) {
			if err := p.advance(); err != nil {
				return nil, err
			}
		} else {
			break
		}
	}
	closeTok, err := p.expect(token.RBrace, "'}'")
	if err != nil {
		return nil, err
	}
	node.Loc = node.Loc.Join(closeTok.Range)
	if allResolved {
		members := make([]types.Type, len(node.Members))
		for i, m := range node.Members {
			members[i] = m.ResolvedType()
		}
		node.Resolved = arena.Keep(p.ctx.Arena, &types.TupleType{Members: members})
	}
	return node, nil
}

// parseFunctionTypeExpr parses `function(p1: T1, T2, ...): R`, matching the
// parameter-list shape that allows either a bare type or a `name: type` pair
// (names are not retained on the resulting FunctionType, which is unnamed).
func (p *Parser) parseFunctionTypeExpr() (*ast.FunctionTypeExpr, error) {
	start := p.cur.Token.Range
	leading := p.cur.LeadingComments
	if _, err := p.expect(token.KwFunction, "'function'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LParen, "'('"); err != nil {
		return nil, err
	}
	node := &ast.FunctionTypeExpr{NodeBase: ast.NodeBase{Loc: start, LeadingComments: leading}}
	allResolved := true
	for !p.at(token.RParen) {
		if p.at(token.Identifier) && p.peekAt(token.Colon) {
			if err := p.advance(); err != nil {
				return nil, err
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
		param, err := p.parseType()
		if err != nil {
			return nil, err
		}
		node.Params = append(node.Params, param)
		if param.ResolvedType() == nil {
			allResolved = false
		}
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
	node.Loc = node.Loc.Join(closeTok.Range)
	if p.at(token.Colon) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		result, err := p.parseType()
		if err != nil {
			return nil, err
		}
		node.Result = result
		node.Loc = node.Loc.Join(result.Range())
		if result.ResolvedType() == nil {
			allResolved = false
		}
	}
	if allResolved {
		params := make([]types.Type, len(node.Params))
		for i, m := range node.Params {
			params[i] = m.ResolvedType()
		}
		var result types.Type
		if node.Result != nil {
			result = node.Result.ResolvedType()
		}
		node.Resolved = arena.Keep(p.ctx.Arena, &types.FunctionType{Params: params, Result: result})
	}
	return node, nil
}

// directionFor maps a const/let/input/output/reg declaration kind to the
// bit-vector direction it implies, if any (const/let carry no direction of
// their own — they take the declared type's direction as-is).
func directionFor(kind ast.VariableDeclKind) (types.Direction, bool) {
	switch kind {
	case ast.DeclInput:
		return types.Input, true
	case ast.DeclOutput:
		return types.Output, true
	case ast.DeclReg:
		return types.Reg, true
	default:
		return 0, false
	}
}

// stampDirection rebuilds typeExpr's resolved bit-vector type at the given
// direction when typeExpr resolves to one, leaving any other type
// (bundle, tuple, ...) untouched — flip/direction only applies to
// bit-vector leaves (spec §4.5).
func (p *Parser) stampDirection(typeExpr ast.TypeExpr, dir types.Direction) ast.TypeExpr {
	resolved := typeExpr.ResolvedType()
	if resolved == nil {
		return typeExpr
	}
	bvt, ok := resolved.CanonicalType().(*types.BitVectorType)
	if !ok {
		return typeExpr
	}
	restamped := p.ctx.Types.GetBitVectorType(dir, bvt.Kind, bvt.BitWidth)
	return &ast.BitVectorTypeExpr{
		NodeBase:                ast.NodeBase{Loc: typeExpr.Range()},
		DirectionKeywordPresent: true,
		Resolved:                restamped,
	}
}

// parseScopedTypeExpr parses a (possibly `::`-qualified) type reference,
// resolving it eagerly against the current lookup chain. Resolution binds
// to the referenced symbol's AsType() when the symbol implements
// types.TypeSymbol (builtin aliases, bundles, enums).
func (p *Parser) parseScopedTypeExpr() (*ast.ScopedTypeExpr, error) {
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
	nameTok, err := p.expect(token.Identifier, "a type name")
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
		segTok, err := p.expect(token.Identifier, "a type name")
		if err != nil {
			return nil, err
		}
		names = append(names, segTok.Lexeme())
		interned = append(interned, p.intern(segTok.Lexeme()))
		end = segTok.Range
	}

	node := &ast.ScopedTypeExpr{
		NodeBase: ast.NodeBase{Loc: start.Join(end), LeadingComments: leading},
		Global:   global,
		Names:    names,
	}
	sym, resolveErr := p.resolveScopedNameSymbol(global, interned)
	if resolveErr != nil {
		if ferr := p.fail(diagnostics.PhaseResolution, diagnostics.ErrNameNotFound, node.Loc, names[len(names)-1]); ferr != nil {
			return nil, ferr
		}
		return node, nil
	}
	typeSym, ok := sym.(types.TypeSymbol)
	if !ok {
		if ferr := p.fail(diagnostics.PhaseResolution, diagnostics.ErrNotAType, node.Loc, names[len(names)-1]); ferr != nil {
			return nil, ferr
		}
		return node, nil
	}
	node.Resolved = typeSym.AsType()
	return node, nil
}
