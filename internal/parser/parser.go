package parser

import (
	"github.com/siliconvibe/hdlfx/internal/arena"
	"github.com/siliconvibe/hdlfx/internal/ast"
	"github.com/siliconvibe/hdlfx/internal/diagnostics"
	"github.com/siliconvibe/hdlfx/internal/lexer"
	"github.com/siliconvibe/hdlfx/internal/source"
	"github.com/siliconvibe/hdlfx/internal/symbols"
	"github.com/siliconvibe/hdlfx/internal/token"
	"github.com/siliconvibe/hdlfx/internal/types"
)

// Parser is a recursive-descent, single-token-lookahead parser over one
// Source. It shares its Context (pools, global scope, sink) with every other
// Parser in the same compilation unit, but owns its own scope chain.
type Parser struct {
	ctx  *Context
	lex  *lexer.CommentGroupingLexer
	cur  lexer.Grouped
	peek lexer.Grouped

	currentScope *symbols.SymbolTable
	chain        symbols.LookupChain

	// enclosingNames holds the name of every scope-introducing declaration
	// (module, interface, function, enum, bundle) currently being parsed,
	// innermost last. A nested declaration's own declare() call lands in
	// its immediately enclosing declaration's fresh ownScope — a different
	// *symbols.SymbolTable from whichever scope holds that enclosing
	// declaration's own name — so a same-table Insert alone can never see
	// a name reused across that boundary (spec §8 scenario 5).
	enclosingNames []string
}

// New returns a Parser positioned at the first substantive token of src,
// with the lookup chain rooted at ctx.Global.
func New(ctx *Context, src *source.Source) (*Parser, error) {
	p := &Parser{
		ctx:          ctx,
		lex:          lexer.NewCommentGroupingLexer(src),
		currentScope: ctx.Global,
		chain:        symbols.LookupChain{}.Push(ctx.Global),
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

// advance shifts peek into cur and reads a fresh peek from the lexer.
func (p *Parser) advance() error {
	p.cur = p.peek
	g, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.peek = g
	return nil
}

func (p *Parser) at(tt token.TokenType) bool { return p.cur.Token.Type == tt }

func (p *Parser) peekAt(tt token.TokenType) bool { return p.peek.Token.Type == tt }

// fail reports a diagnostic through the context's sink and returns the error
// the sink produced (nil if the sink chooses to continue, e.g. CollectingSink).
func (p *Parser) fail(phase diagnostics.Phase, code diagnostics.ErrorCode, at source.LocationRange, args ...interface{}) error {
	return p.ctx.Sink.Report(diagnostics.New(phase, code, at, args...))
}

// expect consumes the current token if it matches tt, else reports a
// syntactic diagnostic naming what was wanted.
func (p *Parser) expect(tt token.TokenType, what string) (token.Token, error) {
	if !p.at(tt) {
		t := p.cur.Token
		if err := p.fail(diagnostics.PhaseSyntactic, diagnostics.ErrExpectedToken, t.Range, what, t.Lexeme()); err != nil {
			return token.Token{}, err
		}
	}
	t := p.cur.Token
	if err := p.advance(); err != nil {
		return token.Token{}, err
	}
	return t, nil
}

// intern is shorthand for interning an identifier lexeme into the shared
// string pool.
func (p *Parser) intern(s string) *arena.StringEntry { return p.ctx.Strings.Intern(s) }

// enterScope pushes table as a fresh innermost lexical frame, returning the
// saved (scope, chain) pair enterScope's caller must pass to exitScope.
func (p *Parser) enterScope(table *symbols.SymbolTable) (*symbols.SymbolTable, symbols.LookupChain) {
	saved, savedChain := p.currentScope, p.chain
	p.currentScope = table
	p.chain = p.chain.Push(table)
	return saved, savedChain
}

// exitScope restores a scope/chain pair saved by enterScope (spec §5:
// "restored deterministically on exit").
func (p *Parser) exitScope(saved *symbols.SymbolTable, savedChain symbols.LookupChain) {
	p.currentScope = saved
	p.chain = savedChain
}

// declare inserts sym under name into the current scope, reporting a
// resolution diagnostic on collision. A name that matches one of the
// currently open scope-introducing declarations (enclosingNames) is also a
// collision, even though it lands in a different SymbolTable than the one
// holding that enclosing declaration's own name: `module m { module m { } }`
// declares the inner `m` into the outer module's fresh ownScope, which has
// no entry for `m` at all, so Insert alone never sees the reuse.
func (p *Parser) declare(sym symbols.Symbol, name string, at source.LocationRange) error {
	for _, enclosing := range p.enclosingNames {
		if enclosing == name {
			return p.fail(diagnostics.PhaseResolution, diagnostics.ErrNameRedefined, at, name)
		}
	}
	if !p.currentScope.Insert(sym) {
		return p.fail(diagnostics.PhaseResolution, diagnostics.ErrNameRedefined, at, name)
	}
	return nil
}

// pushEnclosingName records name as belonging to a scope-introducing
// declaration that is now open, so a nested declaration reusing name is
// caught by declare even though it is inserted into a different
// SymbolTable. Callers pair this with `defer p.popEnclosingName()`
// immediately, mirroring the push/pop scope lifetime of enterScope/exitScope.
func (p *Parser) pushEnclosingName(name string) {
	p.enclosingNames = append(p.enclosingNames, name)
}

// popEnclosingName removes the innermost name pushed by pushEnclosingName.
func (p *Parser) popEnclosingName() {
	p.enclosingNames = p.enclosingNames[:len(p.enclosingNames)-1]
}

// ParseTopLevelModule parses an entire source as one TopLevelModule: a run
// of imports, exactly one module or interface declaration, and nothing more
// (spec §8 scenario 6: a second top-level declaration is a syntax error).
func (p *Parser) ParseTopLevelModule() (*ast.TopLevelModule, error) {
	start := p.cur.Token.Range
	mod := &ast.TopLevelModule{NodeBase: ast.NodeBase{Loc: start, LeadingComments: p.cur.LeadingComments}}

	for p.at(token.KwImport) {
		imp, err := p.parseImport()
		if err != nil {
			return nil, err
		}
		mod.Imports = append(mod.Imports, imp)
	}

	main, err := p.parseModuleOrInterface()
	if err != nil {
		return nil, err
	}
	mod.MainModule = main

	if !p.at(token.EOF) {
		if err := p.fail(diagnostics.PhaseSyntactic, diagnostics.ErrExtraTokens, p.cur.Token.Range); err != nil {
			return nil, err
		}
	}
	mod.TrailingComments = p.cur.LeadingComments
	mod.Loc = mod.Loc.Join(p.cur.Token.Range)
	return mod, nil
}

func (p *Parser) parseImport() (*ast.Import, error) {
	start := p.cur.Token.Range
	leading := p.cur.LeadingComments
	if _, err := p.expect(token.KwImport, "'import'"); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.Identifier, "an import name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon, "';'"); err != nil {
		return nil, err
	}
	imp := &ast.Import{
		DeclBase: ast.DeclBase{
			NodeBase: ast.NodeBase{Loc: start.Join(nameTok.Range), LeadingComments: leading},
			Name:     p.intern(nameTok.Lexeme()),
		},
		NameText: nameTok.Lexeme(),
	}
	if err := p.declare(imp, nameTok.Lexeme(), nameTok.Range); err != nil {
		return nil, err
	}
	return imp, nil
}

func (p *Parser) parseModuleOrInterface() (ast.Statement, error) {
	switch p.cur.Token.Type {
	case token.KwModule:
		return p.parseModule()
	case token.KwInterface:
		return p.parseInterface()
	default:
		t := p.cur.Token
		return nil, p.fail(diagnostics.PhaseSyntactic, diagnostics.ErrExpectedToken, t.Range, "'module' or 'interface'", t.Lexeme())
	}
}

func (p *Parser) parseModule() (*ast.Module, error) {
	start := p.cur.Token.Range
	leading := p.cur.LeadingComments
	if _, err := p.expect(token.KwModule, "'module'"); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.Identifier, "a module name")
	if err != nil {
		return nil, err
	}

	mod := &ast.Module{
		DeclBase: ast.DeclBase{
			NodeBase: ast.NodeBase{Loc: start, LeadingComments: leading},
			Name:     p.intern(nameTok.Lexeme()),
		},
	}
	if err := p.declare(mod, nameTok.Lexeme(), nameTok.Range); err != nil {
		return nil, err
	}
	p.pushEnclosingName(nameTok.Lexeme())
	defer p.popEnclosingName()

	ownScope := symbols.NewSymbolTable()
	mod.OwnScope = ownScope
	mod.EnclosingChain = p.chain

	if p.at(token.EMark) {
		params, err := p.parseTemplateParameters(ownScope)
		if err != nil {
			return nil, err
		}
		mod.TemplateParams = params
	}

	// REDESIGN: `implements T` must actually attach the parsed type to
	// ParentType, rather than being parsed and discarded.
	if p.at(token.KwImplements) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		parent, err := p.parseType()
		if err != nil {
			return nil, err
		}
		mod.ParentType = parent
	}

	savedScope, savedChain := p.enterScope(ownScope)
	body, closeRange, err := p.parseBraceBody()
	p.exitScope(savedScope, savedChain)
	if err != nil {
		return nil, err
	}
	mod.Body = body
	mod.Loc = mod.Loc.Join(closeRange)
	return mod, nil
}

func (p *Parser) parseInterface() (*ast.Interface, error) {
	start := p.cur.Token.Range
	leading := p.cur.LeadingComments
	if _, err := p.expect(token.KwInterface, "'interface'"); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.Identifier, "an interface name")
	if err != nil {
		return nil, err
	}

	iface := &ast.Interface{
		DeclBase: ast.DeclBase{
			NodeBase: ast.NodeBase{Loc: start, LeadingComments: leading},
			Name:     p.intern(nameTok.Lexeme()),
		},
	}
	if err := p.declare(iface, nameTok.Lexeme(), nameTok.Range); err != nil {
		return nil, err
	}
	p.pushEnclosingName(nameTok.Lexeme())
	defer p.popEnclosingName()

	ownScope := symbols.NewSymbolTable()
	iface.OwnScope = ownScope
	iface.EnclosingChain = p.chain

	if p.at(token.EMark) {
		params, err := p.parseTemplateParameters(ownScope)
		if err != nil {
			return nil, err
		}
		iface.TemplateParams = params
	}

	if p.at(token.KwImplements) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		parent, err := p.parseType()
		if err != nil {
			return nil, err
		}
		iface.ParentType = parent
	}

	savedScope, savedChain := p.enterScope(ownScope)
	body, closeRange, err := p.parseBraceBody()
	p.exitScope(savedScope, savedChain)
	if err != nil {
		return nil, err
	}
	iface.Body = body
	iface.Loc = iface.Loc.Join(closeRange)
	return iface, nil
}

// parseBraceBody parses `{ stmt... }`, returning the statements and the
// range of the closing brace.
func (p *Parser) parseBraceBody() ([]ast.Statement, source.LocationRange, error) {
	if _, err := p.expect(token.LBrace, "'{'"); err != nil {
		return nil, source.LocationRange{}, err
	}
	var body []ast.Statement
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, source.LocationRange{}, err
		}
		body = append(body, stmt)
	}
	closeTok, err := p.expect(token.RBrace, "'}'")
	if err != nil {
		return nil, source.LocationRange{}, err
	}
	return body, closeTok.Range, nil
}

// parseTemplateParameters parses `!{ param, param, ... }`, declaring each
// parameter into declScope as it goes.
func (p *Parser) parseTemplateParameters(declScope *symbols.SymbolTable) ([]*ast.TemplateParameter, error) {
	if _, err := p.expect(token.EMark, "'!'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBrace, "'{'"); err != nil {
		return nil, err
	}
	var params []*ast.TemplateParameter
	for !p.at(token.RBrace) {
		param, err := p.parseTemplateParameter(declScope)
		if err != nil {
			return nil, err
		}
		params = append(params, param)
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
	return params, nil
}

// parseTemplateParameter parses one of the two forms: `Name: Type` (a
// value-kind parameter) or `module Name: InterfaceType` (a module-kind
// parameter), either optionally followed by `...` to mark an isList param.
func (p *Parser) parseTemplateParameter(declScope *symbols.SymbolTable) (*ast.TemplateParameter, error) {
	start := p.cur.Token.Range
	leading := p.cur.LeadingComments
	isModuleKind := false
	if p.at(token.KwModule) {
		isModuleKind = true
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	nameTok, err := p.expect(token.Identifier, "a template parameter name")
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
	isList := false
	if p.at(token.DotDotDot) {
		isList = true
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	var paramKind types.TemplateParameterKind
	if isModuleKind {
		paramKind = p.ctx.TemplateKinds.Intern(types.ModuleKind{IsListParam: isList, InterfaceType: typeExpr.ResolvedType()})
	} else {
		paramKind = p.ctx.TemplateKinds.Intern(types.ValueKind{IsListParam: isList, UnderlyingType: typeExpr.ResolvedType()})
	}

	param := &ast.TemplateParameter{
		DeclBase: ast.DeclBase{
			NodeBase: ast.NodeBase{Loc: start.Join(typeExpr.Range()), LeadingComments: leading},
			Name:     p.intern(nameTok.Lexeme()),
		},
		Kind: paramKind,
	}
	if err := p.declareInto(declScope, param, nameTok.Lexeme(), nameTok.Range); err != nil {
		return nil, err
	}
	return param, nil
}

// newBlockScope returns an empty SymbolTable for a freshly entered block.
func newBlockScope() *symbols.SymbolTable { return symbols.NewSymbolTable() }

// declareInto is like declare but against an explicit scope rather than the
// parser's current scope (used while a scope is being populated before it is
// pushed as current, e.g. template parameters).
func (p *Parser) declareInto(scope *symbols.SymbolTable, sym symbols.Symbol, name string, at source.LocationRange) error {
	if !scope.Insert(sym) {
		return p.fail(diagnostics.PhaseResolution, diagnostics.ErrNameRedefined, at, name)
	}
	return nil
}
