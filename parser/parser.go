// Package parser implements a recursive-descent parser that turns a
// stream of tokens into an *ast.Module, following the grammar in
// original_source/parser.cpp. It is one of the "external collaborators"
// spec.md §1 describes the core as depending on: the compiler consumes
// its output read-only and assumes names are already resolvable.
package parser

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/imp-lang/imp/ast"
	"github.com/imp-lang/imp/lexer"
	"github.com/imp-lang/imp/token"
)

// Parser holds state for a single parse of one input. A Parser is used
// once: construct with New, call ParseModule.
type Parser struct {
	l    *lexer.Lexer
	cur  token.Token
	errs *multierror.Error
}

// New creates a Parser over the given source text.
func New(input, filename string) *Parser {
	p := &Parser{l: lexer.New(input, filename)}
	p.next()
	return p
}

// ParseModule parses a complete Module. Syntax errors, if any, are
// returned aggregated as the error; the returned Module may be partial
// when errors occurred.
func ParseModule(input, filename string) (*ast.Module, error) {
	p := New(input, filename)
	mod := p.ParseModule()
	return mod, p.Err()
}

func (p *Parser) next() {
	p.cur = p.l.Next()
}

func (p *Parser) at(kind token.Kind) bool { return p.cur.Kind == kind }

// expect requires the current token to be kind, records an error and
// returns false otherwise (without advancing), and advances past it and
// returns true on success.
func (p *Parser) expect(kind token.Kind) bool {
	if !p.at(kind) {
		p.collectError(p.cur.Start, "unexpected %s, expecting %s", describe(p.cur), kind)
		return false
	}
	p.next()
	return true
}

func describe(tok token.Token) string {
	if tok.Kind == token.EOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", tok.Literal)
}

// ParseModule parses the top-level item list: function declarations,
// prototype declarations and bare top-level statements, in source order
// (spec §2's Module shape).
func (p *Parser) ParseModule() *ast.Module {
	mod := &ast.Module{}
	for !p.at(token.EOF) {
		switch {
		case p.at(token.FUNC):
			mod.Items = append(mod.Items, p.parseFuncOrProto())
		default:
			mod.Items = append(mod.Items, ast.Item{Stmt: p.parseStmt()})
		}
	}
	return mod
}

func (p *Parser) parseFuncOrProto() ast.Item {
	pos := p.cur.Start
	p.next() // consume 'func'

	name := p.cur.Literal
	p.expect(token.IDENT)
	p.expect(token.LPAREN)

	var params []ast.Param
	for !p.at(token.RPAREN) && !p.at(token.EOF) {
		argName := p.cur.Literal
		p.expect(token.IDENT)
		p.expect(token.COLON)
		argType := p.cur.Literal
		p.expect(token.IDENT)
		params = append(params, ast.Param{Name: argName, Type: argType})
		if !p.at(token.COMMA) {
			break
		}
		p.next()
	}
	p.expect(token.RPAREN)
	p.expect(token.COLON)
	retType := p.cur.Literal
	p.expect(token.IDENT)

	if p.at(token.EQUAL) {
		p.next()
		primitive := p.cur.Literal
		p.expect(token.STRING)
		p.consumeOptionalSemi()
		return ast.Item{Proto: &ast.ProtoDecl{
			Position: pos, Name: name, Params: params,
			ReturnType: retType, PrimitiveName: primitive,
		}}
	}

	body := p.parseBlock()
	return ast.Item{Func: &ast.FuncDecl{
		Position: pos, Name: name, Params: params,
		ReturnType: retType, Body: body,
	}}
}

func (p *Parser) consumeOptionalSemi() {
	if p.at(token.SEMI) {
		p.next()
	}
}

// parseStmt parses a single statement per spec §4.1.
func (p *Parser) parseStmt() ast.Stmt {
	switch p.cur.Kind {
	case token.RETURN:
		return p.parseReturnStmt()
	case token.WHILE:
		return p.parseWhileStmt()
	case token.IF:
		return p.parseIfStmt()
	case token.LBRACE:
		return p.parseBlock()
	case token.LET:
		return p.parseLetStmt()
	default:
		pos := p.cur.Start
		x := p.parseExpr()
		p.consumeOptionalSemi()
		return &ast.ExprStmt{Position: pos, X: x}
	}
}

func (p *Parser) parseBlock() *ast.Block {
	pos := p.cur.Start
	p.expect(token.LBRACE)
	b := &ast.Block{Position: pos}
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		b.Statements = append(b.Statements, p.parseStmt())
	}
	p.expect(token.RBRACE)
	return b
}

func (p *Parser) parseReturnStmt() ast.Stmt {
	pos := p.cur.Start
	p.next() // consume 'return'
	x := p.parseExpr()
	p.consumeOptionalSemi()
	return &ast.Return{Position: pos, X: x}
}

func (p *Parser) parseWhileStmt() ast.Stmt {
	pos := p.cur.Start
	p.next() // consume 'while'
	p.expect(token.LPAREN)
	cond := p.parseExpr()
	p.expect(token.RPAREN)
	body := p.parseStmt()
	return &ast.While{Position: pos, Cond: cond, Body: body}
}

func (p *Parser) parseIfStmt() ast.Stmt {
	pos := p.cur.Start
	p.next() // consume 'if'
	p.expect(token.LPAREN)
	cond := p.parseExpr()
	p.expect(token.RPAREN)
	then := p.parseStmt()
	var elseStmt ast.Stmt
	if p.at(token.ELSE) {
		p.next()
		elseStmt = p.parseStmt()
	}
	return &ast.If{Position: pos, Cond: cond, Then: then, Else: elseStmt}
}

func (p *Parser) parseLetStmt() ast.Stmt {
	pos := p.cur.Start
	p.next() // consume 'let'
	name := p.cur.Literal
	p.expect(token.IDENT)
	p.expect(token.COLON)
	typ := p.cur.Literal
	p.expect(token.IDENT)

	var init ast.Expr
	if p.at(token.EQUAL) {
		p.next()
		init = p.parseExpr()
	} else {
		// The grammar requires an initializer (SPEC_FULL.md §0.4): a let
		// without one can never produce a usable stack slot, and we'd
		// rather fail parsing than hand the compiler an AST it has to
		// assert on.
		p.collectError(pos, "let %q requires an initializer", name)
	}
	p.consumeOptionalSemi()
	return &ast.Let{Position: pos, Name: name, Type: typ, Init: init}
}
