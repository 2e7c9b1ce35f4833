package parser

import (
	"strconv"

	"github.com/imp-lang/imp/ast"
	"github.com/imp-lang/imp/token"
)

// parseExpr parses a full expression at the lowest (comparison)
// precedence level — see precedence.go.
func (p *Parser) parseExpr() ast.Expr {
	return p.parseComparison()
}

var comparisonKinds = map[token.Kind]ast.BinaryKind{
	token.GREATER:    ast.GREATER,
	token.LOWER:      ast.LOWER,
	token.GREATER_EQ: ast.GREATER_EQ,
	token.LOWER_EQ:   ast.LOWER_EQ,
	token.IS_EQ:      ast.IS_EQ,
}

func (p *Parser) parseComparison() ast.Expr {
	left := p.parseAdditive()
	for {
		kind, ok := comparisonKinds[p.cur.Kind]
		if !ok {
			return left
		}
		pos := p.cur.Start
		p.next()
		right := p.parseAdditive()
		left = &ast.Binary{Position: pos, Kind: kind, LHS: left, RHS: right}
	}
}

func (p *Parser) parseAdditive() ast.Expr {
	left := p.parseMultiplicative()
	for p.at(token.PLUS) || p.at(token.MINUS) {
		kind := ast.ADD
		if p.at(token.MINUS) {
			kind = ast.SUB
		}
		pos := p.cur.Start
		p.next()
		right := p.parseMultiplicative()
		left = &ast.Binary{Position: pos, Kind: kind, LHS: left, RHS: right}
	}
	return left
}

func (p *Parser) parseMultiplicative() ast.Expr {
	left := p.parseCall()
	for p.at(token.MUL) || p.at(token.DIV) || p.at(token.MOD) {
		var kind ast.BinaryKind
		switch p.cur.Kind {
		case token.MUL:
			kind = ast.MUL
		case token.DIV:
			kind = ast.DIV
		default:
			kind = ast.MOD
		}
		pos := p.cur.Start
		p.next()
		right := p.parseCall()
		left = &ast.Binary{Position: pos, Kind: kind, LHS: left, RHS: right}
	}
	return left
}

func (p *Parser) parseCall() ast.Expr {
	callee := p.parseTerm()
	for p.at(token.LPAREN) {
		pos := p.cur.Start
		p.next()
		var args []ast.Expr
		for !p.at(token.RPAREN) && !p.at(token.EOF) {
			args = append(args, p.parseExpr())
			if !p.at(token.COMMA) {
				break
			}
			p.next()
		}
		p.expect(token.RPAREN)
		callee = &ast.Call{Position: pos, Callee: callee, Args: args}
	}
	return callee
}

func (p *Parser) parseTerm() ast.Expr {
	tok := p.cur
	switch tok.Kind {
	case token.IDENT:
		p.next()
		return &ast.Ref{Position: tok.Start, Name: tok.Literal}
	case token.INT:
		p.next()
		n, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			p.collectError(tok.Start, "invalid integer literal %q", tok.Literal)
		}
		return &ast.Int{Position: tok.Start, Value: n}
	case token.LPAREN:
		p.next()
		x := p.parseExpr()
		p.expect(token.RPAREN)
		return x
	default:
		p.collectError(tok.Start, "unexpected %s, expecting term", describe(tok))
		p.next()
		return &ast.Int{Position: tok.Start, Value: 0}
	}
}
