package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imp-lang/imp/token"
)

func collect(t *testing.T, input string) []token.Token {
	t.Helper()
	l := New(input, "test.imp")
	var toks []token.Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestLexerSimpleExpression(t *testing.T) {
	toks := collect(t, "10 - 3 * 2")
	require.Len(t, toks, 6)
	assert.Equal(t, []token.Kind{token.INT, token.MINUS, token.INT, token.MUL, token.INT, token.EOF}, kinds(toks))
	assert.Equal(t, "10", toks[0].Literal)
	assert.Equal(t, "3", toks[2].Literal)
}

func TestLexerTwoCharOperators(t *testing.T) {
	toks := collect(t, ">= <= ==")
	assert.Equal(t, []token.Kind{token.GREATER_EQ, token.LOWER_EQ, token.IS_EQ, token.EOF}, kinds(toks))
	assert.Equal(t, ">=", toks[0].Literal)
	assert.Equal(t, "<=", toks[1].Literal)
	assert.Equal(t, "==", toks[2].Literal)
}

func TestLexerKeywordsAndIdents(t *testing.T) {
	toks := collect(t, "func fact while x0")
	assert.Equal(t, []token.Kind{token.FUNC, token.IDENT, token.WHILE, token.IDENT, token.EOF}, kinds(toks))
	assert.Equal(t, "fact", toks[1].Literal)
	assert.Equal(t, "x0", toks[3].Literal)
}

func TestLexerString(t *testing.T) {
	toks := collect(t, `"print_int"`)
	require.Len(t, toks, 2)
	assert.Equal(t, token.STRING, toks[0].Kind)
	assert.Equal(t, "print_int", toks[0].Literal)
}

func TestLexerSkipsLineComments(t *testing.T) {
	toks := collect(t, "1 // comment\n+ 2")
	assert.Equal(t, []token.Kind{token.INT, token.PLUS, token.INT, token.EOF}, kinds(toks))
}

func TestLexerLineAndColumnTracking(t *testing.T) {
	toks := collect(t, "a\nb")
	require.Len(t, toks, 3)
	assert.Equal(t, 1, toks[0].Start.LineNumber())
	assert.Equal(t, 2, toks[1].Start.LineNumber())
	assert.Equal(t, 1, toks[1].Start.ColumnNumber())
}
