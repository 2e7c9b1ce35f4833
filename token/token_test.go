package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupIdentKeywordsAndPlain(t *testing.T) {
	assert.Equal(t, FUNC, LookupIdent("func"))
	assert.Equal(t, LET, LookupIdent("let"))
	assert.Equal(t, IDENT, LookupIdent("fact"))
}

func TestPositionNumbering(t *testing.T) {
	p := Position{Line: 0, Column: 0}
	assert.Equal(t, 1, p.LineNumber())
	assert.Equal(t, 1, p.ColumnNumber())

	p2 := Position{Line: 4, Column: 9}
	assert.Equal(t, 5, p2.LineNumber())
	assert.Equal(t, 10, p2.ColumnNumber())
}
