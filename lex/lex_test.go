package lex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func kinds(tokens []Token) []Kind {
	ks := make([]Kind, len(tokens))
	for i, t := range tokens {
		ks[i] = t.Kind
	}
	return ks
}

func TestTokenizeSimpleExpression(t *testing.T) {
	tokens, err := Tokenize("5 * X^0 + 4 * X^1 - 9.3 * X^2 = 1 * X^0")
	assert.NoError(t, err)
	assert.Equal(t, END, tokens[len(tokens)-1].Kind)
	assert.Contains(t, kinds(tokens), NUMBER)
	assert.Contains(t, kinds(tokens), EQUALS)
	assert.Contains(t, kinds(tokens), POWER)
}

func TestTokenizeSkipsWhitespace(t *testing.T) {
	tokens, err := Tokenize("  5   +   3  ")
	assert.NoError(t, err)
	assert.Equal(t, []Kind{NUMBER, PLUS, NUMBER, END}, kinds(tokens))
}

func TestTokenizeImaginaryNumber(t *testing.T) {
	tokens, err := Tokenize("5i")
	assert.NoError(t, err)
	assert.Equal(t, NUMBER, tokens[0].Kind)
	assert.Equal(t, "5i", tokens[0].Text)
}

func TestTokenizeBareIPrefersNumber(t *testing.T) {
	tokens, err := Tokenize("i")
	assert.NoError(t, err)
	assert.Equal(t, NUMBER, tokens[0].Kind)
}

func TestTokenizeUndefinedCharacter(t *testing.T) {
	_, err := Tokenize("5 @ 3")
	assert.Error(t, err)
}

func TestTokenizeTreatsLetterRunsAsNames(t *testing.T) {
	tokens, err := Tokenize("45 gbd gb")
	assert.NoError(t, err)
	assert.Equal(t, []Kind{NUMBER, NAME, NAME, END}, kinds(tokens))
}

func TestTokenizeNeedleAndParens(t *testing.T) {
	tokens, err := Tokenize("(x)?")
	assert.NoError(t, err)
	assert.Equal(t, []Kind{LPAREN, NAME, RPAREN, NEEDLE, END}, kinds(tokens))
}
