package lex

import (
	"fmt"
	"regexp"
	"strings"

	"computor.dev/computor/cerr"
)

// order lists (Kind, pattern) pairs in the priority used to break ties
// when two alternatives match the same length at a position: first
// longest match wins, and this order is the tiebreak when lengths are
// equal. FUNCTIONNAME/NAME and TIMESMATRIX/TIMES don't actually need the
// tie-break (one is always strictly longer when both apply), but a bare
// "i" does: it is length 1 under NUMBER, NAME and CONSTANT, and NUMBER
// is listed first so it wins — which is why CONSTANT never actually
// fires.
var order = []struct {
	kind    Kind
	pattern string
}{
	{FUNCTIONNAME, `[a-zA-Z]+\(`},
	{NUMBER, `(?:[0-9.]+i?|i)`},
	{NAME, `[a-zA-Z]+`},
	{CONSTANT, `i`},
	{NEEDLE, `\?`},
	{PLUS, `\+`},
	{MINUS, `-`},
	{TIMESMATRIX, `\*\*`},
	{TIMES, `\*`},
	{DIVIDE, `/`},
	{MODULO, `%`},
	{POWER, `\^`},
	{LPAREN, `\(`},
	{RPAREN, `\)`},
	{EQUALS, `=`},
	{UNDEFINED, `[^\s]`},
}

var tokenRegexp = compileTokenRegexp()

func compileTokenRegexp() *regexp.Regexp {
	parts := make([]string, len(order))
	for i, o := range order {
		parts[i] = fmt.Sprintf("(?P<%s>%s)", o.kind, o.pattern)
	}
	re := regexp.MustCompile("^(?:" + strings.Join(parts, "|") + ")")
	re.Longest()
	return re
}

// Tokenize scans text left to right, skipping whitespace between tokens
// and classifying each run with the first longest match, and appends a
// synthetic END token. An UNDEFINED match raises a Syntax error
// immediately rather than being deferred to the parser.
func Tokenize(text string) ([]Token, error) {
	var tokens []Token
	pos := 0
	for pos < len(text) {
		for pos < len(text) && (text[pos] == ' ' || text[pos] == '\t') {
			pos++
		}
		if pos >= len(text) {
			break
		}
		loc := tokenRegexp.FindStringSubmatchIndex(text[pos:])
		if loc == nil {
			return nil, cerr.New(cerr.Syntax, "unknown token %q", text[pos:pos+1])
		}
		matchEnd := loc[1]
		kind := matchedKind(loc)
		lexeme := text[pos : pos+matchEnd]
		if kind == UNDEFINED {
			return nil, cerr.New(cerr.Syntax, "unknown token %q", lexeme)
		}
		tokens = append(tokens, Token{Kind: kind, Text: lexeme, Pos: pos})
		pos += matchEnd
	}
	tokens = append(tokens, Token{Kind: END, Pos: pos})
	return tokens, nil
}

// matchedKind finds which named group has a non-empty submatch.
func matchedKind(loc []int) Kind {
	names := tokenRegexp.SubexpNames()
	for i, name := range names {
		if name == "" {
			continue
		}
		start := loc[2*i]
		if start != -1 {
			for _, o := range order {
				if o.kind.String() == name {
					return o.kind
				}
			}
		}
	}
	return UNDEFINED
}
