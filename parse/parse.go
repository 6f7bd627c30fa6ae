// Package parse implements the top-down operator-precedence (Pratt)
// parser/evaluator: expression() descends purely by binding power,
// dispatching to a prefix or infix handler per token kind, which in turn
// calls into numeric/poly for the actual arithmetic. There is no separate
// AST: the lexer materialises the full token list first, and each kind's
// prefix()/infix() split is modeled in Go as a lookup table of function
// values per kind instead of per-class virtual methods.
package parse

import (
	"strings"

	"computor.dev/computor/cerr"
	"computor.dev/computor/config"
	"computor.dev/computor/lex"
)

// Interpreter holds the state of one parse() call: the materialised
// token slice, cursor, current token, and the variable table populated
// while parsing a line containing "=". A zero Interpreter is usable;
// NewInterpreter only exists to attach a *config.Config.
type Interpreter struct {
	conf      *config.Config
	tokens    []lex.Token
	cursor    int
	current   lex.Token
	hasEquals bool
	variables map[string]Value
}

// NewInterpreter builds an Interpreter bound to the given Config; a nil
// Config falls back to package defaults via config's nil-safe accessors.
func NewInterpreter(conf *config.Config) *Interpreter {
	return &Interpreter{conf: conf, variables: make(map[string]Value)}
}

// Parse tokenises and evaluates one line of input, returning the
// resulting Value. Variable bindings created while parsing this line are
// only committed to the interpreter's live table on success — a failed
// parse never leaves partial bindings visible to the next line.
func (ip *Interpreter) Parse(text string) (result Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(*cerr.Error); ok {
				err = e
				result = nil
				return
			}
			panic(r)
		}
	}()

	tokens, tokErr := lex.Tokenize(text)
	if tokErr != nil {
		return nil, tokErr
	}

	scratch := &Interpreter{
		conf:      ip.conf,
		tokens:    tokens,
		cursor:    0,
		current:   tokens[0],
		hasEquals: containsEquals(tokens),
		variables: make(map[string]Value, len(ip.variables)),
	}
	for k, v := range ip.variables {
		scratch.variables[k] = v
	}

	result = scratch.expression(0)
	if scratch.current.Kind != lex.END {
		cerr.Throw(cerr.Syntax, "unexpected token %s", scratch.current.Kind)
	}

	ip.variables = scratch.variables
	return result, nil
}

func containsEquals(tokens []lex.Token) bool {
	for _, t := range tokens {
		if t.Kind == lex.EQUALS {
			return true
		}
	}
	return false
}

// expression is the core Pratt loop: take the current token, run its
// prefix handler, then keep folding in infix handlers as long as the
// next token's binding power exceeds minBP.
func (ip *Interpreter) expression(minBP int) Value {
	t := ip.current
	ip.advance()
	prefix, ok := prefixHandlers[t.Kind]
	if !ok {
		cerr.Throw(cerr.Syntax, "%s symbol does not support prefix position", t.Kind)
	}
	left := prefix(ip, t)
	for minBP < ip.current.Kind.BindingPower() {
		t = ip.current
		ip.advance()
		infix, ok := infixHandlers[t.Kind]
		if !ok {
			cerr.Throw(cerr.Syntax, "%s symbol does not support infix position", t.Kind)
		}
		left = infix(ip, t, left)
	}
	return left
}

// advance steps the cursor to the next materialised token. Running past
// the synthetic END token means the grammar asked for a token that isn't
// there — an expression cut short mid-stream.
func (ip *Interpreter) advance() {
	if ip.cursor+1 >= len(ip.tokens) {
		cerr.Throw(cerr.UnexpectedEnd, "unexpected end of expression")
	}
	ip.cursor++
	ip.current = ip.tokens[ip.cursor]
}

// lookupVariable returns a previously bound variable by case-insensitive
// name.
func (ip *Interpreter) lookupVariable(name string) (Value, bool) {
	v, ok := ip.variables[strings.ToLower(name)]
	return v, ok
}

// bindVariable records a new variable binding, keyed case-insensitively.
func (ip *Interpreter) bindVariable(name string, v Value) {
	ip.variables[strings.ToLower(name)] = v
}
