package parse

import (
	"computor.dev/computor/cerr"
	"computor.dev/computor/lex"
	"computor.dev/computor/numeric"
	"computor.dev/computor/poly"
)

// prefixFn handles a token in nud (null denotation) position: the start
// of a new expression, with no left operand yet.
type prefixFn func(ip *Interpreter, t lex.Token) Value

// infixFn handles a token in led (left denotation) position: continuing
// an expression that already produced a left operand.
type infixFn func(ip *Interpreter, t lex.Token, left Value) Value

// unaryBindingPower is the binding power unary +/- parse their operand
// at: tighter than every binary operator, power included, so "-x^2"
// parses as "(-x)^2" and "-x*y" parses as "(-x)*y".
const unaryBindingPower = 100

// prefixHandlers and infixHandlers are filled from the tables below in
// init: expression reads them and the handlers call expression, so
// initializing them directly would be an initialization cycle.
var (
	prefixHandlers map[lex.Kind]prefixFn
	infixHandlers  map[lex.Kind]infixFn
)

func init() {
	prefixHandlers = prefixTable
	infixHandlers = infixTable
}

var prefixTable = map[lex.Kind]prefixFn{
	lex.NUMBER: prefixNumber,
	lex.NAME:   prefixName,
	lex.PLUS:   prefixPlus,
	lex.MINUS:  prefixMinus,
	lex.LPAREN: prefixLParen,

	lex.FUNCTIONNAME: prefixNotImplemented,
	lex.CONSTANT:     prefixNotImplemented,
	lex.NEEDLE:       prefixNotImplemented,
	lex.TIMESMATRIX:  prefixNotImplemented,
}

var infixTable = map[lex.Kind]infixFn{
	lex.PLUS:   infixPlus,
	lex.MINUS:  infixMinus,
	lex.TIMES:  infixTimes,
	lex.DIVIDE: infixDivide,
	lex.MODULO: infixModulo,
	lex.POWER:  infixPower,
	lex.EQUALS: infixEquals,

	lex.TIMESMATRIX: infixNotImplemented,
}

// prefixNumber parses a NUMBER lexeme (plain real, bare "i", or a
// trailing-"i" imaginary literal) into a numeric.Complex.
func prefixNumber(ip *Interpreter, t lex.Token) Value {
	c, err := numeric.Parse(t.Text)
	if err != nil {
		cerr.Throw(cerr.Syntax, "invalid number %q", t.Text)
	}
	return c
}

// prefixName resolves a NAME token: if this line assigns (contains "="),
// an unbound name becomes a fresh Variable; otherwise an unbound name is
// a Resolve error ("x" used before being given a value), and a bound
// name evaluates to its stored Value.
func prefixName(ip *Interpreter, t lex.Token) Value {
	if v, ok := ip.lookupVariable(t.Text); ok {
		return v
	}
	if ip.hasEquals {
		return poly.NewVariable(t.Text)
	}
	cerr.Throw(cerr.Resolve, "%s is not defined", t.Text)
	panic("unreachable")
}

// prefixPlus treats a leading "+" as a no-op unary operator.
func prefixPlus(ip *Interpreter, t lex.Token) Value {
	return ip.expression(unaryBindingPower)
}

// prefixMinus negates its operand.
func prefixMinus(ip *Interpreter, t lex.Token) Value {
	return Neg(ip.expression(unaryBindingPower))
}

// prefixLParen parses a fully parenthesised subexpression and consumes
// the matching RPAREN.
func prefixLParen(ip *Interpreter, t lex.Token) Value {
	inner := ip.expression(0)
	if ip.current.Kind != lex.RPAREN {
		cerr.Throw(cerr.Syntax, "expected closing parenthesis, found %s", ip.current.Kind)
	}
	ip.advance()
	return inner
}

// prefixNotImplemented covers symbols the grammar recognises but the
// resolved feature set leaves unimplemented: matrix multiplication, the
// imaginary constant literal outside a NUMBER lexeme, and the
// interactive lookup placeholder.
func prefixNotImplemented(ip *Interpreter, t lex.Token) Value {
	cerr.Throw(cerr.Resolve, "%s is not implemented", t.Kind)
	panic("unreachable")
}

func infixPlus(ip *Interpreter, t lex.Token, left Value) Value {
	right := ip.expression(t.Kind.BindingPower())
	return Add(left, right)
}

func infixMinus(ip *Interpreter, t lex.Token, left Value) Value {
	right := ip.expression(t.Kind.BindingPower())
	return Sub(left, right)
}

func infixTimes(ip *Interpreter, t lex.Token, left Value) Value {
	right := ip.expression(t.Kind.BindingPower())
	return Mul(left, right)
}

func infixDivide(ip *Interpreter, t lex.Token, left Value) Value {
	right := ip.expression(t.Kind.BindingPower())
	return Div(left, right, ip.conf)
}

func infixModulo(ip *Interpreter, t lex.Token, left Value) Value {
	right := ip.expression(t.Kind.BindingPower())
	return Mod(left, right)
}

// infixPower recurses just below POWER's own binding power (30 - 5 = 25)
// so "^" is right-associative: 2^3^2 = 2^(3^2).
func infixPower(ip *Interpreter, t lex.Token, left Value) Value {
	right := ip.expression(t.Kind.BindingPower() - 5)
	return Pow(left, right, ip.conf)
}

// infixEquals implements assignment-as-equation: "expr = expr" evaluates
// the right side, forms left-right as a Polynomial (the canonical
// reduced form of the equation), and binds every bare Variable that
// appears in either side so later lines can refer to it.
func infixEquals(ip *Interpreter, t lex.Token, left Value) Value {
	right := ip.expression(t.Kind.BindingPower())
	equation := toPolynomial(left).Sub(toPolynomial(right))
	for _, name := range collectVariableNames(left, right) {
		if _, bound := ip.lookupVariable(name); !bound {
			ip.bindVariable(name, poly.NewVariable(name))
		}
	}
	return equation
}

func collectVariableNames(values ...Value) []string {
	var names []string
	seen := make(map[string]bool)
	add := func(n string) {
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	for _, v := range values {
		switch x := v.(type) {
		case poly.Variable:
			add(x.Name)
		case poly.Polynomial:
			for _, n := range x.Variables() {
				add(n)
			}
		}
	}
	return names
}

func infixNotImplemented(ip *Interpreter, t lex.Token, left Value) Value {
	cerr.Throw(cerr.Resolve, "%s is not implemented", t.Kind)
	panic("unreachable")
}
