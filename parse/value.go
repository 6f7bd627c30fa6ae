package parse

import (
	"computor.dev/computor/cerr"
	"computor.dev/computor/config"
	"computor.dev/computor/numeric"
	"computor.dev/computor/poly"
)

// Value is whatever an expression evaluates to: a numeric.Complex, a
// poly.Variable, or a poly.Polynomial. There is no separate AST — parsing
// and evaluation happen in the same pass, so the parser works directly
// with these three concrete types rather than a typed expression tree.
type Value interface{}

// asNumeric reports whether v is a plain numeric.Complex (as opposed to a
// Variable or Polynomial).
func asNumeric(v Value) (numeric.Complex, bool) {
	c, ok := v.(numeric.Complex)
	return c, ok
}

// toPolynomial implements the coercion lattice Number <= Polynomial,
// Variable <= Polynomial: every Value can be lifted to a Polynomial at
// an operator boundary.
func toPolynomial(v Value) poly.Polynomial {
	switch x := v.(type) {
	case numeric.Complex:
		return poly.FromComplex(x)
	case poly.Variable:
		return poly.FromVariable(x)
	case poly.Polynomial:
		return x
	}
	cerr.Throw(cerr.UnsupportedOperation, "unsupported operation")
	panic("unreachable")
}

// Add implements left + right, staying in the numeric kernel when both
// operands are plain numbers and otherwise promoting both to Polynomial.
func Add(a, b Value) Value {
	if ac, ok := asNumeric(a); ok {
		if bc, ok := asNumeric(b); ok {
			return ac.Add(bc)
		}
	}
	return toPolynomial(a).Add(toPolynomial(b))
}

// Sub implements left - right.
func Sub(a, b Value) Value {
	if ac, ok := asNumeric(a); ok {
		if bc, ok := asNumeric(b); ok {
			return ac.Sub(bc)
		}
	}
	return toPolynomial(a).Sub(toPolynomial(b))
}

// Mul implements left * right.
func Mul(a, b Value) Value {
	if ac, ok := asNumeric(a); ok {
		if bc, ok := asNumeric(b); ok {
			return ac.Mul(bc)
		}
	}
	return toPolynomial(a).Mul(toPolynomial(b))
}

// Div implements left / right: numeric/numeric stays in the kernel,
// polynomial/number scales coefficients, polynomial/polynomial delegates
// to poly.Polynomial.Div (single-term divisor only).
func Div(a, b Value, conf *config.Config) Value {
	if ac, ok := asNumeric(a); ok {
		if bc, ok := asNumeric(b); ok {
			return ac.Div(bc, conf)
		}
	}
	pa := toPolynomial(a)
	if bc, ok := asNumeric(b); ok {
		return pa.DivNumber(bc, conf)
	}
	return pa.Div(toPolynomial(b), conf)
}

// Mod implements left % right; only defined for real numeric operands,
// unlike the other reserved-but-unimplemented symbols.
func Mod(a, b Value) Value {
	ac, ok := asNumeric(a)
	bc, ok2 := asNumeric(b)
	if !ok || !ok2 {
		cerr.Throw(cerr.UnsupportedOperation, "unsupported operation")
	}
	return ac.Mod(bc)
}

// Pow implements left ^ right. A Variable base scales its own degree;
// any other base promotes through the numeric kernel (numbers) or
// polynomial integer power (polynomials). The exponent must itself be a
// plain number.
func Pow(a, b Value, conf *config.Config) Value {
	exp, ok := asNumeric(b)
	if !ok {
		cerr.Throw(cerr.UnsupportedOperation, "unsupported operation")
	}
	if v, ok := a.(poly.Variable); ok {
		return v.Pow(exp.Real)
	}
	if ac, ok := asNumeric(a); ok {
		return numeric.Pow(ac, exp.Real, conf)
	}
	return toPolynomial(a).Pow(exp.Real, conf)
}

// Neg implements unary minus.
func Neg(a Value) Value {
	if ac, ok := asNumeric(a); ok {
		return ac.Neg()
	}
	return toPolynomial(a).Neg()
}
