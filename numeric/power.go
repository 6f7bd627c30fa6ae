package numeric

import (
	"math"

	"computor.dev/computor/cerr"
	"computor.dev/computor/config"
)

// Pow raises c to the given power. Integer powers use iterative squaring
// rather than recursion, bounded explicitly by conf.MaxPowerExponent
// rather than relying on a caught stack overflow. The only supported
// fractional power is 0.5 (square root), and only on a real operand;
// anything else is UnsupportedOperation.
func Pow(c Complex, power float64, conf *config.Config) Complex {
	if isInteger(power) {
		return intPow(c, int(power), conf)
	}
	if power == 0.5 {
		return halfPow(c, conf)
	}
	cerr.Throw(cerr.UnsupportedOperation, "unsupported operation")
	panic("unreachable")
}

func isInteger(f float64) bool {
	return f == math.Trunc(f)
}

// intPow computes c^n by iterative squaring, bounded by
// conf.MaxPowerExponent so no input can force unbounded work.
func intPow(c Complex, n int, conf *config.Config) Complex {
	if c.IsZero() && n < 0 {
		cerr.Throw(cerr.DivisionByZero, "trying to get a negative power of zero")
	}
	if n < 0 {
		return One.Div(intPow(c, -n, conf), conf)
	}
	if n > conf.MaxPowerExponent() {
		cerr.Throw(cerr.Math, "too big power")
	}
	result := One
	base := c
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	return result
}

// halfPow implements z^0.5 for a real z via bisection on f(x) = x^2 - n
// over [0, max(n, 1)] for n >= 0, and returns sqrt(|n|)i directly for
// n < 0. The upper bound is at least 1 so the interval holds the root
// when n < 1 as well.
func halfPow(c Complex, conf *config.Config) Complex {
	if !c.IsReal() {
		cerr.Throw(cerr.UnsupportedOperation, "unsupported operation")
	}
	n := c.Real
	if n < 0 {
		root := Bisect(func(x float64) float64 { return x*x - (-n) }, 0, math.Max(-n, 1), conf)
		return Complex{Imag: Round(root, conf)}
	}
	root := Bisect(func(x float64) float64 { return x*x - n }, 0, math.Max(n, 1), conf)
	return Complex{Real: Round(root, conf)}
}
