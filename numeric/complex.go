// Package numeric implements the numeric kernel: exact-looking complex
// numbers over (real, imag) float64 components, their arithmetic, and a
// bisection-based square root. It is grounded on ivy's value.Complex —
// the components are exported fields rather than accessor methods, with
// the same Errorf-via-panic error
// convention — generalized down from ivy's arbitrary-precision tower to
// the float64 pair this language's numbers actually need; this system
// has no arbitrary-precision requirement.
package numeric

import (
	"strconv"
	"strings"

	"computor.dev/computor/cerr"
	"computor.dev/computor/config"
)

// Complex is a pair (real, imag) of float64 components. A zero imag means
// the value is treated as real; equality is componentwise and ordering
// compares only the real part, by design.
type Complex struct {
	Real float64
	Imag float64
}

// Zero is the additive identity.
var Zero = Complex{}

// One is the multiplicative identity.
var One = Complex{Real: 1}

// FromInt builds a real Complex from an integer.
func FromInt(n int) Complex {
	return Complex{Real: float64(n)}
}

// FromFloat builds a real Complex from a float64.
func FromFloat(f float64) Complex {
	return Complex{Real: f}
}

// FromImag builds a purely imaginary Complex.
func FromImag(f float64) Complex {
	return Complex{Imag: f}
}

// Parse builds a Complex from a NUMBER lexeme: a plain decimal such as
// "3" or "9.3", or a trailing-"i" imaginary literal such as "5i" or bare
// "i" (magnitude 1). A trailing "i" strips the suffix and builds a pure
// imaginary via FromImag rather than handing "i" itself to ParseFloat.
func Parse(s string) (Complex, error) {
	if strings.HasSuffix(s, "i") {
		mag := strings.TrimSuffix(s, "i")
		if mag == "" {
			return FromImag(1), nil
		}
		f, err := strconv.ParseFloat(mag, 64)
		if err != nil {
			return Complex{}, cerr.New(cerr.Syntax, "wrong number: %s", s)
		}
		return FromImag(f), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Complex{}, cerr.New(cerr.Syntax, "wrong number: %s", s)
	}
	return Complex{Real: f}, nil
}

// IsReal reports whether the imaginary component is zero.
func (c Complex) IsReal() bool {
	return c.Imag == 0
}

// IsZero reports whether both components are zero.
func (c Complex) IsZero() bool {
	return c.Real == 0 && c.Imag == 0
}

// Equal compares components directly (no tolerance; see Round for the
// only places values are snapped to integers).
func (c Complex) Equal(d Complex) bool {
	return c.Real == d.Real && c.Imag == d.Imag
}

// Less orders by real part only; imag is ignored by design.
func (c Complex) Less(d Complex) bool {
	return c.Real < d.Real
}

// LessOrEqual orders by real part only.
func (c Complex) LessOrEqual(d Complex) bool {
	return c.Real <= d.Real
}

// Neg negates both components.
func (c Complex) Neg() Complex {
	return Complex{Real: -c.Real, Imag: -c.Imag}
}

// Abs returns c unchanged when it has a non-zero imaginary part, and
// otherwise the absolute value of the real part.
func (c Complex) Abs() Complex {
	if c.Imag != 0 {
		return c
	}
	if c.Real < 0 {
		return Complex{Real: -c.Real}
	}
	return c
}

// Add implements (a+bi) + (c+di) = (a+c) + (b+d)i.
func (c Complex) Add(d Complex) Complex {
	return Complex{Real: c.Real + d.Real, Imag: c.Imag + d.Imag}
}

// Sub implements (a+bi) - (c+di) = (a-c) + (b-d)i.
func (c Complex) Sub(d Complex) Complex {
	return Complex{Real: c.Real - d.Real, Imag: c.Imag - d.Imag}
}

// Mul implements (a+bi)*(c+di) = (ac-bd) + (ad+bc)i.
func (c Complex) Mul(d Complex) Complex {
	return Complex{
		Real: c.Real*d.Real - c.Imag*d.Imag,
		Imag: c.Real*d.Imag + c.Imag*d.Real,
	}
}

// Div implements (a+bi)/(c+di), failing with DivisionByZero when c=d=0.
// The result is rounded immediately after division to suppress
// 1.9999999-style artefacts; the half-power in Pow is the only other
// place a result is rounded.
func (c Complex) Div(d Complex, conf *config.Config) Complex {
	if d.Real == 0 && d.Imag == 0 {
		cerr.Throw(cerr.DivisionByZero, "division by zero")
	}
	denom := d.Real*d.Real + d.Imag*d.Imag
	real := (c.Real*d.Real + c.Imag*d.Imag) / denom
	imag := (c.Imag*d.Real - c.Real*d.Imag) / denom
	return Complex{Real: Round(real, conf), Imag: Round(imag, conf)}.normalizeImagZero()
}

// Mod implements the real-only remainder operator. Unlike
// FunctionName/Constant/Needle/TimesMatrix, Modulo gets real semantics
// here because `%` already has a binding power and a led handler in the
// grammar with nothing marking it unimplemented.
func (c Complex) Mod(d Complex) Complex {
	if !c.IsReal() || !d.IsReal() {
		cerr.Throw(cerr.UnsupportedOperation, "unsupported operation")
	}
	if d.Real == 0 {
		cerr.Throw(cerr.DivisionByZero, "division by zero")
	}
	r := c.Real - d.Real*float64(int64(c.Real/d.Real))
	return Complex{Real: r}
}

// normalizeImagZero collapses a -0 imaginary component produced by
// floating point cancellation back to a clean real value.
func (c Complex) normalizeImagZero() Complex {
	if c.Imag == 0 {
		return Complex{Real: c.Real}
	}
	return c
}
