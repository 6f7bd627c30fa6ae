package poly

import (
	"sort"
	"strings"

	"computor.dev/computor/cerr"
	"computor.dev/computor/config"
	"computor.dev/computor/numeric"
)

// Polynomial is a sequence of Terms. Terms is the raw, unreduced
// accumulation; Reduced computes the canonical form (zero terms dropped,
// like terms fused, sorted by reduced-variable key) on demand.
type Polynomial struct {
	Terms []Term
}

// FromComplex builds a one-term, zero-variable polynomial.
func FromComplex(c numeric.Complex) Polynomial {
	return Polynomial{Terms: []Term{NewConstantTerm(c)}}
}

// FromVariable builds a one-term, coefficient-1 polynomial.
func FromVariable(v Variable) Polynomial {
	return Polynomial{Terms: []Term{NewVariableTerm(v)}}
}

// Copy returns a polynomial with the same terms (Terms slices are treated
// as immutable, so this is a shallow copy).
func (p Polynomial) Copy() Polynomial {
	return Polynomial{Terms: p.Terms}
}

// Reduced computes the canonical form: zero-coefficient terms dropped,
// like terms (by reduced-variable key) fused by summing coefficients,
// results sorted by that key so the constant term (empty key) always
// comes first.
func (p Polynomial) Reduced() []Term {
	byKey := make(map[string]*Term)
	var order []string
	for _, t := range p.Terms {
		if t.Coeff.IsZero() {
			continue
		}
		key := t.Key()
		if existing, ok := byKey[key]; ok {
			existing.Coeff = existing.Coeff.Add(t.Coeff)
			continue
		}
		cp := Term{Coeff: t.Coeff, Variables: t.VariablesReduced()}
		byKey[key] = &cp
		order = append(order, key)
	}
	sort.Strings(order)
	reduced := make([]Term, 0, len(order))
	for _, key := range order {
		t := byKey[key]
		if !t.Coeff.IsZero() {
			reduced = append(reduced, *t)
		}
	}
	return reduced
}

// GetTerm returns the reduced term whose (single) variable carries the
// given degree, or the zero term when none does. Used by the resolver to
// pull out a, b, c.
func (p Polynomial) GetTerm(degree float64) Term {
	for _, t := range p.Reduced() {
		if degree == 0 {
			if len(t.Variables) == 0 {
				return t
			}
			continue
		}
		if len(t.Variables) == 1 && t.Variables[0].Degree == degree {
			return t
		}
	}
	return NewConstantTerm(numeric.Zero)
}

// Degree is the maximum reduced term degree, or 0 for an empty polynomial
//.
func (p Polynomial) Degree() float64 {
	max := 0.0
	for _, t := range p.Reduced() {
		if d := t.Degree(); d > max {
			max = d
		}
	}
	return max
}

// Variables returns the set of names appearing with non-zero degree in
// the reduced form.
func (p Polynomial) Variables() []string {
	seen := make(map[string]bool)
	var names []string
	for _, t := range p.Reduced() {
		for _, v := range t.Variables {
			if !seen[v.Key()] {
				seen[v.Key()] = true
				names = append(names, v.Name)
			}
		}
	}
	return names
}

// VariablesNonZero returns names that occur anywhere (not just in reduced
// form) with a negative degree — they cannot be 0 in a solution
//.
func (p Polynomial) VariablesNonZero() []string {
	seen := make(map[string]bool)
	var names []string
	for _, t := range p.Terms {
		for _, v := range t.Variables {
			if v.Degree < 0 && !seen[v.Key()] {
				seen[v.Key()] = true
				names = append(names, v.Name)
			}
		}
	}
	return names
}

// HasUnsupportedDegrees reports whether any reduced term carries a
// non-natural variable degree.
func (p Polynomial) HasUnsupportedDegrees() bool {
	for _, t := range p.Reduced() {
		if t.HasUnsupportedDegree() {
			return true
		}
	}
	return false
}

// Add concatenates term lists.
func (p Polynomial) Add(o Polynomial) Polynomial {
	return Polynomial{Terms: append(append([]Term{}, p.Terms...), o.Terms...)}
}

// Sub is Add with the right operand negated termwise.
func (p Polynomial) Sub(o Polynomial) Polynomial {
	return p.Add(o.Neg())
}

// Neg negates every term's coefficient.
func (p Polynomial) Neg() Polynomial {
	terms := make([]Term, len(p.Terms))
	for i, t := range p.Terms {
		terms[i] = Term{Coeff: t.Coeff.Neg(), Variables: t.Variables}
	}
	return Polynomial{Terms: terms}
}

// Mul is the Cartesian product of terms under term multiplication
//.
func (p Polynomial) Mul(o Polynomial) Polynomial {
	terms := make([]Term, 0, len(p.Terms)*len(o.Terms))
	for _, a := range p.Terms {
		for _, b := range o.Terms {
			terms = append(terms, a.Mul(b))
		}
	}
	return Polynomial{Terms: terms}
}

// DivNumber scales each coefficient by c (division by a plain number).
func (p Polynomial) DivNumber(c numeric.Complex, conf *config.Config) Polynomial {
	if c.IsZero() {
		cerr.Throw(cerr.DivisionByZero, "division by zero")
	}
	terms := make([]Term, len(p.Terms))
	for i, t := range p.Terms {
		terms[i] = Term{Coeff: t.Coeff.Div(c, conf), Variables: t.Variables}
	}
	return Polynomial{Terms: terms}
}

// Div divides by another polynomial: a single-term divisor divides
// term-by-term, a multi-term divisor is UnsupportedOperation, and the
// zero polynomial is DivisionByZero.
func (p Polynomial) Div(o Polynomial, conf *config.Config) Polynomial {
	reducedDivisor := o.Reduced()
	if len(reducedDivisor) == 0 {
		cerr.Throw(cerr.DivisionByZero, "division by zero")
	}
	if len(reducedDivisor) > 1 {
		cerr.Throw(cerr.UnsupportedOperation, "cannot divide by a polynomial with multiple terms")
	}
	divisor := reducedDivisor[0]
	terms := make([]Term, len(p.Terms))
	for i, t := range p.Terms {
		terms[i] = t.Div(divisor, conf)
	}
	return Polynomial{Terms: terms}
}

// Pow repeats multiplication for a non-negative integer power; any other
// power is UnsupportedOperation. Integer power is bounded
// by conf.MaxPowerExponent, the same cap the numeric kernel uses, so a
// pathological exponent fails cleanly instead of looping.
func (p Polynomial) Pow(power float64, conf *config.Config) Polynomial {
	if power != float64(int64(power)) || power < 0 {
		cerr.Throw(cerr.UnsupportedOperation, "unsupported operation")
	}
	n := int64(power)
	if n == 0 {
		return FromComplex(numeric.One)
	}
	if int(n) > conf.MaxPowerExponent() {
		cerr.Throw(cerr.Math, "too big power")
	}
	result := p
	for i := int64(1); i < n; i++ {
		result = result.Mul(p)
	}
	return result
}

// String renders reduced terms in order, separated by " + " or " - ",
// with the leading term's "+" omitted and a coefficient of 1 omitted
// when a variable is present.
func (p Polynomial) String() string {
	reduced := p.Reduced()
	if len(reduced) == 0 {
		return "0"
	}
	var chunks []string
	for i, t := range reduced {
		var sign, body string
		if t.Coeff.Imag != 0 {
			if i > 0 {
				sign = "+"
			}
			body = "(" + t.Coeff.String() + ")"
		} else {
			if t.Coeff.Real < 0 {
				sign = "-"
			} else if i > 0 {
				sign = "+"
			}
			mag := t.Coeff.Abs()
			if mag.Real == 1 && len(t.Variables) > 0 {
				body = ""
			} else {
				body = mag.String()
			}
		}
		parts := []string{}
		if body != "" {
			parts = append(parts, body)
		}
		for _, v := range t.Variables {
			parts = append(parts, v.String())
		}
		term := strings.Join(parts, " * ")
		if i == 0 {
			chunks = append(chunks, sign+term)
		} else {
			chunks = append(chunks, sign+" "+term)
		}
	}
	return strings.Join(chunks, " ")
}
