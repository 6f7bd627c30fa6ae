package poly

import (
	"sort"
	"strings"

	"computor.dev/computor/cerr"
	"computor.dev/computor/config"
	"computor.dev/computor/numeric"
)

// Term is a coefficient paired with an unordered multiset of Variables.
// Variables is kept exactly as accumulated by construction/multiplication/
// division; VariablesReduced computes the canonical fused-and-sorted form
// on demand.
type Term struct {
	Coeff     numeric.Complex
	Variables []Variable
}

// NewConstantTerm builds a coefficient-only term (no variables).
func NewConstantTerm(c numeric.Complex) Term {
	return Term{Coeff: c}
}

// NewVariableTerm builds a single-variable, coefficient-1 term.
func NewVariableTerm(v Variable) Term {
	return Term{Coeff: numeric.One, Variables: []Variable{v}}
}

// VariablesReduced sorts Variables by name and fuses same-named entries by
// summing degrees, dropping any that land on degree 0.
func (t Term) VariablesReduced() []Variable {
	byName := make(map[string]*Variable)
	var order []string
	for _, v := range t.Variables {
		key := v.Key()
		if existing, ok := byName[key]; ok {
			existing.Degree += v.Degree
			continue
		}
		cp := v
		byName[key] = &cp
		order = append(order, key)
	}
	sort.Strings(order)
	reduced := make([]Variable, 0, len(order))
	for _, key := range order {
		v := byName[key]
		if v.Degree != 0 {
			reduced = append(reduced, *v)
		}
	}
	return reduced
}

// Key is the canonical grouping key for like-term fusion: the reduced
// variable sequence rendered as "name^degree|name^degree|...".
func (t Term) Key() string {
	reduced := t.VariablesReduced()
	parts := make([]string, len(reduced))
	for i, v := range reduced {
		parts[i] = v.Key() + "^" + formatDegree(v.Degree)
	}
	return strings.Join(parts, "|")
}

// Degree is the maximum variable degree of the reduced form, or 0 when
// the coefficient is 0.
func (t Term) Degree() float64 {
	if t.Coeff.IsZero() {
		return 0
	}
	max := 0.0
	for _, v := range t.VariablesReduced() {
		if v.Degree > max {
			max = v.Degree
		}
	}
	return max
}

// HasUnsupportedDegree reports whether any reduced variable carries a
// non-natural (non-integer or negative) degree.
func (t Term) HasUnsupportedDegree() bool {
	for _, v := range t.VariablesReduced() {
		if v.Degree != float64(int64(v.Degree)) || v.Degree < 0 {
			return true
		}
	}
	return false
}

// Mul concatenates variable multisets and multiplies coefficients
//.
func (t Term) Mul(o Term) Term {
	vars := make([]Variable, 0, len(t.Variables)+len(o.Variables))
	vars = append(vars, t.Variables...)
	vars = append(vars, o.Variables...)
	return Term{Coeff: t.Coeff.Mul(o.Coeff), Variables: vars}
}

// Div divides coefficients and negates the divisor's variable degrees
// before concatenation — the trick that lets x/x collapse to the constant
// term once the result is reduced.
func (t Term) Div(o Term, conf *config.Config) Term {
	if o.Coeff.IsZero() {
		cerr.Throw(cerr.DivisionByZero, "division by zero")
	}
	vars := make([]Variable, 0, len(t.Variables)+len(o.Variables))
	vars = append(vars, t.Variables...)
	for _, v := range o.Variables {
		vars = append(vars, Variable{Name: v.Name, Degree: -v.Degree})
	}
	return Term{Coeff: t.Coeff.Div(o.Coeff, conf), Variables: vars}
}

// String renders a standalone term with its full signed coefficient,
// e.g. "3 * X^2" or "X" or "(5i) * X". Polynomial.String does not call
// this — it needs the sign pulled out as a separate " + "/" - " chunk
// separator, so it formats terms directly; this method exists for
// terms printed on their own (debug output, error messages).
func (t Term) String() string {
	reduced := t.VariablesReduced()
	coeffIsUnitReal := t.Coeff.Imag == 0 && (t.Coeff.Real == 1 || t.Coeff.Real == -1)
	var parts []string
	switch {
	case t.Coeff.Imag != 0:
		parts = append(parts, "("+t.Coeff.String()+")")
	case coeffIsUnitReal && len(reduced) > 0:
		if t.Coeff.Real == -1 {
			parts = append(parts, "-1")
		}
	default:
		parts = append(parts, t.Coeff.String())
	}
	for _, v := range reduced {
		parts = append(parts, v.String())
	}
	if len(parts) == 0 {
		return "1"
	}
	return strings.Join(parts, " * ")
}
