// Package resolve implements the degree-classification and closed-form
// root finder for reduced polynomials of degree 0, 1, or 2, split out
// into its own package separate from polynomial algebra.
package resolve

import (
	"fmt"
	"strings"

	"computor.dev/computor/cerr"
	"computor.dev/computor/config"
	"computor.dev/computor/numeric"
	"computor.dev/computor/poly"
)

// Solution is the result of Resolve: either AnyRealNumber, an unsatisfiable
// equation (Roots == nil, Any == false), or one or two numeric roots.
type Solution struct {
	Any   bool // AnyRealNumber
	Roots []numeric.Complex
}

// Resolve classifies p's degree and returns its closed-form roots,
// checking preconditions (variable count, degree support, max degree)
// in order.
func Resolve(p poly.Polynomial, conf *config.Config) Solution {
	vars := p.Variables()
	if len(vars) > 1 {
		cerr.Throw(cerr.Resolve, "Cannot solve polynomials with multiple variables")
	}
	if p.HasUnsupportedDegrees() {
		cerr.Throw(cerr.Resolve, "Cannot solve polynomials with non-natural degrees")
	}
	degree := p.Degree()
	if degree > 2 {
		cerr.Throw(cerr.Resolve, "The polynomial degree is strictly greater than 2, I can't solve.")
	}

	a := p.GetTerm(2).Coeff
	b := p.GetTerm(1).Coeff
	c := p.GetTerm(0).Coeff

	switch {
	case degree == 0:
		if c.IsZero() {
			return Solution{Any: true}
		}
		return Solution{}
	case degree == 1:
		return Solution{Roots: []numeric.Complex{numeric.Zero.Sub(c).Div(b, conf)}}
	default:
		d := b.Mul(b).Sub(numeric.FromInt(4).Mul(a).Mul(c))
		sqrtD := numeric.Pow(d, 0.5, conf)
		denom := numeric.FromInt(2).Mul(a)
		x1 := numeric.Zero.Sub(b).Add(sqrtD).Div(denom, conf)
		x2 := numeric.Zero.Sub(b).Sub(sqrtD).Div(denom, conf)
		return Solution{Roots: []numeric.Complex{x1, x2}}
	}
}

// discriminant recomputes D so SolutionText can choose the right wording
// without re-deriving a, b, c itself.
func discriminant(p poly.Polynomial) numeric.Complex {
	a := p.GetTerm(2).Coeff
	b := p.GetTerm(1).Coeff
	c := p.GetTerm(0).Coeff
	return b.Mul(b).Sub(numeric.FromInt(4).Mul(a).Mul(c))
}

// SolutionText renders the three-line header plus a solution-shape
// specific body. Resolve errors (a *cerr.Error of Kind Resolve) are
// caught and rendered as the solution line itself rather than
// propagated, so an unsolvable equation still prints its reduced form
// and degree.
func SolutionText(p poly.Polynomial, conf *config.Config) string {
	degree := p.Degree()
	solution := resolveBody(p, degree, conf)
	return fmt.Sprintf("Reduced form: %s = 0\nPolynomial degree: %s\n%s", p.String(), formatDegree(degree), solution)
}

func resolveBody(p poly.Polynomial, degree float64, conf *config.Config) (body string) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(*cerr.Error); ok && e.Kind == cerr.Resolve {
				body = e.Detail
				return
			}
			panic(r)
		}
	}()

	sol := Resolve(p, conf)

	switch {
	case degree == 2:
		d := discriminant(p)
		x1, x2 := sol.Roots[0], sol.Roots[1]
		switch {
		case d.Real > 0:
			return fmt.Sprintf("Discriminant is strictly positive, the two solutions are:\n%s\n%s", x1, x2)
		case d.Real == 0:
			return fmt.Sprintf("Discriminant is zero, the solution is:\n%s", x1)
		default:
			return fmt.Sprintf("Discriminant is strictly negative, the two solutions are:\n%s\n%s", x1, x2)
		}
	case degree == 0:
		if sol.Any {
			nonZero := p.VariablesNonZero()
			text := "All real numbers are solutions"
			if len(nonZero) > 0 {
				suffixes := make([]string, len(nonZero))
				for i, name := range nonZero {
					suffixes[i] = name + "=0"
				}
				text += ", except " + strings.Join(suffixes, ", ")
			}
			return text
		}
		return "This equation has no solutions in our world."
	default:
		return fmt.Sprintf("The solution is:\n%s", sol.Roots[0])
	}
}

func formatDegree(d float64) string {
	return fmt.Sprintf("%d", int64(d))
}
