// Package poly implements the algebraic value model above numeric.Complex:
// Variable, Term, and Polynomial, with like-term reduction and the four
// arithmetic operators. Variable/Term are immutable pairs and Polynomial
// owns a term slice, laid out the way ivy's value package groups one
// type's construction/arithmetic/string methods per file.
package poly

import "fmt"

// Variable is an identifier with an integer-or-rational degree. Lookup is
// case-insensitive but the original casing is preserved for
// display.
type Variable struct {
	Name   string
	Degree float64
}

// NewVariable builds a degree-1 variable, the shape produced when a NAME
// token is first bound during parsing.
func NewVariable(name string) Variable {
	return Variable{Name: name, Degree: 1}
}

// Key returns the case-folded name used for grouping and variable-table
// lookup.
func (v Variable) Key() string {
	return foldName(v.Name)
}

// Pow raises the variable to a power by scaling its degree, matching the
// source's Variable.__pow__.
func (v Variable) Pow(power float64) Variable {
	return Variable{Name: v.Name, Degree: v.Degree * power}
}

// String renders "1" for degree 0, the bare name for degree 1, and
// "name^degree" otherwise.
func (v Variable) String() string {
	switch v.Degree {
	case 0:
		return "1"
	case 1:
		return v.Name
	default:
		return fmt.Sprintf("%s^%s", v.Name, formatDegree(v.Degree))
	}
}

func formatDegree(d float64) string {
	if d == float64(int64(d)) {
		return fmt.Sprintf("%d", int64(d))
	}
	return fmt.Sprintf("%g", d)
}

func foldName(name string) string {
	b := make([]byte, len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		b[i] = c
	}
	return string(b)
}
