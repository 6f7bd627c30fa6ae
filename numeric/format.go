package numeric

import "fmt"

// String renders c as a minimal-digit ("%g"-style) real part, a bare
// "bi" form when real is zero (coefficient 1 omitted, "0i" entirely
// suppressed), and a space-padded "a + bi" / "a - bi" form otherwise.
func (c Complex) String() string {
	if c.Imag == 0 {
		return formatG(c.Real)
	}
	if c.Real == 0 {
		return imagTerm(c.Imag)
	}
	sign := "+"
	imag := c.Imag
	if imag < 0 {
		sign = "-"
		imag = -imag
	}
	return fmt.Sprintf("%s %s %s", formatG(c.Real), sign, imagCoefficient(imag))
}

func formatG(f float64) string {
	return fmt.Sprintf("%g", f)
}

// imagTerm renders a purely imaginary value such as "5i", "-i", or "i".
// A zero imaginary component is never passed in by String, but is
// handled defensively by returning "0".
func imagTerm(imag float64) string {
	if imag == 0 {
		return "0"
	}
	if imag < 0 {
		return "-" + imagCoefficient(-imag)
	}
	return imagCoefficient(imag)
}

// imagCoefficient formats the magnitude of an imaginary component,
// omitting the "1" coefficient.
func imagCoefficient(imag float64) string {
	if imag == 1 {
		return "i"
	}
	return formatG(imag) + "i"
}
