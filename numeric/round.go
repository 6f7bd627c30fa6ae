package numeric

import (
	"math"

	"computor.dev/computor/config"
)

// Round normalises a near-integer float (within conf.Epsilon()) to the
// nearest integer. Applied only to the result of a division (and so of a
// negative integer power) and of a half-power — never to other algebraic
// intermediates. String does not round.
func Round(n float64, conf *config.Config) float64 {
	eps := conf.Epsilon()
	base := math.Trunc(n)
	sign := 1.0
	if n < 0 {
		sign = -1
	}
	absN := math.Abs(n)
	absBase := math.Abs(base)
	switch {
	case absN+eps >= absBase+1:
		return sign * (absBase + 1)
	case absN-eps <= absBase:
		return sign * absBase
	default:
		return n
	}
}
