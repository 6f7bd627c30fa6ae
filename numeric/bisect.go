package numeric

import (
	"computor.dev/computor/cerr"
	"computor.dev/computor/config"
)

// Bisect finds a root of fn on [a, b] by the bisection method: it
// converges once (b-a)/2 falls under conf.Epsilon() or fn(mid) lands on
// zero exactly, and fails with a Math-kind error after
// conf.BisectIterations() steps. The contract assumes fn is continuous
// and opposite in sign (or zero) at the two endpoints.
func Bisect(fn func(float64) float64, a, b float64, conf *config.Config) float64 {
	eps := conf.Epsilon()
	fa := fn(a)
	for i := 0; i < conf.BisectIterations(); i++ {
		mid := (a + b) / 2
		fMid := fn(mid)
		if fMid == 0 || (b-a)/2 < eps {
			return mid
		}
		if (fMid > 0) == (fa > 0) {
			a = mid
			fa = fMid
		} else {
			b = mid
		}
	}
	cerr.Throw(cerr.Math, "could not find any solution in %d iterations", conf.BisectIterations())
	panic("unreachable")
}
