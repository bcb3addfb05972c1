package emt

import "math"

// Bruggeman solver defaults.
const (
	DefaultTolerance     = 1e-10
	DefaultMaxIterations = 100

	// derivGuard: below this derivative magnitude the Newton step would
	// amplify rounding noise, so a bisection step is substituted.
	derivGuard = 1e-15
)

// Bruggeman solves the symmetric effective-medium equation
//
//	f1·(eps1 − e)/(eps1 + 2e) + f2·(eps2 − e)/(eps2 + 2e) = 0,  f2 = 1 − f1
//
// for e = eps_eff by Newton-Raphson, starting from the linear average
// f1·eps1 + f2·eps2. Near-stationary derivatives fall back to a bisection
// step toward the midpoint of [eps1, eps2], and every update is clamped
// into that interval, where the physical solution must lie.
//
// Passing tol <= 0 or maxIter <= 0 selects the defaults. Exhausting the
// iteration budget is not an error: the last estimate is returned with
// Converged=false so callers can decide whether a best-effort value is
// acceptable.
func Bruggeman(f1, eps1, eps2, tol float64, maxIter int) (Result, error) {
	if err := validateFraction("f1", f1); err != nil {
		return Result{}, err
	}
	if err := validateEps("eps1", eps1); err != nil {
		return Result{}, err
	}
	if err := validateEps("eps2", eps2); err != nil {
		return Result{}, err
	}
	if tol <= 0 {
		tol = DefaultTolerance
	}
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}

	f2 := 1.0 - f1
	lo, hi := math.Min(eps1, eps2), math.Max(eps1, eps2)
	eps := f1*eps1 + f2*eps2

	for it := 0; it < maxIter; it++ {
		res := f1*(eps1-eps)/(eps1+2*eps) + f2*(eps2-eps)/(eps2+2*eps)
		if math.Abs(res) < tol {
			return Result{
				Method:     MethodBruggeman,
				Index:      math.Sqrt(eps),
				EpsEff:     eps,
				Converged:  true,
				Iterations: it,
			}, nil
		}

		// d/de of each term fi·(ei − e)/(ei + 2e) is −3·fi·ei/(ei + 2e)².
		d1 := eps1 + 2*eps
		d2 := eps2 + 2*eps
		deriv := -3 * (f1*eps1/(d1*d1) + f2*eps2/(d2*d2))

		if math.Abs(deriv) < derivGuard {
			eps = 0.5 * (eps + 0.5*(lo+hi))
		} else {
			eps -= res / deriv
		}
		if eps < lo {
			eps = lo
		} else if eps > hi {
			eps = hi
		}
	}

	return Result{
		Method:     MethodBruggeman,
		Index:      math.Sqrt(eps),
		EpsEff:     eps,
		Converged:  false,
		Iterations: maxIter,
	}, nil
}
