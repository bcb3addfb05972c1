package economics

import (
	"math"

	"github.com/nickharris808/AI-Interconnect-Latency-Benchmark/pkg/material"
)

// SweepSyncRates evaluates the projection across an ordered set of
// synchronization rates, holding every other input fixed. The result is
// fully materialized in input order; each evaluation is independent.
func SweepSyncRates(in Inputs, rates []float64) ([]Projection, error) {
	projections := make([]Projection, 0, len(rates))
	for _, rate := range rates {
		in.SyncsPerSecond = rate
		p, err := Project(in)
		if err != nil {
			return nil, err
		}
		projections = append(projections, p)
	}
	return projections, nil
}

// SweepFiberFractions evaluates the projection across fiber fractions,
// holding every other input fixed.
func SweepFiberFractions(in Inputs, fractions []float64) ([]Projection, error) {
	projections := make([]Projection, 0, len(fractions))
	for _, f := range fractions {
		in.FiberFraction = f
		p, err := Project(in)
		if err != nil {
			return nil, err
		}
		projections = append(projections, p)
	}
	return projections, nil
}

// LogSpace returns n values logarithmically spaced over [min, max]
// inclusive, for rate sweeps spanning decades.
func LogSpace(min, max float64, n int) ([]float64, error) {
	if min <= 0 || max <= min {
		return nil, &material.InvalidParameterError{
			Param: "sweep_range", Value: min, Expected: "0 < min < max",
		}
	}
	if n < 2 {
		return nil, &material.InvalidParameterError{
			Param: "sweep_points", Value: n, Expected: "at least 2 points",
		}
	}

	out := make([]float64, n)
	logMin, logMax := math.Log10(min), math.Log10(max)
	for i := 0; i < n; i++ {
		out[i] = math.Pow(10, logMin+(logMax-logMin)*float64(i)/float64(n-1))
	}
	return out, nil
}
