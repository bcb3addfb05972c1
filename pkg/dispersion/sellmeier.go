// Package dispersion models the wavelength dependence of the solid phase
// via the three-term Sellmeier relation for fused silica, and composes it
// with the effective-medium solvers to produce index-vs-wavelength curves
// at a fixed composition.
package dispersion

import (
	"math"

	"github.com/nickharris808/AI-Interconnect-Latency-Benchmark/pkg/emt"
)

// Malitson (1965) Sellmeier coefficients for fused silica. Wavelengths in
// micrometers; C terms are the squared resonance wavelengths.
const (
	b1 = 0.6961663
	b2 = 0.4079426
	b3 = 0.8974794
)

const (
	c1 = 0.0684043 * 0.0684043
	c2 = 0.1162414 * 0.1162414
	c3 = 9.896161 * 9.896161
)

// Validated fit range of the Malitson coefficients, in µm. Outside it the
// series still evaluates but the fit is unverified and the resonance
// denominators grow numerically sensitive.
const (
	MinValidUM = 0.21
	MaxValidUM = 3.71
)

// singularTol rejects wavelengths landing on a Sellmeier resonance.
const singularTol = 1e-12

// Index evaluates the fused-silica Sellmeier index at the given
// wavelength:
//
//	n² = 1 + Σ Bi·λ² / (λ² − Ci)
//
// inRange reports whether the wavelength lies inside the validated fit
// range [0.21, 3.71] µm; out-of-range values are still computed and
// returned, flagged for the caller to warn about rather than reject.
func Index(lambdaUM float64) (n float64, inRange bool, err error) {
	if math.IsNaN(lambdaUM) || lambdaUM <= 0 {
		return 0, false, &emt.DomainError{
			Param:  "lambda_um",
			Value:  lambdaUM,
			Reason: "wavelength must be positive",
		}
	}

	l2 := lambdaUM * lambdaUM
	nSq := 1.0
	for _, term := range [3]struct{ b, c float64 }{{b1, c1}, {b2, c2}, {b3, c3}} {
		den := l2 - term.c
		if math.Abs(den) < singularTol {
			return 0, false, &emt.DomainError{
				Param:  "lambda_um",
				Value:  lambdaUM,
				Reason: "wavelength coincides with a Sellmeier resonance",
			}
		}
		nSq += term.b * l2 / den
	}
	if nSq <= 0 {
		return 0, false, &emt.DomainError{
			Param:  "lambda_um",
			Value:  lambdaUM,
			Reason: "Sellmeier series yields non-physical permittivity",
		}
	}

	return math.Sqrt(nSq), lambdaUM >= MinValidUM && lambdaUM <= MaxValidUM, nil
}

// Point is one sample of an index-vs-wavelength curve.
type Point struct {
	LambdaUM         float64 `json:"lambda_um"`
	SolidIndex       float64 `json:"solid_index"`
	EffectiveIndex   float64 `json:"effective_index"`
	InValidatedRange bool    `json:"in_validated_range"`
}

// Curve evaluates the dispersion of the composite at a fixed composition:
// the Sellmeier solid index at each wavelength is fed through the
// Maxwell-Garnett rule. The returned slice preserves input order.
func Curve(c emt.Composition, lambdasUM []float64) ([]Point, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	points := make([]Point, 0, len(lambdasUM))
	for _, l := range lambdasUM {
		nSolid, inRange, err := Index(l)
		if err != nil {
			return nil, err
		}
		r, err := emt.EffectiveIndex(c, nSolid, emt.MethodMaxwellGarnett)
		if err != nil {
			return nil, err
		}
		points = append(points, Point{
			LambdaUM:         l,
			SolidIndex:       nSolid,
			EffectiveIndex:   r.Index,
			InValidatedRange: inRange,
		})
	}
	return points, nil
}

// WavelengthGrid returns steps+1 evenly spaced wavelengths spanning
// [minUM, maxUM] inclusive.
func WavelengthGrid(minUM, maxUM float64, steps int) ([]float64, error) {
	if minUM <= 0 || maxUM <= minUM {
		return nil, &emt.DomainError{
			Param:  "lambda_um",
			Value:  minUM,
			Reason: "wavelength range must be positive and increasing",
		}
	}
	if steps < 1 {
		steps = 1
	}

	grid := make([]float64, steps+1)
	span := maxUM - minUM
	for i := 0; i <= steps; i++ {
		grid[i] = minUM + span*float64(i)/float64(steps)
	}
	return grid, nil
}
