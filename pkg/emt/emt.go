// Package emt estimates the effective refractive index of a two-phase
// void/solid composite using classical effective medium theory. Three
// mixing rules are provided: Maxwell-Garnett (closed form, dilute
// inclusions), Bruggeman (symmetric, solved iteratively), and a linear
// volume average kept purely as a reference curve.
//
// All permittivities are relative (eps = n²). Every solver is a pure
// function of its inputs and returns a fresh Result.
package emt

import (
	"math"

	"github.com/nickharris808/AI-Interconnect-Latency-Benchmark/pkg/material"
)

// Mixing rule identifiers.
const (
	MethodMaxwellGarnett = "maxwell_garnett"
	MethodBruggeman      = "bruggeman"
	MethodLinear         = "linear"
)

// mgDenominatorTol guards the Maxwell-Garnett closed form against an
// ill-posed composition/permittivity pair. Normal boundary values (f = 0
// or 1 with physical permittivities) never approach it.
const mgDenominatorTol = 1e-10

// Composition is an ordered pair of volume fractions for a two-phase
// void/solid composite. Only the void fraction is stored; the solid
// fraction is its complement. Fractions of exactly 0 or 1 are valid
// boundary cases (pure solid, pure void).
type Composition struct {
	VoidFraction float64 `json:"void_fraction"`
}

// SolidFraction returns the solid-phase volume fraction.
func (c Composition) SolidFraction() float64 {
	return 1.0 - c.VoidFraction
}

// Validate checks that both fractions lie in [0,1].
func (c Composition) Validate() error {
	return validateFraction("void_fraction", c.VoidFraction)
}

// Result is the outcome of one solver invocation. Closed-form methods
// report Converged=true with zero iterations; Bruggeman reports its
// Newton-Raphson iteration count and whether tolerance was met.
type Result struct {
	Method     string  `json:"method"`
	Index      float64 `json:"n_eff"`
	EpsEff     float64 `json:"eps_eff"`
	Converged  bool    `json:"converged"`
	Iterations int     `json:"iterations"`
}

// MaxwellGarnett computes the effective permittivity of dilute spherical
// inclusions (eps_incl, volume fraction f) embedded in a host medium:
//
//	eps_eff = eps_h · (eps_i + 2·eps_h + 2f·(eps_i − eps_h)) /
//	                  (eps_i + 2·eps_h −  f·(eps_i − eps_h))
//
// The rule is asymmetric: which phase is "inclusion" matters. Accuracy
// degrades as f grows beyond the dilute regime.
func MaxwellGarnett(fInclusion, epsInclusion, epsHost float64) (Result, error) {
	if err := validateFraction("f_inclusion", fInclusion); err != nil {
		return Result{}, err
	}
	if err := validateEps("eps_inclusion", epsInclusion); err != nil {
		return Result{}, err
	}
	if err := validateEps("eps_host", epsHost); err != nil {
		return Result{}, err
	}

	contrast := epsInclusion - epsHost
	den := epsInclusion + 2*epsHost - fInclusion*contrast
	if math.Abs(den) < mgDenominatorTol {
		return Result{}, &DomainError{
			Param:  "eps_inclusion",
			Value:  epsInclusion,
			Reason: "Maxwell-Garnett denominator vanishes for this composition",
		}
	}

	epsEff := epsHost * (epsInclusion + 2*epsHost + 2*fInclusion*contrast) / den
	return Result{
		Method:    MethodMaxwellGarnett,
		Index:     math.Sqrt(epsEff),
		EpsEff:    epsEff,
		Converged: true,
	}, nil
}

// LinearAverage mixes refractive indices by volume fraction:
// n_eff = f1·n1 + f2·n2. This is not a physically valid optical mixing
// rule; it is provided only as a reference curve for comparison plots and
// must never be used as the default method.
func LinearAverage(f1, n1, n2 float64) (Result, error) {
	if err := validateFraction("f1", f1); err != nil {
		return Result{}, err
	}
	if err := validateIndex("n1", n1); err != nil {
		return Result{}, err
	}
	if err := validateIndex("n2", n2); err != nil {
		return Result{}, err
	}

	n := f1*n1 + (1.0-f1)*n2
	return Result{
		Method:    MethodLinear,
		Index:     n,
		EpsEff:    n * n,
		Converged: true,
	}, nil
}

// EffectiveIndex evaluates the named mixing rule for an air-void/solid
// composite, treating the solid phase as the inclusion in a void host
// (the architected-lattice orientation). The void permittivity is exactly
// 1.0, so the resulting index is always in [1, nSolid].
func EffectiveIndex(c Composition, nSolid float64, method string) (Result, error) {
	if err := c.Validate(); err != nil {
		return Result{}, err
	}
	if err := validateIndex("n_solid", nSolid); err != nil {
		return Result{}, err
	}

	const epsVoid = 1.0
	epsSolid := nSolid * nSolid
	fSolid := c.SolidFraction()

	switch method {
	case MethodMaxwellGarnett:
		return MaxwellGarnett(fSolid, epsSolid, epsVoid)
	case MethodBruggeman:
		return Bruggeman(fSolid, epsSolid, epsVoid, DefaultTolerance, DefaultMaxIterations)
	case MethodLinear:
		return LinearAverage(fSolid, nSolid, 1.0)
	default:
		return Result{}, &material.InvalidParameterError{
			Param:    "method",
			Value:    method,
			Expected: "one of maxwell_garnett, bruggeman, linear",
		}
	}
}

// Methods returns the mixing rule identifiers in cross-validation order.
func Methods() []string {
	return []string{MethodMaxwellGarnett, MethodBruggeman, MethodLinear}
}

func validateFraction(param string, f float64) error {
	if math.IsNaN(f) || f < 0 || f > 1 {
		return &DomainError{Param: param, Value: f, Reason: "volume fraction must be in [0,1]"}
	}
	return nil
}

func validateEps(param string, eps float64) error {
	if math.IsNaN(eps) || eps <= 0 {
		return &DomainError{Param: param, Value: eps, Reason: "permittivity must be positive"}
	}
	return nil
}

func validateIndex(param string, n float64) error {
	if math.IsNaN(n) || n < 1.0 {
		return &DomainError{Param: param, Value: n, Reason: "refractive index must be at least 1.0"}
	}
	return nil
}
