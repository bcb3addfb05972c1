// Package latency converts an effective refractive index and a path
// geometry into propagation delay, optionally stacked with fixed per-link
// system overhead (SerDes, FEC, switch traversal).
package latency

import (
	"math"

	"github.com/nickharris808/AI-Interconnect-Latency-Benchmark/pkg/material"
)

// TimeOfFlightNs returns the propagation delay over distanceM meters of a
// medium with refractive index n, in nanoseconds:
//
//	t = d·n/c, doubled for round trip.
func TimeOfFlightNs(distanceM, n float64, roundTrip bool) float64 {
	t := distanceM * n / material.CVacuumMPerS * 1e9
	if roundTrip {
		t *= 2
	}
	return t
}

// Breakdown separates one link's latency into the time-of-flight
// component, which a lower-index medium can reduce, and the fixed system
// overhead, which it cannot.
type Breakdown struct {
	TimeOfFlightNs float64 `json:"tof_ns"`
	OverheadNs     float64 `json:"overhead_ns"`
	TotalNs        float64 `json:"total_ns"`
	// TofFraction = tof / (tof + overhead). Near 1.0 the link is
	// propagation-bound and a faster medium pays off; near 0 the fixed
	// overhead dominates and it cannot.
	TofFraction float64 `json:"tof_fraction"`
}

// Link computes the latency breakdown for one optical link through the
// named medium under the named overhead scenario. Unknown medium or
// scenario keys are rejected at this boundary.
func Link(distanceM float64, mediumKey, scenarioKey string, roundTrip bool) (Breakdown, error) {
	if math.IsNaN(distanceM) || distanceM < 0 {
		return Breakdown{}, &material.InvalidParameterError{
			Param:    "distance_m",
			Value:    distanceM,
			Expected: "a non-negative distance in meters",
		}
	}
	medium, err := material.MediumByKey(mediumKey)
	if err != nil {
		return Breakdown{}, err
	}
	scenario, err := ScenarioByKey(scenarioKey)
	if err != nil {
		return Breakdown{}, err
	}

	tof := TimeOfFlightNs(distanceM, medium.Index, roundTrip)
	overhead := scenario.OverheadNs(roundTrip)
	total := tof + overhead

	fraction := 0.0
	if total > 0 {
		fraction = tof / total
	}

	return Breakdown{
		TimeOfFlightNs: tof,
		OverheadNs:     overhead,
		TotalNs:        total,
		TofFraction:    fraction,
	}, nil
}
