// Package economics scales per-link latency savings into fleet-wide
// daily and annual projections of recovered GPU-hours and dollars.
//
// The projection rests on a deliberate ceiling assumption: during a
// synchronization event every unit in the fleet idles for the full link
// latency. Real collectives overlap communication with compute, so the
// output is an upper bound on recoverable idle time, not a measured
// utilization loss.
package economics

import (
	"math"

	"github.com/nickharris808/AI-Interconnect-Latency-Benchmark/pkg/latency"
	"github.com/nickharris808/AI-Interconnect-Latency-Benchmark/pkg/material"
)

// Inputs are the scale parameters of one cluster projection. Media and
// scenario are registry keys, resolved (and rejected if unknown) when the
// projection runs.
type Inputs struct {
	FleetSize      int     `json:"fleet_size"`
	DistanceM      float64 `json:"distance_m"`
	SyncsPerSecond float64 `json:"syncs_per_second"`
	FiberFraction  float64 `json:"fiber_fraction"`
	HopsPerSync    int     `json:"hops_per_sync"`
	GPUHourCostUSD float64 `json:"gpu_hour_cost_usd"`
	BaselineMedium string  `json:"baseline_medium"`
	ImprovedMedium string  `json:"improved_medium"`
	Scenario       string  `json:"scenario"`
	GPU            string  `json:"gpu,omitempty"` // optional, enables wasted-ops accounting
}

// Validate checks the scale parameters. Registry keys are validated where
// they are resolved.
func (in Inputs) Validate() error {
	if in.FleetSize <= 0 {
		return &material.InvalidParameterError{
			Param: "fleet_size", Value: in.FleetSize, Expected: "a positive unit count",
		}
	}
	if math.IsNaN(in.DistanceM) || in.DistanceM < 0 {
		return &material.InvalidParameterError{
			Param: "distance_m", Value: in.DistanceM, Expected: "a non-negative distance in meters",
		}
	}
	if math.IsNaN(in.SyncsPerSecond) || in.SyncsPerSecond < 0 {
		return &material.InvalidParameterError{
			Param: "syncs_per_second", Value: in.SyncsPerSecond, Expected: "a non-negative rate",
		}
	}
	if math.IsNaN(in.FiberFraction) || in.FiberFraction < 0 || in.FiberFraction > 1 {
		return &material.InvalidParameterError{
			Param: "fiber_fraction", Value: in.FiberFraction, Expected: "a fraction in [0,1]",
		}
	}
	if in.HopsPerSync <= 0 {
		return &material.InvalidParameterError{
			Param: "hops_per_sync", Value: in.HopsPerSync, Expected: "a positive hop count",
		}
	}
	if math.IsNaN(in.GPUHourCostUSD) || in.GPUHourCostUSD < 0 {
		return &material.InvalidParameterError{
			Param: "gpu_hour_cost_usd", Value: in.GPUHourCostUSD, Expected: "a non-negative price",
		}
	}
	return nil
}

// Projection is the fully derived output for one set of inputs. It is a
// plain value object that any renderer consumes uniformly.
type Projection struct {
	Inputs Inputs `json:"inputs"`

	Baseline latency.Breakdown `json:"baseline"`
	Improved latency.Breakdown `json:"improved"`

	PerHopSavingsNs  float64 `json:"per_hop_savings_ns"`
	PerSyncSavingsNs float64 `json:"per_sync_savings_ns"`

	DailyIdleGPUHours  float64 `json:"daily_idle_gpu_hours"`
	DailyUSD           float64 `json:"daily_usd"`
	AnnualIdleGPUHours float64 `json:"annual_idle_gpu_hours"`
	AnnualUSD          float64 `json:"annual_usd"`

	WastedOpsPerSync float64  `json:"wasted_ops_per_sync,omitempty"`
	Severity         Severity `json:"severity"`
}

// Project computes the baseline-vs-improved savings projection. Per-hop
// latencies are round-trip link breakdowns; per-sync savings multiply by
// hop count, then by the effective sync rate (rate × fiber fraction) and
// the day/year lengths. Aggregate idle seconds convert to GPU-hours by
// multiplying by fleet size and dividing by seconds per hour.
func Project(in Inputs) (Projection, error) {
	if err := in.Validate(); err != nil {
		return Projection{}, err
	}
	if in.GPUHourCostUSD == 0 {
		in.GPUHourCostUSD = DefaultGPUHourCostUSD
	}

	baseline, err := latency.Link(in.DistanceM, in.BaselineMedium, in.Scenario, true)
	if err != nil {
		return Projection{}, err
	}
	improved, err := latency.Link(in.DistanceM, in.ImprovedMedium, in.Scenario, true)
	if err != nil {
		return Projection{}, err
	}

	perHop := baseline.TimeOfFlightNs - improved.TimeOfFlightNs
	perSync := float64(in.HopsPerSync) * perHop

	effectiveRate := in.SyncsPerSecond * in.FiberFraction
	dailyIdleNs := effectiveRate * SecondsPerDay * perSync
	dailyIdleGPUHours := dailyIdleNs / 1e9 * float64(in.FleetSize) / SecondsPerHour

	p := Projection{
		Inputs:             in,
		Baseline:           baseline,
		Improved:           improved,
		PerHopSavingsNs:    perHop,
		PerSyncSavingsNs:   perSync,
		DailyIdleGPUHours:  dailyIdleGPUHours,
		DailyUSD:           dailyIdleGPUHours * in.GPUHourCostUSD,
		AnnualIdleGPUHours: dailyIdleGPUHours * DaysPerYear,
		AnnualUSD:          dailyIdleGPUHours * DaysPerYear * in.GPUHourCostUSD,
	}
	p.Severity = classify(p.AnnualUSD)

	if in.GPU != "" {
		gpu, err := material.GPUByKey(in.GPU)
		if err != nil {
			return Projection{}, err
		}
		p.WastedOpsPerSync = perSync * gpu.OpsPerNs()
	}

	return p, nil
}
