package profile

import (
	"github.com/nickharris808/AI-Interconnect-Latency-Benchmark/pkg/latency"
	"github.com/nickharris808/AI-Interconnect-Latency-Benchmark/pkg/material"
	"github.com/nickharris808/AI-Interconnect-Latency-Benchmark/pkg/validation"
)

// Plausibility bounds for physical-level warnings.
const (
	maxPlausibleSyncRate  = 100_000.0 // syncs/s
	maxPlausibleDistanceM = 2000.0    // beyond a single building
	minUsefulFiberFrac    = 0.05
)

// Validate runs schema validation (presence, ranges, registry keys) and
// physical plausibility checks on a parsed profile.
func Validate(p *ClusterProfile) *validation.Report {
	r := validation.NewReport()

	validateCluster(p, r)
	validateInterconnect(p, r)
	validateEconomics(p, r)

	return r
}

func validateCluster(p *ClusterProfile, r *validation.Report) {
	c := p.Cluster

	if c.TotalGPUs <= 0 {
		r.AddError(validation.Result{
			Level:       validation.LevelSchema,
			Message:     "total_gpus must be greater than 0",
			ProfilePath: "cluster.total_gpus",
			ActualValue: c.TotalGPUs,
			Expected:    "> 0",
		})
	}
	if c.SyncsPerSecond < 0 {
		r.AddError(validation.Result{
			Level:       validation.LevelSchema,
			Message:     "syncs_per_second cannot be negative",
			ProfilePath: "cluster.syncs_per_second",
			ActualValue: c.SyncsPerSecond,
			Expected:    ">= 0",
		})
	} else if c.SyncsPerSecond > maxPlausibleSyncRate {
		r.AddWarning(validation.Result{
			Level:       validation.LevelPhysical,
			Message:     "synchronization rate exceeds any published training workload",
			ProfilePath: "cluster.syncs_per_second",
			ActualValue: c.SyncsPerSecond,
			Expected:    "<= 100000",
		})
	}
	if c.GradientSyncHops <= 0 {
		r.AddError(validation.Result{
			Level:       validation.LevelSchema,
			Message:     "gradient_sync_hops must be greater than 0",
			ProfilePath: "cluster.gradient_sync_hops",
			ActualValue: c.GradientSyncHops,
			Expected:    "> 0",
		})
	}
	if c.FiberFraction < 0 || c.FiberFraction > 1 {
		r.AddError(validation.Result{
			Level:       validation.LevelSchema,
			Message:     "fiber_fraction must be a fraction in [0,1]",
			ProfilePath: "cluster.fiber_fraction",
			ActualValue: c.FiberFraction,
			Expected:    "[0, 1]",
		})
	} else if c.FiberFraction < minUsefulFiberFrac {
		r.AddWarning(validation.Result{
			Level:       validation.LevelPhysical,
			Message:     "almost no traffic traverses optical links; medium choice barely matters",
			ProfilePath: "cluster.fiber_fraction",
			ActualValue: c.FiberFraction,
		})
	}
}

func validateInterconnect(p *ClusterProfile, r *validation.Report) {
	ic := p.Interconnect

	if ic.ClusterDistanceM <= 0 {
		r.AddError(validation.Result{
			Level:       validation.LevelSchema,
			Message:     "cluster_distance_m must be greater than 0",
			ProfilePath: "interconnect.cluster_distance_m",
			ActualValue: ic.ClusterDistanceM,
			Expected:    "> 0",
		})
	} else if ic.ClusterDistanceM > maxPlausibleDistanceM {
		r.AddWarning(validation.Result{
			Level:       validation.LevelPhysical,
			Message:     "link distance exceeds a single datacenter building",
			ProfilePath: "interconnect.cluster_distance_m",
			ActualValue: ic.ClusterDistanceM,
			Expected:    "<= 2000",
		})
	}
	if ic.RackDistanceM < 0 {
		r.AddError(validation.Result{
			Level:       validation.LevelSchema,
			Message:     "rack_distance_m cannot be negative",
			ProfilePath: "interconnect.rack_distance_m",
			ActualValue: ic.RackDistanceM,
			Expected:    ">= 0",
		})
	}

	baseline := requireMedium(r, "interconnect.baseline_medium", ic.BaselineMedium)
	improved := requireMedium(r, "interconnect.improved_medium", ic.ImprovedMedium)
	if baseline != nil && improved != nil && improved.Index >= baseline.Index {
		r.AddWarning(validation.Result{
			Level:       validation.LevelPhysical,
			Message:     "improved medium is no faster than the baseline; projected savings will be zero or negative",
			ProfilePath: "interconnect.improved_medium",
			ActualValue: improved.Index,
			Expected:    "index below baseline " + baseline.Key,
		})
	}

	if ic.OverheadScenario == "" {
		r.AddError(validation.Result{
			Level:       validation.LevelSchema,
			Message:     "overhead_scenario is required",
			ProfilePath: "interconnect.overhead_scenario",
			Expected:    "one of the named overhead scenarios",
			Suggestions: latency.ScenarioKeys(),
		})
	} else if _, err := latency.ScenarioByKey(ic.OverheadScenario); err != nil {
		r.AddError(validation.Result{
			Level:       validation.LevelSchema,
			Message:     "unknown overhead scenario",
			ProfilePath: "interconnect.overhead_scenario",
			ActualValue: ic.OverheadScenario,
			Suggestions: latency.ScenarioKeys(),
		})
	}
}

func validateEconomics(p *ClusterProfile, r *validation.Report) {
	if p.Economics.GPUHourCostUSD < 0 {
		r.AddError(validation.Result{
			Level:       validation.LevelSchema,
			Message:     "gpu_hour_cost_usd cannot be negative",
			ProfilePath: "economics.gpu_hour_cost_usd",
			ActualValue: p.Economics.GPUHourCostUSD,
			Expected:    ">= 0",
		})
	}

	if p.Chip != "" {
		if _, err := material.GPUByKey(p.Chip); err != nil {
			r.AddError(validation.Result{
				Level:       validation.LevelSchema,
				Message:     "unknown chip",
				ProfilePath: "chip",
				ActualValue: p.Chip,
				Suggestions: material.GPUKeys(),
			})
		}
	}
}

// requireMedium checks a required medium key and returns its registry
// entry when known, nil otherwise.
func requireMedium(r *validation.Report, path, key string) *material.Medium {
	if key == "" {
		r.AddError(validation.Result{
			Level:       validation.LevelSchema,
			Message:     "medium is required",
			ProfilePath: path,
			Expected:    "a registered medium key",
			Suggestions: material.MediumKeys(),
		})
		return nil
	}
	m, err := material.MediumByKey(key)
	if err != nil {
		r.AddError(validation.Result{
			Level:       validation.LevelSchema,
			Message:     "unknown medium",
			ProfilePath: path,
			ActualValue: key,
			Suggestions: material.MediumKeys(),
		})
		return nil
	}
	return &m
}
