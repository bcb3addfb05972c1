package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/nickharris808/AI-Interconnect-Latency-Benchmark/pkg/dispersion"
	"github.com/nickharris808/AI-Interconnect-Latency-Benchmark/pkg/economics"
	"github.com/nickharris808/AI-Interconnect-Latency-Benchmark/pkg/emt"
	"github.com/nickharris808/AI-Interconnect-Latency-Benchmark/pkg/latency"
	"github.com/nickharris808/AI-Interconnect-Latency-Benchmark/pkg/material"
	"github.com/nickharris808/AI-Interconnect-Latency-Benchmark/pkg/profile"
)

// superluminalThreshold: composites below this index beat conventional
// glass (n ~1.45) by enough to matter; the name is marketing, not physics.
const superluminalThreshold = 1.20

func emitJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func runIndex(voidFraction, solidIndex float64, asJSON bool) error {
	comp := emt.Composition{VoidFraction: voidFraction}

	results := make([]emt.Result, 0, len(emt.Methods()))
	for _, method := range emt.Methods() {
		r, err := emt.EffectiveIndex(comp, solidIndex, method)
		if err != nil {
			return fmt.Errorf("solving %s: %w", method, err)
		}
		if !r.Converged {
			slog.Warn("solver exhausted its iteration budget; reporting best effort",
				"method", method, "iterations", r.Iterations)
		}
		results = append(results, r)
	}

	if asJSON {
		return emitJSON(map[string]any{
			"void_fraction": voidFraction,
			"solid_index":   solidIndex,
			"results":       results,
		})
	}

	printIndexTable(voidFraction, solidIndex, results)
	return nil
}

func runDispersion(voidFraction, minUM, maxUM float64, steps int, asJSON bool) error {
	grid, err := dispersion.WavelengthGrid(minUM, maxUM, steps)
	if err != nil {
		return fmt.Errorf("building wavelength grid: %w", err)
	}

	comp := emt.Composition{VoidFraction: voidFraction}
	points, err := dispersion.Curve(comp, grid)
	if err != nil {
		return fmt.Errorf("evaluating dispersion curve: %w", err)
	}

	for _, p := range points {
		if !p.InValidatedRange {
			slog.Warn("wavelength outside the validated Sellmeier fit range",
				"lambda_um", p.LambdaUM,
				"valid_range", fmt.Sprintf("[%.2f, %.2f]", dispersion.MinValidUM, dispersion.MaxValidUM))
		}
	}

	if asJSON {
		return emitJSON(map[string]any{
			"void_fraction": voidFraction,
			"points":        points,
		})
	}

	printDispersionTable(voidFraction, points)
	return nil
}

func runSensitivity(voidFraction, solidIndex, uncertaintyPct float64, asJSON bool) error {
	opts := emt.DefaultSensitivityOptions()
	opts.UncertaintyPct = uncertaintyPct

	r, err := emt.Sensitivity(emt.Composition{VoidFraction: voidFraction}, solidIndex, opts)
	if err != nil {
		return fmt.Errorf("sensitivity analysis: %w", err)
	}

	if asJSON {
		return emitJSON(map[string]any{
			"void_fraction":   voidFraction,
			"solid_index":     solidIndex,
			"uncertainty_pct": uncertaintyPct,
			"result":          r,
		})
	}

	printSensitivityReport(voidFraction, solidIndex, uncertaintyPct, r)
	return nil
}

// mediumBreakdown pairs a medium with its link breakdown for rendering.
type mediumBreakdown struct {
	Medium    material.Medium   `json:"medium"`
	Breakdown latency.Breakdown `json:"breakdown"`
}

func runLatency(distanceM float64, mediumKey, scenarioKey string, roundTrip, asJSON bool) error {
	keys := material.MediumKeys()
	if mediumKey != "" {
		keys = []string{mediumKey}
	}

	rows := make([]mediumBreakdown, 0, len(keys))
	for _, key := range keys {
		b, err := latency.Link(distanceM, key, scenarioKey, roundTrip)
		if err != nil {
			return fmt.Errorf("computing link latency: %w", err)
		}
		m, err := material.MediumByKey(key)
		if err != nil {
			return err
		}
		rows = append(rows, mediumBreakdown{Medium: m, Breakdown: b})
	}

	if asJSON {
		return emitJSON(map[string]any{
			"distance_m": distanceM,
			"scenario":   scenarioKey,
			"round_trip": roundTrip,
			"links":      rows,
		})
	}

	printLatencyTable(distanceM, scenarioKey, roundTrip, rows)
	return nil
}

// loadAndValidate loads the cluster profile and runs schema and physical
// validation.
func loadAndValidate(projectPath string) (*profile.ClusterProfile, error) {
	p, err := profile.LoadProject(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}
	slog.Debug("profile loaded", "path", projectPath, "chip", p.Chip,
		"gpus", p.Cluster.TotalGPUs)

	report := profile.Validate(p)
	if !report.Valid {
		printValidationReport(report)
		return nil, fmt.Errorf("profile has validation errors")
	}
	if len(report.Warnings) > 0 {
		printValidationReport(report)
	}
	return p, nil
}

func runProject(projectPath string, fiberFraction, syncRate float64, asJSON bool) error {
	p, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}

	in := profile.Inputs(p)
	if fiberFraction >= 0 {
		slog.Debug("overriding fiber fraction", "profile", in.FiberFraction, "override", fiberFraction)
		in.FiberFraction = fiberFraction
	}
	if syncRate >= 0 {
		slog.Debug("overriding sync rate", "profile", in.SyncsPerSecond, "override", syncRate)
		in.SyncsPerSecond = syncRate
	}

	projection, err := economics.Project(in)
	if err != nil {
		return fmt.Errorf("projecting savings: %w", err)
	}

	if asJSON {
		return emitJSON(map[string]any{
			"profile":    p,
			"projection": projection,
		})
	}

	printProjectionReport(p, projection)
	return nil
}

func runSweep(projectPath string, minRate, maxRate float64, points int, asJSON bool) error {
	p, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}

	rates, err := economics.LogSpace(minRate, maxRate, points)
	if err != nil {
		return fmt.Errorf("building sweep grid: %w", err)
	}

	projections, err := economics.SweepSyncRates(profile.Inputs(p), rates)
	if err != nil {
		return fmt.Errorf("sweeping sync rates: %w", err)
	}

	if asJSON {
		return emitJSON(map[string]any{
			"profile":     p,
			"projections": projections,
		})
	}

	printSweepTable(p, projections)
	return nil
}
