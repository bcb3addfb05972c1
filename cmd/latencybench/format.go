package main

import (
	"fmt"

	"github.com/nickharris808/AI-Interconnect-Latency-Benchmark/pkg/dispersion"
	"github.com/nickharris808/AI-Interconnect-Latency-Benchmark/pkg/economics"
	"github.com/nickharris808/AI-Interconnect-Latency-Benchmark/pkg/emt"
	"github.com/nickharris808/AI-Interconnect-Latency-Benchmark/pkg/profile"
	"github.com/nickharris808/AI-Interconnect-Latency-Benchmark/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.ProfilePath != "" {
				fmt.Printf("    -> %s = %v\n", e.ProfilePath, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.ProfilePath != "" {
				fmt.Printf("    -> %s = %v\n", w.ProfilePath, w.ActualValue)
			}
			if w.Expected != "" {
				fmt.Printf("    expected: %s\n", w.Expected)
			}
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Profile: VALID (%s)\n\n", r.Summary)
	} else {
		fmt.Printf("Profile: INVALID (%s)\n\n", r.Summary)
	}
}

func printIndexTable(voidFraction, solidIndex float64, results []emt.Result) {
	fmt.Printf("Effective Index (void fraction %.1f%%, solid n = %.4f)\n", voidFraction*100, solidIndex)
	fmt.Println("=======================================================")
	fmt.Println()
	fmt.Printf("%-18s %10s %10s %11s %6s\n", "Method", "n_eff", "eps_eff", "converged", "iters")
	fmt.Printf("%-18s %10s %10s %11s %6s\n", "------------------", "----------", "----------", "-----------", "------")
	for _, r := range results {
		fmt.Printf("%-18s %10.5f %10.5f %11v %6d\n",
			r.Method, r.Index, r.EpsEff, r.Converged, r.Iterations)
	}
	fmt.Println()

	// The linear row is a reference curve, not a physical estimate.
	for _, r := range results {
		if r.Method != emt.MethodMaxwellGarnett {
			continue
		}
		if r.Index < superluminalThreshold {
			fmt.Printf("n_eff %.4f is below the %.2f low-index threshold\n", r.Index, superluminalThreshold)
		} else {
			fmt.Printf("n_eff %.4f does not reach the %.2f low-index threshold\n", r.Index, superluminalThreshold)
		}
	}
}

func printDispersionTable(voidFraction float64, points []dispersion.Point) {
	fmt.Printf("Dispersion at void fraction %.1f%% (fused-silica solid phase)\n", voidFraction*100)
	fmt.Println("=============================================================")
	fmt.Println()
	fmt.Printf("%10s %12s %12s\n", "lambda_um", "n_solid", "n_eff")
	fmt.Printf("%10s %12s %12s\n", "----------", "------------", "------------")

	flagged := false
	for _, p := range points {
		marker := " "
		if !p.InValidatedRange {
			marker = "*"
			flagged = true
		}
		fmt.Printf("%9.4f%s %12.5f %12.5f\n", p.LambdaUM, marker, p.SolidIndex, p.EffectiveIndex)
	}
	if flagged {
		fmt.Println()
		fmt.Printf("* outside the validated Sellmeier fit range [%.2f, %.2f] um\n",
			dispersion.MinValidUM, dispersion.MaxValidUM)
	}
}

func printSensitivityReport(voidFraction, solidIndex, uncertaintyPct float64, r emt.SensitivityResult) {
	fmt.Println("Sensitivity Analysis (Maxwell-Garnett)")
	fmt.Println("======================================")
	fmt.Println()
	fmt.Printf("  Operating point:     f_void = %.4f, n_solid = %.4f\n", voidFraction, solidIndex)
	fmt.Printf("  Nominal n_eff:       %.5f\n", r.NominalIndex)
	fmt.Println()
	fmt.Printf("  dn/d(void fraction): %+.5f\n", r.DIndexDVoidFraction)
	fmt.Printf("  dn/d(solid index):   %+.5f\n", r.DIndexDSolidIndex)
	fmt.Println()
	fmt.Printf("  At %.1f%% input uncertainty:\n", uncertaintyPct)
	fmt.Printf("    from void fraction: +/- %.5f\n", r.VoidFractionError)
	fmt.Printf("    from solid index:   +/- %.5f\n", r.SolidIndexError)
	fmt.Printf("    combined:           +/- %.5f\n", r.TotalError)
}

func printLatencyTable(distanceM float64, scenarioKey string, roundTrip bool, rows []mediumBreakdown) {
	trip := "round trip"
	if !roundTrip {
		trip = "one way"
	}
	fmt.Printf("Link Latency: %.0f m, %s, scenario %q\n", distanceM, trip, scenarioKey)
	fmt.Println("==================================================")
	fmt.Println()
	fmt.Printf("%-26s %8s %10s %10s %10s %7s\n", "Medium", "n", "tof_ns", "ovh_ns", "total_ns", "tof%")
	fmt.Printf("%-26s %8s %10s %10s %10s %7s\n",
		"--------------------------", "--------", "----------", "----------", "----------", "-------")
	for _, row := range rows {
		fmt.Printf("%-26s %8.4f %10.1f %10.1f %10.1f %6.1f%%\n",
			row.Medium.Name, row.Medium.Index,
			row.Breakdown.TimeOfFlightNs, row.Breakdown.OverheadNs,
			row.Breakdown.TotalNs, row.Breakdown.TofFraction*100)
	}
}

func printProjectionReport(p *profile.ClusterProfile, proj economics.Projection) {
	fmt.Println("Fleet Savings Projection")
	fmt.Println("========================")
	fmt.Println()
	fmt.Printf("  Cluster:             %d GPUs, %.0f m links, %d hops/sync\n",
		proj.Inputs.FleetSize, proj.Inputs.DistanceM, proj.Inputs.HopsPerSync)
	fmt.Printf("  Sync rate:           %.0f/s at %.0f%% fiber fraction\n",
		proj.Inputs.SyncsPerSecond, proj.Inputs.FiberFraction*100)
	fmt.Printf("  Media:               %s -> %s\n",
		proj.Inputs.BaselineMedium, proj.Inputs.ImprovedMedium)
	fmt.Println()
	fmt.Printf("  Per-hop savings:     %.1f ns (round trip)\n", proj.PerHopSavingsNs)
	fmt.Printf("  Per-sync savings:    %.1f ns\n", proj.PerSyncSavingsNs)
	if proj.WastedOpsPerSync > 0 {
		fmt.Printf("  Stalled ops/sync:    %s (%s)\n", formatCount(proj.WastedOpsPerSync), p.Chip)
	}
	fmt.Println()
	fmt.Printf("  Daily idle:          %.1f GPU-hours ($%s)\n",
		proj.DailyIdleGPUHours, formatMoney(proj.DailyUSD))
	fmt.Printf("  Annual idle:         %.0f GPU-hours\n", proj.AnnualIdleGPUHours)
	fmt.Printf("  Annual savings:      $%s\n", formatMoney(proj.AnnualUSD))
	fmt.Printf("  Assessment:          %s\n", proj.Severity)
	fmt.Println()
	fmt.Println("Idle-ceiling assumption: every GPU stalls for the full link")
	fmt.Println("latency on every synchronization. Treat as an upper bound.")
}

func printSweepTable(p *profile.ClusterProfile, projections []economics.Projection) {
	fmt.Printf("Savings vs Sync Rate (%d GPUs, %.0f m, %s -> %s)\n",
		p.Cluster.TotalGPUs, p.Interconnect.ClusterDistanceM,
		p.Interconnect.BaselineMedium, p.Interconnect.ImprovedMedium)
	fmt.Println("==========================================================")
	fmt.Println()
	fmt.Printf("%12s %16s %14s %13s\n", "syncs/s", "daily GPU-hrs", "annual USD", "assessment")
	fmt.Printf("%12s %16s %14s %13s\n", "------------", "----------------", "--------------", "-------------")
	for _, proj := range projections {
		fmt.Printf("%12.0f %16.2f %14s %13s\n",
			proj.Inputs.SyncsPerSecond, proj.DailyIdleGPUHours,
			formatMoney(proj.AnnualUSD), proj.Severity)
	}
}

func formatMoney(v float64) string {
	if v >= 1_000_000_000 {
		return fmt.Sprintf("%.2fB", v/1_000_000_000)
	}
	if v >= 1_000_000 {
		return fmt.Sprintf("%.2fM", v/1_000_000)
	}
	if v >= 1_000 {
		return fmt.Sprintf("%.1fK", v/1_000)
	}
	return fmt.Sprintf("%.2f", v)
}

func formatCount(v float64) string {
	switch {
	case v >= 1e12:
		return fmt.Sprintf("%.2fT", v/1e12)
	case v >= 1e9:
		return fmt.Sprintf("%.2fG", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%.2fM", v/1e6)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}
