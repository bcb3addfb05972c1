package main

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "latencybench",
		Short: "Effective-medium solver and optical interconnect latency benchmark",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(
				tint.NewHandler(os.Stderr, &tint.Options{Level: level}),
			))
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(indexCmd())
	rootCmd.AddCommand(dispersionCmd())
	rootCmd.AddCommand(sensitivityCmd())
	rootCmd.AddCommand(latencyCmd())
	rootCmd.AddCommand(projectCmd())
	rootCmd.AddCommand(sweepCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func indexCmd() *cobra.Command {
	var solidIndex float64
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "index [void-fraction]",
		Short: "Cross-validate the effective index of a void/solid composite",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			f, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return err
			}
			return runIndex(f, solidIndex, asJSON)
		},
	}

	cmd.Flags().Float64Var(&solidIndex, "solid-index", 1.45, "refractive index of the solid phase")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit structured JSON instead of a table")
	return cmd
}

func dispersionCmd() *cobra.Command {
	var voidFraction, minUM, maxUM float64
	var steps int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "dispersion",
		Short: "Evaluate effective index vs wavelength via the Sellmeier relation",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runDispersion(voidFraction, minUM, maxUM, steps, asJSON)
		},
	}

	cmd.Flags().Float64Var(&voidFraction, "void-fraction", 0.70, "void volume fraction of the composite")
	cmd.Flags().Float64Var(&minUM, "min-um", 0.6, "start wavelength in micrometers")
	cmd.Flags().Float64Var(&maxUM, "max-um", 1.7, "end wavelength in micrometers")
	cmd.Flags().IntVar(&steps, "steps", 11, "number of wavelength steps")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit structured JSON instead of a table")
	return cmd
}

func sensitivityCmd() *cobra.Command {
	var voidFraction, solidIndex, uncertaintyPct float64
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "sensitivity",
		Short: "Finite-difference sensitivity of the effective index at an operating point",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runSensitivity(voidFraction, solidIndex, uncertaintyPct, asJSON)
		},
	}

	cmd.Flags().Float64Var(&voidFraction, "void-fraction", 0.70, "void volume fraction of the composite")
	cmd.Flags().Float64Var(&solidIndex, "solid-index", 1.45, "refractive index of the solid phase")
	cmd.Flags().Float64Var(&uncertaintyPct, "uncertainty-pct", 1.0, "assumed input uncertainty in percent")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit structured JSON instead of a table")
	return cmd
}

func latencyCmd() *cobra.Command {
	var scenario, medium string
	var oneWay, asJSON bool

	cmd := &cobra.Command{
		Use:   "latency [distance-m]",
		Short: "Per-medium latency breakdown for an optical link",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			d, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return err
			}
			return runLatency(d, medium, scenario, !oneWay, asJSON)
		},
	}

	cmd.Flags().StringVar(&scenario, "scenario", "typical", "overhead scenario key")
	cmd.Flags().StringVar(&medium, "medium", "", "restrict to one medium key (default: all)")
	cmd.Flags().BoolVar(&oneWay, "one-way", false, "report one-way latency instead of round trip")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit structured JSON instead of a table")
	return cmd
}

func projectCmd() *cobra.Command {
	var fiberFraction, syncRate float64
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "project [profile-dir]",
		Short: "Project fleet-wide savings for a cluster profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runProject(args[0], fiberFraction, syncRate, asJSON)
		},
	}

	cmd.Flags().Float64Var(&fiberFraction, "fiber-fraction", -1, "override the profile's fiber fraction")
	cmd.Flags().Float64Var(&syncRate, "sync-rate", -1, "override the profile's syncs per second")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit structured JSON instead of a report")
	return cmd
}

func sweepCmd() *cobra.Command {
	var minRate, maxRate float64
	var points int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "sweep [profile-dir]",
		Short: "Sweep the projection across synchronization rates",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSweep(args[0], minRate, maxRate, points, asJSON)
		},
	}

	cmd.Flags().Float64Var(&minRate, "min-rate", 10, "lowest sync rate in the sweep")
	cmd.Flags().Float64Var(&maxRate, "max-rate", 10000, "highest sync rate in the sweep")
	cmd.Flags().IntVar(&points, "points", 13, "number of sweep points (log spaced)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit structured JSON instead of a table")
	return cmd
}
