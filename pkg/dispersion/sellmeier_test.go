package dispersion

import (
	"math"
	"testing"

	"github.com/nickharris808/AI-Interconnect-Latency-Benchmark/pkg/emt"
)

func TestIndexAtTelecomWavelengths(t *testing.T) {
	// Malitson fused silica: n(0.5876 µm) = 1.4585, n(1.55 µm) = 1.4440.
	cases := []struct {
		lambdaUM float64
		want     float64
	}{
		{0.5876, 1.4585},
		{1.31, 1.4468},
		{1.55, 1.4440},
	}
	for _, tc := range cases {
		n, inRange, err := Index(tc.lambdaUM)
		if err != nil {
			t.Fatalf("Index(%v): %v", tc.lambdaUM, err)
		}
		if !inRange {
			t.Errorf("Index(%v): flagged out of range", tc.lambdaUM)
		}
		if math.Abs(n-tc.want) > 5e-4 {
			t.Errorf("n(%v µm) = %.5f, want %.4f", tc.lambdaUM, n, tc.want)
		}
	}
}

func TestIndexOutsideValidatedRange(t *testing.T) {
	// Out-of-range wavelengths still evaluate but carry the flag.
	n, inRange, err := Index(4.5)
	if err != nil {
		t.Fatalf("Index(4.5): %v", err)
	}
	if inRange {
		t.Error("4.5 µm flagged as inside the validated range")
	}
	if n <= 1.0 || math.IsNaN(n) {
		t.Errorf("n(4.5 µm) = %v, expected a finite index above 1", n)
	}
}

func TestIndexRejectsNonPositiveWavelength(t *testing.T) {
	for _, l := range []float64{0, -1.55} {
		if _, _, err := Index(l); err == nil {
			t.Errorf("Index(%v): expected domain error", l)
		}
	}
}

func TestCurveComposesWithEffectiveMedium(t *testing.T) {
	comp := emt.Composition{VoidFraction: 0.70}
	grid, err := WavelengthGrid(1.2, 1.7, 5)
	if err != nil {
		t.Fatalf("WavelengthGrid: %v", err)
	}
	points, err := Curve(comp, grid)
	if err != nil {
		t.Fatalf("Curve: %v", err)
	}
	if len(points) != 6 {
		t.Fatalf("got %d points, want 6", len(points))
	}

	for i, p := range points {
		// Effective index must sit between vacuum and the solid index.
		if p.EffectiveIndex < 1.0 || p.EffectiveIndex > p.SolidIndex {
			t.Errorf("point %d: n_eff = %v outside [1, %v]", i, p.EffectiveIndex, p.SolidIndex)
		}
		if !p.InValidatedRange {
			t.Errorf("point %d (%.2f µm): flagged out of range", i, p.LambdaUM)
		}
		// Normal dispersion: index decreases with wavelength in this band.
		if i > 0 && p.SolidIndex >= points[i-1].SolidIndex {
			t.Errorf("solid index not decreasing at %.2f µm", p.LambdaUM)
		}
	}
}

func TestWavelengthGridSpansInclusive(t *testing.T) {
	grid, err := WavelengthGrid(0.5, 1.5, 4)
	if err != nil {
		t.Fatalf("WavelengthGrid: %v", err)
	}
	if math.Abs(grid[0]-0.5) > 1e-12 || math.Abs(grid[len(grid)-1]-1.5) > 1e-12 {
		t.Errorf("grid endpoints = %v, %v; want 0.5, 1.5", grid[0], grid[len(grid)-1])
	}

	if _, err := WavelengthGrid(1.5, 0.5, 4); err == nil {
		t.Error("expected error for reversed range")
	}
}
