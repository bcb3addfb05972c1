package emt

import (
	"math"
	"testing"
)

func TestSensitivityAtOperatingPoint(t *testing.T) {
	c := Composition{VoidFraction: 0.70}
	r, err := Sensitivity(c, nSilica, DefaultSensitivityOptions())
	if err != nil {
		t.Fatalf("Sensitivity: %v", err)
	}

	if math.Abs(r.NominalIndex-1.1239) > 1e-3 {
		t.Errorf("nominal = %v, want ~1.1239", r.NominalIndex)
	}

	// More void, lower index; stiffer solid, higher index.
	if r.DIndexDVoidFraction >= 0 {
		t.Errorf("dn/df_void = %v, want negative", r.DIndexDVoidFraction)
	}
	if r.DIndexDSolidIndex <= 0 {
		t.Errorf("dn/dn_solid = %v, want positive", r.DIndexDSolidIndex)
	}

	// Symmetric difference should track a coarser step to ~1e-4.
	coarse, err := Sensitivity(c, nSilica, SensitivityOptions{
		DeltaFraction:  1e-2,
		DeltaIndex:     1e-2,
		UncertaintyPct: 1.0,
	})
	if err != nil {
		t.Fatalf("Sensitivity coarse: %v", err)
	}
	if math.Abs(r.DIndexDVoidFraction-coarse.DIndexDVoidFraction) > 1e-3 {
		t.Errorf("dn/df fine = %v vs coarse = %v, steps disagree",
			r.DIndexDVoidFraction, coarse.DIndexDVoidFraction)
	}
}

func TestSensitivityErrorPropagation(t *testing.T) {
	c := Composition{VoidFraction: 0.70}
	opts := DefaultSensitivityOptions() // 1% uncertainty
	r, err := Sensitivity(c, nSilica, opts)
	if err != nil {
		t.Fatalf("Sensitivity: %v", err)
	}

	// err_f = |dn/df| * 0.01 * f, err_n = |dn/dn_s| * 0.01 * n_s,
	// total = hypot(err_f, err_n).
	wantF := math.Abs(r.DIndexDVoidFraction) * 0.01 * 0.70
	wantN := math.Abs(r.DIndexDSolidIndex) * 0.01 * nSilica
	if math.Abs(r.VoidFractionError-wantF) > 1e-12 {
		t.Errorf("fraction error = %v, want %v", r.VoidFractionError, wantF)
	}
	if math.Abs(r.SolidIndexError-wantN) > 1e-12 {
		t.Errorf("solid error = %v, want %v", r.SolidIndexError, wantN)
	}
	if math.Abs(r.TotalError-math.Hypot(wantF, wantN)) > 1e-12 {
		t.Errorf("total error = %v, want %v", r.TotalError, math.Hypot(wantF, wantN))
	}
}

func TestSensitivityAtBoundaries(t *testing.T) {
	// Steps shorten at f=0 and f=1 rather than leaving [0,1].
	for _, f := range []float64{0.0, 1.0} {
		r, err := Sensitivity(Composition{VoidFraction: f}, nSilica, DefaultSensitivityOptions())
		if err != nil {
			t.Fatalf("Sensitivity(f=%v): %v", f, err)
		}
		if math.IsNaN(r.DIndexDVoidFraction) || math.IsInf(r.DIndexDVoidFraction, 0) {
			t.Errorf("f=%v: dn/df = %v", f, r.DIndexDVoidFraction)
		}
	}
}

func TestSensitivityRejectsBadStep(t *testing.T) {
	_, err := Sensitivity(Composition{VoidFraction: 0.5}, nSilica, SensitivityOptions{
		DeltaFraction:  0,
		DeltaIndex:     1e-4,
		UncertaintyPct: 1,
	})
	if err == nil {
		t.Fatal("expected error for zero finite-difference step")
	}
}
