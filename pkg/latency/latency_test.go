package latency

import (
	"errors"
	"math"
	"testing"

	"github.com/nickharris808/AI-Interconnect-Latency-Benchmark/pkg/material"
)

func TestTimeOfFlightConcreteScenario(t *testing.T) {
	// 100 m of SMF-28 (n = 1.4682) round trip:
	//   2 × 100 × 1.4682 / 299792458 × 1e9 = 979.4 ns
	got := TimeOfFlightNs(100, 1.4682, true)
	if math.Abs(got-979.4) > 0.1 {
		t.Errorf("round-trip ToF = %v ns, want ~979.4", got)
	}
}

func TestRoundTripIsTwiceOneWay(t *testing.T) {
	for _, d := range []float64{0, 1, 3, 100, 2000} {
		for _, n := range []float64{1.0, 1.1524, 1.4682, 3.48} {
			oneWay := TimeOfFlightNs(d, n, false)
			roundTrip := TimeOfFlightNs(d, n, true)
			if math.Abs(roundTrip-2*oneWay) > 1e-12 {
				t.Errorf("d=%v n=%v: round trip %v != 2 × %v", d, n, roundTrip, oneWay)
			}
		}
	}
}

func TestLinkBreakdown(t *testing.T) {
	// typical scenario: (200+200+200) × 2 = 1200 ns overhead round trip.
	b, err := Link(100, "smf28", "typical", true)
	if err != nil {
		t.Fatalf("Link: %v", err)
	}
	if math.Abs(b.OverheadNs-1200) > 1e-9 {
		t.Errorf("overhead = %v ns, want 1200", b.OverheadNs)
	}
	if math.Abs(b.TotalNs-(b.TimeOfFlightNs+b.OverheadNs)) > 1e-9 {
		t.Errorf("total = %v, want tof+overhead", b.TotalNs)
	}
	// ~979 / 2179: this link is still overhead-dominated.
	wantFrac := b.TimeOfFlightNs / b.TotalNs
	if math.Abs(b.TofFraction-wantFrac) > 1e-12 {
		t.Errorf("tof fraction = %v, want %v", b.TofFraction, wantFrac)
	}
	if b.TofFraction > 0.5 {
		t.Errorf("tof fraction = %v, expected overhead-dominated at 100 m", b.TofFraction)
	}
}

func TestLinkBareFiber(t *testing.T) {
	b, err := Link(100, "smf28", "none", true)
	if err != nil {
		t.Fatalf("Link: %v", err)
	}
	if b.OverheadNs != 0 {
		t.Errorf("overhead = %v, want 0", b.OverheadNs)
	}
	if math.Abs(b.TofFraction-1.0) > 1e-12 {
		t.Errorf("tof fraction = %v, want 1.0", b.TofFraction)
	}
}

func TestLinkZeroDistanceNoOverhead(t *testing.T) {
	b, err := Link(0, "vacuum", "none", false)
	if err != nil {
		t.Fatalf("Link: %v", err)
	}
	if b.TotalNs != 0 || b.TofFraction != 0 {
		t.Errorf("zero link: total=%v fraction=%v, want 0, 0", b.TotalNs, b.TofFraction)
	}
}

func TestLinkRejectsUnknownKeys(t *testing.T) {
	if _, err := Link(100, "adamantium", "typical", true); err == nil {
		t.Error("expected error for unknown medium")
	}
	_, err := Link(100, "smf28", "torus", true)
	if err == nil {
		t.Fatal("expected error for unknown scenario")
	}
	var ipe *material.InvalidParameterError
	if !errors.As(err, &ipe) {
		t.Errorf("error type = %T, want *InvalidParameterError", err)
	} else if ipe.Param != "scenario" {
		t.Errorf("param = %q, want scenario", ipe.Param)
	}
}

func TestLinkRejectsNegativeDistance(t *testing.T) {
	if _, err := Link(-5, "smf28", "typical", true); err == nil {
		t.Error("expected error for negative distance")
	}
}

func TestScenarioOverheadScaling(t *testing.T) {
	spine, err := ScenarioByKey("spine_leaf")
	if err != nil {
		t.Fatalf("ScenarioByKey: %v", err)
	}
	// 200 + 200 + 3×200 = 1000 one way.
	if math.Abs(spine.OverheadNs(false)-1000) > 1e-9 {
		t.Errorf("spine_leaf one-way overhead = %v, want 1000", spine.OverheadNs(false))
	}
	if math.Abs(spine.OverheadNs(true)-2000) > 1e-9 {
		t.Errorf("spine_leaf round-trip overhead = %v, want 2000", spine.OverheadNs(true))
	}

	fat, _ := ScenarioByKey("fat_tree")
	if fat.OverheadNs(false) <= spine.OverheadNs(false) {
		t.Error("fat_tree should carry more overhead than spine_leaf")
	}
}
