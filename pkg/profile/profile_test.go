package profile

import (
	"math"
	"path/filepath"
	"testing"
)

func loadTestProfile(t *testing.T) *ClusterProfile {
	t.Helper()
	p, err := LoadProject(filepath.Join("testdata", "gb200"))
	if err != nil {
		t.Fatalf("LoadProject: %v", err)
	}
	return p
}

func TestLoadProject(t *testing.T) {
	p := loadTestProfile(t)

	if p.Chip != "b200" {
		t.Errorf("chip = %q, want b200", p.Chip)
	}
	if p.Cluster.TotalGPUs != 4608 {
		t.Errorf("total_gpus = %d, want 4608", p.Cluster.TotalGPUs)
	}
	if math.Abs(p.Cluster.FiberFraction-0.70) > 1e-12 {
		t.Errorf("fiber_fraction = %v, want 0.70", p.Cluster.FiberFraction)
	}
	if p.Interconnect.BaselineMedium != "smf28" {
		t.Errorf("baseline = %q, want smf28", p.Interconnect.BaselineMedium)
	}
	if p.Interconnect.ClusterDistanceM != 200 {
		t.Errorf("cluster distance = %v, want 200", p.Interconnect.ClusterDistanceM)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := LoadProject(filepath.Join("testdata", "nonexistent")); err == nil {
		t.Fatal("expected error for missing profile")
	}
}

func TestValidateAcceptsReferenceProfile(t *testing.T) {
	p := loadTestProfile(t)
	r := Validate(p)
	if !r.Valid {
		t.Fatalf("reference profile invalid: %+v", r.Errors)
	}
}

func TestValidateSchemaErrors(t *testing.T) {
	cases := []struct {
		name string
		mod  func(*ClusterProfile)
		path string
	}{
		{"zero gpus", func(p *ClusterProfile) { p.Cluster.TotalGPUs = 0 }, "cluster.total_gpus"},
		{"fiber fraction above 1", func(p *ClusterProfile) { p.Cluster.FiberFraction = 1.5 }, "cluster.fiber_fraction"},
		{"negative sync rate", func(p *ClusterProfile) { p.Cluster.SyncsPerSecond = -10 }, "cluster.syncs_per_second"},
		{"zero hops", func(p *ClusterProfile) { p.Cluster.GradientSyncHops = 0 }, "cluster.gradient_sync_hops"},
		{"zero distance", func(p *ClusterProfile) { p.Interconnect.ClusterDistanceM = 0 }, "interconnect.cluster_distance_m"},
		{"unknown medium", func(p *ClusterProfile) { p.Interconnect.BaselineMedium = "aerogel" }, "interconnect.baseline_medium"},
		{"missing medium", func(p *ClusterProfile) { p.Interconnect.ImprovedMedium = "" }, "interconnect.improved_medium"},
		{"unknown scenario", func(p *ClusterProfile) { p.Interconnect.OverheadScenario = "mesh" }, "interconnect.overhead_scenario"},
		{"unknown chip", func(p *ClusterProfile) { p.Chip = "npu9000" }, "chip"},
		{"negative price", func(p *ClusterProfile) { p.Economics.GPUHourCostUSD = -1 }, "economics.gpu_hour_cost_usd"},
	}

	for _, tc := range cases {
		p := loadTestProfile(t)
		tc.mod(p)
		r := Validate(p)
		if r.Valid {
			t.Errorf("%s: expected invalid report", tc.name)
			continue
		}
		found := false
		for _, e := range r.Errors {
			if e.ProfilePath == tc.path {
				found = true
			}
		}
		if !found {
			t.Errorf("%s: no error at path %q: %+v", tc.name, tc.path, r.Errors)
		}
	}
}

func TestValidatePhysicalWarnings(t *testing.T) {
	p := loadTestProfile(t)
	p.Cluster.SyncsPerSecond = 250_000
	p.Interconnect.ClusterDistanceM = 5000
	p.Interconnect.ImprovedMedium = "silicon" // slower than baseline

	r := Validate(p)
	if !r.Valid {
		t.Fatalf("warnings should not invalidate: %+v", r.Errors)
	}
	if len(r.Warnings) < 3 {
		t.Errorf("got %d warnings, want at least 3: %+v", len(r.Warnings), r.Warnings)
	}
}

func TestInputsMapping(t *testing.T) {
	p := loadTestProfile(t)
	in := Inputs(p)

	if in.FleetSize != 4608 || in.HopsPerSync != 8 {
		t.Errorf("fleet/hops = %d/%d, want 4608/8", in.FleetSize, in.HopsPerSync)
	}
	if in.DistanceM != 200 {
		t.Errorf("distance = %v, want cluster-scale 200", in.DistanceM)
	}
	if in.BaselineMedium != "smf28" || in.ImprovedMedium != "superluminal" {
		t.Errorf("media = %q/%q", in.BaselineMedium, in.ImprovedMedium)
	}
	if in.GPU != "b200" {
		t.Errorf("gpu = %q, want b200", in.GPU)
	}
}
