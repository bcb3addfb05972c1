// Package profile loads and validates cluster profiles: YAML records
// naming the hardware, media, and scale parameters of one projection.
package profile

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/nickharris808/AI-Interconnect-Latency-Benchmark/pkg/economics"
)

// Load reads a cluster profile from a YAML file.
func Load(path string) (*ClusterProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile file: %w", err)
	}

	var p ClusterProfile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing profile YAML: %w", err)
	}

	return &p, nil
}

// LoadProject loads a cluster profile from a project directory.
// It looks for cluster.yaml in the given directory.
func LoadProject(projectDir string) (*ClusterProfile, error) {
	return Load(filepath.Join(projectDir, "cluster.yaml"))
}

// Inputs maps a profile onto the economic projector's scalar inputs,
// using the cluster-scale link distance. The mapping assumes the profile
// has already passed Validate.
func Inputs(p *ClusterProfile) economics.Inputs {
	return economics.Inputs{
		FleetSize:      p.Cluster.TotalGPUs,
		DistanceM:      p.Interconnect.ClusterDistanceM,
		SyncsPerSecond: p.Cluster.SyncsPerSecond,
		FiberFraction:  p.Cluster.FiberFraction,
		HopsPerSync:    p.Cluster.GradientSyncHops,
		GPUHourCostUSD: p.Economics.GPUHourCostUSD,
		BaselineMedium: p.Interconnect.BaselineMedium,
		ImprovedMedium: p.Interconnect.ImprovedMedium,
		Scenario:       p.Interconnect.OverheadScenario,
		GPU:            p.Chip,
	}
}
