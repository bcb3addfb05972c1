package profile

// ClusterProfile is the top-level configuration for one cluster
// projection: which hardware, which media to compare, and at what scale.
type ClusterProfile struct {
	SpecVersion  string       `yaml:"spec_version" json:"spec_version"`
	Chip         string       `yaml:"chip" json:"chip"`
	Interconnect Interconnect `yaml:"interconnect" json:"interconnect"`
	Cluster      ClusterDef   `yaml:"cluster" json:"cluster"`
	Economics    EconomicsDef `yaml:"economics" json:"economics"`
}

// Interconnect describes the optical path under comparison.
type Interconnect struct {
	RackDistanceM    float64 `yaml:"rack_distance_m" json:"rack_distance_m"`
	ClusterDistanceM float64 `yaml:"cluster_distance_m" json:"cluster_distance_m"`
	BaselineMedium   string  `yaml:"baseline_medium" json:"baseline_medium"`
	ImprovedMedium   string  `yaml:"improved_medium" json:"improved_medium"`
	OverheadScenario string  `yaml:"overhead_scenario" json:"overhead_scenario"`
}

// ClusterDef describes the fleet and its synchronization behavior.
type ClusterDef struct {
	TotalGPUs        int     `yaml:"total_gpus" json:"total_gpus"`
	SyncsPerSecond   float64 `yaml:"syncs_per_second" json:"syncs_per_second"`
	GradientSyncHops int     `yaml:"gradient_sync_hops" json:"gradient_sync_hops"`
	FiberFraction    float64 `yaml:"fiber_fraction" json:"fiber_fraction"`
}

// EconomicsDef carries the pricing assumption.
type EconomicsDef struct {
	GPUHourCostUSD float64 `yaml:"gpu_hour_cost_usd" json:"gpu_hour_cost_usd"`
}
