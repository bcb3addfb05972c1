package latency

import (
	"sort"

	"github.com/nickharris808/AI-Interconnect-Latency-Benchmark/pkg/material"
)

// Scenario is a named fixed-overhead profile for one link: serializer/
// deserializer latency, forward-error-correction latency, and a per-hop
// switch traversal cost. Scenarios are registry constants, never mutated.
type Scenario struct {
	Key        string  `json:"key"`
	Name       string  `json:"name"`
	SerDesNs   float64 `json:"serdes_ns"`
	FECNs      float64 `json:"fec_ns"`
	SwitchNs   float64 `json:"switch_ns"` // per switch traversal
	SwitchHops int     `json:"switch_hops"`
}

// OverheadNs returns the scenario's total fixed overhead; every component
// is traversed again on the return path for round trips.
func (s Scenario) OverheadNs(roundTrip bool) float64 {
	total := s.SerDesNs + s.FECNs + s.SwitchNs*float64(s.SwitchHops)
	if roundTrip {
		total *= 2
	}
	return total
}

var scenarios = map[string]Scenario{
	"none": {
		Key:  "none",
		Name: "Bare fiber (propagation only)",
	},
	"minimal": {
		Key:        "minimal",
		Name:       "Direct link, low-latency FEC",
		SerDesNs:   100,
		FECNs:      50,
		SwitchNs:   200,
		SwitchHops: 1,
	},
	"typical": {
		Key:        "typical",
		Name:       "Single switched hop, RS-FEC",
		SerDesNs:   200,
		FECNs:      200,
		SwitchNs:   200,
		SwitchHops: 1,
	},
	"spine_leaf": {
		Key:        "spine_leaf",
		Name:       "Spine-leaf fabric (3 traversals)",
		SerDesNs:   200,
		FECNs:      200,
		SwitchNs:   200,
		SwitchHops: 3,
	},
	"fat_tree": {
		Key:        "fat_tree",
		Name:       "Fat-tree fabric (5 traversals)",
		SerDesNs:   200,
		FECNs:      200,
		SwitchNs:   200,
		SwitchHops: 5,
	},
}

// ScenarioByKey looks up an overhead scenario; unknown keys are rejected
// rather than silently defaulted.
func ScenarioByKey(key string) (Scenario, error) {
	s, ok := scenarios[key]
	if !ok {
		return Scenario{}, &material.InvalidParameterError{
			Param:    "scenario",
			Value:    key,
			Expected: "one of " + scenarioKeyList(),
		}
	}
	return s, nil
}

// ScenarioKeys returns all scenario keys in sorted order.
func ScenarioKeys() []string {
	keys := make([]string, 0, len(scenarios))
	for k := range scenarios {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func scenarioKeyList() string {
	out := ""
	for i, k := range ScenarioKeys() {
		if i > 0 {
			out += ", "
		}
		out += k
	}
	return out
}
