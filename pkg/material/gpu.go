package material

import "sort"

// GPUSpec describes a GPU compute platform, used to translate recovered
// latency into an equivalent number of arithmetic operations.
type GPUSpec struct {
	Key                string  `json:"key"`
	Name               string  `json:"name"`
	FP8TFLOPS          float64 `json:"fp8_tflops"`
	FP16TFLOPS         float64 `json:"fp16_tflops"`
	HBMBandwidthGBs    float64 `json:"hbm_bandwidth_gb_s"`
	NVLinkBandwidthGBs float64 `json:"nvlink_bandwidth_gb_s"`
	TDPWatts           float64 `json:"tdp_watts"`
	Year               int     `json:"year"`
	Source             string  `json:"source"`
}

// OpsPerNs returns FP8 operations per nanosecond.
// TFLOPS to GFLOPS is the same scale as ops/ns.
func (g GPUSpec) OpsPerNs() float64 {
	return g.FP8TFLOPS * 1e3
}

var gpus = map[string]GPUSpec{
	"k80": {
		Key:             "k80",
		Name:            "NVIDIA K80",
		HBMBandwidthGBs: 480,
		TDPWatts:        300,
		Year:            2014,
		Source:          "NVIDIA K80 datasheet",
	},
	"v100": {
		Key:                "v100",
		Name:               "NVIDIA V100",
		FP16TFLOPS:         125,
		HBMBandwidthGBs:    900,
		NVLinkBandwidthGBs: 300,
		TDPWatts:           300,
		Year:               2017,
		Source:             "NVIDIA V100 datasheet",
	},
	"a100": {
		Key:                "a100",
		Name:               "NVIDIA A100",
		FP8TFLOPS:          624, // approximated from FP16
		FP16TFLOPS:         312,
		HBMBandwidthGBs:    2039,
		NVLinkBandwidthGBs: 600,
		TDPWatts:           400,
		Year:               2020,
		Source:             "NVIDIA A100 datasheet",
	},
	"h100": {
		Key:                "h100",
		Name:               "NVIDIA H100 SXM5",
		FP8TFLOPS:          3958,
		FP16TFLOPS:         1979,
		HBMBandwidthGBs:    3350,
		NVLinkBandwidthGBs: 900,
		TDPWatts:           700,
		Year:               2023,
		Source:             "NVIDIA H100 whitepaper",
	},
	"b200": {
		Key:                "b200",
		Name:               "NVIDIA B200",
		FP8TFLOPS:          9000,
		FP16TFLOPS:         4500,
		HBMBandwidthGBs:    8000,
		NVLinkBandwidthGBs: 1800,
		TDPWatts:           1000,
		Year:               2024,
		Source:             "NVIDIA GTC 2024 keynote (estimates)",
	},
}

// GPUByKey looks up a GPU spec by its registry key.
func GPUByKey(key string) (GPUSpec, error) {
	g, ok := gpus[key]
	if !ok {
		return GPUSpec{}, &InvalidParameterError{
			Param:    "gpu",
			Value:    key,
			Expected: "one of " + keyList(GPUKeys()),
		}
	}
	return g, nil
}

// GPUKeys returns all GPU registry keys in sorted order.
func GPUKeys() []string {
	keys := make([]string, 0, len(gpus))
	for k := range gpus {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
