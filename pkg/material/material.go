package material

import "sort"

// Speed of light in vacuum, exact by SI definition.
const (
	CVacuumMPerS  = 299792458.0 // m/s
	CVacuumKmPerS = 299792.458  // km/s
)

// Medium is an optical transmission medium with a published or derived
// refractive index. Media are constructed once at registry initialization
// and read-only thereafter.
type Medium struct {
	Key    string  `json:"key"`
	Name   string  `json:"name"`
	Index  float64 `json:"refractive_index"`
	Source string  `json:"source"`
}

// SpeedKmPerS returns the speed of light in the medium in km/s.
func (m Medium) SpeedKmPerS() float64 {
	return CVacuumKmPerS / m.Index
}

// SpeedFraction returns the light speed in the medium as a fraction of c.
func (m Medium) SpeedFraction() float64 {
	return 1.0 / m.Index
}

// media holds the process-wide registry. Populated below, never mutated.
var media = map[string]Medium{
	"vacuum": {
		Key:    "vacuum",
		Name:   "Vacuum",
		Index:  1.0,
		Source: "Physics definition",
	},
	"air": {
		Key:    "air",
		Name:   "Air (STP)",
		Index:  1.000293,
		Source: "CRC Handbook of Chemistry and Physics",
	},
	"hollow_core": {
		Key:    "hollow_core",
		Name:   "Hollow-Core Fiber",
		Index:  1.003,
		Source: "OFS/Lumenisity CoreSmart datasheet",
	},
	"superluminal": {
		Key:    "superluminal",
		Name:   "Architected Low-Index Glass",
		Index:  1.1524, // Maxwell-Garnett: 30.6% solid, 69.4% void
		Source: "Genesis Patent 4 (provisional)",
	},
	"silica": {
		Key:    "silica",
		Name:   "Fused Silica (SiO2)",
		Index:  1.45,
		Source: "Corning HPFS datasheet",
	},
	"smf28": {
		Key:    "smf28",
		Name:   "SMF-28 Fiber",
		Index:  1.4682,
		Source: "Corning SMF-28 Ultra datasheet",
	},
	"multimode": {
		Key:    "multimode",
		Name:   "Multimode Fiber (OM4)",
		Index:  1.49,
		Source: "Corning ClearCurve datasheet",
	},
	"silicon": {
		Key:    "silicon",
		Name:   "Silicon Waveguide",
		Index:  3.48,
		Source: "Soref & Bennett (1987)",
	},
}

// MediumByKey looks up a medium by its registry key.
func MediumByKey(key string) (Medium, error) {
	m, ok := media[key]
	if !ok {
		return Medium{}, &InvalidParameterError{
			Param:    "medium",
			Value:    key,
			Expected: "one of " + keyList(MediumKeys()),
		}
	}
	return m, nil
}

// MediumKeys returns all registry keys in sorted order.
func MediumKeys() []string {
	keys := make([]string, 0, len(media))
	for k := range media {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
