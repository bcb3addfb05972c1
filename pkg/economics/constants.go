package economics

// Scale and pricing constants for the idle-time projection.
const (
	SecondsPerDay  = 86400.0
	DaysPerYear    = 365.0
	SecondsPerHour = 3600.0

	DefaultGPUHourCostUSD = 2.00 // $/GPU-hr, on-demand cloud list price
)

// Severity bands for the annual-savings assessment.
const (
	CriticalThresholdUSD    = 1_000_000.0
	SignificantThresholdUSD = 100_000.0
)

// Severity classifies the annual savings magnitude.
type Severity string

const (
	SeverityCritical    Severity = "critical"    // >= $1M/yr
	SeveritySignificant Severity = "significant" // >= $100K/yr
	SeverityMeasurable  Severity = "measurable"
)

// classify maps annual savings to a severity band.
func classify(annualUSD float64) Severity {
	switch {
	case annualUSD >= CriticalThresholdUSD:
		return SeverityCritical
	case annualUSD >= SignificantThresholdUSD:
		return SeveritySignificant
	default:
		return SeverityMeasurable
	}
}
