package material

import (
	"fmt"
	"strings"
)

// InvalidParameterError reports an out-of-range or unknown enumerated
// input. It carries enough context (parameter name, offending value) for
// the caller to correct the input; retries are pointless since every
// computation here is deterministic.
type InvalidParameterError struct {
	Param    string
	Value    any
	Expected string
}

func (e *InvalidParameterError) Error() string {
	if e.Expected != "" {
		return fmt.Sprintf("invalid parameter %s=%v: expected %s", e.Param, e.Value, e.Expected)
	}
	return fmt.Sprintf("invalid parameter %s=%v", e.Param, e.Value)
}

func keyList(keys []string) string {
	return strings.Join(keys, ", ")
}
