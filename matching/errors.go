package matching

import (
	"fmt"

	"github.com/t288matt/vatsim-interactions/types"
)

// InvalidSampleError reports a sample whose coordinates or frequency are
// outside the valid domain. It is surfaced rather than skipped so that
// upstream data corruption is not masked.
type InvalidSampleError struct {
	Sample types.TransceiverSample
	Reason string
}

func (e *InvalidSampleError) Error() string {
	return fmt.Sprintf("invalid %s sample %q at %s: %s",
		e.Sample.EntityType, e.Sample.Callsign,
		e.Sample.Timestamp.Format("2006-01-02T15:04:05Z"), e.Reason)
}

// ConfigurationError reports a non-positive threshold or window value.
type ConfigurationError struct {
	Option string
	Value  float64
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration option %s must be positive, got %v", e.Option, e.Value)
}
