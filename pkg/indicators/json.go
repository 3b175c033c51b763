package indicators

import (
	"encoding/json"
	"math"
)

// Degenerate duration/convexity are NaN sentinels, which encoding/json
// refuses to emit. They round-trip as JSON null instead.

// MarshalJSON encodes the indicators with NaN sensitivity fields as null.
func (ind Indicators) MarshalJSON() ([]byte, error) {
	type alias Indicators
	return json.Marshal(struct {
		alias
		Duration         *float64 `json:"duration"`
		ModifiedDuration *float64 `json:"modifiedDuration"`
		Convexity        *float64 `json:"convexity"`
	}{
		alias:            alias(ind),
		Duration:         nullable(ind.Duration),
		ModifiedDuration: nullable(ind.ModifiedDuration),
		Convexity:        nullable(ind.Convexity),
	})
}

// UnmarshalJSON decodes indicators, restoring null sensitivity fields to NaN.
func (ind *Indicators) UnmarshalJSON(data []byte) error {
	type alias Indicators
	decoded := struct {
		*alias
		Duration         *float64 `json:"duration"`
		ModifiedDuration *float64 `json:"modifiedDuration"`
		Convexity        *float64 `json:"convexity"`
	}{alias: (*alias)(ind)}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	ind.Duration = denullable(decoded.Duration)
	ind.ModifiedDuration = denullable(decoded.ModifiedDuration)
	ind.Convexity = denullable(decoded.Convexity)
	return nil
}

func nullable(val float64) *float64 {
	if math.IsNaN(val) {
		return nil
	}
	return &val
}

func denullable(val *float64) float64 {
	if val == nil {
		return math.NaN()
	}
	return *val
}
