package analytics

import (
	"math"

	"ubjewellers/internal/domain/entity"
)

// Compare reports the directional change from oldValue to newValue as a
// ratio (0.5 means fifty percent). A zero baseline has no meaningful ratio:
// a zero new value is no change, anything else is reported as {up, 100}.
func Compare(newValue, oldValue float64) entity.PercentageChange {
	if oldValue == 0 {
		if newValue == 0 {
			return entity.PercentageChange{Direction: entity.DirectionNoChange, PercentageValue: 0}
		}
		return entity.PercentageChange{Direction: entity.DirectionUp, PercentageValue: 100}
	}

	ratio := (newValue - oldValue) / oldValue
	switch {
	case ratio > 0:
		return entity.PercentageChange{Direction: entity.DirectionUp, PercentageValue: ratio}
	case ratio < 0:
		return entity.PercentageChange{Direction: entity.DirectionDown, PercentageValue: math.Abs(ratio)}
	default:
		return entity.PercentageChange{Direction: entity.DirectionNoChange, PercentageValue: 0}
	}
}

// Finite maps NaN and infinities to zero so store results can be compared.
func Finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
