package payment

import "math"

// MinorUnits converts a decimal fee into the provider's integer minor-unit amount (cents).
func MinorUnits(fee float64) int64 {
	if math.IsNaN(fee) || math.IsInf(fee, 0) {
		return 0
	}
	return int64(math.Round(fee * 100))
}
