package utils

import "math"

// RoundWithTwoDecimalPlace rounds to 2 decimals, the precision every
// percentage in the reports is rendered with.
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}
