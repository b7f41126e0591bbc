package controls

import (
	"math"
	"strconv"
)

func formatFixed(value float64, places int) string {
	return strconv.FormatFloat(value, 'f', places, 64)
}

// decimals returns how many fractional digits a step needs
func decimals(step float64) int {
	for places := 0; places < 6; places++ {
		scaled := step * math.Pow(10, float64(places))
		if math.Abs(scaled-math.Round(scaled)) < 1e-9 {
			return places
		}
	}
	return 6
}
