package lifecycle

import "math"

// anyNonFinite reports whether any of the values is NaN or infinite.
func anyNonFinite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return true
		}
	}
	return false
}
