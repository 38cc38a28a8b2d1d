package taxcalc

import "math"

// Round rounds to the nearest whole unit with ties going toward positive
// infinity, so -2.5 becomes -2 and 2.5 becomes 3.
func Round(x float64) float64 {
	r := math.Floor(x)
	if x-r >= 0.5 {
		r++
	}
	return r
}
