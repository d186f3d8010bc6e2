package topology

import (
	"math"
	"strconv"
)

// CoordinatePlaces is the number of decimals kept for coordinates and opacities.
const CoordinatePlaces = 4

// Round quantizes v to the given number of decimal places.
//
// The result is the decimal nearest to the exact binary value of v. Exact
// binary ties round to even. Negative zero is returned as 0 so that rendered
// output never contains "-0".
func Round(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		return v
	}
	if r == 0 {
		return 0
	}
	return r
}

// round4 is the coordinate quantizer.
func round4(v float64) float64 { return Round(v, CoordinatePlaces) }
