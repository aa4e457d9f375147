package spline

import (
	"strconv"
	"strings"
)

// lerp linearly interpolates between n0 and n1.
func lerp(n0, n1, t float64) float64 {
	return (1-t)*n0 + t*n1
}

// clamp restricts n to [lo, hi]. The bounds may be given in either order.
func clamp(lo, hi, n float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	return min(hi, max(lo, n))
}

// decimals returns the number of fractional decimal digits in the shortest
// representation of n that round-trips.
func decimals(n float64) int {
	s := strconv.FormatFloat(n, 'f', -1, 64)
	i := strings.IndexByte(s, '.')
	if i == -1 {
		return 0
	}
	return len(s) - i - 1
}

// roundTo rounds n to prec fractional decimal digits.
func roundTo(n float64, prec int) float64 {
	// FormatFloat rounds correctly, which math.Round(n*10^prec) doesn't for
	// large prec. ParseFloat accepts everything FormatFloat produces.
	f, _ := strconv.ParseFloat(strconv.FormatFloat(n, 'f', prec, 64), 64)
	return f
}
