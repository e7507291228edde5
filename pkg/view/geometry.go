package view

import (
	"math"
	"strconv"
)

// coord prints an SVG coordinate with at most two decimals so that output
// stays byte-stable across platforms.
func coord(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
