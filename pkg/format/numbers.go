package format

import (
	"fmt"
	"math"
	"strconv"
)

// MonthProgressPercent is round(currentDay / daysInMonth * 100), kept within 0..100.
func MonthProgressPercent(currentDay, daysInMonth int) int {
	if daysInMonth <= 0 {
		return 0
	}
	pct := int(math.Round(float64(currentDay) / float64(daysInMonth) * 100))
	return min(max(pct, 0), 100)
}

// ClampedPercent is value/max*100 limited to 0..100. Values above max are
// clamped rather than treated as an error.
func ClampedPercent(value, maxValue float64) float64 {
	if maxValue <= 0 || math.IsNaN(value) {
		return 0
	}
	return math.Max(0, math.Min(value/maxValue*100, 100))
}

// Number prints v with as few digits as needed: 38, 1.5, -12.25.
func Number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func Percent(v float64) string {
	return Number(v) + "%"
}

// SignedPercent always carries a sign: +32%, -4%.
func SignedPercent(v float64) string {
	if v >= 0 {
		return "+" + Percent(v)
	}
	return Percent(v)
}

// Ratio renders a coverage multiple with two decimals: 1.93x.
func Ratio(v float64) string {
	return fmt.Sprintf("%.2fx", v)
}

// Compact uses one decimal below 10 and none above, as the gauge readout does.
func Compact(v float64) string {
	if v < 10 {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'f', 0, 64)
}
