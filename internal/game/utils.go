package game

import (
	"fmt"
	"math"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// formatPercent formats a 0-1 level as a whole percentage.
func formatPercent(level float64) string {
	return fmt.Sprintf("%3d%%", int(math.Round(clamp01(level)*100)))
}
