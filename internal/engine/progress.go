package engine

import "math"

// GemPercent is the display fill of the gem: round(100*facets/target), kept in [0, 100].
// Stored facets may exceed the target; the percentage never does.
func GemPercent(facets int, target int) int {
	if target <= 0 || facets <= 0 {
		return 0
	}
	pct := int(math.Round(100 * float64(facets) / float64(target)))
	return min(100, pct)
}

// TotalBricks is every brick ever placed: finished walls plus the current one.
func TotalBricks(w WallState) int {
	return w.WallsCompleted*BrickCapacity + w.BricksInCurrent
}
