// internal/utils/math.go
package utils

import (
	"math"
	"time"
)

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Decay reduces a feedback magnitude toward zero by the fraction of duration
// that elapsed. It never goes below zero.
func Decay(current float64, delta, duration time.Duration) float64 {
	if current <= 0 || duration <= 0 {
		return 0
	}
	step := float64(delta) / float64(duration) * current
	return math.Max(0, current-step)
}
