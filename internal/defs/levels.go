// internal/defs/levels.go
package defs

import "time"

// LevelDefinition holds the difficulty parameters of one level.
type LevelDefinition struct {
	Level          int     `json:"level"`
	TargetsPerWave int     `json:"targets_per_wave"`
	BaseSpeed      float64 `json:"base_speed"` // pixels per second
	WaveSeconds    float64 `json:"wave_duration_seconds"`
	AmmoPerShooter int     `json:"ammo_per_shooter"`
}

// WaveDuration returns the wave length as a time.Duration.
func (d LevelDefinition) WaveDuration() time.Duration {
	return time.Duration(d.WaveSeconds * float64(time.Second))
}

// DefaultLevels is the built-in level table, keyed by level number.
var DefaultLevels = map[int]LevelDefinition{
	1: {Level: 1, TargetsPerWave: 15, BaseSpeed: 120, WaveSeconds: 45, AmmoPerShooter: 40},
	2: {Level: 2, TargetsPerWave: 20, BaseSpeed: 160, WaveSeconds: 45, AmmoPerShooter: 40},
	3: {Level: 3, TargetsPerWave: 25, BaseSpeed: 200, WaveSeconds: 45, AmmoPerShooter: 40},
}

// TargetsPerWave returns how many targets a wave of the given level spawns
// with the built-in table, or 0 for an unknown level.
func TargetsPerWave(level int) int {
	return DefaultLevels[level].TargetsPerWave
}
