// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"go-party-arcade/internal/config"
)

// ErrInvalidLevels is returned when a level table cannot drive a full run.
var ErrInvalidLevels = errors.New("invalid level table")

// LoadLevelDefinitions reads a JSON array of level definitions, overlays it on
// DefaultLevels and validates the result.
func LoadLevelDefinitions(path string) (map[int]LevelDefinition, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level definitions file: %w", err)
	}

	var levelDefs []LevelDefinition
	if err := json.Unmarshal(file, &levelDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal level definitions: %w", err)
	}

	levels := make(map[int]LevelDefinition, len(DefaultLevels))
	for k, v := range DefaultLevels {
		levels[k] = v
	}
	for _, def := range levelDefs {
		levels[def.Level] = def
	}
	if err := Validate(levels); err != nil {
		return nil, err
	}

	log.Printf("Loaded %d level definitions from %s", len(levelDefs), path)
	return levels, nil
}

// Validate checks that every level 1..LevelCount is present and playable.
func Validate(levels map[int]LevelDefinition) error {
	if len(levels) != config.LevelCount {
		return fmt.Errorf("%w: want %d levels, got %d", ErrInvalidLevels, config.LevelCount, len(levels))
	}
	for level := 1; level <= config.LevelCount; level++ {
		def, ok := levels[level]
		switch {
		case !ok:
			return fmt.Errorf("%w: level %d missing", ErrInvalidLevels, level)
		case def.TargetsPerWave <= 0:
			return fmt.Errorf("%w: level %d has no targets", ErrInvalidLevels, level)
		case def.BaseSpeed <= 0:
			return fmt.Errorf("%w: level %d base speed %.1f", ErrInvalidLevels, level, def.BaseSpeed)
		case def.WaveSeconds <= 0:
			return fmt.Errorf("%w: level %d wave duration %.1fs", ErrInvalidLevels, level, def.WaveSeconds)
		case def.AmmoPerShooter < 0:
			return fmt.Errorf("%w: level %d negative ammo", ErrInvalidLevels, level)
		}
	}
	return nil
}
