package component

import (
	"go-party-arcade/internal/defs"
	"go-party-arcade/internal/types"
)

// Target is a descending enemy. It either breaches the line or is shot,
// in which case it is removed and a FallingBody takes its place.
type Target struct {
	ID       types.EntityID
	Position Position
	Category defs.Category
	Speed    float64 // pixels per second, fixed at spawn
	Alive    bool
}

// FallingBody drops from the spot where a target was shot.
type FallingBody struct {
	ID       types.EntityID
	Position Position
	Category defs.Category
	VY       float64 // current fall speed
}
