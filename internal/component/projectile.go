package component

import "go-party-arcade/internal/types"

// Projectile is a shot travelling straight up.
type Projectile struct {
	ID       types.EntityID
	Position Position
	Owner    ShooterID
}
