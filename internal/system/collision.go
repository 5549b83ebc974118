// internal/system/collision.go
package system

import (
	"go-party-arcade/internal/component"
	"go-party-arcade/internal/config"
	"go-party-arcade/pkg/geom"
)

// TargetBox is the hitbox of a target.
func TargetBox(t *component.Target) geom.Rect {
	return geom.NewRect(t.Position.X, t.Position.Y, config.TargetSize, config.TargetSize)
}

// ProjectileBox is the hitbox of a projectile.
func ProjectileBox(p *component.Projectile) geom.Rect {
	return geom.NewRect(p.Position.X, p.Position.Y, config.ProjectileSize, config.ProjectileSize)
}

// BodyBox is the box of a falling body; bodies keep the target's size.
func BodyBox(b *component.FallingBody) geom.Rect {
	return geom.NewRect(b.Position.X, b.Position.Y, config.TargetSize, config.TargetSize)
}

// BucketZone is the catch band of a bucket centered at bucketX whose top edge is bucketY.
func BucketZone(bucketX, bucketY float64) geom.Rect {
	return geom.NewRect(bucketX-config.BucketWidth/2, bucketY, config.BucketWidth, config.BucketHeight).
		Expand(config.BucketForgiveness, 0)
}

// ProjectileHitsTarget reports whether a projectile overlaps a live target.
func ProjectileHitsTarget(p *component.Projectile, t *component.Target) bool {
	if !t.Alive {
		return false
	}
	return ProjectileBox(p).Intersects(TargetBox(t))
}

// BucketCatchesBody reports whether a body overlaps the bucket band.
func BucketCatchesBody(bucketX, bucketY float64, b *component.FallingBody) bool {
	return BucketZone(bucketX, bucketY).Intersects(BodyBox(b))
}

// TargetBreached reports whether a live target's bottom edge reached the breach line.
func TargetBreached(t *component.Target) bool {
	if !t.Alive {
		return false
	}
	return t.Position.Y+config.TargetSize >= config.BreachLineY
}
