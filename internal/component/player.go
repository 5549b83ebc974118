// internal/component/player.go
package component

// ShooterID names one of the three fixed shooter lanes.
type ShooterID int

const (
	ShooterLeft ShooterID = iota
	ShooterCenter
	ShooterRight
	ShooterCount
)

// CatcherID names one of the two catchers.
type CatcherID int

const (
	CatcherOne CatcherID = iota
	CatcherTwo
	CatcherCount
)

// Shooter fires projectiles from the bottom of the field.
type Shooter struct {
	Alive    bool
	Ammo     int
	MaxAmmo  int
	Position Position
}

// CanFire reports whether the shooter is able to act at all.
func (s Shooter) CanFire() bool {
	return s.Alive && s.Ammo > 0
}

// Catcher carries a bucket along the bottom track.
type Catcher struct {
	Position     Position
	BodiesCaught int
}

// ShooterStats accumulates over the whole run.
type ShooterStats struct {
	ShotsFired int
	ShotsHit   int
	Kills      int
}

// Accuracy returns the hit ratio in [0, 1].
func (s ShooterStats) Accuracy() float64 {
	if s.ShotsFired == 0 {
		return 0
	}
	return float64(s.ShotsHit) / float64(s.ShotsFired)
}

// Stats is the end-of-level report data.
type Stats struct {
	Shooters          [ShooterCount]ShooterStats
	CatcherBodies     [CatcherCount]int
	TotalBodiesCaught int
}
