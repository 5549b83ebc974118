// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 1920
	ScreenHeight = 1080

	TopBarHeight = 80
	BreachLineY  = 880.0 // targets whose bottom edge reaches this line deal damage
	BottomBarTop = 920.0

	MaxDeltaTime = 0.1 // seconds, longer frames are clamped

	MaxHealth     = 30
	BodiesPerHeal = 10
	HPPerHeal     = 5

	CountdownDuration = 3 * time.Second
	InterWavePause    = 3 * time.Second
	FireCooldown      = 150 * time.Millisecond

	WavesPerLevel = 3
	LevelCount    = 3

	WaveSpeedRampEnd = 1.25 // speed multiplier reached at the end of a wave

	TargetSize = 42.0

	ProjectileSize   = 8.0
	ProjectileSpeed  = 600.0 // pixels per second
	ProjectileSpawnY = BreachLineY - 50

	FallGravity  = 900.0 // pixels per second^2
	FallMaxSpeed = 800.0
	FallDespawnY = ScreenHeight + 50.0

	BucketWidth       = 84.0
	BucketForgiveness = 10.0
	BucketHeight      = 48.0

	CatcherSpeed = 300.0
	CatcherMinX  = 200.0
	CatcherMaxX  = 1720.0
	CatcherY     = BottomBarTop - 24

	ShooterSpeed = 400.0
	ShooterMinX  = 100.0
	ShooterMaxX  = 1820.0
	ShooterY     = 950.0

	ShakeDuration       = 200 * time.Millisecond
	ShakeIntensity      = 5.0
	DamageFlashDuration = 300 * time.Millisecond
	HealFlashDuration   = 300 * time.Millisecond
)

// Lane centers for the three shooters.
const (
	LaneLeftX   = 400.0
	LaneCenterX = 960.0
	LaneRightX  = 1520.0
)

// Catcher start positions.
const (
	CatcherOneStartX = 500.0
	CatcherTwoStartX = 1400.0
)

var (
	ShooterNames = [3]string{"Rab", "Jenn", "Joel"}
	CatcherNames = [2]string{"Elyse", "Debbie"}
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	TopBarColor      = color.RGBA{10, 10, 18, 230}
	BottomBarColor   = color.RGBA{10, 10, 18, 230}
	BreachLineColor  = color.RGBA{220, 60, 60, 160}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDarkColor    = color.RGBA{20, 20, 30, 255}
	ProjectileColor  = color.RGBA{255, 240, 120, 255}
	BucketColor      = color.RGBA{194, 140, 80, 255}
	BucketRimColor   = color.RGBA{240, 200, 140, 255}
	ShooterColor     = color.RGBA{70, 130, 180, 255}
	DeadShooterColor = color.RGBA{90, 90, 90, 255}
	AmmoBarColor     = color.RGBA{255, 215, 0, 255}
	HealthColor      = color.RGBA{220, 60, 60, 255}
	HealthHighColor  = color.RGBA{50, 100, 255, 255}
	HealFlashColor   = color.RGBA{50, 205, 50, 255}
	DamageFlashColor = color.RGBA{255, 0, 0, 255}
	OverlayColor     = color.RGBA{0, 0, 0, 170}
	CategoryColors   = map[string]color.RGBA{
		"red":    {255, 50, 50, 255},
		"blue":   {50, 100, 255, 255},
		"green":  {50, 255, 50, 255},
		"yellow": {255, 215, 0, 255},
		"purple": {180, 50, 230, 255},
	}
)
