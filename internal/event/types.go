// internal/event/types.go
package event

import (
	"go-party-arcade/internal/component"
	"go-party-arcade/internal/defs"
	"go-party-arcade/internal/types"
)

const (
	PhaseChanged    EventType = "PhaseChanged"
	WaveStarted     EventType = "WaveStarted"
	ShotFired       EventType = "ShotFired"
	TargetSpawned   EventType = "TargetSpawned"
	TargetBreached  EventType = "TargetBreached"
	TargetDestroyed EventType = "TargetDestroyed"
	BodyCaught      EventType = "BodyCaught"
	Healed          EventType = "Healed"
	MissionComplete EventType = "MissionComplete"
)

type PhaseChange struct {
	From, To    component.Phase
	Level, Wave int
}

type WaveStart struct {
	Level, Wave int
	Spawns      int
}

type Shot struct {
	Shooter  component.ShooterID
	AmmoLeft int
}

type Spawn struct {
	Target   types.EntityID
	Category defs.Category
	X, Speed float64
}

type Breach struct {
	Target types.EntityID
	Health int
}

type Kill struct {
	Target   types.EntityID
	Shooter  component.ShooterID
	Position component.Position // top-left of the destroyed target
}

type Catch struct {
	Body    types.EntityID
	Catcher component.CatcherID
}

type Heal struct {
	Amount int
	Health int
}
