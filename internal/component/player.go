// internal/component/player.go
package component

import "math"

// PlayerSession хранит прогресс игрока в текущем забеге.
type PlayerSession struct {
	Health       float64
	MaxHealth    float64
	Score        int
	Kills        int
	SurvivalTime float64
	Started      bool
	Paused       bool
	Over         bool
}

// HealthFraction returns current health as a share of the maximum.
func (p *PlayerSession) HealthFraction() float64 {
	if p.MaxHealth <= 0 {
		return 0
	}
	return p.Health / p.MaxHealth
}

// Bow — лук игрока и прицел.
type Bow struct {
	X, Y       float64 // позиция лучника
	CrosshairX float64
	CrosshairY float64
	Cooldown   float64
	LastShot   float64
	Shots      int

	// Прямоугольник, в котором может находиться прицел
	MinX, MinY, MaxX, MaxY float64
}

// AimDirection returns the unit vector from the bow to the crosshair.
// A crosshair on top of the bow aims straight up.
func (b *Bow) AimDirection() (float64, float64) {
	dx, dy := b.CrosshairX-b.X, b.CrosshairY-b.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return 0, -1
	}
	l := math.Sqrt(l2)
	return dx / l, dy / l
}
