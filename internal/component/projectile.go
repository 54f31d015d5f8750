// internal/component/projectile.go
package component

import "horde-in-town/internal/types"

// Arrow представляет летящую или застрявшую стрелу.
type Arrow struct {
	VX, VY   float64 // pixels per second
	Angle    float64
	Damage   float64
	Age      float64
	Lifetime float64

	HasHit     bool
	StuckTo    types.EntityID
	StuckTimer float64 // сколько ещё торчать в цели
	OffsetX    float64 // смещение относительно цели
	OffsetY    float64
}
