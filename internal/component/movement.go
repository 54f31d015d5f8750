// component/movement.go
package component

import "horde-in-town/pkg/hexmap"

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости
type Velocity struct {
	Speed   float64
	Stopped bool // агент стоит на месте (баррикада, реакция на удар, смерть)
}

// Path — компонент пути
type Path struct {
	Hexes        []hexmap.Hex
	CurrentIndex int
}

// Done reports whether every waypoint has been reached.
func (p *Path) Done() bool {
	return p.CurrentIndex >= len(p.Hexes)
}
