package app

import (
	"math"

	"horde-in-town/internal/config"
	"horde-in-town/internal/types"
)

// Autopilot стреляет за игрока в безголовом режиме. Цель держится, пока
// зомби жив; новая цель выбирается среди живых по наименьшему здоровью,
// при равенстве ближе к баррикаде.
type Autopilot struct {
	game   *Game
	target types.EntityID
}

func NewAutopilot(g *Game) *Autopilot {
	return &Autopilot{game: g}
}

func (a *Autopilot) Update(deltaTime float64) {
	g := a.game
	if !g.Running() {
		return
	}
	if !a.alive(a.target) {
		a.target = a.pick()
	}
	if a.target == 0 {
		return
	}
	tx, ty := a.lead(a.target)
	a.aimThrough(tx, ty)
	if g.BowSystem.Ready() {
		g.Fire()
	}
}

func (a *Autopilot) alive(id types.EntityID) bool {
	if id == 0 {
		return false
	}
	z, ok := a.game.ECS.Zombies[id]
	return ok && !z.Dead
}

func (a *Autopilot) pick() types.EntityID {
	ecs := a.game.ECS
	var best types.EntityID
	bestHealth, bestY := math.Inf(1), math.Inf(-1)
	for _, id := range sortedKeys(ecs.Zombies) {
		if !a.alive(id) {
			continue
		}
		h, okH := ecs.Healths[id]
		pos, okP := ecs.Positions[id]
		if !okH || !okP {
			continue
		}
		if h.Value < bestHealth || h.Value == bestHealth && pos.Y > bestY {
			best, bestHealth, bestY = id, h.Value, pos.Y
		}
	}
	return best
}

// lead упреждает цель: точка, где зомби окажется к прилёту стрелы.
func (a *Autopilot) lead(id types.EntityID) (float64, float64) {
	ecs := a.game.ECS
	pos := ecs.Positions[id]
	vel, okV := ecs.Velocities[id]
	path, okP := ecs.Paths[id]
	if !okV || !okP || vel.Stopped || path.Done() {
		return pos.X, pos.Y
	}
	nx, ny := a.game.Arena.Center(path.Hexes[path.CurrentIndex])
	dx, dy := nx-pos.X, ny-pos.Y
	d := math.Hypot(dx, dy)
	if d == 0 {
		return pos.X, pos.Y
	}
	flight := math.Hypot(pos.X-ecs.Bow.X, pos.Y-ecs.Bow.Y) / config.ArrowSpeed
	step := math.Min(vel.Speed*flight, d)
	return pos.X + dx/d*step, pos.Y + dy/d*step
}

// aimThrough ставит прицел на луч от лука через цель. Прицел не может
// опуститься к баррикаде, поэтому берётся точка луча дальше цели.
func (a *Autopilot) aimThrough(tx, ty float64) {
	b := a.game.ECS.Bow
	dx, dy := tx-b.X, ty-b.Y
	for k := 4.0; k >= 1; k -= 0.25 {
		x, y := b.X+dx*k, b.Y+dy*k
		if x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY {
			a.game.AimAt(x, y)
			return
		}
	}
	a.game.AimAt(tx, ty)
}
