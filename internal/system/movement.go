// internal/system/movement.go
package system

import (
	"math"

	"horde-in-town/internal/entity"
	"horde-in-town/pkg/hexmap"
)

// MovementSystem двигает сущности по их пути и переносит коллайдеры следом
type MovementSystem struct {
	ecs   *entity.ECS
	arena *hexmap.Arena
	world *CollisionWorld
}

func NewMovementSystem(ecs *entity.ECS, arena *hexmap.Arena, world *CollisionWorld) *MovementSystem {
	return &MovementSystem{ecs: ecs, arena: arena, world: world}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for id, pos := range s.ecs.Positions {
		vel, hasVel := s.ecs.Velocities[id]
		path, hasPath := s.ecs.Paths[id]
		if !hasVel || !hasPath || vel.Stopped {
			continue
		}

		moveDistance := vel.Speed * deltaTime
		for moveDistance > 0 && !path.Done() {
			tx, ty := s.arena.Center(path.Hexes[path.CurrentIndex])
			dx := tx - pos.X
			dy := ty - pos.Y
			dist := math.Hypot(dx, dy)

			if dist <= moveDistance {
				pos.X = tx
				pos.Y = ty
				path.CurrentIndex++
				moveDistance -= dist
				continue
			}
			pos.X += (dx / dist) * moveDistance
			pos.Y += (dy / dist) * moveDistance
			moveDistance = 0
		}

		if _, ok := s.ecs.Colliders[id]; ok {
			s.world.Move(id, pos.X, pos.Y)
		}
	}
}
