// internal/system/projectile.go
package system

import (
	"math"

	"horde-in-town/internal/component"
	"horde-in-town/internal/config"
	"horde-in-town/internal/entity"
	"horde-in-town/internal/event"
	"horde-in-town/internal/types"
)

// ArrowSystem ведёт стрелы: полёт по прямой, попадание в живого зомби,
// застревание в нём и удаление по времени или за пределами экрана.
type ArrowSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	world           *CollisionWorld
	zombies         *ZombieSystem
}

func NewArrowSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, world *CollisionWorld, zombies *ZombieSystem) *ArrowSystem {
	s := &ArrowSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		world:           world,
		zombies:         zombies,
	}
	eventDispatcher.Subscribe(event.ZombieDestroyed, s)
	return s
}

// Spawn выпускает стрелу из точки (x, y) в направлении (dirX, dirY).
func (s *ArrowSystem) Spawn(x, y, dirX, dirY, damage float64) types.EntityID {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Arrows[id] = &component.Arrow{
		VX:       dirX * config.ArrowSpeed,
		VY:       dirY * config.ArrowSpeed,
		Angle:    math.Atan2(dirY, dirX),
		Damage:   damage,
		Lifetime: config.ArrowLifetime,
	}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:       config.ArrowColor,
		Radius:      config.ArrowRadius,
		StrokeWidth: 2,
		Alpha:       1,
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.ArrowFired, Data: id})
	return id
}

func (s *ArrowSystem) Update(deltaTime float64) {
	for _, id := range sortedIDs(s.ecs.Arrows) {
		arrow, ok := s.ecs.Arrows[id]
		if !ok {
			continue
		}
		pos := s.ecs.Positions[id]
		if pos == nil {
			s.remove(id)
			continue
		}

		if arrow.HasHit {
			arrow.StuckTimer -= deltaTime
			if arrow.StuckTimer <= 0 {
				s.remove(id)
				continue
			}
			// Стрела следует за зомби, в котором застряла
			if target, ok := s.ecs.Positions[arrow.StuckTo]; ok {
				pos.X = target.X + arrow.OffsetX
				pos.Y = target.Y + arrow.OffsetY
			}
			continue
		}

		arrow.Age += deltaTime
		if arrow.Age >= arrow.Lifetime {
			s.remove(id)
			continue
		}

		// Дробим шаг, чтобы быстрая стрела не проскочила сквозь зомби
		step := math.Hypot(arrow.VX, arrow.VY) * deltaTime
		substeps := int(math.Ceil(step / config.ArrowMaxStep))
		if substeps < 1 {
			substeps = 1
		}
		dt := deltaTime / float64(substeps)
		for i := 0; i < substeps && !arrow.HasHit; i++ {
			pos.X += arrow.VX * dt
			pos.Y += arrow.VY * dt
			if zombieID, hit := s.world.ZombieAt(pos.X, pos.Y, config.ArrowRadius); hit {
				s.hit(id, arrow, pos, zombieID)
			}
		}

		if !arrow.HasHit && outOfScreen(pos) {
			s.remove(id)
		}
	}
}

// hit обрабатывает единственное попадание стрелы.
func (s *ArrowSystem) hit(id types.EntityID, arrow *component.Arrow, pos *component.Position, zombieID types.EntityID) {
	arrow.HasHit = true
	arrow.VX, arrow.VY = 0, 0
	arrow.StuckTo = zombieID
	arrow.StuckTimer = config.ArrowStickTime
	if target, ok := s.ecs.Positions[zombieID]; ok {
		arrow.OffsetX = pos.X - target.X
		arrow.OffsetY = pos.Y - target.Y
	}

	s.zombies.TakeDamage(zombieID, arrow.Damage)
	s.eventDispatcher.Dispatch(event.Event{Type: event.ArrowHit, Data: event.ArrowHitData{
		Arrow:  id,
		Zombie: zombieID,
		Damage: arrow.Damage,
		X:      pos.X,
		Y:      pos.Y,
	}})
}

// OnEvent убирает стрелы, застрявшие в удалённом зомби.
func (s *ArrowSystem) OnEvent(e event.Event) {
	if e.Type != event.ZombieDestroyed {
		return
	}
	zombieID, ok := e.Data.(types.EntityID)
	if !ok {
		return
	}
	for id, arrow := range s.ecs.Arrows {
		if arrow.HasHit && arrow.StuckTo == zombieID {
			s.remove(id)
		}
	}
}

// Clear удаляет все стрелы.
func (s *ArrowSystem) Clear() {
	for id := range s.ecs.Arrows {
		s.remove(id)
	}
}

func (s *ArrowSystem) remove(id types.EntityID) {
	s.ecs.RemoveEntity(id)
}

func outOfScreen(pos *component.Position) bool {
	const margin = 40.0
	return pos.X < -margin || pos.X > config.ScreenWidth+margin ||
		pos.Y < -margin || pos.Y > config.ScreenHeight+margin
}
