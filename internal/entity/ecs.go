// internal/entity/ecs.go
package entity

import (
	"horde-in-town/internal/component"
	"horde-in-town/internal/types"
)

type ECS struct {
	GameTime      float64 // игровые часы, двигаются только в активной игре
	NextID        types.EntityID
	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	Paths         map[types.EntityID]*component.Path
	Healths       map[types.EntityID]*component.Health
	Renderables   map[types.EntityID]*component.Renderable
	Zombies       map[types.EntityID]*component.Zombie
	Arrows        map[types.EntityID]*component.Arrow
	Colliders     map[types.EntityID]*component.Collider
	DamageFlashes map[types.EntityID]*component.DamageFlash
	DeathFades    map[types.EntityID]*component.DeathFade
	Puffs         map[types.EntityID]*component.Puff
	HealthBars    map[types.EntityID]*component.HealthBar
	Wave          *component.Wave
	Player        *component.PlayerSession
	Bow           *component.Bow
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Paths:         make(map[types.EntityID]*component.Path),
		Healths:       make(map[types.EntityID]*component.Health),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		Zombies:       make(map[types.EntityID]*component.Zombie),
		Arrows:        make(map[types.EntityID]*component.Arrow),
		Colliders:     make(map[types.EntityID]*component.Collider),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		DeathFades:    make(map[types.EntityID]*component.DeathFade),
		Puffs:         make(map[types.EntityID]*component.Puff),
		HealthBars:    make(map[types.EntityID]*component.HealthBar),
		Wave:          &component.Wave{Index: -1, LastSpawnPos: -1},
		Player:        &component.PlayerSession{},
		Bow:           &component.Bow{},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Now возвращает текущее игровое время в секундах
func (ecs *ECS) Now() float64 {
	return ecs.GameTime
}

// Advance двигает игровые часы
func (ecs *ECS) Advance(deltaTime float64) {
	ecs.GameTime += deltaTime
}

// RemoveEntity удаляет все компоненты сущности
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Paths, id)
	delete(ecs.Healths, id)
	delete(ecs.Renderables, id)
	delete(ecs.Zombies, id)
	delete(ecs.Arrows, id)
	delete(ecs.Colliders, id)
	delete(ecs.DamageFlashes, id)
	delete(ecs.DeathFades, id)
	delete(ecs.Puffs, id)
	delete(ecs.HealthBars, id)
}

// EntityCount — число сущностей, у которых есть позиция
func (ecs *ECS) EntityCount() int {
	return len(ecs.Positions)
}
