package system

import (
	"horde-in-town/internal/entity"
)

// BarrierSystem отслеживает касание баррикады и переключает зомби
// между подходом и атакой.
type BarrierSystem struct {
	ecs     *entity.ECS
	world   *CollisionWorld
	zombies *ZombieSystem
}

func NewBarrierSystem(ecs *entity.ECS, world *CollisionWorld, zombies *ZombieSystem) *BarrierSystem {
	return &BarrierSystem{ecs: ecs, world: world, zombies: zombies}
}

func (s *BarrierSystem) Update(deltaTime float64) {
	for _, id := range sortedIDs(s.ecs.Zombies) {
		z := s.ecs.Zombies[id]
		if z.Dead {
			continue
		}
		touching := s.world.TouchesBarrier(id)
		switch {
		case touching && !z.AtBarrier:
			s.zombies.EnterBarrier(id)
		case !touching && z.AtBarrier:
			s.zombies.ExitBarrier(id)
		}
	}
}
