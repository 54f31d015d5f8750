package system

import (
	"horde-in-town/internal/event"
	"horde-in-town/internal/types"
)

// TakeDamage наносит урон зомби. Урон по мёртвому или несуществующему зомби
// игнорируется. Возвращает true, если удар оказался смертельным.
func (s *ZombieSystem) TakeDamage(id types.EntityID, amount float64) bool {
	z, ok := s.ecs.Zombies[id]
	if !ok || z.Dead {
		return false
	}
	health, ok := s.ecs.Healths[id]
	if !ok {
		return false
	}

	health.Value -= amount
	if bar, ok := s.ecs.HealthBars[id]; ok {
		bar.Target = float32(health.Fraction())
	}

	if health.Value > 0 {
		z.HitReacting = true
		z.HitReactionEnd = s.ecs.Now() + z.HitReactionDuration
		if vel, ok := s.ecs.Velocities[id]; ok {
			vel.Stopped = true
		}
		return false
	}

	s.die(id)
	return true
}

// die срабатывает ровно один раз: повторный вызов видит z.Dead.
func (s *ZombieSystem) die(id types.EntityID) {
	z := s.ecs.Zombies[id]
	if z.Dead {
		return
	}
	z.Dead = true
	z.DiedAt = s.ecs.Now()
	z.AtBarrier = false
	z.HitReacting = false
	if vel, ok := s.ecs.Velocities[id]; ok {
		vel.Stopped = true
	}
	// Мёртвый зомби больше не сталкивается со стрелами и баррикадой
	s.world.Remove(id)
	delete(s.ecs.Colliders, id)

	var x, y float64
	if pos, ok := s.ecs.Positions[id]; ok {
		x, y = pos.X, pos.Y
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.ZombieKilled, Data: event.ZombieKilledData{
		ID:         id,
		ScoreValue: z.ScoreValue,
		WaveIndex:  z.WaveIndex,
		X:          x,
		Y:          y,
	}})
	s.eventDispatcher.Dispatch(event.Event{Type: event.SoundRequested, Data: "zombie_dying"})
}
