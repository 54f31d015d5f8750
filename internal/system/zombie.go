// internal/system/zombie.go
package system

import (
	"image/color"
	"log"

	"horde-in-town/internal/component"
	"horde-in-town/internal/config"
	"horde-in-town/internal/defs"
	"horde-in-town/internal/entity"
	"horde-in-town/internal/event"
	"horde-in-town/internal/types"
	"horde-in-town/internal/utils"
	"horde-in-town/pkg/hexmap"
)

// ZombieSystem создаёт зомби и ведёт их ИИ: подход к баррикаде, атака,
// реакция на удар, смерть и удаление.
type ZombieSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	arena           *hexmap.Arena
	world           *CollisionWorld
	rng             *utils.PRNGService
}

func NewZombieSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, arena *hexmap.Arena, world *CollisionWorld, rng *utils.PRNGService) *ZombieSystem {
	return &ZombieSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		arena:           arena,
		world:           world,
		rng:             rng,
	}
}

// SpawnPoints returns the number of configured spawn hexes.
func (s *ZombieSystem) SpawnPoints() int {
	return len(s.arena.SpawnHexes)
}

// SpawnZombie создаёт зомби архетипа arch на точке спавна spawnPoint.
// Возвращает false, если точки нет или до баррикады не проложить путь.
func (s *ZombieSystem) SpawnZombie(arch defs.ZombieArchetype, spawnPoint, waveIndex int) (types.EntityID, bool) {
	if spawnPoint < 0 || spawnPoint >= len(s.arena.SpawnHexes) {
		log.Printf("[ZombieSystem] spawn point %d does not exist", spawnPoint)
		return 0, false
	}
	start := s.arena.SpawnHexes[spawnPoint]
	x, y := s.arena.Center(start)

	// Цель — гекс баррикады рядом со столбцом спавна, с небольшим разбросом
	jitter := (s.rng.Float64() - 0.5) * 4 * s.arena.HexSize
	goal := s.arena.NearestBarrierHex(x + jitter)
	path := s.arena.Path(start, goal)
	if path == nil {
		log.Printf("[ZombieSystem] no path from spawn %v to barrier %v", start, goal)
		return 0, false
	}

	health := s.rng.Range(arch.MinHealth, arch.MaxHealth)

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Velocities[id] = &component.Velocity{Speed: arch.Speed}
	s.ecs.Paths[id] = &component.Path{Hexes: path, CurrentIndex: 1}
	s.ecs.Healths[id] = &component.Health{Value: health, Max: health}
	s.ecs.Zombies[id] = &component.Zombie{
		ArchetypeID:         arch.ID,
		WaveIndex:           waveIndex,
		SpawnPoint:          spawnPoint,
		ScoreValue:          arch.ScoreValue,
		DamagePerTick:       arch.DamagePerTick,
		DamageInterval:      arch.DamageInterval,
		HitReactionDuration: arch.HitReactionDuration,
		DeathDelay:          arch.DeathDelay,
	}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:       archetypeColor(arch),
		Radius:      float32(arch.Radius),
		StrokeWidth: arch.Visuals.StrokeWidth,
		Alpha:       1,
	}
	s.ecs.HealthBars[id] = &component.HealthBar{Displayed: 1, Target: 1, TweenTo: 1}
	obj := s.world.AddZombie(id, x, y, arch.Radius)
	s.ecs.Colliders[id] = &component.Collider{Object: obj, Radius: arch.Radius}

	s.eventDispatcher.Dispatch(event.Event{Type: event.ZombieSpawned, Data: event.ZombieSpawnedData{
		ID:         id,
		Archetype:  arch.ID,
		WaveIndex:  waveIndex,
		SpawnPoint: spawnPoint,
	}})
	s.eventDispatcher.Dispatch(event.Event{Type: event.SoundRequested, Data: "zombie_walk"})
	return id, true
}

// Update проходит по живым и мёртвым зомби в порядке их создания.
func (s *ZombieSystem) Update(deltaTime float64) {
	now := s.ecs.Now()
	for _, id := range sortedIDs(s.ecs.Zombies) {
		z, ok := s.ecs.Zombies[id]
		if !ok {
			continue
		}
		if z.Dead {
			if now-z.DiedAt >= z.DeathDelay {
				s.destroy(id)
			}
			continue
		}

		vel := s.ecs.Velocities[id]

		// Кадр, в котором реакция истекла, уже обрабатывается как обычный
		if z.HitReacting && now >= z.HitReactionEnd {
			z.HitReacting = false
		}
		if z.HitReacting {
			vel.Stopped = true
			continue
		}

		if z.AtBarrier {
			vel.Stopped = true
			if now >= z.LastBarrierDamage+z.DamageInterval {
				s.damagePlayer(z.DamagePerTick)
				z.LastBarrierDamage = now
			}
			continue
		}

		vel.Stopped = false
		s.steerToPlayer(id)
	}
}

// steerToPlayer продлевает путь прямо к игроку, когда маршрут до баррикады пройден.
func (s *ZombieSystem) steerToPlayer(id types.EntityID) {
	path, ok := s.ecs.Paths[id]
	if !ok || !path.Done() {
		return
	}
	last := s.arena.PlayerHex
	if len(path.Hexes) > 0 {
		last = path.Hexes[len(path.Hexes)-1]
	}
	if last == s.arena.PlayerHex {
		return
	}
	if tail := s.arena.Path(last, s.arena.PlayerHex); len(tail) > 1 {
		path.Hexes = append(path.Hexes, tail[1:]...)
	}
}

// EnterBarrier переводит зомби в режим атаки. Первый удар — через интервал.
func (s *ZombieSystem) EnterBarrier(id types.EntityID) {
	z, ok := s.ecs.Zombies[id]
	if !ok || z.Dead || z.AtBarrier {
		return
	}
	z.AtBarrier = true
	z.LastBarrierDamage = s.ecs.Now()
	if vel, ok := s.ecs.Velocities[id]; ok {
		vel.Stopped = true
	}
}

// ExitBarrier возвращает зомби к подходу.
func (s *ZombieSystem) ExitBarrier(id types.EntityID) {
	z, ok := s.ecs.Zombies[id]
	if !ok || z.Dead {
		return
	}
	z.AtBarrier = false
}

func (s *ZombieSystem) damagePlayer(amount float64) {
	s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerDamaged, Data: amount})
}

// DestroyZombie удаляет зомби немедленно, без события убийства.
func (s *ZombieSystem) DestroyZombie(id types.EntityID) {
	if _, ok := s.ecs.Zombies[id]; !ok {
		return
	}
	s.destroy(id)
}

func (s *ZombieSystem) destroy(id types.EntityID) {
	s.world.Remove(id)
	s.ecs.RemoveEntity(id)
	s.eventDispatcher.Dispatch(event.Event{Type: event.ZombieDestroyed, Data: id})
}

// Alive returns the number of zombies that are not dead yet.
func (s *ZombieSystem) Alive() int {
	n := 0
	for _, z := range s.ecs.Zombies {
		if !z.Dead {
			n++
		}
	}
	return n
}

func archetypeColor(arch defs.ZombieArchetype) color.RGBA {
	rgb := arch.Visuals.Color
	if rgb == ([3]uint8{}) {
		return config.ZombieColors[0]
	}
	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}
}
