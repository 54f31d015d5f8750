package system

import (
	"testing"

	"horde-in-town/internal/config"
	"horde-in-town/internal/defs"
	"horde-in-town/internal/entity"
	"horde-in-town/internal/event"
	"horde-in-town/internal/types"
	"horde-in-town/internal/utils"
	"horde-in-town/pkg/hexmap"
)

// eventLog записывает все события выбранных типов
type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) {
	l.events = append(l.events, e)
}

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func listen(d *event.Dispatcher, kinds ...event.EventType) *eventLog {
	l := &eventLog{}
	for _, t := range kinds {
		d.Subscribe(t, l)
	}
	return l
}

// sim собирает системы так же, как игра, но без спавнера
type sim struct {
	ecs      *entity.ECS
	events   *event.Dispatcher
	arena    *hexmap.Arena
	world    *CollisionWorld
	rng      *utils.PRNGService
	zombies  *ZombieSystem
	movement *MovementSystem
	barrier  *BarrierSystem
	arrows   *ArrowSystem
	bow      *BowSystem
	player   *PlayerSystem
	effects  *VisualEffectSystem
}

func newSim(t *testing.T) *sim {
	t.Helper()
	s := &sim{
		ecs:    entity.NewECS(),
		events: event.NewDispatcher(),
		rng:    utils.NewPRNGService(42),
	}
	s.arena = hexmap.NewArena(hexmap.ArenaConfig{
		Cols:         config.ArenaCols,
		Rows:         config.ArenaRows,
		HexSize:      config.HexSize,
		OriginX:      config.ArenaOriginX,
		OriginY:      config.ArenaOriginY,
		BarrierRow:   config.BarrierRow,
		SpawnColStep: config.SpawnColStep,
	}, nil)
	s.world = NewCollisionWorld(s.arena)
	s.zombies = NewZombieSystem(s.ecs, s.events, s.arena, s.world, s.rng)
	s.movement = NewMovementSystem(s.ecs, s.arena, s.world)
	s.barrier = NewBarrierSystem(s.ecs, s.world, s.zombies)
	s.arrows = NewArrowSystem(s.ecs, s.events, s.world, s.zombies)
	s.bow = NewBowSystem(s.ecs, s.events, s.arrows, s.rng)
	s.player = NewPlayerSystem(s.ecs, s.events)
	s.effects = NewVisualEffectSystem(s.ecs, s.events)

	bx, by := s.arena.Center(s.arena.PlayerHex)
	s.bow.Reset(bx, by, 0, 0, config.ScreenWidth, by-40)
	s.player.StartGame()
	return s
}

// step двигает часы и все системы на dt, n раз
func (s *sim) step(dt float64, n int) {
	for i := 0; i < n; i++ {
		s.ecs.Advance(dt)
		s.player.Update(dt)
		s.zombies.Update(dt)
		s.movement.Update(dt)
		s.barrier.Update(dt)
		s.arrows.Update(dt)
		s.effects.Update(dt)
	}
}

func testArchetype() defs.ZombieArchetype {
	return defs.ZombieArchetype{
		ID:                  "walker",
		MinHealth:           50,
		MaxHealth:           100,
		Speed:               40,
		ScoreValue:          10,
		DamagePerTick:       5,
		DamageInterval:      1,
		HitReactionDuration: 0.5,
		DeathDelay:          2,
		Radius:              11,
	}
}

func (s *sim) spawn(t *testing.T) types.EntityID {
	t.Helper()
	id, ok := s.zombies.SpawnZombie(testArchetype(), 0, 0)
	if !ok {
		t.Fatal("SpawnZombie failed")
	}
	return id
}

// place переносит зомби в точку вместе с коллайдером
func (s *sim) place(id types.EntityID, x, y float64) {
	pos := s.ecs.Positions[id]
	pos.X, pos.Y = x, y
	s.world.Move(id, x, y)
}
