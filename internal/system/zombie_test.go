package system

import (
	"testing"

	"horde-in-town/internal/component"
	"horde-in-town/internal/event"
)

func TestSpawnZombieRandomizesHealth(t *testing.T) {
	s := newSim(t)
	for i := 0; i < 20; i++ {
		id := s.spawn(t)
		h := s.ecs.Healths[id]
		if h.Value < 50 || h.Value >= 100 {
			t.Fatalf("health %f outside [50, 100)", h.Value)
		}
		if h.Max != h.Value {
			t.Fatalf("fresh zombie must be at full health, got %f/%f", h.Value, h.Max)
		}
		if !s.world.Has(id) {
			t.Fatal("spawned zombie has no collider")
		}
	}
}

func TestSpawnZombieUnknownSpawnPoint(t *testing.T) {
	s := newSim(t)
	if _, ok := s.zombies.SpawnZombie(testArchetype(), len(s.arena.SpawnHexes), 0); ok {
		t.Fatal("expected spawn at a missing point to fail")
	}
	if len(s.ecs.Zombies) != 0 {
		t.Errorf("failed spawn left %d zombies behind", len(s.ecs.Zombies))
	}
}

func TestZombieDeathIsIdempotent(t *testing.T) {
	s := newSim(t)
	log := listen(s.events, event.ZombieKilled, event.SoundRequested)
	id := s.spawn(t)

	if !s.zombies.TakeDamage(id, 1000) {
		t.Fatal("expected lethal hit")
	}
	if s.zombies.TakeDamage(id, 1000) {
		t.Fatal("second hit on a dead zombie reported a kill")
	}
	s.zombies.die(id)

	if n := log.count(event.ZombieKilled); n != 1 {
		t.Fatalf("expected exactly one kill event, got %d", n)
	}
	if s.ecs.Player.Score != 10 || s.ecs.Player.Kills != 1 {
		t.Errorf("expected score 10 and 1 kill, got %d and %d", s.ecs.Player.Score, s.ecs.Player.Kills)
	}
	if s.world.Has(id) {
		t.Error("dead zombie still collides")
	}
	if !s.ecs.HealthBars[id].Hidden {
		t.Error("dead zombie health bar is visible")
	}
}

func TestDeadZombieRemovedAfterDelay(t *testing.T) {
	s := newSim(t)
	log := listen(s.events, event.ZombieDestroyed)
	id := s.spawn(t)
	s.zombies.TakeDamage(id, 1000)

	s.step(0.25, 7) // 1.75s
	if _, ok := s.ecs.Zombies[id]; !ok {
		t.Fatal("zombie removed before the death delay")
	}
	s.step(0.25, 1) // 2.0s
	if _, ok := s.ecs.Zombies[id]; ok {
		t.Fatal("zombie still present after the death delay")
	}
	if log.count(event.ZombieDestroyed) != 1 {
		t.Errorf("expected one ZombieDestroyed, got %d", log.count(event.ZombieDestroyed))
	}
}

func TestHitReactionLocksMovement(t *testing.T) {
	s := newSim(t)
	id := s.spawn(t)
	s.step(0.25, 2)

	if s.zombies.TakeDamage(id, 1) {
		t.Fatal("1 damage must not kill")
	}
	if got := s.ecs.Zombies[id].State(); got != component.ZombieHitReaction {
		t.Fatalf("expected hit reaction, got %v", got)
	}

	pos := *s.ecs.Positions[id]
	s.step(0.125, 3) // 0.375s < 0.5s
	if now := *s.ecs.Positions[id]; now != pos {
		t.Fatalf("zombie moved during hit reaction: %v -> %v", pos, now)
	}

	s.step(0.125, 3) // реакция закончилась
	if s.ecs.Zombies[id].HitReacting {
		t.Fatal("hit reaction did not expire")
	}
	if now := *s.ecs.Positions[id]; now == pos {
		t.Fatal("zombie did not resume moving after hit reaction")
	}
}

func TestBarrierDamageTicks(t *testing.T) {
	s := newSim(t)
	log := listen(s.events, event.PlayerDamaged)
	id := s.spawn(t)

	s.zombies.EnterBarrier(id)
	if s.ecs.Zombies[id].State() != component.ZombieAtBarrier {
		t.Fatal("expected barrier state")
	}

	tick := func(n int) {
		for i := 0; i < n; i++ {
			s.ecs.Advance(0.25)
			s.zombies.Update(0.25)
		}
	}

	tick(3) // 0.75s
	if log.count(event.PlayerDamaged) != 0 {
		t.Fatalf("damage before the first interval: %d", log.count(event.PlayerDamaged))
	}
	tick(1) // 1.0s
	if log.count(event.PlayerDamaged) != 1 {
		t.Fatalf("expected first tick at 1s, got %d", log.count(event.PlayerDamaged))
	}
	tick(4) // 2.0s
	if log.count(event.PlayerDamaged) != 2 {
		t.Fatalf("expected second tick at 2s, got %d", log.count(event.PlayerDamaged))
	}
	if s.ecs.Player.Health != 90 {
		t.Errorf("expected player health 90, got %f", s.ecs.Player.Health)
	}

	s.zombies.ExitBarrier(id)
	tick(8)
	if log.count(event.PlayerDamaged) != 2 {
		t.Errorf("damage continued after leaving the barrier: %d", log.count(event.PlayerDamaged))
	}
}

func TestHitReactionSuppressesBarrierDamage(t *testing.T) {
	s := newSim(t)
	log := listen(s.events, event.PlayerDamaged)
	id := s.spawn(t)
	s.zombies.EnterBarrier(id)

	s.ecs.Advance(0.75)
	s.zombies.TakeDamage(id, 1) // реакция до 1.25s
	s.ecs.Advance(0.25)
	s.zombies.Update(0.25) // 1.0s
	if log.count(event.PlayerDamaged) != 0 {
		t.Fatal("zombie attacked during hit reaction")
	}
	s.ecs.Advance(0.25)
	s.zombies.Update(0.25) // 1.25s, реакция снимается
	s.ecs.Advance(0.25)
	s.zombies.Update(0.25) // 1.5s
	if log.count(event.PlayerDamaged) != 1 {
		t.Fatalf("expected attack to resume after reaction, got %d", log.count(event.PlayerDamaged))
	}
}

func TestZombieWalksToBarrier(t *testing.T) {
	s := newSim(t)
	id := s.spawn(t)
	startY := s.ecs.Positions[id].Y

	for i := 0; i < 1200 && !s.ecs.Zombies[id].AtBarrier; i++ {
		s.step(1.0/60, 1)
	}
	z := s.ecs.Zombies[id]
	if !z.AtBarrier {
		t.Fatalf("zombie never reached the barrier, at %+v", *s.ecs.Positions[id])
	}
	if s.ecs.Positions[id].Y <= startY {
		t.Errorf("zombie did not move down the arena")
	}

	pos := *s.ecs.Positions[id]
	s.step(0.25, 8)
	if *s.ecs.Positions[id] != pos {
		t.Error("zombie kept walking at the barrier")
	}
	if s.ecs.Player.Health >= 100 {
		t.Error("zombie at the barrier did not damage the player")
	}
}

func TestHitReactionExpiryFrameActs(t *testing.T) {
	s := newSim(t)
	log := listen(s.events, event.PlayerDamaged)
	id := s.spawn(t)
	s.zombies.EnterBarrier(id)

	s.ecs.Advance(0.75)
	s.zombies.TakeDamage(id, 1) // реакция до 1.25s
	s.ecs.Advance(0.5)
	s.zombies.Update(0.5) // ровно 1.25s
	if s.ecs.Zombies[id].HitReacting {
		t.Fatal("hit reaction still active at its expiry time")
	}
	if log.count(event.PlayerDamaged) != 1 {
		t.Fatalf("expected the overdue barrier tick in the expiry frame, got %d", log.count(event.PlayerDamaged))
	}
	if s.ecs.Velocities[id].Stopped != true {
		t.Error("zombie at the barrier must stay stopped")
	}
}
