package system

import (
	"testing"

	"horde-in-town/internal/types"
)

func TestCollisionWorldBarrierContact(t *testing.T) {
	s := newSim(t)
	y, minX, maxX := s.arena.BarrierLine()
	id := types.EntityID(99)
	s.world.AddZombie(id, (minX+maxX)/2, y-100, 10)

	if s.world.TouchesBarrier(id) {
		t.Fatal("zombie far above the barrier touches it")
	}
	s.world.Move(id, (minX+maxX)/2, y-15)
	if !s.world.TouchesBarrier(id) {
		t.Fatal("zombie overlapping the barrier does not touch it")
	}
	s.world.Remove(id)
	if s.world.TouchesBarrier(id) || s.world.Has(id) {
		t.Fatal("removed collider still reported")
	}
	s.world.Remove(id)
}

func TestZombieAtPicksClosest(t *testing.T) {
	s := newSim(t)
	s.world.AddZombie(1, 300, 200, 10)
	s.world.AddZombie(2, 316, 200, 10)

	if id, ok := s.world.ZombieAt(313, 200, 2); !ok || id != 2 {
		t.Errorf("ZombieAt = %d, %v; want 2", id, ok)
	}
	if _, ok := s.world.ZombieAt(300, 240, 2); ok {
		t.Error("ZombieAt found a zombie in empty space")
	}
}
