// internal/system/collision.go
package system

import (
	"math"

	"github.com/solarlune/resolv"

	"horde-in-town/internal/config"
	"horde-in-town/internal/types"
	"horde-in-town/pkg/hexmap"
)

const (
	TagZombie  = "zombie"
	TagBarrier = "barrier"
)

// CollisionWorld хранит resolv-пространство арены: зомби и баррикаду.
// resolv отвечает на вопрос «кто рядом» по ячейкам, точная проверка
// пересечения делается здесь же.
type CollisionWorld struct {
	Space   *resolv.Space
	Barrier *resolv.Object
	objects map[types.EntityID]*resolv.Object
}

// NewCollisionWorld создаёт пространство размером с экран и ставит
// баррикаду вдоль ряда баррикады арены.
func NewCollisionWorld(arena *hexmap.Arena) *CollisionWorld {
	cell := config.ColliderCell
	space := resolv.NewSpace(config.ScreenWidth, config.ScreenHeight, cell, cell)

	y, minX, maxX := arena.BarrierLine()
	h := config.BarrierHeight
	barrier := resolv.NewObject(minX, y-h/2, maxX-minX, h, TagBarrier)
	barrier.SetShape(resolv.NewRectangle(0, 0, maxX-minX, h))
	space.Add(barrier)

	return &CollisionWorld{
		Space:   space,
		Barrier: barrier,
		objects: make(map[types.EntityID]*resolv.Object),
	}
}

// AddZombie регистрирует круглого (в resolv — квадратного) зомби радиуса r с центром в (x, y).
func (w *CollisionWorld) AddZombie(id types.EntityID, x, y, r float64) *resolv.Object {
	obj := resolv.NewObject(x-r, y-r, 2*r, 2*r, TagZombie)
	obj.SetShape(resolv.NewRectangle(0, 0, 2*r, 2*r))
	obj.Data = id
	w.Space.Add(obj)
	w.objects[id] = obj
	return obj
}

// Move переносит объект сущности так, чтобы его центр оказался в (x, y).
func (w *CollisionWorld) Move(id types.EntityID, x, y float64) {
	obj, ok := w.objects[id]
	if !ok {
		return
	}
	obj.X = x - obj.W/2
	obj.Y = y - obj.H/2
	obj.Update()
}

// Remove убирает объект сущности из пространства. Повторный вызов безопасен.
func (w *CollisionWorld) Remove(id types.EntityID) {
	obj, ok := w.objects[id]
	if !ok {
		return
	}
	w.Space.Remove(obj)
	delete(w.objects, id)
}

// Has reports whether the entity still collides.
func (w *CollisionWorld) Has(id types.EntityID) bool {
	_, ok := w.objects[id]
	return ok
}

// TouchesBarrier reports whether the entity overlaps the barrier volume.
func (w *CollisionWorld) TouchesBarrier(id types.EntityID) bool {
	obj, ok := w.objects[id]
	if !ok {
		return false
	}
	check := obj.Check(0, 0, TagBarrier)
	if check == nil {
		return false
	}
	for _, other := range check.ObjectsByTags(TagBarrier) {
		if overlaps(obj, other) {
			return true
		}
	}
	return false
}

// ZombieAt returns the collider closest to (x, y) among those whose circle
// of radius r (plus the probe radius) contains the point.
func (w *CollisionWorld) ZombieAt(x, y, probe float64) (types.EntityID, bool) {
	probeObj := resolv.NewObject(x-probe, y-probe, 2*probe, 2*probe)
	probeObj.SetShape(resolv.NewRectangle(0, 0, 2*probe, 2*probe))
	w.Space.Add(probeObj)
	defer w.Space.Remove(probeObj)

	check := probeObj.Check(0, 0, TagZombie)
	if check == nil {
		return 0, false
	}

	var best types.EntityID
	bestDist := math.Inf(1)
	for _, obj := range check.ObjectsByTags(TagZombie) {
		id, ok := obj.Data.(types.EntityID)
		if !ok {
			continue
		}
		cx, cy := obj.X+obj.W/2, obj.Y+obj.H/2
		d := math.Hypot(cx-x, cy-y)
		if d <= obj.W/2+probe && d < bestDist {
			best, bestDist = id, d
		}
	}
	return best, bestDist < math.Inf(1)
}

// Clear убирает из пространства всех зомби, баррикада остаётся.
func (w *CollisionWorld) Clear() {
	for id := range w.objects {
		w.Remove(id)
	}
}

func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
}
