// internal/system/visual_effect.go
package system

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"horde-in-town/internal/component"
	"horde-in-town/internal/config"
	"horde-in-town/internal/entity"
	"horde-in-town/internal/event"
	"horde-in-town/internal/types"
)

// VisualEffectSystem управляет визуальными эффектами: вспышкой при попадании,
// угасанием мёртвых зомби, облачками и плавными полосками здоровья.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *VisualEffectSystem {
	s := &VisualEffectSystem{ecs: ecs}
	eventDispatcher.Subscribe(event.ArrowHit, s)
	eventDispatcher.Subscribe(event.ZombieKilled, s)
	return s
}

func (s *VisualEffectSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.ArrowHit:
		data, ok := e.Data.(event.ArrowHitData)
		if !ok {
			return
		}
		s.flash(data.Zombie)
		s.puff(data.X, data.Y, config.PuffMaxRadius/2)
	case event.ZombieKilled:
		data, ok := e.Data.(event.ZombieKilledData)
		if !ok {
			return
		}
		s.deathFade(data.ID)
		s.puff(data.X, data.Y, config.PuffMaxRadius)
		if bar, ok := s.ecs.HealthBars[data.ID]; ok {
			bar.Hidden = true
		}
	}
}

func (s *VisualEffectSystem) flash(id types.EntityID) {
	if _, ok := s.ecs.Zombies[id]; !ok {
		return
	}
	s.ecs.DamageFlashes[id] = &component.DamageFlash{
		Tween:     gween.New(1, 0, config.HitFlashDuration, ease.OutQuad),
		Intensity: 1,
	}
}

func (s *VisualEffectSystem) deathFade(id types.EntityID) {
	delete(s.ecs.DamageFlashes, id)
	s.ecs.DeathFades[id] = &component.DeathFade{
		Tween: gween.New(1, 0, config.DeathFadeDuration, ease.Linear),
	}
}

func (s *VisualEffectSystem) puff(x, y, radius float64) {
	id := s.ecs.NewEntity()
	s.ecs.Puffs[id] = &component.Puff{
		X:         x,
		Y:         y,
		MaxRadius: float32(radius),
		Radius:    float32(radius) * 0.3,
		Alpha:     1,
		Tween:     gween.New(0, 1, config.PuffDuration, ease.OutCubic),
	}
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	dt := float32(deltaTime)

	for id, flash := range s.ecs.DamageFlashes {
		v, done := flash.Tween.Update(dt)
		flash.Intensity = v
		if done {
			delete(s.ecs.DamageFlashes, id)
		}
	}

	for id, fade := range s.ecs.DeathFades {
		v, _ := fade.Tween.Update(dt)
		if r, ok := s.ecs.Renderables[id]; ok {
			r.Alpha = v
		}
	}

	for id, p := range s.ecs.Puffs {
		progress, done := p.Tween.Update(dt)
		if done {
			delete(s.ecs.Puffs, id)
			continue
		}
		p.Alpha = 1 - progress
		p.Radius = p.MaxRadius * (0.3 + 0.7*progress)
	}

	for _, bar := range s.ecs.HealthBars {
		if bar.Target != bar.TweenTo || bar.Tween == nil && bar.Displayed != bar.Target {
			bar.Tween = gween.New(bar.Displayed, bar.Target, config.HealthBarSmoothing, ease.OutQuad)
			bar.TweenTo = bar.Target
		}
		if bar.Tween == nil {
			continue
		}
		v, done := bar.Tween.Update(dt)
		bar.Displayed = v
		if done {
			bar.Tween = nil
		}
	}
}

// Clear убирает эффекты, не привязанные к сущностям.
func (s *VisualEffectSystem) Clear() {
	for id := range s.ecs.Puffs {
		delete(s.ecs.Puffs, id)
	}
}
