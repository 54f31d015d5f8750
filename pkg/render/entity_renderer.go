// pkg/render/entity_renderer.go
package render

import (
	"math"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"horde-in-town/internal/config"
	"horde-in-town/internal/entity"
	"horde-in-town/internal/types"
	"horde-in-town/internal/utils"
)

// EntityRenderer рисует динамические сущности: зомби, стрелы, эффекты, лучника.
type EntityRenderer struct {
	ecs *entity.ECS
	ids []types.EntityID
}

func NewEntityRenderer(ecs *entity.ECS) *EntityRenderer {
	return &EntityRenderer{ecs: ecs}
}

func (r *EntityRenderer) Draw(screen *ebiten.Image) {
	r.drawZombies(screen)
	r.drawPuffs(screen)
	r.drawArrows(screen)
	r.drawArcher(screen)
}

// Зомби рисуются по возрастанию ID, чтобы порядок не прыгал между кадрами.
func (r *EntityRenderer) drawZombies(screen *ebiten.Image) {
	r.ids = r.ids[:0]
	for id := range r.ecs.Zombies {
		r.ids = append(r.ids, id)
	}
	slices.Sort(r.ids)
	for _, id := range r.ids {
		pos, ok := r.ecs.Positions[id]
		rend, ok2 := r.ecs.Renderables[id]
		if !ok || !ok2 {
			continue
		}
		var flash float32
		if f, ok := r.ecs.DamageFlashes[id]; ok {
			flash = f.Intensity
		}
		x, y := float32(pos.X), float32(pos.Y)
		if rend.StrokeWidth > 0 {
			vector.DrawFilledCircle(screen, x, y, rend.Radius+rend.StrokeWidth, WithAlpha(DarkenColor(rend.Color), float64(rend.Alpha)), true)
		}
		vector.DrawFilledCircle(screen, x, y, rend.Radius, Tint(rend.Color, flash, rend.Alpha), true)

		if bar, ok := r.ecs.HealthBars[id]; ok && !bar.Hidden && rend.Alpha >= 1 {
			r.drawHealthBar(screen, x, y-rend.Radius-8, bar.Displayed)
		}
	}
}

func (r *EntityRenderer) drawHealthBar(screen *ebiten.Image, cx, top, fraction float32) {
	w, h := float32(config.HealthBarWidth), float32(config.HealthBarHeight)
	left := cx - w/2
	vector.DrawFilledRect(screen, left, top, w, h, config.PanelColor, false)
	fill := utils.LerpColor(config.LowHealthColor, config.HealthyColor, float64(fraction))
	vector.DrawFilledRect(screen, left, top, w*fraction, h, fill, false)
}

func (r *EntityRenderer) drawPuffs(screen *ebiten.Image) {
	for _, p := range r.ecs.Puffs {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), p.Radius, WithAlpha(config.PuffColor, float64(p.Alpha)), true)
	}
}

func (r *EntityRenderer) drawArrows(screen *ebiten.Image) {
	for id, a := range r.ecs.Arrows {
		pos, ok := r.ecs.Positions[id]
		if !ok {
			continue
		}
		tipX, tipY := float32(pos.X), float32(pos.Y)
		tailX := tipX - float32(math.Cos(a.Angle)*config.ArrowLength)
		tailY := tipY - float32(math.Sin(a.Angle)*config.ArrowLength)
		alpha := 1.0
		if a.HasHit {
			alpha = utils.Clamp(a.StuckTimer, 0, 1)
		}
		vector.StrokeLine(screen, tailX, tailY, tipX, tipY, 2, WithAlpha(config.ArrowColor, alpha), true)
	}
}

func (r *EntityRenderer) drawArcher(screen *ebiten.Image) {
	b := r.ecs.Bow
	x, y := float32(b.X), float32(b.Y)
	vector.DrawFilledCircle(screen, x, y, 14, config.PlayerColor, true)

	// Лук — дуга, повёрнутая к прицелу
	dx, dy := b.AimDirection()
	angle := math.Atan2(dy, dx)
	const segments = 10
	prevX, prevY := float32(0), float32(0)
	for i := 0; i <= segments; i++ {
		a := angle - math.Pi/2 + math.Pi*float64(i)/segments
		px := x + float32(math.Cos(a)*20)
		py := y + float32(math.Sin(a)*20)
		if i > 0 {
			vector.StrokeLine(screen, prevX, prevY, px, py, 3, config.BowColor, true)
		}
		prevX, prevY = px, py
	}

	cx, cy := float32(b.CrosshairX), float32(b.CrosshairY)
	vector.StrokeCircle(screen, cx, cy, 10, 2, config.CrosshairColor, true)
	vector.StrokeLine(screen, cx-14, cy, cx+14, cy, 1.5, config.CrosshairColor, true)
	vector.StrokeLine(screen, cx, cy-14, cx, cy+14, 1.5, config.CrosshairColor, true)
}
