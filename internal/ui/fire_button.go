package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"horde-in-town/internal/config"
	"horde-in-town/internal/utils"
)

// FireButton — круглая кнопка выстрела с кольцом перезарядки.
type FireButton struct {
	X, Y   float64
	Radius float64
	Ring   float64 // радиус кольца перезарядки
}

func NewFireButton(x, y float64) *FireButton {
	return &FireButton{X: x, Y: y, Radius: config.FireButtonSize, Ring: config.CooldownRadius}
}

func (b *FireButton) Contains(x, y float64) bool {
	return utils.Length(x-b.X, y-b.Y) <= b.Radius
}

// RingSegments возвращает отрезки дуги перезарядки: от верхней точки по часовой,
// доля круга равна progress.
func RingSegments(cx, cy, radius, progress float64, segments int) [][4]float64 {
	progress = utils.Clamp(progress, 0, 1)
	n := int(math.Ceil(float64(segments) * progress))
	if n == 0 {
		return nil
	}
	out := make([][4]float64, 0, n)
	end := 2 * math.Pi * progress
	step := end / float64(n)
	for i := 0; i < n; i++ {
		a0 := -math.Pi/2 + step*float64(i)
		a1 := a0 + step
		out = append(out, [4]float64{
			cx + radius*math.Cos(a0), cy + radius*math.Sin(a0),
			cx + radius*math.Cos(a1), cy + radius*math.Sin(a1),
		})
	}
	return out
}

func (b *FireButton) Draw(screen *ebiten.Image, face font.Face, progress float64) {
	bg := config.ButtonColor
	if progress < 1 {
		bg.A = 120
	}
	vector.DrawFilledCircle(screen, float32(b.X), float32(b.Y), float32(b.Radius), bg, true)
	for _, s := range RingSegments(b.X, b.Y, b.Ring, progress, 48) {
		vector.StrokeLine(screen, float32(s[0]), float32(s[1]), float32(s[2]), float32(s[3]), 4, config.CooldownColor, true)
	}
	DrawCentered(screen, "FIRE", face, int(b.X), int(b.Y), config.TextLightColor)
}
